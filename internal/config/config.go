package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
		Enabled  bool   `yaml:"enabled"`
	} `yaml:"telegram"`
	Cards struct {
		WatchDir  string `yaml:"watch_dir"`
		ScanCron  string `yaml:"scan_cron"`
		StateFile string `yaml:"state_file"`
	} `yaml:"cards"`
	Server struct {
		Enabled bool `yaml:"enabled"`
		Port    int  `yaml:"port"`
	} `yaml:"server"`
	Engine struct {
		Conservative       bool    `yaml:"conservative"`
		ExactaBaseUnit     float64 `yaml:"exacta_base_unit"`
		TrifectaBaseUnit   float64 `yaml:"trifecta_base_unit"`
		AnalyzerTimeoutSec int     `yaml:"analyzer_timeout_sec"`
	} `yaml:"engine"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
		cfg.Telegram.Enabled = true
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("CARDS_WATCH_DIR"); v != "" {
		cfg.Cards.WatchDir = v
	}
	if v := os.Getenv("CARDS_SCAN_CRON"); v != "" {
		cfg.Cards.ScanCron = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
			cfg.Server.Enabled = true
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("ENGINE_CONSERVATIVE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Engine.Conservative = b
		}
	}

	// Defaults
	if cfg.Cards.WatchDir == "" {
		cfg.Cards.WatchDir = "data/cards"
	}
	if cfg.Cards.ScanCron == "" {
		cfg.Cards.ScanCron = "0 */5 * * * *"
	}
	if cfg.Cards.StateFile == "" {
		cfg.Cards.StateFile = "data/seen_cards.json"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Engine.ExactaBaseUnit == 0 {
		cfg.Engine.ExactaBaseUnit = 2.0
	}
	if cfg.Engine.TrifectaBaseUnit == 0 {
		cfg.Engine.TrifectaBaseUnit = 1.0
	}
	if cfg.Engine.AnalyzerTimeoutSec == 0 {
		cfg.Engine.AnalyzerTimeoutSec = 10
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/handicap.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram is enabled")
		}
		if c.Telegram.ChatID == "" {
			return fmt.Errorf("telegram.chat_id is required when telegram is enabled")
		}
	}
	if c.Server.Enabled && (c.Server.Port <= 0 || c.Server.Port > 65535) {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Engine.ExactaBaseUnit <= 0 {
		return fmt.Errorf("engine.exacta_base_unit must be positive")
	}
	if c.Engine.TrifectaBaseUnit <= 0 {
		return fmt.Errorf("engine.trifecta_base_unit must be positive")
	}
	if c.Engine.AnalyzerTimeoutSec <= 0 {
		return fmt.Errorf("engine.analyzer_timeout_sec must be positive")
	}
	return nil
}

// AnalyzerTimeout returns the per-analyzer timeout as a duration.
func (c *Config) AnalyzerTimeout() time.Duration {
	return time.Duration(c.Engine.AnalyzerTimeoutSec) * time.Second
}
