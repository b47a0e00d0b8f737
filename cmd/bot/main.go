package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tacctile/handicap-app-sub002/internal/analyzers"
	"github.com/tacctile/handicap-app-sub002/internal/config"
	"github.com/tacctile/handicap-app-sub002/internal/engine"
	"github.com/tacctile/handicap-app-sub002/internal/notifier"
	"github.com/tacctile/handicap-app-sub002/internal/recorder"
	"github.com/tacctile/handicap-app-sub002/internal/scheduler"
	"github.com/tacctile/handicap-app-sub002/internal/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] ticket engine starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init analyzer runner
	runner := analyzers.NewRunner(cfg.AnalyzerTimeout())

	opts := engine.Options{
		Conservative:     cfg.Engine.Conservative,
		ExactaBaseUnit:   cfg.Engine.ExactaBaseUnit,
		TrifectaBaseUnit: cfg.Engine.TrifectaBaseUnit,
	}

	// Init Telegram notifier
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.Enabled {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	} else {
		log.Println("[INFO] telegram disabled, reports are logged and recorded only")
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched, err := scheduler.NewScheduler(ctx, runner, tn, rec, opts, cfg.Cards.WatchDir, cfg.Cards.StateFile)
	if err != nil {
		log.Fatalf("[FATAL] init scheduler: %v", err)
	}
	if err := sched.Register(cfg.Cards.ScanCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional HTTP API
	var srv *server.Server
	if cfg.Server.Enabled {
		srv = server.New(cfg.Server.Port, runner, rec, opts)
		srv.Start()
	}

	// Start Telegram polling
	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// Optional: scan immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, scanning for cards now")
		go sched.RunScanNow()
	}

	log.Println("[INFO] ticket engine is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	if srv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[ERROR] http shutdown: %v", err)
		}
	}
	log.Println("[INFO] ticket engine stopped")
}
