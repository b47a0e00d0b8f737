package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analyses to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read while the bot writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id                  TEXT PRIMARY KEY,
			timestamp           INTEGER NOT NULL,
			generated_at        INTEGER NOT NULL,
			race_id             TEXT NOT NULL,
			track               TEXT,
			race_number         INTEGER,
			field_size          INTEGER,
			race_type           TEXT,
			favorite_program    INTEGER,
			favorite_status     TEXT,
			favorite_flags      TEXT,
			value_identified    INTEGER,
			value_program       INTEGER,
			value_bot_count     INTEGER,
			value_strength      REAL,
			value_tier          TEXT,
			template            TEXT,
			template_rationale  TEXT,
			confidence_score    INTEGER,
			confidence_tier     TEXT,
			sizing_multiplier   REAL,
			sizing              TEXT,
			exacta_combinations INTEGER,
			exacta_cost         REAL,
			trifecta_combinations INTEGER,
			trifecta_cost       REAL,
			total_cost          REAL,
			verdict_action      TEXT,
			verdict_summary     TEXT,
			no_analysis         INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_ts ON analyses(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_race ON analyses(race_id)`,

		`CREATE TABLE IF NOT EXISTS entrant_signals (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			analysis_id      TEXT NOT NULL,
			program_number   INTEGER NOT NULL,
			name             TEXT,
			baseline_rank    INTEGER,
			trip_boost       INTEGER,
			pace_advantage   INTEGER,
			pace_rule        TEXT,
			vulnerable       INTEGER,
			field_class      TEXT,
			class_drop_boost REAL,
			total_adjustment REAL,
			signal_count     INTEGER,
			conflicting      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_analysis ON entrant_signals(analysis_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAnalysis(a *Analysis) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tc := a.Result
	id := uuid.NewString()

	tx, err := r.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO analyses
		(id, timestamp, generated_at, race_id, track, race_number, field_size,
		 race_type, favorite_program, favorite_status, favorite_flags,
		 value_identified, value_program, value_bot_count, value_strength, value_tier,
		 template, template_rationale, confidence_score, confidence_tier,
		 sizing_multiplier, sizing,
		 exacta_combinations, exacta_cost, trifecta_combinations, trifecta_cost, total_cost,
		 verdict_action, verdict_summary, no_analysis)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		id, time.Now().Unix(), tc.GeneratedAt.Unix(),
		tc.RaceID, a.Card.Track, a.Card.RaceNumber, a.Card.FieldSize(),
		string(tc.RaceType), tc.Favorite.ProgramNumber, string(tc.Favorite.Status),
		strings.Join(tc.Favorite.Flags, "; "),
		boolInt(tc.Value.Identified), tc.Value.ProgramNumber, tc.Value.BotCount,
		tc.Value.Strength, string(tc.Value.Tier),
		string(tc.Template), tc.TemplateRationale,
		tc.ConfidenceScore, string(tc.ConfidenceTier),
		tc.Sizing.Multiplier, string(tc.Sizing.Recommendation),
		tc.Exacta.Combinations, tc.Exacta.Cost,
		tc.Trifecta.Combinations, tc.Trifecta.Cost, tc.TotalCost,
		string(tc.Verdict.Action), tc.Verdict.Summary, boolInt(tc.NoAnalysis),
	)
	if err != nil {
		return "", fmt.Errorf("insert analysis: %w", err)
	}

	for _, sig := range tc.Signals {
		_, err = tx.Exec(`INSERT INTO entrant_signals
			(analysis_id, program_number, name, baseline_rank,
			 trip_boost, pace_advantage, pace_rule, vulnerable,
			 field_class, class_drop_boost, total_adjustment, signal_count, conflicting)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			id, sig.ProgramNumber, sig.Name, sig.BaselineRank,
			sig.TripBoost, sig.PaceAdvantage, string(sig.PaceRule), boolInt(sig.Vulnerable),
			string(sig.FieldClass), sig.ClassDropBoost, sig.TotalAdjustment,
			sig.SignalCount, boolInt(sig.ConflictingSignals),
		)
		if err != nil {
			return "", fmt.Errorf("insert entrant signal #%d: %w", sig.ProgramNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
