package scheduler

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/tacctile/handicap-app-sub002/internal/analyzers"
	"github.com/tacctile/handicap-app-sub002/internal/card"
	"github.com/tacctile/handicap-app-sub002/internal/engine"
	"github.com/tacctile/handicap-app-sub002/internal/model"
	"github.com/tacctile/handicap-app-sub002/internal/notifier"
	"github.com/tacctile/handicap-app-sub002/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler scans the watch directory for new race cards on a cron schedule,
// runs the engine on each, and delivers the ticket report.
type Scheduler struct {
	Cron       *cron.Cron
	Runner     *analyzers.Runner
	Notifier   *notifier.TelegramNotifier
	Recorder   recorder.Recorder
	EngineOpts engine.Options
	WatchDir   string
	StateFile  string
	Ctx        context.Context

	mu     sync.Mutex
	state  *ScanState
	latest *model.TicketConstruction
}

// NewScheduler creates a scheduler. The notifier may be nil, in which case
// reports are only logged and recorded.
func NewScheduler(ctx context.Context, runner *analyzers.Runner, tn *notifier.TelegramNotifier, rec recorder.Recorder, opts engine.Options, watchDir, stateFile string) (*Scheduler, error) {
	state, err := LoadState(stateFile)
	if err != nil {
		return nil, fmt.Errorf("load scan state: %w", err)
	}
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Runner:     runner,
		Notifier:   tn,
		Recorder:   rec,
		EngineOpts: opts,
		WatchDir:   watchDir,
		StateFile:  stateFile,
		Ctx:        ctx,
		state:      state,
	}, nil
}

// Register registers the card-scan task on the given cron spec.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes the scan task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.scanTask()
}

func (s *Scheduler) scanTask() {
	entries, err := os.ReadDir(s.WatchDir)
	if err != nil {
		log.Printf("[ERROR] read watch dir %s: %v", s.WatchDir, err)
		return
	}

	var fresh []string
	s.mu.Lock()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.WatchDir, e.Name())
		if _, seen := s.state.SeenFiles[path]; !seen {
			fresh = append(fresh, path)
		}
	}
	s.mu.Unlock()
	sort.Strings(fresh)

	for _, path := range fresh {
		s.analyzeFile(path)
	}
}

func (s *Scheduler) analyzeFile(path string) {
	log.Printf("[INFO] analyzing card: %s", path)
	c, err := card.Load(path)
	if err != nil {
		log.Printf("[ERROR] load card %s: %v", path, err)
		s.markInvalid(path)
		return
	}

	set := s.Runner.RunAll(s.Ctx, c)
	tc := engine.Analyze(c, set, s.EngineOpts)

	s.mu.Lock()
	s.latest = tc
	s.mu.Unlock()

	s.trySend(notifier.FormatTicketReport(c, tc))

	if _, err := s.Recorder.RecordAnalysis(&recorder.Analysis{Card: c, Result: tc}); err != nil {
		log.Printf("[ERROR] record analysis %s: %v", c.RaceID, err)
	}

	s.markSeen(path, c.RaceID)
}

// invalidCardMark is the informational SeenFiles value for files that failed
// to load. Nothing compares against it; unparseable files never reach
// LastRaceID.
const invalidCardMark = "(unparseable)"

func (s *Scheduler) markSeen(path, raceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SeenFiles[path] = raceID
	s.state.LastRaceID = raceID
	if err := SaveState(s.StateFile, s.state); err != nil {
		log.Printf("[ERROR] save scan state: %v", err)
	}
}

func (s *Scheduler) markInvalid(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SeenFiles[path] = invalidCardMark
	if err := SaveState(s.StateFile, s.state); err != nil {
		log.Printf("[ERROR] save scan state: %v", err)
	}
}

// Latest returns the most recent engine result, or nil.
func (s *Scheduler) Latest() *model.TicketConstruction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string, args []string) string {
	switch command {
	case "/scan":
		go s.scanTask()
		return "🔍 Scanning for new race cards..."
	case "/latest":
		s.mu.Lock()
		tc := s.latest
		s.mu.Unlock()
		if tc == nil {
			return "No race analyzed yet."
		}
		return fmt.Sprintf("Last race %s: template %s, confidence %d (%s), %s",
			tc.RaceID, tc.Template, tc.ConfidenceScore, tc.ConfidenceTier, tc.Verdict.Action)
	case "/status":
		s.mu.Lock()
		seen := len(s.state.SeenFiles)
		last := s.state.LastRaceID
		s.mu.Unlock()
		return notifier.FormatStatus(s.WatchDir, seen, last, s.EngineOpts.Conservative)
	default:
		return "Available commands:\n• /scan\n• /latest\n• /status"
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
