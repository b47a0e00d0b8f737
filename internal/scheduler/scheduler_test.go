package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tacctile/handicap-app-sub002/internal/analyzers"
	"github.com/tacctile/handicap-app-sub002/internal/engine"
	"github.com/tacctile/handicap-app-sub002/internal/recorder"
)

const testCardJSON = `{
  "race_id": "GP-2026-02-14-R7",
  "track": "Gulfstream",
  "race_number": 7,
  "date": "2026-02-14",
  "entrants": [
    {"program_number": 1, "name": "Alpha", "baseline_rank": 1, "baseline_score": 96, "style": "E"},
    {"program_number": 2, "name": "Bravo", "baseline_rank": 2, "baseline_score": 90, "style": "P"},
    {"program_number": 3, "name": "Charlie", "baseline_rank": 3, "baseline_score": 85, "style": "S"},
    {"program_number": 4, "name": "Delta", "baseline_rank": 4, "baseline_score": 78, "style": "E/P"},
    {"program_number": 5, "name": "Echo", "baseline_rank": 5, "baseline_score": 70, "style": "P"}
  ]
}`

func testScheduler(t *testing.T) (*Scheduler, string) {
	t.Helper()
	dir := t.TempDir()
	watchDir := filepath.Join(dir, "cards")
	if err := os.MkdirAll(watchDir, 0o755); err != nil {
		t.Fatal(err)
	}
	s, err := NewScheduler(context.Background(), analyzers.NewRunner(0), nil,
		recorder.NewNoopRecorder(), engine.Options{}, watchDir, filepath.Join(dir, "state.json"))
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	return s, watchDir
}

func TestScanAnalyzesNewCards(t *testing.T) {
	s, watchDir := testScheduler(t)
	path := filepath.Join(watchDir, "r7.json")
	if err := os.WriteFile(path, []byte(testCardJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	s.scanTask()

	tc := s.Latest()
	if tc == nil {
		t.Fatal("expected a latest result after scan")
	}
	if tc.RaceID != "GP-2026-02-14-R7" {
		t.Errorf("RaceID = %q", tc.RaceID)
	}
	if _, seen := s.state.SeenFiles[path]; !seen {
		t.Error("card file not marked seen")
	}
}

func TestScanSkipsSeenCards(t *testing.T) {
	s, watchDir := testScheduler(t)
	path := filepath.Join(watchDir, "r7.json")
	if err := os.WriteFile(path, []byte(testCardJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	s.scanTask()
	first := s.Latest()
	s.latest = nil
	s.scanTask()
	if s.Latest() != nil {
		t.Error("second scan re-analyzed a seen card")
	}
	if first == nil {
		t.Fatal("first scan produced nothing")
	}
}

func TestScanMarksInvalidCards(t *testing.T) {
	s, watchDir := testScheduler(t)
	path := filepath.Join(watchDir, "bad.json")
	if err := os.WriteFile(path, []byte(`{"entrants": [`), 0o644); err != nil {
		t.Fatal(err)
	}

	s.scanTask()

	if s.Latest() != nil {
		t.Error("invalid card produced a result")
	}
	if got := s.state.SeenFiles[path]; got != invalidCardMark {
		t.Errorf("invalid card marked %q, want %q", got, invalidCardMark)
	}
	if s.state.LastRaceID != "" {
		t.Errorf("LastRaceID = %q, want empty", s.state.LastRaceID)
	}
}

func TestScanRaceNamedInvalidNotConflated(t *testing.T) {
	s, watchDir := testScheduler(t)
	payload := strings.Replace(testCardJSON, "GP-2026-02-14-R7", "invalid", 1)
	path := filepath.Join(watchDir, "odd-name.json")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	s.scanTask()

	if s.Latest() == nil {
		t.Fatal("valid card not analyzed")
	}
	if s.state.LastRaceID != "invalid" {
		t.Errorf("LastRaceID = %q, want the card's own race id", s.state.LastRaceID)
	}
	if got := s.state.SeenFiles[path]; got != "invalid" {
		t.Errorf("seen value = %q, want the race id", got)
	}
}

func TestStateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")

	state, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState missing file: %v", err)
	}
	state.SeenFiles["a.json"] = "R1"
	state.LastRaceID = "R1"
	if err := SaveState(path, state); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	loaded, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if loaded.SeenFiles["a.json"] != "R1" || loaded.LastRaceID != "R1" {
		t.Errorf("round trip lost data: %+v", loaded)
	}
	if loaded.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not set")
	}
}

func TestHandleCommand(t *testing.T) {
	s, _ := testScheduler(t)
	if got := s.HandleCommand("/latest", nil); got != "No race analyzed yet." {
		t.Errorf("/latest = %q", got)
	}
	if got := s.HandleCommand("/status", nil); got == "" {
		t.Error("/status returned empty reply")
	}
	if got := s.HandleCommand("/bogus", nil); got == "" {
		t.Error("unknown command returned empty reply")
	}
}
