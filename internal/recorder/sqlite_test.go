package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/tacctile/handicap-app-sub002/internal/model"
)

func TestSQLiteRecordAnalysis(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	r, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("NewSQLiteRecorder: %v", err)
	}
	defer r.Close()

	card := &model.RaceCard{
		RaceID:     "R1",
		Track:      "Belmont",
		RaceNumber: 3,
		Entrants: []model.Entrant{
			{ProgramNumber: 1, Name: "Alpha", BaselineRank: 1, BaselineScore: 95},
			{ProgramNumber: 2, Name: "Bravo", BaselineRank: 2, BaselineScore: 88},
		},
	}
	tc := &model.TicketConstruction{
		RaceID:      "R1",
		GeneratedAt: time.Now(),
		RaceType:    model.RaceCompetitive,
		Favorite:    model.FavoriteCall{ProgramNumber: 1, Status: model.FavoriteSolid},
		Template:    model.TemplatePass,
		Sizing:      model.Sizing{Multiplier: 0.5, Recommendation: model.SizingAlgorithmOnly},
		Verdict:     model.Verdict{Action: model.ActionBet, Summary: "fallback"},
		Signals: []model.AggregatedSignal{
			{ProgramNumber: 1, Name: "Alpha", BaselineRank: 1},
			{ProgramNumber: 2, Name: "Bravo", BaselineRank: 2, TripBoost: 2, TotalAdjustment: 2, SignalCount: 1},
		},
	}

	id, err := r.RecordAnalysis(&Analysis{Card: card, Result: tc})
	if err != nil {
		t.Fatalf("RecordAnalysis: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty analysis id")
	}

	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM entrant_signals WHERE analysis_id = ?`, id).Scan(&count); err != nil {
		t.Fatalf("count signals: %v", err)
	}
	if count != 2 {
		t.Errorf("entrant_signals rows = %d, want 2", count)
	}

	var template, tier string
	if err := r.db.QueryRow(`SELECT template, value_tier FROM analyses WHERE id = ?`, id).Scan(&template, &tier); err != nil {
		t.Fatalf("select analysis: %v", err)
	}
	if template != "PASS" {
		t.Errorf("template = %q, want PASS", template)
	}
}

func TestNoopRecorder(t *testing.T) {
	n := NewNoopRecorder()
	if id, err := n.RecordAnalysis(&Analysis{}); err != nil || id != "" {
		t.Errorf("RecordAnalysis = (%q, %v)", id, err)
	}
	if err := n.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
