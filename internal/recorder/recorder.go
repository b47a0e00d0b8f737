package recorder

import "github.com/tacctile/handicap-app-sub002/internal/model"

// Analysis holds everything persisted for one engine run.
type Analysis struct {
	Card   *model.RaceCard
	Result *model.TicketConstruction
}

// Recorder persists historical analyses for later review.
type Recorder interface {
	// RecordAnalysis stores one engine decision and its per-entrant signals.
	// It returns the stored analysis id.
	RecordAnalysis(a *Analysis) (string, error)
	Close() error
}
