package analyzers

import (
	"context"

	"github.com/tacctile/handicap-app-sub002/internal/model"
)

// AnalyzePaceScenario projects the early-pace shape from the field's running
// styles: a single early-speed type is a lone-speed exception, three or more
// is a likely duel over a hot pace, and a closer-heavy field runs slow.
func AnalyzePaceScenario(ctx context.Context, card *model.RaceCard) (*model.PaceScenarioResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var early, closers, total int
	loneSpeed := 0
	for _, e := range card.Entrants {
		if e.Scratched {
			continue
		}
		total++
		switch e.Style.Tactical() {
		case model.TacticalEarlySpeed:
			early++
			loneSpeed = e.ProgramNumber
		case model.TacticalCloser:
			closers++
		}
	}
	if total == 0 {
		return &model.PaceScenarioResult{Heat: model.PaceModerate}, nil
	}

	result := &model.PaceScenarioResult{Heat: model.PaceModerate}
	switch {
	case early == 1:
		result.LoneSpeedProgram = loneSpeed
		result.Note = "single early-speed type, uncontested lead likely"
	case early >= 3:
		result.Heat = model.PaceHot
		result.DuelLikely = true
		result.Note = "three or more early types, contested pace"
	case early == 0 && closers*2 >= total:
		result.Heat = model.PaceSlow
		result.Note = "closer-heavy field, tactical speed holds"
	}
	return result, nil
}
