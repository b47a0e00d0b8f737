package analyzers

import (
	"context"

	"github.com/tacctile/handicap-app-sub002/internal/model"
)

// Score-distance tiers from the baseline leader.
const (
	tierACutoff = 10.0
	tierBCutoff = 20.0
	tierCCutoff = 35.0
)

// AnalyzeFieldSpread classifies every entrant by score distance from the
// leader and derives the overall field shape from the resulting tiers.
func AnalyzeFieldSpread(ctx context.Context, card *model.RaceCard) (*model.FieldSpreadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	runners := card.Runners()
	if len(runners) == 0 {
		return &model.FieldSpreadResult{FieldType: model.FieldMixed}, nil
	}
	leader := runners[0].BaselineScore

	result := &model.FieldSpreadResult{Classifications: make(map[int]model.FieldClass, len(runners))}
	for _, e := range runners {
		dist := leader - e.BaselineScore
		var cls model.FieldClass
		switch {
		case dist <= tierACutoff:
			cls = model.FieldClassA
			result.TopTierCount++
		case dist <= tierBCutoff:
			cls = model.FieldClassB
		case dist <= tierCCutoff:
			cls = model.FieldClassC
		default:
			cls = model.FieldClassExclude
		}
		result.Classifications[e.ProgramNumber] = cls
	}

	result.FieldType = fieldTypeFor(runners, result.TopTierCount)
	if result.FieldType == model.FieldWideOpen {
		// Key candidates: top-tier runners the baseline ranks outside its
		// top three, the spots a wide-open field underprices.
		for _, e := range runners {
			if e.BaselineRank >= 4 && result.Classifications[e.ProgramNumber] == model.FieldClassA {
				result.KeyCandidates = append(result.KeyCandidates, e.ProgramNumber)
			}
		}
	}
	return result, nil
}

func fieldTypeFor(runners []model.Entrant, topTier int) model.FieldType {
	top := runners
	if len(top) > 6 {
		top = top[:6]
	}
	spread := top[0].BaselineScore - top[len(top)-1].BaselineScore
	gap := 0.0
	if len(runners) >= 2 {
		gap = runners[0].BaselineScore - runners[1].BaselineScore
	}

	switch {
	case spread <= 30 && topTier >= 4:
		return model.FieldWideOpen
	case gap >= 20:
		return model.FieldDominant
	case topTier <= 2 && gap >= 10:
		return model.FieldSeparated
	case topTier >= 3:
		return model.FieldCompetitive
	default:
		return model.FieldMixed
	}
}
