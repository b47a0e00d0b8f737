package analyzers

import (
	"context"

	"github.com/tacctile/handicap-app-sub002/internal/model"
)

// thinMargin is the baseline-score lead below which the favorite's edge over
// the second choice is considered noise.
const thinMargin = 5.0

// AnalyzeVulnerableFavorite inspects the baseline top pick for cracks. Each
// reason stands alone; the reason count drives the confidence grade.
func AnalyzeVulnerableFavorite(ctx context.Context, card *model.RaceCard) (*model.VulnerableFavoriteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	runners := card.Runners()
	if len(runners) < 2 {
		return &model.VulnerableFavoriteResult{}, nil
	}
	fav := runners[0]

	var reasons []string
	if fav.BaselineScore-runners[1].BaselineScore < thinMargin {
		reasons = append(reasons, "thin margin over the second choice")
	}
	if len(fav.PastRaces) > 0 {
		last := fav.PastRaces[0]
		if fav.ClassLevel > last.ClassLevel {
			reasons = append(reasons, "stepping up in class")
		}
		if last.Finish > 4 {
			reasons = append(reasons, "well beaten last out")
		}
	}
	if fav.Style.Tactical() == model.TacticalEarlySpeed {
		early := 0
		for _, e := range runners {
			if e.Style.Tactical() == model.TacticalEarlySpeed {
				early++
			}
		}
		if early >= 3 {
			reasons = append(reasons, "early speed facing a contested pace")
		}
	}

	result := &model.VulnerableFavoriteResult{
		ProgramNumber: fav.ProgramNumber,
		IsVulnerable:  len(reasons) >= 2,
		Reasons:       reasons,
	}
	switch {
	case len(reasons) >= 3:
		result.Confidence = model.ConfidenceHigh
	case len(reasons) == 2:
		result.Confidence = model.ConfidenceMedium
	default:
		result.Confidence = model.ConfidenceLow
	}
	return result, nil
}
