package engine

import (
	"github.com/tacctile/handicap-app-sub002/internal/model"
)

// noEdgeScore is the fixed score when the favorite is solid and no value
// entrant exists. It guarantees the PASS template always lands in the
// MINIMAL tier regardless of any other adjustment.
const noEdgeScore = 25

// Base scores by value-signal tier.
var tierBaseScores = map[model.ValueStrength]int{
	model.ValueVeryStrong: 85,
	model.ValueStrong:     80,
	model.ValueModerate:   70,
	model.ValueWeak:       50,
}

// vulnerableNoValueScore applies when the favorite is vulnerable but no value
// entrant was identified.
const vulnerableNoValueScore = 45

// ScoreConfidence maps the value-signal strength and race shape into 0-100.
func ScoreConfidence(card *model.RaceCard, signals []model.AggregatedSignal, raceType model.RaceType, favorite model.FavoriteCall, value model.ValueEntrant) int {
	if favorite.Status == model.FavoriteSolid && !value.Identified {
		return noEdgeScore
	}

	score := vulnerableNoValueScore
	if value.Identified {
		score = tierBaseScores[value.Tier]
	}

	if raceType == model.RaceWideOpen {
		score -= 10
	}
	if value.Identified && value.BotCount >= 3 {
		score += 10
	}
	if topTwoScoreGap(card) >= 20 {
		score += 5
	}
	if conflictedEntrants(signals) >= 2 {
		score -= 10
	}

	return int(clamp(float64(score), 0, 100))
}

func topTwoScoreGap(card *model.RaceCard) float64 {
	runners := card.Runners()
	if len(runners) < 2 {
		return 0
	}
	return runners[0].BaselineScore - runners[1].BaselineScore
}

func conflictedEntrants(signals []model.AggregatedSignal) int {
	n := 0
	for i := range signals {
		if signals[i].ConflictingSignals {
			n++
		}
	}
	return n
}

// TierFor buckets a confidence score.
func TierFor(score int) model.ConfidenceTier {
	switch {
	case score >= 80:
		return model.TierHigh
	case score >= 60:
		return model.TierMedium
	case score >= 40:
		return model.TierLow
	default:
		return model.TierMinimal
	}
}

// Size maps template and confidence into a flat stake multiplier. Sizing is
// intentionally flat rather than graduated: historically, confidence magnitude
// anti-correlated with hit rate while the template choice carried the edge.
func Size(template model.TicketTemplate, score int) model.Sizing {
	switch {
	case template == model.TemplatePass:
		return model.Sizing{Multiplier: 0.5, Recommendation: model.SizingAlgorithmOnly}
	case score < 40:
		return model.Sizing{Multiplier: 0, Recommendation: model.SizingPass}
	default:
		return model.Sizing{Multiplier: 1.0, Recommendation: model.SizingStandard}
	}
}
