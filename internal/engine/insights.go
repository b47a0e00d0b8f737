package engine

import (
	"fmt"
	"strings"

	"github.com/tacctile/handicap-app-sub002/internal/model"
)

// ComposeInsights builds the per-entrant narrative list for the presentation
// layer, one entry per non-scratched entrant in baseline rank order.
func ComposeInsights(signals []model.AggregatedSignal, favorite model.FavoriteCall, value model.ValueEntrant) []model.EntrantInsight {
	insights := make([]model.EntrantInsight, 0, len(signals))
	for i := range signals {
		insights = append(insights, composeEntrant(&signals[i], favorite, value))
	}
	return insights
}

func composeEntrant(sig *model.AggregatedSignal, favorite model.FavoriteCall, value model.ValueEntrant) model.EntrantInsight {
	ins := model.EntrantInsight{
		ProgramNumber: sig.ProgramNumber,
		Name:          sig.Name,
		BaselineRank:  sig.BaselineRank,
	}
	var notes []string

	if value.Identified && value.ProgramNumber == sig.ProgramNumber {
		ins.Labels = append(ins.Labels, "VALUE PICK")
		notes = append(notes, fmt.Sprintf("%d analyzers converge here (%s tier)", value.BotCount, value.Tier))
	}
	if sig.TripFlagged {
		ins.Labels = append(ins.Labels, "TRIP UPGRADE")
		notes = append(notes, fmt.Sprintf("recent form masked by trouble (+%d)", sig.TripBoost))
	}
	switch {
	case sig.PaceAdvantage > 0:
		ins.Labels = append(ins.Labels, "PACE EDGE")
		notes = append(notes, paceNote(sig.PaceRule))
	case sig.PaceAdvantage < 0:
		ins.Labels = append(ins.Labels, "PACE COMPROMISED")
		notes = append(notes, "likely caught in a speed duel")
	}
	if sig.Vulnerable {
		ins.Labels = append(ins.Labels, "VULNERABLE FAVORITE")
		notes = append(notes, strings.Join(sig.VulnerabilityReasons, ", "))
	}
	if sig.ClassDropFlagged {
		ins.Labels = append(ins.Labels, "CLASS DROPPER")
		if sig.ClassDropBoost != 0 {
			notes = append(notes, fmt.Sprintf("class relief reinforces the pattern (+%.1f)", sig.ClassDropBoost))
		} else {
			notes = append(notes, "dropping in class, but no primary signal to reinforce")
		}
	}
	if sig.FieldClass == model.FieldClassExclude {
		ins.Labels = append(ins.Labels, "EXCLUDED")
		notes = append(notes, "outclassed by this field")
	}
	if sig.ConflictingSignals {
		ins.Labels = append(ins.Labels, "MIXED SIGNALS")
	}

	if len(notes) == 0 {
		ins.Comment = fmt.Sprintf("no analyzer opinion, holds baseline rank %d", sig.BaselineRank)
	} else {
		ins.Comment = strings.Join(notes, "; ")
	}
	return ins
}

func paceNote(rule model.PaceRule) string {
	switch rule {
	case model.PaceRuleLoneSpeed:
		return "lone speed, controls the race"
	case model.PaceRuleDuelCloser:
		return "closer set up by a hot pace"
	case model.PaceRuleSlowStalker:
		return "stalker in a slow-pace race"
	default:
		return "pace edge"
	}
}
