package analyzers

import (
	"context"
	"fmt"
	"strings"

	"github.com/tacctile/handicap-app-sub002/internal/model"
)

// Comment fragments that mark a troubled running line.
var troubleKeywords = []string{
	"blocked", "steadied", "checked", "bumped", "boxed", "squeezed",
	"shut off", "stumbled", "wide trip", "forced wide", "traffic",
}

// Fragments severe enough that a single occurrence still matters.
var severeKeywords = []string{"blocked", "shut off", "checked", "stumbled"}

// AnalyzeTripTrouble scans recent trouble comments for masked ability. Two or
// more troubled races is a HIGH-confidence call; a single severe incident is
// MEDIUM.
func AnalyzeTripTrouble(ctx context.Context, card *model.RaceCard) (*model.TripTroubleResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := &model.TripTroubleResult{}
	for _, e := range card.Entrants {
		if e.Scratched {
			continue
		}
		troubled, severe := 0, false
		for _, pr := range e.PastRaces {
			comment := strings.ToLower(pr.TroubleComment)
			if comment == "" {
				continue
			}
			if containsAny(comment, troubleKeywords) {
				troubled++
				if containsAny(comment, severeKeywords) {
					severe = true
				}
			}
		}
		switch {
		case troubled >= 2:
			result.Findings = append(result.Findings, model.TripFinding{
				ProgramNumber: e.ProgramNumber,
				MaskedAbility: true,
				Confidence:    model.ConfidenceHigh,
				TroubledRaces: troubled,
				Note:          fmt.Sprintf("trouble in %d of last %d races", troubled, len(e.PastRaces)),
			})
		case troubled == 1 && severe:
			result.Findings = append(result.Findings, model.TripFinding{
				ProgramNumber: e.ProgramNumber,
				MaskedAbility: true,
				Confidence:    model.ConfidenceMedium,
				TroubledRaces: 1,
				Note:          "one severe trip incident last out",
			})
		}
	}
	return result, nil
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
