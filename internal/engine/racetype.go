package engine

import (
	"sort"

	"github.com/tacctile/handicap-app-sub002/internal/model"
)

// Score-spread boundaries for the fallback race-type classification.
const (
	wideOpenSpread = 30.0
	chalkLead      = 20.0
)

// ClassifyRaceType buckets the race as CHALK, COMPETITIVE, or WIDE_OPEN.
// The field-spread analyzer's explicit call wins when present; otherwise the
// shape is derived from the baseline score distribution.
func ClassifyRaceType(card *model.RaceCard, set *model.AnalyzerSet) model.RaceType {
	if set != nil && set.FieldSpread != nil {
		switch set.FieldSpread.FieldType {
		case model.FieldWideOpen:
			return model.RaceWideOpen
		case model.FieldDominant, model.FieldSeparated:
			return model.RaceChalk
		case model.FieldCompetitive, model.FieldMixed:
			return model.RaceCompetitive
		}
	}
	return raceTypeFromScores(card)
}

func raceTypeFromScores(card *model.RaceCard) model.RaceType {
	scores := make([]float64, 0, len(card.Entrants))
	for _, e := range card.Entrants {
		if !e.Scratched {
			scores = append(scores, e.BaselineScore)
		}
	}
	if len(scores) < 2 {
		return model.RaceCompetitive
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(scores)))

	top := scores
	if len(top) > 6 {
		top = top[:6]
	}
	if top[0]-top[len(top)-1] <= wideOpenSpread {
		return model.RaceWideOpen
	}
	if scores[0]-scores[1] >= chalkLead {
		return model.RaceChalk
	}
	return model.RaceCompetitive
}
