package engine

import (
	"time"

	"github.com/tacctile/handicap-app-sub002/internal/model"
)

// Options configures one engine invocation. The zero value is usable.
type Options struct {
	// Conservative caps trip boosts at +1 and suppresses class-drop
	// reinforcement.
	Conservative bool
	// ExactaBaseUnit and TrifectaBaseUnit are per-combination base costs,
	// defaulting to $2 and $1.
	ExactaBaseUnit   float64
	TrifectaBaseUnit float64
}

func (o Options) withDefaults() Options {
	if o.ExactaBaseUnit == 0 {
		o.ExactaBaseUnit = DefaultExactaUnit
	}
	if o.TrifectaBaseUnit == 0 {
		o.TrifectaBaseUnit = DefaultTrifectaUnit
	}
	return o
}

// Analyze runs the full aggregation and ticket-construction pipeline for one
// race. It is a pure function of its inputs: identical card, analyzer set, and
// options always produce an identical TicketConstruction apart from
// GeneratedAt. It never fails; analyzer absence only degrades signal richness.
func Analyze(card *model.RaceCard, set *model.AnalyzerSet, opts Options) *model.TicketConstruction {
	opts = opts.withDefaults()

	if card.FieldSize() == 0 {
		return emptyFieldResult(card)
	}

	signals := AggregateSignals(card, set, opts.Conservative)
	favorite := ClassifyFavorite(card, set)
	value := IdentifyValueEntrant(card, set, signals, favorite)
	raceType := ClassifyRaceType(card, set)
	template, rationale := SelectTemplate(raceType, favorite, value)

	exactaPos, trifectaPos := BuildPositions(card, template)
	exactaCombos := ExactaCombinations(exactaPos)
	trifectaCombos := TrifectaCombinations(trifectaPos)

	score := ScoreConfidence(card, signals, raceType, favorite, value)
	sizing := Size(template, score)

	exacta := PriceLine(exactaPos, exactaCombos, opts.ExactaBaseUnit, sizing.Multiplier)
	trifecta := PriceLine(trifectaPos, trifectaCombos, opts.TrifectaBaseUnit, sizing.Multiplier)

	return &model.TicketConstruction{
		RaceID:            card.RaceID,
		GeneratedAt:       time.Now(),
		RaceType:          raceType,
		Favorite:          favorite,
		Value:             value,
		Template:          template,
		TemplateRationale: rationale,
		Exacta:            exacta,
		Trifecta:          trifecta,
		TotalCost:         exacta.Cost + trifecta.Cost,
		ConfidenceScore:   score,
		ConfidenceTier:    TierFor(score),
		Sizing:            sizing,
		Verdict:           BuildVerdict(card, template, sizing, value),
		Signals:           signals,
		Insights:          ComposeInsights(signals, favorite, value),
	}
}

// emptyFieldResult is the terminal "no analysis possible" construction for a
// race with zero non-scratched entrants.
func emptyFieldResult(card *model.RaceCard) *model.TicketConstruction {
	return &model.TicketConstruction{
		RaceID:            card.RaceID,
		GeneratedAt:       time.Now(),
		RaceType:          model.RaceCompetitive,
		Favorite:          model.FavoriteCall{Status: model.FavoriteSolid},
		Value:             model.ValueEntrant{Tier: model.ValueNone},
		Template:          model.TemplatePass,
		TemplateRationale: "no runners, no analysis possible",
		ConfidenceTier:    model.TierMinimal,
		Sizing:            model.Sizing{Multiplier: 0, Recommendation: model.SizingPass},
		Verdict:           model.Verdict{Action: model.ActionPass, Summary: "no non-scratched entrants, nothing to analyze"},
		NoAnalysis:        true,
	}
}
