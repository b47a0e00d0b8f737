package engine

import (
	"fmt"

	"github.com/tacctile/handicap-app-sub002/internal/model"
)

// selection is the input to the template rule table.
type selection struct {
	RaceType model.RaceType
	Favorite model.FavoriteCall
	Value    model.ValueEntrant
}

// templateRule is one row of the ordered decision table.
type templateRule struct {
	Name      string
	Template  model.TicketTemplate
	When      func(s selection) bool
	Rationale func(s selection) string
}

// templateRules is evaluated top to bottom, first match wins. The asymmetry is
// deliberate: templates B and C arise from evidence the favorite is not fully
// trustworthy, while template A needs an independent convergence signal to
// prove the market underpriced someone else. Absent both, there is no edge.
var templateRules = []templateRule{
	{
		Name:     "wide-open",
		Template: model.TemplateC,
		When:     func(s selection) bool { return s.RaceType == model.RaceWideOpen },
		Rationale: func(s selection) string {
			r := "wide-open race, spread the board"
			if s.Value.Identified {
				r += fmt.Sprintf("; convergence on #%d noted", s.Value.ProgramNumber)
			}
			return r
		},
	},
	{
		Name:     "vulnerable-favorite",
		Template: model.TemplateB,
		When:     func(s selection) bool { return s.Favorite.Status == model.FavoriteVulnerable },
		Rationale: func(s selection) string {
			return fmt.Sprintf("favorite #%d is vulnerable, keyed out of the win slot", s.Favorite.ProgramNumber)
		},
	},
	{
		Name:     "no-edge",
		Template: model.TemplatePass,
		When:     func(s selection) bool { return s.Favorite.Status == model.FavoriteSolid && !s.Value.Identified },
		Rationale: func(s selection) string {
			return "market is efficient, no edge"
		},
	},
	{
		Name:     "solid-favorite-value",
		Template: model.TemplateA,
		When:     func(s selection) bool { return s.Favorite.Status == model.FavoriteSolid && s.Value.Identified },
		Rationale: func(s selection) string {
			return fmt.Sprintf("solid favorite with %d-analyzer convergence on #%d", s.Value.BotCount, s.Value.ProgramNumber)
		},
	},
}

// SelectTemplate picks exactly one template for the race.
func SelectTemplate(raceType model.RaceType, favorite model.FavoriteCall, value model.ValueEntrant) (model.TicketTemplate, string) {
	s := selection{RaceType: raceType, Favorite: favorite, Value: value}
	for _, rule := range templateRules {
		if rule.When(s) {
			return rule.Template, rule.Rationale(s)
		}
	}
	// Unreachable with a well-formed table; kept so the engine stays total.
	return model.TemplatePass, "no rule matched"
}
