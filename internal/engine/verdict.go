package engine

import (
	"fmt"

	"github.com/tacctile/handicap-app-sub002/internal/model"
)

// BuildVerdict produces the final bet/pass decision and its summary.
func BuildVerdict(card *model.RaceCard, template model.TicketTemplate, sizing model.Sizing, value model.ValueEntrant) model.Verdict {
	if sizing.Multiplier == 0 {
		return model.Verdict{Action: model.ActionPass, Summary: "skip this race, confidence too low"}
	}

	runners := card.Runners()
	name := func(idx int) string {
		if idx >= len(runners) {
			return "?"
		}
		return fmt.Sprintf("#%d %s", runners[idx].ProgramNumber, runners[idx].Name)
	}

	switch template {
	case model.TemplatePass:
		return model.Verdict{
			Action:  model.ActionBet,
			Summary: fmt.Sprintf("algorithm-only fallback at half stakes, keyed on baseline top pick %s", name(0)),
		}
	case model.TemplateA:
		return model.Verdict{
			Action: model.ActionBet,
			Summary: fmt.Sprintf("key solid favorite %s on top, convergence value #%d %s underneath",
				name(0), value.ProgramNumber, value.Name),
		}
	case model.TemplateB:
		return model.Verdict{
			Action:  model.ActionBet,
			Summary: fmt.Sprintf("favorite keyed out of the win slot, top pick %s", name(1)),
		}
	case model.TemplateC:
		return model.Verdict{
			Action:  model.ActionBet,
			Summary: "wide-open race, spread across the baseline top five",
		}
	default:
		return model.Verdict{Action: model.ActionPass, Summary: "skip this race"}
	}
}
