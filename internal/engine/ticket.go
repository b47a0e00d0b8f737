package engine

import (
	"github.com/tacctile/handicap-app-sub002/internal/model"
)

// Base unit costs per combination, before the sizing multiplier.
const (
	DefaultExactaUnit   = 2.0
	DefaultTrifectaUnit = 1.0
)

// BuildPositions expands a template into exacta and trifecta position sets.
// Every slot is drawn from the baseline ranking, never from any adjusted
// ordering; short fields simply truncate the sets.
func BuildPositions(card *model.RaceCard, template model.TicketTemplate) (exacta, trifecta model.PositionSet) {
	top5 := programsByRank(card, 5)
	slot := func(ranks ...int) []int {
		out := make([]int, 0, len(ranks))
		for _, r := range ranks {
			if r <= len(top5) {
				out = append(out, top5[r-1])
			}
		}
		return out
	}

	switch template {
	case model.TemplateA:
		exacta = model.PositionSet{Win: slot(1), Place: slot(2, 3, 4)}
		trifecta = model.PositionSet{Win: slot(1), Place: slot(2, 3, 4), Show: slot(2, 3, 4)}
	case model.TemplateB:
		// The vulnerable favorite never occupies a win slot.
		exacta = model.PositionSet{Win: slot(2, 3, 4), Place: slot(1, 2, 3, 4)}
		trifecta = model.PositionSet{Win: slot(2, 3, 4), Place: slot(1, 2, 3, 4), Show: slot(1, 2, 3, 4)}
	case model.TemplateC:
		exacta = model.PositionSet{Win: slot(1, 2, 3, 4), Place: slot(1, 2, 3, 4)}
		trifecta = model.PositionSet{Win: slot(1, 2, 3, 4, 5), Place: slot(1, 2, 3, 4, 5), Show: slot(1, 2, 3, 4, 5)}
	case model.TemplatePass:
		// Algorithm-only fallback: same exacta as A, trifecta widened to
		// rank 5 to compensate for the absent value edge.
		exacta = model.PositionSet{Win: slot(1), Place: slot(2, 3, 4)}
		trifecta = model.PositionSet{Win: slot(1), Place: slot(2, 3, 4, 5), Show: slot(2, 3, 4, 5)}
	}
	return exacta, trifecta
}

// programsByRank returns up to n program numbers in baseline rank order,
// skipping scratches.
func programsByRank(card *model.RaceCard, n int) []int {
	runners := card.Runners()
	if len(runners) < n {
		n = len(runners)
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = runners[i].ProgramNumber
	}
	return out
}

// ExactaCombinations counts (win, place) pairs with distinct entrants.
func ExactaCombinations(p model.PositionSet) int {
	count := 0
	for _, w := range p.Win {
		for _, pl := range p.Place {
			if w != pl {
				count++
			}
		}
	}
	return count
}

// TrifectaCombinations counts (win, place, show) triples with all three distinct.
func TrifectaCombinations(p model.PositionSet) int {
	count := 0
	for _, w := range p.Win {
		for _, pl := range p.Place {
			if w == pl {
				continue
			}
			for _, sh := range p.Show {
				if sh != w && sh != pl {
					count++
				}
			}
		}
	}
	return count
}

// PriceLine fills in combination count, unit stake, and cost for one wager.
func PriceLine(positions model.PositionSet, combinations int, baseUnit, multiplier float64) model.WagerLine {
	unit := baseUnit * multiplier
	return model.WagerLine{
		Positions:    positions,
		Combinations: combinations,
		UnitStake:    unit,
		Cost:         float64(combinations) * unit,
	}
}
