package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tacctile/handicap-app-sub002/internal/model"
)

// Source tags for value-entrant contributions.
const (
	SourceTripTrouble        = "trip-trouble"
	SourcePaceScenario       = "pace-scenario"
	SourceVulnerableFavorite = "vulnerable-favorite"
	SourceFieldSpread        = "field-spread"
	SourceClassDrop          = "class-drop"
)

// Strength bonuses per contributing source. A single HIGH-confidence signal
// clears the SOLID-favorite guard on its own; a single MEDIUM one does not.
const (
	strengthTripHigh      = 40.0
	strengthTripMedium    = 20.0
	strengthLoneSpeed     = 35.0
	strengthDuelCloser    = 20.0
	strengthBeneficiary   = 30.0
	strengthSecondaryBen  = 20.0
	strengthKeyCandidate  = 25.0
	classDropStrengthUnit = 10.0
)

// solidGuardStrength is the minimum strength a lone-source candidate needs
// when the favorite is SOLID.
const solidGuardStrength = 30.0

type valueCandidate struct {
	entrant   model.Entrant
	sources   []string
	botCount  int
	strength  float64
	rationale []string
}

func (c *valueCandidate) add(source, why string, bonus float64) {
	for _, s := range c.sources {
		if s == source {
			// A source contributes to bot count once; extra firings from the
			// same analyzer only add strength.
			c.strength += bonus
			c.rationale = append(c.rationale, why)
			return
		}
	}
	c.sources = append(c.sources, source)
	c.botCount++
	c.strength += bonus
	c.rationale = append(c.rationale, why)
}

// IdentifyValueEntrant finds at most one entrant that multiple independent
// analyzers converge on. Class drop participates only as reinforcement of an
// existing candidate; it can never originate one. The baseline favorite and
// scratched entrants are never candidates.
func IdentifyValueEntrant(card *model.RaceCard, set *model.AnalyzerSet, signals []model.AggregatedSignal, favorite model.FavoriteCall) model.ValueEntrant {
	if set == nil {
		set = &model.AnalyzerSet{}
	}
	byProgram := make(map[int]*model.AggregatedSignal, len(signals))
	for i := range signals {
		byProgram[signals[i].ProgramNumber] = &signals[i]
	}

	favProgram := 0
	if fav := card.Favorite(); fav != nil {
		favProgram = fav.ProgramNumber
	}

	candidates := map[int]*valueCandidate{}
	candidate := func(programNumber int) *valueCandidate {
		e := card.ByProgram(programNumber)
		if e == nil || e.Scratched || e.ProgramNumber == favProgram {
			return nil
		}
		c, ok := candidates[programNumber]
		if !ok {
			c = &valueCandidate{entrant: *e}
			candidates[programNumber] = c
		}
		return c
	}

	// Trip trouble: masked ability.
	if set.TripTrouble != nil {
		for _, f := range set.TripTrouble.Findings {
			if !f.MaskedAbility {
				continue
			}
			c := candidate(f.ProgramNumber)
			if c == nil {
				continue
			}
			bonus := strengthTripMedium
			if f.Confidence == model.ConfidenceHigh {
				bonus = strengthTripHigh
			}
			c.add(SourceTripTrouble, fmt.Sprintf("masked ability (%s)", f.Confidence), bonus)
		}
	}

	// Pace: lone-speed exception or the closer side of a likely duel.
	for i := range signals {
		sig := &signals[i]
		switch sig.PaceRule {
		case model.PaceRuleLoneSpeed:
			if c := candidate(sig.ProgramNumber); c != nil {
				c.add(SourcePaceScenario, "lone speed on an uncontested lead", strengthLoneSpeed)
			}
		case model.PaceRuleDuelCloser:
			if c := candidate(sig.ProgramNumber); c != nil {
				c.add(SourcePaceScenario, "closer behind a likely speed duel", strengthDuelCloser)
			}
		}
	}

	// Vulnerable favorite: the primary beneficiary is baseline rank 2;
	// rank 3 also counts when it independently carries a signal of its own.
	if favorite.Status == model.FavoriteVulnerable {
		runners := card.Runners()
		if len(runners) >= 2 {
			if c := candidate(runners[1].ProgramNumber); c != nil {
				c.add(SourceVulnerableFavorite, "primary beneficiary of a vulnerable favorite", strengthBeneficiary)
			}
		}
		if len(runners) >= 3 {
			if sig := byProgram[runners[2].ProgramNumber]; sig != nil && (sig.TripFlagged || (sig.PaceFlagged && sig.PaceAdvantage > 0)) {
				if c := candidate(runners[2].ProgramNumber); c != nil {
					c.add(SourceVulnerableFavorite, "secondary beneficiary with an independent signal", strengthSecondaryBen)
				}
			}
		}
	}

	// Field spread: key candidates in a wide-open field.
	if set.FieldSpread != nil && set.FieldSpread.FieldType == model.FieldWideOpen {
		for _, pn := range set.FieldSpread.KeyCandidates {
			if c := candidate(pn); c != nil {
				c.add(SourceFieldSpread, "key candidate in a wide-open field", strengthKeyCandidate)
			}
		}
	}

	// Class drop reinforces existing candidates only; a class-drop signal for
	// a non-candidate is discarded entirely.
	for pn, c := range candidates {
		sig := byProgram[pn]
		if sig == nil || sig.ClassDropBoost == 0 {
			continue
		}
		c.strength += sig.ClassDropBoost * classDropStrengthUnit
		c.rationale = append(c.rationale, fmt.Sprintf("class drop reinforcement (+%.1f)", sig.ClassDropBoost*classDropStrengthUnit))
	}

	winner := pickCandidate(candidates)
	if winner == nil {
		return model.ValueEntrant{Tier: model.ValueNone}
	}

	// SOLID-favorite guard: deviating from a trustworthy favorite takes
	// either convergence or one high-confidence signal.
	if favorite.Status == model.FavoriteSolid && !(winner.botCount >= 1 && winner.strength >= solidGuardStrength) {
		return model.ValueEntrant{Tier: model.ValueNone}
	}

	return model.ValueEntrant{
		Identified:    true,
		ProgramNumber: winner.entrant.ProgramNumber,
		Name:          winner.entrant.Name,
		BaselineRank:  winner.entrant.BaselineRank,
		Sources:       winner.sources,
		BotCount:      winner.botCount,
		Strength:      winner.strength,
		Tier:          strengthTier(winner.botCount, winner.strength),
		Rationale:     fmt.Sprintf("#%d %s: %s", winner.entrant.ProgramNumber, winner.entrant.Name, strings.Join(winner.rationale, "; ")),
	}
}

// pickCandidate selects by bot count, then strength, then lower baseline rank.
func pickCandidate(candidates map[int]*valueCandidate) *valueCandidate {
	if len(candidates) == 0 {
		return nil
	}
	ordered := make([]*valueCandidate, 0, len(candidates))
	for _, c := range candidates {
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.botCount != b.botCount {
			return a.botCount > b.botCount
		}
		if a.strength != b.strength {
			return a.strength > b.strength
		}
		return a.entrant.BaselineRank < b.entrant.BaselineRank
	})
	return ordered[0]
}

func strengthTier(botCount int, strength float64) model.ValueStrength {
	switch {
	case botCount >= 3 || strength >= 80:
		return model.ValueVeryStrong
	case botCount == 2 || strength >= 50:
		return model.ValueStrong
	case strength >= 30:
		return model.ValueModerate
	default:
		return model.ValueWeak
	}
}
