package engine

import (
	"github.com/tacctile/handicap-app-sub002/internal/model"
)

// Adjustment caps for a single entrant's fused signal.
const (
	minAdjustment = -3.0
	maxAdjustment = 3.0
)

// AggregateSignals fuses all five analyzer results into one AggregatedSignal
// per non-scratched entrant, in baseline rank order. Aggregation runs in two
// phases: phase 1 collects the primary signals (trip, pace, vulnerability,
// field class), phase 2 applies class drop strictly as reinforcement of an
// entrant already flagged in phase 1. Signals naming a program number absent
// from the card are discarded. The function is pure and total.
func AggregateSignals(card *model.RaceCard, set *model.AnalyzerSet, conservative bool) []model.AggregatedSignal {
	if set == nil {
		set = &model.AnalyzerSet{}
	}
	runners := card.Runners()
	favProgram := 0
	if len(runners) > 0 {
		favProgram = runners[0].ProgramNumber
	}
	signals := make([]model.AggregatedSignal, 0, len(runners))
	for i := range runners {
		signals = append(signals, aggregateEntrant(card, &runners[i], set, favProgram, conservative))
	}
	return signals
}

func aggregateEntrant(card *model.RaceCard, e *model.Entrant, set *model.AnalyzerSet, favProgram int, conservative bool) model.AggregatedSignal {
	sig := model.AggregatedSignal{
		ProgramNumber: e.ProgramNumber,
		Name:          e.Name,
		BaselineRank:  e.BaselineRank,
	}

	// Phase 1: primary signals, each analyzer evaluated independently.
	applyTripTrouble(&sig, e, set.TripTrouble, conservative)
	applyPaceScenario(&sig, e, set.Pace, card)
	applyVulnerability(&sig, e, set.VulnerableFavorite, favProgram)
	applyFieldSpread(&sig, e, set.FieldSpread, card)

	// Phase 2: class drop reinforces an entrant phase 1 already flagged;
	// it never contributes on its own.
	applyClassDrop(&sig, e, set.ClassDrop, conservative)

	sig.TotalAdjustment = clamp(
		float64(sig.TripBoost)+float64(sig.PaceAdvantage)+float64(sig.VulnerabilityPenalty)+sig.ClassDropBoost,
		minAdjustment, maxAdjustment)
	sig.SignalCount = countSignals(&sig)
	sig.ConflictingSignals = hasConflict(&sig)
	return sig
}

func applyTripTrouble(sig *model.AggregatedSignal, e *model.Entrant, trip *model.TripTroubleResult, conservative bool) {
	if trip == nil {
		return
	}
	f := trip.FindingFor(e.ProgramNumber)
	if f == nil || !f.MaskedAbility {
		return
	}
	sig.TripFlagged = true
	if f.Confidence == model.ConfidenceHigh {
		sig.TripBoost = 2
	} else {
		sig.TripBoost = 1
	}
	if conservative && sig.TripBoost > 1 {
		sig.TripBoost = 1
	}
}

// applyPaceScenario applies the first matching pace rule only.
func applyPaceScenario(sig *model.AggregatedSignal, e *model.Entrant, pace *model.PaceScenarioResult, card *model.RaceCard) {
	if pace == nil {
		return
	}
	if pace.LoneSpeedProgram != 0 && card.ByProgram(pace.LoneSpeedProgram) == nil {
		// Lone-speed call names an entrant not on the card; discard it.
		pace = &model.PaceScenarioResult{Heat: pace.Heat, DuelLikely: pace.DuelLikely, Note: pace.Note}
	}
	tactical := e.Style.Tactical()
	switch {
	case pace.LoneSpeedProgram == e.ProgramNumber && tactical == model.TacticalEarlySpeed:
		sig.PaceAdvantage = 2
		sig.PaceRule = model.PaceRuleLoneSpeed
	case pace.DuelLikely && pace.Heat == model.PaceHot && tactical == model.TacticalCloser:
		sig.PaceAdvantage = 1
		sig.PaceRule = model.PaceRuleDuelCloser
	case pace.DuelLikely && pace.Heat == model.PaceHot && tactical == model.TacticalEarlySpeed:
		sig.PaceAdvantage = -1
		sig.PaceRule = model.PaceRuleDuelSpeed
	case pace.Heat == model.PaceSlow && tactical == model.TacticalStalker && pace.LoneSpeedProgram == 0:
		sig.PaceAdvantage = 1
		sig.PaceRule = model.PaceRuleSlowStalker
	}
	sig.PaceFlagged = sig.PaceRule != model.PaceRuleNone
}

// applyVulnerability records the vulnerable-favorite flags on the baseline
// top-ranked runner. The numeric penalty depends on confidence, which is why
// it lives here in the totals path rather than in the classifier.
func applyVulnerability(sig *model.AggregatedSignal, e *model.Entrant, vf *model.VulnerableFavoriteResult, favProgram int) {
	if vf == nil || !vf.IsVulnerable || e.ProgramNumber != favProgram {
		return
	}
	if vf.ProgramNumber != 0 && vf.ProgramNumber != e.ProgramNumber {
		// The analyzer flagged someone other than the baseline favorite;
		// that reference is invalid here, so the signal is dropped.
		return
	}
	sig.Vulnerable = true
	sig.VulnerabilityReasons = append([]string(nil), vf.Reasons...)
	switch vf.Confidence {
	case model.ConfidenceHigh:
		sig.VulnerabilityPenalty = -2
	case model.ConfidenceMedium:
		sig.VulnerabilityPenalty = -1
	}
}

func applyFieldSpread(sig *model.AggregatedSignal, e *model.Entrant, fs *model.FieldSpreadResult, card *model.RaceCard) {
	if fs == nil {
		return
	}
	if cls, ok := fs.Classifications[e.ProgramNumber]; ok {
		sig.FieldClass = cls
		sig.FieldClassExplicit = true
		return
	}
	sig.FieldClass = inferFieldClass(e.BaselineRank, fs.TopTierCount, card.FieldSize())
}

// inferFieldClass derives a tier letter from baseline rank when the analyzer
// supplied no explicit per-entrant classification.
func inferFieldClass(rank, topTier, fieldSize int) model.FieldClass {
	if topTier <= 0 {
		topTier = 1
	}
	switch {
	case rank <= topTier:
		return model.FieldClassA
	case rank <= topTier+2:
		return model.FieldClassB
	case fieldSize >= 4 && rank > fieldSize-fieldSize/4:
		return model.FieldClassExclude
	default:
		return model.FieldClassC
	}
}

func applyClassDrop(sig *model.AggregatedSignal, e *model.Entrant, cd *model.ClassDropResult, conservative bool) {
	if cd == nil {
		return
	}
	f := cd.FindingFor(e.ProgramNumber)
	if f == nil {
		return
	}
	sig.ClassDropFlagged = true
	sig.ClassDropRaw = f.RawBoost
	// Reinforcement only: the boost counts only when phase 1 already
	// flagged this entrant with trip trouble or a positive pace edge.
	if !conservative && (sig.TripFlagged || sig.PaceAdvantage > 0) {
		sig.ClassDropBoost = f.RawBoost
	}
}

func countSignals(sig *model.AggregatedSignal) int {
	n := 0
	if sig.TripFlagged {
		n++
	}
	if sig.PaceFlagged {
		n++
	}
	if sig.Vulnerable {
		n++
	}
	if sig.FieldClassExplicit {
		n++
	}
	if sig.ClassDropFlagged {
		n++
	}
	return n
}

func hasConflict(sig *model.AggregatedSignal) bool {
	if sig.PaceAdvantage > 0 && sig.FieldClass == model.FieldClassExclude {
		return true
	}
	if sig.Vulnerable && sig.TripBoost > 0 {
		return true
	}
	if sig.TripBoost > 0 && sig.PaceAdvantage < 0 {
		return true
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
