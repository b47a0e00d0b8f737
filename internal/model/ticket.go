package model

import "time"

// TicketTemplate is one of the four mutually exclusive construction strategies.
type TicketTemplate string

const (
	TemplateA    TicketTemplate = "A"
	TemplateB    TicketTemplate = "B"
	TemplateC    TicketTemplate = "C"
	TemplatePass TicketTemplate = "PASS"
)

// Label returns the human name for a template.
func (t TicketTemplate) Label() string {
	switch t {
	case TemplateA:
		return "Solid-Favorite"
	case TemplateB:
		return "Vulnerable-Favorite"
	case TemplateC:
		return "Wide-Open"
	case TemplatePass:
		return "No-Edge"
	default:
		return string(t)
	}
}

// PositionSet lists the program numbers allowed in each finishing slot.
// Show is empty for exacta wagers.
type PositionSet struct {
	Win   []int `json:"win"`
	Place []int `json:"place"`
	Show  []int `json:"show,omitempty"`
}

// WagerLine is one wager structure expanded from a template.
type WagerLine struct {
	Positions    PositionSet `json:"positions"`
	Combinations int         `json:"combinations"`
	UnitStake    float64     `json:"unit_stake"`
	Cost         float64     `json:"cost"`
}

// SizingRecommendation is the flat stake recommendation.
type SizingRecommendation string

const (
	SizingStandard      SizingRecommendation = "STANDARD"
	SizingAlgorithmOnly SizingRecommendation = "ALGORITHM_ONLY"
	SizingPass          SizingRecommendation = "PASS"
)

// Sizing carries the stake multiplier and its recommendation.
type Sizing struct {
	Multiplier     float64              `json:"multiplier"`
	Recommendation SizingRecommendation `json:"recommendation"`
}

// ConfidenceTier buckets the 0-100 confidence score.
type ConfidenceTier string

const (
	TierHigh    ConfidenceTier = "HIGH"
	TierMedium  ConfidenceTier = "MEDIUM"
	TierLow     ConfidenceTier = "LOW"
	TierMinimal ConfidenceTier = "MINIMAL"
)

// VerdictAction is the final bet/pass decision.
type VerdictAction string

const (
	ActionBet  VerdictAction = "BET"
	ActionPass VerdictAction = "PASS"
)

// Verdict is the final decision plus its summary text.
type Verdict struct {
	Action  VerdictAction `json:"action"`
	Summary string        `json:"summary"`
}

// EntrantInsight is the per-entrant narrative for the presentation layer.
type EntrantInsight struct {
	ProgramNumber int      `json:"program_number"`
	Name          string   `json:"name"`
	BaselineRank  int      `json:"baseline_rank"`
	Labels        []string `json:"labels,omitempty"`
	Comment       string   `json:"comment,omitempty"`
}

// TicketConstruction is the engine's complete decision for one race.
// GeneratedAt is the only field not determined by the inputs.
type TicketConstruction struct {
	RaceID      string    `json:"race_id"`
	GeneratedAt time.Time `json:"generated_at"`

	RaceType          RaceType       `json:"race_type"`
	Favorite          FavoriteCall   `json:"favorite"`
	Value             ValueEntrant   `json:"value"`
	Template          TicketTemplate `json:"template"`
	TemplateRationale string         `json:"template_rationale"`

	Exacta    WagerLine `json:"exacta"`
	Trifecta  WagerLine `json:"trifecta"`
	TotalCost float64   `json:"total_cost"`

	ConfidenceScore int            `json:"confidence_score"`
	ConfidenceTier  ConfidenceTier `json:"confidence_tier"`
	Sizing          Sizing         `json:"sizing"`
	Verdict         Verdict        `json:"verdict"`

	Signals  []AggregatedSignal `json:"signals"`
	Insights []EntrantInsight   `json:"insights"`

	// NoAnalysis marks the terminal result for an empty field.
	NoAnalysis bool `json:"no_analysis,omitempty"`
}
