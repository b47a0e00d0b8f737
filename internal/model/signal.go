package model

// PaceRule names which pace-scenario rule fired for an entrant.
type PaceRule string

const (
	PaceRuleNone        PaceRule = ""
	PaceRuleLoneSpeed   PaceRule = "LONE_SPEED"
	PaceRuleDuelCloser  PaceRule = "DUEL_CLOSER"
	PaceRuleDuelSpeed   PaceRule = "DUEL_SPEED"
	PaceRuleSlowStalker PaceRule = "SLOW_STALKER"
)

// AggregatedSignal is the fused view of all analyzer output for one entrant.
type AggregatedSignal struct {
	ProgramNumber int    `json:"program_number"`
	Name          string `json:"name"`
	BaselineRank  int    `json:"baseline_rank"`

	TripBoost   int  `json:"trip_boost"`
	TripFlagged bool `json:"trip_flagged"`

	PaceAdvantage int      `json:"pace_advantage"`
	PaceFlagged   bool     `json:"pace_flagged"`
	PaceRule      PaceRule `json:"pace_rule,omitempty"`

	Vulnerable           bool     `json:"vulnerable"`
	VulnerabilityReasons []string `json:"vulnerability_reasons,omitempty"`
	VulnerabilityPenalty int      `json:"vulnerability_penalty"`

	FieldClass         FieldClass `json:"field_class,omitempty"`
	FieldClassExplicit bool       `json:"field_class_explicit,omitempty"`

	ClassDropFlagged bool    `json:"class_drop_flagged"`
	ClassDropRaw     float64 `json:"class_drop_raw"`
	ClassDropBoost   float64 `json:"class_drop_boost"`

	TotalAdjustment    float64 `json:"total_adjustment"`
	SignalCount        int     `json:"signal_count"`
	ConflictingSignals bool    `json:"conflicting_signals"`
}

// FavoriteStatus is the verdict on the baseline rank-1 entrant.
type FavoriteStatus string

const (
	FavoriteSolid      FavoriteStatus = "SOLID"
	FavoriteVulnerable FavoriteStatus = "VULNERABLE"
)

// FavoriteCall is the favorite-vulnerability classification with its evidence.
type FavoriteCall struct {
	ProgramNumber int            `json:"program_number"`
	Status        FavoriteStatus `json:"status"`
	Flags         []string       `json:"flags,omitempty"`
}

// ValueStrength tiers the value-entrant signal.
type ValueStrength string

const (
	ValueNone       ValueStrength = "NONE"
	ValueWeak       ValueStrength = "WEAK"
	ValueModerate   ValueStrength = "MODERATE"
	ValueStrong     ValueStrength = "STRONG"
	ValueVeryStrong ValueStrength = "VERY_STRONG"
)

// ValueEntrant names the single entrant, if any, that independent analyzers
// converge on as carrying exploitable value.
type ValueEntrant struct {
	Identified    bool          `json:"identified"`
	ProgramNumber int           `json:"program_number,omitempty"`
	Name          string        `json:"name,omitempty"`
	BaselineRank  int           `json:"baseline_rank,omitempty"`
	Sources       []string      `json:"sources,omitempty"`
	BotCount      int           `json:"bot_count"`
	Strength      float64       `json:"strength"`
	Tier          ValueStrength `json:"tier"`
	Rationale     string        `json:"rationale,omitempty"`
}

// RaceType buckets the overall shape of the race.
type RaceType string

const (
	RaceChalk       RaceType = "CHALK"
	RaceCompetitive RaceType = "COMPETITIVE"
	RaceWideOpen    RaceType = "WIDE_OPEN"
)
