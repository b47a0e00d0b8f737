package model

// Confidence grades an analyzer finding.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// TripFinding is one entrant's trip-trouble assessment.
type TripFinding struct {
	ProgramNumber int        `json:"program_number"`
	MaskedAbility bool       `json:"masked_ability"`
	Confidence    Confidence `json:"confidence"`
	TroubledRaces int        `json:"troubled_races"`
	Note          string     `json:"note,omitempty"`
}

// TripTroubleResult is the trip-trouble analyzer payload.
type TripTroubleResult struct {
	Findings []TripFinding `json:"findings"`
}

// FindingFor returns the finding for a program number, or nil.
func (r *TripTroubleResult) FindingFor(programNumber int) *TripFinding {
	for i := range r.Findings {
		if r.Findings[i].ProgramNumber == programNumber {
			return &r.Findings[i]
		}
	}
	return nil
}

// PaceHeat is the projected early-pace temperature.
type PaceHeat string

const (
	PaceHot      PaceHeat = "HOT"
	PaceModerate PaceHeat = "MODERATE"
	PaceSlow     PaceHeat = "SLOW"
)

// PaceScenarioResult is the pace-scenario analyzer payload.
// LoneSpeedProgram is 0 when no lone-speed exception applies.
type PaceScenarioResult struct {
	Heat             PaceHeat `json:"heat"`
	DuelLikely       bool     `json:"duel_likely"`
	LoneSpeedProgram int      `json:"lone_speed_program,omitempty"`
	Note             string   `json:"note,omitempty"`
}

// VulnerableFavoriteResult is the vulnerable-favorite analyzer payload.
// It only ever describes the baseline rank-1 entrant.
type VulnerableFavoriteResult struct {
	ProgramNumber int        `json:"program_number"`
	IsVulnerable  bool       `json:"is_vulnerable"`
	Confidence    Confidence `json:"confidence"`
	Reasons       []string   `json:"reasons,omitempty"`
}

// FieldClass is the field-spread tier letter for one entrant.
type FieldClass string

const (
	FieldClassA       FieldClass = "A"
	FieldClassB       FieldClass = "B"
	FieldClassC       FieldClass = "C"
	FieldClassExclude FieldClass = "EXCLUDE"
)

// FieldType is the field-spread analyzer's overall shape call.
type FieldType string

const (
	FieldWideOpen    FieldType = "WIDE_OPEN"
	FieldDominant    FieldType = "DOMINANT"
	FieldSeparated   FieldType = "SEPARATED"
	FieldCompetitive FieldType = "COMPETITIVE"
	FieldMixed       FieldType = "MIXED"
)

// FieldSpreadResult is the field-spread analyzer payload.
// Classifications is keyed by program number and may be nil, in which case
// letters are inferred from baseline rank.
type FieldSpreadResult struct {
	FieldType       FieldType          `json:"field_type"`
	TopTierCount    int                `json:"top_tier_count"`
	Classifications map[int]FieldClass `json:"classifications,omitempty"`
	KeyCandidates   []int              `json:"key_candidates,omitempty"`
}

// ClassDropSeverity grades a class-drop finding.
type ClassDropSeverity string

const (
	DropMajor    ClassDropSeverity = "MAJOR"
	DropModerate ClassDropSeverity = "MODERATE"
	DropMinor    ClassDropSeverity = "MINOR"
)

// ClassDropFinding is one entrant's class-drop assessment.
type ClassDropFinding struct {
	ProgramNumber int               `json:"program_number"`
	Severity      ClassDropSeverity `json:"severity"`
	RawBoost      float64           `json:"raw_boost"`
	Note          string            `json:"note,omitempty"`
}

// ClassDropResult is the class-drop analyzer payload.
type ClassDropResult struct {
	Findings []ClassDropFinding `json:"findings"`
}

// FindingFor returns the finding for a program number, or nil.
func (r *ClassDropResult) FindingFor(programNumber int) *ClassDropFinding {
	for i := range r.Findings {
		if r.Findings[i].ProgramNumber == programNumber {
			return &r.Findings[i]
		}
	}
	return nil
}

// AnalyzerSet holds the five independent analyzer results for one race.
// A nil field means that analyzer was unavailable (failed, timed out, or
// disabled); absence is a normal state, never an error.
type AnalyzerSet struct {
	TripTrouble        *TripTroubleResult        `json:"trip_trouble,omitempty"`
	Pace               *PaceScenarioResult       `json:"pace,omitempty"`
	VulnerableFavorite *VulnerableFavoriteResult `json:"vulnerable_favorite,omitempty"`
	FieldSpread        *FieldSpreadResult        `json:"field_spread,omitempty"`
	ClassDrop          *ClassDropResult          `json:"class_drop,omitempty"`
}

// AvailableCount returns how many of the five analyzers produced a result.
func (s *AnalyzerSet) AvailableCount() int {
	if s == nil {
		return 0
	}
	n := 0
	if s.TripTrouble != nil {
		n++
	}
	if s.Pace != nil {
		n++
	}
	if s.VulnerableFavorite != nil {
		n++
	}
	if s.FieldSpread != nil {
		n++
	}
	if s.ClassDrop != nil {
		n++
	}
	return n
}
