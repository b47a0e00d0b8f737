package model

import "sort"

// RunningStyle is the pace profile assigned by the past-performance data.
type RunningStyle string

const (
	StyleEarly   RunningStyle = "E"
	StylePresser RunningStyle = "E/P"
	StyleStalker RunningStyle = "P"
	StyleCloser  RunningStyle = "S"
)

// TacticalCategory buckets running styles for pace analysis.
type TacticalCategory string

const (
	TacticalEarlySpeed TacticalCategory = "EARLY_SPEED"
	TacticalStalker    TacticalCategory = "STALKER"
	TacticalCloser     TacticalCategory = "CLOSER"
)

// Tactical maps a running style to its tactical category.
// Unknown styles default to stalker, the middle of the field.
func (s RunningStyle) Tactical() TacticalCategory {
	switch s {
	case StyleEarly:
		return TacticalEarlySpeed
	case StyleCloser:
		return TacticalCloser
	default:
		return TacticalStalker
	}
}

// PastRace is one recent running line from the past performances.
type PastRace struct {
	Finish         int    `json:"finish"`
	ClassLevel     int    `json:"class_level"`
	TroubleComment string `json:"trouble_comment,omitempty"`
}

// Entrant is a single competitor in a race. BaselineRank and BaselineScore
// come from the external statistical scorer and are never mutated.
type Entrant struct {
	ProgramNumber int          `json:"program_number"`
	Name          string       `json:"name"`
	BaselineRank  int          `json:"baseline_rank"`
	BaselineScore float64      `json:"baseline_score"`
	Style         RunningStyle `json:"style"`
	Scratched     bool         `json:"scratched,omitempty"`
	ClassLevel    int          `json:"class_level"`
	PastRaces     []PastRace   `json:"past_races,omitempty"`
}

// RaceCard is the baseline ranked entrant list for one race.
type RaceCard struct {
	RaceID     string    `json:"race_id"`
	Track      string    `json:"track"`
	RaceNumber int       `json:"race_number"`
	Date       string    `json:"date"`
	Entrants   []Entrant `json:"entrants"`
}

// Runners returns the non-scratched entrants ordered by baseline rank.
func (c *RaceCard) Runners() []Entrant {
	out := make([]Entrant, 0, len(c.Entrants))
	for _, e := range c.Entrants {
		if !e.Scratched {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BaselineRank < out[j].BaselineRank })
	return out
}

// FieldSize returns the number of non-scratched entrants.
func (c *RaceCard) FieldSize() int {
	n := 0
	for _, e := range c.Entrants {
		if !e.Scratched {
			n++
		}
	}
	return n
}

// ByProgram returns the entrant carrying the given program number, or nil.
func (c *RaceCard) ByProgram(programNumber int) *Entrant {
	for i := range c.Entrants {
		if c.Entrants[i].ProgramNumber == programNumber {
			return &c.Entrants[i]
		}
	}
	return nil
}

// Favorite returns the top-ranked non-scratched entrant, or nil for an empty field.
func (c *RaceCard) Favorite() *Entrant {
	runners := c.Runners()
	if len(runners) == 0 {
		return nil
	}
	return c.ByProgram(runners[0].ProgramNumber)
}
