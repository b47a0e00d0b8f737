// Package card loads and validates race-card files carrying the baseline
// ranked entrant list produced by the external scorer.
package card

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tacctile/handicap-app-sub002/internal/model"
)

// Load reads and validates a race card from a JSON file.
func Load(path string) (*model.RaceCard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read race card: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates race-card JSON.
func Parse(data []byte) (*model.RaceCard, error) {
	var c model.RaceCard
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse race card: %w", err)
	}
	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that the card carries a usable baseline ranking. A fully
// scratched field is still valid; the engine returns its terminal result for
// that case.
func Validate(c *model.RaceCard) error {
	if c.RaceID == "" {
		return fmt.Errorf("race card: race_id is required")
	}
	programs := make(map[int]bool, len(c.Entrants))
	ranks := make(map[int]bool, len(c.Entrants))
	for _, e := range c.Entrants {
		if e.ProgramNumber <= 0 {
			return fmt.Errorf("race card %s: entrant %q has invalid program number %d", c.RaceID, e.Name, e.ProgramNumber)
		}
		if programs[e.ProgramNumber] {
			return fmt.Errorf("race card %s: duplicate program number %d", c.RaceID, e.ProgramNumber)
		}
		programs[e.ProgramNumber] = true
		if e.BaselineRank <= 0 {
			return fmt.Errorf("race card %s: entrant #%d has invalid baseline rank %d", c.RaceID, e.ProgramNumber, e.BaselineRank)
		}
		if ranks[e.BaselineRank] {
			return fmt.Errorf("race card %s: duplicate baseline rank %d", c.RaceID, e.BaselineRank)
		}
		ranks[e.BaselineRank] = true
	}
	return nil
}
