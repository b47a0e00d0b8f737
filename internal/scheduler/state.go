package scheduler

import (
	"encoding/json"
	"os"
	"time"
)

// ScanState tracks which card files have already been analyzed, so a restart
// does not re-notify for races it has seen.
type ScanState struct {
	SeenFiles  map[string]string `json:"seen_files"` // file path -> race id
	LastRaceID string            `json:"last_race_id"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// LoadState reads the scan state from a JSON file. Returns an empty state if
// the file doesn't exist.
func LoadState(filePath string) (*ScanState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &ScanState{SeenFiles: map[string]string{}}, nil
		}
		return nil, err
	}
	var state ScanState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state.SeenFiles == nil {
		state.SeenFiles = map[string]string{}
	}
	return &state, nil
}

// SaveState writes the scan state to a JSON file.
func SaveState(filePath string, state *ScanState) error {
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
