package performance

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/jdeno416/tradebotx/internal/model"
)

// LoadState reads the counter state from a JSON file. Returns a zero state
// if the file doesn't exist.
func LoadState(filePath string) (*model.PerformanceState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.PerformanceState{}, nil
		}
		return nil, err
	}
	var state model.PerformanceState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SaveState writes the counter state to a JSON file.
func SaveState(filePath string, state *model.PerformanceState) error {
	state.UpdatedAt = time.Now()
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
