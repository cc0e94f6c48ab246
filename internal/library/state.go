package library

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/jdeno416/tradebotx/internal/model"
)

// loadSets reads the library file. Returns an empty map if the file doesn't
// exist.
func loadSets(filePath string) (map[string][]model.Question, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]model.Question{}, nil
		}
		return nil, err
	}
	sets := map[string][]model.Question{}
	if err := json.Unmarshal(data, &sets); err != nil {
		return nil, err
	}
	return sets, nil
}

// saveSets writes the whole library to disk.
func saveSets(filePath string, sets map[string][]model.Question) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(sets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
