// Package library persists named question-set templates, keyed by name.
package library

import (
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/jdeno416/tradebotx/internal/model"
)

// Manager holds the saved question sets with concurrency safety. The whole
// library is rewritten to disk on every mutation; names are unique and the
// last save wins.
type Manager struct {
	mu       sync.Mutex
	sets     map[string][]model.Question
	filePath string
}

// NewManager loads the library from disk. A missing or corrupt file starts
// an empty library and is never fatal.
func NewManager(filePath string) *Manager {
	sets, err := loadSets(filePath)
	if err != nil {
		log.Printf("[WARN] load assessments, starting empty: %v", err)
		sets = map[string][]model.Question{}
	}
	return &Manager{sets: sets, filePath: filePath}
}

// Save stores the questions under name, overwriting any existing set.
func (m *Manager) Save(name string, questions []model.Question) error {
	if name == "" {
		return fmt.Errorf("assessment name is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]model.Question, len(questions))
	copy(copied, questions)
	m.sets[name] = copied

	return saveSets(m.filePath, m.sets)
}

// Get returns the named question set, or false if it doesn't exist.
func (m *Manager) Get(name string) (*model.QuestionSet, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	questions, ok := m.sets[name]
	if !ok {
		return nil, false
	}
	copied := make([]model.Question, len(questions))
	copy(copied, questions)
	return &model.QuestionSet{Name: name, Questions: copied}, true
}

// Names returns the saved assessment names in sorted order.
func (m *Manager) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.sets))
	for name := range m.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of saved assessments.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sets)
}
