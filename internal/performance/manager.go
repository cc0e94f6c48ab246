// Package performance tracks the monthly win/loss tally.
package performance

import (
	"log"
	"sync"

	"github.com/jdeno416/tradebotx/internal/model"
)

// Manager handles the win/loss counters with concurrency safety. State is
// persisted to a JSON file on every change.
type Manager struct {
	mu       sync.Mutex
	state    *model.PerformanceState
	filePath string
}

// NewManager loads or initializes counter state from disk. An unreadable
// file starts fresh and is never fatal.
func NewManager(filePath string) *Manager {
	state, err := LoadState(filePath)
	if err != nil {
		log.Printf("[WARN] load performance state, starting fresh: %v", err)
		state = &model.PerformanceState{}
	}
	return &Manager{state: state, filePath: filePath}
}

// GetState returns a copy of the current counters.
func (m *Manager) GetState() model.PerformanceState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.state
}

// AddWin increments the win counter.
func (m *Manager) AddWin() { m.adjust(1, 0) }

// RemoveWin decrements the win counter, floored at zero.
func (m *Manager) RemoveWin() { m.adjust(-1, 0) }

// AddLoss increments the loss counter.
func (m *Manager) AddLoss() { m.adjust(0, 1) }

// RemoveLoss decrements the loss counter, floored at zero.
func (m *Manager) RemoveLoss() { m.adjust(0, -1) }

// Reset zeroes both counters. Called manually or by the monthly cron task.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.MonthlyWins = 0
	m.state.MonthlyLosses = 0
	m.save()
}

func (m *Manager) adjust(wins, losses int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.MonthlyWins += wins
	if m.state.MonthlyWins < 0 {
		m.state.MonthlyWins = 0
	}
	m.state.MonthlyLosses += losses
	if m.state.MonthlyLosses < 0 {
		m.state.MonthlyLosses = 0
	}
	m.save()
}

func (m *Manager) save() {
	if err := SaveState(m.filePath, m.state); err != nil {
		log.Printf("[ERROR] save performance state: %v", err)
	}
}
