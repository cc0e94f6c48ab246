package model

import "time"

// PerformanceState tracks the monthly win/loss tally.
type PerformanceState struct {
	MonthlyWins   int       `json:"monthly_wins"`
	MonthlyLosses int       `json:"monthly_losses"`
	UpdatedAt     time.Time `json:"updated_at"`
}
