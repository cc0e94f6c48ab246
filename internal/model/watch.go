package model

import "time"

// SignalType indicates which threshold a watched price crossed.
type SignalType string

const (
	SignalTargetReached SignalType = "TARGET_REACHED"
	SignalStopLoss      SignalType = "STOP_LOSS"
)

// PriceWatch tracks a symbol's latest traded price against user-set levels.
// Entry, Target and StopLoss are nil until the user sets them; CurrentPrice
// is valid only when HasPrice is true. Stale means the last fetch failed and
// CurrentPrice is the last known value.
type PriceWatch struct {
	Symbol       string
	CurrentPrice float64
	HasPrice     bool
	Stale        bool
	EntryPrice   *float64
	TargetPrice  *float64
	StopLoss     *float64
	UpdatedAt    time.Time
}

// ThresholdSignal is an advisory notification emitted by the monitor.
// It is re-emitted on every polling tick while the condition holds.
type ThresholdSignal struct {
	Type      SignalType
	Symbol    string
	Price     float64
	Threshold float64
	Stale     bool
	At        time.Time
}
