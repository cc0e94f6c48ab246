// Package monitor polls a price source and compares the latest traded price
// against user-set entry, target and stop-loss levels.
package monitor

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/jdeno416/tradebotx/internal/feed"
	"github.com/jdeno416/tradebotx/internal/model"
)

// SignalFunc receives advisory threshold signals. Purely informational: no
// order is ever placed.
type SignalFunc func(model.ThresholdSignal)

// Monitor polls the feed on a fixed interval and re-evaluates the watch on
// every tick. Signals are level-triggered: while a condition holds, the
// signal is emitted again on each tick.
//
// Stale policy: a failed fetch keeps the last known price and flags the
// watch stale instead of blanking it; the failure degrades the signal, it
// never crashes the loop.
type Monitor struct {
	mu       sync.Mutex
	fetcher  feed.Fetcher
	watch    model.PriceWatch
	interval time.Duration
	onSignal SignalFunc
}

// NewMonitor creates a monitor. onSignal may be nil to discard signals.
func NewMonitor(fetcher feed.Fetcher, interval time.Duration, onSignal SignalFunc) *Monitor {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Monitor{fetcher: fetcher, interval: interval, onSignal: onSignal}
}

// SetSymbol switches the watched symbol, discarding the previous price.
// User-set levels are kept; they belong to the active session.
func (m *Monitor) SetSymbol(symbol string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.watch.Symbol = symbol
	m.watch.CurrentPrice = 0
	m.watch.HasPrice = false
	m.watch.Stale = false
}

// SetLevels sets the user thresholds. Nil clears a level.
func (m *Monitor) SetLevels(entry, target, stop *float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.watch.EntryPrice = entry
	m.watch.TargetPrice = target
	m.watch.StopLoss = stop
}

// Snapshot returns a copy of the current watch state.
func (m *Monitor) Snapshot() model.PriceWatch {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.watch
}

// Run polls until ctx is cancelled. Cancelling suspends the monitor without
// touching any other component; a new Run resumes from the kept watch state.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	log.Printf("[INFO] price monitor started (source=%s, interval=%s)", m.fetcher.Name(), m.interval)
	for {
		select {
		case <-ctx.Done():
			log.Println("[INFO] price monitor stopped")
			return
		case <-ticker.C:
			m.Tick()
		}
	}
}

// Tick performs one poll-and-evaluate cycle.
func (m *Monitor) Tick() {
	m.mu.Lock()
	symbol := m.watch.Symbol
	m.mu.Unlock()
	if symbol == "" {
		return
	}

	price, err := m.fetcher.FetchLatestPrice(symbol)

	m.mu.Lock()
	if err != nil {
		log.Printf("[WARN] fetch %s failed, keeping last price: %v", symbol, err)
		m.watch.Stale = true
	} else {
		m.watch.CurrentPrice = price
		m.watch.HasPrice = true
		m.watch.Stale = false
		m.watch.UpdatedAt = time.Now()
	}
	watch := m.watch
	m.mu.Unlock()

	if sig, ok := EvaluateWatch(watch, time.Now()); ok && m.onSignal != nil {
		m.onSignal(sig)
	}
}

// EvaluateWatch compares the watched price to its thresholds. Target takes
// precedence over stop-loss; levels that are unset never fire.
func EvaluateWatch(w model.PriceWatch, at time.Time) (model.ThresholdSignal, bool) {
	if !w.HasPrice {
		return model.ThresholdSignal{}, false
	}
	sig := model.ThresholdSignal{
		Symbol: w.Symbol,
		Price:  w.CurrentPrice,
		Stale:  w.Stale,
		At:     at,
	}
	switch {
	case w.TargetPrice != nil && w.CurrentPrice >= *w.TargetPrice:
		sig.Type = model.SignalTargetReached
		sig.Threshold = *w.TargetPrice
	case w.StopLoss != nil && w.CurrentPrice <= *w.StopLoss:
		sig.Type = model.SignalStopLoss
		sig.Threshold = *w.StopLoss
	default:
		return model.ThresholdSignal{}, false
	}
	return sig, true
}
