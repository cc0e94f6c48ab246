// Package review archives saved assessment runs for later outcome tracking.
package review

import (
	"errors"
	"time"

	"github.com/jdeno416/tradebotx/internal/model"
)

// ErrNotFound is returned when an outcome update targets a key that has no
// record. It is recoverable, never fatal.
var ErrNotFound = errors.New("review record not found")

// Store is the append-only archive of trade review records. Records are keyed
// by save time at second resolution; two saves within the same second
// overwrite (last write wins, an accepted limitation). No deletion is
// exposed; outcome is the only mutable field after insert.
type Store interface {
	Append(rec *model.TradeReviewRecord) error
	UpdateOutcome(key time.Time, outcome model.Outcome) error
	ListAll() ([]model.TradeReviewRecord, error)
	Close() error
}
