package review

import (
	"time"

	"github.com/jdeno416/tradebotx/internal/model"
)

// NoopStore is used when the SQLite store cannot be opened: saves succeed
// but nothing is persisted.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) Append(_ *model.TradeReviewRecord) error          { return nil }
func (n *NoopStore) UpdateOutcome(_ time.Time, _ model.Outcome) error { return ErrNotFound }
func (n *NoopStore) ListAll() ([]model.TradeReviewRecord, error)      { return nil, nil }
func (n *NoopStore) Close() error                                     { return nil }
