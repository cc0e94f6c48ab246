// Package feed pulls latest traded prices from external market-data sources.
package feed

import "errors"

// ErrUnavailable means the source answered but had no usable price for the
// symbol. Treated as a transient condition by callers.
var ErrUnavailable = errors.New("price unavailable")

// Fetcher is a pull-based price source. No push semantics are assumed.
type Fetcher interface {
	FetchLatestPrice(symbol string) (float64, error)
	Name() string
}
