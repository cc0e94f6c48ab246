package feed

import (
	"fmt"
	"strings"

	"github.com/piquette/finance-go/quote"
)

// YahooFetcher pulls quotes from Yahoo Finance.
type YahooFetcher struct{}

// NewYahooFetcher creates the default Yahoo Finance fetcher.
func NewYahooFetcher() *YahooFetcher { return &YahooFetcher{} }

func (f *YahooFetcher) Name() string { return "yahoo" }

// FetchLatestPrice returns the regular-market price for the symbol.
func (f *YahooFetcher) FetchLatestPrice(symbol string) (float64, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return 0, fmt.Errorf("symbol is required")
	}

	q, err := quote.Get(symbol)
	if err != nil {
		return 0, fmt.Errorf("yahoo quote %s: %w", symbol, err)
	}
	if q == nil || q.RegularMarketPrice == 0 {
		return 0, fmt.Errorf("yahoo quote %s: %w", symbol, ErrUnavailable)
	}
	return q.RegularMarketPrice, nil
}
