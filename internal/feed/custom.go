package feed

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// CustomFetcher pulls quotes from a self-hosted REST quote endpoint.
// Expected response shape: {"symbol": "...", "price": 123.45}.
type CustomFetcher struct {
	client *resty.Client
}

// NewCustomFetcher creates a fetcher against the given base URL, with an
// optional bearer API key and proxy.
func NewCustomFetcher(baseURL, apiKey, proxyURL string) *CustomFetcher {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second)
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &CustomFetcher{client: client}
}

func (f *CustomFetcher) Name() string { return "custom" }

type quoteResponse struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// FetchLatestPrice queries /api/v1/quote for the symbol.
func (f *CustomFetcher) FetchLatestPrice(symbol string) (float64, error) {
	var result quoteResponse
	resp, err := f.client.R().
		SetQueryParam("symbol", symbol).
		SetResult(&result).
		Get("/api/v1/quote")
	if err != nil {
		return 0, fmt.Errorf("fetch quote: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return 0, fmt.Errorf("quote %s: %w", symbol, ErrUnavailable)
	}
	if resp.StatusCode() != http.StatusOK {
		return 0, fmt.Errorf("fetch quote: status %d", resp.StatusCode())
	}
	if result.Price == 0 {
		return 0, fmt.Errorf("quote %s: %w", symbol, ErrUnavailable)
	}
	return result.Price, nil
}
