package feed

import "sync"

// MockFetcher returns controllable prices for development and testing.
// If Prices is non-empty, successive calls walk through it and then repeat
// the last value; otherwise Price is returned. A non-nil Err is returned
// instead.
type MockFetcher struct {
	mu     sync.Mutex
	Price  float64
	Prices []float64
	Err    error
	calls  int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchLatestPrice(_ string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return 0, m.Err
	}
	if len(m.Prices) > 0 {
		i := m.calls
		if i >= len(m.Prices) {
			i = len(m.Prices) - 1
		}
		m.calls++
		return m.Prices[i], nil
	}
	return m.Price, nil
}

// SetErr makes subsequent fetches fail with err (nil restores success).
func (m *MockFetcher) SetErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Err = err
}

// SetPrice replaces the fixed price.
func (m *MockFetcher) SetPrice(p float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Price = p
	m.Prices = nil
}
