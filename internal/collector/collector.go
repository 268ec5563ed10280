package collector

import (
	"context"
	"log"
	"time"

	"StockChart/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price   float64
	Samples []model.PriceSample
	Err     error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSeries(ctx context.Context, _ string, _ model.Interval) ([]model.PriceSample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Samples != nil {
		return m.Samples, nil
	}
	return generateMockSamples(m.Price, 100), nil
}

func generateMockSamples(basePrice float64, count int) []model.PriceSample {
	start := time.Now().Add(-time.Duration(count) * 5 * time.Minute).Truncate(5 * time.Minute)
	samples := make([]model.PriceSample, count)
	for i := 0; i < count; i++ {
		samples[i] = model.PriceSample{
			Timestamp: start.Add(time.Duration(i) * 5 * time.Minute).Format(yahooTimeLayout),
			Price:     basePrice * (1 + float64(i-count/2)*0.001),
		}
	}
	return samples
}

// Collector loads the quote series for one symbol.
type Collector struct {
	Fetcher Fetcher
	Symbol  string
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol string) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol}
}

// Load fetches the series for iv. Failures are logged and returned inside
// the result; Load itself never fails.
func (c *Collector) Load(ctx context.Context, iv model.Interval) model.FetchResult {
	samples, err := c.Fetcher.FetchSeries(ctx, c.Symbol, iv)
	if err != nil {
		log.Printf("[WARN] %s fetch %s %s failed: %v", c.Fetcher.Name(), c.Symbol, iv, err)
		return model.Failure(err)
	}
	if samples == nil {
		samples = []model.PriceSample{}
	}
	return model.Success(samples)
}
