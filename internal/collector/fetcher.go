package collector

import (
	"context"

	"StockChart/internal/model"
)

// Fetcher defines the interface for fetching a quote series.
// Samples are returned oldest first.
type Fetcher interface {
	FetchSeries(ctx context.Context, symbol string, iv model.Interval) ([]model.PriceSample, error)
	Name() string
}
