package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"StockChart/internal/model"
)

// DefaultTwelveDataURL is the public Twelve Data REST endpoint.
const DefaultTwelveDataURL = "https://api.twelvedata.com"

// TwelveDataFetcher implements Fetcher using the Twelve Data time_series API.
type TwelveDataFetcher struct {
	BaseURL string
	APIKey  string
	Client  HTTPClient
	// Now is used for date-anchored ranges such as YTD.
	Now func() time.Time
}

// NewTwelveDataFetcher creates a new fetcher with optional proxy support.
func NewTwelveDataFetcher(baseURL, apiKey, proxyURL string, timeout time.Duration) *TwelveDataFetcher {
	if baseURL == "" {
		baseURL = DefaultTwelveDataURL
	}
	return &TwelveDataFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client:  newHTTPClient(proxyURL, timeout),
		Now:     time.Now,
	}
}

func (f *TwelveDataFetcher) Name() string { return "twelvedata" }

// tdQuery is the bar size and count requested for one interval label.
type tdQuery struct {
	Interval   string
	OutputSize int
	YearStart  bool
}

var tdQueries = map[model.Interval]tdQuery{
	model.Interval1D:  {Interval: "5min", OutputSize: 100},
	model.Interval1W:  {Interval: "30min", OutputSize: 70},
	model.Interval1M:  {Interval: "1h", OutputSize: 150},
	model.Interval3M:  {Interval: "1day", OutputSize: 63},
	model.IntervalYTD: {Interval: "1day", OutputSize: 5000, YearStart: true},
	model.Interval1Y:  {Interval: "1day", OutputSize: 252},
	model.Interval5Y:  {Interval: "1week", OutputSize: 260},
	model.IntervalMax: {Interval: "1month", OutputSize: 5000},
}

// tdSeries is the expected JSON shape from /time_series.
// Error responses carry status "error" with a code and message instead of values.
type tdSeries struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Values  []struct {
		Datetime string `json:"datetime"`
		Close    string `json:"close"`
	} `json:"values"`
}

// Query builds the query parameters sent for symbol at interval iv.
func (f *TwelveDataFetcher) Query(symbol string, iv model.Interval) (url.Values, error) {
	q, ok := tdQueries[iv]
	if !ok {
		return nil, fmt.Errorf("twelvedata: unsupported interval %q", iv)
	}
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("interval", q.Interval)
	params.Set("apikey", f.APIKey)
	params.Set("format", "JSON")
	params.Set("outputsize", strconv.Itoa(q.OutputSize))
	if q.YearStart {
		now := time.Now
		if f.Now != nil {
			now = f.Now
		}
		year := now().Year()
		params.Set("start_date", fmt.Sprintf("%04d-01-01", year))
	}
	return params, nil
}

func (f *TwelveDataFetcher) FetchSeries(ctx context.Context, symbol string, iv model.Interval) ([]model.PriceSample, error) {
	params, err := f.Query(symbol, iv)
	if err != nil {
		return nil, err
	}
	endpoint := fmt.Sprintf("%s/time_series?%s", f.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("twelvedata: create request: %w", err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("twelvedata fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("twelvedata read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("twelvedata: status %d, body: %s", resp.StatusCode, string(body))
	}

	var series tdSeries
	if err := json.Unmarshal(body, &series); err != nil {
		return nil, fmt.Errorf("twelvedata decode: %w", err)
	}
	if series.Status == "error" {
		return nil, fmt.Errorf("twelvedata api error %d: %s", series.Code, series.Message)
	}

	samples := make([]model.PriceSample, 0, len(series.Values))
	for _, v := range series.Values {
		price, err := decimal.NewFromString(v.Close)
		if err != nil {
			return nil, fmt.Errorf("twelvedata: parse close %q at %s: %w", v.Close, v.Datetime, err)
		}
		samples = append(samples, model.PriceSample{
			Timestamp: v.Datetime,
			Price:     price.InexactFloat64(),
		})
	}
	// Upstream lists the newest bar first.
	slices.Reverse(samples)
	return samples, nil
}
