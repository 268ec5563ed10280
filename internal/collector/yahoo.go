package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"
	_ "time/tzdata" // exchange zones on hosts without a zoneinfo database

	"StockChart/internal/model"
)

// DefaultYahooURL is the public Yahoo Finance chart endpoint.
const DefaultYahooURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using Yahoo Finance public API.
type YahooFetcher struct {
	BaseURL   string
	Client    HTTPClient
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher(proxyURL string, timeout time.Duration) *YahooFetcher {
	return &YahooFetcher{
		BaseURL: DefaultYahooURL,
		Client:  newHTTPClient(proxyURL, timeout),
		SymbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"NDX":    "^NDX",
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// yahooRanges maps each label to Yahoo's interval and range parameters.
var yahooRanges = map[model.Interval][2]string{
	model.Interval1D:  {"5m", "1d"},
	model.Interval1W:  {"30m", "5d"},
	model.Interval1M:  {"60m", "1mo"},
	model.Interval3M:  {"1d", "3mo"},
	model.IntervalYTD: {"1d", "ytd"},
	model.Interval1Y:  {"1d", "1y"},
	model.Interval5Y:  {"1wk", "5y"},
	model.IntervalMax: {"1mo", "max"},
}

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta       yahooMeta `json:"meta"`
			Timestamp  []int64   `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type yahooMeta struct {
	GMTOffset            int    `json:"gmtoffset"`
	ExchangeTimezoneName string `json:"exchangeTimezoneName"`
}

// location resolves the exchange timezone. Falls back to the reported fixed
// offset, then UTC.
func (m yahooMeta) location() *time.Location {
	if m.ExchangeTimezoneName != "" {
		if loc, err := time.LoadLocation(m.ExchangeTimezoneName); err == nil {
			return loc
		}
	}
	if m.GMTOffset != 0 || m.ExchangeTimezoneName != "" {
		return time.FixedZone(m.ExchangeTimezoneName, m.GMTOffset)
	}
	return time.UTC
}

// yahooTimeLayout matches the datetime encoding used by Twelve Data, which
// reports exchange-local wall time, so both providers produce interchangeable
// samples.
const yahooTimeLayout = "2006-01-02 15:04:05"

func (f *YahooFetcher) FetchSeries(ctx context.Context, symbol string, iv model.Interval) ([]model.PriceSample, error) {
	rng, ok := yahooRanges[iv]
	if !ok {
		return nil, fmt.Errorf("yahoo: unsupported interval %q", iv)
	}
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		f.BaseURL, url.PathEscape(f.yahooSymbol(symbol)), rng[0], rng[1])

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned")
	}

	result := chart.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return []model.PriceSample{}, nil
	}
	closes := result.Indicators.Quote[0].Close

	type bar struct {
		ts    int64
		close float64
	}
	bars := make([]bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue // null bars (halts, holidays)
		}
		bars = append(bars, bar{ts: ts, close: *closes[i]})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].ts < bars[j].ts })

	loc := result.Meta.location()
	samples := make([]model.PriceSample, len(bars))
	for i, b := range bars {
		samples[i] = model.PriceSample{
			Timestamp: time.Unix(b.ts, 0).In(loc).Format(yahooTimeLayout),
			Price:     b.close,
		}
	}
	return samples, nil
}
