package model

// PriceSample is a single (timestamp, price) observation.
// Timestamp keeps the upstream encoding, e.g. "2024-05-10 15:55:00".
type PriceSample struct {
	Timestamp string  `json:"datetime"`
	Price     float64 `json:"price"`
}

// FetchResult is the outcome of one quote poll.
// A nil Err with no samples means the upstream had nothing to report.
type FetchResult struct {
	Samples []PriceSample
	Err     error
}

// Success wraps a sample sequence as a successful result.
func Success(samples []PriceSample) FetchResult {
	return FetchResult{Samples: samples}
}

// Failure wraps a fetch or parse error.
func Failure(err error) FetchResult {
	return FetchResult{Err: err}
}

// OK reports whether the poll succeeded.
func (r FetchResult) OK() bool { return r.Err == nil }
