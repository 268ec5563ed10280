// Package chart holds the widget's UI state and the pure reducer that
// advances it.
package chart

import "StockChart/internal/model"

// NoHover marks that no sample is under the pointer.
const NoHover = -1

// Status is the coarse rendering state of the chart area.
type Status int

const (
	StatusLoading Status = iota
	StatusFailed
	StatusEmpty
	StatusReady
)

// State is everything the widget renders from.
type State struct {
	Samples  []model.PriceSample
	Interval model.Interval
	// Hover is the index of the sample under the pointer, or NoHover.
	Hover   int
	Loading bool
	// Loaded is set once any poll has been committed.
	Loaded bool
	// Err is the reason the last committed poll failed.
	Err error
	// RequestID is the id of the most recently issued poll. Only its
	// completion is committed.
	RequestID uint64
}

// NewState returns the initial state for the given interval. The widget
// starts out loading.
func NewState(iv model.Interval) State {
	return State{
		Interval: iv,
		Hover:    NoHover,
		Loading:  true,
	}
}

// Status reports what the chart area should show.
func (s State) Status() Status {
	switch {
	case s.Loading:
		return StatusLoading
	case s.Err != nil:
		return StatusFailed
	case len(s.Samples) == 0:
		return StatusEmpty
	default:
		return StatusReady
	}
}

// HoveredSample returns the sample under the pointer, if any.
func (s State) HoveredSample() (model.PriceSample, bool) {
	if s.Hover < 0 || s.Hover >= len(s.Samples) {
		return model.PriceSample{}, false
	}
	return s.Samples[s.Hover], true
}

// Event is an input to Reduce.
type Event interface {
	event()
}

// FetchStarted is dispatched when a poll is issued.
type FetchStarted struct {
	ID uint64
}

// FetchCompleted carries the outcome of poll ID.
type FetchCompleted struct {
	ID     uint64
	Result model.FetchResult
}

// IntervalSelected is dispatched when an interval button is pressed.
type IntervalSelected struct {
	Interval model.Interval
}

// PointerMoved puts the pointer over the sample at Index.
type PointerMoved struct {
	Index int
}

// PointerLeft is dispatched when the pointer leaves the chart.
type PointerLeft struct{}

func (FetchStarted) event()     {}
func (FetchCompleted) event()   {}
func (IntervalSelected) event() {}
func (PointerMoved) event()     {}
func (PointerLeft) event()      {}
