package recorder

import "time"

// PollStatus classifies the outcome of one poll.
type PollStatus string

const (
	PollOK     PollStatus = "OK"
	PollEmpty  PollStatus = "EMPTY"
	PollFailed PollStatus = "FAILED"
)

// PollEvent is the diagnostic record of one quote poll. It carries counts
// and timings only, never prices.
type PollEvent struct {
	RunID     string
	RequestID uint64
	Symbol    string
	Interval  string
	Provider  string
	Status    PollStatus
	Samples   int
	Error     string
	Duration  time.Duration
	Stale     bool // completed after a newer poll was issued
}

// Recorder persists poll diagnostics.
type Recorder interface {
	RecordPoll(evt *PollEvent) error
	Close() error
}
