package model

import (
	"fmt"
	"strings"
)

// Interval is a selectable display range.
type Interval string

const (
	Interval1D  Interval = "1D"
	Interval1W  Interval = "1W"
	Interval1M  Interval = "1M"
	Interval3M  Interval = "3M"
	IntervalYTD Interval = "YTD"
	Interval1Y  Interval = "1Y"
	Interval5Y  Interval = "5Y"
	IntervalMax Interval = "MAX"
)

// Intervals lists every label in display order.
var Intervals = []Interval{
	Interval1D, Interval1W, Interval1M, Interval3M,
	IntervalYTD, Interval1Y, Interval5Y, IntervalMax,
}

// ParseInterval accepts a label case-insensitively.
func ParseInterval(s string) (Interval, error) {
	want := Interval(strings.ToUpper(strings.TrimSpace(s)))
	for _, iv := range Intervals {
		if iv == want {
			return iv, nil
		}
	}
	return "", fmt.Errorf("unknown interval %q", s)
}

// Caption is the phrase shown next to the change figure.
func (iv Interval) Caption() string {
	switch iv {
	case Interval1D:
		return "Today"
	case Interval1W:
		return "Past week"
	case Interval1M:
		return "Past month"
	case Interval3M:
		return "Past 3 months"
	case IntervalYTD:
		return "Year to date"
	case Interval1Y:
		return "Past year"
	case Interval5Y:
		return "Past 5 years"
	case IntervalMax:
		return "All time"
	default:
		return ""
	}
}
