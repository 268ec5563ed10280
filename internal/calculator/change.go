package calculator

import "StockChart/internal/model"

// Direction is the sign of a price change.
type Direction int

const (
	Flat Direction = iota
	Up
	Down
)

// Summary holds the values derived from a sample sequence for the header.
type Summary struct {
	Current   float64
	Open      float64
	Change    float64
	Percent   float64
	Direction Direction
	Hovered   bool
}

// Positive reports whether the change should be shown as a gain. A flat
// change counts as a gain.
func (s Summary) Positive() bool { return s.Direction != Down }

// Summarize derives current, open, change and percent change. When hover is a
// valid index the hovered sample replaces the last one as the current price.
// An empty sequence yields an all-zero summary.
func Summarize(samples []model.PriceSample, hover int) Summary {
	if len(samples) == 0 {
		return Summary{}
	}
	sum := Summary{
		Open:    samples[0].Price,
		Current: samples[len(samples)-1].Price,
	}
	if hover >= 0 && hover < len(samples) {
		sum.Current = samples[hover].Price
		sum.Hovered = true
	}
	sum.Change = sum.Current - sum.Open
	if sum.Open != 0 {
		sum.Percent = sum.Change / sum.Open * 100
	}
	switch {
	case sum.Change > 0:
		sum.Direction = Up
	case sum.Change < 0:
		sum.Direction = Down
	}
	return sum
}
