package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockChart/internal/model"
)

func samples(prices ...float64) []model.PriceSample {
	out := make([]model.PriceSample, len(prices))
	for i, p := range prices {
		out[i] = model.PriceSample{Timestamp: string(rune('a' + i)), Price: p}
	}
	return out
}

func TestSummarize_Gain(t *testing.T) {
	sum := Summarize(samples(100, 105), -1)

	assert.Equal(t, 105.0, sum.Current)
	assert.Equal(t, 100.0, sum.Open)
	assert.Equal(t, 5.0, sum.Change)
	assert.InDelta(t, 5.0, sum.Percent, 1e-9)
	assert.Equal(t, Up, sum.Direction)
	assert.True(t, sum.Positive())
	assert.False(t, sum.Hovered)
}

func TestSummarize_Loss(t *testing.T) {
	sum := Summarize(samples(200, 150), -1)

	assert.Equal(t, -50.0, sum.Change)
	assert.InDelta(t, -25.0, sum.Percent, 1e-9)
	assert.Equal(t, Down, sum.Direction)
	assert.False(t, sum.Positive())
}

func TestSummarize_Empty(t *testing.T) {
	require.NotPanics(t, func() { Summarize(nil, -1) })
	require.NotPanics(t, func() { Summarize(nil, 3) })

	sum := Summarize(nil, -1)
	assert.Zero(t, sum.Current)
	assert.Zero(t, sum.Open)
	assert.Zero(t, sum.Change)
	assert.Zero(t, sum.Percent)
	assert.Equal(t, Flat, sum.Direction)
}

func TestSummarize_ZeroOpenDoesNotDivide(t *testing.T) {
	sum := Summarize(samples(0, 10), -1)
	assert.Equal(t, 10.0, sum.Change)
	assert.Zero(t, sum.Percent)
}

func TestSummarize_HoverOverridesCurrent(t *testing.T) {
	in := samples(100, 90, 120, 105)
	before := append([]model.PriceSample(nil), in...)

	sum := Summarize(in, 2)

	assert.True(t, sum.Hovered)
	assert.Equal(t, 120.0, sum.Current)
	assert.Equal(t, 20.0, sum.Change)
	assert.Equal(t, before, in)

	// out of range hover falls back to the last sample
	sum = Summarize(in, 9)
	assert.False(t, sum.Hovered)
	assert.Equal(t, 105.0, sum.Current)
}

func TestPriceRange(t *testing.T) {
	low, high, err := PriceRange(samples(101.5, 99.25, 130, 120))
	require.NoError(t, err)
	assert.Equal(t, 99.25, low)
	assert.Equal(t, 130.0, high)

	_, _, err = PriceRange(nil)
	assert.Error(t, err)
}

func TestPosition(t *testing.T) {
	assert.Equal(t, 0.5, Position(10, 10, 10))
	assert.Equal(t, 0.0, Position(5, 10, 20))
	assert.Equal(t, 1.0, Position(25, 10, 20))
	assert.InDelta(t, 0.25, Position(12.5, 10, 20), 1e-9)
}

func TestNearestIndex(t *testing.T) {
	tests := []struct {
		x, width float64
		n        int
		want     int
	}{
		{0, 100, 0, -1},
		{50, 100, 1, 0},
		{0, 100, 5, 0},
		{100, 100, 5, 4},
		{49, 100, 5, 2},
		{-20, 100, 5, 0},
		{500, 100, 5, 4},
		{10, 0, 5, 0},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, NearestIndex(tt.x, tt.width, tt.n), "x=%v width=%v n=%d", tt.x, tt.width, tt.n)
	}
}

func TestIndexOffsetRoundTrip(t *testing.T) {
	const n, width = 37, 71.0
	for i := 0; i < n; i++ {
		assert.Equal(t, i, NearestIndex(IndexOffset(i, n, width), width, n))
	}
}
