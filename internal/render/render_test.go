package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockChart/internal/calculator"
	"StockChart/internal/chart"
	"StockChart/internal/model"
)

func plain() *Renderer {
	return New(Options{Title: "NVIDIA", Width: 40, Height: 10})
}

func ready(samples []model.PriceSample) chart.State {
	st := chart.NewState(model.Interval1D)
	st = chart.Reduce(st, chart.FetchStarted{ID: 1})
	return chart.Reduce(st, chart.FetchCompleted{ID: 1, Result: model.Success(samples)})
}

func ramp(n int) []model.PriceSample {
	out := make([]model.PriceSample, n)
	for i := range out {
		out[i] = model.PriceSample{Timestamp: string(rune('A' + i)), Price: 100 + float64(i)}
	}
	return out
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$105.00", FormatPrice(105))
	assert.Equal(t, "$1,234.50", FormatPrice(1234.5))
	assert.Equal(t, "$0.00", FormatPrice(0))
}

func TestFormatChange(t *testing.T) {
	up := calculator.Summarize([]model.PriceSample{{Price: 100}, {Price: 105}}, -1)
	assert.Equal(t, "$5.00 (5.00%) ↑", FormatChange(up))

	down := calculator.Summarize([]model.PriceSample{{Price: 200}, {Price: 150}}, -1)
	assert.Equal(t, "$50.00 (25.00%) ↓", FormatChange(down))
}

func TestHeader(t *testing.T) {
	st := ready([]model.PriceSample{{Timestamp: "t0", Price: 100}, {Timestamp: "t1", Price: 105}})

	out := plain().Header(st)
	assert.Contains(t, out, "NVIDIA")
	assert.Contains(t, out, "[Advanced]")
	assert.Contains(t, out, "$105.00")
	assert.Contains(t, out, "$5.00 (5.00%) ↑ Today")
}

func TestHeader_HoveredPrice(t *testing.T) {
	st := ready([]model.PriceSample{{Timestamp: "t0", Price: 100}, {Timestamp: "t1", Price: 90}, {Timestamp: "t2", Price: 105}})
	st = chart.Reduce(st, chart.PointerMoved{Index: 1})

	out := plain().Header(st)
	assert.Contains(t, out, "$90.00  @ t1")
	assert.Contains(t, out, "↓")
}

func TestHeader_Caption(t *testing.T) {
	st := ready(ramp(3))
	st = chart.Reduce(st, chart.IntervalSelected{Interval: model.IntervalYTD})
	assert.Contains(t, plain().Header(st), "Year to date")
}

func TestHeader_NoSamples(t *testing.T) {
	r := plain()

	failed := chart.NewState(model.Interval1D)
	failed = chart.Reduce(failed, chart.FetchStarted{ID: 1})
	failed = chart.Reduce(failed, chart.FetchCompleted{ID: 1, Result: model.Failure(errors.New("status 429"))})

	for name, st := range map[string]chart.State{
		"loading": chart.NewState(model.Interval1D),
		"failed":  failed,
		"empty":   ready([]model.PriceSample{}),
	} {
		t.Run(name, func(t *testing.T) {
			out := r.Header(st)
			assert.NotContains(t, out, "$0.00")
			assert.NotContains(t, out, "↑")
			assert.NotContains(t, out, "↓")
			assert.Contains(t, out, "—\n")
			assert.Contains(t, out, "— Today")
		})
	}
}

func TestHeader_NoSamplesIsGray(t *testing.T) {
	r := New(Options{Title: "Tesla", Width: 40, Height: 10, Color: true})
	out := r.Header(ready([]model.PriceSample{}))
	assert.NotContains(t, out, ansiGreen)
	assert.NotContains(t, out, ansiRed)
}

func TestPlot_States(t *testing.T) {
	r := plain()

	assert.Contains(t, r.Plot(chart.NewState(model.Interval1D)), "loading")

	failed := chart.NewState(model.Interval1D)
	failed = chart.Reduce(failed, chart.FetchStarted{ID: 1})
	failed = chart.Reduce(failed, chart.FetchCompleted{ID: 1, Result: model.Failure(errors.New("status 429"))})
	assert.Contains(t, r.Plot(failed), "quote unavailable: status 429")

	assert.Contains(t, r.Plot(ready([]model.PriceSample{})), "no data")
}

func TestPlot_LineSpansRange(t *testing.T) {
	r := plain()
	out := r.Plot(ready(ramp(10)))
	rows := strings.Split(out, "\n")
	require.Len(t, rows, 10)

	// rising series: lowest price bottom-left, highest top-right
	assert.True(t, strings.HasPrefix(rows[9], string(runePoint)))
	assert.True(t, strings.HasSuffix(rows[0], string(runePoint)))
	assert.NotContains(t, out, string(runeGuide))
}

func TestPlot_FlatSeries(t *testing.T) {
	flat := []model.PriceSample{{Timestamp: "a", Price: 5}, {Timestamp: "b", Price: 5}}
	rows := strings.Split(plain().Plot(ready(flat)), "\n")
	assert.Equal(t, strings.Repeat(string(runePoint), 40), rows[5])
}

func TestPlot_HoverGuide(t *testing.T) {
	r := plain()
	st := chart.Reduce(ready(ramp(10)), chart.PointerMoved{Index: 3})
	out := r.Plot(st)

	col := r.Column(3, 10)
	rows := strings.Split(out, "\n")
	var guides int
	for _, row := range rows {
		cells := []rune(row)
		if col < len(cells) && cells[col] == runeGuide {
			guides++
		}
	}
	assert.Positive(t, guides)
	assert.Equal(t, 1, strings.Count(out, string(runeMark)))
}

func TestControls(t *testing.T) {
	st := chart.NewState(model.Interval3M)
	out := plain().Controls(st)
	assert.Contains(t, out, "[3M]")
	assert.NotContains(t, out, "[1D]")
	for _, iv := range model.Intervals {
		assert.Contains(t, out, string(iv))
	}
	assert.Contains(t, out, "⚙")
}

func TestView_Color(t *testing.T) {
	r := New(Options{Title: "NVIDIA", Width: 40, Height: 10, Color: true})
	out := r.Screen(ready(ramp(5)))
	assert.True(t, strings.HasPrefix(out, clearHome))
	assert.Contains(t, out, ansiOrange)
	assert.Contains(t, out, ansiGreen)

	assert.NotContains(t, plain().Screen(ready(ramp(5))), "\033[")
}
