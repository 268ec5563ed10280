package render

import (
	"fmt"
	"math"
	"strings"

	"StockChart/internal/calculator"
	"StockChart/internal/chart"
)

const (
	runePoint = '•'
	runeJoin  = '│'
	runeGuide = '┆'
	runeMark  = '●'
)

// Plot renders the chart area: a loading indicator, a failure or empty
// message, or the price line.
func (r *Renderer) Plot(st chart.State) string {
	switch st.Status() {
	case chart.StatusLoading:
		return r.message(r.paint(ansiOrange, "◌ loading…"))
	case chart.StatusFailed:
		return r.message(r.paint(ansiRed, fmt.Sprintf("quote unavailable: %v", st.Err)))
	case chart.StatusEmpty:
		return r.message(r.paint(ansiGray, "no data for this range"))
	}
	return r.line(st)
}

// message centres text vertically in a blank chart area.
func (r *Renderer) message(text string) string {
	rows := make([]string, r.opts.Height)
	rows[r.opts.Height/2] = "  " + text
	return strings.Join(rows, "\n")
}

// Column returns the plot column sample i of n is drawn in.
func (r *Renderer) Column(i, n int) int {
	return int(math.Round(calculator.IndexOffset(i, n, float64(r.opts.Width-1))))
}

func (r *Renderer) line(st chart.State) string {
	w, h := r.opts.Width, r.opts.Height
	grid := make([][]rune, h)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", w))
	}

	n := len(st.Samples)
	low, high, _ := calculator.PriceRange(st.Samples)
	rowOf := func(price float64) int {
		pos := calculator.Position(price, low, high)
		return int(math.Round((1 - pos) * float64(h-1)))
	}

	// value axis is hidden; the line spans the full height from low to high
	prev := -1
	for c := 0; c < w; c++ {
		idx := calculator.NearestIndex(float64(c), float64(w-1), n)
		row := rowOf(st.Samples[idx].Price)
		if prev >= 0 {
			lo, hi := prev, row
			if lo > hi {
				lo, hi = hi, lo
			}
			for y := lo + 1; y < hi; y++ {
				grid[y][c] = runeJoin
			}
		}
		grid[row][c] = runePoint
		prev = row
	}

	if sample, ok := st.HoveredSample(); ok {
		c := r.Column(st.Hover, n)
		for y := 0; y < h; y += 2 {
			if grid[y][c] == ' ' {
				grid[y][c] = runeGuide
			}
		}
		grid[rowOf(sample.Price)][c] = runeMark
	}

	rows := make([]string, h)
	for y, cells := range grid {
		var b strings.Builder
		for _, cell := range cells {
			switch cell {
			case runePoint, runeJoin:
				b.WriteString(r.paint(ansiOrange, string(cell)))
			case runeGuide:
				b.WriteString(r.paint(ansiGray, string(cell)))
			case runeMark:
				b.WriteString(r.paint(ansiBold, string(cell)))
			default:
				b.WriteRune(cell)
			}
		}
		rows[y] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(rows, "\n")
}
