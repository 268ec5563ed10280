package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"StockChart/internal/calculator"
	"StockChart/internal/chart"
)

const placeholder = "—"

// FormatPrice formats a price as dollars with thousands separators and two
// decimals, e.g. "$1,234.50".
func FormatPrice(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// FormatChange formats the magnitude of a change and its percentage with a
// direction arrow, e.g. "$5.00 (5.00%) ↑".
func FormatChange(sum calculator.Summary) string {
	arrow := "↑"
	if !sum.Positive() {
		arrow = "↓"
	}
	return fmt.Sprintf("%s (%.2f%%) %s", FormatPrice(math.Abs(sum.Change)), math.Abs(sum.Percent), arrow)
}

// Header renders the title, displayed price and change line.
func (r *Renderer) Header(st chart.State) string {
	sum := calculator.Summarize(st.Samples, st.Hover)

	var b strings.Builder
	title := r.paint(ansiBold, r.opts.Title)
	pad := r.opts.Width - len([]rune(r.opts.Title)) - len("[Advanced]")
	if pad < 1 {
		pad = 1
	}
	b.WriteString(title + strings.Repeat(" ", pad) + r.paint(ansiGray, "[Advanced]") + "\n")

	// no samples: loading, failed or empty. Show placeholders rather than
	// a zero price with an up arrow.
	if len(st.Samples) == 0 {
		b.WriteString(r.paint(ansiBold, placeholder) + "\n")
		b.WriteString(r.paint(ansiGray, placeholder) + " " + r.paint(ansiGray, st.Interval.Caption()) + "\n")
		return b.String()
	}

	b.WriteString(r.paint(ansiBold, FormatPrice(sum.Current)))
	if sample, ok := st.HoveredSample(); ok {
		b.WriteString(r.paint(ansiGray, "  @ "+sample.Timestamp))
	}
	b.WriteString("\n")

	colour := ansiGreen
	if !sum.Positive() {
		colour = ansiRed
	}
	b.WriteString(r.paint(colour, FormatChange(sum)))
	b.WriteString(" " + r.paint(ansiGray, st.Interval.Caption()) + "\n")
	return b.String()
}
