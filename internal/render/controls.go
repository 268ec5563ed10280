package render

import (
	"strings"

	"StockChart/internal/chart"
	"StockChart/internal/model"
)

// Controls renders the interval buttons and the settings affordance.
func (r *Renderer) Controls(st chart.State) string {
	var b strings.Builder
	for i, iv := range model.Intervals {
		if i > 0 {
			b.WriteString(" ")
		}
		label := string(iv)
		if iv == st.Interval {
			if r.opts.Color {
				b.WriteString(r.paint(ansiSelect, " "+label+" "))
			} else {
				b.WriteString("[" + label + "]")
			}
			continue
		}
		b.WriteString(r.paint(ansiGray, " "+label+" "))
	}
	b.WriteString("   " + r.paint(ansiGray, "⚙"))
	return b.String()
}
