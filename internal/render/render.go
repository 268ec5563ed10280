// Package render draws the widget as text for a terminal.
package render

import (
	"strings"

	"StockChart/internal/chart"
)

// ANSI escape sequences.
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiGreen  = "\033[32m"
	ansiRed    = "\033[31m"
	ansiGray   = "\033[90m"
	ansiOrange = "\033[38;5;202m"
	ansiSelect = "\033[48;5;202m\033[97m"
	clearHome  = "\033[H\033[2J"
)

// Options controls the size and styling of the rendered widget.
type Options struct {
	Title  string
	Width  int
	Height int
	Color  bool
}

// Renderer turns a chart.State into text.
type Renderer struct {
	opts Options
}

// New creates a Renderer. Width and Height are clamped to a usable minimum.
func New(opts Options) *Renderer {
	if opts.Width < 16 {
		opts.Width = 16
	}
	if opts.Height < 4 {
		opts.Height = 4
	}
	return &Renderer{opts: opts}
}

// Width is the plot width in columns.
func (r *Renderer) Width() int { return r.opts.Width }

// View renders the full widget: header, chart area and controls.
func (r *Renderer) View(st chart.State) string {
	var b strings.Builder
	b.WriteString(r.Header(st))
	b.WriteString("\n")
	b.WriteString(r.Plot(st))
	b.WriteString("\n")
	b.WriteString(r.Controls(st))
	b.WriteString("\n")
	return b.String()
}

// Screen is View preceded by a clear-screen sequence when colour output is on.
func (r *Renderer) Screen(st chart.State) string {
	if !r.opts.Color {
		return r.View(st)
	}
	return clearHome + r.View(st)
}

func (r *Renderer) paint(code, s string) string {
	if !r.opts.Color || s == "" {
		return s
	}
	return code + s + ansiReset
}
