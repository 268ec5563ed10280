// Package widget assembles the stock chart: a state store, the poll
// scheduler and the text renderer.
package widget

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"StockChart/internal/calculator"
	"StockChart/internal/chart"
	"StockChart/internal/console"
	"StockChart/internal/model"
	"StockChart/internal/recorder"
	"StockChart/internal/render"
	"StockChart/internal/scheduler"
)

// Options configures a Widget.
type Options struct {
	Symbol      string
	Provider    string
	Interval    model.Interval
	RefreshSpec string
	Render      render.Options
	// Output receives a full redraw on every state change. Nil disables drawing.
	Output io.Writer
}

// Widget is a single-symbol price chart.
type Widget struct {
	Store     *chart.Store
	Scheduler *scheduler.Scheduler
	Renderer  *render.Renderer

	opts Options
}

// New creates an unmounted widget.
func New(ctx context.Context, loader scheduler.Loader, rec recorder.Recorder, opts Options) *Widget {
	if opts.Interval == "" {
		opts.Interval = model.Interval1D
	}
	if opts.RefreshSpec == "" {
		opts.RefreshSpec = scheduler.DefaultRefreshSpec
	}
	store := chart.NewStore(chart.NewState(opts.Interval))
	sched := scheduler.NewScheduler(ctx, loader, store, rec)
	sched.Symbol = opts.Symbol
	sched.Provider = opts.Provider
	return &Widget{
		Store:     store,
		Scheduler: sched,
		Renderer:  render.New(opts.Render),
		opts:      opts,
	}
}

// Mount starts drawing and polling: one poll now and one per refresh tick.
func (w *Widget) Mount() error {
	if w.opts.Output != nil {
		w.Store.Subscribe(func(st chart.State) {
			fmt.Fprint(w.opts.Output, w.Renderer.Screen(st))
		})
	}
	if err := w.Scheduler.Register(w.opts.RefreshSpec); err != nil {
		return err
	}
	w.Scheduler.Start()
	log.Printf("[INFO] widget mounted: %s %s", w.opts.Symbol, w.Store.State().Interval)
	return nil
}

// Unmount stops polling and freezes the state. Polls still in flight are
// discarded when they complete.
func (w *Widget) Unmount() {
	w.Scheduler.Stop()
	w.Store.Close()
	log.Println("[INFO] widget unmounted")
}

// State returns the current widget state.
func (w *Widget) State() chart.State { return w.Store.State() }

// View renders the current state without escape sequences for clearing.
func (w *Widget) View() string { return w.Renderer.View(w.Store.State()) }

// Summary returns the derived header values for the current state.
func (w *Widget) Summary() calculator.Summary {
	st := w.Store.State()
	return calculator.Summarize(st.Samples, st.Hover)
}

// SelectInterval switches the displayed range. Choosing a different label
// refetches immediately and restarts the refresh timer.
func (w *Widget) SelectInterval(iv model.Interval) error {
	before := w.Store.State().Interval
	if _, ok := w.Store.Dispatch(chart.IntervalSelected{Interval: iv}); !ok {
		return nil
	}
	if before == iv {
		return nil
	}
	return w.Scheduler.Restart()
}

// HoverIndex puts the pointer over sample i.
func (w *Widget) HoverIndex(i int) {
	w.Store.Dispatch(chart.PointerMoved{Index: i})
}

// PointerAt hovers the sample nearest horizontal position x on a surface of
// the given width.
func (w *Widget) PointerAt(x, width float64) {
	n := len(w.Store.State().Samples)
	idx := calculator.NearestIndex(x, width, n)
	if idx < 0 {
		return
	}
	w.HoverIndex(idx)
}

// Leave clears the hovered sample.
func (w *Widget) Leave() {
	w.Store.Dispatch(chart.PointerLeft{})
}

const helpText = `commands:
  1D 1W 1M 3M YTD 1Y 5Y MAX   select range
  hover <index>               hover sample by index
  x <column>                  hover sample under a plot column
  leave                       clear hover
  settings                    settings
  help                        this text
  quit                        exit`

// HandleCommand processes one console command and returns a reply.
func (w *Widget) HandleCommand(command string) (string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", nil
	}
	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		return "", console.ErrQuit
	case "help", "?":
		return helpText, nil
	case "settings":
		return "settings are not available yet", nil
	case "leave":
		w.Leave()
		return "", nil
	case "hover", "x":
		if len(fields) != 2 {
			return "", fmt.Errorf("usage: %s <number>", fields[0])
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return "", fmt.Errorf("not a number: %q", fields[1])
		}
		if strings.EqualFold(fields[0], "x") {
			w.PointerAt(float64(n), float64(w.Renderer.Width()-1))
		} else {
			w.HoverIndex(n)
		}
		return "", nil
	}
	iv, err := model.ParseInterval(fields[0])
	if err != nil {
		return "", fmt.Errorf("unknown command %q (try help)", command)
	}
	return "", w.SelectInterval(iv)
}
