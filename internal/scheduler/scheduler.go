package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"StockChart/internal/chart"
	"StockChart/internal/model"
	"StockChart/internal/recorder"
)

// DefaultRefreshSpec repolls once a minute.
const DefaultRefreshSpec = "@every 60s"

// Loader fetches one series. It reports failures in the result.
type Loader interface {
	Load(ctx context.Context, iv model.Interval) model.FetchResult
}

// Store is the state container polls are committed to.
type Store interface {
	State() chart.State
	Dispatch(e chart.Event) (chart.State, bool)
}

// Scheduler owns the repeating poll timer and the request id sequence.
// Each poll runs in its own goroutine; only the completion of the most
// recently issued poll is committed.
type Scheduler struct {
	Cron     *cron.Cron
	Loader   Loader
	Store    Store
	Recorder recorder.Recorder
	RunID    string
	// Symbol and Provider label diagnostics only.
	Symbol   string
	Provider string

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	spec    string
	entry   cron.EntryID
	nextID  uint64
	stopped bool
}

// NewScheduler creates a new Scheduler. Cancelling ctx aborts in-flight polls.
func NewScheduler(ctx context.Context, loader Loader, store Store, rec recorder.Recorder) *Scheduler {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	ctx, cancel := context.WithCancel(ctx)
	return &Scheduler{
		Cron:     cron.New(),
		Loader:   loader,
		Store:    store,
		Recorder: rec,
		RunID:    uuid.NewString(),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Register schedules the repeating poll.
func (s *Scheduler) Register(spec string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entry != 0 {
		s.Cron.Remove(s.entry)
	}
	id, err := s.Cron.AddFunc(spec, s.Poll)
	if err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	s.spec = spec
	s.entry = id
	return nil
}

// Start starts the cron scheduler and issues the first poll immediately.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Printf("[INFO] scheduler started (%s)", s.spec)
	s.Poll()
}

// Restart re-arms the timer from now and polls immediately.
func (s *Scheduler) Restart() error {
	s.mu.Lock()
	stopped, spec := s.stopped, s.spec
	s.mu.Unlock()
	if stopped {
		return nil
	}
	if spec != "" {
		if err := s.Register(spec); err != nil {
			return err
		}
	}
	s.Poll()
	return nil
}

// Stop stops the timer and aborts in-flight polls. Completions that arrive
// afterwards are dropped.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	s.cancel()
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// Poll issues a poll for the currently selected interval.
func (s *Scheduler) Poll() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.nextID++
	id := s.nextID
	iv := s.Store.State().Interval
	s.Store.Dispatch(chart.FetchStarted{ID: id})
	s.mu.Unlock()

	go s.run(id, iv)
}

func (s *Scheduler) run(id uint64, iv model.Interval) {
	start := time.Now()
	res := s.Loader.Load(s.ctx, iv)
	elapsed := time.Since(start)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		log.Printf("[INFO] dropping poll #%d completed after teardown", id)
		return
	}

	next, ok := s.Store.Dispatch(chart.FetchCompleted{ID: id, Result: res})
	if !ok {
		return
	}
	stale := next.RequestID != id

	evt := &recorder.PollEvent{
		RunID:     s.RunID,
		RequestID: id,
		Symbol:    s.Symbol,
		Interval:  string(iv),
		Provider:  s.Provider,
		Samples:   len(res.Samples),
		Duration:  elapsed,
		Stale:     stale,
	}
	switch {
	case res.Err != nil:
		evt.Status = recorder.PollFailed
		evt.Error = res.Err.Error()
	case len(res.Samples) == 0:
		evt.Status = recorder.PollEmpty
	default:
		evt.Status = recorder.PollOK
	}
	if err := s.Recorder.RecordPoll(evt); err != nil {
		log.Printf("[ERROR] record poll: %v", err)
	}
}
