package chart

import "sync"

// Listener observes every committed state.
type Listener func(State)

// Store serializes events through Reduce and notifies listeners.
// Listeners run with the store locked and must not dispatch.
type Store struct {
	mu        sync.Mutex
	state     State
	listeners []Listener
	closed    bool
}

// NewStore creates a store holding initial.
func NewStore(initial State) *Store {
	return &Store{state: initial}
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers l. It is called once immediately with the current state.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
	l(s.state)
}

// Dispatch applies e and returns the resulting state. After Close it leaves
// the state untouched and returns false.
func (s *Store) Dispatch(e Event) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.state, false
	}
	s.state = Reduce(s.state, e)
	for _, l := range s.listeners {
		l(s.state)
	}
	return s.state, true
}

// Close stops the store from accepting events.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.listeners = nil
}

// Closed reports whether Close has been called.
func (s *Store) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
