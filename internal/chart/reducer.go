package chart

// Reduce returns the state that follows s after e. It never modifies s or
// the slices it references.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case FetchStarted:
		if ev.ID <= s.RequestID {
			return s
		}
		s.RequestID = ev.ID
		s.Loading = true

	case FetchCompleted:
		if ev.ID != s.RequestID {
			return s // superseded
		}
		prev, hovering := s.HoveredSample()
		s.Samples = ev.Result.Samples
		s.Err = ev.Result.Err
		s.Loading = false
		s.Loaded = true
		s.Hover = NoHover
		if hovering {
			s.Hover = indexOf(s, prev.Timestamp)
		}

	case IntervalSelected:
		if ev.Interval == s.Interval {
			return s
		}
		// samples of the previous range are not shown under the new label;
		// the new range is fetched right after
		s.Interval = ev.Interval
		s.Samples = nil
		s.Err = nil
		s.Hover = NoHover
		s.Loading = true

	case PointerMoved:
		if len(s.Samples) == 0 {
			return s
		}
		idx := ev.Index
		if idx < 0 {
			idx = 0
		}
		if idx >= len(s.Samples) {
			idx = len(s.Samples) - 1
		}
		s.Hover = idx

	case PointerLeft:
		s.Hover = NoHover
	}
	return s
}

func indexOf(s State, timestamp string) int {
	for i, sample := range s.Samples {
		if sample.Timestamp == timestamp {
			return i
		}
	}
	return NoHover
}
