package prefilter

// Tracker wraps a Prefilter and retires it when it stops paying for itself.
//
// A prefilter earns its cost by letting the search loop skip offsets. When
// the prefix is common in the input (a prefix of "e" on English text, say),
// nearly every offset is a candidate and each Find call is pure overhead.
// The tracker measures how many offsets each candidate skipped on average
// and, once that drops below a threshold, stops consulting the prefilter.
//
// After retirement Find returns start itself, so every offset becomes a
// candidate and the search degrades to the plain offset loop. The result of
// the search never changes.
//
// A Tracker is not safe for concurrent use; keep one per search.
//
// Example usage:
//
//	tracker := prefilter.NewTracker(pf)
//	for at := 0; at <= len(line); {
//	    pos := tracker.Find(line, at)
//	    if pos < 0 {
//	        break
//	    }
//	    if matches(line, pos) {
//	        return pos
//	    }
//	    at = pos + 1
//	}
type Tracker struct {
	inner Prefilter

	candidates     uint64
	skipped        uint64
	lastCheckpoint uint64

	checkInterval uint64
	minSkip       float64
	warmupPeriod  uint64

	active bool
}

// TrackerConfig holds configuration for the effectiveness tracker.
type TrackerConfig struct {
	// CheckInterval is how often to check effectiveness (in candidates).
	// Default: 16
	CheckInterval uint64

	// MinSkip is the minimum average number of offsets skipped per
	// candidate. Below it the prefilter is retired.
	// Default: 1.0
	MinSkip float64

	// WarmupPeriod is the number of candidates seen before the first check.
	// Default: 32
	WarmupPeriod uint64
}

// DefaultTrackerConfig returns the default tracker configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 16,
		MinSkip:       1.0,
		WarmupPeriod:  32,
	}
}

// NewTracker creates a tracker with the default configuration.
//
// Returns nil if inner is nil.
func NewTracker(inner Prefilter) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig creates a tracker with a custom configuration.
//
// Returns nil if inner is nil.
func NewTrackerWithConfig(inner Prefilter, config TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}
	return &Tracker{
		inner:         inner,
		checkInterval: config.CheckInterval,
		minSkip:       config.MinSkip,
		warmupPeriod:  config.WarmupPeriod,
		active:        true,
	}
}

// Find returns the next candidate offset >= start, or -1 if there is none.
//
// Once the tracker is retired Find returns start for every start within
// the haystack, including len(haystack).
func (t *Tracker) Find(haystack []byte, start int) int {
	if !t.active {
		if start < 0 || start > len(haystack) {
			return -1
		}
		return start
	}

	pos := t.inner.Find(haystack, start)
	if pos >= 0 {
		t.candidates++
		t.skipped += uint64(pos - start)
		t.checkEffectiveness()
	}
	return pos
}

// IsActive reports whether the inner prefilter is still consulted.
func (t *Tracker) IsActive() bool {
	return t.active
}

// IsComplete delegates to the inner prefilter.
func (t *Tracker) IsComplete() bool {
	return t.inner.IsComplete()
}

// LiteralLen delegates to the inner prefilter.
func (t *Tracker) LiteralLen() int {
	return t.inner.LiteralLen()
}

// Stats returns the current tracking statistics: candidates seen, the
// average number of offsets skipped per candidate, and whether the tracker
// is still active.
func (t *Tracker) Stats() (candidates uint64, avgSkip float64, active bool) {
	candidates = t.candidates
	if candidates > 0 {
		avgSkip = float64(t.skipped) / float64(candidates)
	}
	return candidates, avgSkip, t.active
}

// Reset clears statistics and re-enables the prefilter.
func (t *Tracker) Reset() {
	t.candidates = 0
	t.skipped = 0
	t.lastCheckpoint = 0
	t.active = true
}

// Inner returns the wrapped prefilter.
func (t *Tracker) Inner() Prefilter {
	return t.inner
}

func (t *Tracker) checkEffectiveness() {
	if t.candidates < t.warmupPeriod {
		return
	}
	if t.candidates-t.lastCheckpoint < t.checkInterval {
		return
	}
	t.lastCheckpoint = t.candidates

	if float64(t.skipped)/float64(t.candidates) < t.minSkip {
		t.active = false
	}
}
