package meta

import (
	"sync"

	"github.com/coregx/minigrep/backtrack"
	"github.com/coregx/minigrep/prefilter"
)

// searchState holds per-search mutable state so that one Engine can serve
// many goroutines. States are obtained from a sync.Pool and must not be
// shared between goroutines.
type searchState struct {
	// caps is the capture table reused for every attempt of a search.
	caps *backtrack.Captures

	// tracker wraps the engine's prefilter for this search; nil when the
	// engine has no prefilter.
	tracker *prefilter.Tracker
}

func newSearchState(numGroups int, pf prefilter.Prefilter) *searchState {
	return &searchState{
		caps:    backtrack.NewCaptures(numGroups),
		tracker: prefilter.NewTracker(pf),
	}
}

// reset prepares the state for the next search.
func (s *searchState) reset() {
	s.caps.Reset()
	if s.tracker != nil {
		s.tracker.Reset()
	}
}

// searchStatePool manages searchState instances, following the stdlib
// regexp pattern of pooling per-search machines.
type searchStatePool struct {
	pool sync.Pool

	numGroups int
	prefilter prefilter.Prefilter
}

func newSearchStatePool(numGroups int, pf prefilter.Prefilter) *searchStatePool {
	p := &searchStatePool{
		numGroups: numGroups,
		prefilter: pf,
	}
	p.pool = sync.Pool{
		New: func() any {
			return newSearchState(p.numGroups, p.prefilter)
		},
	}
	return p
}

// get returns a reset state.
func (p *searchStatePool) get() *searchState {
	state := p.pool.Get().(*searchState)
	state.reset()
	return state
}

func (p *searchStatePool) put(state *searchState) {
	if state == nil {
		return
	}
	p.pool.Put(state)
}
