package analysis

import (
	"sync"
)

// Phase enumerates the view-state variants. Modelling the slot as a variant
// type rules out impossible combinations like "loading while also holding a
// fresh success".
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// ViewState is a snapshot of the single current-result slot. On error the
// previous result stays attached so a transient failure does not destroy the
// last good display.
type ViewState struct {
	Phase     Phase
	Result    *Result
	ErrReason string
}

// Slot is the one mutable piece of presentation state: the current result
// plus a monotonically increasing request sequence. Responses carry the
// sequence they were issued under; stale ones are discarded instead of
// silently overwriting a newer display.
type Slot struct {
	mu     sync.Mutex
	seq    uint64
	latest uint64
	state  ViewState
}

// NewSlot returns an idle slot
func NewSlot() *Slot {
	return &Slot{state: ViewState{Phase: PhaseIdle}}
}

// Begin issues a new request sequence and moves the slot to loading. The
// previous result remains attached for display while the request is in
// flight.
func (s *Slot) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.latest = s.seq
	s.state = ViewState{Phase: PhaseLoading, Result: s.state.Result}
	return s.seq
}

// Apply installs a successful result if seq still identifies the latest
// issued request. Returns false when the response is stale and was dropped.
func (s *Slot) Apply(seq uint64, r *Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.latest {
		return false
	}
	s.state = ViewState{Phase: PhaseSuccess, Result: r}
	return true
}

// Fail records a request failure if seq is still current. The prior result
// is retained for display.
func (s *Slot) Fail(seq uint64, reason string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.latest {
		return false
	}
	s.state = ViewState{Phase: PhaseError, Result: s.state.Result, ErrReason: reason}
	return true
}

// State returns a snapshot of the current view state
func (s *Slot) State() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
