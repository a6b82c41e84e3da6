// Package swipe implements the client-side swipe stack: an ordered view of
// candidate listings with liked items excluded, advanced one at a time by
// pass/like actions.
package swipe

import (
	"context"
	"errors"
	"sync"

	"github.com/swapspot/swapspot/internal/client/likes"
	"github.com/swapspot/swapspot/internal/marketplace/domain"
)

// State names the session's lifecycle phase.
type State int

const (
	// StateLoading holds until the liked set has been resolved.
	StateLoading State = iota
	// StateActive means the cursor points at a swipeable item.
	StateActive
	// StateExhausted means every remaining item has been passed or liked.
	StateExhausted
	// StateEmpty means the candidate list had no items to begin with. It is
	// terminal apart from Restart, which keeps it Empty.
	StateEmpty
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateActive:
		return "active"
	case StateExhausted:
		return "exhausted"
	case StateEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

var (
	ErrNotActive     = errors.New("swipe: session is not active")
	ErrNotExhausted  = errors.New("swipe: session is not exhausted")
	ErrNotLoading    = errors.New("swipe: session already initialized")
	ErrSessionClosed = errors.New("swipe: session closed")
	ErrLikePending   = errors.New("swipe: a like is still resolving")
)

// Session holds a snapshot of the candidate listings, the liked-ID set, and
// a cursor into the derived remaining stack (candidates minus liked items,
// order preserved). The cursor never exceeds the remaining stack's length;
// equality means exhaustion.
//
// Methods are safe for concurrent use. While a like-add is resolving both
// Like and Pass fail with ErrLikePending, so the cursor cannot move out from
// under the pending add.
type Session struct {
	store      likes.Store
	candidates []*domain.Listing

	mu          sync.Mutex
	state       State
	liked       map[string]struct{}
	remaining   []*domain.Listing
	cursor      int
	likePending bool
	closed      bool
}

// NewSession snapshots candidates in their given order. The session starts
// in StateLoading; call Initialize to resolve the liked set.
func NewSession(store likes.Store, candidates []*domain.Listing) *Session {
	snapshot := make([]*domain.Listing, len(candidates))
	copy(snapshot, candidates)
	return &Session{
		store:      store,
		candidates: snapshot,
		state:      StateLoading,
		liked:      make(map[string]struct{}),
	}
}

// Initialize resolves the liked set from the store, computes the remaining
// stack, and moves the session out of StateLoading. The store call runs
// without the session lock held; a session closed meanwhile discards the
// result.
func (s *Session) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.state != StateLoading {
		s.mu.Unlock()
		return ErrNotLoading
	}
	candidateIDs := make([]string, len(s.candidates))
	for i, c := range s.candidates {
		candidateIDs[i] = c.ID
	}
	s.mu.Unlock()

	likedIDs, err := s.store.List(ctx, candidateIDs)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	if s.state != StateLoading {
		return ErrNotLoading
	}
	for _, id := range likedIDs {
		s.liked[id] = struct{}{}
	}
	s.rebuildRemaining()
	s.cursor = 0
	s.settleState()
	return nil
}

// Pass skips the current item. Valid only in StateActive.
func (s *Session) Pass() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	if s.state != StateActive {
		return ErrNotActive
	}
	if s.likePending {
		return ErrLikePending
	}
	s.cursor++
	if s.cursor == len(s.remaining) {
		s.state = StateExhausted
	}
	return nil
}

// Like records a like for the current item. The store call blocks without
// the session lock held; only on success is the item removed from the stack.
// The cursor does not advance; the next item slides into its place. On
// store failure the session is unchanged and the error is returned, so the
// same action can be retried.
func (s *Session) Like(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.state != StateActive {
		s.mu.Unlock()
		return ErrNotActive
	}
	if s.likePending {
		s.mu.Unlock()
		return ErrLikePending
	}
	item := s.remaining[s.cursor]
	s.likePending = true
	s.mu.Unlock()

	err := s.store.Add(ctx, item.ID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.likePending = false
	if s.closed {
		// Late response after teardown; do not touch state.
		return ErrSessionClosed
	}
	if err != nil {
		return err
	}
	// Pass, Restart and a second Like are all rejected while the add is in
	// flight, so the cursor must still point at the liked item.
	if s.state != StateActive || s.cursor >= len(s.remaining) || s.remaining[s.cursor] != item {
		return ErrNotActive
	}
	s.liked[item.ID] = struct{}{}
	s.rebuildRemaining()
	if s.cursor == len(s.remaining) {
		s.state = StateExhausted
	}
	return nil
}

// Restart rewinds the cursor and recomputes the remaining stack from the
// original candidates minus everything liked so far. Liked items never
// resurface. Valid only in StateExhausted or StateEmpty.
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	if s.state != StateExhausted && s.state != StateEmpty {
		return ErrNotExhausted
	}
	s.rebuildRemaining()
	s.cursor = 0
	s.settleState()
	return nil
}

// Current returns the listing under the cursor, or nil outside StateActive.
func (s *Session) Current() *domain.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive || s.cursor >= len(s.remaining) {
		return nil
	}
	return s.remaining[s.cursor]
}

// RemainingCount reports how many items are left to swipe, the current one
// included.
func (s *Session) RemainingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return 0
	}
	return len(s.remaining) - s.cursor
}

func (s *Session) LikedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.liked)
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close tears the session down. Any in-flight Initialize or Like result is
// discarded instead of mutating disposed state.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// rebuildRemaining and settleState run with s.mu held.

func (s *Session) rebuildRemaining() {
	s.remaining = s.remaining[:0]
	for _, c := range s.candidates {
		if _, ok := s.liked[c.ID]; !ok {
			s.remaining = append(s.remaining, c)
		}
	}
}

func (s *Session) settleState() {
	switch {
	case len(s.candidates) == 0:
		s.state = StateEmpty
	case s.cursor < len(s.remaining):
		s.state = StateActive
	default:
		s.state = StateExhausted
	}
}
