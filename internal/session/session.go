package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/synapz/internal/capacity"
)

// Phase is the session lifecycle position.
type Phase int

const (
	PhaseActive Phase = iota
	PhaseComplete
	PhaseCanceled
)

// StateError reports an operation invoked in a phase that does not permit
// it (answering with no active item, advancing a canceled session).
type StateError struct {
	Op    string
	Phase Phase
}

func (e *StateError) Error() string {
	return fmt.Sprintf("operation %q not permitted in session phase %d", e.Op, e.Phase)
}

// Session is the runtime state of one learner session. All state is scoped
// to the instance; nothing is shared across concurrent learner sessions.
type Session struct {
	ID        string
	UserID    string
	ProjectID string
	StartedAt time.Time

	Capacity       capacity.CognitiveCapacity
	DidSkipPretest bool

	// SandboxDeferred is set when capacity was too low to place a sandbox
	// item; the deferral is observable here rather than dropped silently.
	SandboxDeferred bool

	mu           sync.Mutex
	items        []Item
	cursor       int
	phase        Phase
	answered     int
	correctCount int
}

// New creates an active session over an item sequence.
func New(userID, projectID string, items []Item, cap capacity.CognitiveCapacity) *Session {
	return &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProjectID: projectID,
		StartedAt: time.Now(),
		Capacity:  cap,
		items:     items,
		phase:     PhaseActive,
	}
}

// Items returns a copy of the item sequence.
func (s *Session) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the item count.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Current returns the item under the cursor. ok is false when the session
// is complete, canceled, or empty.
func (s *Session) Current() (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseActive || s.cursor >= len(s.items) {
		return Item{}, false
	}
	return s.items[s.cursor], true
}

// Advance moves the cursor to the next item. When the sequence is
// exhausted the session transitions to PhaseComplete and ok is false.
func (s *Session) Advance() (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseActive {
		return Item{}, false
	}
	s.cursor++
	if s.cursor >= len(s.items) {
		s.phase = PhaseComplete
		return Item{}, false
	}
	return s.items[s.cursor], true
}

// RecordAnswer tallies a graded answer against the current item.
// Returns a StateError when no item is active.
func (s *Session) RecordAnswer(correct bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseActive || s.cursor >= len(s.items) {
		return &StateError{Op: "record_answer", Phase: s.phase}
	}
	s.answered++
	if correct {
		s.correctCount++
	}
	return nil
}

// Insert places an item at the given index, shifting the remainder.
// Insertion behind the cursor is rejected: placed items are immutable
// history.
func (s *Session) Insert(index int, item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseActive {
		return &StateError{Op: "insert", Phase: s.phase}
	}
	if index <= s.cursor && s.answered > 0 {
		return &StateError{Op: "insert_before_cursor", Phase: s.phase}
	}
	s.items = InsertAt(s.items, index, item)
	return nil
}

// Cancel tears the session down. Collaborator results arriving afterwards
// must check Canceled and discard.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseActive {
		s.phase = PhaseCanceled
	}
}

// Canceled reports whether the session was torn down.
func (s *Session) Canceled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == PhaseCanceled
}

// Progress returns answered and correct counts.
func (s *Session) Progress() (answered, correct int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answered, s.correctCount
}

// CursorIndex returns the current cursor position.
func (s *Session) CursorIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}
