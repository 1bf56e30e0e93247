package session

import (
	"errors"
	"testing"

	"github.com/abhisek/synapz/internal/capacity"
)

func activeSession(itemCount int) *Session {
	items := Build(reviewPool(itemCount), nil, itemCount)
	cap := capacity.Compute(capacity.Signals{HoursSlept: 8, HourOfDay: 10}, capacity.DefaultConfig())
	return New("user-1", "proj-1", items, cap)
}

func TestAdvanceWalksToCompletion(t *testing.T) {
	s := activeSession(3)

	cur, ok := s.Current()
	if !ok || cur.ConceptID() != "rev-0" {
		t.Fatalf("Current = %v, %v", cur, ok)
	}

	next, ok := s.Advance()
	if !ok || next.ConceptID() != "rev-1" {
		t.Fatalf("Advance = %v, %v", next, ok)
	}
	if _, ok := s.Advance(); !ok {
		// rev-2
		t.Fatal("expected third item")
	}
	if _, ok := s.Advance(); ok {
		t.Fatal("expected completion after last item")
	}
	if s.Phase() != PhaseComplete {
		t.Errorf("Phase = %d, want complete", s.Phase())
	}
}

func TestRecordAnswerRequiresActiveItem(t *testing.T) {
	s := activeSession(1)
	if err := s.RecordAnswer(true); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	s.Advance() // completes the session

	err := s.RecordAnswer(true)
	var stateErr *StateError
	if !errors.As(err, &stateErr) {
		t.Errorf("err = %v, want StateError", err)
	}

	answered, correct := s.Progress()
	if answered != 1 || correct != 1 {
		t.Errorf("Progress = (%d, %d), want (1, 1)", answered, correct)
	}
}

func TestCancelDiscardsLateOperations(t *testing.T) {
	s := activeSession(3)
	s.Cancel()

	if !s.Canceled() {
		t.Fatal("Canceled = false after Cancel")
	}
	if _, ok := s.Current(); ok {
		t.Error("Current should report no item after cancel")
	}
	if _, ok := s.Advance(); ok {
		t.Error("Advance should refuse after cancel")
	}
	if err := s.Insert(2, Item{Kind: ItemSandbox}); err == nil {
		t.Error("Insert should refuse after cancel")
	}
	if err := s.RecordAnswer(true); err == nil {
		t.Error("RecordAnswer should refuse after cancel")
	}
}

func TestCancelAfterCompleteIsNoop(t *testing.T) {
	s := activeSession(1)
	s.Advance()
	s.Cancel()
	if s.Phase() != PhaseComplete {
		t.Errorf("Phase = %d, want complete to stick", s.Phase())
	}
}

func TestInsertAheadOfCursor(t *testing.T) {
	s := activeSession(3)
	if err := s.RecordAnswer(true); err != nil {
		t.Fatal(err)
	}
	s.Advance()

	if err := s.Insert(3, Item{Kind: ItemSynthesis, SynthesisPrompt: "connect"}); err != nil {
		t.Fatalf("Insert ahead of cursor: %v", err)
	}
	if s.Len() != 4 {
		t.Errorf("Len = %d, want 4", s.Len())
	}

	// Inserting into already-answered history is rejected.
	if err := s.Insert(0, Item{Kind: ItemSandbox}); err == nil {
		t.Error("Insert behind cursor should fail")
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	a := activeSession(2)
	b := activeSession(2)
	a.Cancel()
	if b.Canceled() {
		t.Error("canceling one session affected another")
	}
	if a.ID == b.ID {
		t.Error("session IDs must be unique")
	}
}
