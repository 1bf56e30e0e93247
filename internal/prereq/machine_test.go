package prereq

import (
	"errors"
	"testing"
)

func TestCheckingWithNoPrerequisitesGoesToLearning(t *testing.T) {
	m := NewMachine()
	if err := m.Apply(CheckCompleted{}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if m.State() != StateLearning {
		t.Errorf("state = %s, want learning", m.State())
	}
}

func TestCheckingWithPrerequisitesOffersPretest(t *testing.T) {
	m := NewMachine()
	if err := m.Apply(CheckCompleted{PrerequisiteIDs: []string{"tcp-basics"}}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if m.State() != StateOffer {
		t.Errorf("state = %s, want offer", m.State())
	}
}

func TestCheckerFailureIsNonFatal(t *testing.T) {
	m := NewMachine()
	err := m.Apply(CheckCompleted{
		PrerequisiteIDs: []string{"tcp-basics"},
		Err:             errors.New("store unreachable"),
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if m.State() != StateLearning {
		t.Errorf("state = %s, want learning (collaborator failure must not block)", m.State())
	}
}

func TestSkipSetsDurableFlagAndNeverEntersGaps(t *testing.T) {
	m := NewMachine()
	mustApply(t, m, CheckCompleted{PrerequisiteIDs: []string{"a", "b"}})
	mustApply(t, m, PretestSkipped{})

	if m.State() != StateLearning {
		t.Errorf("state = %s, want learning", m.State())
	}
	if !m.DidSkipPretest() {
		t.Error("DidSkipPretest must be true after skip")
	}
	if m.Analysis() != nil {
		t.Error("no analysis should exist after a skip")
	}
}

func TestPretestWithGapsEntersGaps(t *testing.T) {
	m := NewMachine()
	mustApply(t, m, CheckCompleted{PrerequisiteIDs: []string{"a", "b", "c"}})
	mustApply(t, m, PretestAccepted{})

	analysis := Analyze([]string{"a", "b", "c"}, map[string]bool{"a": true})
	mustApply(t, m, PretestCompleted{Analysis: analysis})

	if m.State() != StateGaps {
		t.Errorf("state = %s, want gaps", m.State())
	}
	if got := m.Analysis().GapCount(); got != 2 {
		t.Errorf("GapCount = %d, want 2", got)
	}
}

func TestPretestWithoutGapsSkipsGapsState(t *testing.T) {
	m := NewMachine()
	mustApply(t, m, CheckCompleted{PrerequisiteIDs: []string{"a"}})
	mustApply(t, m, PretestAccepted{})
	mustApply(t, m, PretestCompleted{Analysis: Analyze([]string{"a"}, map[string]bool{"a": true})})

	if m.State() != StateLearning {
		t.Errorf("state = %s, want learning", m.State())
	}
	if m.DidSkipPretest() {
		t.Error("completing the pretest is not a skip")
	}
}

func TestMiniLessonRoundTrip(t *testing.T) {
	m := NewMachine()
	mustApply(t, m, CheckCompleted{PrerequisiteIDs: []string{"a", "b"}})
	mustApply(t, m, PretestAccepted{})
	mustApply(t, m, PretestCompleted{Analysis: Analyze([]string{"a", "b"}, nil)})

	mustApply(t, m, LessonRequested{ConceptID: "a"})
	if m.State() != StateMiniLesson {
		t.Fatalf("state = %s, want mini_lesson", m.State())
	}
	mustApply(t, m, LessonFinished{})
	if m.State() != StateGaps {
		t.Fatalf("state = %s, want gaps", m.State())
	}
	mustApply(t, m, GapsAcknowledged{})
	if m.State() != StateLearning {
		t.Errorf("state = %s, want learning", m.State())
	}
}

func TestIllegalEventReturnsStateErrorAndKeepsState(t *testing.T) {
	m := NewMachine()
	err := m.Apply(PretestCompleted{})
	var stateErr *StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("err = %v, want StateError", err)
	}
	if m.State() != StateChecking {
		t.Errorf("state changed on illegal event: %s", m.State())
	}
}

func TestLearningIsTerminal(t *testing.T) {
	m := NewMachine()
	mustApply(t, m, CheckCompleted{})

	for _, ev := range []Event{PretestAccepted{}, PretestSkipped{}, LessonRequested{}, GapsAcknowledged{}} {
		if err := m.Apply(ev); err == nil {
			t.Errorf("event %q accepted in terminal state", ev.name())
		}
	}
}

func mustApply(t *testing.T, m *Machine, ev Event) {
	t.Helper()
	if err := m.Apply(ev); err != nil {
		t.Fatalf("Apply(%s): %v", ev.name(), err)
	}
}
