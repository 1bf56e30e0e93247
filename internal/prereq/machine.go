// Package prereq implements the prerequisite-gap assessment flow that runs
// before the main session: a strict finite-state machine with a pure
// transition function. All suspension (store loads, pretest answers) lives
// in event producers; the machine itself never blocks.
package prereq

import "fmt"

// State is the machine's current position.
type State string

const (
	StateChecking   State = "checking"
	StateOffer      State = "offer"
	StatePretest    State = "pretest"
	StateGaps       State = "gaps"
	StateMiniLesson State = "mini_lesson"
	StateLearning   State = "learning" // terminal: hands off to the session builder
)

// Event is a discrete external trigger. Exactly one event drives each
// transition.
type Event interface {
	name() string
}

// CheckCompleted fires when the prerequisite lookup finishes.
// A non-nil Err is non-fatal: the machine defaults to learning rather
// than blocking the learner.
type CheckCompleted struct {
	PrerequisiteIDs []string
	Err             error
}

func (CheckCompleted) name() string { return "check_completed" }

// PretestAccepted fires when the learner opts into the pretest.
type PretestAccepted struct{}

func (PretestAccepted) name() string { return "pretest_accepted" }

// PretestSkipped fires when the learner declines or abandons the pretest.
type PretestSkipped struct{}

func (PretestSkipped) name() string { return "pretest_skipped" }

// PretestCompleted fires once every pretest question has been answered and
// the gap analysis is computed.
type PretestCompleted struct {
	Analysis GapAnalysis
}

func (PretestCompleted) name() string { return "pretest_completed" }

// LessonRequested fires when the learner picks a gap to remediate.
type LessonRequested struct {
	ConceptID string
}

func (LessonRequested) name() string { return "lesson_requested" }

// LessonFinished fires on mini-lesson completion or explicit back.
type LessonFinished struct{}

func (LessonFinished) name() string { return "lesson_finished" }

// GapsAcknowledged fires when the learner chooses to proceed despite gaps.
type GapsAcknowledged struct{}

func (GapsAcknowledged) name() string { return "gaps_acknowledged" }

// StateError reports an event arriving in a state that does not permit it.
// Programmer error: fail loudly in development, ignore defensively where
// a mid-session recovery is impossible.
type StateError struct {
	State State
	Event string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("event %q not permitted in state %q", e.Event, e.State)
}

// Transition is the pure state function. It returns the next state, whether
// the event marks the pretest as skipped, and a StateError for illegal
// (state, event) pairs. It never suspends and never touches collaborators.
func Transition(s State, ev Event) (State, bool, error) {
	switch s {
	case StateChecking:
		if e, ok := ev.(CheckCompleted); ok {
			// Collaborator failure or no prerequisites: go straight to learning.
			if e.Err != nil || len(e.PrerequisiteIDs) == 0 {
				return StateLearning, false, nil
			}
			return StateOffer, false, nil
		}

	case StateOffer:
		switch ev.(type) {
		case PretestAccepted:
			return StatePretest, false, nil
		case PretestSkipped:
			return StateLearning, true, nil
		}

	case StatePretest:
		switch e := ev.(type) {
		case PretestSkipped:
			return StateLearning, true, nil
		case PretestCompleted:
			// Gaps must never be silently skipped when they exist.
			if e.Analysis.GapCount() > 0 {
				return StateGaps, false, nil
			}
			return StateLearning, false, nil
		}

	case StateGaps:
		switch ev.(type) {
		case LessonRequested:
			return StateMiniLesson, false, nil
		case GapsAcknowledged:
			return StateLearning, false, nil
		}

	case StateMiniLesson:
		if _, ok := ev.(LessonFinished); ok {
			return StateGaps, false, nil
		}

	case StateLearning:
		// Terminal for this sub-machine.
	}

	return s, false, &StateError{State: s, Event: ev.name()}
}

// Machine wraps the transition function with the durable flags the rest of
// the session reads.
type Machine struct {
	state          State
	didSkipPretest bool
	analysis       *GapAnalysis
}

// NewMachine starts in the checking state.
func NewMachine() *Machine {
	return &Machine{state: StateChecking}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// DidSkipPretest is durable for the rest of the session once set.
func (m *Machine) DidSkipPretest() bool { return m.didSkipPretest }

// Analysis returns the gap analysis, or nil before pretest completion.
func (m *Machine) Analysis() *GapAnalysis { return m.analysis }

// Apply advances the machine. Illegal events leave the state untouched and
// return the StateError.
func (m *Machine) Apply(ev Event) error {
	next, skipped, err := Transition(m.state, ev)
	if err != nil {
		return err
	}
	if e, ok := ev.(PretestCompleted); ok {
		a := e.Analysis
		m.analysis = &a
	}
	if skipped {
		m.didSkipPretest = true
	}
	m.state = next
	return nil
}
