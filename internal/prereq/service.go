package prereq

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/synapz/internal/concepts"
)

// Checker produces CheckCompleted events by asking the content store which
// prerequisites of the target concepts the learner has not yet covered.
// It is the suspension boundary for the state machine: it may block on the
// store, the machine never does.
type Checker struct {
	store  concepts.ContentStore
	logger *zap.Logger
}

// NewChecker creates a prerequisite checker.
func NewChecker(store concepts.ContentStore, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{store: store, logger: logger}
}

// Check loads the concept graph and mastery states and returns the
// CheckCompleted event for the machine. Store failures are embedded in the
// event rather than returned: the machine treats them as non-fatal and
// falls through to learning.
func (c *Checker) Check(ctx context.Context, projectID, userID string, targetIDs []string) CheckCompleted {
	list, err := c.store.LoadConcepts(ctx, projectID)
	if err != nil {
		c.logger.Warn("prerequisite check failed, defaulting to learning",
			zap.String("project_id", projectID), zap.Error(err))
		return CheckCompleted{Err: &concepts.StoreError{Code: "load_concepts", Err: err}}
	}

	graph, err := concepts.NewGraph(list)
	if err != nil {
		c.logger.Warn("concept graph invalid, defaulting to learning", zap.Error(err))
		return CheckCompleted{Err: err}
	}

	mastery, err := c.store.LoadMasteryStates(ctx, projectID, userID)
	if err != nil {
		c.logger.Warn("mastery load failed, defaulting to learning", zap.Error(err))
		return CheckCompleted{Err: &concepts.StoreError{Code: "load_mastery", Err: err}}
	}

	var unmet []string
	for _, pre := range graph.TransitivePrerequisites(targetIDs...) {
		st, ok := mastery[pre.ID]
		if !ok || st.State == concepts.StateUnseen || st.State == concepts.StateLearning {
			unmet = append(unmet, pre.ID)
		}
	}

	return CheckCompleted{PrerequisiteIDs: unmet}
}

// PretestQuestions selects one question per prerequisite from the concept
// banks, skipping prerequisites with empty banks.
func PretestQuestions(graph *concepts.Graph, prerequisiteIDs []string) map[string]concepts.Question {
	out := make(map[string]concepts.Question, len(prerequisiteIDs))
	for _, id := range prerequisiteIDs {
		c, ok := graph.Get(id)
		if !ok || len(c.Questions) == 0 {
			continue
		}
		out[id] = c.Questions[0]
	}
	return out
}
