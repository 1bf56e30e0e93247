package concepts

import (
	"context"
	"fmt"
	"time"
)

// SandboxResult captures the outcome of one interactive sandbox exercise,
// forwarded to the store and to the usefulness feedback loop.
type SandboxResult struct {
	SessionID       string
	ConceptIDs      []string
	InteractionType string // "matching", "sequencing", "fill_in_blank"
	CognitiveType   string // "recall", "application", "connection"
	Score           float64
	Passed          bool
	AttemptCount    int
	HintsUsed       int
	ElapsedMs       int64
	BaselineMs      int64
	Completed       bool
	OccurredAt      time.Time
}

// ContentStore is the external content/mastery collaborator. Absence of a
// mastery row is not an error; it means "unseen".
type ContentStore interface {
	// LoadConcepts returns the concept graph inputs for a project.
	LoadConcepts(ctx context.Context, projectID string) ([]Concept, error)

	// LoadMasteryStates returns mastery rows keyed by concept ID.
	// Concepts without rows are simply absent from the map.
	LoadMasteryStates(ctx context.Context, projectID, userID string) (map[string]Mastery, error)

	// RecordRating forwards a recall-quality rating to the
	// spaced-repetition scheduler.
	RecordRating(ctx context.Context, conceptID string, rating Rating) error

	// RecordSandboxResult persists a sandbox exercise outcome.
	RecordSandboxResult(ctx context.Context, result SandboxResult) error
}

// StoreError wraps a failure from the content/mastery store with a
// machine-readable code.
type StoreError struct {
	Code string // "load_concepts", "load_mastery", "record_rating", "record_sandbox"
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Code, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
