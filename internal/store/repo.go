package store

import (
	"context"
	"time"

	"github.com/abhisek/synapz/internal/concepts"
	"github.com/abhisek/synapz/internal/llm"
	"github.com/abhisek/synapz/internal/usefulness"
)

// ItemSummary is the serialized form of one planned session item.
type ItemSummary struct {
	Kind       string
	ConceptIDs []string
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID      string
	UserID         string
	ProjectID      string
	Action         string // start, end, or cancel
	Capacity       int
	DidSkipPretest bool
	ItemsAnswered  int
	CorrectAnswers int
	DurationSecs   int
	ItemSummary    []ItemSummary
}

// AnswerEventData captures one graded answer.
type AnswerEventData struct {
	SessionID      string
	ConceptID      string
	QuestionID     string
	ItemKind       string
	QuestionFormat string
	LearnerAnswer  string
	CorrectAnswer  string
	Correct        bool
	TimeMs         int64
}

// RatingEventData captures one recall rating forwarded to the
// spaced-repetition store.
type RatingEventData struct {
	ConceptID string
	Rating    string
	Source    string // quiz or sandbox
	SessionID string
}

// SynthesisEventData captures a synthesis prompt and its answer.
type SynthesisEventData struct {
	SessionID  string
	ConceptIDs []string
	Prompt     string
	Response   string
}

// EventRepo provides append and query access to domain events.
// AppendLLMRequest satisfies llm.EventSink so the provider decorator can
// log directly.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendRatingEvent(ctx context.Context, data RatingEventData) error
	AppendSandboxEvent(ctx context.Context, res concepts.SandboxResult) error
	AppendSynthesisEvent(ctx context.Context, data SynthesisEventData) error
	AppendLLMRequest(ctx context.Context, data llm.RequestEvent) error

	// RecentSandboxResults returns up to limit sandbox results, newest first.
	RecentSandboxResults(ctx context.Context, limit int) ([]concepts.SandboxResult, error)

	// LatestSandboxForConcept returns the newest sandbox result that
	// practiced the concept, or nil when none exists.
	LatestSandboxForConcept(ctx context.Context, conceptID string) (*concepts.SandboxResult, error)

	// ConceptAccuracy returns the answer accuracy and sample count for a
	// concept across all sessions.
	ConceptAccuracy(ctx context.Context, conceptID string) (float64, int, error)

	// CurrentSequence returns the last sequence number assigned, for
	// snapshot consistency.
	CurrentSequence(ctx context.Context) (int64, error)

	// QueryLLMRequests returns up to limit logged collaborator calls,
	// newest first.
	QueryLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error)
}

// LLMRequestRecord is the read-side view of one logged collaborator call.
type LLMRequestRecord struct {
	ID        int
	Timestamp time.Time
	llm.RequestEvent
}

// SnapshotData is the derived learner state persisted between sessions.
type SnapshotData struct {
	Version    int                         `json:"version"`
	Usefulness []usefulness.AggregateState `json:"usefulness"`
}

// Snapshot represents a point-in-time capture of derived state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages derived-state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
