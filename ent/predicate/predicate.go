// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// RatingEvent is the predicate function for ratingevent builders.
type RatingEvent func(*sql.Selector)

// SandboxEvent is the predicate function for sandboxevent builders.
type SandboxEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// SynthesisEvent is the predicate function for synthesisevent builders.
type SynthesisEvent func(*sql.Selector)
