package session

import (
	"github.com/abhisek/synapz/internal/concepts"
	"github.com/abhisek/synapz/internal/grading"
)

// ItemKind discriminates the session item union.
type ItemKind string

const (
	ItemReview    ItemKind = "review"
	ItemNew       ItemKind = "new"
	ItemSynthesis ItemKind = "synthesis"
	ItemSandbox   ItemKind = "sandbox"
	ItemPretest   ItemKind = "pretest"
)

// Item is one entry in the session feed. Items are immutable once placed;
// exactly one payload field is set, matching Kind.
type Item struct {
	Kind       ItemKind
	ConceptIDs []string

	// Question is set for review, new, and pretest items.
	Question *concepts.Question

	// SynthesisPrompt is set for synthesis items.
	SynthesisPrompt string

	// Exercise is set for sandbox items.
	Exercise *grading.Exercise
}

// ConceptID returns the primary concept the item targets.
func (it Item) ConceptID() string {
	if len(it.ConceptIDs) == 0 {
		return ""
	}
	return it.ConceptIDs[0]
}

// ReviewCandidate is a due review drawn from the mastery store.
type ReviewCandidate struct {
	ConceptID string
	Question  concepts.Question
}
