package concepts

import "time"

// Tier expresses pedagogical importance. Tier 1 concepts are foundational,
// tier 3 concepts are enrichment.
type Tier int

const (
	TierCore       Tier = 1
	TierSupporting Tier = 2
	TierEnrichment Tier = 3
)

// Label returns the display label for a tier.
func (t Tier) Label() string {
	switch t {
	case TierCore:
		return "Core"
	case TierSupporting:
		return "Supporting"
	case TierEnrichment:
		return "Enrichment"
	default:
		return "Unknown"
	}
}

// QuestionFormat identifies how a question is answered.
type QuestionFormat string

const (
	FormatMultipleChoice QuestionFormat = "multiple_choice"
	FormatTrueFalse      QuestionFormat = "true_false"
	FormatOpenText       QuestionFormat = "open_text"
)

// Question is a single item from a concept's sample-question bank.
type Question struct {
	ID      string
	Text    string
	Format  QuestionFormat
	Answer  string
	Choices []string // Populated for multiple choice only.
}

// Concept is a single node in the knowledge graph. Concepts are produced by
// the content pipeline and are read-only to the engine.
type Concept struct {
	ID            string
	Name          string
	Definition    string
	Tier          Tier
	Prerequisites []string
	Questions     []Question
}

// MasteryState is a concept's position in the learning lifecycle.
// Owned by the external spaced-repetition store; the engine reads it once
// per session build and emits rating events rather than mutating it.
type MasteryState string

const (
	StateUnseen   MasteryState = "unseen"
	StateLearning MasteryState = "learning"
	StateReview   MasteryState = "review"
	StateMastered MasteryState = "mastered"
)

// Mastery is the per-(user, concept) record read from the store.
type Mastery struct {
	ConceptID string
	State     MasteryState
	Due       time.Time
}

// IsDue reports whether the concept is due for review at the given time.
func (m Mastery) IsDue(now time.Time) bool {
	if m.State != StateReview && m.State != StateMastered {
		return false
	}
	return !now.Before(m.Due)
}

// Rating is the four-level recall-quality judgment forwarded to the
// spaced-repetition store.
type Rating int

const (
	RatingAgain Rating = iota + 1
	RatingHard
	RatingGood
	RatingEasy
)

// String returns the canonical name used in events and store rows.
func (r Rating) String() string {
	switch r {
	case RatingAgain:
		return "again"
	case RatingHard:
		return "hard"
	case RatingGood:
		return "good"
	case RatingEasy:
		return "easy"
	default:
		return "unknown"
	}
}
