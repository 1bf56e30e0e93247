package grading

import (
	"testing"

	"github.com/abhisek/synapz/internal/concepts"
)

func mcQuestion() concepts.Question {
	return concepts.Question{
		ID:      "q1",
		Text:    "Which layer handles retransmission?",
		Format:  concepts.FormatMultipleChoice,
		Answer:  "Transport",
		Choices: []string{"Application", "Transport", "Network", "Link"},
	}
}

func TestCheckAnswerMultipleChoice(t *testing.T) {
	cfg := DefaultConfig()
	q := mcQuestion()

	tests := []struct {
		answer string
		want   bool
	}{
		{"Transport", true},
		{"transport", true},
		{"  TRANSPORT  ", true},
		{"Network", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := CheckAnswer(q, tt.answer, cfg); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestCheckAnswerTrueFalse(t *testing.T) {
	cfg := DefaultConfig()
	q := concepts.Question{Format: concepts.FormatTrueFalse, Answer: "true"}
	if !CheckAnswer(q, " True ", cfg) {
		t.Error("case/whitespace-insensitive match expected")
	}
	if CheckAnswer(q, "false", cfg) {
		t.Error("wrong answer accepted")
	}
}

func TestFuzzyMatchOpenText(t *testing.T) {
	cfg := DefaultConfig()
	q := concepts.Question{
		Format: concepts.FormatOpenText,
		// Significant tokens (len > 3): photosynthesis, converts, light, into, chemical, energy
		Answer: "photosynthesis converts light into chemical energy",
	}

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"full answer", "photosynthesis converts light into chemical energy", true},
		{"half the tokens", "photosynthesis converts chemical", true},
		{"too few tokens", "photosynthesis", false},
		{"unrelated", "mitochondria are the powerhouse", false},
		{"case insensitive", "PHOTOSYNTHESIS CONVERTS LIGHT INTO something", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckAnswer(q, tt.answer, cfg); got != tt.want {
				t.Errorf("CheckAnswer(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestFuzzyThresholdIsConfigurable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FuzzyOverlapThreshold = 1.0

	q := concepts.Question{Format: concepts.FormatOpenText, Answer: "entropy always increases"}
	if CheckAnswer(q, "entropy increases", cfg) {
		t.Error("threshold 1.0 should require every significant token")
	}
	if !CheckAnswer(q, "entropy always increases", cfg) {
		t.Error("complete answer should pass at any threshold")
	}
}

func TestStopWordCutoffIsConfigurable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StopWordMaxLen = 0 // keep everything

	q := concepts.Question{Format: concepts.FormatOpenText, Answer: "the cat sat"}
	// With no stop-word filtering, "sat" alone is 1/3 tokens, below 50%.
	if CheckAnswer(q, "sat", cfg) {
		t.Error("single token should not clear ceil(0.5*3)=2")
	}
	if !CheckAnswer(q, "the cat", cfg) {
		t.Error("two of three tokens should pass")
	}
}

func TestGradeReturnsRating(t *testing.T) {
	cfg := DefaultConfig()
	q := mcQuestion()

	fast := Grade(q, "Transport", 1000, cfg)
	if !fast.IsCorrect {
		t.Fatal("correct answer graded incorrect")
	}
	if fast.Rating != concepts.RatingEasy {
		t.Errorf("fast correct answer rating = %s, want easy", fast.Rating)
	}

	wrong := Grade(q, "Link", 1000, cfg)
	if wrong.IsCorrect {
		t.Fatal("wrong answer graded correct")
	}
	if wrong.Rating != concepts.RatingAgain {
		t.Errorf("wrong answer rating = %s, want again", wrong.Rating)
	}
}
