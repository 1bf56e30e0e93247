// Package grading converts raw answers into correctness and recall-quality
// ratings. Everything except the sandbox semantic layer is pure.
package grading

import (
	"math"
	"strings"

	"github.com/abhisek/synapz/internal/concepts"
)

// Result is the outcome of grading one answer.
type Result struct {
	IsCorrect bool
	Rating    concepts.Rating
}

// Grade checks a raw answer against a question and derives the rating.
// elapsedMs is measured from question display to submission; the baseline
// for quiz questions is a single free-text/closed-form element.
func Grade(q concepts.Question, rawAnswer string, elapsedMs int64, cfg Config) Result {
	correct := CheckAnswer(q, rawAnswer, cfg)

	var baseline int64
	switch q.Format {
	case concepts.FormatOpenText:
		baseline = cfg.BaselineMs(concepts.InteractionFreeText, 1)
	default:
		baseline = cfg.BaselineMs(concepts.InteractionMatching, 1)
	}

	rating := DeriveRating(RatingInput{
		Passed:       correct,
		AttemptCount: 1,
		HintsUsed:    0,
		TimeRatio:    timeRatio(elapsedMs, baseline),
	}, cfg)

	return Result{IsCorrect: correct, Rating: rating}
}

// CheckAnswer reports whether rawAnswer is correct for the question.
//
// Closed-form formats (multiple choice, true/false) use exact normalized
// matching: trimmed and case-insensitive. Open text uses the fuzzy
// token-overlap heuristic.
func CheckAnswer(q concepts.Question, rawAnswer string, cfg Config) bool {
	answer := strings.TrimSpace(rawAnswer)
	if answer == "" {
		return false
	}

	switch q.Format {
	case concepts.FormatMultipleChoice, concepts.FormatTrueFalse:
		return strings.EqualFold(answer, strings.TrimSpace(q.Answer))
	case concepts.FormatOpenText:
		return fuzzyMatch(q.Answer, answer, cfg)
	default:
		return strings.EqualFold(answer, strings.TrimSpace(q.Answer))
	}
}

// fuzzyMatch tokenizes the canonical answer, discards short tokens, and
// requires the learner's answer to contain at least
// ceil(threshold × significant tokens) of them.
//
// This is a deliberate heuristic, not NLP: "photosynthesis converts light
// into chemical energy" matches an answer containing "photosynthesis",
// "converts", "chemical" when the threshold is 0.5.
func fuzzyMatch(canonical, learner string, cfg Config) bool {
	significant := significantTokens(canonical, cfg.StopWordMaxLen)
	if len(significant) == 0 {
		// Canonical answer is all stop words; fall back to exact match.
		return strings.EqualFold(strings.TrimSpace(canonical), learner)
	}

	learnerLower := strings.ToLower(learner)
	hits := 0
	for _, tok := range significant {
		if strings.Contains(learnerLower, tok) {
			hits++
		}
	}

	required := int(math.Ceil(cfg.FuzzyOverlapThreshold * float64(len(significant))))
	return hits >= required
}

// significantTokens lowercases, splits on non-letter/digit boundaries, and
// drops tokens at or below the stop-word cutoff.
func significantTokens(s string, stopLen int) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !isWordRune(r)
	})
	var out []string
	for _, f := range fields {
		if len(f) > stopLen {
			out = append(out, f)
		}
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '-' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r > 127 // keep non-ASCII letters intact
}

func timeRatio(elapsedMs, baselineMs int64) float64 {
	if baselineMs <= 0 {
		return 1.0
	}
	return float64(elapsedMs) / float64(baselineMs)
}
