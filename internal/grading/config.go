package grading

import "github.com/abhisek/synapz/internal/concepts"

// Config holds the grading heuristics. The fuzzy-match threshold and
// stop-word cutoff are deliberate tunables, not fixed behavior; whether
// they should vary by question difficulty or language is unresolved, so
// they live here rather than as literals.
type Config struct {
	// FuzzyOverlapThreshold is the fraction of significant answer tokens
	// that must appear in an open-text answer for it to count as correct.
	FuzzyOverlapThreshold float64

	// StopWordMaxLen: tokens of this length or shorter are discarded
	// before overlap matching.
	StopWordMaxLen int

	// RatingMaxAttempts: more attempts than this always rates Again.
	RatingMaxAttempts int

	// RatingHardHints: more hints than this rates at most Hard.
	RatingHardHints int

	// RatingHardTimeRatio / RatingEasyTimeRatio bound the time-ratio
	// bands in the rating decision table.
	RatingHardTimeRatio float64
	RatingEasyTimeRatio float64

	// BaselinePerElementMs is the expected milliseconds per exercise
	// element, by interaction type. Baseline time for an exercise is
	// PerElement × max(1, element count).
	BaselinePerElementMs map[string]int64

	// SandboxPassThreshold is the minimum deterministic-layer score for a
	// sandbox attempt to pass, applied when the exercise does not carry
	// its own MinCorrectPercentage.
	SandboxPassThreshold float64
}

// DefaultConfig returns the standard grading configuration.
func DefaultConfig() Config {
	return Config{
		FuzzyOverlapThreshold: 0.5,
		StopWordMaxLen:        3,
		RatingMaxAttempts:     3,
		RatingHardHints:       1,
		RatingHardTimeRatio:   2.0,
		RatingEasyTimeRatio:   0.8,
		BaselinePerElementMs: map[string]int64{
			concepts.InteractionMatching:    8000,
			concepts.InteractionSequencing:  10000,
			concepts.InteractionFillInBlank: 12000,
			concepts.InteractionFreeText:    30000,
		},
		SandboxPassThreshold: 0.6,
	}
}

// BaselineMs returns the expected completion time for an exercise of the
// given interaction type and element count.
func (c Config) BaselineMs(interactionType string, elements int) int64 {
	per, ok := c.BaselinePerElementMs[interactionType]
	if !ok {
		per = 10000
	}
	if elements < 1 {
		elements = 1
	}
	return per * int64(elements)
}
