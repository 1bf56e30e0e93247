package grading

import "github.com/abhisek/synapz/internal/concepts"

// RatingInput feeds the recall-quality decision table.
type RatingInput struct {
	Passed       bool
	AttemptCount int
	HintsUsed    int
	TimeRatio    float64 // actual time / baseline time
}

// DeriveRating maps an outcome to a four-level rating for the
// spaced-repetition scheduler. The table is evaluated in order; first
// match wins:
//
//	not passed OR attempts > max        → Again
//	hints > hard-hints OR ratio > hard  → Hard
//	hints == 0 AND ratio < easy         → Easy
//	otherwise                           → Good
func DeriveRating(in RatingInput, cfg Config) concepts.Rating {
	switch {
	case !in.Passed || in.AttemptCount > cfg.RatingMaxAttempts:
		return concepts.RatingAgain
	case in.HintsUsed > cfg.RatingHardHints || in.TimeRatio > cfg.RatingHardTimeRatio:
		return concepts.RatingHard
	case in.HintsUsed == 0 && in.TimeRatio < cfg.RatingEasyTimeRatio:
		return concepts.RatingEasy
	default:
		return concepts.RatingGood
	}
}
