package grading

import (
	"testing"

	"github.com/abhisek/synapz/internal/concepts"
)

func TestDeriveRatingTable(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		in   RatingInput
		want concepts.Rating
	}{
		{"failed fast", RatingInput{Passed: false, AttemptCount: 1, HintsUsed: 0, TimeRatio: 0.5}, concepts.RatingAgain},
		{"passed fast no hints", RatingInput{Passed: true, AttemptCount: 1, HintsUsed: 0, TimeRatio: 0.5}, concepts.RatingEasy},
		{"passed two hints", RatingInput{Passed: true, AttemptCount: 1, HintsUsed: 2, TimeRatio: 1.0}, concepts.RatingHard},
		{"passed normal", RatingInput{Passed: true, AttemptCount: 1, HintsUsed: 0, TimeRatio: 1.0}, concepts.RatingGood},
		{"too many attempts wins over speed", RatingInput{Passed: true, AttemptCount: 4, HintsUsed: 0, TimeRatio: 0.5}, concepts.RatingAgain},
		{"slow wins over zero hints", RatingInput{Passed: true, AttemptCount: 1, HintsUsed: 0, TimeRatio: 2.5}, concepts.RatingHard},
		{"one hint at normal pace", RatingInput{Passed: true, AttemptCount: 1, HintsUsed: 1, TimeRatio: 1.0}, concepts.RatingGood},
		{"one hint fast is not easy", RatingInput{Passed: true, AttemptCount: 1, HintsUsed: 1, TimeRatio: 0.5}, concepts.RatingGood},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveRating(tt.in, cfg); got != tt.want {
				t.Errorf("DeriveRating(%+v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestDeriveRatingOrderFirstMatchWins(t *testing.T) {
	cfg := DefaultConfig()

	// Not passed AND many hints AND slow: the Again row must win.
	in := RatingInput{Passed: false, AttemptCount: 1, HintsUsed: 5, TimeRatio: 3.0}
	if got := DeriveRating(in, cfg); got != concepts.RatingAgain {
		t.Errorf("got %s, want again", got)
	}
}
