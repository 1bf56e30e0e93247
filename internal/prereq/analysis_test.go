package prereq

import (
	"reflect"
	"testing"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name     string
		prereqs  []string
		results  map[string]bool
		wantPct  float64
		wantRec  Recommendation
		wantGaps []string
	}{
		{
			name:    "all correct",
			prereqs: []string{"a", "b"},
			results: map[string]bool{"a": true, "b": true},
			wantPct: 100, wantRec: RecommendProceed, wantGaps: nil,
		},
		{
			name:    "three of four",
			prereqs: []string{"a", "b", "c", "d"},
			results: map[string]bool{"a": true, "b": true, "c": true},
			wantPct: 75, wantRec: RecommendReviewSuggested, wantGaps: []string{"d"},
		},
		{
			name:    "mostly wrong",
			prereqs: []string{"a", "b", "c"},
			results: map[string]bool{"a": true},
			wantPct: 100.0 / 3, wantRec: RecommendReviewRequired, wantGaps: []string{"b", "c"},
		},
		{
			name:    "unanswered counts as gap",
			prereqs: []string{"a", "b"},
			results: nil,
			wantPct: 0, wantRec: RecommendReviewRequired, wantGaps: []string{"a", "b"},
		},
		{
			name:    "no prerequisites",
			prereqs: nil,
			results: nil,
			wantPct: 100, wantRec: RecommendProceed, wantGaps: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Analyze(tt.prereqs, tt.results)
			if a.Percentage != tt.wantPct {
				t.Errorf("Percentage = %v, want %v", a.Percentage, tt.wantPct)
			}
			if a.Recommendation != tt.wantRec {
				t.Errorf("Recommendation = %s, want %s", a.Recommendation, tt.wantRec)
			}
			if !reflect.DeepEqual(a.Gaps, tt.wantGaps) {
				t.Errorf("Gaps = %v, want %v", a.Gaps, tt.wantGaps)
			}
		})
	}
}
