package prereq

import "sort"

// Recommendation summarizes how strongly remediation is advised.
type Recommendation string

const (
	RecommendProceed         Recommendation = "proceed"
	RecommendReviewSuggested Recommendation = "review_suggested"
	RecommendReviewRequired  Recommendation = "review_required"
)

// Recommendation thresholds on pretest percentage.
const (
	ProceedThresholdPct  = 80.0
	RequiredThresholdPct = 50.0
)

// GapAnalysis is derived once after pretest completion and immutable
// afterward.
type GapAnalysis struct {
	TotalPrerequisites int
	CorrectCount       int
	Percentage         float64
	Recommendation     Recommendation
	Gaps               []string // prerequisite IDs answered incorrectly, sorted
}

// GapCount returns the number of prerequisite gaps found.
func (a GapAnalysis) GapCount() int { return len(a.Gaps) }

// Analyze derives the gap analysis from pretest results. results maps
// prerequisite concept ID → answered correctly; prerequisites absent from
// the map count as incorrect (unanswered).
func Analyze(prerequisiteIDs []string, results map[string]bool) GapAnalysis {
	a := GapAnalysis{TotalPrerequisites: len(prerequisiteIDs)}

	for _, id := range prerequisiteIDs {
		if results[id] {
			a.CorrectCount++
		} else {
			a.Gaps = append(a.Gaps, id)
		}
	}
	sort.Strings(a.Gaps)

	if a.TotalPrerequisites > 0 {
		a.Percentage = float64(a.CorrectCount) / float64(a.TotalPrerequisites) * 100
	} else {
		a.Percentage = 100
	}

	switch {
	case a.Percentage >= ProceedThresholdPct:
		a.Recommendation = RecommendProceed
	case a.Percentage >= RequiredThresholdPct:
		a.Recommendation = RecommendReviewSuggested
	default:
		a.Recommendation = RecommendReviewRequired
	}

	return a
}
