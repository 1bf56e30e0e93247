package usefulness

import (
	"math"
	"testing"

	"github.com/abhisek/synapz/internal/concepts"
)

func result(it, ct string, completed bool, hints, attempts int, elapsed, baseline int64) concepts.SandboxResult {
	return concepts.SandboxResult{
		InteractionType: it,
		CognitiveType:   ct,
		Completed:       completed,
		HintsUsed:       hints,
		AttemptCount:    attempts,
		ElapsedMs:       elapsed,
		BaselineMs:      baseline,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreWeighting(t *testing.T) {
	tr := NewTracker()
	// Perfect engagement: completed, no hints, first try, under baseline.
	tr.RecordResult(result(concepts.InteractionMatching, concepts.CognitiveRecall, true, 0, 1, 500, 1000))

	s, ok := tr.Score(concepts.InteractionMatching, concepts.CognitiveRecall)
	if !ok {
		t.Fatal("Score: no aggregate after RecordResult")
	}
	if !almostEqual(s.EngagementScore, 1.0) {
		t.Errorf("EngagementScore = %v, want 1.0", s.EngagementScore)
	}
	// No retention data yet: lift 0 normalizes to 0.5.
	if !almostEqual(s.UsefulnessScore, 0.6*0.5+0.4*1.0) {
		t.Errorf("UsefulnessScore = %v, want 0.7", s.UsefulnessScore)
	}

	tr.RecordRetention(concepts.InteractionMatching, concepts.CognitiveRecall, 1.0)
	s, _ = tr.Score(concepts.InteractionMatching, concepts.CognitiveRecall)
	if !almostEqual(s.UsefulnessScore, 1.0) {
		t.Errorf("UsefulnessScore with max lift = %v, want 1.0", s.UsefulnessScore)
	}
}

func TestIncrementalMeanMatchesBatch(t *testing.T) {
	tr := NewTracker()
	completions := []bool{true, false, true, true, false}
	for _, c := range completions {
		tr.RecordResult(result(concepts.InteractionSequencing, concepts.CognitiveApplication, c, 0, 1, 1000, 1000))
	}

	s, _ := tr.Score(concepts.InteractionSequencing, concepts.CognitiveApplication)
	if s.SampleSize != 5 {
		t.Errorf("SampleSize = %d, want 5", s.SampleSize)
	}
	state := tr.Export()
	if len(state) != 1 {
		t.Fatalf("Export len = %d, want 1", len(state))
	}
	if !almostEqual(state[0].CompletionRate, 0.6) {
		t.Errorf("CompletionRate = %v, want 0.6", state[0].CompletionRate)
	}
}

func TestRetentionLiftClampedAndAveraged(t *testing.T) {
	tr := NewTracker()
	tr.RecordRetention("matching", "recall", 5.0)  // clamps to 1
	tr.RecordRetention("matching", "recall", -5.0) // clamps to -1

	state := tr.Export()
	if !almostEqual(state[0].RetentionLift, 0) {
		t.Errorf("RetentionLift = %v, want 0 after +1 and -1", state[0].RetentionLift)
	}
	if state[0].RetentionSamples != 2 {
		t.Errorf("RetentionSamples = %d, want 2", state[0].RetentionSamples)
	}
}

func TestScoresSortedByUsefulness(t *testing.T) {
	tr := NewTracker()
	// Free-text: poor engagement (incomplete, hints, retries, slow).
	tr.RecordResult(result(concepts.InteractionFreeText, concepts.CognitiveConnection, false, 2, 3, 4000, 1000))
	// Matching: ideal.
	tr.RecordResult(result(concepts.InteractionMatching, concepts.CognitiveRecall, true, 0, 1, 800, 1000))

	scores := tr.Scores()
	if len(scores) != 2 {
		t.Fatalf("len = %d, want 2", len(scores))
	}
	if scores[0].InteractionType != concepts.InteractionMatching {
		t.Errorf("scores[0] = %s, want matching first", scores[0].InteractionType)
	}
	if scores[0].UsefulnessScore <= scores[1].UsefulnessScore {
		t.Errorf("scores not sorted descending: %v <= %v",
			scores[0].UsefulnessScore, scores[1].UsefulnessScore)
	}
}

func TestExportRoundTrip(t *testing.T) {
	tr := NewTracker()
	tr.RecordResult(result("matching", "recall", true, 0, 1, 900, 1000))
	tr.RecordResult(result("matching", "recall", false, 1, 2, 2000, 1000))
	tr.RecordRetention("matching", "recall", 0.4)

	restored := NewTracker(tr.Export()...)

	want, _ := tr.Score("matching", "recall")
	got, ok := restored.Score("matching", "recall")
	if !ok {
		t.Fatal("restored tracker lost the aggregate")
	}
	if !almostEqual(got.UsefulnessScore, want.UsefulnessScore) || got.SampleSize != want.SampleSize {
		t.Errorf("restored score = %+v, want %+v", got, want)
	}

	// Updates continue from the restored counts.
	restored.RecordResult(result("matching", "recall", true, 0, 1, 900, 1000))
	after, _ := restored.Score("matching", "recall")
	if after.SampleSize != 3 {
		t.Errorf("SampleSize after restore+record = %d, want 3", after.SampleSize)
	}
}

func TestUnknownKeyReportsNoScore(t *testing.T) {
	tr := NewTracker()
	if _, ok := tr.Score("matching", "recall"); ok {
		t.Error("Score on empty tracker should report ok=false")
	}
}
