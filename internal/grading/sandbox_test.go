package grading

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/synapz/internal/concepts"
	"github.com/abhisek/synapz/internal/llm"
)

func matchingExercise() Exercise {
	return Exercise{
		InteractionType: concepts.InteractionMatching,
		CognitiveType:   concepts.CognitiveRecall,
		Zones: map[string]string{
			"tcp": "transport",
			"ip":  "network",
			"arp": "link",
		},
		MinCorrectPercentage: 0.6,
	}
}

func TestZoneAccuracy(t *testing.T) {
	g := NewSandboxGrader(nil, DefaultConfig())
	ex := matchingExercise()

	score, err := g.Grade(context.Background(), ex, Attempt{
		ZoneAnswers:  map[string]string{"tcp": "Transport", "ip": "network", "arp": "application"},
		AttemptCount: 1,
		ElapsedMs:    20000,
	})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if score.Score < 0.66 || score.Score > 0.67 {
		t.Errorf("Score = %v, want 2/3", score.Score)
	}
	if !score.Passed {
		t.Error("2/3 should pass a 0.6 threshold")
	}
	if score.SemanticUsed {
		t.Error("deterministic exercise must not invoke the semantic layer")
	}
}

func TestZoneAccuracyBelowThresholdFails(t *testing.T) {
	g := NewSandboxGrader(nil, DefaultConfig())
	ex := matchingExercise()

	score, err := g.Grade(context.Background(), ex, Attempt{
		ZoneAnswers:  map[string]string{"tcp": "transport"},
		AttemptCount: 1,
	})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if score.Passed {
		t.Errorf("1/3 (score %v) should fail a 0.6 threshold", score.Score)
	}
	if score.Rating != concepts.RatingAgain {
		t.Errorf("failed attempt rating = %s, want again", score.Rating)
	}
}

func TestPassThresholdFallsBackToConfig(t *testing.T) {
	ex := matchingExercise()
	ex.MinCorrectPercentage = 0 // defer to config
	att := Attempt{
		ZoneAnswers:  map[string]string{"tcp": "transport", "ip": "network"},
		AttemptCount: 1,
		ElapsedMs:    20000,
	} // 2/3 correct

	score, err := NewSandboxGrader(nil, DefaultConfig()).Grade(context.Background(), ex, att)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if !score.Passed {
		t.Errorf("2/3 (score %v) should pass the default threshold", score.Score)
	}

	strict := DefaultConfig()
	strict.SandboxPassThreshold = 0.9
	score, err = NewSandboxGrader(nil, strict).Grade(context.Background(), ex, att)
	if err != nil {
		t.Fatalf("Grade strict: %v", err)
	}
	if score.Passed {
		t.Errorf("2/3 (score %v) should fail a 0.9 configured threshold", score.Score)
	}

	// A per-exercise threshold still takes precedence over config.
	ex.MinCorrectPercentage = 0.5
	score, err = NewSandboxGrader(nil, strict).Grade(context.Background(), ex, att)
	if err != nil {
		t.Fatalf("Grade override: %v", err)
	}
	if !score.Passed {
		t.Errorf("2/3 (score %v) should pass the exercise's own 0.5 threshold", score.Score)
	}
}

func TestSequenceAccuracy(t *testing.T) {
	tests := []struct {
		name     string
		expected []string
		got      []string
		want     float64
	}{
		{"exact", []string{"a", "b", "c", "d"}, []string{"a", "b", "c", "d"}, 1.0},
		{"one swap", []string{"a", "b", "c", "d"}, []string{"a", "c", "b", "d"}, 0.5},
		{"empty answer", []string{"a", "b"}, nil, 0.0},
		{"case insensitive", []string{"Boot", "Init"}, []string{"boot", "init"}, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sequenceAccuracy(tt.expected, tt.got)
			if got != tt.want {
				t.Errorf("sequenceAccuracy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFreeTextUsesSemanticLayer(t *testing.T) {
	judgment, _ := json.Marshal(semanticJudgment{Accuracy: 0.9, Reasoning: "captures the mechanism"})
	mock := llm.NewMockProvider(llm.MockResponse{Content: judgment})
	g := NewSandboxGrader(mock, DefaultConfig())

	ex := Exercise{
		InteractionType:      concepts.InteractionFreeText,
		Prompt:               "Explain backpressure",
		CanonicalAnswer:      "consumers signal producers to slow down",
		MinCorrectPercentage: 0.7,
	}
	score, err := g.Grade(context.Background(), ex, Attempt{FreeText: "the consumer tells the producer to slow down", AttemptCount: 1, ElapsedMs: 20000})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if !score.SemanticUsed {
		t.Error("free-text exercise should use the semantic layer")
	}
	if score.Score != 0.9 {
		t.Errorf("Score = %v, want 0.9", score.Score)
	}
	if !score.Passed {
		t.Error("0.9 should pass a 0.7 threshold")
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestFreeTextWithoutProviderFallsBack(t *testing.T) {
	g := NewSandboxGrader(nil, DefaultConfig())
	ex := Exercise{
		InteractionType:      concepts.InteractionFreeText,
		CanonicalAnswer:      "consumers signal producers to slow down",
		MinCorrectPercentage: 0.7,
	}
	score, err := g.Grade(context.Background(), ex, Attempt{FreeText: "consumers signal producers they should slow down", AttemptCount: 1, ElapsedMs: 20000})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if score.SemanticUsed {
		t.Error("no provider configured, semantic layer must not be reported")
	}
	if !score.Passed {
		t.Error("fuzzy fallback should accept a near-verbatim answer")
	}
}
