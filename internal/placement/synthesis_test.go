package placement

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/abhisek/synapz/internal/concepts"
	"github.com/abhisek/synapz/internal/llm"
)

func conceptList(n int) []concepts.Concept {
	out := make([]concepts.Concept, n)
	for i := range out {
		out[i] = concepts.Concept{
			ID:         string(rune('a' + i)),
			Name:       "concept " + string(rune('a'+i)),
			Definition: "definition",
			Tier:       concepts.TierCore,
		}
	}
	return out
}

func TestIntervalAlwaysFiveOrSix(t *testing.T) {
	s := NewIntervalScheduler(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		if iv := s.CurrentInterval(); iv != 5 && iv != 6 {
			t.Fatalf("interval = %d, want 5 or 6", iv)
		}
		s.ShouldInsertSynthesis(100, 0) // force redraw
	}
}

func TestIntervalBothValuesReachable(t *testing.T) {
	seen := map[int]bool{}
	s := NewIntervalScheduler(rand.NewPCG(7, 7))
	for i := 0; i < 100 && len(seen) < 2; i++ {
		seen[s.CurrentInterval()] = true
		s.ShouldInsertSynthesis(100, 0)
	}
	if !seen[5] || !seen[6] {
		t.Errorf("intervals seen = %v, want both 5 and 6", seen)
	}
}

func TestShouldInsertSynthesis(t *testing.T) {
	s := NewIntervalScheduler(rand.NewPCG(1, 1))
	iv := s.CurrentInterval()

	if s.ShouldInsertSynthesis(0, 0) {
		t.Error("zero progress must never trigger")
	}
	if s.ShouldInsertSynthesis(-3, 0) {
		t.Error("negative progress must never trigger")
	}
	if s.ShouldInsertSynthesis(iv-1, 0) {
		t.Error("progress below interval must not trigger")
	}
	if !s.ShouldInsertSynthesis(iv, 0) {
		t.Error("progress at interval must trigger")
	}
	// Triggering redraws: the next window measures from the new anchor.
	if s.ShouldInsertSynthesis(iv+1, iv) {
		t.Error("one chapter past the anchor must not trigger")
	}
}

func TestMaxEnhancementOverhead(t *testing.T) {
	tests := []struct {
		capacity int
		want     int
	}{
		{0, MaxSandboxPerSession},
		{4, MaxSandboxPerSession},     // below the first synthesis window
		{5, 1 + MaxSandboxPerSession}, // one window elapses
		{14, 2 + MaxSandboxPerSession},
		{-1, MaxSandboxPerSession},
	}
	for _, tt := range tests {
		if got := MaxEnhancementOverhead(tt.capacity); got != tt.want {
			t.Errorf("MaxEnhancementOverhead(%d) = %d, want %d", tt.capacity, got, tt.want)
		}
	}
}

func TestGenerateRejectsTooFewConcepts(t *testing.T) {
	mock := llm.NewMockProvider()
	g := NewSynthesisGenerator(mock)

	_, err := g.Generate(context.Background(), conceptList(2))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0 for rejected input", mock.CallCount())
	}
}

func TestGenerateTruncatesToMostRecentFive(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Content: []byte(`{"prompt":"connect these"}`)})
	g := NewSynthesisGenerator(mock)

	out, err := g.Generate(context.Background(), conceptList(7))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(out.ConceptIDs) != 5 {
		t.Fatalf("ConceptIDs len = %d, want 5", len(out.ConceptIDs))
	}
	// Most recent five: c through g, not a and b.
	if out.ConceptIDs[0] != "c" || out.ConceptIDs[4] != "g" {
		t.Errorf("ConceptIDs = %v, want most recent five", out.ConceptIDs)
	}
	if out.Prompt != "connect these" {
		t.Errorf("Prompt = %q", out.Prompt)
	}
}

func TestGeneratePropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Err: &llm.ErrRejected{Err: errors.New("content policy")}})
	g := NewSynthesisGenerator(mock)

	_, err := g.Generate(context.Background(), conceptList(3))
	var rej *llm.ErrRejected
	if !errors.As(err, &rej) {
		t.Errorf("err = %v, want ErrRejected in chain", err)
	}
}
