package placement

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/abhisek/synapz/internal/concepts"
	"github.com/abhisek/synapz/internal/llm"
)

type stubCollaborator struct {
	decisions []Decision
	err       error
	calls     int
}

func (s *stubCollaborator) DecidePlacements(context.Context, Context) ([]Decision, error) {
	s.calls++
	return s.decisions, s.err
}

func placementContext(covered int) Context {
	list := conceptList(covered)
	if covered > 1 {
		list[covered-1].Tier = concepts.TierEnrichment
	}
	return Context{
		ConceptsCovered:    list,
		LastSynthesisIndex: 6,
		ItemCount:          10,
		EffectiveCapacity:  10,
	}
}

func TestDecideEmptySessionPlacesNothing(t *testing.T) {
	p := NewPlacer(&stubCollaborator{}, 0, zap.NewNop())
	out := p.Decide(context.Background(), Context{ItemCount: 0, EffectiveCapacity: 10})
	if len(out.Decisions) != 0 || out.Deferred || out.Fallback {
		t.Errorf("Decide on empty session = %+v, want empty outcome", out)
	}
}

func TestDecideDefersBelowCapacityFloor(t *testing.T) {
	collab := &stubCollaborator{}
	p := NewPlacer(collab, 4, zap.NewNop())

	pc := placementContext(3)
	pc.EffectiveCapacity = 3
	out := p.Decide(context.Background(), pc)

	if !out.Deferred {
		t.Error("want deferral below the capacity floor")
	}
	if len(out.Decisions) != 0 {
		t.Errorf("Decisions = %v, want none on deferral", out.Decisions)
	}
	if collab.calls != 0 {
		t.Errorf("collaborator called %d times, want 0 on deferral", collab.calls)
	}
}

func TestDecideAcceptsConfidentDecisions(t *testing.T) {
	collab := &stubCollaborator{decisions: []Decision{
		{InsertAfterIndex: 4, ConceptIDs: []string{"a"}, InteractionType: concepts.InteractionSequencing, Confidence: 0.9},
		{InsertAfterIndex: 99, ConceptIDs: []string{"b"}, InteractionType: concepts.InteractionMatching, Confidence: 0.7},
	}}
	p := NewPlacer(collab, 0, zap.NewNop())

	out := p.Decide(context.Background(), placementContext(3))
	if out.Fallback || out.Deferred {
		t.Fatalf("outcome = %+v, want collaborator decisions", out)
	}
	if len(out.Decisions) != 2 {
		t.Fatalf("Decisions len = %d, want 2", len(out.Decisions))
	}
	// Out-of-range index clamped into the session.
	if out.Decisions[1].InsertAfterIndex != 9 {
		t.Errorf("InsertAfterIndex = %d, want clamped to 9", out.Decisions[1].InsertAfterIndex)
	}
}

func TestDecideLowConfidenceFallsBack(t *testing.T) {
	collab := &stubCollaborator{decisions: []Decision{
		{InsertAfterIndex: 4, ConceptIDs: []string{"a"}, InteractionType: concepts.InteractionMatching, Confidence: 0.59},
	}}
	p := NewPlacer(collab, 0, zap.NewNop())

	out := p.Decide(context.Background(), placementContext(3))
	if !out.Fallback {
		t.Fatal("want fallback when any decision is below the confidence threshold")
	}
	assertDeterministicFallback(t, out, placementContext(3))
}

func TestDecideCollaboratorErrorFallsBack(t *testing.T) {
	collab := &stubCollaborator{err: errors.New("collaborator down")}
	p := NewPlacer(collab, 0, zap.NewNop())

	out := p.Decide(context.Background(), placementContext(4))
	if !out.Fallback {
		t.Fatal("want fallback on collaborator failure")
	}
	assertDeterministicFallback(t, out, placementContext(4))
}

func TestDecideNilCollaboratorUsesFallback(t *testing.T) {
	p := NewPlacer(nil, 0, zap.NewNop())
	out := p.Decide(context.Background(), placementContext(3))
	if !out.Fallback {
		t.Fatal("nil collaborator must use the deterministic fallback")
	}
}

func TestDecideTruncatesToMaxPlacements(t *testing.T) {
	collab := &stubCollaborator{decisions: []Decision{
		{InsertAfterIndex: 1, ConceptIDs: []string{"a"}, InteractionType: concepts.InteractionMatching, Confidence: 0.9},
		{InsertAfterIndex: 3, ConceptIDs: []string{"b"}, InteractionType: concepts.InteractionMatching, Confidence: 0.9},
		{InsertAfterIndex: 5, ConceptIDs: []string{"c"}, InteractionType: concepts.InteractionMatching, Confidence: 0.9},
		{InsertAfterIndex: 7, ConceptIDs: []string{"d"}, InteractionType: concepts.InteractionMatching, Confidence: 0.9},
	}}
	p := NewPlacer(collab, 0, zap.NewNop())

	out := p.Decide(context.Background(), placementContext(4))
	if len(out.Decisions) != MaxSandboxPerSession {
		t.Errorf("Decisions len = %d, want %d", len(out.Decisions), MaxSandboxPerSession)
	}
}

func assertDeterministicFallback(t *testing.T, out Outcome, pc Context) {
	t.Helper()
	if len(out.Decisions) != 1 {
		t.Fatalf("fallback decisions len = %d, want 1", len(out.Decisions))
	}
	d := out.Decisions[0]
	if d.InsertAfterIndex != pc.LastSynthesisIndex {
		t.Errorf("InsertAfterIndex = %d, want after last synthesis (%d)",
			d.InsertAfterIndex, pc.LastSynthesisIndex)
	}
	want := mostComplex(pc.ConceptsCovered).ID
	if len(d.ConceptIDs) != 1 || d.ConceptIDs[0] != want {
		t.Errorf("ConceptIDs = %v, want [%s] (highest tier)", d.ConceptIDs, want)
	}
	if d.InteractionType != concepts.InteractionMatching {
		t.Errorf("InteractionType = %s, want matching", d.InteractionType)
	}
}

func TestMostComplexPrefersHighestTier(t *testing.T) {
	list := []concepts.Concept{
		{ID: "x", Tier: concepts.TierSupporting},
		{ID: "y", Tier: concepts.TierEnrichment},
		{ID: "z", Tier: concepts.TierCore},
	}
	if got := mostComplex(list); got.ID != "y" {
		t.Errorf("mostComplex = %s, want y", got.ID)
	}
}

func TestLLMCollaboratorParsesDecisions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: []byte(`{"decisions":[{"insert_after_index":2,"concept_ids":["a","b"],"interaction_type":"matching","confidence":0.8}]}`),
	})
	c := NewLLMCollaborator(mock)

	decisions, err := c.DecidePlacements(context.Background(), placementContext(3))
	if err != nil {
		t.Fatalf("DecidePlacements: %v", err)
	}
	if len(decisions) != 1 || decisions[0].Confidence != 0.8 {
		t.Errorf("decisions = %+v", decisions)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}
