package session

import (
	"fmt"
	"testing"

	"github.com/abhisek/synapz/internal/concepts"
)

func reviewPool(n int) []ReviewCandidate {
	out := make([]ReviewCandidate, n)
	for i := range out {
		id := fmt.Sprintf("rev-%d", i)
		out[i] = ReviewCandidate{
			ConceptID: id,
			Question:  concepts.Question{ID: id + "-q", Format: concepts.FormatMultipleChoice, Answer: "a"},
		}
	}
	return out
}

func newPool(n, bankSize int) []concepts.Concept {
	out := make([]concepts.Concept, n)
	for i := range out {
		id := fmt.Sprintf("new-%d", i)
		c := concepts.Concept{ID: id, Name: id, Tier: concepts.TierCore}
		for j := 0; j < bankSize; j++ {
			c.Questions = append(c.Questions, concepts.Question{
				ID:     fmt.Sprintf("%s-q%d", id, j),
				Format: concepts.FormatOpenText,
				Answer: "answer",
			})
		}
		out[i] = c
	}
	return out
}

func TestBuildReviewPriority(t *testing.T) {
	// 3 due reviews, 10 eligible new, capacity 4 → 3 reviews + 1 new,
	// reviews first.
	items := Build(reviewPool(3), newPool(10, 2), 4)

	if len(items) != 4 {
		t.Fatalf("len = %d, want 4", len(items))
	}
	if got := CountKind(items, ItemReview); got != 3 {
		t.Errorf("reviews = %d, want 3", got)
	}
	if got := CountKind(items, ItemNew); got != 1 {
		t.Errorf("new = %d, want 1", got)
	}
	for i := 0; i < 3; i++ {
		if items[i].Kind != ItemReview {
			t.Errorf("items[%d].Kind = %s, want review before new", i, items[i].Kind)
		}
	}
}

func TestBuildReviewCountNeverExceedsPoolOrCapacity(t *testing.T) {
	tests := []struct {
		reviews, news, capacity int
		wantReviews, wantNews   int
	}{
		{0, 5, 3, 0, 3},
		{2, 5, 3, 2, 1},
		{5, 5, 3, 3, 0},
		{5, 0, 10, 5, 0},
		{0, 0, 5, 0, 0},
	}
	for _, tt := range tests {
		items := Build(reviewPool(tt.reviews), newPool(tt.news, 1), tt.capacity)
		if got := CountKind(items, ItemReview); got != tt.wantReviews {
			t.Errorf("Build(r=%d,n=%d,cap=%d) reviews = %d, want %d",
				tt.reviews, tt.news, tt.capacity, got, tt.wantReviews)
		}
		if got := CountKind(items, ItemNew); got != tt.wantNews {
			t.Errorf("Build(r=%d,n=%d,cap=%d) new = %d, want %d",
				tt.reviews, tt.news, tt.capacity, got, tt.wantNews)
		}
	}
}

func TestBuildReviewsSaturateCapacity(t *testing.T) {
	// Reviews at or over capacity: new items are dropped, never reviews.
	items := Build(reviewPool(6), newPool(10, 2), 4)
	if got := CountKind(items, ItemNew); got != 0 {
		t.Errorf("new items = %d, want 0 when reviews fill capacity", got)
	}
	if got := CountKind(items, ItemReview); got != 4 {
		t.Errorf("reviews = %d, want capacity (4)", got)
	}
}

func TestBuildEmptyPoolsMeansNothingToLearn(t *testing.T) {
	items := Build(nil, nil, 8)
	if len(items) != 0 {
		t.Errorf("len = %d, want 0 (nothing to learn)", len(items))
	}
}

func TestBuildQuestionBankWraps(t *testing.T) {
	// One new concept with a 2-question bank and budget 5: draws must
	// cycle q0 q1 q0 q1 q0 without exhausting.
	items := Build(nil, newPool(1, 2), 5)
	if len(items) != 5 {
		t.Fatalf("len = %d, want 5", len(items))
	}
	for i, it := range items {
		wantQ := fmt.Sprintf("new-0-q%d", i%2)
		if it.Question.ID != wantQ {
			t.Errorf("items[%d].Question.ID = %s, want %s", i, it.Question.ID, wantQ)
		}
	}
}

func TestBuildRoundRobinAcrossConcepts(t *testing.T) {
	items := Build(nil, newPool(2, 3), 4)
	wantConcepts := []string{"new-0", "new-1", "new-0", "new-1"}
	for i, it := range items {
		if it.ConceptID() != wantConcepts[i] {
			t.Errorf("items[%d] concept = %s, want %s", i, it.ConceptID(), wantConcepts[i])
		}
	}
	// Second visit to each concept draws its second bank question.
	if items[2].Question.ID != "new-0-q1" {
		t.Errorf("items[2].Question.ID = %s, want new-0-q1", items[2].Question.ID)
	}
}

func TestBuildSkipsEmptyBanks(t *testing.T) {
	pool := newPool(2, 2)
	pool[0].Questions = nil
	items := Build(nil, pool, 3)
	for i, it := range items {
		if it.ConceptID() != "new-1" {
			t.Errorf("items[%d] concept = %s, want new-1 only", i, it.ConceptID())
		}
	}
	if len(items) != 3 {
		t.Errorf("len = %d, want 3", len(items))
	}
}

func TestInsertAtShiftsSubsequent(t *testing.T) {
	items := Build(reviewPool(3), nil, 3)
	synth := Item{Kind: ItemSynthesis, SynthesisPrompt: "connect"}

	out := InsertAt(items, 1, synth)
	if len(out) != 4 {
		t.Fatalf("len = %d, want 4", len(out))
	}
	if out[1].Kind != ItemSynthesis {
		t.Errorf("out[1].Kind = %s, want synthesis", out[1].Kind)
	}
	if out[2].ConceptID() != "rev-1" {
		t.Errorf("out[2] concept = %s, want rev-1 (shifted)", out[2].ConceptID())
	}
}
