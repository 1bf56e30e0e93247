package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/synapz/internal/concepts"
	"github.com/abhisek/synapz/internal/llm"
	"github.com/abhisek/synapz/internal/usefulness"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest on empty store: %v", err)
	}
	if snap != nil {
		t.Fatalf("Latest = %+v, want nil on empty store", snap)
	}

	err = repo.Save(ctx, &Snapshot{
		Sequence:  7,
		Timestamp: time.Now().Add(-time.Hour),
		Data: SnapshotData{
			Version: 1,
			Usefulness: []usefulness.AggregateState{
				{InteractionType: "matching", CognitiveType: "recall", Attempts: 3, CompletionRate: 1},
			},
		},
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	err = repo.Save(ctx, &Snapshot{
		Sequence:  12,
		Timestamp: time.Now(),
		Data:      SnapshotData{Version: 1},
	})
	if err != nil {
		t.Fatalf("Save second: %v", err)
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest == nil || latest.Sequence != 12 {
		t.Errorf("Latest.Sequence = %v, want 12", latest)
	}
}

func TestSnapshotRoundTripsUsefulnessState(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	want := usefulness.AggregateState{
		InteractionType: "sequencing",
		CognitiveType:   "application",
		Attempts:        5,
		Completions:     4,
		CompletionRate:  0.8,
		TimeRatioMean:   1.2,
		RetentionLift:   0.3,
	}
	err := repo.Save(ctx, &Snapshot{
		Sequence: 1, Timestamp: time.Now(),
		Data: SnapshotData{Version: 1, Usefulness: []usefulness.AggregateState{want}},
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if len(latest.Data.Usefulness) != 1 || latest.Data.Usefulness[0] != want {
		t.Errorf("round trip = %+v, want %+v", latest.Data.Usefulness, want)
	}
}

func TestSequenceOrdersAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", UserID: "u1", ProjectID: "p1", Action: "start", Capacity: 8,
	}); err != nil {
		t.Fatalf("AppendSessionEvent: %v", err)
	}
	if err := repo.AppendRatingEvent(ctx, RatingEventData{
		ConceptID: "c1", Rating: "good", Source: "quiz", SessionID: "s1",
	}); err != nil {
		t.Fatalf("AppendRatingEvent: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, llm.RequestEvent{
		Provider: "mock", Model: "mock", Purpose: "synthesis", Success: true,
	}); err != nil {
		t.Fatalf("AppendLLMRequest: %v", err)
	}

	se := s.Client().SessionEvent.Query().OnlyX(ctx)
	re := s.Client().RatingEvent.Query().OnlyX(ctx)
	le := s.Client().LLMRequestEvent.Query().OnlyX(ctx)
	if !(se.Sequence < re.Sequence && re.Sequence < le.Sequence) {
		t.Errorf("sequences not ordered across types: %d, %d, %d",
			se.Sequence, re.Sequence, le.Sequence)
	}
}

func TestSandboxResultsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	results := []concepts.SandboxResult{
		{SessionID: "s1", ConceptIDs: []string{"a"}, InteractionType: "matching",
			CognitiveType: "recall", Score: 0.5, AttemptCount: 1, Completed: true},
		{SessionID: "s1", ConceptIDs: []string{"b", "c"}, InteractionType: "sequencing",
			CognitiveType: "application", Score: 0.9, Passed: true, AttemptCount: 1,
			HintsUsed: 1, ElapsedMs: 4000, BaselineMs: 5000, Completed: true},
	}
	for _, res := range results {
		if err := repo.AppendSandboxEvent(ctx, res); err != nil {
			t.Fatalf("AppendSandboxEvent: %v", err)
		}
	}

	got, err := repo.RecentSandboxResults(ctx, 10)
	if err != nil {
		t.Fatalf("RecentSandboxResults: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Newest first.
	if got[0].InteractionType != "sequencing" || got[0].Score != 0.9 {
		t.Errorf("got[0] = %+v, want the sequencing result first", got[0])
	}

	byConcept, err := repo.LatestSandboxForConcept(ctx, "c")
	if err != nil {
		t.Fatalf("LatestSandboxForConcept: %v", err)
	}
	if byConcept == nil || byConcept.InteractionType != "sequencing" {
		t.Errorf("LatestSandboxForConcept(c) = %+v", byConcept)
	}

	none, err := repo.LatestSandboxForConcept(ctx, "ghost")
	if err != nil {
		t.Fatalf("LatestSandboxForConcept(ghost): %v", err)
	}
	if none != nil {
		t.Errorf("LatestSandboxForConcept(ghost) = %+v, want nil", none)
	}
}

func TestConceptAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	acc, n, err := repo.ConceptAccuracy(ctx, "c1")
	if err != nil || acc != 0 || n != 0 {
		t.Fatalf("empty accuracy = (%v, %d, %v), want (0, 0, nil)", acc, n, err)
	}

	answers := []bool{true, true, false, true}
	for i, correct := range answers {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID: "s1", ConceptID: "c1", QuestionID: "q1",
			ItemKind: "review", QuestionFormat: "multiple_choice",
			LearnerAnswer: "a", CorrectAnswer: "a", Correct: correct, TimeMs: int64(i) * 100,
		})
		if err != nil {
			t.Fatalf("AppendAnswerEvent: %v", err)
		}
	}

	acc, n, err = repo.ConceptAccuracy(ctx, "c1")
	if err != nil {
		t.Fatalf("ConceptAccuracy: %v", err)
	}
	if n != 4 || acc != 0.75 {
		t.Errorf("accuracy = (%v, %d), want (0.75, 4)", acc, n)
	}
}
