package concepts

import (
	"strings"
	"testing"
	"time"
)

func testConcepts() []Concept {
	return []Concept{
		{ID: "vars", Name: "Variables", Tier: TierCore},
		{ID: "loops", Name: "Loops", Tier: TierCore, Prerequisites: []string{"vars"}},
		{ID: "funcs", Name: "Functions", Tier: TierSupporting, Prerequisites: []string{"vars"}},
		{ID: "recursion", Name: "Recursion", Tier: TierEnrichment, Prerequisites: []string{"funcs", "loops"}},
	}
}

func TestNewGraphRejectsDuplicates(t *testing.T) {
	_, err := NewGraph([]Concept{{ID: "a"}, {ID: "a"}})
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("err = %v, want duplicate rejection", err)
	}
}

func TestNewGraphRejectsUnknownPrerequisite(t *testing.T) {
	_, err := NewGraph([]Concept{{ID: "a", Prerequisites: []string{"ghost"}}})
	if err == nil || !strings.Contains(err.Error(), "unknown prerequisite") {
		t.Errorf("err = %v, want unknown prerequisite rejection", err)
	}
}

func TestNewGraphRejectsCycles(t *testing.T) {
	_, err := NewGraph([]Concept{
		{ID: "a", Prerequisites: []string{"b"}},
		{ID: "b", Prerequisites: []string{"a"}},
	})
	if err == nil || !strings.Contains(err.Error(), "cycle") {
		t.Errorf("err = %v, want cycle rejection", err)
	}
}

func TestTransitivePrerequisites(t *testing.T) {
	g, err := NewGraph(testConcepts())
	if err != nil {
		t.Fatal(err)
	}

	pres := g.TransitivePrerequisites("recursion")
	ids := make([]string, len(pres))
	for i, c := range pres {
		ids[i] = c.ID
	}
	// vars (core) sorts before funcs/loops; recursion itself excluded.
	want := []string{"loops", "vars", "funcs"}
	if len(ids) != 3 || ids[0] != "loops" || ids[1] != "vars" || ids[2] != "funcs" {
		t.Errorf("TransitivePrerequisites = %v, want %v (tier then id)", ids, want)
	}
}

func TestEligibleRequiresPrerequisitesStarted(t *testing.T) {
	g, err := NewGraph(testConcepts())
	if err != nil {
		t.Fatal(err)
	}

	// Nothing started: only the root is eligible.
	got := g.Eligible(nil)
	if len(got) != 1 || got[0].ID != "vars" {
		t.Fatalf("Eligible(empty) = %v, want [vars]", got)
	}

	mastery := map[string]Mastery{
		"vars": {ConceptID: "vars", State: StateLearning},
	}
	got = g.Eligible(mastery)
	ids := make([]string, len(got))
	for i, c := range got {
		ids[i] = c.ID
	}
	if len(ids) != 2 || ids[0] != "loops" || ids[1] != "funcs" {
		t.Errorf("Eligible = %v, want [loops funcs]", ids)
	}

	// Already-started concepts drop out of the eligible set.
	mastery["loops"] = Mastery{ConceptID: "loops", State: StateReview}
	for _, c := range g.Eligible(mastery) {
		if c.ID == "loops" {
			t.Error("Eligible includes a concept already in review")
		}
	}
}

func TestMostComplex(t *testing.T) {
	g, err := NewGraph(testConcepts())
	if err != nil {
		t.Fatal(err)
	}

	c, ok := g.MostComplex([]string{"vars", "recursion", "loops"})
	if !ok || c.ID != "recursion" {
		t.Errorf("MostComplex = %v, %t, want recursion", c.ID, ok)
	}
	if _, ok := g.MostComplex([]string{"ghost"}); ok {
		t.Error("MostComplex should report false for unknown ids")
	}
}

func TestMasteryIsDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		m    Mastery
		want bool
	}{
		{"review due", Mastery{State: StateReview, Due: now.Add(-time.Hour)}, true},
		{"review not due", Mastery{State: StateReview, Due: now.Add(time.Hour)}, false},
		{"mastered due", Mastery{State: StateMastered, Due: now}, true},
		{"learning never due", Mastery{State: StateLearning, Due: now.Add(-time.Hour)}, false},
		{"unseen never due", Mastery{State: StateUnseen}, false},
	}
	for _, tt := range tests {
		if got := tt.m.IsDue(now); got != tt.want {
			t.Errorf("%s: IsDue = %t, want %t", tt.name, got, tt.want)
		}
	}
}
