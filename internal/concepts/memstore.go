package concepts

import (
	"context"
	"sync"
	"time"
)

// Review intervals applied by the built-in scheduler, by rating.
var ratingIntervals = map[Rating]time.Duration{
	RatingAgain: 0,
	RatingHard:  24 * time.Hour,
	RatingGood:  3 * 24 * time.Hour,
	RatingEasy:  7 * 24 * time.Hour,
}

// MemoryStore is a single-learner ContentStore holding concepts and
// mastery in memory. It stands in for the external content service and
// spaced-repetition scheduler in the CLI and in tests; RecordRating
// applies a simple interval ladder rather than a full SRS algorithm.
type MemoryStore struct {
	mu       sync.Mutex
	concepts []Concept
	mastery  map[string]Mastery
	results  []SandboxResult
	now      func() time.Time
}

// NewMemoryStore creates a store over a concept list. All concepts start
// unseen.
func NewMemoryStore(list []Concept) *MemoryStore {
	return &MemoryStore{
		concepts: list,
		mastery:  make(map[string]Mastery),
		now:      time.Now,
	}
}

func (s *MemoryStore) LoadConcepts(_ context.Context, _ string) ([]Concept, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Concept, len(s.concepts))
	copy(out, s.concepts)
	return out, nil
}

func (s *MemoryStore) LoadMasteryStates(_ context.Context, _, _ string) (map[string]Mastery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Mastery, len(s.mastery))
	for id, m := range s.mastery {
		out[id] = m
	}
	return out, nil
}

// RecordRating advances the concept's mastery. Again drops back to
// learning and reschedules immediately; Easy from review promotes to
// mastered.
func (s *MemoryStore) RecordRating(_ context.Context, conceptID string, rating Rating) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.mastery[conceptID]
	if !ok {
		m = Mastery{ConceptID: conceptID, State: StateUnseen}
	}

	switch rating {
	case RatingAgain:
		m.State = StateLearning
	case RatingEasy:
		if m.State == StateReview || m.State == StateMastered {
			m.State = StateMastered
		} else {
			m.State = StateReview
		}
	default:
		m.State = StateReview
	}
	m.Due = s.now().Add(ratingIntervals[rating])

	s.mastery[conceptID] = m
	return nil
}

func (s *MemoryStore) RecordSandboxResult(_ context.Context, result SandboxResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, result)
	return nil
}

// SandboxResults returns all recorded sandbox outcomes.
func (s *MemoryStore) SandboxResults() []SandboxResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SandboxResult, len(s.results))
	copy(out, s.results)
	return out
}

// SetMastery seeds a mastery row directly, for tests and imports.
func (s *MemoryStore) SetMastery(m Mastery) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mastery[m.ConceptID] = m
}
