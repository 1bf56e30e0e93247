// Package usefulness aggregates retention and engagement signals per
// interaction type and exposes them as weights for future placement
// decisions. Updates are incremental streaming averages; no raw history
// is kept, so memory is bounded and the numbers cannot drift from
// recomputation.
package usefulness

import (
	"sort"
	"sync"

	"github.com/abhisek/synapz/internal/concepts"
)

// Composite weights: usefulness = 0.6 × normalized retention lift +
// 0.4 × engagement.
const (
	retentionWeight  = 0.6
	engagementWeight = 0.4
)

// Engagement sub-metric weights. Completion dominates; pace, hint
// avoidance, and first-try success share the rest.
const (
	completionWeight = 0.4
	paceWeight       = 0.2
	hintWeight       = 0.2
	retryWeight      = 0.2
)

// Key identifies one aggregate.
type Key struct {
	InteractionType string
	CognitiveType   string
}

// aggregate holds the streaming state for one (interaction, cognitive)
// pair. Means use the count-weighted incremental form m += (x-m)/n.
type aggregate struct {
	attempts         int
	completions      int
	completionRate   float64
	timeRatioMean    float64
	hintRate         float64
	retryRate        float64
	retentionLift    float64 // running mean in [-1, 1]
	retentionSamples int
}

// Score is the read-side view handed to placement. SampleSize is exposed
// so callers can treat small samples as low-confidence exploration
// candidates; the feedback loop does not decide exploration itself.
type Score struct {
	InteractionType string
	CognitiveType   string
	RetentionLift   float64 // [-1, 1]
	EngagementScore float64 // [0, 1]
	UsefulnessScore float64 // [0, 1]
	SampleSize      int
}

// AggregateState is the serializable form for snapshot persistence.
type AggregateState struct {
	InteractionType  string  `json:"interaction_type"`
	CognitiveType    string  `json:"cognitive_type"`
	Attempts         int     `json:"attempts"`
	Completions      int     `json:"completions"`
	CompletionRate   float64 `json:"completion_rate"`
	TimeRatioMean    float64 `json:"time_ratio_mean"`
	HintRate         float64 `json:"hint_rate"`
	RetryRate        float64 `json:"retry_rate"`
	RetentionLift    float64 `json:"retention_lift"`
	RetentionSamples int     `json:"retention_samples"`
}

// Tracker is the per-learner feedback loop.
type Tracker struct {
	mu         sync.Mutex
	aggregates map[Key]*aggregate
}

// NewTracker creates a tracker, optionally hydrated from snapshot state.
func NewTracker(states ...AggregateState) *Tracker {
	t := &Tracker{aggregates: make(map[Key]*aggregate)}
	for _, s := range states {
		t.aggregates[Key{s.InteractionType, s.CognitiveType}] = &aggregate{
			attempts:         s.Attempts,
			completions:      s.Completions,
			completionRate:   s.CompletionRate,
			timeRatioMean:    s.TimeRatioMean,
			hintRate:         s.HintRate,
			retryRate:        s.RetryRate,
			retentionLift:    s.RetentionLift,
			retentionSamples: s.RetentionSamples,
		}
	}
	return t
}

// RecordResult folds one sandbox outcome into the aggregate.
func (t *Tracker) RecordResult(res concepts.SandboxResult) {
	t.mu.Lock()
	defer t.mu.Unlock()

	agg := t.get(Key{res.InteractionType, res.CognitiveType})
	agg.attempts++
	if res.Completed {
		agg.completions++
	}
	n := float64(agg.attempts)

	agg.completionRate += (boolVal(res.Completed) - agg.completionRate) / n
	agg.hintRate += (boolVal(res.HintsUsed > 0) - agg.hintRate) / n
	agg.retryRate += (boolVal(res.AttemptCount > 1) - agg.retryRate) / n

	ratio := 1.0
	if res.BaselineMs > 0 {
		ratio = clamp(float64(res.ElapsedMs)/float64(res.BaselineMs), 0, 3)
	}
	agg.timeRatioMean += (ratio - agg.timeRatioMean) / n
}

// RecordRetention folds one retention observation in, once a later review
// of a sandbox-practiced concept has been graded. lift is the sandbox-path
// retention minus the quiz-only baseline, in [-1, 1].
func (t *Tracker) RecordRetention(interactionType, cognitiveType string, lift float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	agg := t.get(Key{interactionType, cognitiveType})
	agg.retentionSamples++
	agg.retentionLift += (clamp(lift, -1, 1) - agg.retentionLift) / float64(agg.retentionSamples)
}

// Score returns the composite for one key. ok is false when no results
// have been recorded.
func (t *Tracker) Score(interactionType, cognitiveType string) (Score, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	agg, ok := t.aggregates[Key{interactionType, cognitiveType}]
	if !ok || agg.attempts == 0 {
		return Score{}, false
	}
	return t.score(Key{interactionType, cognitiveType}, agg), true
}

// Scores returns all aggregates, sorted by usefulness descending then key.
func (t *Tracker) Scores() []Score {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Score, 0, len(t.aggregates))
	for k, agg := range t.aggregates {
		if agg.attempts == 0 {
			continue
		}
		out = append(out, t.score(k, agg))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UsefulnessScore != out[j].UsefulnessScore {
			return out[i].UsefulnessScore > out[j].UsefulnessScore
		}
		if out[i].InteractionType != out[j].InteractionType {
			return out[i].InteractionType < out[j].InteractionType
		}
		return out[i].CognitiveType < out[j].CognitiveType
	})
	return out
}

// Export returns the serializable state for snapshot persistence.
func (t *Tracker) Export() []AggregateState {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]AggregateState, 0, len(t.aggregates))
	for k, agg := range t.aggregates {
		out = append(out, AggregateState{
			InteractionType:  k.InteractionType,
			CognitiveType:    k.CognitiveType,
			Attempts:         agg.attempts,
			Completions:      agg.completions,
			CompletionRate:   agg.completionRate,
			TimeRatioMean:    agg.timeRatioMean,
			HintRate:         agg.hintRate,
			RetryRate:        agg.retryRate,
			RetentionLift:    agg.retentionLift,
			RetentionSamples: agg.retentionSamples,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].InteractionType != out[j].InteractionType {
			return out[i].InteractionType < out[j].InteractionType
		}
		return out[i].CognitiveType < out[j].CognitiveType
	})
	return out
}

func (t *Tracker) get(k Key) *aggregate {
	agg, ok := t.aggregates[k]
	if !ok {
		agg = &aggregate{}
		t.aggregates[k] = agg
	}
	return agg
}

func (t *Tracker) score(k Key, agg *aggregate) Score {
	engagement := engagementScore(agg)
	return Score{
		InteractionType: k.InteractionType,
		CognitiveType:   k.CognitiveType,
		RetentionLift:   agg.retentionLift,
		EngagementScore: engagement,
		UsefulnessScore: retentionWeight*normalizeLift(agg.retentionLift) + engagementWeight*engagement,
		SampleSize:      agg.attempts,
	}
}

// engagementScore composes the sub-metrics into [0, 1]. Pace rewards
// finishing at or under the baseline; overshooting degrades linearly and
// bottoms out at 2× baseline.
func engagementScore(agg *aggregate) float64 {
	pace := clamp(2-agg.timeRatioMean, 0, 1)
	return completionWeight*agg.completionRate +
		paceWeight*pace +
		hintWeight*(1-agg.hintRate) +
		retryWeight*(1-agg.retryRate)
}

// normalizeLift maps [-1, 1] to [0, 1].
func normalizeLift(lift float64) float64 {
	return (clamp(lift, -1, 1) + 1) / 2
}

func boolVal(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
