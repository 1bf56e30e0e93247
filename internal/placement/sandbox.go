package placement

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/synapz/internal/concepts"
	"github.com/abhisek/synapz/internal/llm"
	"github.com/abhisek/synapz/internal/usefulness"
)

// Sandbox placement bounds per session.
const (
	MinSandboxPerSession = 1
	MaxSandboxPerSession = 3
)

// MinConfidence is the threshold below which an AI decision is discarded
// in favor of the deterministic fallback.
const MinConfidence = 0.6

// DefaultMinCapacityForSandbox is the effective capacity floor under which
// sandbox placement is deferred rather than placed.
const DefaultMinCapacityForSandbox = 4

// Decision is one sandbox placement choice.
type Decision struct {
	InsertAfterIndex int      `json:"insert_after_index"`
	ConceptIDs       []string `json:"concept_ids"`
	InteractionType  string   `json:"interaction_type"`
	Confidence       float64  `json:"confidence"`
}

// Context is everything the placement collaborator sees.
type Context struct {
	ConceptsCovered    []concepts.Concept
	Mastery            map[string]concepts.Mastery
	PriorResults       []concepts.SandboxResult
	Preferences        []usefulness.Score
	LastSynthesisIndex int
	ItemCount          int
	EffectiveCapacity  int
}

// Collaborator decides sandbox placements. Kept as a separate capability
// from the synthesis generator so it can be swapped or disabled
// independently.
type Collaborator interface {
	DecidePlacements(ctx context.Context, pc Context) ([]Decision, error)
}

// Outcome is the result of a placement round.
type Outcome struct {
	Decisions []Decision

	// Deferred is set when effective capacity was below the sandbox floor.
	// The deferral is observable; the minimum-one invariant resumes next
	// session.
	Deferred bool

	// Fallback is set when the deterministic rule produced the decisions.
	Fallback bool
}

// Placer applies the confidence policy and the deterministic fallback
// around a Collaborator.
type Placer struct {
	collab      Collaborator
	minCapacity int
	logger      *zap.Logger
}

// NewPlacer creates a placer. collab may be nil, which forces the
// deterministic fallback path. minCapacity <= 0 uses the default floor.
func NewPlacer(collab Collaborator, minCapacity int, logger *zap.Logger) *Placer {
	if minCapacity <= 0 {
		minCapacity = DefaultMinCapacityForSandbox
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Placer{collab: collab, minCapacity: minCapacity, logger: logger}
}

// Decide returns sandbox placements for the session. Either the
// collaborator's confident decisions (clamped to [1, 3]) or the
// deterministic fallback; when capacity is below the floor the outcome is
// a deferral, never a silent drop.
func (p *Placer) Decide(ctx context.Context, pc Context) Outcome {
	if len(pc.ConceptsCovered) == 0 {
		return Outcome{}
	}
	if pc.EffectiveCapacity < p.minCapacity {
		p.logger.Info("sandbox placement deferred: capacity below floor",
			zap.Int("effective_capacity", pc.EffectiveCapacity),
			zap.Int("floor", p.minCapacity))
		return Outcome{Deferred: true}
	}

	if p.collab != nil {
		decisions, err := p.collab.DecidePlacements(ctx, pc)
		if err == nil && confident(decisions) {
			if len(decisions) > MaxSandboxPerSession {
				decisions = decisions[:MaxSandboxPerSession]
			}
			if len(decisions) >= MinSandboxPerSession {
				return Outcome{Decisions: clampIndexes(decisions, pc.ItemCount)}
			}
		}
		if err != nil {
			p.logger.Warn("placement collaborator failed, using fallback", zap.Error(err))
		} else {
			p.logger.Info("placement decisions below confidence threshold, using fallback")
		}
	}

	return Outcome{Decisions: []Decision{p.Fallback(pc)}, Fallback: true}
}

// Fallback is the deterministic rule: one sandbox after the last synthesis
// phase, targeting the most complex (highest-tier) concept covered, with
// the matching interaction. Exported so callers can recover when confident
// decisions turn out to be unusable.
func (p *Placer) Fallback(pc Context) Decision {
	target := mostComplex(pc.ConceptsCovered)
	idx := pc.LastSynthesisIndex
	if idx < 0 || idx >= pc.ItemCount {
		idx = pc.ItemCount - 1
	}
	return Decision{
		InsertAfterIndex: idx,
		ConceptIDs:       []string{target.ID},
		InteractionType:  concepts.InteractionMatching,
		Confidence:       1.0,
	}
}

func confident(decisions []Decision) bool {
	if len(decisions) == 0 {
		return false
	}
	for _, d := range decisions {
		if d.Confidence < MinConfidence {
			return false
		}
	}
	return true
}

func clampIndexes(decisions []Decision, itemCount int) []Decision {
	out := make([]Decision, len(decisions))
	for i, d := range decisions {
		if d.InsertAfterIndex < 0 {
			d.InsertAfterIndex = 0
		}
		if d.InsertAfterIndex >= itemCount {
			d.InsertAfterIndex = itemCount - 1
		}
		out[i] = d
	}
	return out
}

func mostComplex(list []concepts.Concept) concepts.Concept {
	best := list[0]
	for _, c := range list[1:] {
		if c.Tier > best.Tier || (c.Tier == best.Tier && c.ID < best.ID) {
			best = c
		}
	}
	return best
}

// LLMCollaborator asks the text-generation backend for placement
// decisions as structured JSON.
type LLMCollaborator struct {
	provider llm.Provider
}

// NewLLMCollaborator creates a placement collaborator.
func NewLLMCollaborator(provider llm.Provider) *LLMCollaborator {
	return &LLMCollaborator{provider: provider}
}

type placementOutput struct {
	Decisions []Decision `json:"decisions"`
}

var placementSchema = &llm.Schema{
	Name:        "sandbox-placements",
	Description: "Sandbox exercise placement decisions for a learning session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"decisions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"insert_after_index": map[string]any{"type": "integer"},
						"concept_ids": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"interaction_type": map[string]any{
							"type": "string",
							"enum": []any{
								concepts.InteractionMatching,
								concepts.InteractionSequencing,
								concepts.InteractionFillInBlank,
								concepts.InteractionFreeText,
							},
						},
						"confidence": map[string]any{"type": "number"},
					},
					"required": []any{"insert_after_index", "concept_ids", "interaction_type", "confidence"},
				},
			},
		},
		"required": []any{"decisions"},
	},
}

const placementSystemPrompt = `You place interactive sandbox exercises inside a learning session. Given the concepts covered, the learner's mastery, prior sandbox performance, and which interaction types have worked for this learner, choose 1-3 placements. Prefer interaction types with high usefulness unless their sample size is small, in which case exploring an under-sampled type is acceptable.`

func (c *LLMCollaborator) DecidePlacements(ctx context.Context, pc Context) ([]Decision, error) {
	ctx = llm.WithPurpose(ctx, "placement")
	resp, err := c.provider.Generate(ctx, llm.Request{
		System:    placementSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: placementUserMessage(pc)}},
		Schema:    placementSchema,
		MaxTokens: 512,
	})
	if err != nil {
		return nil, fmt.Errorf("placement decision: %w", err)
	}

	var out placementOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse placement response: %w", err)
	}
	return out.Decisions, nil
}

func placementUserMessage(pc Context) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Session has %d items; insert_after_index must be in [0, %d].\n", pc.ItemCount, pc.ItemCount-1)
	fmt.Fprintf(&b, "Choose between %d and %d placements.\n\nConcepts covered:\n", MinSandboxPerSession, MaxSandboxPerSession)
	for _, c := range pc.ConceptsCovered {
		state := concepts.StateUnseen
		if m, ok := pc.Mastery[c.ID]; ok {
			state = m.State
		}
		fmt.Fprintf(&b, "- %s (%s, tier %d, mastery %s)\n", c.ID, c.Name, c.Tier, state)
	}

	if len(pc.Preferences) > 0 {
		b.WriteString("\nInteraction type usefulness for this learner:\n")
		for _, s := range pc.Preferences {
			fmt.Fprintf(&b, "- %s/%s: usefulness %.2f (n=%d)\n",
				s.InteractionType, s.CognitiveType, s.UsefulnessScore, s.SampleSize)
		}
	}

	if len(pc.PriorResults) > 0 {
		b.WriteString("\nRecent sandbox results:\n")
		for _, r := range pc.PriorResults {
			fmt.Fprintf(&b, "- %s: score %.2f, passed %t\n", r.InteractionType, r.Score, r.Passed)
		}
	}

	return b.String()
}
