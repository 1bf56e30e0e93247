// Package placement decides when synthesis prompts fire and where sandbox
// exercises land in the session feed.
package placement

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/synapz/internal/concepts"
	"github.com/abhisek/synapz/internal/llm"
)

// Synthesis prompt bounds: a prompt connects 3 to 5 concepts. Fewer than
// MinSynthesisConcepts is rejected; more than MaxSynthesisConcepts are
// truncated to the most recent five.
const (
	MinSynthesisConcepts = 3
	MaxSynthesisConcepts = 5
)

// Synthesis interval bounds in chapters (discrete progress units).
const (
	minSynthesisInterval = 5
	maxSynthesisInterval = 6
)

// ValidationError is bad input, surfaced to the caller and never retried.
type ValidationError struct {
	Code string
	Msg  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation %s: %s", e.Code, e.Msg)
}

// IntervalScheduler owns the jittered synthesis cadence. The random source
// is injectable so tests can force either interval.
type IntervalScheduler struct {
	rng      *rand.Rand
	interval int
}

// NewIntervalScheduler creates a scheduler. A nil source uses the global
// generator seeding.
func NewIntervalScheduler(src rand.Source) *IntervalScheduler {
	var rng *rand.Rand
	if src != nil {
		rng = rand.New(src)
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &IntervalScheduler{rng: rng}
	s.interval = s.draw()
	return s
}

// CurrentInterval returns the active interval, always in {5, 6}.
func (s *IntervalScheduler) CurrentInterval() int { return s.interval }

// ShouldInsertSynthesis reports whether a synthesis item is due. On a true
// return it redraws the interval for the next window. Non-positive
// progress never triggers.
func (s *IntervalScheduler) ShouldInsertSynthesis(progressCount, lastSynthesisAt int) bool {
	if progressCount <= 0 {
		return false
	}
	if progressCount-lastSynthesisAt < s.interval {
		return false
	}
	s.interval = s.draw()
	return true
}

func (s *IntervalScheduler) draw() int {
	return minSynthesisInterval + s.rng.IntN(maxSynthesisInterval-minSynthesisInterval+1)
}

// MaxEnhancementOverhead returns how many items synthesis and sandbox
// insertion may add past the raw capacity budget: at most one synthesis
// per elapsed minimum interval window, plus the per-session sandbox cap.
func MaxEnhancementOverhead(capacity int) int {
	if capacity < 0 {
		capacity = 0
	}
	return capacity/minSynthesisInterval + MaxSandboxPerSession
}

// SynthesisPrompt is the generated cross-concept prompt.
type SynthesisPrompt struct {
	Prompt     string
	ConceptIDs []string
}

type synthesisOutput struct {
	Prompt string `json:"prompt"`
}

var synthesisSchema = &llm.Schema{
	Name:        "synthesis-prompt",
	Description: "A prompt asking the learner to connect several concepts",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{
				"type":        "string",
				"description": "One or two sentences asking the learner to relate the concepts",
			},
		},
		"required": []any{"prompt"},
	},
}

const synthesisSystemPrompt = `You write short synthesis prompts for a learning app. A synthesis prompt asks the learner to connect several concepts they just studied: comparing, combining, or tracing cause and effect between them. One or two sentences, no preamble.`

// SynthesisGenerator produces synthesis prompts via the text-generation
// collaborator.
type SynthesisGenerator struct {
	provider llm.Provider
}

// NewSynthesisGenerator creates a generator.
func NewSynthesisGenerator(provider llm.Provider) *SynthesisGenerator {
	return &SynthesisGenerator{provider: provider}
}

// Generate builds a prompt from recently covered concepts. Fewer than
// three concepts is a ValidationError raised before any collaborator
// call; more than five forwards exactly the most recent five.
func (g *SynthesisGenerator) Generate(ctx context.Context, recent []concepts.Concept) (*SynthesisPrompt, error) {
	if len(recent) < MinSynthesisConcepts {
		return nil, &ValidationError{
			Code: "too_few_concepts",
			Msg:  fmt.Sprintf("synthesis needs at least %d concepts, got %d", MinSynthesisConcepts, len(recent)),
		}
	}
	if len(recent) > MaxSynthesisConcepts {
		recent = recent[len(recent)-MaxSynthesisConcepts:]
	}

	var b strings.Builder
	b.WriteString("Concepts just covered:\n")
	ids := make([]string, 0, len(recent))
	for _, c := range recent {
		fmt.Fprintf(&b, "- %s: %s\n", c.Name, c.Definition)
		ids = append(ids, c.ID)
	}
	b.WriteString("\nWrite a synthesis prompt connecting these concepts.")

	ctx = llm.WithPurpose(ctx, "synthesis")
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    synthesisSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		Schema:    synthesisSchema,
		MaxTokens: 256,
	})
	if err != nil {
		return nil, fmt.Errorf("synthesis generation: %w", err)
	}

	var out synthesisOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse synthesis response: %w", err)
	}

	return &SynthesisPrompt{Prompt: out.Prompt, ConceptIDs: ids}, nil
}
