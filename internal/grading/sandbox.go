package grading

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/synapz/internal/concepts"
	"github.com/abhisek/synapz/internal/llm"
)

// Exercise is the interaction spec for a sandbox item.
type Exercise struct {
	InteractionType string // concepts.Interaction*
	CognitiveType   string // concepts.Cognitive*
	Prompt          string

	// Zones holds zone → expected answer for matching and fill-in-blank.
	Zones map[string]string

	// Sequence is the canonical order for sequencing exercises.
	Sequence []string

	// CanonicalAnswer is the reference answer for free-text exercises.
	CanonicalAnswer string

	// MinCorrectPercentage is the per-exercise pass threshold (0-1).
	MinCorrectPercentage float64
}

// ElementCount returns how many discrete elements the exercise has, used
// for baseline-time derivation.
func (e Exercise) ElementCount() int {
	switch e.InteractionType {
	case concepts.InteractionSequencing:
		return len(e.Sequence)
	case concepts.InteractionMatching, concepts.InteractionFillInBlank:
		return len(e.Zones)
	default:
		return 1
	}
}

// Attempt is the learner's submission for a sandbox exercise.
type Attempt struct {
	ZoneAnswers  map[string]string
	Sequence     []string
	FreeText     string
	AttemptCount int
	HintsUsed    int
	ElapsedMs    int64
}

// SandboxScore is the two-layer grading outcome.
type SandboxScore struct {
	Score        float64 // 0-1
	Passed       bool
	Rating       concepts.Rating
	SemanticUsed bool // true when the AI layer judged a free-text answer
	BaselineMs   int64
}

// SandboxGrader runs the two-layer sandbox grading pipeline: a
// deterministic score first, then an AI-assisted semantic judgment for
// free-text exercises only. A nil provider disables the semantic layer
// and free-text falls back to fuzzy matching.
type SandboxGrader struct {
	provider llm.Provider
	cfg      Config
}

// NewSandboxGrader creates a sandbox grader.
func NewSandboxGrader(provider llm.Provider, cfg Config) *SandboxGrader {
	return &SandboxGrader{provider: provider, cfg: cfg}
}

// Grade scores an attempt. The returned error is only ever a collaborator
// failure from the semantic layer; deterministic paths cannot fail.
func (g *SandboxGrader) Grade(ctx context.Context, ex Exercise, att Attempt) (SandboxScore, error) {
	var (
		score    float64
		semantic bool
		err      error
	)

	switch ex.InteractionType {
	case concepts.InteractionMatching, concepts.InteractionFillInBlank:
		score = zoneAccuracy(ex.Zones, att.ZoneAnswers)
	case concepts.InteractionSequencing:
		score = sequenceAccuracy(ex.Sequence, att.Sequence)
	case concepts.InteractionFreeText:
		score, semantic, err = g.gradeFreeText(ctx, ex, att.FreeText)
		if err != nil {
			return SandboxScore{}, err
		}
	default:
		score = 0
	}

	threshold := ex.MinCorrectPercentage
	if threshold <= 0 {
		threshold = g.cfg.SandboxPassThreshold
	}
	passed := score >= threshold

	baseline := g.cfg.BaselineMs(ex.InteractionType, ex.ElementCount())
	rating := DeriveRating(RatingInput{
		Passed:       passed,
		AttemptCount: att.AttemptCount,
		HintsUsed:    att.HintsUsed,
		TimeRatio:    timeRatio(att.ElapsedMs, baseline),
	}, g.cfg)

	return SandboxScore{
		Score:        score,
		Passed:       passed,
		Rating:       rating,
		SemanticUsed: semantic,
		BaselineMs:   baseline,
	}, nil
}

// zoneAccuracy is the fraction of zones answered correctly
// (trimmed, case-insensitive).
func zoneAccuracy(expected, got map[string]string) float64 {
	if len(expected) == 0 {
		return 0
	}
	hits := 0
	for zone, want := range expected {
		if strings.EqualFold(strings.TrimSpace(got[zone]), strings.TrimSpace(want)) {
			hits++
		}
	}
	return float64(hits) / float64(len(expected))
}

// sequenceAccuracy is 1 − editDistance/maxLen over the two orderings.
func sequenceAccuracy(expected, got []string) float64 {
	if len(expected) == 0 {
		return 0
	}
	maxLen := len(expected)
	if len(got) > maxLen {
		maxLen = len(got)
	}
	d := editDistance(expected, got)
	return 1 - float64(d)/float64(maxLen)
}

// editDistance is the Levenshtein distance between two element sequences,
// comparing elements case-insensitively.
func editDistance(a, b []string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if strings.EqualFold(a[i-1], b[j-1]) {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

type semanticJudgment struct {
	Accuracy  float64 `json:"accuracy"`
	Reasoning string  `json:"reasoning"`
}

// semanticSchema constrains the judge's structured output.
var semanticSchema = &llm.Schema{
	Name:        "semantic-accuracy",
	Description: "Semantic accuracy judgment of a learner's free-text answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"accuracy": map[string]any{
				"type":        "number",
				"description": "Semantic accuracy from 0.0 (wrong) to 1.0 (fully correct)",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "One-sentence justification",
			},
		},
		"required": []any{"accuracy", "reasoning"},
	},
}

const semanticSystemPrompt = `You judge whether a learner's free-text answer captures the meaning of a reference answer. Grade semantics, not wording. Partial credit is allowed.`

func (g *SandboxGrader) gradeFreeText(ctx context.Context, ex Exercise, answer string) (float64, bool, error) {
	if g.provider == nil {
		// No semantic layer available; degrade to the fuzzy heuristic.
		q := concepts.Question{Format: concepts.FormatOpenText, Answer: ex.CanonicalAnswer}
		if CheckAnswer(q, answer, g.cfg) {
			return 1.0, false, nil
		}
		return 0, false, nil
	}

	ctx = llm.WithPurpose(ctx, "semantic-grading")
	resp, err := g.provider.Generate(ctx, llm.Request{
		System: semanticSystemPrompt,
		Messages: []llm.Message{{
			Role: llm.RoleUser,
			Content: fmt.Sprintf("Prompt: %s\n\nReference answer: %s\n\nLearner answer: %s",
				ex.Prompt, ex.CanonicalAnswer, answer),
		}},
		Schema:    semanticSchema,
		MaxTokens: 256,
	})
	if err != nil {
		return 0, false, fmt.Errorf("semantic grading: %w", err)
	}

	var out semanticJudgment
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return 0, false, fmt.Errorf("parse semantic judgment: %w", err)
	}
	if out.Accuracy < 0 {
		out.Accuracy = 0
	}
	if out.Accuracy > 1 {
		out.Accuracy = 1
	}
	return out.Accuracy, true, nil
}
