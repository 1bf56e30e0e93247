package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/synapz/internal/capacity"
	"github.com/abhisek/synapz/internal/concepts"
	"github.com/abhisek/synapz/internal/grading"
	"github.com/abhisek/synapz/internal/placement"
	"github.com/abhisek/synapz/internal/session"
	"github.com/abhisek/synapz/internal/store"
)

// BuildRequest carries everything needed to construct one session.
type BuildRequest struct {
	UserID    string
	ProjectID string
	Signals   capacity.Signals

	// DidSkipPretest carries the prerequisite machine's durable skip flag
	// into the session.
	DidSkipPretest bool
}

// BuildSession constructs and activates a session. Calling it while a
// session is already active returns that session unchanged, so a repeated
// "start" is harmless. Store failures are fatal; collaborator failures
// degrade to deterministic behavior.
func (e *Engine) BuildSession(ctx context.Context, req BuildRequest) (*session.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current != nil && e.current.Phase() == session.PhaseActive {
		return e.current, nil
	}

	list, err := e.content.LoadConcepts(ctx, req.ProjectID)
	if err != nil {
		return nil, &concepts.StoreError{Code: "load_concepts", Err: err}
	}
	graph, err := concepts.NewGraph(list)
	if err != nil {
		return nil, fmt.Errorf("concept graph: %w", err)
	}
	mastery, err := e.content.LoadMasteryStates(ctx, req.ProjectID, req.UserID)
	if err != nil {
		return nil, &concepts.StoreError{Code: "load_mastery", Err: err}
	}

	cap := capacity.Compute(req.Signals, e.capCfg)

	reviews := duePool(graph, mastery, time.Now())
	var newPool []concepts.Concept
	if cap.CanLearnNew {
		newPool = graph.Eligible(mastery)
	} else {
		e.logger.Info("capacity below new-learning floor, review-only session",
			zap.Int("effective_capacity", cap.EffectiveCapacity))
	}

	items := session.Build(reviews, newPool, cap.EffectiveCapacity)
	if len(items) == 0 {
		return nil, ErrNothingToLearn
	}

	items, lastSynthesisIndex := e.insertSynthesis(ctx, items, graph)

	items, deferred := e.placeSandboxes(ctx, items, graph, mastery, lastSynthesisIndex, cap.EffectiveCapacity)

	if over := len(items) - cap.EffectiveCapacity; over > placement.MaxEnhancementOverhead(cap.EffectiveCapacity) {
		e.logger.Warn("insertion overhead exceeded its bound",
			zap.Int("overhead", over),
			zap.Int("bound", placement.MaxEnhancementOverhead(cap.EffectiveCapacity)))
	}

	cap = cap.WithUsage(len(items), e.capCfg)

	sess := session.New(req.UserID, req.ProjectID, items, cap)
	sess.DidSkipPretest = req.DidSkipPretest
	sess.SandboxDeferred = deferred
	e.current = sess
	e.graph = graph

	e.appendSessionStart(ctx, sess, items)
	return sess, nil
}

// duePool selects due reviews. Each candidate carries the head of the
// concept's question bank; banks rotate across sessions only for new
// concepts, a single review question per concept suffices.
func duePool(graph *concepts.Graph, mastery map[string]concepts.Mastery, now time.Time) []session.ReviewCandidate {
	var out []session.ReviewCandidate
	for _, c := range graph.All() {
		m, ok := mastery[c.ID]
		if !ok || !m.IsDue(now) || len(c.Questions) == 0 {
			continue
		}
		out = append(out, session.ReviewCandidate{ConceptID: c.ID, Question: c.Questions[0]})
	}
	return out
}

// insertSynthesis walks the item sequence counting learning progress and
// inserts a synthesis item whenever the jittered interval elapses. A
// missing or failing generator skips the insertion; the session continues.
func (e *Engine) insertSynthesis(ctx context.Context, items []session.Item, graph *concepts.Graph) ([]session.Item, int) {
	lastIndex := -1
	progress := 0
	anchor := 0

	for i := 0; i < len(items); i++ {
		if items[i].Kind != session.ItemReview && items[i].Kind != session.ItemNew {
			continue
		}
		progress++
		if !e.scheduler.ShouldInsertSynthesis(progress, anchor) {
			continue
		}
		anchor = progress

		recent := recentConcepts(items[:i+1], graph, placement.MaxSynthesisConcepts)
		if e.synth == nil || len(recent) < placement.MinSynthesisConcepts {
			continue
		}

		prompt, err := e.synth.Generate(ctx, recent)
		if err != nil {
			e.logger.Warn("synthesis generation failed, skipping insertion", zap.Error(err))
			continue
		}

		items = session.InsertAt(items, i+1, session.Item{
			Kind:            session.ItemSynthesis,
			ConceptIDs:      prompt.ConceptIDs,
			SynthesisPrompt: prompt.Prompt,
		})
		i++
		lastIndex = i
	}
	return items, lastIndex
}

// recentConcepts returns the last up-to-limit distinct concepts covered by
// question items, oldest first.
func recentConcepts(items []session.Item, graph *concepts.Graph, limit int) []concepts.Concept {
	seen := make(map[string]bool)
	var ids []string
	for i := len(items) - 1; i >= 0 && len(ids) < limit; i-- {
		it := items[i]
		if it.Kind != session.ItemReview && it.Kind != session.ItemNew {
			continue
		}
		id := it.ConceptID()
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	// Restore chronological order.
	out := make([]concepts.Concept, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		if c, ok := graph.Get(ids[i]); ok {
			out = append(out, c)
		}
	}
	return out
}

// placeSandboxes asks the placer for decisions and splices the resulting
// exercises into the sequence.
func (e *Engine) placeSandboxes(ctx context.Context, items []session.Item, graph *concepts.Graph,
	mastery map[string]concepts.Mastery, lastSynthesisIndex, effectiveCapacity int) ([]session.Item, bool) {

	covered := coveredConcepts(items, graph)
	if len(covered) == 0 {
		return items, false
	}

	var prior []concepts.SandboxResult
	if e.events != nil {
		var err error
		prior, err = e.events.RecentSandboxResults(ctx, 20)
		if err != nil {
			e.logger.Warn("loading prior sandbox results failed", zap.Error(err))
		}
	}

	pc := placement.Context{
		ConceptsCovered:    covered,
		Mastery:            mastery,
		PriorResults:       prior,
		Preferences:        e.tracker.Scores(),
		LastSynthesisIndex: lastSynthesisIndex,
		ItemCount:          len(items),
		EffectiveCapacity:  effectiveCapacity,
	}
	outcome := e.placer.Decide(ctx, pc)
	if outcome.Deferred {
		return items, true
	}

	// Insert from the back so earlier indexes stay valid.
	decisions := append([]placement.Decision(nil), outcome.Decisions...)
	sort.Slice(decisions, func(i, j int) bool {
		return decisions[i].InsertAfterIndex > decisions[j].InsertAfterIndex
	})
	placed := 0
	for _, d := range decisions {
		ex, ids := e.buildExercise(graph, d)
		if ex == nil {
			continue
		}
		items = session.InsertAt(items, d.InsertAfterIndex+1, session.Item{
			Kind:       session.ItemSandbox,
			ConceptIDs: ids,
			Exercise:   ex,
		})
		placed++
	}

	// Decisions naming concepts outside the graph build no exercise. The
	// minimum-one invariant still holds: fall back to the deterministic
	// rule, which only targets covered concepts.
	if placed == 0 {
		e.logger.Warn("no placement decision was usable, inserting deterministic fallback")
		d := e.placer.Fallback(pc)
		if ex, ids := e.buildExercise(graph, d); ex != nil {
			items = session.InsertAt(items, d.InsertAfterIndex+1, session.Item{
				Kind:       session.ItemSandbox,
				ConceptIDs: ids,
				Exercise:   ex,
			})
		}
	}
	return items, false
}

func coveredConcepts(items []session.Item, graph *concepts.Graph) []concepts.Concept {
	seen := make(map[string]bool)
	var out []concepts.Concept
	for _, it := range items {
		if it.Kind != session.ItemReview && it.Kind != session.ItemNew {
			continue
		}
		id := it.ConceptID()
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if c, ok := graph.Get(id); ok {
			out = append(out, c)
		}
	}
	return out
}

// buildExercise constructs exercise content deterministically from the
// concept graph. The collaborator chooses WHERE and WHAT KIND; content
// comes from the concepts themselves so a sandbox never depends on a
// second generation call.
func (e *Engine) buildExercise(graph *concepts.Graph, d placement.Decision) (*grading.Exercise, []string) {
	var targets []concepts.Concept
	for _, id := range d.ConceptIDs {
		if c, ok := graph.Get(id); ok {
			targets = append(targets, c)
		}
	}
	if len(targets) == 0 {
		return nil, nil
	}

	ids := make([]string, len(targets))
	names := make([]string, len(targets))
	for i, c := range targets {
		ids[i] = c.ID
		names[i] = c.Name
	}

	cognitive := concepts.CognitiveRecall
	if len(targets) > 1 {
		cognitive = concepts.CognitiveConnection
	}

	ex := &grading.Exercise{
		InteractionType: d.InteractionType,
		CognitiveType:   cognitive,
	}

	switch d.InteractionType {
	case concepts.InteractionMatching, concepts.InteractionFillInBlank:
		ex.Prompt = fmt.Sprintf("Match each term to its definition: %s", strings.Join(names, ", "))
		ex.Zones = make(map[string]string, len(targets))
		for _, c := range targets {
			ex.Zones[c.Name] = c.Definition
		}

	case concepts.InteractionSequencing:
		// Order by prerequisite depth: foundations first.
		chain := append(graph.TransitivePrerequisites(ids...), targets...)
		ex.Sequence = make([]string, 0, len(chain))
		for _, c := range chain {
			ex.Sequence = append(ex.Sequence, c.Name)
		}
		ex.Prompt = "Arrange these concepts from foundational to advanced"
		ex.CognitiveType = concepts.CognitiveApplication

	case concepts.InteractionFreeText:
		ex.Prompt = fmt.Sprintf("In your own words, explain how these concepts relate: %s", strings.Join(names, ", "))
		defs := make([]string, len(targets))
		for i, c := range targets {
			defs[i] = c.Definition
		}
		ex.CanonicalAnswer = strings.Join(defs, " ")
		ex.CognitiveType = concepts.CognitiveConnection

	default:
		return nil, nil
	}

	return ex, ids
}

func (e *Engine) appendSessionStart(ctx context.Context, sess *session.Session, items []session.Item) {
	if e.events == nil {
		return
	}
	summary := make([]store.ItemSummary, len(items))
	for i, it := range items {
		summary[i] = store.ItemSummary{Kind: string(it.Kind), ConceptIDs: it.ConceptIDs}
	}
	err := e.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:      sess.ID,
		UserID:         sess.UserID,
		ProjectID:      sess.ProjectID,
		Action:         "start",
		Capacity:       sess.Capacity.EffectiveCapacity,
		DidSkipPretest: sess.DidSkipPretest,
		ItemSummary:    summary,
	})
	if err != nil {
		e.logger.Warn("recording session start failed", zap.Error(err))
	}
}
