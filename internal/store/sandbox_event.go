package store

import (
	"context"
	"fmt"

	"github.com/abhisek/synapz/ent"
	"github.com/abhisek/synapz/ent/sandboxevent"
	"github.com/abhisek/synapz/internal/concepts"
)

func (r *eventRepo) AppendSandboxEvent(ctx context.Context, res concepts.SandboxResult) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SandboxEvent.Create().
		SetSequence(seqNum).
		SetSessionID(res.SessionID).
		SetConceptIds(res.ConceptIDs).
		SetInteractionType(res.InteractionType).
		SetCognitiveType(res.CognitiveType).
		SetScore(res.Score).
		SetPassed(res.Passed).
		SetAttemptCount(res.AttemptCount).
		SetHintsUsed(res.HintsUsed).
		SetElapsedMs(res.ElapsedMs).
		SetBaselineMs(res.BaselineMs).
		SetCompleted(res.Completed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save sandbox event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSandboxResults(ctx context.Context, limit int) ([]concepts.SandboxResult, error) {
	q := r.client.SandboxEvent.Query().
		Order(ent.Desc(sandboxevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sandbox results: %w", err)
	}

	out := make([]concepts.SandboxResult, 0, len(events))
	for _, e := range events {
		out = append(out, sandboxResultFromEvent(e))
	}
	return out, nil
}

// LatestSandboxForConcept scans recent events in Go because concept IDs
// live in a JSON column. The scan window is bounded; sandbox volume is a
// few per session.
func (r *eventRepo) LatestSandboxForConcept(ctx context.Context, conceptID string) (*concepts.SandboxResult, error) {
	const scanWindow = 200

	events, err := r.client.SandboxEvent.Query().
		Order(ent.Desc(sandboxevent.FieldSequence)).
		Limit(scanWindow).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sandbox events: %w", err)
	}

	for _, e := range events {
		for _, id := range e.ConceptIds {
			if id == conceptID {
				res := sandboxResultFromEvent(e)
				return &res, nil
			}
		}
	}
	return nil, nil
}

func sandboxResultFromEvent(e *ent.SandboxEvent) concepts.SandboxResult {
	return concepts.SandboxResult{
		SessionID:       e.SessionID,
		ConceptIDs:      e.ConceptIds,
		InteractionType: e.InteractionType,
		CognitiveType:   e.CognitiveType,
		Score:           e.Score,
		Passed:          e.Passed,
		AttemptCount:    e.AttemptCount,
		HintsUsed:       e.HintsUsed,
		ElapsedMs:       e.ElapsedMs,
		BaselineMs:      e.BaselineMs,
		Completed:       e.Completed,
		OccurredAt:      e.Timestamp,
	}
}
