package store

import (
	"context"
	"fmt"

	"github.com/abhisek/synapz/ent"
	"github.com/abhisek/synapz/ent/answerevent"
	entschema "github.com/abhisek/synapz/ent/schema"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) CurrentSequence(ctx context.Context) (int64, error) {
	return r.seq.Current(ctx)
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var summary []entschema.SessionItemSummary
	for _, it := range data.ItemSummary {
		summary = append(summary, entschema.SessionItemSummary{
			Kind:       it.Kind,
			ConceptIDs: it.ConceptIDs,
		})
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetProjectID(data.ProjectID).
		SetAction(data.Action).
		SetCapacity(data.Capacity).
		SetDidSkipPretest(data.DidSkipPretest).
		SetItemsAnswered(data.ItemsAnswered).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs)

	if len(summary) > 0 {
		builder = builder.SetItemSummary(summary)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetConceptID(data.ConceptID).
		SetQuestionID(data.QuestionID).
		SetItemKind(data.ItemKind).
		SetQuestionFormat(data.QuestionFormat).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCorrectAnswer(data.CorrectAnswer).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) ConceptAccuracy(ctx context.Context, conceptID string) (float64, int, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.ConceptID(conceptID)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query concept accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), len(events), nil
}
