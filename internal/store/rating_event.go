package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendRatingEvent(ctx context.Context, data RatingEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.RatingEvent.Create().
		SetSequence(seqNum).
		SetConceptID(data.ConceptID).
		SetRating(data.Rating).
		SetSource(data.Source)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save rating event: %w", err)
	}
	return nil
}
