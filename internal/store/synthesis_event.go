package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSynthesisEvent(ctx context.Context, data SynthesisEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SynthesisEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetConceptIds(data.ConceptIDs).
		SetPrompt(data.Prompt).
		SetResponse(data.Response).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save synthesis event: %w", err)
	}
	return nil
}
