package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/synapz/internal/concepts"
	"github.com/abhisek/synapz/internal/grading"
	"github.com/abhisek/synapz/internal/session"
	"github.com/abhisek/synapz/internal/store"
)

// SubmitAnswer grades the learner's answer to the current question item,
// records it, and advances. Review answers for concepts with sandbox
// history also feed a retention observation into the usefulness loop.
func (e *Engine) SubmitAnswer(ctx context.Context, rawAnswer string, elapsedMs int64) (grading.Result, error) {
	e.mu.Lock()
	sess := e.current
	e.mu.Unlock()
	if sess == nil {
		return grading.Result{}, ErrNoActiveSession
	}

	item, ok := sess.Current()
	if !ok {
		return grading.Result{}, &session.StateError{Op: "submit_answer", Phase: sess.Phase()}
	}
	if item.Question == nil {
		return grading.Result{}, fmt.Errorf("current item is %s, not a question", item.Kind)
	}

	res := grading.Grade(*item.Question, rawAnswer, elapsedMs, e.gradeCfg)
	if err := sess.RecordAnswer(res.IsCorrect); err != nil {
		return grading.Result{}, err
	}

	if e.events != nil {
		err := e.events.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:      sess.ID,
			ConceptID:      item.ConceptID(),
			QuestionID:     item.Question.ID,
			ItemKind:       string(item.Kind),
			QuestionFormat: string(item.Question.Format),
			LearnerAnswer:  rawAnswer,
			CorrectAnswer:  item.Question.Answer,
			Correct:        res.IsCorrect,
			TimeMs:         elapsedMs,
		})
		if err != nil {
			e.logger.Warn("recording answer failed", zap.Error(err))
		}
	}

	// Pretest answers feed the gap analysis, not the scheduler.
	if item.Kind != session.ItemPretest {
		e.forwardRating(ctx, sess.ID, item.ConceptID(), res.Rating, "quiz")
	}

	if item.Kind == session.ItemReview {
		e.observeRetention(ctx, item.ConceptID(), res.IsCorrect)
	}

	e.advance(ctx, sess)
	return res, nil
}

// SubmitSandbox grades the learner's sandbox attempt through the
// two-layer pipeline, records the outcome everywhere it matters, and
// advances. A semantic-layer collaborator failure is returned to the
// caller; nothing is recorded in that case.
func (e *Engine) SubmitSandbox(ctx context.Context, att grading.Attempt) (grading.SandboxScore, error) {
	e.mu.Lock()
	sess := e.current
	e.mu.Unlock()
	if sess == nil {
		return grading.SandboxScore{}, ErrNoActiveSession
	}

	item, ok := sess.Current()
	if !ok {
		return grading.SandboxScore{}, &session.StateError{Op: "submit_sandbox", Phase: sess.Phase()}
	}
	if item.Exercise == nil {
		return grading.SandboxScore{}, fmt.Errorf("current item is %s, not a sandbox exercise", item.Kind)
	}

	score, err := e.grader.Grade(ctx, *item.Exercise, att)
	if err != nil {
		return grading.SandboxScore{}, err
	}
	if recErr := sess.RecordAnswer(score.Passed); recErr != nil {
		return grading.SandboxScore{}, recErr
	}

	result := concepts.SandboxResult{
		SessionID:       sess.ID,
		ConceptIDs:      item.ConceptIDs,
		InteractionType: item.Exercise.InteractionType,
		CognitiveType:   item.Exercise.CognitiveType,
		Score:           score.Score,
		Passed:          score.Passed,
		AttemptCount:    att.AttemptCount,
		HintsUsed:       att.HintsUsed,
		ElapsedMs:       att.ElapsedMs,
		BaselineMs:      score.BaselineMs,
		Completed:       true,
		OccurredAt:      time.Now(),
	}

	e.tracker.RecordResult(result)

	if e.events != nil {
		if err := e.events.AppendSandboxEvent(ctx, result); err != nil {
			e.logger.Warn("recording sandbox event failed", zap.Error(err))
		}
	}
	if err := e.content.RecordSandboxResult(ctx, result); err != nil {
		e.logger.Warn("forwarding sandbox result failed", zap.Error(err))
	}
	for _, id := range item.ConceptIDs {
		e.forwardRating(ctx, sess.ID, id, score.Rating, "sandbox")
	}

	e.advance(ctx, sess)
	return score, nil
}

// SubmitSynthesis records the learner's answer to the current synthesis
// prompt and advances. Synthesis responses are reflective, not graded.
func (e *Engine) SubmitSynthesis(ctx context.Context, response string) error {
	e.mu.Lock()
	sess := e.current
	e.mu.Unlock()
	if sess == nil {
		return ErrNoActiveSession
	}

	item, ok := sess.Current()
	if !ok {
		return &session.StateError{Op: "submit_synthesis", Phase: sess.Phase()}
	}
	if item.Kind != session.ItemSynthesis {
		return fmt.Errorf("current item is %s, not a synthesis prompt", item.Kind)
	}

	if e.events != nil {
		err := e.events.AppendSynthesisEvent(ctx, store.SynthesisEventData{
			SessionID:  sess.ID,
			ConceptIDs: item.ConceptIDs,
			Prompt:     item.SynthesisPrompt,
			Response:   response,
		})
		if err != nil {
			e.logger.Warn("recording synthesis response failed", zap.Error(err))
		}
	}

	e.advance(ctx, sess)
	return nil
}

// Skip advances past the current item without grading it.
func (e *Engine) Skip(ctx context.Context) error {
	e.mu.Lock()
	sess := e.current
	e.mu.Unlock()
	if sess == nil {
		return ErrNoActiveSession
	}
	e.advance(ctx, sess)
	return nil
}

// forwardRating appends the rating event and forwards it to the
// spaced-repetition scheduler. Failures are logged, never fatal: the
// grading outcome already reached the learner.
func (e *Engine) forwardRating(ctx context.Context, sessionID, conceptID string, rating concepts.Rating, source string) {
	if conceptID == "" {
		return
	}
	if e.events != nil {
		err := e.events.AppendRatingEvent(ctx, store.RatingEventData{
			ConceptID: conceptID,
			Rating:    rating.String(),
			Source:    source,
			SessionID: sessionID,
		})
		if err != nil {
			e.logger.Warn("recording rating event failed", zap.Error(err))
		}
	}
	if err := e.content.RecordRating(ctx, conceptID, rating); err != nil {
		e.logger.Warn("forwarding rating failed",
			zap.String("concept_id", conceptID), zap.Error(err))
	}
}

// observeRetention feeds the usefulness loop when a review answer lands
// for a concept the learner previously practiced in a sandbox. The lift
// is the review outcome relative to the concept's historical accuracy,
// attributed to the sandbox's interaction type.
func (e *Engine) observeRetention(ctx context.Context, conceptID string, correct bool) {
	if e.events == nil || conceptID == "" {
		return
	}
	sb, err := e.events.LatestSandboxForConcept(ctx, conceptID)
	if err != nil {
		e.logger.Warn("retention lookup failed", zap.Error(err))
		return
	}
	if sb == nil {
		return
	}

	baseline, n, err := e.events.ConceptAccuracy(ctx, conceptID)
	if err != nil || n == 0 {
		return
	}
	outcome := 0.0
	if correct {
		outcome = 1.0
	}
	e.tracker.RecordRetention(sb.InteractionType, sb.CognitiveType, outcome-baseline)
}

// advance moves the session forward and finishes it when exhausted.
func (e *Engine) advance(ctx context.Context, sess *session.Session) {
	sess.Advance()
	if sess.Phase() != session.PhaseComplete {
		return
	}

	e.mu.Lock()
	if e.current == sess {
		e.current = nil
	}
	e.mu.Unlock()

	if err := e.finish(ctx, sess, "end"); err != nil {
		e.logger.Warn("finishing session failed", zap.Error(err))
	}
}

// finish records the closing session event and persists the usefulness
// snapshot.
func (e *Engine) finish(ctx context.Context, sess *session.Session, action string) error {
	answered, correct := sess.Progress()

	if e.events != nil {
		err := e.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:      sess.ID,
			UserID:         sess.UserID,
			ProjectID:      sess.ProjectID,
			Action:         action,
			ItemsAnswered:  answered,
			CorrectAnswers: correct,
			DurationSecs:   int(time.Since(sess.StartedAt).Seconds()),
		})
		if err != nil {
			return err
		}
	}

	if e.snapshots == nil {
		return nil
	}
	var seq int64
	if e.events != nil {
		if s, err := e.events.CurrentSequence(ctx); err == nil {
			seq = s
		}
	}
	return e.snapshots.Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version:    1,
			Usefulness: e.tracker.Export(),
		},
	})
}
