// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/synapz/ent/answerevent"
	"github.com/abhisek/synapz/ent/llmrequestevent"
	"github.com/abhisek/synapz/ent/ratingevent"
	"github.com/abhisek/synapz/ent/sandboxevent"
	"github.com/abhisek/synapz/ent/schema"
	"github.com/abhisek/synapz/ent/sessionevent"
	"github.com/abhisek/synapz/ent/snapshot"
	"github.com/abhisek/synapz/ent/synthesisevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescConceptID is the schema descriptor for concept_id field.
	answereventDescConceptID := answereventFields[1].Descriptor()
	// answerevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	answerevent.ConceptIDValidator = answereventDescConceptID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescItemKind is the schema descriptor for item_kind field.
	answereventDescItemKind := answereventFields[3].Descriptor()
	// answerevent.ItemKindValidator is a validator for the "item_kind" field. It is called by the builders before save.
	answerevent.ItemKindValidator = answereventDescItemKind.Validators[0].(func(string) error)
	// answereventDescQuestionFormat is the schema descriptor for question_format field.
	answereventDescQuestionFormat := answereventFields[4].Descriptor()
	// answerevent.QuestionFormatValidator is a validator for the "question_format" field. It is called by the builders before save.
	answerevent.QuestionFormatValidator = answereventDescQuestionFormat.Validators[0].(func(string) error)
	// answereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	answereventDescCorrectAnswer := answereventFields[6].Descriptor()
	// answerevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	answerevent.CorrectAnswerValidator = answereventDescCorrectAnswer.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	ratingeventMixin := schema.RatingEvent{}.Mixin()
	ratingeventMixinFields0 := ratingeventMixin[0].Fields()
	_ = ratingeventMixinFields0
	ratingeventFields := schema.RatingEvent{}.Fields()
	_ = ratingeventFields
	// ratingeventDescTimestamp is the schema descriptor for timestamp field.
	ratingeventDescTimestamp := ratingeventMixinFields0[1].Descriptor()
	// ratingevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	ratingevent.DefaultTimestamp = ratingeventDescTimestamp.Default.(func() time.Time)
	// ratingeventDescConceptID is the schema descriptor for concept_id field.
	ratingeventDescConceptID := ratingeventFields[0].Descriptor()
	// ratingevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	ratingevent.ConceptIDValidator = ratingeventDescConceptID.Validators[0].(func(string) error)
	// ratingeventDescRating is the schema descriptor for rating field.
	ratingeventDescRating := ratingeventFields[1].Descriptor()
	// ratingevent.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	ratingevent.RatingValidator = ratingeventDescRating.Validators[0].(func(string) error)
	// ratingeventDescSource is the schema descriptor for source field.
	ratingeventDescSource := ratingeventFields[2].Descriptor()
	// ratingevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	ratingevent.SourceValidator = ratingeventDescSource.Validators[0].(func(string) error)
	sandboxeventMixin := schema.SandboxEvent{}.Mixin()
	sandboxeventMixinFields0 := sandboxeventMixin[0].Fields()
	_ = sandboxeventMixinFields0
	sandboxeventFields := schema.SandboxEvent{}.Fields()
	_ = sandboxeventFields
	// sandboxeventDescTimestamp is the schema descriptor for timestamp field.
	sandboxeventDescTimestamp := sandboxeventMixinFields0[1].Descriptor()
	// sandboxevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sandboxevent.DefaultTimestamp = sandboxeventDescTimestamp.Default.(func() time.Time)
	// sandboxeventDescSessionID is the schema descriptor for session_id field.
	sandboxeventDescSessionID := sandboxeventFields[0].Descriptor()
	// sandboxevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sandboxevent.SessionIDValidator = sandboxeventDescSessionID.Validators[0].(func(string) error)
	// sandboxeventDescInteractionType is the schema descriptor for interaction_type field.
	sandboxeventDescInteractionType := sandboxeventFields[2].Descriptor()
	// sandboxevent.InteractionTypeValidator is a validator for the "interaction_type" field. It is called by the builders before save.
	sandboxevent.InteractionTypeValidator = sandboxeventDescInteractionType.Validators[0].(func(string) error)
	// sandboxeventDescCognitiveType is the schema descriptor for cognitive_type field.
	sandboxeventDescCognitiveType := sandboxeventFields[3].Descriptor()
	// sandboxevent.CognitiveTypeValidator is a validator for the "cognitive_type" field. It is called by the builders before save.
	sandboxevent.CognitiveTypeValidator = sandboxeventDescCognitiveType.Validators[0].(func(string) error)
	// sandboxeventDescAttemptCount is the schema descriptor for attempt_count field.
	sandboxeventDescAttemptCount := sandboxeventFields[6].Descriptor()
	// sandboxevent.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	sandboxevent.DefaultAttemptCount = sandboxeventDescAttemptCount.Default.(int)
	// sandboxeventDescHintsUsed is the schema descriptor for hints_used field.
	sandboxeventDescHintsUsed := sandboxeventFields[7].Descriptor()
	// sandboxevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	sandboxevent.DefaultHintsUsed = sandboxeventDescHintsUsed.Default.(int)
	// sandboxeventDescElapsedMs is the schema descriptor for elapsed_ms field.
	sandboxeventDescElapsedMs := sandboxeventFields[8].Descriptor()
	// sandboxevent.DefaultElapsedMs holds the default value on creation for the elapsed_ms field.
	sandboxevent.DefaultElapsedMs = sandboxeventDescElapsedMs.Default.(int64)
	// sandboxeventDescBaselineMs is the schema descriptor for baseline_ms field.
	sandboxeventDescBaselineMs := sandboxeventFields[9].Descriptor()
	// sandboxevent.DefaultBaselineMs holds the default value on creation for the baseline_ms field.
	sandboxevent.DefaultBaselineMs = sandboxeventDescBaselineMs.Default.(int64)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[1].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescProjectID is the schema descriptor for project_id field.
	sessioneventDescProjectID := sessioneventFields[2].Descriptor()
	// sessionevent.ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	sessionevent.ProjectIDValidator = sessioneventDescProjectID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[3].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescCapacity is the schema descriptor for capacity field.
	sessioneventDescCapacity := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCapacity holds the default value on creation for the capacity field.
	sessionevent.DefaultCapacity = sessioneventDescCapacity.Default.(int)
	// sessioneventDescDidSkipPretest is the schema descriptor for did_skip_pretest field.
	sessioneventDescDidSkipPretest := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDidSkipPretest holds the default value on creation for the did_skip_pretest field.
	sessionevent.DefaultDidSkipPretest = sessioneventDescDidSkipPretest.Default.(bool)
	// sessioneventDescItemsAnswered is the schema descriptor for items_answered field.
	sessioneventDescItemsAnswered := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultItemsAnswered holds the default value on creation for the items_answered field.
	sessionevent.DefaultItemsAnswered = sessioneventDescItemsAnswered.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	synthesiseventMixin := schema.SynthesisEvent{}.Mixin()
	synthesiseventMixinFields0 := synthesiseventMixin[0].Fields()
	_ = synthesiseventMixinFields0
	synthesiseventFields := schema.SynthesisEvent{}.Fields()
	_ = synthesiseventFields
	// synthesiseventDescTimestamp is the schema descriptor for timestamp field.
	synthesiseventDescTimestamp := synthesiseventMixinFields0[1].Descriptor()
	// synthesisevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	synthesisevent.DefaultTimestamp = synthesiseventDescTimestamp.Default.(func() time.Time)
	// synthesiseventDescSessionID is the schema descriptor for session_id field.
	synthesiseventDescSessionID := synthesiseventFields[0].Descriptor()
	// synthesisevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	synthesisevent.SessionIDValidator = synthesiseventDescSessionID.Validators[0].(func(string) error)
	// synthesiseventDescPrompt is the schema descriptor for prompt field.
	synthesiseventDescPrompt := synthesiseventFields[2].Descriptor()
	// synthesisevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	synthesisevent.PromptValidator = synthesiseventDescPrompt.Validators[0].(func(string) error)
	// synthesiseventDescResponse is the schema descriptor for response field.
	synthesiseventDescResponse := synthesiseventFields[3].Descriptor()
	// synthesisevent.DefaultResponse holds the default value on creation for the response field.
	synthesisevent.DefaultResponse = synthesiseventDescResponse.Default.(string)
}
