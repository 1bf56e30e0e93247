package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single graded answer within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("concept_id").
			NotEmpty().
			Comment("Concept this question tested"),
		field.String("question_id").
			NotEmpty(),
		field.String("item_kind").
			NotEmpty().
			Comment("review, new, or pretest"),
		field.String("question_format").
			NotEmpty().
			Comment("multiple_choice, true_false, or open_text"),
		field.String("learner_answer").
			Comment("What the learner entered"),
		field.String("correct_answer").
			NotEmpty().
			Comment("The canonical correct answer"),
		field.Bool("correct"),
		field.Int64("time_ms").
			Comment("Milliseconds to answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("concept_id"),
		index.Fields("correct"),
	}
}
