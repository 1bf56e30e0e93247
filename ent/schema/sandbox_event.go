package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SandboxEvent records one completed (or abandoned) sandbox exercise,
// feeding the usefulness aggregates.
type SandboxEvent struct {
	ent.Schema
}

func (SandboxEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SandboxEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.JSON("concept_ids", []string{}).
			Comment("Concepts the exercise practiced"),
		field.String("interaction_type").
			NotEmpty().
			Comment("matching, sequencing, fill_in_blank, or free_text"),
		field.String("cognitive_type").
			NotEmpty().
			Comment("recall, application, or connection"),
		field.Float("score").
			Comment("Accuracy in [0, 1]"),
		field.Bool("passed"),
		field.Int("attempt_count").Default(1),
		field.Int("hints_used").Default(0),
		field.Int64("elapsed_ms").Default(0),
		field.Int64("baseline_ms").
			Default(0).
			Comment("Expected time for this exercise shape"),
		field.Bool("completed").
			Comment("False when the learner abandoned the exercise"),
	}
}

func (SandboxEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("interaction_type", "cognitive_type"),
	}
}
