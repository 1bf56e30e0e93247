package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SynthesisEvent records a synthesis prompt shown to the learner and,
// when answered, the response.
type SynthesisEvent struct {
	ent.Schema
}

func (SynthesisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SynthesisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.JSON("concept_ids", []string{}).
			Comment("Concepts the prompt connects (3 to 5)"),
		field.String("prompt").NotEmpty(),
		field.String("response").
			Default("").
			Comment("Learner's free-text answer, empty if skipped"),
	}
}

func (SynthesisEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
