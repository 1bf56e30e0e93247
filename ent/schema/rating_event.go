package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RatingEvent records a recall-quality rating forwarded to the
// spaced-repetition store. The engine never mutates scheduling state
// directly, so the rating stream is the full audit trail of what it told
// the scheduler.
type RatingEvent struct {
	ent.Schema
}

func (RatingEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RatingEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("concept_id").NotEmpty(),
		field.String("rating").
			NotEmpty().
			Comment("again, hard, good, or easy"),
		field.String("source").
			NotEmpty().
			Comment("quiz or sandbox"),
		field.String("session_id").Optional(),
	}
}

func (RatingEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("concept_id"),
	}
}
