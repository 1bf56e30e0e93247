package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end/cancel).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// SessionItemSummary is the serialized form of one planned item.
type SessionItemSummary struct {
	Kind       string   `json:"kind"`
	ConceptIDs []string `json:"concept_ids"`
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("user_id").
			NotEmpty(),
		field.String("project_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start, end, or cancel"),
		field.Int("capacity").
			Default(0).
			Comment("Effective capacity computed at build time (on start only)"),
		field.Bool("did_skip_pretest").
			Default(false).
			Comment("Learner declined the prerequisite pre-test (on start only)"),
		field.Int("items_answered").
			Default(0).
			Comment("Total items answered (on end/cancel only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on end/cancel only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end/cancel only)"),
		field.JSON("item_summary", []SessionItemSummary{}).
			Optional().
			Comment("Serialized session plan (on start only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id", "project_id"),
		index.Fields("action"),
	}
}
