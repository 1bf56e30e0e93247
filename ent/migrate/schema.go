// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "item_kind", Type: field.TypeString},
		{Name: "question_format", Type: field.TypeString},
		{Name: "learner_answer", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt64},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_concept_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[10]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// RatingEventsColumns holds the columns for the "rating_events" table.
	RatingEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "concept_id", Type: field.TypeString},
		{Name: "rating", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// RatingEventsTable holds the schema information for the "rating_events" table.
	RatingEventsTable = &schema.Table{
		Name:       "rating_events",
		Columns:    RatingEventsColumns,
		PrimaryKey: []*schema.Column{RatingEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ratingevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RatingEventsColumns[2]},
			},
			{
				Name:    "ratingevent_concept_id",
				Unique:  false,
				Columns: []*schema.Column{RatingEventsColumns[3]},
			},
		},
	}
	// SandboxEventsColumns holds the columns for the "sandbox_events" table.
	SandboxEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "concept_ids", Type: field.TypeJSON},
		{Name: "interaction_type", Type: field.TypeString},
		{Name: "cognitive_type", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "passed", Type: field.TypeBool},
		{Name: "attempt_count", Type: field.TypeInt, Default: 1},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
		{Name: "elapsed_ms", Type: field.TypeInt64, Default: 0},
		{Name: "baseline_ms", Type: field.TypeInt64, Default: 0},
		{Name: "completed", Type: field.TypeBool},
	}
	// SandboxEventsTable holds the schema information for the "sandbox_events" table.
	SandboxEventsTable = &schema.Table{
		Name:       "sandbox_events",
		Columns:    SandboxEventsColumns,
		PrimaryKey: []*schema.Column{SandboxEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sandboxevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SandboxEventsColumns[2]},
			},
			{
				Name:    "sandboxevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SandboxEventsColumns[3]},
			},
			{
				Name:    "sandboxevent_interaction_type_cognitive_type",
				Unique:  false,
				Columns: []*schema.Column{SandboxEventsColumns[5], SandboxEventsColumns[6]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "capacity", Type: field.TypeInt, Default: 0},
		{Name: "did_skip_pretest", Type: field.TypeBool, Default: false},
		{Name: "items_answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "item_summary", Type: field.TypeJSON, Nullable: true},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_user_id_project_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4], SessionEventsColumns[5]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[6]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// SynthesisEventsColumns holds the columns for the "synthesis_events" table.
	SynthesisEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "concept_ids", Type: field.TypeJSON},
		{Name: "prompt", Type: field.TypeString},
		{Name: "response", Type: field.TypeString, Default: ""},
	}
	// SynthesisEventsTable holds the schema information for the "synthesis_events" table.
	SynthesisEventsTable = &schema.Table{
		Name:       "synthesis_events",
		Columns:    SynthesisEventsColumns,
		PrimaryKey: []*schema.Column{SynthesisEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "synthesisevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SynthesisEventsColumns[2]},
			},
			{
				Name:    "synthesisevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SynthesisEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		LlmRequestEventsTable,
		RatingEventsTable,
		SandboxEventsTable,
		SessionEventsTable,
		SnapshotsTable,
		SynthesisEventsTable,
	}
)

func init() {
}
