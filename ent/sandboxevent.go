// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/synapz/ent/sandboxevent"
)

// SandboxEvent is the model entity for the SandboxEvent schema.
type SandboxEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the global event sequence, unique across all event types
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock time the event was appended
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Concepts the exercise practiced
	ConceptIds []string `json:"concept_ids,omitempty"`
	// matching, sequencing, fill_in_blank, or free_text
	InteractionType string `json:"interaction_type,omitempty"`
	// recall, application, or connection
	CognitiveType string `json:"cognitive_type,omitempty"`
	// Accuracy in [0, 1]
	Score float64 `json:"score,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed bool `json:"passed,omitempty"`
	// AttemptCount holds the value of the "attempt_count" field.
	AttemptCount int `json:"attempt_count,omitempty"`
	// HintsUsed holds the value of the "hints_used" field.
	HintsUsed int `json:"hints_used,omitempty"`
	// ElapsedMs holds the value of the "elapsed_ms" field.
	ElapsedMs int64 `json:"elapsed_ms,omitempty"`
	// Expected time for this exercise shape
	BaselineMs int64 `json:"baseline_ms,omitempty"`
	// False when the learner abandoned the exercise
	Completed    bool `json:"completed,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SandboxEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sandboxevent.FieldConceptIds:
			values[i] = new([]byte)
		case sandboxevent.FieldPassed, sandboxevent.FieldCompleted:
			values[i] = new(sql.NullBool)
		case sandboxevent.FieldScore:
			values[i] = new(sql.NullFloat64)
		case sandboxevent.FieldID, sandboxevent.FieldSequence, sandboxevent.FieldAttemptCount, sandboxevent.FieldHintsUsed, sandboxevent.FieldElapsedMs, sandboxevent.FieldBaselineMs:
			values[i] = new(sql.NullInt64)
		case sandboxevent.FieldSessionID, sandboxevent.FieldInteractionType, sandboxevent.FieldCognitiveType:
			values[i] = new(sql.NullString)
		case sandboxevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SandboxEvent fields.
func (_m *SandboxEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sandboxevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sandboxevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case sandboxevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case sandboxevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sandboxevent.FieldConceptIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field concept_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConceptIds); err != nil {
					return fmt.Errorf("unmarshal field concept_ids: %w", err)
				}
			}
		case sandboxevent.FieldInteractionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interaction_type", values[i])
			} else if value.Valid {
				_m.InteractionType = value.String
			}
		case sandboxevent.FieldCognitiveType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cognitive_type", values[i])
			} else if value.Valid {
				_m.CognitiveType = value.String
			}
		case sandboxevent.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case sandboxevent.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case sandboxevent.FieldAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_count", values[i])
			} else if value.Valid {
				_m.AttemptCount = int(value.Int64)
			}
		case sandboxevent.FieldHintsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hints_used", values[i])
			} else if value.Valid {
				_m.HintsUsed = int(value.Int64)
			}
		case sandboxevent.FieldElapsedMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field elapsed_ms", values[i])
			} else if value.Valid {
				_m.ElapsedMs = value.Int64
			}
		case sandboxevent.FieldBaselineMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field baseline_ms", values[i])
			} else if value.Valid {
				_m.BaselineMs = value.Int64
			}
		case sandboxevent.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SandboxEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SandboxEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SandboxEvent.
// Note that you need to call SandboxEvent.Unwrap() before calling this method if this SandboxEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SandboxEvent) Update() *SandboxEventUpdateOne {
	return NewSandboxEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SandboxEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SandboxEvent) Unwrap() *SandboxEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SandboxEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SandboxEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SandboxEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("concept_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptIds))
	builder.WriteString(", ")
	builder.WriteString("interaction_type=")
	builder.WriteString(_m.InteractionType)
	builder.WriteString(", ")
	builder.WriteString("cognitive_type=")
	builder.WriteString(_m.CognitiveType)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptCount))
	builder.WriteString(", ")
	builder.WriteString("hints_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.HintsUsed))
	builder.WriteString(", ")
	builder.WriteString("elapsed_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ElapsedMs))
	builder.WriteString(", ")
	builder.WriteString("baseline_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaselineMs))
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteByte(')')
	return builder.String()
}

// SandboxEvents is a parsable slice of SandboxEvent.
type SandboxEvents []*SandboxEvent
