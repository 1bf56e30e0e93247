// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/synapz/ent/predicate"
	"github.com/abhisek/synapz/ent/sandboxevent"
)

// SandboxEventUpdate is the builder for updating SandboxEvent entities.
type SandboxEventUpdate struct {
	config
	hooks    []Hook
	mutation *SandboxEventMutation
}

// Where appends a list predicates to the SandboxEventUpdate builder.
func (_u *SandboxEventUpdate) Where(ps ...predicate.SandboxEvent) *SandboxEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SandboxEventUpdate) SetSessionID(v string) *SandboxEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SandboxEventUpdate) SetNillableSessionID(v *string) *SandboxEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConceptIds sets the "concept_ids" field.
func (_u *SandboxEventUpdate) SetConceptIds(v []string) *SandboxEventUpdate {
	_u.mutation.SetConceptIds(v)
	return _u
}

// AppendConceptIds appends value to the "concept_ids" field.
func (_u *SandboxEventUpdate) AppendConceptIds(v []string) *SandboxEventUpdate {
	_u.mutation.AppendConceptIds(v)
	return _u
}

// SetInteractionType sets the "interaction_type" field.
func (_u *SandboxEventUpdate) SetInteractionType(v string) *SandboxEventUpdate {
	_u.mutation.SetInteractionType(v)
	return _u
}

// SetNillableInteractionType sets the "interaction_type" field if the given value is not nil.
func (_u *SandboxEventUpdate) SetNillableInteractionType(v *string) *SandboxEventUpdate {
	if v != nil {
		_u.SetInteractionType(*v)
	}
	return _u
}

// SetCognitiveType sets the "cognitive_type" field.
func (_u *SandboxEventUpdate) SetCognitiveType(v string) *SandboxEventUpdate {
	_u.mutation.SetCognitiveType(v)
	return _u
}

// SetNillableCognitiveType sets the "cognitive_type" field if the given value is not nil.
func (_u *SandboxEventUpdate) SetNillableCognitiveType(v *string) *SandboxEventUpdate {
	if v != nil {
		_u.SetCognitiveType(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SandboxEventUpdate) SetScore(v float64) *SandboxEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SandboxEventUpdate) SetNillableScore(v *float64) *SandboxEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SandboxEventUpdate) AddScore(v float64) *SandboxEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *SandboxEventUpdate) SetPassed(v bool) *SandboxEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *SandboxEventUpdate) SetNillablePassed(v *bool) *SandboxEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *SandboxEventUpdate) SetAttemptCount(v int) *SandboxEventUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *SandboxEventUpdate) SetNillableAttemptCount(v *int) *SandboxEventUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *SandboxEventUpdate) AddAttemptCount(v int) *SandboxEventUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *SandboxEventUpdate) SetHintsUsed(v int) *SandboxEventUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *SandboxEventUpdate) SetNillableHintsUsed(v *int) *SandboxEventUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *SandboxEventUpdate) AddHintsUsed(v int) *SandboxEventUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *SandboxEventUpdate) SetElapsedMs(v int64) *SandboxEventUpdate {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *SandboxEventUpdate) SetNillableElapsedMs(v *int64) *SandboxEventUpdate {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *SandboxEventUpdate) AddElapsedMs(v int64) *SandboxEventUpdate {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetBaselineMs sets the "baseline_ms" field.
func (_u *SandboxEventUpdate) SetBaselineMs(v int64) *SandboxEventUpdate {
	_u.mutation.ResetBaselineMs()
	_u.mutation.SetBaselineMs(v)
	return _u
}

// SetNillableBaselineMs sets the "baseline_ms" field if the given value is not nil.
func (_u *SandboxEventUpdate) SetNillableBaselineMs(v *int64) *SandboxEventUpdate {
	if v != nil {
		_u.SetBaselineMs(*v)
	}
	return _u
}

// AddBaselineMs adds value to the "baseline_ms" field.
func (_u *SandboxEventUpdate) AddBaselineMs(v int64) *SandboxEventUpdate {
	_u.mutation.AddBaselineMs(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *SandboxEventUpdate) SetCompleted(v bool) *SandboxEventUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *SandboxEventUpdate) SetNillableCompleted(v *bool) *SandboxEventUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// Mutation returns the SandboxEventMutation object of the builder.
func (_u *SandboxEventUpdate) Mutation() *SandboxEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SandboxEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SandboxEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SandboxEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SandboxEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SandboxEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sandboxevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SandboxEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InteractionType(); ok {
		if err := sandboxevent.InteractionTypeValidator(v); err != nil {
			return &ValidationError{Name: "interaction_type", err: fmt.Errorf(`ent: validator failed for field "SandboxEvent.interaction_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CognitiveType(); ok {
		if err := sandboxevent.CognitiveTypeValidator(v); err != nil {
			return &ValidationError{Name: "cognitive_type", err: fmt.Errorf(`ent: validator failed for field "SandboxEvent.cognitive_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SandboxEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sandboxevent.Table, sandboxevent.Columns, sqlgraph.NewFieldSpec(sandboxevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sandboxevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptIds(); ok {
		_spec.SetField(sandboxevent.FieldConceptIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sandboxevent.FieldConceptIds, value)
		})
	}
	if value, ok := _u.mutation.InteractionType(); ok {
		_spec.SetField(sandboxevent.FieldInteractionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CognitiveType(); ok {
		_spec.SetField(sandboxevent.FieldCognitiveType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sandboxevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(sandboxevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(sandboxevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(sandboxevent.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(sandboxevent.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(sandboxevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(sandboxevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(sandboxevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(sandboxevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.BaselineMs(); ok {
		_spec.SetField(sandboxevent.FieldBaselineMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBaselineMs(); ok {
		_spec.AddField(sandboxevent.FieldBaselineMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(sandboxevent.FieldCompleted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sandboxevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SandboxEventUpdateOne is the builder for updating a single SandboxEvent entity.
type SandboxEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SandboxEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SandboxEventUpdateOne) SetSessionID(v string) *SandboxEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SandboxEventUpdateOne) SetNillableSessionID(v *string) *SandboxEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConceptIds sets the "concept_ids" field.
func (_u *SandboxEventUpdateOne) SetConceptIds(v []string) *SandboxEventUpdateOne {
	_u.mutation.SetConceptIds(v)
	return _u
}

// AppendConceptIds appends value to the "concept_ids" field.
func (_u *SandboxEventUpdateOne) AppendConceptIds(v []string) *SandboxEventUpdateOne {
	_u.mutation.AppendConceptIds(v)
	return _u
}

// SetInteractionType sets the "interaction_type" field.
func (_u *SandboxEventUpdateOne) SetInteractionType(v string) *SandboxEventUpdateOne {
	_u.mutation.SetInteractionType(v)
	return _u
}

// SetNillableInteractionType sets the "interaction_type" field if the given value is not nil.
func (_u *SandboxEventUpdateOne) SetNillableInteractionType(v *string) *SandboxEventUpdateOne {
	if v != nil {
		_u.SetInteractionType(*v)
	}
	return _u
}

// SetCognitiveType sets the "cognitive_type" field.
func (_u *SandboxEventUpdateOne) SetCognitiveType(v string) *SandboxEventUpdateOne {
	_u.mutation.SetCognitiveType(v)
	return _u
}

// SetNillableCognitiveType sets the "cognitive_type" field if the given value is not nil.
func (_u *SandboxEventUpdateOne) SetNillableCognitiveType(v *string) *SandboxEventUpdateOne {
	if v != nil {
		_u.SetCognitiveType(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SandboxEventUpdateOne) SetScore(v float64) *SandboxEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SandboxEventUpdateOne) SetNillableScore(v *float64) *SandboxEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SandboxEventUpdateOne) AddScore(v float64) *SandboxEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *SandboxEventUpdateOne) SetPassed(v bool) *SandboxEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *SandboxEventUpdateOne) SetNillablePassed(v *bool) *SandboxEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *SandboxEventUpdateOne) SetAttemptCount(v int) *SandboxEventUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *SandboxEventUpdateOne) SetNillableAttemptCount(v *int) *SandboxEventUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *SandboxEventUpdateOne) AddAttemptCount(v int) *SandboxEventUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *SandboxEventUpdateOne) SetHintsUsed(v int) *SandboxEventUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *SandboxEventUpdateOne) SetNillableHintsUsed(v *int) *SandboxEventUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *SandboxEventUpdateOne) AddHintsUsed(v int) *SandboxEventUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *SandboxEventUpdateOne) SetElapsedMs(v int64) *SandboxEventUpdateOne {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *SandboxEventUpdateOne) SetNillableElapsedMs(v *int64) *SandboxEventUpdateOne {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *SandboxEventUpdateOne) AddElapsedMs(v int64) *SandboxEventUpdateOne {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetBaselineMs sets the "baseline_ms" field.
func (_u *SandboxEventUpdateOne) SetBaselineMs(v int64) *SandboxEventUpdateOne {
	_u.mutation.ResetBaselineMs()
	_u.mutation.SetBaselineMs(v)
	return _u
}

// SetNillableBaselineMs sets the "baseline_ms" field if the given value is not nil.
func (_u *SandboxEventUpdateOne) SetNillableBaselineMs(v *int64) *SandboxEventUpdateOne {
	if v != nil {
		_u.SetBaselineMs(*v)
	}
	return _u
}

// AddBaselineMs adds value to the "baseline_ms" field.
func (_u *SandboxEventUpdateOne) AddBaselineMs(v int64) *SandboxEventUpdateOne {
	_u.mutation.AddBaselineMs(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *SandboxEventUpdateOne) SetCompleted(v bool) *SandboxEventUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *SandboxEventUpdateOne) SetNillableCompleted(v *bool) *SandboxEventUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// Mutation returns the SandboxEventMutation object of the builder.
func (_u *SandboxEventUpdateOne) Mutation() *SandboxEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SandboxEventUpdate builder.
func (_u *SandboxEventUpdateOne) Where(ps ...predicate.SandboxEvent) *SandboxEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SandboxEventUpdateOne) Select(field string, fields ...string) *SandboxEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SandboxEvent entity.
func (_u *SandboxEventUpdateOne) Save(ctx context.Context) (*SandboxEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SandboxEventUpdateOne) SaveX(ctx context.Context) *SandboxEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SandboxEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SandboxEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SandboxEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sandboxevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SandboxEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InteractionType(); ok {
		if err := sandboxevent.InteractionTypeValidator(v); err != nil {
			return &ValidationError{Name: "interaction_type", err: fmt.Errorf(`ent: validator failed for field "SandboxEvent.interaction_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CognitiveType(); ok {
		if err := sandboxevent.CognitiveTypeValidator(v); err != nil {
			return &ValidationError{Name: "cognitive_type", err: fmt.Errorf(`ent: validator failed for field "SandboxEvent.cognitive_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SandboxEventUpdateOne) sqlSave(ctx context.Context) (_node *SandboxEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sandboxevent.Table, sandboxevent.Columns, sqlgraph.NewFieldSpec(sandboxevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SandboxEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sandboxevent.FieldID)
		for _, f := range fields {
			if !sandboxevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sandboxevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sandboxevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptIds(); ok {
		_spec.SetField(sandboxevent.FieldConceptIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sandboxevent.FieldConceptIds, value)
		})
	}
	if value, ok := _u.mutation.InteractionType(); ok {
		_spec.SetField(sandboxevent.FieldInteractionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CognitiveType(); ok {
		_spec.SetField(sandboxevent.FieldCognitiveType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sandboxevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(sandboxevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(sandboxevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(sandboxevent.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(sandboxevent.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(sandboxevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(sandboxevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(sandboxevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(sandboxevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.BaselineMs(); ok {
		_spec.SetField(sandboxevent.FieldBaselineMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBaselineMs(); ok {
		_spec.AddField(sandboxevent.FieldBaselineMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(sandboxevent.FieldCompleted, field.TypeBool, value)
	}
	_node = &SandboxEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sandboxevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
