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
	"github.com/abhisek/synapz/ent/synthesisevent"
)

// SynthesisEventUpdate is the builder for updating SynthesisEvent entities.
type SynthesisEventUpdate struct {
	config
	hooks    []Hook
	mutation *SynthesisEventMutation
}

// Where appends a list predicates to the SynthesisEventUpdate builder.
func (_u *SynthesisEventUpdate) Where(ps ...predicate.SynthesisEvent) *SynthesisEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SynthesisEventUpdate) SetSessionID(v string) *SynthesisEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SynthesisEventUpdate) SetNillableSessionID(v *string) *SynthesisEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConceptIds sets the "concept_ids" field.
func (_u *SynthesisEventUpdate) SetConceptIds(v []string) *SynthesisEventUpdate {
	_u.mutation.SetConceptIds(v)
	return _u
}

// AppendConceptIds appends value to the "concept_ids" field.
func (_u *SynthesisEventUpdate) AppendConceptIds(v []string) *SynthesisEventUpdate {
	_u.mutation.AppendConceptIds(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *SynthesisEventUpdate) SetPrompt(v string) *SynthesisEventUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *SynthesisEventUpdate) SetNillablePrompt(v *string) *SynthesisEventUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *SynthesisEventUpdate) SetResponse(v string) *SynthesisEventUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *SynthesisEventUpdate) SetNillableResponse(v *string) *SynthesisEventUpdate {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// Mutation returns the SynthesisEventMutation object of the builder.
func (_u *SynthesisEventUpdate) Mutation() *SynthesisEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SynthesisEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SynthesisEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SynthesisEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SynthesisEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SynthesisEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := synthesisevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SynthesisEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := synthesisevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "SynthesisEvent.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *SynthesisEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(synthesisevent.Table, synthesisevent.Columns, sqlgraph.NewFieldSpec(synthesisevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(synthesisevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptIds(); ok {
		_spec.SetField(synthesisevent.FieldConceptIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, synthesisevent.FieldConceptIds, value)
		})
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(synthesisevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(synthesisevent.FieldResponse, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{synthesisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SynthesisEventUpdateOne is the builder for updating a single SynthesisEvent entity.
type SynthesisEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SynthesisEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SynthesisEventUpdateOne) SetSessionID(v string) *SynthesisEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SynthesisEventUpdateOne) SetNillableSessionID(v *string) *SynthesisEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetConceptIds sets the "concept_ids" field.
func (_u *SynthesisEventUpdateOne) SetConceptIds(v []string) *SynthesisEventUpdateOne {
	_u.mutation.SetConceptIds(v)
	return _u
}

// AppendConceptIds appends value to the "concept_ids" field.
func (_u *SynthesisEventUpdateOne) AppendConceptIds(v []string) *SynthesisEventUpdateOne {
	_u.mutation.AppendConceptIds(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *SynthesisEventUpdateOne) SetPrompt(v string) *SynthesisEventUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *SynthesisEventUpdateOne) SetNillablePrompt(v *string) *SynthesisEventUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *SynthesisEventUpdateOne) SetResponse(v string) *SynthesisEventUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *SynthesisEventUpdateOne) SetNillableResponse(v *string) *SynthesisEventUpdateOne {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// Mutation returns the SynthesisEventMutation object of the builder.
func (_u *SynthesisEventUpdateOne) Mutation() *SynthesisEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SynthesisEventUpdate builder.
func (_u *SynthesisEventUpdateOne) Where(ps ...predicate.SynthesisEvent) *SynthesisEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SynthesisEventUpdateOne) Select(field string, fields ...string) *SynthesisEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SynthesisEvent entity.
func (_u *SynthesisEventUpdateOne) Save(ctx context.Context) (*SynthesisEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SynthesisEventUpdateOne) SaveX(ctx context.Context) *SynthesisEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SynthesisEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SynthesisEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SynthesisEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := synthesisevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SynthesisEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := synthesisevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "SynthesisEvent.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *SynthesisEventUpdateOne) sqlSave(ctx context.Context) (_node *SynthesisEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(synthesisevent.Table, synthesisevent.Columns, sqlgraph.NewFieldSpec(synthesisevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SynthesisEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, synthesisevent.FieldID)
		for _, f := range fields {
			if !synthesisevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != synthesisevent.FieldID {
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
		_spec.SetField(synthesisevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptIds(); ok {
		_spec.SetField(synthesisevent.FieldConceptIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, synthesisevent.FieldConceptIds, value)
		})
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(synthesisevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(synthesisevent.FieldResponse, field.TypeString, value)
	}
	_node = &SynthesisEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{synthesisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
