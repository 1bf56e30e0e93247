// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/synapz/ent/predicate"
	"github.com/abhisek/synapz/ent/ratingevent"
)

// RatingEventUpdate is the builder for updating RatingEvent entities.
type RatingEventUpdate struct {
	config
	hooks    []Hook
	mutation *RatingEventMutation
}

// Where appends a list predicates to the RatingEventUpdate builder.
func (_u *RatingEventUpdate) Where(ps ...predicate.RatingEvent) *RatingEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *RatingEventUpdate) SetConceptID(v string) *RatingEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *RatingEventUpdate) SetNillableConceptID(v *string) *RatingEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *RatingEventUpdate) SetRating(v string) *RatingEventUpdate {
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *RatingEventUpdate) SetNillableRating(v *string) *RatingEventUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *RatingEventUpdate) SetSource(v string) *RatingEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *RatingEventUpdate) SetNillableSource(v *string) *RatingEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RatingEventUpdate) SetSessionID(v string) *RatingEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RatingEventUpdate) SetNillableSessionID(v *string) *RatingEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *RatingEventUpdate) ClearSessionID() *RatingEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the RatingEventMutation object of the builder.
func (_u *RatingEventUpdate) Mutation() *RatingEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RatingEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RatingEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RatingEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RatingEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RatingEventUpdate) check() error {
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := ratingevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "RatingEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := ratingevent.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "RatingEvent.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := ratingevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "RatingEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *RatingEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ratingevent.Table, ratingevent.Columns, sqlgraph.NewFieldSpec(ratingevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(ratingevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(ratingevent.FieldRating, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(ratingevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(ratingevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(ratingevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RatingEventUpdateOne is the builder for updating a single RatingEvent entity.
type RatingEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RatingEventMutation
}

// SetConceptID sets the "concept_id" field.
func (_u *RatingEventUpdateOne) SetConceptID(v string) *RatingEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *RatingEventUpdateOne) SetNillableConceptID(v *string) *RatingEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *RatingEventUpdateOne) SetRating(v string) *RatingEventUpdateOne {
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *RatingEventUpdateOne) SetNillableRating(v *string) *RatingEventUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *RatingEventUpdateOne) SetSource(v string) *RatingEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *RatingEventUpdateOne) SetNillableSource(v *string) *RatingEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RatingEventUpdateOne) SetSessionID(v string) *RatingEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RatingEventUpdateOne) SetNillableSessionID(v *string) *RatingEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *RatingEventUpdateOne) ClearSessionID() *RatingEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the RatingEventMutation object of the builder.
func (_u *RatingEventUpdateOne) Mutation() *RatingEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RatingEventUpdate builder.
func (_u *RatingEventUpdateOne) Where(ps ...predicate.RatingEvent) *RatingEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RatingEventUpdateOne) Select(field string, fields ...string) *RatingEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RatingEvent entity.
func (_u *RatingEventUpdateOne) Save(ctx context.Context) (*RatingEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RatingEventUpdateOne) SaveX(ctx context.Context) *RatingEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RatingEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RatingEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RatingEventUpdateOne) check() error {
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := ratingevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "RatingEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := ratingevent.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "RatingEvent.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := ratingevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "RatingEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *RatingEventUpdateOne) sqlSave(ctx context.Context) (_node *RatingEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ratingevent.Table, ratingevent.Columns, sqlgraph.NewFieldSpec(ratingevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RatingEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ratingevent.FieldID)
		for _, f := range fields {
			if !ratingevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ratingevent.FieldID {
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
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(ratingevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(ratingevent.FieldRating, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(ratingevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(ratingevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(ratingevent.FieldSessionID, field.TypeString)
	}
	_node = &RatingEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
