// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/synapz/ent/ratingevent"
)

// RatingEventCreate is the builder for creating a RatingEvent entity.
type RatingEventCreate struct {
	config
	mutation *RatingEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RatingEventCreate) SetSequence(v int64) *RatingEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RatingEventCreate) SetTimestamp(v time.Time) *RatingEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RatingEventCreate) SetNillableTimestamp(v *time.Time) *RatingEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *RatingEventCreate) SetConceptID(v string) *RatingEventCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *RatingEventCreate) SetRating(v string) *RatingEventCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *RatingEventCreate) SetSource(v string) *RatingEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *RatingEventCreate) SetSessionID(v string) *RatingEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *RatingEventCreate) SetNillableSessionID(v *string) *RatingEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// Mutation returns the RatingEventMutation object of the builder.
func (_c *RatingEventCreate) Mutation() *RatingEventMutation {
	return _c.mutation
}

// Save creates the RatingEvent in the database.
func (_c *RatingEventCreate) Save(ctx context.Context) (*RatingEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RatingEventCreate) SaveX(ctx context.Context) *RatingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RatingEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RatingEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RatingEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := ratingevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RatingEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RatingEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RatingEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "RatingEvent.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := ratingevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "RatingEvent.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "RatingEvent.rating"`)}
	}
	if v, ok := _c.mutation.Rating(); ok {
		if err := ratingevent.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "RatingEvent.rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "RatingEvent.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := ratingevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "RatingEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_c *RatingEventCreate) sqlSave(ctx context.Context) (*RatingEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RatingEventCreate) createSpec() (*RatingEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RatingEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ratingevent.Table, sqlgraph.NewFieldSpec(ratingevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(ratingevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(ratingevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(ratingevent.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(ratingevent.FieldRating, field.TypeString, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(ratingevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(ratingevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// RatingEventCreateBulk is the builder for creating many RatingEvent entities in bulk.
type RatingEventCreateBulk struct {
	config
	err      error
	builders []*RatingEventCreate
}

// Save creates the RatingEvent entities in the database.
func (_c *RatingEventCreateBulk) Save(ctx context.Context) ([]*RatingEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RatingEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RatingEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RatingEventCreateBulk) SaveX(ctx context.Context) []*RatingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RatingEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RatingEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
