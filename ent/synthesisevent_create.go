// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/synapz/ent/synthesisevent"
)

// SynthesisEventCreate is the builder for creating a SynthesisEvent entity.
type SynthesisEventCreate struct {
	config
	mutation *SynthesisEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SynthesisEventCreate) SetSequence(v int64) *SynthesisEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SynthesisEventCreate) SetTimestamp(v time.Time) *SynthesisEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SynthesisEventCreate) SetNillableTimestamp(v *time.Time) *SynthesisEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SynthesisEventCreate) SetSessionID(v string) *SynthesisEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetConceptIds sets the "concept_ids" field.
func (_c *SynthesisEventCreate) SetConceptIds(v []string) *SynthesisEventCreate {
	_c.mutation.SetConceptIds(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *SynthesisEventCreate) SetPrompt(v string) *SynthesisEventCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetResponse sets the "response" field.
func (_c *SynthesisEventCreate) SetResponse(v string) *SynthesisEventCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_c *SynthesisEventCreate) SetNillableResponse(v *string) *SynthesisEventCreate {
	if v != nil {
		_c.SetResponse(*v)
	}
	return _c
}

// Mutation returns the SynthesisEventMutation object of the builder.
func (_c *SynthesisEventCreate) Mutation() *SynthesisEventMutation {
	return _c.mutation
}

// Save creates the SynthesisEvent in the database.
func (_c *SynthesisEventCreate) Save(ctx context.Context) (*SynthesisEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SynthesisEventCreate) SaveX(ctx context.Context) *SynthesisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SynthesisEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SynthesisEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SynthesisEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := synthesisevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Response(); !ok {
		v := synthesisevent.DefaultResponse
		_c.mutation.SetResponse(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SynthesisEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SynthesisEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SynthesisEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SynthesisEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := synthesisevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SynthesisEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptIds(); !ok {
		return &ValidationError{Name: "concept_ids", err: errors.New(`ent: missing required field "SynthesisEvent.concept_ids"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "SynthesisEvent.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := synthesisevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "SynthesisEvent.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Response(); !ok {
		return &ValidationError{Name: "response", err: errors.New(`ent: missing required field "SynthesisEvent.response"`)}
	}
	return nil
}

func (_c *SynthesisEventCreate) sqlSave(ctx context.Context) (*SynthesisEvent, error) {
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

func (_c *SynthesisEventCreate) createSpec() (*SynthesisEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SynthesisEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(synthesisevent.Table, sqlgraph.NewFieldSpec(synthesisevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(synthesisevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(synthesisevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(synthesisevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ConceptIds(); ok {
		_spec.SetField(synthesisevent.FieldConceptIds, field.TypeJSON, value)
		_node.ConceptIds = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(synthesisevent.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(synthesisevent.FieldResponse, field.TypeString, value)
		_node.Response = value
	}
	return _node, _spec
}

// SynthesisEventCreateBulk is the builder for creating many SynthesisEvent entities in bulk.
type SynthesisEventCreateBulk struct {
	config
	err      error
	builders []*SynthesisEventCreate
}

// Save creates the SynthesisEvent entities in the database.
func (_c *SynthesisEventCreateBulk) Save(ctx context.Context) ([]*SynthesisEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SynthesisEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SynthesisEventMutation)
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
func (_c *SynthesisEventCreateBulk) SaveX(ctx context.Context) []*SynthesisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SynthesisEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SynthesisEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
