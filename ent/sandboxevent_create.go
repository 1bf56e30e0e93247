// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/synapz/ent/sandboxevent"
)

// SandboxEventCreate is the builder for creating a SandboxEvent entity.
type SandboxEventCreate struct {
	config
	mutation *SandboxEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SandboxEventCreate) SetSequence(v int64) *SandboxEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SandboxEventCreate) SetTimestamp(v time.Time) *SandboxEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SandboxEventCreate) SetNillableTimestamp(v *time.Time) *SandboxEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SandboxEventCreate) SetSessionID(v string) *SandboxEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetConceptIds sets the "concept_ids" field.
func (_c *SandboxEventCreate) SetConceptIds(v []string) *SandboxEventCreate {
	_c.mutation.SetConceptIds(v)
	return _c
}

// SetInteractionType sets the "interaction_type" field.
func (_c *SandboxEventCreate) SetInteractionType(v string) *SandboxEventCreate {
	_c.mutation.SetInteractionType(v)
	return _c
}

// SetCognitiveType sets the "cognitive_type" field.
func (_c *SandboxEventCreate) SetCognitiveType(v string) *SandboxEventCreate {
	_c.mutation.SetCognitiveType(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *SandboxEventCreate) SetScore(v float64) *SandboxEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *SandboxEventCreate) SetPassed(v bool) *SandboxEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *SandboxEventCreate) SetAttemptCount(v int) *SandboxEventCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *SandboxEventCreate) SetNillableAttemptCount(v *int) *SandboxEventCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetHintsUsed sets the "hints_used" field.
func (_c *SandboxEventCreate) SetHintsUsed(v int) *SandboxEventCreate {
	_c.mutation.SetHintsUsed(v)
	return _c
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_c *SandboxEventCreate) SetNillableHintsUsed(v *int) *SandboxEventCreate {
	if v != nil {
		_c.SetHintsUsed(*v)
	}
	return _c
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_c *SandboxEventCreate) SetElapsedMs(v int64) *SandboxEventCreate {
	_c.mutation.SetElapsedMs(v)
	return _c
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_c *SandboxEventCreate) SetNillableElapsedMs(v *int64) *SandboxEventCreate {
	if v != nil {
		_c.SetElapsedMs(*v)
	}
	return _c
}

// SetBaselineMs sets the "baseline_ms" field.
func (_c *SandboxEventCreate) SetBaselineMs(v int64) *SandboxEventCreate {
	_c.mutation.SetBaselineMs(v)
	return _c
}

// SetNillableBaselineMs sets the "baseline_ms" field if the given value is not nil.
func (_c *SandboxEventCreate) SetNillableBaselineMs(v *int64) *SandboxEventCreate {
	if v != nil {
		_c.SetBaselineMs(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *SandboxEventCreate) SetCompleted(v bool) *SandboxEventCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// Mutation returns the SandboxEventMutation object of the builder.
func (_c *SandboxEventCreate) Mutation() *SandboxEventMutation {
	return _c.mutation
}

// Save creates the SandboxEvent in the database.
func (_c *SandboxEventCreate) Save(ctx context.Context) (*SandboxEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SandboxEventCreate) SaveX(ctx context.Context) *SandboxEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SandboxEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SandboxEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SandboxEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := sandboxevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := sandboxevent.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		v := sandboxevent.DefaultHintsUsed
		_c.mutation.SetHintsUsed(v)
	}
	if _, ok := _c.mutation.ElapsedMs(); !ok {
		v := sandboxevent.DefaultElapsedMs
		_c.mutation.SetElapsedMs(v)
	}
	if _, ok := _c.mutation.BaselineMs(); !ok {
		v := sandboxevent.DefaultBaselineMs
		_c.mutation.SetBaselineMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SandboxEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SandboxEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SandboxEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SandboxEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sandboxevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SandboxEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptIds(); !ok {
		return &ValidationError{Name: "concept_ids", err: errors.New(`ent: missing required field "SandboxEvent.concept_ids"`)}
	}
	if _, ok := _c.mutation.InteractionType(); !ok {
		return &ValidationError{Name: "interaction_type", err: errors.New(`ent: missing required field "SandboxEvent.interaction_type"`)}
	}
	if v, ok := _c.mutation.InteractionType(); ok {
		if err := sandboxevent.InteractionTypeValidator(v); err != nil {
			return &ValidationError{Name: "interaction_type", err: fmt.Errorf(`ent: validator failed for field "SandboxEvent.interaction_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CognitiveType(); !ok {
		return &ValidationError{Name: "cognitive_type", err: errors.New(`ent: missing required field "SandboxEvent.cognitive_type"`)}
	}
	if v, ok := _c.mutation.CognitiveType(); ok {
		if err := sandboxevent.CognitiveTypeValidator(v); err != nil {
			return &ValidationError{Name: "cognitive_type", err: fmt.Errorf(`ent: validator failed for field "SandboxEvent.cognitive_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "SandboxEvent.score"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "SandboxEvent.passed"`)}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "SandboxEvent.attempt_count"`)}
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		return &ValidationError{Name: "hints_used", err: errors.New(`ent: missing required field "SandboxEvent.hints_used"`)}
	}
	if _, ok := _c.mutation.ElapsedMs(); !ok {
		return &ValidationError{Name: "elapsed_ms", err: errors.New(`ent: missing required field "SandboxEvent.elapsed_ms"`)}
	}
	if _, ok := _c.mutation.BaselineMs(); !ok {
		return &ValidationError{Name: "baseline_ms", err: errors.New(`ent: missing required field "SandboxEvent.baseline_ms"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "SandboxEvent.completed"`)}
	}
	return nil
}

func (_c *SandboxEventCreate) sqlSave(ctx context.Context) (*SandboxEvent, error) {
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

func (_c *SandboxEventCreate) createSpec() (*SandboxEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SandboxEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sandboxevent.Table, sqlgraph.NewFieldSpec(sandboxevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(sandboxevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(sandboxevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sandboxevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ConceptIds(); ok {
		_spec.SetField(sandboxevent.FieldConceptIds, field.TypeJSON, value)
		_node.ConceptIds = value
	}
	if value, ok := _c.mutation.InteractionType(); ok {
		_spec.SetField(sandboxevent.FieldInteractionType, field.TypeString, value)
		_node.InteractionType = value
	}
	if value, ok := _c.mutation.CognitiveType(); ok {
		_spec.SetField(sandboxevent.FieldCognitiveType, field.TypeString, value)
		_node.CognitiveType = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(sandboxevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(sandboxevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(sandboxevent.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.HintsUsed(); ok {
		_spec.SetField(sandboxevent.FieldHintsUsed, field.TypeInt, value)
		_node.HintsUsed = value
	}
	if value, ok := _c.mutation.ElapsedMs(); ok {
		_spec.SetField(sandboxevent.FieldElapsedMs, field.TypeInt64, value)
		_node.ElapsedMs = value
	}
	if value, ok := _c.mutation.BaselineMs(); ok {
		_spec.SetField(sandboxevent.FieldBaselineMs, field.TypeInt64, value)
		_node.BaselineMs = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(sandboxevent.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	return _node, _spec
}

// SandboxEventCreateBulk is the builder for creating many SandboxEvent entities in bulk.
type SandboxEventCreateBulk struct {
	config
	err      error
	builders []*SandboxEventCreate
}

// Save creates the SandboxEvent entities in the database.
func (_c *SandboxEventCreateBulk) Save(ctx context.Context) ([]*SandboxEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SandboxEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SandboxEventMutation)
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
func (_c *SandboxEventCreateBulk) SaveX(ctx context.Context) []*SandboxEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SandboxEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SandboxEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
