// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/wastetrack/slips-tracker/gen/ent/slip"
)

// SlipCreate is the builder for creating a Slip entity.
type SlipCreate struct {
	config
	mutation *SlipMutation
	hooks    []Hook
}

// SetSlipType sets the "slip_type" field.
func (_c *SlipCreate) SetSlipType(v string) *SlipCreate {
	_c.mutation.SetSlipType(v)
	return _c
}

// SetSlipDate sets the "slip_date" field.
func (_c *SlipCreate) SetSlipDate(v time.Time) *SlipCreate {
	_c.mutation.SetSlipDate(v)
	return _c
}

// SetClientName sets the "client_name" field.
func (_c *SlipCreate) SetClientName(v string) *SlipCreate {
	_c.mutation.SetClientName(v)
	return _c
}

// SetItemName sets the "item_name" field.
func (_c *SlipCreate) SetItemName(v string) *SlipCreate {
	_c.mutation.SetItemName(v)
	return _c
}

// SetNillableItemName sets the "item_name" field if the given value is not nil.
func (_c *SlipCreate) SetNillableItemName(v *string) *SlipCreate {
	if v != nil {
		_c.SetItemName(*v)
	}
	return _c
}

// SetNetWeight sets the "net_weight" field.
func (_c *SlipCreate) SetNetWeight(v string) *SlipCreate {
	_c.mutation.SetNetWeight(v)
	return _c
}

// SetManifestNumber sets the "manifest_number" field.
func (_c *SlipCreate) SetManifestNumber(v string) *SlipCreate {
	_c.mutation.SetManifestNumber(v)
	return _c
}

// SetNillableManifestNumber sets the "manifest_number" field if the given value is not nil.
func (_c *SlipCreate) SetNillableManifestNumber(v *string) *SlipCreate {
	if v != nil {
		_c.SetManifestNumber(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SlipCreate) SetCreatedAt(v time.Time) *SlipCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SlipCreate) SetNillableCreatedAt(v *time.Time) *SlipCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SlipCreate) SetUpdatedAt(v time.Time) *SlipCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SlipCreate) SetNillableUpdatedAt(v *time.Time) *SlipCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SlipCreate) SetID(v uuid.UUID) *SlipCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SlipCreate) SetNillableID(v *uuid.UUID) *SlipCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SlipMutation object of the builder.
func (_c *SlipCreate) Mutation() *SlipMutation {
	return _c.mutation
}

// Save creates the Slip in the database.
func (_c *SlipCreate) Save(ctx context.Context) (*Slip, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SlipCreate) SaveX(ctx context.Context) *Slip {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlipCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlipCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SlipCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := slip.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := slip.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := slip.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SlipCreate) check() error {
	if _, ok := _c.mutation.SlipType(); !ok {
		return &ValidationError{Name: "slip_type", err: errors.New(`ent: missing required field "Slip.slip_type"`)}
	}
	if v, ok := _c.mutation.SlipType(); ok {
		if err := slip.SlipTypeValidator(v); err != nil {
			return &ValidationError{Name: "slip_type", err: fmt.Errorf(`ent: validator failed for field "Slip.slip_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SlipDate(); !ok {
		return &ValidationError{Name: "slip_date", err: errors.New(`ent: missing required field "Slip.slip_date"`)}
	}
	if _, ok := _c.mutation.ClientName(); !ok {
		return &ValidationError{Name: "client_name", err: errors.New(`ent: missing required field "Slip.client_name"`)}
	}
	if v, ok := _c.mutation.ClientName(); ok {
		if err := slip.ClientNameValidator(v); err != nil {
			return &ValidationError{Name: "client_name", err: fmt.Errorf(`ent: validator failed for field "Slip.client_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NetWeight(); !ok {
		return &ValidationError{Name: "net_weight", err: errors.New(`ent: missing required field "Slip.net_weight"`)}
	}
	if v, ok := _c.mutation.NetWeight(); ok {
		if err := slip.NetWeightValidator(v); err != nil {
			return &ValidationError{Name: "net_weight", err: fmt.Errorf(`ent: validator failed for field "Slip.net_weight": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Slip.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Slip.updated_at"`)}
	}
	return nil
}

func (_c *SlipCreate) sqlSave(ctx context.Context) (*Slip, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SlipCreate) createSpec() (*Slip, *sqlgraph.CreateSpec) {
	var (
		_node = &Slip{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(slip.Table, sqlgraph.NewFieldSpec(slip.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SlipType(); ok {
		_spec.SetField(slip.FieldSlipType, field.TypeString, value)
		_node.SlipType = value
	}
	if value, ok := _c.mutation.SlipDate(); ok {
		_spec.SetField(slip.FieldSlipDate, field.TypeTime, value)
		_node.SlipDate = value
	}
	if value, ok := _c.mutation.ClientName(); ok {
		_spec.SetField(slip.FieldClientName, field.TypeString, value)
		_node.ClientName = value
	}
	if value, ok := _c.mutation.ItemName(); ok {
		_spec.SetField(slip.FieldItemName, field.TypeString, value)
		_node.ItemName = value
	}
	if value, ok := _c.mutation.NetWeight(); ok {
		_spec.SetField(slip.FieldNetWeight, field.TypeString, value)
		_node.NetWeight = value
	}
	if value, ok := _c.mutation.ManifestNumber(); ok {
		_spec.SetField(slip.FieldManifestNumber, field.TypeString, value)
		_node.ManifestNumber = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(slip.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(slip.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SlipCreateBulk is the builder for creating many Slip entities in bulk.
type SlipCreateBulk struct {
	config
	err      error
	builders []*SlipCreate
}

// Save creates the Slip entities in the database.
func (_c *SlipCreateBulk) Save(ctx context.Context) ([]*Slip, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Slip, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SlipMutation)
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
func (_c *SlipCreateBulk) SaveX(ctx context.Context) []*Slip {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SlipCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SlipCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
