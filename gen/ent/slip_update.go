// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wastetrack/slips-tracker/gen/ent/predicate"
	"github.com/wastetrack/slips-tracker/gen/ent/slip"
)

// SlipUpdate is the builder for updating Slip entities.
type SlipUpdate struct {
	config
	hooks    []Hook
	mutation *SlipMutation
}

// Where appends a list predicates to the SlipUpdate builder.
func (_u *SlipUpdate) Where(ps ...predicate.Slip) *SlipUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlipType sets the "slip_type" field.
func (_u *SlipUpdate) SetSlipType(v string) *SlipUpdate {
	_u.mutation.SetSlipType(v)
	return _u
}

// SetNillableSlipType sets the "slip_type" field if the given value is not nil.
func (_u *SlipUpdate) SetNillableSlipType(v *string) *SlipUpdate {
	if v != nil {
		_u.SetSlipType(*v)
	}
	return _u
}

// SetSlipDate sets the "slip_date" field.
func (_u *SlipUpdate) SetSlipDate(v time.Time) *SlipUpdate {
	_u.mutation.SetSlipDate(v)
	return _u
}

// SetNillableSlipDate sets the "slip_date" field if the given value is not nil.
func (_u *SlipUpdate) SetNillableSlipDate(v *time.Time) *SlipUpdate {
	if v != nil {
		_u.SetSlipDate(*v)
	}
	return _u
}

// SetClientName sets the "client_name" field.
func (_u *SlipUpdate) SetClientName(v string) *SlipUpdate {
	_u.mutation.SetClientName(v)
	return _u
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_u *SlipUpdate) SetNillableClientName(v *string) *SlipUpdate {
	if v != nil {
		_u.SetClientName(*v)
	}
	return _u
}

// SetItemName sets the "item_name" field.
func (_u *SlipUpdate) SetItemName(v string) *SlipUpdate {
	_u.mutation.SetItemName(v)
	return _u
}

// SetNillableItemName sets the "item_name" field if the given value is not nil.
func (_u *SlipUpdate) SetNillableItemName(v *string) *SlipUpdate {
	if v != nil {
		_u.SetItemName(*v)
	}
	return _u
}

// ClearItemName clears the value of the "item_name" field.
func (_u *SlipUpdate) ClearItemName() *SlipUpdate {
	_u.mutation.ClearItemName()
	return _u
}

// SetNetWeight sets the "net_weight" field.
func (_u *SlipUpdate) SetNetWeight(v string) *SlipUpdate {
	_u.mutation.SetNetWeight(v)
	return _u
}

// SetNillableNetWeight sets the "net_weight" field if the given value is not nil.
func (_u *SlipUpdate) SetNillableNetWeight(v *string) *SlipUpdate {
	if v != nil {
		_u.SetNetWeight(*v)
	}
	return _u
}

// SetManifestNumber sets the "manifest_number" field.
func (_u *SlipUpdate) SetManifestNumber(v string) *SlipUpdate {
	_u.mutation.SetManifestNumber(v)
	return _u
}

// SetNillableManifestNumber sets the "manifest_number" field if the given value is not nil.
func (_u *SlipUpdate) SetNillableManifestNumber(v *string) *SlipUpdate {
	if v != nil {
		_u.SetManifestNumber(*v)
	}
	return _u
}

// ClearManifestNumber clears the value of the "manifest_number" field.
func (_u *SlipUpdate) ClearManifestNumber() *SlipUpdate {
	_u.mutation.ClearManifestNumber()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SlipUpdate) SetCreatedAt(v time.Time) *SlipUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SlipUpdate) SetNillableCreatedAt(v *time.Time) *SlipUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SlipUpdate) SetUpdatedAt(v time.Time) *SlipUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SlipMutation object of the builder.
func (_u *SlipUpdate) Mutation() *SlipMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SlipUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlipUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SlipUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlipUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SlipUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := slip.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SlipUpdate) check() error {
	if v, ok := _u.mutation.SlipType(); ok {
		if err := slip.SlipTypeValidator(v); err != nil {
			return &ValidationError{Name: "slip_type", err: fmt.Errorf(`ent: validator failed for field "Slip.slip_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientName(); ok {
		if err := slip.ClientNameValidator(v); err != nil {
			return &ValidationError{Name: "client_name", err: fmt.Errorf(`ent: validator failed for field "Slip.client_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NetWeight(); ok {
		if err := slip.NetWeightValidator(v); err != nil {
			return &ValidationError{Name: "net_weight", err: fmt.Errorf(`ent: validator failed for field "Slip.net_weight": %w`, err)}
		}
	}
	return nil
}

func (_u *SlipUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(slip.Table, slip.Columns, sqlgraph.NewFieldSpec(slip.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SlipType(); ok {
		_spec.SetField(slip.FieldSlipType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlipDate(); ok {
		_spec.SetField(slip.FieldSlipDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClientName(); ok {
		_spec.SetField(slip.FieldClientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemName(); ok {
		_spec.SetField(slip.FieldItemName, field.TypeString, value)
	}
	if _u.mutation.ItemNameCleared() {
		_spec.ClearField(slip.FieldItemName, field.TypeString)
	}
	if value, ok := _u.mutation.NetWeight(); ok {
		_spec.SetField(slip.FieldNetWeight, field.TypeString, value)
	}
	if value, ok := _u.mutation.ManifestNumber(); ok {
		_spec.SetField(slip.FieldManifestNumber, field.TypeString, value)
	}
	if _u.mutation.ManifestNumberCleared() {
		_spec.ClearField(slip.FieldManifestNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(slip.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(slip.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slip.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SlipUpdateOne is the builder for updating a single Slip entity.
type SlipUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SlipMutation
}

// SetSlipType sets the "slip_type" field.
func (_u *SlipUpdateOne) SetSlipType(v string) *SlipUpdateOne {
	_u.mutation.SetSlipType(v)
	return _u
}

// SetNillableSlipType sets the "slip_type" field if the given value is not nil.
func (_u *SlipUpdateOne) SetNillableSlipType(v *string) *SlipUpdateOne {
	if v != nil {
		_u.SetSlipType(*v)
	}
	return _u
}

// SetSlipDate sets the "slip_date" field.
func (_u *SlipUpdateOne) SetSlipDate(v time.Time) *SlipUpdateOne {
	_u.mutation.SetSlipDate(v)
	return _u
}

// SetNillableSlipDate sets the "slip_date" field if the given value is not nil.
func (_u *SlipUpdateOne) SetNillableSlipDate(v *time.Time) *SlipUpdateOne {
	if v != nil {
		_u.SetSlipDate(*v)
	}
	return _u
}

// SetClientName sets the "client_name" field.
func (_u *SlipUpdateOne) SetClientName(v string) *SlipUpdateOne {
	_u.mutation.SetClientName(v)
	return _u
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_u *SlipUpdateOne) SetNillableClientName(v *string) *SlipUpdateOne {
	if v != nil {
		_u.SetClientName(*v)
	}
	return _u
}

// SetItemName sets the "item_name" field.
func (_u *SlipUpdateOne) SetItemName(v string) *SlipUpdateOne {
	_u.mutation.SetItemName(v)
	return _u
}

// SetNillableItemName sets the "item_name" field if the given value is not nil.
func (_u *SlipUpdateOne) SetNillableItemName(v *string) *SlipUpdateOne {
	if v != nil {
		_u.SetItemName(*v)
	}
	return _u
}

// ClearItemName clears the value of the "item_name" field.
func (_u *SlipUpdateOne) ClearItemName() *SlipUpdateOne {
	_u.mutation.ClearItemName()
	return _u
}

// SetNetWeight sets the "net_weight" field.
func (_u *SlipUpdateOne) SetNetWeight(v string) *SlipUpdateOne {
	_u.mutation.SetNetWeight(v)
	return _u
}

// SetNillableNetWeight sets the "net_weight" field if the given value is not nil.
func (_u *SlipUpdateOne) SetNillableNetWeight(v *string) *SlipUpdateOne {
	if v != nil {
		_u.SetNetWeight(*v)
	}
	return _u
}

// SetManifestNumber sets the "manifest_number" field.
func (_u *SlipUpdateOne) SetManifestNumber(v string) *SlipUpdateOne {
	_u.mutation.SetManifestNumber(v)
	return _u
}

// SetNillableManifestNumber sets the "manifest_number" field if the given value is not nil.
func (_u *SlipUpdateOne) SetNillableManifestNumber(v *string) *SlipUpdateOne {
	if v != nil {
		_u.SetManifestNumber(*v)
	}
	return _u
}

// ClearManifestNumber clears the value of the "manifest_number" field.
func (_u *SlipUpdateOne) ClearManifestNumber() *SlipUpdateOne {
	_u.mutation.ClearManifestNumber()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SlipUpdateOne) SetCreatedAt(v time.Time) *SlipUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SlipUpdateOne) SetNillableCreatedAt(v *time.Time) *SlipUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SlipUpdateOne) SetUpdatedAt(v time.Time) *SlipUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SlipMutation object of the builder.
func (_u *SlipUpdateOne) Mutation() *SlipMutation {
	return _u.mutation
}

// Where appends a list predicates to the SlipUpdate builder.
func (_u *SlipUpdateOne) Where(ps ...predicate.Slip) *SlipUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SlipUpdateOne) Select(field string, fields ...string) *SlipUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Slip entity.
func (_u *SlipUpdateOne) Save(ctx context.Context) (*Slip, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SlipUpdateOne) SaveX(ctx context.Context) *Slip {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SlipUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SlipUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SlipUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := slip.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SlipUpdateOne) check() error {
	if v, ok := _u.mutation.SlipType(); ok {
		if err := slip.SlipTypeValidator(v); err != nil {
			return &ValidationError{Name: "slip_type", err: fmt.Errorf(`ent: validator failed for field "Slip.slip_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientName(); ok {
		if err := slip.ClientNameValidator(v); err != nil {
			return &ValidationError{Name: "client_name", err: fmt.Errorf(`ent: validator failed for field "Slip.client_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NetWeight(); ok {
		if err := slip.NetWeightValidator(v); err != nil {
			return &ValidationError{Name: "net_weight", err: fmt.Errorf(`ent: validator failed for field "Slip.net_weight": %w`, err)}
		}
	}
	return nil
}

func (_u *SlipUpdateOne) sqlSave(ctx context.Context) (_node *Slip, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(slip.Table, slip.Columns, sqlgraph.NewFieldSpec(slip.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Slip.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, slip.FieldID)
		for _, f := range fields {
			if !slip.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != slip.FieldID {
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
	if value, ok := _u.mutation.SlipType(); ok {
		_spec.SetField(slip.FieldSlipType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlipDate(); ok {
		_spec.SetField(slip.FieldSlipDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClientName(); ok {
		_spec.SetField(slip.FieldClientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemName(); ok {
		_spec.SetField(slip.FieldItemName, field.TypeString, value)
	}
	if _u.mutation.ItemNameCleared() {
		_spec.ClearField(slip.FieldItemName, field.TypeString)
	}
	if value, ok := _u.mutation.NetWeight(); ok {
		_spec.SetField(slip.FieldNetWeight, field.TypeString, value)
	}
	if value, ok := _u.mutation.ManifestNumber(); ok {
		_spec.SetField(slip.FieldManifestNumber, field.TypeString, value)
	}
	if _u.mutation.ManifestNumberCleared() {
		_spec.ClearField(slip.FieldManifestNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(slip.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(slip.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Slip{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{slip.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
