// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/wastetrack/slips-tracker/gen/ent/predicate"
	"github.com/wastetrack/slips-tracker/gen/ent/slip"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeSlip = "Slip"
)

// SlipMutation represents an operation that mutates the Slip nodes in the graph.
type SlipMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	slip_type       *string
	slip_date       *time.Time
	client_name     *string
	item_name       *string
	net_weight      *string
	manifest_number *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Slip, error)
	predicates      []predicate.Slip
}

var _ ent.Mutation = (*SlipMutation)(nil)

// slipOption allows management of the mutation configuration using functional options.
type slipOption func(*SlipMutation)

// newSlipMutation creates new mutation for the Slip entity.
func newSlipMutation(c config, op Op, opts ...slipOption) *SlipMutation {
	m := &SlipMutation{
		config:        c,
		op:            op,
		typ:           TypeSlip,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSlipID sets the ID field of the mutation.
func withSlipID(id uuid.UUID) slipOption {
	return func(m *SlipMutation) {
		var (
			err   error
			once  sync.Once
			value *Slip
		)
		m.oldValue = func(ctx context.Context) (*Slip, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Slip.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSlip sets the old Slip of the mutation.
func withSlip(node *Slip) slipOption {
	return func(m *SlipMutation) {
		m.oldValue = func(context.Context) (*Slip, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SlipMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SlipMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Slip entities.
func (m *SlipMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SlipMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SlipMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Slip.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSlipType sets the "slip_type" field.
func (m *SlipMutation) SetSlipType(s string) {
	m.slip_type = &s
}

// SlipType returns the value of the "slip_type" field in the mutation.
func (m *SlipMutation) SlipType() (r string, exists bool) {
	v := m.slip_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSlipType returns the old "slip_type" field's value of the Slip entity.
// If the Slip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlipMutation) OldSlipType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlipType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlipType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlipType: %w", err)
	}
	return oldValue.SlipType, nil
}

// ResetSlipType resets all changes to the "slip_type" field.
func (m *SlipMutation) ResetSlipType() {
	m.slip_type = nil
}

// SetSlipDate sets the "slip_date" field.
func (m *SlipMutation) SetSlipDate(t time.Time) {
	m.slip_date = &t
}

// SlipDate returns the value of the "slip_date" field in the mutation.
func (m *SlipMutation) SlipDate() (r time.Time, exists bool) {
	v := m.slip_date
	if v == nil {
		return
	}
	return *v, true
}

// OldSlipDate returns the old "slip_date" field's value of the Slip entity.
// If the Slip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlipMutation) OldSlipDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlipDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlipDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlipDate: %w", err)
	}
	return oldValue.SlipDate, nil
}

// ResetSlipDate resets all changes to the "slip_date" field.
func (m *SlipMutation) ResetSlipDate() {
	m.slip_date = nil
}

// SetClientName sets the "client_name" field.
func (m *SlipMutation) SetClientName(s string) {
	m.client_name = &s
}

// ClientName returns the value of the "client_name" field in the mutation.
func (m *SlipMutation) ClientName() (r string, exists bool) {
	v := m.client_name
	if v == nil {
		return
	}
	return *v, true
}

// OldClientName returns the old "client_name" field's value of the Slip entity.
// If the Slip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlipMutation) OldClientName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientName: %w", err)
	}
	return oldValue.ClientName, nil
}

// ResetClientName resets all changes to the "client_name" field.
func (m *SlipMutation) ResetClientName() {
	m.client_name = nil
}

// SetItemName sets the "item_name" field.
func (m *SlipMutation) SetItemName(s string) {
	m.item_name = &s
}

// ItemName returns the value of the "item_name" field in the mutation.
func (m *SlipMutation) ItemName() (r string, exists bool) {
	v := m.item_name
	if v == nil {
		return
	}
	return *v, true
}

// OldItemName returns the old "item_name" field's value of the Slip entity.
// If the Slip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlipMutation) OldItemName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemName: %w", err)
	}
	return oldValue.ItemName, nil
}

// ClearItemName clears the value of the "item_name" field.
func (m *SlipMutation) ClearItemName() {
	m.item_name = nil
	m.clearedFields[slip.FieldItemName] = struct{}{}
}

// ItemNameCleared returns if the "item_name" field was cleared in this mutation.
func (m *SlipMutation) ItemNameCleared() bool {
	_, ok := m.clearedFields[slip.FieldItemName]
	return ok
}

// ResetItemName resets all changes to the "item_name" field.
func (m *SlipMutation) ResetItemName() {
	m.item_name = nil
	delete(m.clearedFields, slip.FieldItemName)
}

// SetNetWeight sets the "net_weight" field.
func (m *SlipMutation) SetNetWeight(s string) {
	m.net_weight = &s
}

// NetWeight returns the value of the "net_weight" field in the mutation.
func (m *SlipMutation) NetWeight() (r string, exists bool) {
	v := m.net_weight
	if v == nil {
		return
	}
	return *v, true
}

// OldNetWeight returns the old "net_weight" field's value of the Slip entity.
// If the Slip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlipMutation) OldNetWeight(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetWeight: %w", err)
	}
	return oldValue.NetWeight, nil
}

// ResetNetWeight resets all changes to the "net_weight" field.
func (m *SlipMutation) ResetNetWeight() {
	m.net_weight = nil
}

// SetManifestNumber sets the "manifest_number" field.
func (m *SlipMutation) SetManifestNumber(s string) {
	m.manifest_number = &s
}

// ManifestNumber returns the value of the "manifest_number" field in the mutation.
func (m *SlipMutation) ManifestNumber() (r string, exists bool) {
	v := m.manifest_number
	if v == nil {
		return
	}
	return *v, true
}

// OldManifestNumber returns the old "manifest_number" field's value of the Slip entity.
// If the Slip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlipMutation) OldManifestNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManifestNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManifestNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManifestNumber: %w", err)
	}
	return oldValue.ManifestNumber, nil
}

// ClearManifestNumber clears the value of the "manifest_number" field.
func (m *SlipMutation) ClearManifestNumber() {
	m.manifest_number = nil
	m.clearedFields[slip.FieldManifestNumber] = struct{}{}
}

// ManifestNumberCleared returns if the "manifest_number" field was cleared in this mutation.
func (m *SlipMutation) ManifestNumberCleared() bool {
	_, ok := m.clearedFields[slip.FieldManifestNumber]
	return ok
}

// ResetManifestNumber resets all changes to the "manifest_number" field.
func (m *SlipMutation) ResetManifestNumber() {
	m.manifest_number = nil
	delete(m.clearedFields, slip.FieldManifestNumber)
}

// SetCreatedAt sets the "created_at" field.
func (m *SlipMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SlipMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Slip entity.
// If the Slip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlipMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SlipMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SlipMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SlipMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Slip entity.
// If the Slip object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SlipMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SlipMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SlipMutation builder.
func (m *SlipMutation) Where(ps ...predicate.Slip) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SlipMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SlipMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Slip, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SlipMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SlipMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Slip).
func (m *SlipMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SlipMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.slip_type != nil {
		fields = append(fields, slip.FieldSlipType)
	}
	if m.slip_date != nil {
		fields = append(fields, slip.FieldSlipDate)
	}
	if m.client_name != nil {
		fields = append(fields, slip.FieldClientName)
	}
	if m.item_name != nil {
		fields = append(fields, slip.FieldItemName)
	}
	if m.net_weight != nil {
		fields = append(fields, slip.FieldNetWeight)
	}
	if m.manifest_number != nil {
		fields = append(fields, slip.FieldManifestNumber)
	}
	if m.created_at != nil {
		fields = append(fields, slip.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, slip.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SlipMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case slip.FieldSlipType:
		return m.SlipType()
	case slip.FieldSlipDate:
		return m.SlipDate()
	case slip.FieldClientName:
		return m.ClientName()
	case slip.FieldItemName:
		return m.ItemName()
	case slip.FieldNetWeight:
		return m.NetWeight()
	case slip.FieldManifestNumber:
		return m.ManifestNumber()
	case slip.FieldCreatedAt:
		return m.CreatedAt()
	case slip.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SlipMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case slip.FieldSlipType:
		return m.OldSlipType(ctx)
	case slip.FieldSlipDate:
		return m.OldSlipDate(ctx)
	case slip.FieldClientName:
		return m.OldClientName(ctx)
	case slip.FieldItemName:
		return m.OldItemName(ctx)
	case slip.FieldNetWeight:
		return m.OldNetWeight(ctx)
	case slip.FieldManifestNumber:
		return m.OldManifestNumber(ctx)
	case slip.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case slip.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Slip field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlipMutation) SetField(name string, value ent.Value) error {
	switch name {
	case slip.FieldSlipType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlipType(v)
		return nil
	case slip.FieldSlipDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlipDate(v)
		return nil
	case slip.FieldClientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientName(v)
		return nil
	case slip.FieldItemName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemName(v)
		return nil
	case slip.FieldNetWeight:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetWeight(v)
		return nil
	case slip.FieldManifestNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManifestNumber(v)
		return nil
	case slip.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case slip.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Slip field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SlipMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SlipMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SlipMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Slip numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SlipMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(slip.FieldItemName) {
		fields = append(fields, slip.FieldItemName)
	}
	if m.FieldCleared(slip.FieldManifestNumber) {
		fields = append(fields, slip.FieldManifestNumber)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SlipMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SlipMutation) ClearField(name string) error {
	switch name {
	case slip.FieldItemName:
		m.ClearItemName()
		return nil
	case slip.FieldManifestNumber:
		m.ClearManifestNumber()
		return nil
	}
	return fmt.Errorf("unknown Slip nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SlipMutation) ResetField(name string) error {
	switch name {
	case slip.FieldSlipType:
		m.ResetSlipType()
		return nil
	case slip.FieldSlipDate:
		m.ResetSlipDate()
		return nil
	case slip.FieldClientName:
		m.ResetClientName()
		return nil
	case slip.FieldItemName:
		m.ResetItemName()
		return nil
	case slip.FieldNetWeight:
		m.ResetNetWeight()
		return nil
	case slip.FieldManifestNumber:
		m.ResetManifestNumber()
		return nil
	case slip.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case slip.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Slip field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SlipMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SlipMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SlipMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SlipMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SlipMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SlipMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SlipMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Slip unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SlipMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Slip edge %s", name)
}
