// Code generated by ent, DO NOT EDIT.

package slip

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the slip type in the database.
	Label = "slip"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSlipType holds the string denoting the slip_type field in the database.
	FieldSlipType = "slip_type"
	// FieldSlipDate holds the string denoting the slip_date field in the database.
	FieldSlipDate = "slip_date"
	// FieldClientName holds the string denoting the client_name field in the database.
	FieldClientName = "client_name"
	// FieldItemName holds the string denoting the item_name field in the database.
	FieldItemName = "item_name"
	// FieldNetWeight holds the string denoting the net_weight field in the database.
	FieldNetWeight = "net_weight"
	// FieldManifestNumber holds the string denoting the manifest_number field in the database.
	FieldManifestNumber = "manifest_number"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the slip in the database.
	Table = "slips"
)

// Columns holds all SQL columns for slip fields.
var Columns = []string{
	FieldID,
	FieldSlipType,
	FieldSlipDate,
	FieldClientName,
	FieldItemName,
	FieldNetWeight,
	FieldManifestNumber,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SlipTypeValidator is a validator for the "slip_type" field. It is called by the builders before save.
	SlipTypeValidator func(string) error
	// ClientNameValidator is a validator for the "client_name" field. It is called by the builders before save.
	ClientNameValidator func(string) error
	// NetWeightValidator is a validator for the "net_weight" field. It is called by the builders before save.
	NetWeightValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Slip queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySlipType orders the results by the slip_type field.
func BySlipType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlipType, opts...).ToFunc()
}

// BySlipDate orders the results by the slip_date field.
func BySlipDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlipDate, opts...).ToFunc()
}

// ByClientName orders the results by the client_name field.
func ByClientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientName, opts...).ToFunc()
}

// ByItemName orders the results by the item_name field.
func ByItemName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemName, opts...).ToFunc()
}

// ByNetWeight orders the results by the net_weight field.
func ByNetWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetWeight, opts...).ToFunc()
}

// ByManifestNumber orders the results by the manifest_number field.
func ByManifestNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldManifestNumber, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
