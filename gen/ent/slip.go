// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/wastetrack/slips-tracker/gen/ent/slip"
)

// Slip is the model entity for the Slip schema.
type Slip struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SlipType holds the value of the "slip_type" field.
	SlipType string `json:"slip_type,omitempty"`
	// SlipDate holds the value of the "slip_date" field.
	SlipDate time.Time `json:"slip_date,omitempty"`
	// ClientName holds the value of the "client_name" field.
	ClientName string `json:"client_name,omitempty"`
	// ItemName holds the value of the "item_name" field.
	ItemName string `json:"item_name,omitempty"`
	// NetWeight holds the value of the "net_weight" field.
	NetWeight string `json:"net_weight,omitempty"`
	// ManifestNumber holds the value of the "manifest_number" field.
	ManifestNumber string `json:"manifest_number,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Slip) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case slip.FieldSlipType, slip.FieldClientName, slip.FieldItemName, slip.FieldNetWeight, slip.FieldManifestNumber:
			values[i] = new(sql.NullString)
		case slip.FieldSlipDate, slip.FieldCreatedAt, slip.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case slip.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Slip fields.
func (_m *Slip) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case slip.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case slip.FieldSlipType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slip_type", values[i])
			} else if value.Valid {
				_m.SlipType = value.String
			}
		case slip.FieldSlipDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field slip_date", values[i])
			} else if value.Valid {
				_m.SlipDate = value.Time
			}
		case slip.FieldClientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_name", values[i])
			} else if value.Valid {
				_m.ClientName = value.String
			}
		case slip.FieldItemName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_name", values[i])
			} else if value.Valid {
				_m.ItemName = value.String
			}
		case slip.FieldNetWeight:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field net_weight", values[i])
			} else if value.Valid {
				_m.NetWeight = value.String
			}
		case slip.FieldManifestNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field manifest_number", values[i])
			} else if value.Valid {
				_m.ManifestNumber = value.String
			}
		case slip.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case slip.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Slip.
// This includes values selected through modifiers, order, etc.
func (_m *Slip) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Slip.
// Note that you need to call Slip.Unwrap() before calling this method if this Slip
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Slip) Update() *SlipUpdateOne {
	return NewSlipClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Slip entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Slip) Unwrap() *Slip {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Slip is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Slip) String() string {
	var builder strings.Builder
	builder.WriteString("Slip(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("slip_type=")
	builder.WriteString(_m.SlipType)
	builder.WriteString(", ")
	builder.WriteString("slip_date=")
	builder.WriteString(_m.SlipDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("client_name=")
	builder.WriteString(_m.ClientName)
	builder.WriteString(", ")
	builder.WriteString("item_name=")
	builder.WriteString(_m.ItemName)
	builder.WriteString(", ")
	builder.WriteString("net_weight=")
	builder.WriteString(_m.NetWeight)
	builder.WriteString(", ")
	builder.WriteString("manifest_number=")
	builder.WriteString(_m.ManifestNumber)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Slips is a parsable slice of Slip.
type Slips []*Slip
