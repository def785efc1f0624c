// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/wastetrack/slips-tracker/db/ent/schema"
	"github.com/wastetrack/slips-tracker/gen/ent/slip"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	slipFields := schema.Slip{}.Fields()
	_ = slipFields
	// slipDescSlipType is the schema descriptor for slip_type field.
	slipDescSlipType := slipFields[1].Descriptor()
	// slip.SlipTypeValidator is a validator for the "slip_type" field. It is called by the builders before save.
	slip.SlipTypeValidator = slipDescSlipType.Validators[0].(func(string) error)
	// slipDescClientName is the schema descriptor for client_name field.
	slipDescClientName := slipFields[3].Descriptor()
	// slip.ClientNameValidator is a validator for the "client_name" field. It is called by the builders before save.
	slip.ClientNameValidator = slipDescClientName.Validators[0].(func(string) error)
	// slipDescNetWeight is the schema descriptor for net_weight field.
	slipDescNetWeight := slipFields[5].Descriptor()
	// slip.NetWeightValidator is a validator for the "net_weight" field. It is called by the builders before save.
	slip.NetWeightValidator = func() func(string) error {
		validators := slipDescNetWeight.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(net_weight string) error {
			for _, fn := range fns {
				if err := fn(net_weight); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// slipDescCreatedAt is the schema descriptor for created_at field.
	slipDescCreatedAt := slipFields[7].Descriptor()
	// slip.DefaultCreatedAt holds the default value on creation for the created_at field.
	slip.DefaultCreatedAt = slipDescCreatedAt.Default.(func() time.Time)
	// slipDescUpdatedAt is the schema descriptor for updated_at field.
	slipDescUpdatedAt := slipFields[8].Descriptor()
	// slip.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	slip.DefaultUpdatedAt = slipDescUpdatedAt.Default.(func() time.Time)
	// slip.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	slip.UpdateDefaultUpdatedAt = slipDescUpdatedAt.UpdateDefault.(func() time.Time)
	// slipDescID is the schema descriptor for id field.
	slipDescID := slipFields[0].Descriptor()
	// slip.DefaultID holds the default value on creation for the id field.
	slip.DefaultID = slipDescID.Default.(func() uuid.UUID)
}
