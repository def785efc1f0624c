// Code generated by ent, DO NOT EDIT.

package slip

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/wastetrack/slips-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Slip {
	return predicate.Slip(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Slip {
	return predicate.Slip(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Slip {
	return predicate.Slip(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Slip {
	return predicate.Slip(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Slip {
	return predicate.Slip(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Slip {
	return predicate.Slip(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Slip {
	return predicate.Slip(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Slip {
	return predicate.Slip(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Slip {
	return predicate.Slip(sql.FieldLTE(FieldID, id))
}

// SlipType applies equality check predicate on the "slip_type" field. It's identical to SlipTypeEQ.
func SlipType(v string) predicate.Slip {
	return predicate.Slip(sql.FieldEQ(FieldSlipType, v))
}

// SlipDate applies equality check predicate on the "slip_date" field. It's identical to SlipDateEQ.
func SlipDate(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldEQ(FieldSlipDate, v))
}

// ClientName applies equality check predicate on the "client_name" field. It's identical to ClientNameEQ.
func ClientName(v string) predicate.Slip {
	return predicate.Slip(sql.FieldEQ(FieldClientName, v))
}

// ItemName applies equality check predicate on the "item_name" field. It's identical to ItemNameEQ.
func ItemName(v string) predicate.Slip {
	return predicate.Slip(sql.FieldEQ(FieldItemName, v))
}

// NetWeight applies equality check predicate on the "net_weight" field. It's identical to NetWeightEQ.
func NetWeight(v string) predicate.Slip {
	return predicate.Slip(sql.FieldEQ(FieldNetWeight, v))
}

// ManifestNumber applies equality check predicate on the "manifest_number" field. It's identical to ManifestNumberEQ.
func ManifestNumber(v string) predicate.Slip {
	return predicate.Slip(sql.FieldEQ(FieldManifestNumber, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldEQ(FieldUpdatedAt, v))
}

// SlipTypeEQ applies the EQ predicate on the "slip_type" field.
func SlipTypeEQ(v string) predicate.Slip {
	return predicate.Slip(sql.FieldEQ(FieldSlipType, v))
}

// SlipTypeNEQ applies the NEQ predicate on the "slip_type" field.
func SlipTypeNEQ(v string) predicate.Slip {
	return predicate.Slip(sql.FieldNEQ(FieldSlipType, v))
}

// SlipTypeIn applies the In predicate on the "slip_type" field.
func SlipTypeIn(vs ...string) predicate.Slip {
	return predicate.Slip(sql.FieldIn(FieldSlipType, vs...))
}

// SlipTypeNotIn applies the NotIn predicate on the "slip_type" field.
func SlipTypeNotIn(vs ...string) predicate.Slip {
	return predicate.Slip(sql.FieldNotIn(FieldSlipType, vs...))
}

// SlipTypeGT applies the GT predicate on the "slip_type" field.
func SlipTypeGT(v string) predicate.Slip {
	return predicate.Slip(sql.FieldGT(FieldSlipType, v))
}

// SlipTypeGTE applies the GTE predicate on the "slip_type" field.
func SlipTypeGTE(v string) predicate.Slip {
	return predicate.Slip(sql.FieldGTE(FieldSlipType, v))
}

// SlipTypeLT applies the LT predicate on the "slip_type" field.
func SlipTypeLT(v string) predicate.Slip {
	return predicate.Slip(sql.FieldLT(FieldSlipType, v))
}

// SlipTypeLTE applies the LTE predicate on the "slip_type" field.
func SlipTypeLTE(v string) predicate.Slip {
	return predicate.Slip(sql.FieldLTE(FieldSlipType, v))
}

// SlipTypeContains applies the Contains predicate on the "slip_type" field.
func SlipTypeContains(v string) predicate.Slip {
	return predicate.Slip(sql.FieldContains(FieldSlipType, v))
}

// SlipTypeHasPrefix applies the HasPrefix predicate on the "slip_type" field.
func SlipTypeHasPrefix(v string) predicate.Slip {
	return predicate.Slip(sql.FieldHasPrefix(FieldSlipType, v))
}

// SlipTypeHasSuffix applies the HasSuffix predicate on the "slip_type" field.
func SlipTypeHasSuffix(v string) predicate.Slip {
	return predicate.Slip(sql.FieldHasSuffix(FieldSlipType, v))
}

// SlipTypeEqualFold applies the EqualFold predicate on the "slip_type" field.
func SlipTypeEqualFold(v string) predicate.Slip {
	return predicate.Slip(sql.FieldEqualFold(FieldSlipType, v))
}

// SlipTypeContainsFold applies the ContainsFold predicate on the "slip_type" field.
func SlipTypeContainsFold(v string) predicate.Slip {
	return predicate.Slip(sql.FieldContainsFold(FieldSlipType, v))
}

// SlipDateEQ applies the EQ predicate on the "slip_date" field.
func SlipDateEQ(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldEQ(FieldSlipDate, v))
}

// SlipDateNEQ applies the NEQ predicate on the "slip_date" field.
func SlipDateNEQ(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldNEQ(FieldSlipDate, v))
}

// SlipDateIn applies the In predicate on the "slip_date" field.
func SlipDateIn(vs ...time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldIn(FieldSlipDate, vs...))
}

// SlipDateNotIn applies the NotIn predicate on the "slip_date" field.
func SlipDateNotIn(vs ...time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldNotIn(FieldSlipDate, vs...))
}

// SlipDateGT applies the GT predicate on the "slip_date" field.
func SlipDateGT(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldGT(FieldSlipDate, v))
}

// SlipDateGTE applies the GTE predicate on the "slip_date" field.
func SlipDateGTE(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldGTE(FieldSlipDate, v))
}

// SlipDateLT applies the LT predicate on the "slip_date" field.
func SlipDateLT(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldLT(FieldSlipDate, v))
}

// SlipDateLTE applies the LTE predicate on the "slip_date" field.
func SlipDateLTE(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldLTE(FieldSlipDate, v))
}

// ClientNameEQ applies the EQ predicate on the "client_name" field.
func ClientNameEQ(v string) predicate.Slip {
	return predicate.Slip(sql.FieldEQ(FieldClientName, v))
}

// ClientNameNEQ applies the NEQ predicate on the "client_name" field.
func ClientNameNEQ(v string) predicate.Slip {
	return predicate.Slip(sql.FieldNEQ(FieldClientName, v))
}

// ClientNameIn applies the In predicate on the "client_name" field.
func ClientNameIn(vs ...string) predicate.Slip {
	return predicate.Slip(sql.FieldIn(FieldClientName, vs...))
}

// ClientNameNotIn applies the NotIn predicate on the "client_name" field.
func ClientNameNotIn(vs ...string) predicate.Slip {
	return predicate.Slip(sql.FieldNotIn(FieldClientName, vs...))
}

// ClientNameGT applies the GT predicate on the "client_name" field.
func ClientNameGT(v string) predicate.Slip {
	return predicate.Slip(sql.FieldGT(FieldClientName, v))
}

// ClientNameGTE applies the GTE predicate on the "client_name" field.
func ClientNameGTE(v string) predicate.Slip {
	return predicate.Slip(sql.FieldGTE(FieldClientName, v))
}

// ClientNameLT applies the LT predicate on the "client_name" field.
func ClientNameLT(v string) predicate.Slip {
	return predicate.Slip(sql.FieldLT(FieldClientName, v))
}

// ClientNameLTE applies the LTE predicate on the "client_name" field.
func ClientNameLTE(v string) predicate.Slip {
	return predicate.Slip(sql.FieldLTE(FieldClientName, v))
}

// ClientNameContains applies the Contains predicate on the "client_name" field.
func ClientNameContains(v string) predicate.Slip {
	return predicate.Slip(sql.FieldContains(FieldClientName, v))
}

// ClientNameHasPrefix applies the HasPrefix predicate on the "client_name" field.
func ClientNameHasPrefix(v string) predicate.Slip {
	return predicate.Slip(sql.FieldHasPrefix(FieldClientName, v))
}

// ClientNameHasSuffix applies the HasSuffix predicate on the "client_name" field.
func ClientNameHasSuffix(v string) predicate.Slip {
	return predicate.Slip(sql.FieldHasSuffix(FieldClientName, v))
}

// ClientNameEqualFold applies the EqualFold predicate on the "client_name" field.
func ClientNameEqualFold(v string) predicate.Slip {
	return predicate.Slip(sql.FieldEqualFold(FieldClientName, v))
}

// ClientNameContainsFold applies the ContainsFold predicate on the "client_name" field.
func ClientNameContainsFold(v string) predicate.Slip {
	return predicate.Slip(sql.FieldContainsFold(FieldClientName, v))
}

// ItemNameEQ applies the EQ predicate on the "item_name" field.
func ItemNameEQ(v string) predicate.Slip {
	return predicate.Slip(sql.FieldEQ(FieldItemName, v))
}

// ItemNameNEQ applies the NEQ predicate on the "item_name" field.
func ItemNameNEQ(v string) predicate.Slip {
	return predicate.Slip(sql.FieldNEQ(FieldItemName, v))
}

// ItemNameIn applies the In predicate on the "item_name" field.
func ItemNameIn(vs ...string) predicate.Slip {
	return predicate.Slip(sql.FieldIn(FieldItemName, vs...))
}

// ItemNameNotIn applies the NotIn predicate on the "item_name" field.
func ItemNameNotIn(vs ...string) predicate.Slip {
	return predicate.Slip(sql.FieldNotIn(FieldItemName, vs...))
}

// ItemNameGT applies the GT predicate on the "item_name" field.
func ItemNameGT(v string) predicate.Slip {
	return predicate.Slip(sql.FieldGT(FieldItemName, v))
}

// ItemNameGTE applies the GTE predicate on the "item_name" field.
func ItemNameGTE(v string) predicate.Slip {
	return predicate.Slip(sql.FieldGTE(FieldItemName, v))
}

// ItemNameLT applies the LT predicate on the "item_name" field.
func ItemNameLT(v string) predicate.Slip {
	return predicate.Slip(sql.FieldLT(FieldItemName, v))
}

// ItemNameLTE applies the LTE predicate on the "item_name" field.
func ItemNameLTE(v string) predicate.Slip {
	return predicate.Slip(sql.FieldLTE(FieldItemName, v))
}

// ItemNameContains applies the Contains predicate on the "item_name" field.
func ItemNameContains(v string) predicate.Slip {
	return predicate.Slip(sql.FieldContains(FieldItemName, v))
}

// ItemNameHasPrefix applies the HasPrefix predicate on the "item_name" field.
func ItemNameHasPrefix(v string) predicate.Slip {
	return predicate.Slip(sql.FieldHasPrefix(FieldItemName, v))
}

// ItemNameHasSuffix applies the HasSuffix predicate on the "item_name" field.
func ItemNameHasSuffix(v string) predicate.Slip {
	return predicate.Slip(sql.FieldHasSuffix(FieldItemName, v))
}

// ItemNameIsNil applies the IsNil predicate on the "item_name" field.
func ItemNameIsNil() predicate.Slip {
	return predicate.Slip(sql.FieldIsNull(FieldItemName))
}

// ItemNameNotNil applies the NotNil predicate on the "item_name" field.
func ItemNameNotNil() predicate.Slip {
	return predicate.Slip(sql.FieldNotNull(FieldItemName))
}

// ItemNameEqualFold applies the EqualFold predicate on the "item_name" field.
func ItemNameEqualFold(v string) predicate.Slip {
	return predicate.Slip(sql.FieldEqualFold(FieldItemName, v))
}

// ItemNameContainsFold applies the ContainsFold predicate on the "item_name" field.
func ItemNameContainsFold(v string) predicate.Slip {
	return predicate.Slip(sql.FieldContainsFold(FieldItemName, v))
}

// NetWeightEQ applies the EQ predicate on the "net_weight" field.
func NetWeightEQ(v string) predicate.Slip {
	return predicate.Slip(sql.FieldEQ(FieldNetWeight, v))
}

// NetWeightNEQ applies the NEQ predicate on the "net_weight" field.
func NetWeightNEQ(v string) predicate.Slip {
	return predicate.Slip(sql.FieldNEQ(FieldNetWeight, v))
}

// NetWeightIn applies the In predicate on the "net_weight" field.
func NetWeightIn(vs ...string) predicate.Slip {
	return predicate.Slip(sql.FieldIn(FieldNetWeight, vs...))
}

// NetWeightNotIn applies the NotIn predicate on the "net_weight" field.
func NetWeightNotIn(vs ...string) predicate.Slip {
	return predicate.Slip(sql.FieldNotIn(FieldNetWeight, vs...))
}

// NetWeightGT applies the GT predicate on the "net_weight" field.
func NetWeightGT(v string) predicate.Slip {
	return predicate.Slip(sql.FieldGT(FieldNetWeight, v))
}

// NetWeightGTE applies the GTE predicate on the "net_weight" field.
func NetWeightGTE(v string) predicate.Slip {
	return predicate.Slip(sql.FieldGTE(FieldNetWeight, v))
}

// NetWeightLT applies the LT predicate on the "net_weight" field.
func NetWeightLT(v string) predicate.Slip {
	return predicate.Slip(sql.FieldLT(FieldNetWeight, v))
}

// NetWeightLTE applies the LTE predicate on the "net_weight" field.
func NetWeightLTE(v string) predicate.Slip {
	return predicate.Slip(sql.FieldLTE(FieldNetWeight, v))
}

// NetWeightContains applies the Contains predicate on the "net_weight" field.
func NetWeightContains(v string) predicate.Slip {
	return predicate.Slip(sql.FieldContains(FieldNetWeight, v))
}

// NetWeightHasPrefix applies the HasPrefix predicate on the "net_weight" field.
func NetWeightHasPrefix(v string) predicate.Slip {
	return predicate.Slip(sql.FieldHasPrefix(FieldNetWeight, v))
}

// NetWeightHasSuffix applies the HasSuffix predicate on the "net_weight" field.
func NetWeightHasSuffix(v string) predicate.Slip {
	return predicate.Slip(sql.FieldHasSuffix(FieldNetWeight, v))
}

// NetWeightEqualFold applies the EqualFold predicate on the "net_weight" field.
func NetWeightEqualFold(v string) predicate.Slip {
	return predicate.Slip(sql.FieldEqualFold(FieldNetWeight, v))
}

// NetWeightContainsFold applies the ContainsFold predicate on the "net_weight" field.
func NetWeightContainsFold(v string) predicate.Slip {
	return predicate.Slip(sql.FieldContainsFold(FieldNetWeight, v))
}

// ManifestNumberEQ applies the EQ predicate on the "manifest_number" field.
func ManifestNumberEQ(v string) predicate.Slip {
	return predicate.Slip(sql.FieldEQ(FieldManifestNumber, v))
}

// ManifestNumberNEQ applies the NEQ predicate on the "manifest_number" field.
func ManifestNumberNEQ(v string) predicate.Slip {
	return predicate.Slip(sql.FieldNEQ(FieldManifestNumber, v))
}

// ManifestNumberIn applies the In predicate on the "manifest_number" field.
func ManifestNumberIn(vs ...string) predicate.Slip {
	return predicate.Slip(sql.FieldIn(FieldManifestNumber, vs...))
}

// ManifestNumberNotIn applies the NotIn predicate on the "manifest_number" field.
func ManifestNumberNotIn(vs ...string) predicate.Slip {
	return predicate.Slip(sql.FieldNotIn(FieldManifestNumber, vs...))
}

// ManifestNumberGT applies the GT predicate on the "manifest_number" field.
func ManifestNumberGT(v string) predicate.Slip {
	return predicate.Slip(sql.FieldGT(FieldManifestNumber, v))
}

// ManifestNumberGTE applies the GTE predicate on the "manifest_number" field.
func ManifestNumberGTE(v string) predicate.Slip {
	return predicate.Slip(sql.FieldGTE(FieldManifestNumber, v))
}

// ManifestNumberLT applies the LT predicate on the "manifest_number" field.
func ManifestNumberLT(v string) predicate.Slip {
	return predicate.Slip(sql.FieldLT(FieldManifestNumber, v))
}

// ManifestNumberLTE applies the LTE predicate on the "manifest_number" field.
func ManifestNumberLTE(v string) predicate.Slip {
	return predicate.Slip(sql.FieldLTE(FieldManifestNumber, v))
}

// ManifestNumberContains applies the Contains predicate on the "manifest_number" field.
func ManifestNumberContains(v string) predicate.Slip {
	return predicate.Slip(sql.FieldContains(FieldManifestNumber, v))
}

// ManifestNumberHasPrefix applies the HasPrefix predicate on the "manifest_number" field.
func ManifestNumberHasPrefix(v string) predicate.Slip {
	return predicate.Slip(sql.FieldHasPrefix(FieldManifestNumber, v))
}

// ManifestNumberHasSuffix applies the HasSuffix predicate on the "manifest_number" field.
func ManifestNumberHasSuffix(v string) predicate.Slip {
	return predicate.Slip(sql.FieldHasSuffix(FieldManifestNumber, v))
}

// ManifestNumberIsNil applies the IsNil predicate on the "manifest_number" field.
func ManifestNumberIsNil() predicate.Slip {
	return predicate.Slip(sql.FieldIsNull(FieldManifestNumber))
}

// ManifestNumberNotNil applies the NotNil predicate on the "manifest_number" field.
func ManifestNumberNotNil() predicate.Slip {
	return predicate.Slip(sql.FieldNotNull(FieldManifestNumber))
}

// ManifestNumberEqualFold applies the EqualFold predicate on the "manifest_number" field.
func ManifestNumberEqualFold(v string) predicate.Slip {
	return predicate.Slip(sql.FieldEqualFold(FieldManifestNumber, v))
}

// ManifestNumberContainsFold applies the ContainsFold predicate on the "manifest_number" field.
func ManifestNumberContainsFold(v string) predicate.Slip {
	return predicate.Slip(sql.FieldContainsFold(FieldManifestNumber, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Slip {
	return predicate.Slip(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Slip) predicate.Slip {
	return predicate.Slip(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Slip) predicate.Slip {
	return predicate.Slip(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Slip) predicate.Slip {
	return predicate.Slip(sql.NotPredicates(p))
}
