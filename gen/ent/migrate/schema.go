// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SlipsColumns holds the columns for the "slips" table.
	SlipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "slip_type", Type: field.TypeString},
		{Name: "slip_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "client_name", Type: field.TypeString},
		{Name: "item_name", Type: field.TypeString, Nullable: true},
		{Name: "net_weight", Type: field.TypeString},
		{Name: "manifest_number", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SlipsTable holds the schema information for the "slips" table.
	SlipsTable = &schema.Table{
		Name:       "slips",
		Columns:    SlipsColumns,
		PrimaryKey: []*schema.Column{SlipsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "slip_slip_date_client_name_net_weight",
				Unique:  false,
				Columns: []*schema.Column{SlipsColumns[2], SlipsColumns[3], SlipsColumns[5]},
			},
			{
				Name:    "slip_slip_type",
				Unique:  false,
				Columns: []*schema.Column{SlipsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SlipsTable,
	}
)

func init() {
	SlipsTable.Annotation = &entsql.Annotation{
		Table: "slips",
	}
}
