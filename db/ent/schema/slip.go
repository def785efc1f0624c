package schema

import (
	"errors"
	"regexp"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/wastetrack/slips-tracker/db/ent/schema/utils"
)

var (
	reNetWeight      = regexp.MustCompile(`^\d+(\.\d+)?$`)
	errInvalidWeight = errors.New("invalid net weight")
)

type Slip struct{ ent.Schema }

func (Slip) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "slips"},
	}
}

func (Slip) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("slip_type").
			Validate(utils.EnumValidator("受領証", "検量書", "計量伝票", "計量票")),
		field.Time("slip_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("client_name").NotEmpty(),
		field.String("item_name").Optional(),
		// Weights stay strings end to end; parsing floats would reintroduce
		// the precision drift the extraction chain avoids.
		field.String("net_weight").NotEmpty().
			Validate(func(s string) error {
				if reNetWeight.MatchString(s) {
					return nil
				}
				return errInvalidWeight
			}),
		field.String("manifest_number").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Slip) Indexes() []ent.Index {
	return []ent.Index{
		// Duplicate detection key: same day, same client, same net weight.
		index.Fields("slip_date", "client_name", "net_weight"),
		index.Fields("slip_type"),
	}
}
