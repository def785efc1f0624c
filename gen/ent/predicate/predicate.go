// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Slip is the predicate function for slip builders.
type Slip func(*sql.Selector)
