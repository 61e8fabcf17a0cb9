package consttable

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Attributes is the read-only view of a record handed to DisplayFunc.
type Attributes interface {
	ID() int
	Get(column string) (Value, bool)
}

// Record is one materialized row. It is created fresh by every query and is
// never cached.
type Record[K any] struct {
	table  *Table[K]
	schema *schema
	id     int
	row    []Value
}

// ID returns the 1-based position of the row in its dataset.
func (r *Record[K]) ID() int {
	return r.id
}

// Get returns the value of a column.
func (r *Record[K]) Get(column string) (Value, bool) {
	i, ok := r.schema.column(column)
	if !ok || i >= len(r.row) {
		return nil, false
	}
	return r.row[i], true
}

// String returns the value of a column formatted with %v, or "" when the
// column does not exist.
func (r *Record[K]) String(column string) string {
	v, ok := r.Get(column)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Values returns a copy of the row, in column order.
func (r *Record[K]) Values() []Value {
	out := make([]Value, len(r.row))
	copy(out, r.row)
	return out
}

// Map returns the record as a column → value map including "id".
func (r *Record[K]) Map() map[string]any {
	m := make(map[string]any, len(r.row)+1)
	m["id"] = r.id
	for i, name := range r.schema.columns {
		if i < len(r.row) {
			m[name] = r.row[i]
		}
	}
	return m
}

// MarshalJSON implements json.Marshaler.
func (r *Record[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Map())
}

// Equal reports whether both records come from the same table and have the
// same id. Records are always persisted, so the id alone identifies them.
func (r *Record[K]) Equal(other *Record[K]) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.table == other.table && r.id == other.id
}

// Table returns the name of the table the record belongs to.
func (r *Record[K]) Table() string {
	return r.table.name
}

// NewRecord always returns false; constant records are never unsaved.
func (r *Record[K]) NewRecord() bool {
	return false
}

// Persisted always returns true.
func (r *Record[K]) Persisted() bool {
	return true
}

// Destroyed always returns false.
func (r *Record[K]) Destroyed() bool {
	return false
}

// Empty always returns false.
func (r *Record[K]) Empty() bool {
	return false
}

// RespondsTo reports whether name is "id" or a declared column.
func (r *Record[K]) RespondsTo(name string) bool {
	if name == "id" {
		return true
	}
	_, ok := r.Get(name)
	return ok
}

func (r *Record[K]) GoString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s{id: %d", r.table.name, r.id)
	for i, name := range r.schema.columns {
		if i < len(r.row) {
			fmt.Fprintf(&b, ", %s: %#v", name, r.row[i])
		}
	}
	b.WriteString("}")
	return b.String()
}
