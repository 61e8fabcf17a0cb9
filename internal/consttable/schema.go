// Handles column declaration, accessor descriptors and identifier validation.

package consttable

import (
	"regexp"
	"slices"

	pluralize "github.com/gertd/go-pluralize"
)

// DefaultColumn is the single column of a table that never declared columns.
const DefaultColumn = "name"

var identRe = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]*$`)

// reserved holds the names of table-level operations. Plural accessors share
// that namespace, so a plural with one of these names is a collision. Column
// accessors live on records and may use any of them.
var reserved = []string{"all", "first", "last", "count", "find", "options_for_select"}

var inflect = pluralize.NewClient()

// plural returns the bulk accessor name of a column.
var plural = inflect.Plural

// AccessorKind tells whether an accessor reads one cell or a whole column.
type AccessorKind int

const (
	// AccessorColumn reads the cell of one record.
	AccessorColumn AccessorKind = iota
	// AccessorPlural reads the column across all records.
	AccessorPlural
)

func (k AccessorKind) String() string {
	if k == AccessorPlural {
		return "plural"
	}
	return "column"
}

// Accessor describes a readable name exposed by a table.
type Accessor struct {
	Name   string
	Column string
	Index  int
	Kind   AccessorKind
}

// collision is an accessor name that could not be registered cleanly.
type collision struct {
	name   string
	column string
	with   string
}

// schema is the frozen column declaration of a table.
type schema struct {
	columns   []string
	index     map[string]int
	accessors map[string]Accessor
}

func (s *schema) width() int {
	return len(s.columns)
}

// column returns the position of a declared column.
func (s *schema) column(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// newSchema validates names and builds the accessor table. It fails on
// invalid, duplicate or reserved-id names; accessor collisions are returned
// for the caller to report.
func newSchema(table string, names []string) (*schema, []collision, error) {
	if len(names) == 0 {
		return nil, nil, schemaError(table, "at least one column is required")
	}
	s := &schema{
		columns:   slices.Clone(names),
		index:     make(map[string]int, len(names)),
		accessors: make(map[string]Accessor, 2*len(names)),
	}
	for i, name := range names {
		if !identRe.MatchString(name) {
			return nil, nil, schemaError(table, "column %d: %q is not an identifier", i, name).WithDetail("column", name)
		}
		if name == "id" {
			return nil, nil, schemaError(table, "column %d: id is implicit and cannot be declared", i).WithDetail("column", name)
		}
		if _, dup := s.index[name]; dup {
			return nil, nil, schemaError(table, "column %d: duplicate column %q", i, name).WithDetail("column", name)
		}
		s.index[name] = i
		s.accessors[name] = Accessor{Name: name, Column: name, Index: i, Kind: AccessorColumn}
	}

	var collisions []collision
	for i, name := range names {
		p := plural(name)
		if p == name {
			continue
		}
		if prev, ok := s.accessors[p]; ok {
			collisions = append(collisions, collision{name: p, column: name, with: prev.Kind.String() + " " + prev.Column})
			continue
		}
		if slices.Contains(reserved, p) {
			collisions = append(collisions, collision{name: p, column: name, with: "table operation"})
		}
		s.accessors[p] = Accessor{Name: p, Column: name, Index: i, Kind: AccessorPlural}
	}
	return s, collisions, nil
}

// defaultSchema is the schema of a table that never called Columns.
func defaultSchema() *schema {
	s, _, _ := newSchema("", []string{DefaultColumn})
	return s
}
