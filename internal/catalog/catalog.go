// Package catalog builds named sets of constant tables from definition files
// and keeps them fresh when the files change.
package catalog

import (
	"fmt"
	"slices"

	"github.com/maruel/constrec/internal/consttable"
	"github.com/maruel/ksid"
)

// Entry is the marker type of every table loaded from a definition file.
type Entry struct{}

// Table is a table loaded from a definition file.
type Table = consttable.Table[Entry]

// Record is a record of a loaded table.
type Record = consttable.Record[Entry]

// Catalog is an immutable set of tables built from one definition file.
type Catalog struct {
	generation   ksid.ID
	names        []string
	tables       map[string]*Table
	descriptions map[string]string
}

// Build creates the tables declared in f. logger is handed to every table.
func Build(f *File, logger consttable.Logger) (*Catalog, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definitions: %w", err)
	}
	c := &Catalog{
		generation:   ksid.NewID(),
		names:        make([]string, 0, len(f.Tables)),
		tables:       make(map[string]*Table, len(f.Tables)),
		descriptions: make(map[string]string, len(f.Tables)),
	}
	for i := range f.Tables {
		td := &f.Tables[i]
		t, err := consttable.Define[Entry](td.Name, td.Columns, td.Data, consttable.WithLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("failed to build table %q: %w", td.Name, err)
		}
		c.names = append(c.names, td.Name)
		c.tables[td.Name] = t
		c.descriptions[td.Name] = td.Description
	}
	return c, nil
}

// Load parses and builds a definition file.
func Load(path string, logger consttable.Logger) (*Catalog, error) {
	f, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return Build(f, logger)
}

// Get returns the named table.
func (c *Catalog) Get(name string) (*Table, bool) {
	t, ok := c.tables[name]
	return t, ok
}

// Table is like Get but fails with an ArgumentError naming the known tables.
func (c *Catalog) Table(name string) (*Table, error) {
	if t, ok := c.tables[name]; ok {
		return t, nil
	}
	return nil, consttable.NewError(consttable.CodeArgument, fmt.Sprintf("unknown table %q, have %v", name, c.names)).
		WithDetail("table", name)
}

// Names returns the table names in declaration order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Description returns the description of the named table.
func (c *Catalog) Description(name string) string {
	return c.descriptions[name]
}

// Len returns the number of tables.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Generation identifies this build. Later builds have larger ids.
func (c *Catalog) Generation() ksid.ID {
	return c.generation
}
