package consttable

import (
	"fmt"
	"log/slog"
	"reflect"
)

// Table is a small, fixed, read-only reference table.
//
// K is a marker type naming the table. Records of two tables with different
// markers are different Go types and can never be compared with each other.
//
// Columns and Data form the definition phase and must happen-before any query.
// After that a Table is safe for concurrent use by any number of readers.
type Table[K any] struct {
	name   string
	logger Logger

	schema *schema
	rows   [][]Value
	keys   *keyIndex
}

// TableOption configures a Table at construction.
type TableOption func(*tableConfig)

type tableConfig struct {
	logger Logger
}

// WithLogger sets the logging collaborator.
func WithLogger(l Logger) TableOption {
	return func(c *tableConfig) {
		c.logger = l
	}
}

// New creates an empty table with the default schema (one "name" column).
func New[K any](name string, opts ...TableOption) *Table[K] {
	var cfg tableConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Table[K]{
		name:   name,
		logger: cfg.logger,
		schema: defaultSchema(),
		keys:   newKeyIndex(nil),
	}
}

// Define creates a table and declares its columns and data in one call.
// A nil columns slice keeps the default schema.
func Define[K any](name string, columns []string, rows []any, opts ...TableOption) (*Table[K], error) {
	t := New[K](name, opts...)
	if columns != nil {
		if err := t.Columns(columns...); err != nil {
			return nil, err
		}
	}
	if err := t.Data(rows...); err != nil {
		return nil, err
	}
	return t, nil
}

// MustDefine is like Define but panics on error. Use it for package-level
// tables.
func MustDefine[K any](name string, columns []string, rows []any, opts ...TableOption) *Table[K] {
	t, err := Define[K](name, columns, rows, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the table name.
func (t *Table[K]) Name() string {
	return t.name
}

// ColumnNames returns the declared columns in order, without "id".
func (t *Table[K]) ColumnNames() []string {
	out := make([]string, len(t.schema.columns))
	copy(out, t.schema.columns)
	return out
}

// Len returns the number of rows.
func (t *Table[K]) Len() int {
	return len(t.rows)
}

// Columns replaces the schema with names.
//
// Each column gets a cell accessor and a pluralized bulk accessor (see
// Accessor and Pluck). Accessor collisions are reported to the logger as
// warnings. The schema is left untouched when an error is returned.
func (t *Table[K]) Columns(names ...string) error {
	s, collisions, err := newSchema(t.name, names)
	if err != nil {
		return err
	}
	if len(t.rows) != 0 {
		for i, row := range t.rows {
			if len(row) != s.width() {
				return schemaError(t.name, "row %d has %d values, new schema has %d columns", i+1, len(row), s.width())
			}
		}
	}
	if len(collisions) != 0 && !usable(t.logger) {
		return loggerError(t.name).Wrap(fmt.Errorf("cannot report accessor collision on %q", collisions[0].name))
	}
	for _, c := range collisions {
		_ = t.log(slog.LevelWarn, "accessor collision", "accessor", c.name, "column", c.column, "with", c.with)
	}
	t.schema = s
	return nil
}

// Data replaces the dataset.
//
// Each argument is one row: either a slice or array of scalars, or a bare
// scalar which becomes a one-element row. Scalars are string, bool, any
// integer or float kind. Every row must have exactly one value per column.
func (t *Table[K]) Data(rows ...any) error {
	out := make([][]Value, 0, len(rows))
	for i, arg := range rows {
		row, err := t.normalizeRow(i+1, arg)
		if err != nil {
			return err
		}
		if len(row) != t.schema.width() {
			return schemaError(t.name, "row %d has %d values, want %d", i+1, len(row), t.schema.width())
		}
		out = append(out, row)
	}
	t.rows = out
	t.keys = newKeyIndex(out)
	return nil
}

func (t *Table[K]) normalizeRow(n int, arg any) ([]Value, error) {
	if v, ok := normalize(arg); ok {
		return []Value{v}, nil
	}
	rv := reflect.ValueOf(arg)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, schemaError(t.name, "row %d: unsupported value %v (%T)", n, arg, arg)
	}
	row := make([]Value, rv.Len())
	for j := range rv.Len() {
		cell := rv.Index(j).Interface()
		v, ok := normalize(cell)
		if !ok {
			return nil, schemaError(t.name, "row %d, column %d: unsupported value %v (%T)", n, j+1, cell, cell)
		}
		row[j] = v
	}
	return row, nil
}

// Accessor resolves a column name or the plural of a column name.
func (t *Table[K]) Accessor(name string) (Accessor, bool) {
	a, ok := t.schema.accessors[name]
	return a, ok
}

// Pluck returns the values of one column for every row, in dataset order.
// name is either the column name or its plural ("short" or "shorts").
func (t *Table[K]) Pluck(name string) ([]Value, error) {
	a, ok := t.Accessor(name)
	if !ok {
		return nil, unknownColumnError(t.name, name)
	}
	out := make([]Value, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[a.Index]
	}
	return out, nil
}

// record materializes the row at 0-based position pos.
func (t *Table[K]) record(pos int) *Record[K] {
	return &Record[K]{table: t, schema: t.schema, id: pos + 1, row: t.rows[pos]}
}
