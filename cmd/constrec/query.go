package main

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/maruel/constrec/internal/catalog"
	"github.com/maruel/constrec/internal/consttable"
	"github.com/maruel/constrec/internal/render"
	"gopkg.in/yaml.v3"
)

// query is one CLI invocation against a table.
type query struct {
	table  string
	find   string
	where  string
	findBy string
	lookup string
	count  bool
	json   bool

	options     bool
	display     string
	value       string
	includeNull bool
	nullText    string
	nullValue   string
}

func (q *query) run(w io.Writer, c *catalog.Catalog) error {
	if q.table == "" {
		return listTables(w, c)
	}
	t, err := c.Table(q.table)
	if err != nil {
		return err
	}
	switch {
	case q.count:
		n, err := t.Count()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, n)
		return err
	case q.lookup != "":
		v, err := t.Lookup(parseScalar(q.lookup))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, v)
		return err
	case q.options:
		opts, err := t.OptionsForSelect(q.selectOptions()...)
		if err != nil {
			return err
		}
		if q.json {
			return json.NewEncoder(w).Encode(opts)
		}
		return render.Options(w, opts)
	case q.findBy != "":
		method, arg, ok := strings.Cut(q.findBy, "=")
		if !ok {
			return fmt.Errorf("-find-by: want find_by_<column>=value, got %q", q.findBy)
		}
		r, err := t.Dispatch(method, parseScalar(arg))
		if err != nil {
			return err
		}
		var found []*catalog.Record
		if r != nil {
			found = append(found, r)
		}
		return q.print(w, t, slices.Values(found))
	default:
		sel, err := consttable.ParseSelector(q.find)
		if err != nil {
			return err
		}
		var conds []consttable.Condition
		if q.where != "" {
			col, val, ok := strings.Cut(q.where, "=")
			if !ok {
				return fmt.Errorf("-where: want column=value, got %q", q.where)
			}
			conds = append(conds, consttable.Where(col, parseScalar(val)))
		}
		seq, err := t.Find(sel, conds...)
		if err != nil {
			return err
		}
		return q.print(w, t, seq)
	}
}

func (q *query) selectOptions() []consttable.SelectOption {
	var opts []consttable.SelectOption
	if q.display != "" {
		opts = append(opts, consttable.Display(q.display))
	}
	if q.value != "" {
		opts = append(opts, consttable.ValueColumn(q.value))
	}
	if q.includeNull {
		opts = append(opts, consttable.IncludeNull())
	}
	if q.nullText != "" {
		opts = append(opts, consttable.NullText(q.nullText))
	}
	if q.nullValue != "" {
		opts = append(opts, consttable.NullValue(parseScalar(q.nullValue)))
	}
	return opts
}

func (q *query) print(w io.Writer, t *catalog.Table, records iter.Seq[*catalog.Record]) error {
	if !q.json {
		return render.Records(w, t.ColumnNames(), records)
	}
	enc := json.NewEncoder(w)
	for r := range records {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

func listTables(w io.Writer, c *catalog.Catalog) error {
	return render.Names(w, c.Names(), c.Description)
}

// parseScalar reads a command line value the way definition files are read,
// so 19 is an integer, true a boolean and "19" a string. Anything that is not
// a YAML scalar is kept as the raw string.
func parseScalar(s string) any {
	if s == "" {
		return s
	}
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	switch v.(type) {
	case map[string]any, []any:
		return s
	}
	return v
}
