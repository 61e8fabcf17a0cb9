// Package render prints tables, query results and option lists as aligned
// text grids.
package render

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"text/tabwriter"

	"github.com/maruel/constrec/internal/consttable"
)

// Table writes every record of t.
func Table[K any](w io.Writer, t *consttable.Table[K]) error {
	return Records(w, t.ColumnNames(), t.All())
}

// Records writes one line per record: the id followed by columns, under a
// header line and a separator line.
func Records[K any](w io.Writer, columns []string, records iter.Seq[*consttable.Record[K]]) error {
	tw := newWriter(w)
	header := append([]string{"id"}, columns...)
	writeHeader(tw, header)
	for r := range records {
		fmt.Fprintf(tw, "%d", r.ID())
		for _, col := range columns {
			fmt.Fprint(tw, "\t")
			if v, ok := r.Get(col); ok {
				fmt.Fprintf(tw, "%v", v)
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// Options writes an option list as value/label pairs.
func Options(w io.Writer, opts []consttable.Option) error {
	tw := newWriter(w)
	writeHeader(tw, []string{"value", "label"})
	for _, o := range opts {
		fmt.Fprintf(tw, "%v\t%v\n", o.Value, o.Label)
	}
	return tw.Flush()
}

// Names writes one name per line with its description, for table listings.
func Names(w io.Writer, names []string, describe func(string) string) error {
	tw := newWriter(w)
	for _, n := range names {
		if d := describe(n); d != "" {
			fmt.Fprintf(tw, "%s\t%s\n", n, d)
		} else {
			fmt.Fprintln(tw, n)
		}
	}
	return tw.Flush()
}

func newWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeHeader(tw *tabwriter.Writer, cols []string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
	sep := make([]string, len(cols))
	for i, c := range cols {
		sep[i] = strings.Repeat("-", len(c))
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}
