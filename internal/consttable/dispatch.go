// Resolves "find_by_<column>" calls against the declared schema.

package consttable

import (
	"errors"
	"log/slog"
	"regexp"
	"slices"
)

var findByRe = regexp.MustCompile(`^find_by_([_a-zA-Z]\w*)$`)

// Dispatch handles a dynamic finder call such as Dispatch("find_by_short", "CAD").
//
// A method named find_by_<column> with exactly one argument is rewritten to
// FindFirst(Where(column, arg)). find_by_id goes to Get with the argument
// coerced to an integer; an argument that does not coerce finds nothing. Any
// other method shape or argument count is an
// ArgumentError and an undeclared column is an UnknownColumnError. Those
// fallbacks are also logged at warn level, so a host framework that calls
// unexpected methods leaves a trace; without a logger a LoggerError is joined
// to the returned error.
func (t *Table[K]) Dispatch(method string, args ...any) (*Record[K], error) {
	m := findByRe.FindStringSubmatch(method)
	if m == nil {
		return nil, t.fallback(argumentError(t.name, "unhandled call %s", method).WithDetail("method", method), method)
	}
	if len(args) != 1 {
		return nil, t.fallback(argumentError(t.name, "%s takes 1 argument, got %d", method, len(args)).WithDetail("method", method), method)
	}
	if m[1] == "id" {
		return t.getByID(args[0]), nil
	}
	r, err := t.FindFirst(Where(m[1], args[0]))
	if err != nil {
		return nil, t.fallback(err, method)
	}
	return r, nil
}

// FinderFor returns a finder bound to column, checked once up front. "id"
// binds to Get.
func (t *Table[K]) FinderFor(column string) (func(value any) (*Record[K], error), error) {
	if column == "id" {
		return func(value any) (*Record[K], error) {
			return t.getByID(value), nil
		}, nil
	}
	if _, ok := t.schema.column(column); !ok {
		return nil, unknownColumnError(t.name, column)
	}
	return func(value any) (*Record[K], error) {
		return t.FindFirst(Where(column, value))
	}, nil
}

// RespondsTo reports whether name is something the table answers: a table
// operation, a column or plural accessor, find_by_id, or find_by_<column> for
// a declared column.
func (t *Table[K]) RespondsTo(name string) bool {
	if slices.Contains(reserved, name) {
		return true
	}
	if _, ok := t.schema.accessors[name]; ok {
		return true
	}
	if m := findByRe.FindStringSubmatch(name); m != nil {
		if m[1] == "id" {
			return true
		}
		_, ok := t.schema.column(m[1])
		return ok
	}
	return false
}

// FindBy is Dispatch for a column name rather than a method name.
func (t *Table[K]) FindBy(column string, value any) (*Record[K], error) {
	return t.Dispatch("find_by_"+column, value)
}

func (t *Table[K]) getByID(v any) *Record[K] {
	id, ok := coerceToInteger(v)
	if !ok || id <= 0 || id > int64(t.Len()) {
		return nil
	}
	return t.Get(int(id))
}

func (t *Table[K]) fallback(err error, method string) error {
	if lerr := t.log(slog.LevelWarn, "unhandled finder call", "method", method, "err", err); lerr != nil {
		return errors.Join(err, lerr)
	}
	return err
}
