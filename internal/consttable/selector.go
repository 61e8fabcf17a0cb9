package consttable

import (
	"fmt"
	"strconv"
	"strings"
)

type selectorKind int

const (
	selectNone selectorKind = iota
	selectAll
	selectFirst
	selectLast
	selectPosition
)

// Selector chooses which records Find returns.
//
// The zero value is None: it models a lookup on an absent foreign key and
// always yields nothing.
type Selector struct {
	kind selectorKind
	pos  int
}

// None is the absent selector.
var None = Selector{}

// All selects every record in dataset order.
func All() Selector { return Selector{kind: selectAll} }

// First selects the first record, or the first record matching a condition.
func First() Selector { return Selector{kind: selectFirst} }

// Last selects the last record.
func Last() Selector { return Selector{kind: selectLast} }

// Position selects the record with the given 1-based id.
func Position(id int) Selector { return Selector{kind: selectPosition, pos: id} }

// IsNone reports whether s is the absent selector.
func (s Selector) IsNone() bool {
	return s.kind == selectNone
}

func (s Selector) String() string {
	switch s.kind {
	case selectAll:
		return "all"
	case selectFirst:
		return "first"
	case selectLast:
		return "last"
	case selectPosition:
		return strconv.Itoa(s.pos)
	default:
		return "none"
	}
}

// ParseSelector converts a dynamic value into a Selector.
//
// Accepted: nil, a Selector, any integer kind, and the strings "all",
// "first", "last" (optionally prefixed with ':') or a decimal number.
// Anything else is an ArgumentError.
func ParseSelector(v any) (Selector, error) {
	switch x := v.(type) {
	case nil:
		return None, nil
	case Selector:
		return x, nil
	case string:
		switch strings.TrimPrefix(x, ":") {
		case "all":
			return All(), nil
		case "first":
			return First(), nil
		case "last":
			return Last(), nil
		case "", "nil", "none":
			return None, nil
		}
		if n, err := strconv.Atoi(x); err == nil {
			return Position(n), nil
		}
		return None, NewError(CodeArgument, fmt.Sprintf("invalid selector %q", x)).WithDetail("selector", x)
	}
	if n, ok := normalize(v); ok {
		if i, ok := n.(int64); ok {
			return Position(int(i)), nil
		}
	}
	return None, NewError(CodeArgument, fmt.Sprintf("invalid selector %v (%T)", v, v)).WithDetail("selector", v)
}

// Condition is a single column = value constraint, used with First.
type Condition struct {
	Column string
	Value  any
}

// Where builds a Condition.
func Where(column string, value any) Condition {
	return Condition{Column: column, Value: value}
}

// ParseConditions converts a {column: value} map into conditions. Only
// single-entry maps are valid.
func ParseConditions(m map[string]any) ([]Condition, error) {
	if len(m) != 1 {
		return nil, NewError(CodeArgument, fmt.Sprintf("conditions must have exactly one entry, got %d", len(m)))
	}
	for k, v := range m {
		return []Condition{Where(k, v)}, nil
	}
	return nil, nil
}
