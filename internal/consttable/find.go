package consttable

import (
	"iter"
)

// All returns an iterator over every record, ids 1..N in dataset order.
// Records are materialized lazily, one per step.
func (t *Table[K]) All() iter.Seq[*Record[K]] {
	rows, s := t.rows, t.schema
	return func(yield func(*Record[K]) bool) {
		for pos := range rows {
			if !yield(&Record[K]{table: t, schema: s, id: pos + 1, row: rows[pos]}) {
				return
			}
		}
	}
}

// Get returns the record with the given id, or nil when id is outside 1..N.
func (t *Table[K]) Get(id int) *Record[K] {
	if id <= 0 || id > len(t.rows) {
		return nil
	}
	return t.record(id - 1)
}

// First returns the first record, or nil if the table is empty.
func (t *Table[K]) First() *Record[K] {
	return t.Get(1)
}

// Last returns the last record, or nil if the table is empty.
func (t *Table[K]) Last() *Record[K] {
	return t.Get(len(t.rows))
}

// FindFirst returns the first record whose column matches cond, or nil.
//
// When the stored value is an integer the condition value is coerced to an
// integer first, so Where("prime", "19") finds the row holding 19. Other types
// compare exactly.
func (t *Table[K]) FindFirst(cond Condition) (*Record[K], error) {
	i, ok := t.schema.column(cond.Column)
	if !ok {
		return nil, unknownColumnError(t.name, cond.Column)
	}
	for pos, row := range t.rows {
		if matches(row[i], cond.Value) {
			return t.record(pos), nil
		}
	}
	return nil, nil
}

// Find resolves a selector against the dataset.
//
// The result is a sequence: None and misses yield nothing, First, Last and
// Position yield at most one record, All yields every record. Conditions are
// only accepted with First, and then exactly one.
func (t *Table[K]) Find(sel Selector, conds ...Condition) (iter.Seq[*Record[K]], error) {
	if len(conds) != 0 && sel.kind != selectFirst {
		return nil, argumentError(t.name, "conditions are only supported with first, got selector %s", sel)
	}
	switch sel.kind {
	case selectNone:
		return one[K](nil), nil
	case selectAll:
		return t.All(), nil
	case selectFirst:
		switch len(conds) {
		case 0:
			return one(t.First()), nil
		case 1:
			r, err := t.FindFirst(conds[0])
			if err != nil {
				return nil, err
			}
			return one(r), nil
		default:
			return nil, argumentError(t.name, "conditions must have exactly one entry, got %d", len(conds))
		}
	case selectLast:
		return one(t.Last()), nil
	case selectPosition:
		return one(t.Get(sel.pos)), nil
	default:
		return nil, argumentError(t.name, "invalid selector %s", sel)
	}
}

// FindOne is like Find but returns the first resolved record, or nil.
func (t *Table[K]) FindOne(sel Selector, conds ...Condition) (*Record[K], error) {
	seq, err := t.Find(sel, conds...)
	if err != nil {
		return nil, err
	}
	for r := range seq {
		return r, nil
	}
	return nil, nil
}

// Count returns the number of rows. Only All (or no selector) is supported.
func (t *Table[K]) Count(sels ...Selector) (int, error) {
	switch {
	case len(sels) == 0:
		return len(t.rows), nil
	case len(sels) == 1 && sels[0].kind == selectAll:
		return len(t.rows), nil
	default:
		return 0, argumentError(t.name, "count only supports all, got %v", sels)
	}
}

// one returns a sequence of zero or one record.
func one[K any](r *Record[K]) iter.Seq[*Record[K]] {
	return func(yield func(*Record[K]) bool) {
		if r != nil {
			yield(r)
		}
	}
}
