package consttable

// Lookup treats the table as a key/value map: it returns the second column of
// the row whose first column equals key.
//
// Unlike Find, a miss is an error (NotFoundError carrying the table name and
// key): Lookup is for keys the caller expects to exist. Keys compare exactly,
// without the integer coercion used by conditions.
func (t *Table[K]) Lookup(key any) (Value, error) {
	if t.schema.width() < 2 {
		return nil, argumentError(t.name, "lookup needs at least 2 columns, have %d", t.schema.width())
	}
	k, ok := normalize(key)
	if !ok {
		return nil, notFoundError(t.name, key)
	}
	pos, ok := t.keys.get(k)
	if !ok {
		return nil, notFoundError(t.name, key)
	}
	return t.rows[pos][1], nil
}

// MustLookup is like Lookup but panics on a miss.
func (t *Table[K]) MustLookup(key any) Value {
	v, err := t.Lookup(key)
	if err != nil {
		panic(err)
	}
	return v
}
