// Provides the in-memory key index behind Table.Lookup.

package consttable

// keyIndex maps the first-column value of each row to the row position.
//
// It is built once per dataset and never modified afterwards, so reads need no
// lock. When several rows share a key the first one wins, which is what a
// linear scan over the rows would return.
type keyIndex struct {
	byKey map[Value]int
}

func newKeyIndex(rows [][]Value) *keyIndex {
	idx := &keyIndex{byKey: make(map[Value]int, len(rows))}
	for pos, row := range rows {
		if len(row) == 0 {
			continue
		}
		if _, seen := idx.byKey[row[0]]; !seen {
			idx.byKey[row[0]] = pos
		}
	}
	return idx
}

// get returns the position of the row whose first cell equals key.
func (idx *keyIndex) get(key Value) (int, bool) {
	if idx == nil {
		return 0, false
	}
	pos, ok := idx.byKey[key]
	return pos, ok
}
