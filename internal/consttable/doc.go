// Package consttable provides small, fixed, read-only reference tables with a
// record finder and select-list helpers.
//
// # Overview
//
// A [Table] is declared once with [Table.Columns] and [Table.Data] (or
// [Define]) and is immutable afterwards:
//
//	type currency struct{}
//
//	var currencies = consttable.MustDefine[currency]("currency",
//		[]string{"short", "description"},
//		[]any{
//			[]any{"EUR", "Euro"},
//			[]any{"USD", "US Dollar"},
//			[]any{"CAD", "Canadian Dollar"},
//		})
//
// Tables without declared columns have a single "name" column, and bare
// scalars passed to Data become one-element rows.
//
// # Records
//
// A [Record] is materialized on every query. Its id is the 1-based position
// of the row in the dataset; ids are derived, not stored, and are stable
// because the dataset never changes. Two records are equal when they come
// from the same table and have the same id.
//
// # Finding
//
// [Table.Find] takes a [Selector] ([All], [First], [Last], [Position] or
// [None]) and optional [Condition]. Misses are absent results, never errors.
// [Table.Dispatch] resolves "find_by_<column>" method names and
// [Table.Lookup] is a direct key lookup that fails with [ErrNotFound].
//
// # Concurrency
//
// Declarations must happen-before queries. Queries take no locks.
package consttable
