/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

// Predicate holds the active comparators for one filter field.
// A nil comparator value contributes nothing to the query; all non-nil
// comparators on the same field must hold simultaneously.
type Predicate struct {
	// Eq matches rows whose field equals the value.
	Eq any
	// Ne matches rows whose field differs from the value.
	Ne any
	// In matches rows whose field equals any of the values, in input order.
	In []any
	// Gt, Gte, Lt, Lte match against an ordered field.
	Gt  any
	Gte any
	Lt  any
	Lte any
}

// Query describes one page of a keyset-paginated scan.
type Query struct {
	// Cursor is the key of the last item of the previous page.
	// Empty for the first page.
	Cursor string
	// Limit caps the number of returned items. Zero or negative means no limit.
	Limit int32
	// Filter maps field names to predicates. Fields without a declared index
	// on the store are ignored, not an error.
	Filter map[string]Predicate
}

// Edge pairs an item with the cursor that resumes the scan immediately after it.
type Edge[T any] struct {
	Cursor string
	Node   T
}

// QueryResult is one page of a scan.
type QueryResult[T any] struct {
	// Cursor resumes the scan after the last returned item.
	// Nil iff no further page exists; otherwise it equals the key of the
	// last item in Items.
	Cursor *string
	Items  []T
	Edges  []Edge[T]
}
