/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rds

import (
	"github.com/aws/aws-sdk-go-v2/service/rdsdata/types"
	"github.com/suparena/relstore/storagemodels"
)

// Index binds one secondary field's extraction, wire encoding, declared
// column type, and filter-clause generation. Create/Update/Put, Find and
// Setup all consume the same descriptor collection, so the written columns,
// the schema columns and the filterable columns cannot drift apart.
//
// Descriptors are built once, at store construction, from a small closed set
// of variants (Exact, Ordered); they are immutable afterwards.
type Index[T any] interface {
	// Column is the SQL column the field is stored in, and the name queries
	// filter it by.
	Column() string

	// ColumnType is the schema type Setup declares the column with.
	ColumnType() string

	// Value extracts the field from an item and encodes it for binding.
	Value(item T) types.Field

	// Clauses resolves the predicate's active comparators into SQL fragments.
	// Comparators outside the variant's set contribute nothing.
	Clauses(p storagemodels.Predicate) ([]Clause, error)
}

type exactIndex[T, V any] struct {
	column string
	pick   func(T) V
	codec  Codec[V]
}

// Exact declares an exact-match index: filterable with eq, ne and in.
func Exact[T, V any](column string, pick func(T) V, codec Codec[V]) Index[T] {
	return exactIndex[T, V]{column: column, pick: pick, codec: codec}
}

func (i exactIndex[T, V]) Column() string     { return i.column }
func (i exactIndex[T, V]) ColumnType() string { return i.codec.sqlType }

func (i exactIndex[T, V]) Value(item T) types.Field {
	return i.codec.encode(i.pick(item))
}

func (i exactIndex[T, V]) Clauses(p storagemodels.Predicate) ([]Clause, error) {
	return exactClauses(i.column, i.codec.encodeAny, p)
}

type orderedIndex[T, V any] struct {
	column string
	pick   func(T) V
	codec  Codec[V]
}

// Ordered declares an index over a totally ordered field: filterable with
// eq, ne, in, gt, gte, lt and lte.
func Ordered[T, V any](column string, pick func(T) V, codec Codec[V]) Index[T] {
	return orderedIndex[T, V]{column: column, pick: pick, codec: codec}
}

func (i orderedIndex[T, V]) Column() string     { return i.column }
func (i orderedIndex[T, V]) ColumnType() string { return i.codec.sqlType }

func (i orderedIndex[T, V]) Value(item T) types.Field {
	return i.codec.encode(i.pick(item))
}

func (i orderedIndex[T, V]) Clauses(p storagemodels.Predicate) ([]Clause, error) {
	return orderedClauses(i.column, i.codec.encodeAny, p)
}
