/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package rds

import (
	"context"

	"github.com/suparena/relstore/storagemodels"
)

// FindBuilder provides a fluent interface for building Find queries
type FindBuilder[T any] struct {
	store *RdsDataStore[T]
	query storagemodels.Query
}

// NewFind creates a new find builder
func (d *RdsDataStore[T]) NewFind() *FindBuilder[T] {
	return &FindBuilder[T]{
		store: d,
		query: storagemodels.Query{
			Filter: make(map[string]storagemodels.Predicate),
		},
	}
}

// StartAfter resumes the scan after the given key
func (b *FindBuilder[T]) StartAfter(cursor string) *FindBuilder[T] {
	b.query.Cursor = cursor
	return b
}

// WithLimit caps the page size
func (b *FindBuilder[T]) WithLimit(limit int32) *FindBuilder[T] {
	b.query.Limit = limit
	return b
}

func (b *FindBuilder[T]) predicate(field string, set func(*storagemodels.Predicate)) *FindBuilder[T] {
	p := b.query.Filter[field]
	set(&p)
	b.query.Filter[field] = p
	return b
}

// WhereEq filters on field equality
func (b *FindBuilder[T]) WhereEq(field string, value any) *FindBuilder[T] {
	return b.predicate(field, func(p *storagemodels.Predicate) { p.Eq = value })
}

// WhereNe filters on field inequality
func (b *FindBuilder[T]) WhereNe(field string, value any) *FindBuilder[T] {
	return b.predicate(field, func(p *storagemodels.Predicate) { p.Ne = value })
}

// WhereIn filters on field membership; value order is preserved in the statement
func (b *FindBuilder[T]) WhereIn(field string, values ...any) *FindBuilder[T] {
	return b.predicate(field, func(p *storagemodels.Predicate) { p.In = values })
}

// WhereGreaterThan filters an ordered field with >
func (b *FindBuilder[T]) WhereGreaterThan(field string, value any) *FindBuilder[T] {
	return b.predicate(field, func(p *storagemodels.Predicate) { p.Gt = value })
}

// WhereGreaterOrEqual filters an ordered field with >=
func (b *FindBuilder[T]) WhereGreaterOrEqual(field string, value any) *FindBuilder[T] {
	return b.predicate(field, func(p *storagemodels.Predicate) { p.Gte = value })
}

// WhereLessThan filters an ordered field with <
func (b *FindBuilder[T]) WhereLessThan(field string, value any) *FindBuilder[T] {
	return b.predicate(field, func(p *storagemodels.Predicate) { p.Lt = value })
}

// WhereLessOrEqual filters an ordered field with <=
func (b *FindBuilder[T]) WhereLessOrEqual(field string, value any) *FindBuilder[T] {
	return b.predicate(field, func(p *storagemodels.Predicate) { p.Lte = value })
}

// Build returns the accumulated query
func (b *FindBuilder[T]) Build() *storagemodels.Query {
	query := b.query
	return &query
}

// Execute runs one page of the query
func (b *FindBuilder[T]) Execute(ctx context.Context) (*storagemodels.QueryResult[T], error) {
	return b.store.Find(ctx, b.Build())
}

// Stream executes the query as a stream over all remaining pages
func (b *FindBuilder[T]) Stream(ctx context.Context, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	return b.store.Stream(ctx, b.Build(), opts...)
}
