/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/relstore/storagemodels"
)

// DataStore is the storage-agnostic contract for one logical table of items
// of type T. Implementations issue exactly one backend request per call and
// are safe for concurrent use.
type DataStore[T any] interface {
	// Get returns the item stored under key, or nil when no such row exists.
	// An absent key is not an error.
	Get(ctx context.Context, key string) (*T, error)

	// GetMany returns one entry per requested key, positionally aligned to
	// keys. Entries for unmatched keys are nil. A single statement serves
	// the whole batch.
	GetMany(ctx context.Context, keys []string) ([]*T, error)

	// Create inserts a new item. A duplicate key surfaces the backend's
	// constraint failure unmodified; Create never overwrites.
	Create(ctx context.Context, item T) error

	// Update overwrites the stored item and all index columns for the
	// matching key. It is a no-op when the key is absent; it never inserts.
	Update(ctx context.Context, item T) error

	// Put inserts or, on key conflict, overwrites in a single atomic
	// statement. Repeated calls with the same item are idempotent.
	Put(ctx context.Context, item T) error

	// Find runs one page of a keyset-paginated scan.
	Find(ctx context.Context, query *storagemodels.Query) (*storagemodels.QueryResult[T], error)

	// Stream pages through Find in the background until the scan is
	// exhausted, the context is canceled, or a page fails.
	Stream(ctx context.Context, query *storagemodels.Query, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]

	// Setup creates the backing table, Teardown drops it, Clear deletes
	// every row while keeping the table.
	Setup(ctx context.Context) error
	Teardown(ctx context.Context) error
	Clear(ctx context.Context) error
}
