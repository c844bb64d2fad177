/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the DataStore
// interface for testing
package mock

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/suparena/relstore/errors"
	"github.com/suparena/relstore/storagemodels"
)

// DataStore is a mock implementation of datastore.DataStore[T] for testing.
// Keys are kept in lexicographic order so keyset pagination behaves like the
// real store. Filters are not interpreted unless a matcher is configured via
// WithFilterMatcher.
type DataStore[T any] struct {
	mu            sync.RWMutex
	data          map[string]T
	getKeyFunc    func(T) string
	filterMatcher func(item T, filter map[string]storagemodels.Predicate) bool
	createError   error
	updateError   error
	putError      error
	findError     error
}

// New creates a new mock DataStore; keyFn extracts the primary key from an item
func New[T any](keyFn func(T) string) *DataStore[T] {
	return &DataStore[T]{
		data:       make(map[string]T),
		getKeyFunc: keyFn,
	}
}

// WithFilterMatcher makes Find and Stream honor query filters via the given matcher
func (m *DataStore[T]) WithFilterMatcher(f func(item T, filter map[string]storagemodels.Predicate) bool) *DataStore[T] {
	m.filterMatcher = f
	return m
}

// WithCreateError makes Create operations return an error
func (m *DataStore[T]) WithCreateError(err error) *DataStore[T] {
	m.createError = err
	return m
}

// WithUpdateError makes Update operations return an error
func (m *DataStore[T]) WithUpdateError(err error) *DataStore[T] {
	m.updateError = err
	return m
}

// WithPutError makes Put operations return an error
func (m *DataStore[T]) WithPutError(err error) *DataStore[T] {
	m.putError = err
	return m
}

// WithFindError makes Find operations return an error
func (m *DataStore[T]) WithFindError(err error) *DataStore[T] {
	m.findError = err
	return m
}

// Get retrieves an item by key; absent keys yield nil, nil
func (m *DataStore[T]) Get(ctx context.Context, key string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if item, exists := m.data[key]; exists {
		return &item, nil
	}
	return nil, nil
}

// GetMany retrieves items positionally aligned to keys
func (m *DataStore[T]) GetMany(ctx context.Context, keys []string) ([]*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]*T, len(keys))
	for i, k := range keys {
		if item, exists := m.data[k]; exists {
			item := item
			results[i] = &item
		}
	}
	return results, nil
}

// Create stores a new item; an existing key fails like a constraint violation
func (m *DataStore[T]) Create(ctx context.Context, item T) error {
	if m.createError != nil {
		return m.createError
	}

	key, err := m.extractKey(item)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; exists {
		var zero T
		return errors.NewAlreadyExistsError(fmt.Sprintf("%T", zero), key)
	}
	m.data[key] = item
	return nil
}

// Update overwrites an existing item; a no-op when the key is absent
func (m *DataStore[T]) Update(ctx context.Context, item T) error {
	if m.updateError != nil {
		return m.updateError
	}

	key, err := m.extractKey(item)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; exists {
		m.data[key] = item
	}
	return nil
}

// Put inserts or overwrites
func (m *DataStore[T]) Put(ctx context.Context, item T) error {
	if m.putError != nil {
		return m.putError
	}

	key, err := m.extractKey(item)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = item
	return nil
}

// Find returns one page of the keyset scan over the in-memory data
func (m *DataStore[T]) Find(ctx context.Context, query *storagemodels.Query) (*storagemodels.QueryResult[T], error) {
	if m.findError != nil {
		return nil, m.findError
	}
	if query == nil {
		query = &storagemodels.Query{}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		if query.Cursor != "" && k <= query.Cursor {
			continue
		}
		if len(query.Filter) > 0 && m.filterMatcher != nil && !m.filterMatcher(m.data[k], query.Filter) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	more := query.Limit > 0 && int32(len(keys)) > query.Limit
	if more {
		keys = keys[:query.Limit]
	}

	result := &storagemodels.QueryResult[T]{}
	for _, k := range keys {
		item := m.data[k]
		result.Items = append(result.Items, item)
		result.Edges = append(result.Edges, storagemodels.Edge[T]{Cursor: k, Node: item})
	}
	if more {
		last := keys[len(keys)-1]
		result.Cursor = &last
	}
	return result, nil
}

// Stream pages through Find until exhaustion
func (m *DataStore[T]) Stream(ctx context.Context, query *storagemodels.Query, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan storagemodels.StreamResult[T], options.BufferSize)
	go func() {
		defer close(resultCh)

		var base storagemodels.Query
		if query != nil {
			base = *query
		}
		cursor := base.Cursor

		var index int64
		page := 0
		for {
			res, err := m.Find(ctx, &storagemodels.Query{
				Cursor: cursor,
				Limit:  options.PageSize,
				Filter: base.Filter,
			})
			if err != nil {
				resultCh <- storagemodels.StreamResult[T]{Error: err}
				return
			}
			page++
			for _, edge := range res.Edges {
				result := storagemodels.StreamResult[T]{
					Item: edge.Node,
					Key:  edge.Cursor,
					Meta: storagemodels.StreamMeta{Index: index, PageNumber: page, Timestamp: time.Now()},
				}
				index++
				select {
				case <-ctx.Done():
					return
				case resultCh <- result:
				}
			}
			if res.Cursor == nil {
				return
			}
			cursor = *res.Cursor
		}
	}()
	return resultCh
}

// Setup initializes the in-memory table
func (m *DataStore[T]) Setup(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]T)
	}
	return nil
}

// Teardown drops the in-memory table
func (m *DataStore[T]) Teardown(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}

// Clear removes every item
func (m *DataStore[T]) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]T)
	return nil
}

// Len returns the number of stored items (test helper)
func (m *DataStore[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *DataStore[T]) extractKey(item T) (string, error) {
	if m.getKeyFunc == nil {
		return "", errors.NewValidationError("key", "no key function configured")
	}
	key := m.getKeyFunc(item)
	if key == "" {
		return "", errors.NewValidationError("key", "unable to extract key from item")
	}
	return key, nil
}
