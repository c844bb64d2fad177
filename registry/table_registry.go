/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
)

// tableRegistry maps Go types to the SQL table their items persist in.

var (
	tableRegistry = make(map[reflect.Type]string)
	mu            sync.RWMutex
)

// RegisterTableName associates a Go type T with its table name.
// Registration happens once during initialization; stores resolve the name
// at construction time, never per call.
func RegisterTableName[T any](name string) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	tableRegistry[t] = name
}

// TableNameFor retrieves the registered table name for type T, if any.
func TableNameFor[T any]() (string, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	name, ok := tableRegistry[t]
	return name, ok
}
