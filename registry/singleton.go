/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
)

// Each concrete type requesting a registry gets its own shared instance.
// Construction is idempotent: repeated calls for the same type always yield
// the identical backing store.

var (
	instances  = make(map[reflect.Type]*Registry)
	instanceMu sync.RWMutex
)

// defaultScope is the requesting type behind Default.
type defaultScope struct{}

// For returns the shared Registry instance for the requesting type T,
// creating it lazily on first use. Distinct requesting types get
// independent stores.
func For[T any]() *Registry {
	t := reflect.TypeOf((*T)(nil)).Elem()

	instanceMu.RLock()
	r, ok := instances[t]
	instanceMu.RUnlock()
	if ok {
		return r
	}

	instanceMu.Lock()
	defer instanceMu.Unlock()
	if r, ok := instances[t]; ok {
		return r
	}
	r = New()
	instances[t] = r
	return r
}

// Default returns the process-wide registry used by the labelkit package
// level functions.
func Default() *Registry {
	return For[defaultScope]()
}
