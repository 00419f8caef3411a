/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"iter"
	"math/bits"
	"reflect"
	"runtime"
	"strings"
	"sync"

	"github.com/suparena/labelkit/errors"
)

// Named is implemented by callables that carry a display name, such as the
// instrumented wrappers produced by labelkit. The name is used in error
// messages and name-keyed lookups.
type Named interface {
	CallableName() string
}

// Registry is an identity-keyed store mapping a callable to the Bitmask of
// its active labels. Keys must be comparable values; instrumented wrapper
// pointers are the intended keys. Individual operations are guarded, but
// compound read-modify-write sequences must be serialized by the caller.
type Registry struct {
	mu      sync.RWMutex
	entries map[any]Bitmask
	order   []any
}

// New creates an independent, empty Registry.
func New() *Registry {
	return &Registry{
		entries: make(map[any]Bitmask),
	}
}

// Get returns the bitmask stored for the given callable identity.
func (r *Registry) Get(clb any) (Bitmask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !isComparable(clb) {
		return 0, errors.NewNotRegisteredError(DisplayName(clb))
	}
	mask, ok := r.entries[clb]
	if !ok {
		return 0, errors.NewNotRegisteredError(DisplayName(clb))
	}
	return mask, nil
}

// Set inserts or overwrites the entry for the exact callable identity.
// Every set bit of mask must correspond to a defined label ordinal.
// Emitting any "already registered" notice is the caller's responsibility.
func (r *Registry) Set(clb any, mask Bitmask) error {
	if clb == nil {
		return errors.NewInvalidArgumentError("clb must not be nil")
	}
	if !isComparable(clb) {
		return errors.NewInvalidArgumentError("callable identity must be comparable")
	}
	if !mask.Valid() {
		return errors.NewUnknownOrdinalError(bits.Len64(uint64(mask)) - 1)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[clb]; !exists {
		r.order = append(r.order, clb)
	}
	r.entries[clb] = mask
	return nil
}

// Delete removes the entry for the given callable identity.
func (r *Registry) Delete(clb any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !isComparable(clb) {
		return errors.NewNotRegisteredError(DisplayName(clb))
	}
	if _, ok := r.entries[clb]; !ok {
		return errors.NewNotRegisteredError(DisplayName(clb))
	}
	delete(r.entries, clb)
	for i, k := range r.order {
		if k == clb {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Contains reports whether the callable identity has an entry.
func (r *Registry) Contains(clb any) bool {
	_, err := r.Get(clb)
	return err == nil
}

// Callables returns a lazy, restartable sequence of all registered
// callables in insertion order.
func (r *Registry) Callables() iter.Seq[any] {
	return func(yield func(any) bool) {
		r.mu.RLock()
		snapshot := make([]any, len(r.order))
		copy(snapshot, r.order)
		r.mu.RUnlock()

		for _, clb := range snapshot {
			if !yield(clb) {
				return
			}
		}
	}
}

// Len returns the number of registered callables.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Describe decodes the stored bitmask of the given callable into canonical
// label names, ordered by ascending bit index.
func (r *Registry) Describe(clb any) ([]string, error) {
	if !IsCallable(clb) {
		return nil, errors.NewInvalidArgumentError("clb must be callable")
	}
	mask, err := r.Get(clb)
	if err != nil {
		return nil, err
	}
	return mask.Names(), nil
}

// IsCallable reports whether v can be invoked: a func value or an
// instrumented wrapper implementing Named.
func IsCallable(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(Named); ok {
		return true
	}
	return reflect.ValueOf(v).Kind() == reflect.Func
}

// DisplayName returns the best available display name for a callable:
// its Named name, the base name of a func value, or "".
func DisplayName(clb any) string {
	if clb == nil {
		return ""
	}
	if n, ok := clb.(Named); ok {
		return n.CallableName()
	}
	v := reflect.ValueOf(clb)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return ""
	}
	return baseFuncName(fn.Name())
}

// baseFuncName trims the package path and method suffixes from a
// runtime function name, e.g. "pkg/path.Square" -> "Square".
func baseFuncName(full string) string {
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	if i := strings.LastIndex(full, "."); i >= 0 {
		full = full[i+1:]
	}
	return strings.TrimSuffix(full, "-fm")
}

// isComparable reports whether v may be used as a map key. Raw func values
// are not comparable and therefore can never hold a registry entry.
func isComparable(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Comparable()
}
