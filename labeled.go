/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package labelkit

import (
	"fmt"
	"reflect"

	"github.com/suparena/labelkit/errors"
	"github.com/suparena/labelkit/registry"
	"github.com/suparena/labelkit/warnings"
)

// Labeled is an instrumented callable: a wrapper holding a reference to the
// original function and acting as the identity under which its label bitmask
// is stored. Invoke the callable through Fn; every invocation reads the
// current bitmask from the registry and emits one warning per active label,
// in ascending bit order, before delegating to the original.
type Labeled[F any] struct {
	// Fn is the instrumented function. It has the same signature as the
	// original and returns its results unchanged.
	Fn F

	orig F
	name string
	reg  *registry.Registry
}

// Register instruments fn with the given label names and registers it in
// the default registry. The registered bitmask is the bitwise OR of the bit
// values of every name; an unknown name fails the registration.
func Register[F any](fn F, names ...string) (*Labeled[F], error) {
	return RegisterIn(registry.Default(), fn, names...)
}

// RegisterIn is Register against an explicit registry instance.
func RegisterIn[F any](reg *registry.Registry, fn F, names ...string) (*Labeled[F], error) {
	if reg == nil {
		return nil, errors.NewInvalidArgumentError("reg must not be nil")
	}
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, errors.NewInvalidArgumentError("fn must be a non-nil function")
	}
	mask, err := registry.MaskOf(names...)
	if err != nil {
		return nil, err
	}

	l := &Labeled[F]{
		orig: fn,
		name: registry.DisplayName(fn),
		reg:  reg,
	}
	l.Fn = l.instrument(fv)
	if err := l.register(mask); err != nil {
		return nil, err
	}
	return l, nil
}

// MustRegister is Register but panics on failure. Intended for package-level
// instrumentation at definition time.
func MustRegister[F any](fn F, names ...string) *Labeled[F] {
	l, err := Register(fn, names...)
	if err != nil {
		panic(fmt.Sprintf("labelkit: %v", err))
	}
	return l
}

// register stores the mask under the wrapper's identity, emitting the
// non-fatal "already registered" notice when the identity is already present.
func (l *Labeled[F]) register(mask registry.Bitmask) error {
	if l.reg.Contains(l) {
		warnings.Emit(warnings.New(
			warnings.KindRegistration, l.name, "",
			fmt.Sprintf("Callable (%s) already registered.", l.name),
		))
	}
	return l.reg.Set(l, mask)
}

// instrument builds the wrapping function. At every invocation it consults
// the registry for the wrapper's current bitmask, warns per active label,
// then calls the original with the same arguments, propagating results and
// panics unchanged.
func (l *Labeled[F]) instrument(fv reflect.Value) F {
	variadic := fv.Type().IsVariadic()
	wrapped := reflect.MakeFunc(fv.Type(), func(args []reflect.Value) []reflect.Value {
		l.warn()
		if variadic {
			return fv.CallSlice(args)
		}
		return fv.Call(args)
	})
	return wrapped.Interface().(F)
}

// warn emits one event per active label, ascending by bit index. A wrapper
// that has been deleted from its registry warns about nothing.
func (l *Labeled[F]) warn() {
	mask, err := l.reg.Get(l)
	if err != nil {
		return
	}
	for _, label := range mask.Labels() {
		warnings.Emit(warnings.New(warnings.KindLabel, l.name, label.String(), label.Message()))
	}
}

// Relabel re-registers the same callable identity with a new label set,
// overwriting the previous bitmask. Since the identity is already present
// this emits exactly one "already registered" notice.
func (l *Labeled[F]) Relabel(names ...string) error {
	mask, err := registry.MaskOf(names...)
	if err != nil {
		return err
	}
	return l.register(mask)
}

// CallableName returns the original callable's display name.
func (l *Labeled[F]) CallableName() string {
	return l.name
}

// Labels returns the wrapper's label names, ascending by bit index.
func (l *Labeled[F]) Labels() ([]string, error) {
	return l.reg.Describe(l)
}

// Unwrap returns the original, uninstrumented function.
func (l *Labeled[F]) Unwrap() F {
	return l.orig
}
