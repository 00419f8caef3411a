/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package checks

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"testing"
)

// Spec is the full declared parameter surface of a callable. Go reflection
// exposes parameter and result types but not parameter names, defaults or
// keyword-only structure, so those are captured explicitly at definition
// time; Annotations carry resolved reflect.Types rather than type text.
type Spec struct {
	// Annotations maps declared parameter names to their resolved types.
	Annotations map[string]reflect.Type
	// Args lists the positional parameter names in order.
	Args []string
	// Defaults holds default values for the trailing positional parameters.
	Defaults []any
	// VarArgs names the variadic positional capture, "" when absent.
	VarArgs string
	// VarKw names the variadic keyword capture, "" when absent.
	VarKw string
	// KwOnlyArgs lists the keyword-only parameter names in order.
	KwOnlyArgs []string
	// KwDefaults holds default values for keyword-only parameters.
	KwDefaults map[string]any
}

// Declarer exposes a callable's declared signature.
type Declarer interface {
	Declare() Spec
}

// DeclaredFunc binds a function value to its declared signature.
type DeclaredFunc struct {
	fn   any
	spec Spec
}

// Declare validates a declared signature against fn and binds the two.
// Validation covers internal consistency of the declaration and the parts
// reflection can corroborate: positional annotations must equal the actual
// parameter types at the same position, and a variadic function must
// declare a variadic positional capture.
func Declare(fn any, spec Spec) (*DeclaredFunc, error) {
	if fn == nil {
		return nil, fmt.Errorf("fn must be a function, got nil")
	}
	t := reflect.TypeOf(fn)
	if t.Kind() != reflect.Func {
		return nil, fmt.Errorf("fn must be a function, got %T", fn)
	}

	if len(spec.Defaults) > len(spec.Args) {
		return nil, fmt.Errorf("%d defaults declared for %d positional args", len(spec.Defaults), len(spec.Args))
	}

	declared := slices.Concat(spec.Args, spec.KwOnlyArgs)
	if spec.VarArgs != "" {
		declared = append(declared, spec.VarArgs)
	}
	if spec.VarKw != "" {
		declared = append(declared, spec.VarKw)
	}
	for name := range spec.Annotations {
		if !slices.Contains(declared, name) {
			return nil, fmt.Errorf("annotation for undeclared parameter %q", name)
		}
	}
	for name := range spec.KwDefaults {
		if !slices.Contains(spec.KwOnlyArgs, name) {
			return nil, fmt.Errorf("keyword default for undeclared keyword-only parameter %q", name)
		}
	}

	if t.IsVariadic() && spec.VarArgs == "" {
		return nil, fmt.Errorf("variadic function must declare a variadic positional capture")
	}

	positional := t.NumIn()
	if t.IsVariadic() {
		positional--
	}
	for i, name := range spec.Args {
		if i >= positional {
			break
		}
		if ann, ok := spec.Annotations[name]; ok && ann != t.In(i) {
			return nil, fmt.Errorf("annotation for %q resolves to %s, actual parameter type is %s", name, ann, t.In(i))
		}
	}

	return &DeclaredFunc{fn: fn, spec: spec}, nil
}

// MustDeclare is Declare but panics on failure.
func MustDeclare(fn any, spec Spec) *DeclaredFunc {
	d, err := Declare(fn, spec)
	if err != nil {
		panic(fmt.Sprintf("checks: %v", err))
	}
	return d
}

// Declare returns the declared signature.
func (d *DeclaredFunc) Declare() Spec {
	return d.spec
}

// Func returns the underlying function value.
func (d *DeclaredFunc) Func() any {
	return d.fn
}

// Signature asserts that the callable's declared signature equals want on
// every field. The first mismatch fails naming that field.
func Signature(tb testing.TB, clb Declarer, want Spec) {
	tb.Helper()
	if err := checkSignature(clb, want); err != nil {
		tb.Fatal(err)
	}
}

func checkSignature(clb Declarer, want Spec) error {
	if clb == nil {
		return fmt.Errorf("clb must not be nil")
	}
	got := clb.Declare()

	if !maps.Equal(got.Annotations, want.Annotations) {
		return mismatch("annotations", got.Annotations, want.Annotations)
	}
	if !slices.Equal(got.Args, want.Args) {
		return mismatch("args", got.Args, want.Args)
	}
	if !reflect.DeepEqual(got.Defaults, want.Defaults) {
		return mismatch("defaults", got.Defaults, want.Defaults)
	}
	if got.VarArgs != want.VarArgs {
		return mismatch("varargs", got.VarArgs, want.VarArgs)
	}
	if got.VarKw != want.VarKw {
		return mismatch("varkw", got.VarKw, want.VarKw)
	}
	if !slices.Equal(got.KwOnlyArgs, want.KwOnlyArgs) {
		return mismatch("kwonlyargs", got.KwOnlyArgs, want.KwOnlyArgs)
	}
	if !reflect.DeepEqual(got.KwDefaults, want.KwDefaults) {
		return mismatch("kwonlydefaults", got.KwDefaults, want.KwDefaults)
	}
	return nil
}

func mismatch(field string, got, want any) error {
	return fmt.Errorf("signature mismatch on %s: got %v, want %v", field, got, want)
}
