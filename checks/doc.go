/*
Package checks provides structural assertion primitives for tests.

The package is independent of the label registry; the two checks verify the
shape of objects and callables, not their labels.

Property Checker:
Asserts an object's attribute access surface against role-labelled name
sets, plus its attribute layout:

	checks.Properties(t, &point{X: 1}, checks.PropertySet{
	    Gettable: []string{"X"},
	    Settable: []string{"X"},
	    Layout:   []string{"X"},
	})

A struct is a fixed-layout object and Layout must match its field names
exactly; a string-keyed map permits dynamic attributes and Layout must be
nil. Access failures only count against roles the attribute claimed.

Signature Checker:
Asserts a callable's full declared parameter surface field by field. Go
reflection cannot recover parameter names, defaults or keyword-only
structure, so the declaration is captured at definition time and
cross-checked against what reflection does expose:

	clamp := checks.MustDeclare(
	    func(x, lo int, rest ...int) int { ... },
	    checks.Spec{
	        Args:        []string{"x", "lo"},
	        Defaults:    []any{0},
	        VarArgs:     "rest",
	        Annotations: map[string]reflect.Type{"x": reflect.TypeOf(0)},
	    },
	)

	checks.Signature(t, clamp, wantSpec)

Any single mismatching field fails the assertion naming that field.
*/
package checks
