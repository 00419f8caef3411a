/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package checks

import (
	"fmt"
	"reflect"
	"slices"
	"testing"
)

// PropertySet declares the expected attribute access surface of an object.
// Each role lists attribute names claimed to support that access; an
// attribute may appear in several roles. Layout, when non-nil, is the
// expected fixed attribute layout; nil means the object is expected to
// permit arbitrary dynamic attributes instead.
type PropertySet struct {
	Gettable  []string
	Settable  []string
	Deletable []string
	Layout    []string
}

// Properties asserts the attribute access surface of obj. Structs (and
// struct pointers) are fixed-layout objects: Layout must list exactly their
// field names in declaration order. String-keyed maps are dynamic-attribute
// objects: Layout must be nil. Access failures only fail the check when the
// attribute claimed the corresponding role; checks on unclaimed roles are
// attempted but tolerated.
func Properties(tb testing.TB, obj any, want PropertySet) {
	tb.Helper()
	if err := checkProperties(obj, want); err != nil {
		tb.Fatal(err)
	}
}

func checkProperties(obj any, want PropertySet) error {
	v := reflect.ValueOf(obj)
	if !v.IsValid() {
		return fmt.Errorf("object must not be nil")
	}

	elem := v
	if elem.Kind() == reflect.Pointer {
		if elem.IsNil() {
			return fmt.Errorf("object must not be nil")
		}
		elem = elem.Elem()
	}

	switch elem.Kind() {
	case reflect.Struct:
		if want.Layout == nil {
			return fmt.Errorf("object has a fixed attribute layout but dynamic attributes were expected")
		}
		names := fieldNames(elem.Type())
		if !slices.Equal(names, want.Layout) {
			return fmt.Errorf("fixed layout mismatch: got %v, want %v", names, want.Layout)
		}
	case reflect.Map:
		if elem.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("attribute maps must be keyed by string, got %s", elem.Type().Key())
		}
		if want.Layout != nil {
			return fmt.Errorf("object permits dynamic attributes but fixed layout %v was expected", want.Layout)
		}
	default:
		return fmt.Errorf("object must be a struct, struct pointer or string-keyed map, got %T", obj)
	}

	for _, name := range union(want.Gettable, want.Settable, want.Deletable) {
		if err := checkAttribute(elem, name, want); err != nil {
			return err
		}
	}
	return nil
}

func checkAttribute(elem reflect.Value, name string, want PropertySet) error {
	claimed := func(role []string) bool { return slices.Contains(role, name) }

	if elem.Kind() == reflect.Map {
		key := reflect.ValueOf(name).Convert(elem.Type().Key())
		val := elem.MapIndex(key)
		if !val.IsValid() {
			return fmt.Errorf("attribute %q does not exist", name)
		}
		// Map entries are always readable and writable; write back the
		// just-read value, then delete the entry.
		elem.SetMapIndex(key, val)
		elem.SetMapIndex(key, reflect.Value{})
		return nil
	}

	sf, ok := elem.Type().FieldByName(name)
	if !ok {
		return fmt.Errorf("attribute %q does not exist", name)
	}
	fv := elem.FieldByIndex(sf.Index)

	// Read
	if !sf.IsExported() {
		if claimed(want.Gettable) {
			return fmt.Errorf("attribute %q is unreadable but was claimed gettable", name)
		}
		if claimed(want.Settable) {
			return fmt.Errorf("attribute %q is unwritable but was claimed settable", name)
		}
	} else {
		// Write the just-read value back
		if fv.CanSet() {
			fv.Set(reflect.ValueOf(fv.Interface()))
		} else if claimed(want.Settable) {
			return fmt.Errorf("attribute %q is unwritable but was claimed settable", name)
		}
	}

	// Struct fields can never be deleted
	if claimed(want.Deletable) {
		return fmt.Errorf("attribute %q cannot be deleted but was claimed deletable", name)
	}
	return nil
}

// fieldNames returns the struct's field names in declaration order,
// unexported fields included since they are part of the fixed layout.
func fieldNames(t reflect.Type) []string {
	names := make([]string, t.NumField())
	for i := range names {
		names[i] = t.Field(i).Name
	}
	return names
}

// union merges the role sets preserving first-appearance order.
func union(roles ...[]string) []string {
	var merged []string
	for _, role := range roles {
		for _, name := range role {
			if !slices.Contains(merged, name) {
				merged = append(merged, name)
			}
		}
	}
	return merged
}
