/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package labelkit

import (
	"iter"
	"reflect"

	"github.com/suparena/labelkit/errors"
	"github.com/suparena/labelkit/registry"
)

// Info returns the label names of a single callable from the default
// registry, ascending by bit index. It fails with a not-registered error
// for unknown callables and an invalid-argument error for non-callables.
func Info(clb any) ([]string, error) {
	return registry.Default().Describe(clb)
}

// InfoOr is Info with a fallback: an unregistered callable yields the
// fallback unchanged instead of an error. A non-callable argument still
// fails.
func InfoOr(clb any, fallback []string) ([]string, error) {
	labels, err := registry.Default().Describe(clb)
	if errors.IsNotRegistered(err) {
		return fallback, nil
	}
	return labels, err
}

// InfoMap scans a name-to-value mapping, filters for callables and returns
// the labels of the registered ones keyed by display name. Unregistered
// callables are silently omitted; absence is the expected case when
// scanning a whole namespace.
func InfoMap(vars map[string]any) map[string][]string {
	reg := registry.Default()
	info := make(map[string][]string)
	for _, item := range vars {
		if !registry.IsCallable(item) {
			continue
		}
		labels, err := reg.Describe(item)
		if err != nil {
			continue
		}
		info[registry.DisplayName(item)] = labels
	}
	return info
}

// InfoNamespace treats a value as a namespace: its exported methods and,
// for structs, its exported function-valued fields. The bindings are
// collected and delegated to InfoMap.
func InfoNamespace(ns any) map[string][]string {
	vars := make(map[string]any)

	v := reflect.ValueOf(ns)
	if !v.IsValid() {
		return map[string][]string{}
	}

	t := v.Type()
	for i := 0; i < t.NumMethod(); i++ {
		vars[t.Method(i).Name] = v.Method(i).Interface()
	}

	elem := v
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	if elem.Kind() == reflect.Struct {
		et := elem.Type()
		for i := 0; i < et.NumField(); i++ {
			f := et.Field(i)
			if !f.IsExported() {
				continue
			}
			fv := elem.Field(i)
			switch fv.Kind() {
			case reflect.Func, reflect.Interface, reflect.Pointer:
				if fv.IsNil() {
					continue
				}
				vars[f.Name] = fv.Interface()
			}
		}
	}

	return InfoMap(vars)
}

// InfoSeq scans an arbitrary sequence, filters for callables and returns
// the labels of the registered ones keyed by the callable value itself,
// since a bare sequence carries no name association. Unregistered callables
// are silently omitted.
func InfoSeq(items iter.Seq[any]) map[any][]string {
	reg := registry.Default()
	info := make(map[any][]string)
	for item := range items {
		if !registry.IsCallable(item) {
			continue
		}
		labels, err := reg.Describe(item)
		if err != nil {
			continue
		}
		info[item] = labels
	}
	return info
}
