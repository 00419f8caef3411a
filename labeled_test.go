/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package labelkit

import (
	"reflect"
	"testing"

	"github.com/suparena/labelkit/errors"
	"github.com/suparena/labelkit/registry"
	"github.com/suparena/labelkit/warnings"
)

func square(x int) int { return x * x }

func join(sep string, parts ...string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += sep
		}
		out += p
	}
	return out
}

// captureWarnings swaps the default sink for a buffered one for the
// duration of the test.
func captureWarnings(t *testing.T) *warnings.ChannelSink {
	t.Helper()
	sink := warnings.NewChannelSink(64)
	prev := warnings.SetDefault(sink)
	t.Cleanup(func() { warnings.SetDefault(prev) })
	return sink
}

func drain(sink *warnings.ChannelSink) []warnings.Event {
	var events []warnings.Event
	for {
		select {
		case e := <-sink.Events():
			events = append(events, e)
		default:
			return events
		}
	}
}

func TestRegisterDescribeOrder(t *testing.T) {
	captureWarnings(t)

	// Label order at registration does not matter; describe always walks
	// the bitmask from bit 0 upward
	l, err := Register(square, "idempotent", "deprecated", "pure")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	labels, err := l.Labels()
	if err != nil {
		t.Fatalf("Labels returned error: %v", err)
	}
	want := []string{"deprecated", "pure", "idempotent"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("Labels = %v, want %v", labels, want)
	}
}

func TestRegisterEmpty(t *testing.T) {
	sink := captureWarnings(t)

	l, err := Register(square)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	mask, err := registry.Default().Get(l)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if mask != 0 {
		t.Errorf("Empty label sequence should yield mask 0, got %d", mask)
	}

	labels, err := l.Labels()
	if err != nil {
		t.Fatalf("Labels returned error: %v", err)
	}
	if len(labels) != 0 {
		t.Errorf("Labels = %v, want empty", labels)
	}

	// Zero warnings, result unchanged
	if got := l.Fn(4); got != 16 {
		t.Errorf("Fn(4) = %d, want 16", got)
	}
	if events := drain(sink); len(events) != 0 {
		t.Errorf("Expected no warnings, got %d", len(events))
	}
}

func TestInstrumentedCallWarns(t *testing.T) {
	sink := captureWarnings(t)

	l, err := Register(square, "deprecated", "idempotent")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	drain(sink)

	if got := l.Fn(3); got != 9 {
		t.Errorf("Fn(3) = %d, want 9", got)
	}

	events := drain(sink)
	if len(events) != 2 {
		t.Fatalf("Expected 2 warnings, got %d", len(events))
	}

	// Ascending bit order with the fixed per-label messages
	if events[0].Label != "deprecated" || events[0].Message != "Function is deprecated." {
		t.Errorf("First warning = (%q, %q)", events[0].Label, events[0].Message)
	}
	if events[1].Label != "idempotent" || events[1].Message != "Function is idempotent." {
		t.Errorf("Second warning = (%q, %q)", events[1].Label, events[1].Message)
	}
	for _, e := range events {
		if e.Kind != warnings.KindLabel {
			t.Errorf("Warning kind = %q, want %q", e.Kind, warnings.KindLabel)
		}
		if e.Callable != "square" {
			t.Errorf("Warning callable = %q, want square", e.Callable)
		}
	}

	// Warnings repeat on every invocation
	l.Fn(5)
	if events := drain(sink); len(events) != 2 {
		t.Errorf("Second call should warn again, got %d warnings", len(events))
	}
}

func TestInstrumentedVariadic(t *testing.T) {
	captureWarnings(t)

	l, err := Register(join, "pure")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if got := l.Fn("-", "a", "b", "c"); got != "a-b-c" {
		t.Errorf(`Fn("-", "a", "b", "c") = %q, want "a-b-c"`, got)
	}
	if got := l.Fn(","); got != "" {
		t.Errorf(`Fn(",") = %q, want ""`, got)
	}
}

func TestInstrumentedPanicPropagates(t *testing.T) {
	captureWarnings(t)

	boom := func() { panic("boom") }
	l, err := Register(boom, "pure")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("Recovered %v, want boom", r)
		}
	}()
	l.Fn()
	t.Fatal("Fn should have panicked")
}

func TestRegisterValidation(t *testing.T) {
	captureWarnings(t)

	if _, err := Register(42, "pure"); !errors.IsInvalidArgument(err) {
		t.Errorf("Register(42) should return invalid argument, got %v", err)
	}

	var nilFn func()
	if _, err := Register(nilFn, "pure"); !errors.IsInvalidArgument(err) {
		t.Errorf("Register(nil func) should return invalid argument, got %v", err)
	}

	if _, err := Register(square, "volatile"); !errors.IsUnknownLabel(err) {
		t.Errorf("Register with unknown label should fail, got %v", err)
	}
}

func TestMustRegisterPanics(t *testing.T) {
	captureWarnings(t)

	defer func() {
		if recover() == nil {
			t.Error("MustRegister with unknown label should panic")
		}
	}()
	MustRegister(square, "volatile")
}

func TestRelabel(t *testing.T) {
	sink := captureWarnings(t)

	l, err := Register(square, "pure")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	drain(sink)

	if err := l.Relabel("deprecated", "idempotent"); err != nil {
		t.Fatalf("Relabel returned error: %v", err)
	}

	// Exactly one "already registered" notice
	events := drain(sink)
	if len(events) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(events))
	}
	if events[0].Kind != warnings.KindRegistration {
		t.Errorf("Warning kind = %q, want %q", events[0].Kind, warnings.KindRegistration)
	}
	if events[0].Message != "Callable (square) already registered." {
		t.Errorf("Warning message = %q", events[0].Message)
	}

	// Describe reflects only the latest registration
	labels, err := l.Labels()
	if err != nil {
		t.Fatalf("Labels returned error: %v", err)
	}
	if !reflect.DeepEqual(labels, []string{"deprecated", "idempotent"}) {
		t.Errorf("Labels after relabel = %v", labels)
	}

	if err := l.Relabel("nonsense"); !errors.IsUnknownLabel(err) {
		t.Errorf("Relabel with unknown label should fail, got %v", err)
	}
}

func TestRegisterDistinctIdentities(t *testing.T) {
	sink := captureWarnings(t)

	// Wrapping the same original twice creates two distinct identities,
	// so no "already registered" notice fires
	a, err := Register(square, "pure")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	b, err := Register(square, "deprecated")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if events := drain(sink); len(events) != 0 {
		t.Errorf("Fresh wrappers should not warn, got %d warnings", len(events))
	}

	la, _ := a.Labels()
	lb, _ := b.Labels()
	if reflect.DeepEqual(la, lb) {
		t.Errorf("Distinct wrappers share labels: %v", la)
	}
}

func TestCallableNamePreserved(t *testing.T) {
	captureWarnings(t)

	l, err := Register(square, "pure")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if l.CallableName() != "square" {
		t.Errorf("CallableName = %q, want square", l.CallableName())
	}

	// The display name surfaces in not-registered errors
	if err := registry.Default().Delete(l); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	_, err = l.Labels()
	if !errors.IsNotRegistered(err) {
		t.Fatalf("Expected not registered error, got %v", err)
	}
	if err.Error() != "callable (square) not in registry" {
		t.Errorf("Error should carry the original name, got %q", err.Error())
	}

	// A deleted wrapper warns about nothing
	sink := captureWarnings(t)
	if got := l.Fn(3); got != 9 {
		t.Errorf("Fn(3) = %d, want 9", got)
	}
	if events := drain(sink); len(events) != 0 {
		t.Errorf("Deleted wrapper should not warn, got %d warnings", len(events))
	}
}

func TestRegisterIn(t *testing.T) {
	captureWarnings(t)

	type privateScope struct{}
	reg := registry.For[privateScope]()

	l, err := RegisterIn(reg, square, "pure")
	if err != nil {
		t.Fatalf("RegisterIn returned error: %v", err)
	}

	if !reg.Contains(l) {
		t.Error("Wrapper should be registered in the explicit store")
	}
	if registry.Default().Contains(l) {
		t.Error("Wrapper should not leak into the default store")
	}

	if _, err := RegisterIn(nil, square, "pure"); !errors.IsInvalidArgument(err) {
		t.Errorf("RegisterIn(nil) should return invalid argument, got %v", err)
	}

	if l.Unwrap() == nil {
		t.Error("Unwrap should return the original function")
	}
}
