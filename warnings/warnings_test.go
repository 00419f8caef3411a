/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package warnings

import (
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewEvent(t *testing.T) {
	event := New(KindLabel, "Square", "pure", "Function is pure.")

	if event.ID == "" {
		t.Error("Event should carry a generated ID")
	}
	if event.Kind != KindLabel {
		t.Errorf("Kind = %q, want %q", event.Kind, KindLabel)
	}
	if event.Callable != "Square" || event.Label != "pure" {
		t.Errorf("Event fields = (%q, %q), want (Square, pure)", event.Callable, event.Label)
	}
	if time.Time(event.Timestamp).IsZero() {
		t.Error("Event should carry a timestamp")
	}
}

func TestEventIDsUnique(t *testing.T) {
	a := New(KindLabel, "F", "pure", "Function is pure.")
	b := New(KindLabel, "F", "pure", "Function is pure.")
	if a.ID == b.ID {
		t.Error("Two events should not share an ID")
	}
}

func TestWriterSink(t *testing.T) {
	var sb strings.Builder
	sink := NewWriterSink(&sb)

	sink.Emit(New(KindLabel, "Square", "deprecated", "Function is deprecated."))
	sink.Emit(New(KindRegistration, "", "", "Callable (Square) already registered."))

	out := sb.String()
	if !strings.Contains(out, "labelkit: Square: Function is deprecated.") {
		t.Errorf("Missing label line in output: %q", out)
	}
	if !strings.Contains(out, "labelkit: Callable (Square) already registered.") {
		t.Errorf("Missing registration line in output: %q", out)
	}
}

func TestChannelSink(t *testing.T) {
	sink := NewChannelSink(2)

	sink.Emit(New(KindLabel, "F", "pure", "Function is pure."))
	sink.Emit(New(KindLabel, "F", "idempotent", "Function is idempotent."))

	// Buffer is full; the third event is dropped, not blocked on
	sink.Emit(New(KindLabel, "F", "deprecated", "Function is deprecated."))

	if got := sink.Dropped(); got != 1 {
		t.Errorf("Dropped = %d, want 1", got)
	}

	first := <-sink.Events()
	if first.Label != "pure" {
		t.Errorf("First buffered event label = %q, want pure", first.Label)
	}
}

func TestLoggerSink(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	sink := NewLoggerSink(zap.New(core))

	sink.Emit(New(KindLabel, "Square", "pure", "Function is pure."))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Message != "Function is pure." {
		t.Errorf("Log message = %q, want the fixed label message", entries[0].Message)
	}
	fields := entries[0].ContextMap()
	if fields["callable"] != "Square" {
		t.Errorf("callable field = %v, want Square", fields["callable"])
	}
}

func TestLoggerSinkNilLogger(t *testing.T) {
	// Must not panic
	NewLoggerSink(nil).Emit(New(KindLabel, "F", "pure", "Function is pure."))
}

func TestSetDefault(t *testing.T) {
	sink := NewChannelSink(1)
	prev := SetDefault(sink)
	defer SetDefault(prev)

	Emit(New(KindLabel, "F", "pure", "Function is pure."))

	select {
	case event := <-sink.Events():
		if event.Label != "pure" {
			t.Errorf("Event label = %q, want pure", event.Label)
		}
	default:
		t.Fatal("Default sink did not receive the event")
	}

	// nil installs a NoOpSink instead of breaking emission
	SetDefault(nil)
	Emit(New(KindLabel, "F", "pure", "Function is pure."))
}
