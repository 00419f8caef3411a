/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package warnings

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Kind distinguishes the notices the library emits.
type Kind string

const (
	// KindLabel is a per-label notice emitted on every invocation of an
	// instrumented callable.
	KindLabel Kind = "label"
	// KindRegistration is the non-fatal "already registered" notice.
	KindRegistration Kind = "registration"
)

// Event is a single warning. Events flow one way into a Sink; they are a
// best-effort observability signal, not a control channel.
type Event struct {
	ID        string          `json:"id"`
	Timestamp strfmt.DateTime `json:"timestamp"`
	Kind      Kind            `json:"kind"`
	Callable  string          `json:"callable,omitempty"`
	Label     string          `json:"label,omitempty"`
	Message   string          `json:"message"`
}

// New builds an Event with a fresh ID and the current time.
func New(kind Kind, callable, label, message string) Event {
	return Event{
		ID:        uuid.NewString(),
		Timestamp: strfmt.DateTime(time.Now().UTC()),
		Kind:      kind,
		Callable:  callable,
		Label:     label,
		Message:   message,
	}
}

// Sink receives warning events.
type Sink interface {
	Emit(event Event)
}

// NoOpSink silently discards all events.
type NoOpSink struct{}

func (NoOpSink) Emit(Event) {}

// WriterSink writes one line per event to an io.Writer.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a WriterSink over w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Emit(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if event.Callable != "" {
		fmt.Fprintf(s.w, "labelkit: %s: %s\n", event.Callable, event.Message)
		return
	}
	fmt.Fprintf(s.w, "labelkit: %s\n", event.Message)
}

// ChannelSink buffers events on a channel for asynchronous consumption.
// When the buffer is full new events are dropped and counted rather than
// blocking the instrumented call path.
type ChannelSink struct {
	events  chan Event
	dropped atomic.Uint64
}

// NewChannelSink creates a ChannelSink with the given buffer size.
func NewChannelSink(buffer int) *ChannelSink {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelSink{events: make(chan Event, buffer)}
}

func (s *ChannelSink) Emit(event Event) {
	select {
	case s.events <- event:
	default:
		s.dropped.Add(1)
	}
}

// Events returns the receive side of the sink's buffer.
func (s *ChannelSink) Events() <-chan Event {
	return s.events
}

// Dropped returns the number of events discarded because the buffer was full.
func (s *ChannelSink) Dropped() uint64 {
	return s.dropped.Load()
}

// LoggerSink forwards events to a zap logger at warn level.
type LoggerSink struct {
	logger *zap.Logger
}

// NewLoggerSink creates a LoggerSink over the given logger.
func NewLoggerSink(logger *zap.Logger) *LoggerSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggerSink{logger: logger}
}

func (s *LoggerSink) Emit(event Event) {
	s.logger.Warn(event.Message,
		zap.String("id", event.ID),
		zap.String("kind", string(event.Kind)),
		zap.String("callable", event.Callable),
		zap.String("label", event.Label),
		zap.Time("timestamp", time.Time(event.Timestamp)),
	)
}

var (
	defaultMu   sync.RWMutex
	defaultSink Sink = NewWriterSink(os.Stderr)
)

// Default returns the process-wide sink.
func Default() Sink {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultSink
}

// SetDefault replaces the process-wide sink and returns the previous one.
// Passing nil installs a NoOpSink.
func SetDefault(sink Sink) Sink {
	if sink == nil {
		sink = NoOpSink{}
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultSink
	defaultSink = sink
	return prev
}

// Emit sends an event to the process-wide sink.
func Emit(event Event) {
	Default().Emit(event)
}
