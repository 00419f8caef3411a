/*
Package warnings is the one-way notice channel for labelkit.

Instrumented callables emit one Event per active label on every invocation,
and registration emits a non-fatal notice when an identity is registered
twice. Events carry a unique ID, a timestamp, the callable's display name
and a fixed per-label message.

Sinks:

	warnings.NewWriterSink(os.Stderr)   // default; one line per event
	warnings.NoOpSink{}                 // discard everything
	warnings.NewChannelSink(64)         // buffered, non-blocking, drop-counting
	warnings.NewLoggerSink(zapLogger)   // forward to zap at warn level

The process-wide sink is swapped with SetDefault:

	prev := warnings.SetDefault(warnings.NewChannelSink(64))
	defer warnings.SetDefault(prev)

Delivery is best effort. Emission never fails the instrumented call and a
full ChannelSink drops rather than blocks.
*/
package warnings
