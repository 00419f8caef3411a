/*
Package labelkit attaches a small, fixed set of semantic labels to callables,
stores the association in a process-wide registry, and recovers the labels
later for one callable or in bulk over a collection.

The closed label set is deprecated, pure and idempotent. Labels are encoded
as a bitmask keyed by the instrumented callable's identity, so two distinct
callables with the same name hold distinct entries.

Basic Usage:

	// Instrument a callable at definition time
	square := labelkit.MustRegister(func(x int) int { return x * x }, "pure", "idempotent")

	// Every invocation emits one warning per active label, then delegates
	square.Fn(3) // 9

	// Recover labels for one callable
	labels, err := labelkit.Info(square) // ["pure", "idempotent"]

	// Or in bulk, silently skipping unregistered callables
	info := labelkit.InfoSeq(slices.Values([]any{square, other, notRegistered}))

Warnings flow through the swappable sink in the warnings package; the
default sink writes one line per event to stderr. Note that an instrumented
hot-path callable warns on every single call, which gets noisy fast; route
the default sink to a ChannelSink or NoOpSink if that is a concern.

Custom stores are available through the registry package: For[T]() yields an
independent shared store per requesting type, and RegisterIn instruments a
callable into an explicit store instead of the default one.

The checks package provides two structural assertion primitives for tests:
one over an object's attribute access surface and fixed layout, one over a
callable's full declared parameter signature.
*/
package labelkit
