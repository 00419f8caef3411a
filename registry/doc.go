/*
Package registry implements the label enumeration and the identity-keyed
label store for labelkit.

Label Enumeration:
A small closed set of labels, each with a fixed bit position:

	deprecated = bit 0
	pure       = bit 1
	idempotent = bit 2

Labels are encoded as a Bitmask, a single integer whose set bits name the
active labels. Decoding walks from bit 0 upward, so label names always come
back in ascending bit order:

	mask, _ := registry.MaskOf("idempotent", "deprecated")
	mask.Names() // ["deprecated", "idempotent"]

Registry:
An insertion-ordered store mapping a callable identity to its Bitmask:

	reg := registry.Default()
	reg.Set(clb, mask)
	names, err := reg.Describe(clb)

Keys are compared by identity, not by name: two distinct callables with the
same name hold distinct entries, and re-registering the same identity
overwrites its mask.

Singletons:
Each concrete type requesting a registry gets its own lazily created shared
instance via For[T](), mirroring one store per requesting type rather than a
single global. Default() is For over the package's own scope type.
*/
package registry
