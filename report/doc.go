/*
Package report renders a registry's contents as a YAML snapshot for
diagnostics and tooling.

	reg := registry.Default()
	report.WriteRegistry(os.Stdout, reg)

Output:

	version: 0.1.0
	takenAt: "2025-05-12T09:30:00.000Z"
	count: 2
	entries:
	    - callable: square
	      labels:
	          - pure
	          - idempotent
	      mask: 6
	    - callable: fetch
	      labels:
	          - deprecated
	      mask: 1

Snapshots are write-only observability output; registry state is never
loaded back from them.
*/
package report
