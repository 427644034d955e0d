// Package genealogy implements an in-memory virus genealogy: a directed
// acyclic graph in which every strain descends, directly or through
// intermediaries, from one distinguished stem strain fixed at construction.
//
// What
//
//   - Create registers a new strain under one or more existing parents.
//   - Connect records an additional parent→child descent edge.
//   - Remove deletes a strain and cascades: every descendant that loses
//     its last remaining parent is purged with it.
//   - Queries: Has, StemID, Payload, Parents, Children, Count, IDs.
//
// Model
//
//	The registry (id → node) is the sole owner of every strain. Edges are
//	stored as id sets and resolved through the registry, never as node
//	references, so removal is a pure registry operation and no ownership
//	cycles can form. The stem has no parents, may never be removed, and
//	anchors the lineage for the graph's lifetime. Every other strain has
//	at least one parent at all times; a strain whose parent set drains
//	during a cascade is purged by that same cascade.
//
// Cascading removal
//
//	Remove runs breadth-first over a working copy of the registry and
//	commits by swapping the copy in, so a partial purge is never
//	observable on the live graph. A strain is cascaded only when its own
//	parent set becomes empty: the rule is local in-degree, not
//	reachability from the stem.
//
// Acyclicity
//
//	The lineage is meant to stay acyclic. The engine performs no cycle
//	detection: introducing a cycle through Connect (including a
//	self-edge) is a caller precondition violation, and subsequent
//	behavior, in particular which strains a Remove cascade reaches, is
//	undefined.
//
// Determinism
//
//	Parents, Children, and IDs return ascending key order, and the
//	removal cascade expands neighbors in ascending key order, so runs
//	are fully reproducible.
//
// Concurrency
//
//	None. A Genealogy is single-threaded by contract: no internal locks,
//	no atomics. Callers serialize all access to one instance themselves.
//
// Complexity (n strains, d = degree of the touched strain, R = purged region)
//
//   - Has / Payload / StemID / Count: O(1)
//   - Parents / Children: O(d log d)
//   - Create with p parents: O(p); Connect: O(1)
//   - Remove: O(Σ d log d) over the purged region, plus one O(n) registry copy
//
// Errors
//
//	ErrVirusNotFound   - an id (or a named parent) is absent from the registry.
//	ErrDuplicateVirus  - Create was given an id that already exists.
//	ErrStemRemoval     - Remove targeted the stem strain.
//	ErrNilPayloadFunc  - New was given a nil payload constructor.
//	ErrOptionViolation - an invalid Option was supplied.
//
// Usage
//
//	g, err := genealogy.New("S", func(id string) string { return id })
//	if err != nil { /* ErrNilPayloadFunc or ErrOptionViolation */ }
//
//	_ = g.Create("A", "S")      // single parent
//	_ = g.Create("B", "S")
//	_ = g.Create("C", "A", "B") // recombinant: two parents
//
//	_ = g.Remove("A") // C survives, B still holds it; Remove("B") would purge C
package genealogy
