// Package manifest reads and writes declarative YAML descriptions of a
// lineage, for fixtures and interchange.
//
// What
//
//   - Parse decodes and validates a manifest document.
//   - Build replays a manifest through a fresh genealogy, so every engine
//     precondition still applies (nothing bypasses the graph's rules).
//   - FromGenealogy lays a live genealogy out as a manifest; Render is
//     FromGenealogy plus YAML encoding.
//
// Format
//
//	stem: S
//	strains:
//	  - id: A
//	    parents: [S]
//	  - id: B
//	    parents: [S]
//	  - id: C
//	    parents: [A, B]
//
//	Strains are declared in descent order: every parent appears before
//	its children (the stem counts as declared). Build walks the list top
//	to bottom, so a forward or dangling reference surfaces as the
//	engine's genealogy.ErrVirusNotFound.
//
// Determinism
//
//	FromGenealogy emits the unique smallest-id-first topological layout:
//	parents always precede children, ties broken by ascending id, parent
//	lists sorted. Rendering the same genealogy twice yields identical
//	documents.
//
// Errors
//
//	ErrNilManifest / ErrNilGenealogy - nil inputs.
//	ErrEmptyStem, ErrEmptyID, ErrDuplicateStrain, ErrNoParents - Validate.
//	ErrUnorderable - the genealogy admits no descent order (its edges were
//	driven into a cycle, which is outside the engine's contract).
//	YAML decode errors are wrapped; engine errors propagate from Build.
package manifest
