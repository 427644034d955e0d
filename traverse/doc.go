// Package traverse walks a virus genealogy breadth-first, either down the
// descent edges (Descendants) or up them (Ancestors).
//
// What
//
//   - Descendants(g, start, opts): every strain reachable from start via
//     child edges, in non-decreasing distance.
//   - Ancestors(g, start, opts): the full ancestry of start via parent
//     edges, stem included.
//   - Returns a Result with the visit Order, a Depth map (edges from the
//     start), and Via links (the neighbor through which a strain was first
//     reached) from which PathTo reconstructs a concrete descent path.
//   - Options (pass nil for defaults): Ctx for cancellation, MaxDepth
//     cutoff, OnVisit hook (may abort), Filter to prune subtrees.
//
// Why
//
//   - "Everything derived from X" and "where did X come from" are the two
//     questions a lineage is kept for; both are level-order walks.
//   - Depth layers double as generation counts from the chosen strain.
//
// Determinism
//
//	Neighbor expansion uses the engine's sorted Parents/Children, so the
//	visit sequence is fully reproducible for a given genealogy.
//
// Complexity (R strains reached, d = degree)
//
//   - Time:   O(Σ d log d) over the reached region (sorted neighbor reads)
//   - Memory: O(R) for queue, Depth, Via, and the visited set
//
// Errors
//
//	ErrGenealogyNil    - nil genealogy pointer.
//	ErrStartNotFound   - the start strain is not registered.
//	ErrOptionViolation - negative MaxDepth.
//	ErrQuery           - a neighbor read failed mid-walk (wrapped).
//	Context and OnVisit errors propagate as returned by the caller's code.
//
// Usage
//
//	res, err := traverse.Descendants(g, "S", nil)
//	if err != nil { ... }
//	for _, id := range res.Order { ... }
//
//	limited, err := traverse.Descendants(g, "S", &traverse.Options[string]{
//	    MaxDepth: 2,
//	    OnVisit:  func(id string, depth int) error { fmt.Println(depth, id); return nil },
//	})
package traverse
