// Package dot renders a genealogy for display: Graphviz DOT (Marshal) or
// Mermaid flowchart (MarshalMermaid).
//
// What
//
//   - One node per strain, the stem visually marked; one arrow per
//     parent→child descent edge.
//   - Options (pass nil for defaults): Name of the DOT digraph, RankDir
//     ("TB" top-down, default, or "LR" left-right), and a Label hook with
//     access to the strain's payload.
//
// Determinism
//
//	Nodes and edges are emitted in ascending id order, so the same
//	genealogy always renders byte-identical output. Mermaid node tokens
//	(n0, n1, …) follow the same order.
//
// Errors
//
//	ErrGenealogyNil    - nil genealogy pointer.
//	ErrOptionViolation - RankDir outside {"", "TB", "LR"}.
//
// Usage
//
//	out, err := dot.Marshal(g, nil)
//	lr, err := dot.Marshal(g, &dot.Options[string, *virus.Virus]{
//	    RankDir: "LR",
//	    Label:   func(id string, v *virus.Virus) string { return v.ID() },
//	})
package dot
