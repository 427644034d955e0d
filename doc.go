// Package lineage is an in-memory toolkit for building, pruning, and
// serializing viral descent graphs: strains, their recombinant parents,
// and the cascades that follow an ancestor's removal.
//
// 🧬 What is lineage?
//
//	A small, deterministic library that brings together:
//		• genealogy/ — the core DAG engine: strains, multi-parent descent,
//		  cascading removal with a strong all-or-nothing guarantee
//		• traverse/  — breadth-first walks over descendants and ancestors,
//		  with depth limits, filters and visit hooks
//		• virus/     — a ready-made strain payload plus UUID isolate tags
//		• builder/   — one-call construction of chains, fans, binary trees
//		  and recombinant lattices
//		• manifest/  — YAML round-trips: parse a manifest into a genealogy,
//		  or flatten a genealogy back into descent order
//		• dot/       — Graphviz DOT and Mermaid renderings for quick visuals
//
// ✨ Why choose lineage?
//
//   - Deterministic by contract: every listing is ascending by strain ID
//   - Strong mutation guarantees: failed operations leave no trace
//   - Pure Go: no cgo, no hidden machinery
//   - Generic: any cmp.Ordered key, any payload type
//
// Quick ASCII example:
//
//	    WILD
//	    │   \
//	  ALPHA  BETA
//	    │   /
//	     XD
//
//	XD is a recombinant: removing ALPHA alone leaves it alive through
//	BETA, while removing both ancestors sweeps it away in one cascade.
//
// Dive into examples/ for end-to-end outbreak walkthroughs, and into each
// subpackage's doc.go for contracts, complexity notes and error tables.
//
//	go get github.com/viralab/lineage
package lineage
