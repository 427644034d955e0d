// Package builder grows canned lineage topologies for tests, benchmarks,
// and demos.
//
// What
//
//   - Build(stemID, payload, cons...) creates a fresh genealogy and
//     applies each Constructor in order; any failure aborts with context.
//   - Shapes: Chain (single descent line), Fan (siblings under the stem),
//     Binary (complete binary descent tree), Recombinant (layered lattice
//     where every later strain has two parents).
//
// Determinism
//
//	Same stem, shapes, and argument order produce identical genealogies:
//	ids are minted from the shape prefix with zero-padded indices, and
//	strains are registered in ascending index order.
//
// Errors
//
//	ErrBadCount       - a size parameter is below the shape's minimum.
//	ErrNilConstructor - Build was handed a nil Constructor.
//	Engine errors (duplicate ids across shapes, etc.) propagate wrapped.
//
// Usage
//
// The payload type cannot be inferred from a shape's own arguments, so
// constructors are instantiated explicitly:
//
//	g, err := builder.Build("S", virus.New,
//	    builder.Fan[*virus.Virus]("wave", 3),   // wave-0000..wave-0002 under S
//	    builder.Chain[*virus.Virus]("deep", 5), // S→deep-0000→…→deep-0004
//	    builder.Recombinant[*virus.Virus]("rec", 2, 4),
//	)
package builder
