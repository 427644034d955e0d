// Package traverse_test provides benchmarks for lineage walks.
package traverse_test

import (
	"testing"

	"github.com/viralab/lineage/builder"
	"github.com/viralab/lineage/traverse"
)

// BenchmarkDescendants_Lattice measures a full downward walk over a
// recombinant lattice (every strain past the first layer has two parents).
func BenchmarkDescendants_Lattice(b *testing.B) {
	g, err := builder.Build("S", func(id string) string { return id },
		builder.Recombinant[string]("r", 64, 16),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.Descendants(g, "S", nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAncestors_DeepChain measures an upward walk from the tip of a
// long descent line.
func BenchmarkAncestors_DeepChain(b *testing.B) {
	g, err := builder.Build("S", func(id string) string { return id },
		builder.Chain[string]("c", 2048),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.Ancestors(g, "c-2047", nil); err != nil {
			b.Fatal(err)
		}
	}
}
