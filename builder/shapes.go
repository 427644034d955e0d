package builder

import (
	"fmt"

	"github.com/viralab/lineage/genealogy"
)

// Chain grows a single descent line of n strains under the stem:
// stem→prefix-0000→prefix-0001→…  Requires n ≥ 1.
// Complexity: O(n).
func Chain[V any](prefix string, n int) Constructor[V] {
	return func(g *genealogy.Genealogy[string, V]) error {
		if n < 1 {
			return fmt.Errorf("Chain: n=%d < 1: %w", n, ErrBadCount)
		}

		parent := g.StemID()
		for i := 0; i < n; i++ {
			id := strainID(prefix, i)
			if err := g.Create(id, parent); err != nil {
				return fmt.Errorf("Chain: %w", err)
			}
			parent = id
		}

		return nil
	}
}

// Fan grows n sibling strains directly under the stem. Requires n ≥ 1.
// Complexity: O(n).
func Fan[V any](prefix string, n int) Constructor[V] {
	return func(g *genealogy.Genealogy[string, V]) error {
		if n < 1 {
			return fmt.Errorf("Fan: n=%d < 1: %w", n, ErrBadCount)
		}

		for i := 0; i < n; i++ {
			if err := g.Create(strainID(prefix, i), g.StemID()); err != nil {
				return fmt.Errorf("Fan: %w", err)
			}
		}

		return nil
	}
}

// Binary grows a complete binary descent tree of the given depth below
// the stem: 2^depth−1 strains, strain i descending from strain i/2
// (strain 1 from the stem). Requires depth ≥ 1.
// Complexity: O(2^depth).
func Binary[V any](prefix string, depth int) Constructor[V] {
	return func(g *genealogy.Genealogy[string, V]) error {
		if depth < 1 {
			return fmt.Errorf("Binary: depth=%d < 1: %w", depth, ErrBadCount)
		}

		last := (1 << depth) - 1
		for i := 1; i <= last; i++ {
			parent := g.StemID()
			if i > 1 {
				parent = strainID(prefix, i/2)
			}
			if err := g.Create(strainID(prefix, i), parent); err != nil {
				return fmt.Errorf("Binary: %w", err)
			}
		}

		return nil
	}
}

// Recombinant grows a layered lattice: layer 0 holds width strains under
// the stem; every strain in a later layer descends from two adjacent
// strains of the previous layer, wrapping at the edge. The shape exercises
// multi-parent creation and cascade survival through second parents.
// Requires levels ≥ 1 and width ≥ 2.
// Complexity: O(levels · width).
func Recombinant[V any](prefix string, levels, width int) Constructor[V] {
	return func(g *genealogy.Genealogy[string, V]) error {
		if levels < 1 {
			return fmt.Errorf("Recombinant: levels=%d < 1: %w", levels, ErrBadCount)
		}
		if width < 2 {
			return fmt.Errorf("Recombinant: width=%d < 2: %w", width, ErrBadCount)
		}

		for i := 0; i < width; i++ {
			if err := g.Create(layerID(prefix, 0, i), g.StemID()); err != nil {
				return fmt.Errorf("Recombinant: %w", err)
			}
		}
		for l := 1; l < levels; l++ {
			for i := 0; i < width; i++ {
				left := layerID(prefix, l-1, i)
				right := layerID(prefix, l-1, (i+1)%width)
				if err := g.Create(layerID(prefix, l, i), left, right); err != nil {
					return fmt.Errorf("Recombinant: %w", err)
				}
			}
		}

		return nil
	}
}
