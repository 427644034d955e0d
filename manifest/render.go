package manifest

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/viralab/lineage/genealogy"
)

// FromGenealogy lays a live genealogy out as a manifest. The strain list
// is the smallest-id-first topological order: parents always precede
// children, ties broken by ascending id, parent lists sorted. Rendering
// the same genealogy twice yields the same manifest.
//
// Returns ErrNilGenealogy for a nil graph and ErrUnorderable when no
// descent order exists (edges driven into a cycle, outside the engine's
// contract).
// Complexity: O(n log n + edges).
func FromGenealogy[V any](g *genealogy.Genealogy[string, V]) (*Manifest, error) {
	if g == nil {
		return nil, ErrNilGenealogy
	}

	stem := g.StemID()
	ids := g.IDs()

	// remaining parent count per strain
	pending := make(map[string]int, len(ids))
	for _, id := range ids {
		ps, err := g.Parents(id)
		if err != nil {
			return nil, fmt.Errorf("manifest: %w", err)
		}
		pending[id] = len(ps)
	}

	m := &Manifest{Stem: stem, Strains: make([]Strain, 0, len(ids)-1)}
	ready := []string{stem}
	emitted := 0
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		emitted++

		if id != stem {
			ps, err := g.Parents(id)
			if err != nil {
				return nil, fmt.Errorf("manifest: %w", err)
			}
			m.Strains = append(m.Strains, Strain{ID: id, Parents: ps})
		}

		cs, err := g.Children(id)
		if err != nil {
			return nil, fmt.Errorf("manifest: %w", err)
		}
		for _, c := range cs {
			pending[c]--
			if pending[c] == 0 {
				pos, _ := slices.BinarySearch(ready, c)
				ready = slices.Insert(ready, pos, c)
			}
		}
	}

	if emitted != len(ids) {
		return nil, ErrUnorderable
	}

	return m, nil
}

// Render is FromGenealogy plus YAML encoding.
func Render[V any](g *genealogy.Genealogy[string, V]) ([]byte, error) {
	m, err := FromGenealogy(g)
	if err != nil {
		return nil, err
	}

	out, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("manifest: encode: %w", err)
	}

	return out, nil
}
