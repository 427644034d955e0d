package genealogy

import "fmt"

// Create registers a new strain descending from the named parents. One
// parent is the common case; several describe a recombinant strain. The
// new strain is always a leaf: a child of every parent, a parent of none.
//
// Validation runs strictly before any mutation, so either the strain and
// all its edges appear together or the graph stays exactly as it was:
//
//   - id already registered → ErrDuplicateVirus
//   - empty parent list → ErrVirusNotFound (a strain cannot arise from nothing)
//   - any parent absent → ErrVirusNotFound naming the offender
//
// Duplicate ids inside parents collapse into one edge. The payload is
// constructed once, before any linking.
// Complexity: O(p log p) for p parents.
func (g *Genealogy[K, V]) Create(id K, parents ...K) error {
	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateVirus, id)
	}
	if len(parents) == 0 {
		return fmt.Errorf("%w: empty parent list for %v", ErrVirusNotFound, id)
	}
	for _, pid := range parents {
		if _, ok := g.nodes[pid]; !ok {
			return fmt.Errorf("%w: parent %v", ErrVirusNotFound, pid)
		}
	}

	n := newNode(id, g.newPayload(id))
	for _, pid := range parents {
		n.parents[pid] = struct{}{}
		g.nodes[pid].children[id] = struct{}{}
	}
	g.nodes[id] = n

	return nil
}

// Connect records the descent edge parentID→childID on both endpoints.
// Both strains must already be registered; a missing endpoint fails with
// ErrVirusNotFound naming the side. Connecting an already-connected pair
// is a silent no-op, edges live in sets.
//
// Connect performs no cycle check: closing a cycle (a self-edge included)
// violates the acyclicity precondition and leaves subsequent behavior
// undefined. See the package doc.
// Complexity: O(1).
func (g *Genealogy[K, V]) Connect(childID, parentID K) error {
	child, ok := g.nodes[childID]
	if !ok {
		return fmt.Errorf("%w: child %v", ErrVirusNotFound, childID)
	}
	parent, ok := g.nodes[parentID]
	if !ok {
		return fmt.Errorf("%w: parent %v", ErrVirusNotFound, parentID)
	}

	child.parents[parentID] = struct{}{}
	parent.children[childID] = struct{}{}

	return nil
}
