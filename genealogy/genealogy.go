package genealogy

import "cmp"

// Genealogy is the mutation-lineage graph of one virus family: a registry
// of strains keyed by id, each holding parent and child edge sets, rooted
// at a stem strain fixed at construction.
//
// A Genealogy must be obtained from New and handed around by pointer;
// copying the struct value would alias the registry maps. It holds no
// locks: callers serialize all access to one instance (see package doc).
type Genealogy[K cmp.Ordered, V any] struct {
	stemID     K
	newPayload PayloadFunc[K, V]

	// nodes is the registry: id → strain record, sole owner of each.
	nodes map[K]*node[K, V]
}

// New constructs a genealogy rooted at stemID. The stem strain is
// registered immediately with payload newPayload(stemID), empty parent
// and child sets, and can never be removed.
//
// Returns ErrNilPayloadFunc for a nil constructor and ErrOptionViolation
// for an invalid Option.
// Complexity: O(1).
func New[K cmp.Ordered, V any](stemID K, newPayload PayloadFunc[K, V], opts ...Option) (*Genealogy[K, V], error) {
	if newPayload == nil {
		return nil, ErrNilPayloadFunc
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	capacity := o.Capacity
	if capacity == 0 {
		capacity = 1 // at least the stem
	}
	g := &Genealogy[K, V]{
		stemID:     stemID,
		newPayload: newPayload,
		nodes:      make(map[K]*node[K, V], capacity),
	}
	g.nodes[stemID] = newNode(stemID, newPayload(stemID))

	return g, nil
}

// Has reports whether id is registered. It never fails; it is the
// membership gate every other operation relies on.
// Complexity: O(1).
func (g *Genealogy[K, V]) Has(id K) bool {
	_, ok := g.nodes[id]
	return ok
}

// StemID returns the fixed root key chosen at construction.
// Complexity: O(1).
func (g *Genealogy[K, V]) StemID() K {
	return g.stemID
}

// Count returns the number of strains currently registered, the stem
// included.
// Complexity: O(1).
func (g *Genealogy[K, V]) Count() int {
	return len(g.nodes)
}

// Payload returns the payload stored for id, as it was produced by the
// payload constructor. The engine never copies or mutates it.
//
// Returns ErrVirusNotFound if id is absent.
// Complexity: O(1).
func (g *Genealogy[K, V]) Payload(id K) (V, error) {
	n, ok := g.nodes[id]
	if !ok {
		var zero V
		return zero, ErrVirusNotFound
	}

	return n.payload, nil
}

// Parents returns the ids of the direct predecessors of id, in ascending
// key order. The slice is a fresh copy; mutating it does not touch the
// graph.
//
// Returns ErrVirusNotFound if id is absent.
// Complexity: O(d log d) for degree d.
func (g *Genealogy[K, V]) Parents(id K) ([]K, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrVirusNotFound
	}

	return sortedKeys(n.parents), nil
}

// Children returns the ids of the direct successors of id, in ascending
// key order. The slice is a fresh copy; mutating it does not touch the
// graph.
//
// Returns ErrVirusNotFound if id is absent.
// Complexity: O(d log d) for degree d.
func (g *Genealogy[K, V]) Children(id K) ([]K, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrVirusNotFound
	}

	return sortedKeys(n.children), nil
}

// IDs returns every registered id in ascending order.
// Complexity: O(n log n).
func (g *Genealogy[K, V]) IDs() []K {
	return sortedKeys(g.nodes)
}
