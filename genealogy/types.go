package genealogy

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for genealogy operations.
var (
	// ErrVirusNotFound indicates an operation referenced an id absent from
	// the registry: a missing query target, a missing parent or endpoint,
	// or an empty parent list on Create.
	ErrVirusNotFound = errors.New("genealogy: virus not found")

	// ErrDuplicateVirus indicates Create was given an id already present.
	ErrDuplicateVirus = errors.New("genealogy: virus already exists")

	// ErrStemRemoval indicates Remove targeted the stem strain.
	ErrStemRemoval = errors.New("genealogy: stem virus cannot be removed")

	// ErrNilPayloadFunc indicates New was given a nil payload constructor.
	ErrNilPayloadFunc = errors.New("genealogy: nil payload constructor")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("genealogy: invalid option supplied")
)

// PayloadFunc constructs the domain payload for a newly registered strain.
// The engine treats the result as opaque and calls the constructor exactly
// once per strain, before any edge is linked.
type PayloadFunc[K cmp.Ordered, V any] func(id K) V

// node is one registry record: identity, payload, and the two edge sets.
// Edges hold ids, not node references; the registry resolves them on each
// access and stays the sole owner of every strain.
type node[K cmp.Ordered, V any] struct {
	id       K
	payload  V
	parents  map[K]struct{}
	children map[K]struct{}
}

// newNode allocates a parentless, childless record for id.
func newNode[K cmp.Ordered, V any](id K, payload V) *node[K, V] {
	return &node[K, V]{
		id:       id,
		payload:  payload,
		parents:  make(map[K]struct{}),
		children: make(map[K]struct{}),
	}
}

// clone copies the record together with both edge sets. The payload value
// is shared, not copied.
func (n *node[K, V]) clone() *node[K, V] {
	c := &node[K, V]{
		id:       n.id,
		payload:  n.payload,
		parents:  make(map[K]struct{}, len(n.parents)),
		children: make(map[K]struct{}, len(n.children)),
	}
	for id := range n.parents {
		c.parents[id] = struct{}{}
	}
	for id := range n.children {
		c.children[id] = struct{}{}
	}

	return c
}

// Options holds construction parameters for New.
type Options struct {
	// Capacity preallocates the registry for the expected strain count.
	// Zero keeps the default map capacity.
	Capacity int

	// internal error recorded during option parsing
	err error
}

// Option configures New via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when New runs.
type Option func(*Options)

// DefaultOptions returns Options with no preallocation and a clear error
// state.
func DefaultOptions() Options {
	return Options{Capacity: 0, err: nil}
}

// WithCapacity sizes the registry for n strains up front.
//
//	n > 0: reserve space for n strains
//	n == 0: explicit default capacity
//	n < 0: invalid option → ErrOptionViolation
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Capacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Capacity = n
	}
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}
