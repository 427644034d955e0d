package traverse

import (
	"cmp"
	"context"
	"fmt"

	"github.com/viralab/lineage/genealogy"
)

// Descendants walks child edges breadth-first from startID and reports
// every strain that descends from it, the start included.
// Complexity: O(Σ d log d) over the reached region.
func Descendants[K cmp.Ordered, V any](g *genealogy.Genealogy[K, V], startID K, opts *Options[K]) (*Result[K], error) {
	return walk(g, startID, opts, (*genealogy.Genealogy[K, V]).Children)
}

// Ancestors walks parent edges breadth-first from startID and reports the
// strain's full ancestry, the start included. On an intact lineage the
// walk always reaches the stem.
// Complexity: O(Σ d log d) over the reached region.
func Ancestors[K cmp.Ordered, V any](g *genealogy.Genealogy[K, V], startID K, opts *Options[K]) (*Result[K], error) {
	return walk(g, startID, opts, (*genealogy.Genealogy[K, V]).Parents)
}

// item pairs a strain with its walk depth.
type item[K cmp.Ordered] struct {
	id    K
	depth int
}

// walker encapsulates mutable walk state; next selects the direction.
type walker[K cmp.Ordered, V any] struct {
	g       *genealogy.Genealogy[K, V]
	opts    Options[K]
	ctx     context.Context
	next    func(*genealogy.Genealogy[K, V], K) ([]K, error)
	queue   []item[K]
	visited map[K]bool
	res     *Result[K]
}

// walk validates inputs, seeds the queue with the start strain, and runs
// the loop. Shared by Descendants and Ancestors.
func walk[K cmp.Ordered, V any](g *genealogy.Genealogy[K, V], startID K, opts *Options[K], next func(*genealogy.Genealogy[K, V], K) ([]K, error)) (*Result[K], error) {
	if g == nil {
		return nil, ErrGenealogyNil
	}

	var o Options[K]
	if opts != nil {
		o = *opts
	}
	if o.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, o.MaxDepth)
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}

	if !g.Has(startID) {
		return nil, ErrStartNotFound
	}

	w := &walker[K, V]{
		g:       g,
		opts:    o,
		ctx:     o.Ctx,
		next:    next,
		visited: make(map[K]bool),
		res: &Result[K]{
			Order: make([]K, 0, 1),
			Depth: make(map[K]int),
			Via:   make(map[K]K),
		},
	}

	// Seed with the start strain; it carries no Via link.
	w.visited[startID] = true
	w.res.Depth[startID] = 0
	w.queue = append(w.queue, item[K]{id: startID, depth: 0})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[K, V]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		it := w.dequeue()
		if err := w.visit(it); err != nil {
			return err
		}
		if err := w.expand(it); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first queued item.
func (w *walker[K, V]) dequeue() item[K] {
	it := w.queue[0]
	w.queue = w.queue[1:]

	return it
}

// visit records the strain in Order and runs the OnVisit hook.
func (w *walker[K, V]) visit(it item[K]) error {
	w.res.Order = append(w.res.Order, it.id)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(it.id, it.depth); err != nil {
			return fmt.Errorf("traverse: OnVisit error at %v: %w", it.id, err)
		}
	}

	return nil
}

// expand reads the strain's neighbors in the walk direction, applies the
// depth limit and filter, and enqueues each unseen one.
func (w *walker[K, V]) expand(it item[K]) error {
	depth := it.depth + 1
	if w.opts.MaxDepth > 0 && depth > w.opts.MaxDepth {
		return nil
	}

	next, err := w.next(w.g, it.id)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %v: %v", ErrQuery, it.id, err)
	}
	for _, nid := range next {
		if w.visited[nid] {
			continue
		}
		if w.opts.Filter != nil && !w.opts.Filter(nid) {
			continue
		}
		w.enqueue(nid, depth, it.id)
	}

	return nil
}

// enqueue marks id visited at depth d, records its Via link, and queues it.
func (w *walker[K, V]) enqueue(id K, d int, via K) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.res.Via[id] = via
	w.queue = append(w.queue, item[K]{id: id, depth: d})
}
