package genealogy

import "cmp"

// Remove deletes the strain id and cascades: every descendant left with an
// empty parent set is purged as well, transitively. The decision is local
// in-degree only; a strain keeping at least one live parent survives no
// matter how the rest of its ancestry fared.
//
// The cascade runs breadth-first on a working copy of the registry and
// commits by swapping the copy in, so the live graph never exposes a
// partial purge.
//
//   - id absent → ErrVirusNotFound
//   - id is the stem → ErrStemRemoval
//
// Complexity: O(n) for the registry copy plus O(Σ d log d) over the purged
// region and its boundary.
func (g *Genealogy[K, V]) Remove(id K) error {
	if _, ok := g.nodes[id]; !ok {
		return ErrVirusNotFound
	}
	if id == g.stemID {
		return ErrStemRemoval
	}

	p := g.newPurge(id)
	p.run()
	g.nodes = p.working // commit: the only mutation of live state

	return nil
}

// purge carries the state of one cascading removal. Every mutation lands
// in the working copy; live nodes are cloned on first touch, never edited
// in place.
type purge[K cmp.Ordered, V any] struct {
	stemID  K
	working map[K]*node[K, V] // shallow registry copy, clones swapped in as needed
	owned   map[K]bool        // ids whose working entry is a private clone
	doomed  map[K]struct{}    // ids scheduled for erasure
	queue   []K
}

// newPurge shallow-copies the registry and seeds the queue with target.
func (g *Genealogy[K, V]) newPurge(target K) *purge[K, V] {
	working := make(map[K]*node[K, V], len(g.nodes))
	for id, n := range g.nodes {
		working[id] = n
	}

	p := &purge[K, V]{
		stemID:  g.stemID,
		working: working,
		owned:   make(map[K]bool),
		doomed:  make(map[K]struct{}),
	}
	p.enqueue(target)

	return p
}

// run drains the queue: detach the strain from its surviving neighbors,
// erase it, repeat until no strain is left to purge.
func (p *purge[K, V]) run() {
	for len(p.queue) > 0 {
		id := p.dequeue()
		p.detach(id)
		delete(p.working, id)
	}
}

// enqueue schedules id for erasure. The doomed set guarantees each strain
// is enqueued at most once.
func (p *purge[K, V]) enqueue(id K) {
	p.doomed[id] = struct{}{}
	p.queue = append(p.queue, id)
}

// dequeue pops the next doomed id.
func (p *purge[K, V]) dequeue() K {
	id := p.queue[0]
	p.queue = p.queue[1:]

	return id
}

// detach unlinks id from every surviving neighbor, in ascending key order
// for a reproducible walk. A child whose parent set drains, and which is
// not the stem, joins the queue.
func (p *purge[K, V]) detach(id K) {
	n := p.working[id]

	for _, pid := range sortedKeys(n.parents) {
		if _, gone := p.doomed[pid]; gone {
			continue
		}
		delete(p.mutable(pid).children, id)
	}

	for _, cid := range sortedKeys(n.children) {
		if _, gone := p.doomed[cid]; gone {
			continue
		}
		child := p.mutable(cid)
		delete(child.parents, id)
		if len(child.parents) == 0 && cid != p.stemID {
			p.enqueue(cid)
		}
	}
}

// mutable returns the working entry for id, cloning it away from the live
// registry on first touch so the original node is never modified.
func (p *purge[K, V]) mutable(id K) *node[K, V] {
	n := p.working[id]
	if !p.owned[id] {
		n = n.clone()
		p.working[id] = n
		p.owned[id] = true
	}

	return n
}
