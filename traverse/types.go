package traverse

import (
	"cmp"
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for lineage walks.
var (
	// ErrGenealogyNil is returned if a nil genealogy pointer is passed.
	ErrGenealogyNil = errors.New("traverse: genealogy is nil")

	// ErrStartNotFound is returned when the start strain is absent.
	ErrStartNotFound = errors.New("traverse: start strain not found")

	// ErrOptionViolation is returned for invalid Options values.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrQuery wraps a neighbor read that failed mid-walk.
	ErrQuery = errors.New("traverse: lineage query failed")
)

// Options tunes one walk. A nil *Options (or the zero value) walks the
// whole reachable region with no hooks and no limits.
type Options[K cmp.Ordered] struct {
	// Ctx allows cancellation and deadlines; nil means context.Background().
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this many edges from the
	// start. 0 disables the limit; negative values are rejected with
	// ErrOptionViolation.
	MaxDepth int

	// OnVisit, if set, runs for every visited strain in visit order.
	// Returning an error aborts the walk and propagates to the caller.
	OnVisit func(id K, depth int) error

	// Filter, if set, prunes a strain (and everything only reachable
	// through it) when it returns false. The start strain is never
	// filtered.
	Filter func(id K) bool
}

// Result holds the outcome of one walk:
//   - Order: strains in visit sequence.
//   - Depth: distance in edges from the start.
//   - Via: the neighbor through which a strain was first reached; the
//     start strain has no Via entry.
type Result[K cmp.Ordered] struct {
	Order []K
	Depth map[K]int
	Via   map[K]K
}

// PathTo reconstructs the walk path from the start strain to dest along
// Via links. Returns an error if dest was not reached.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("traverse: no recorded path to %v", dest)
	}

	// collect dest → start
	path := []K{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Via[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
