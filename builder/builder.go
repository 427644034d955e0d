package builder

import (
	"errors"
	"fmt"

	"github.com/viralab/lineage/genealogy"
)

// Sentinel errors for topology construction.
var (
	// ErrBadCount indicates a size parameter (n, depth, levels, width)
	// below the minimum the shape needs.
	ErrBadCount = errors.New("builder: parameter too small")

	// ErrNilConstructor indicates Build was handed a nil Constructor.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// Constructor applies one deterministic growth step to a genealogy.
// Constructors validate their parameters before registering anything and
// mint ids in ascending index order so composition stays reproducible.
type Constructor[V any] func(g *genealogy.Genealogy[string, V]) error

// Build creates a genealogy rooted at stemID and applies the constructors
// in order. The first failure aborts and is returned wrapped with the
// constructor's position; the partially grown genealogy is discarded.
// Complexity: Σ cost of the applied constructors.
func Build[V any](stemID string, payload genealogy.PayloadFunc[string, V], cons ...Constructor[V]) (*genealogy.Genealogy[string, V], error) {
	g, err := genealogy.New(stemID, payload)
	if err != nil {
		return nil, fmt.Errorf("builder: %w", err)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%w: at index %d", ErrNilConstructor, i)
		}
		if err = fn(g); err != nil {
			return nil, fmt.Errorf("builder: constructor %d: %w", i, err)
		}
	}

	return g, nil
}

// strainID mints the id for index i under a shape prefix.
func strainID(prefix string, i int) string {
	return fmt.Sprintf("%s-%04d", prefix, i)
}

// layerID mints the id for index i in layer l of a layered shape.
func layerID(prefix string, l, i int) string {
	return fmt.Sprintf("%s-%02d-%04d", prefix, l, i)
}
