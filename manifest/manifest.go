package manifest

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/viralab/lineage/genealogy"
)

// Sentinel errors for manifest handling.
var (
	// ErrNilManifest indicates Build was handed a nil manifest.
	ErrNilManifest = errors.New("manifest: nil manifest")

	// ErrNilGenealogy indicates FromGenealogy/Render got a nil genealogy.
	ErrNilGenealogy = errors.New("manifest: genealogy is nil")

	// ErrEmptyStem indicates the manifest declares no stem id.
	ErrEmptyStem = errors.New("manifest: stem id is empty")

	// ErrEmptyID indicates a strain entry with an empty id.
	ErrEmptyID = errors.New("manifest: strain id is empty")

	// ErrDuplicateStrain indicates an id declared twice (the stem included).
	ErrDuplicateStrain = errors.New("manifest: duplicate strain id")

	// ErrNoParents indicates a strain entry with an empty parent list.
	ErrNoParents = errors.New("manifest: strain has no parents")

	// ErrUnorderable indicates the genealogy admits no descent order.
	ErrUnorderable = errors.New("manifest: lineage order could not be resolved")
)

// Manifest declares one lineage: the stem plus the strains descending
// from it, listed in descent order (parents before children).
type Manifest struct {
	Stem    string   `yaml:"stem"`
	Strains []Strain `yaml:"strains,omitempty"`
}

// Strain declares one non-stem strain and the parents it descends from.
type Strain struct {
	ID      string   `yaml:"id"`
	Parents []string `yaml:"parents"`
}

// Parse decodes a YAML manifest and validates it structurally.
// Complexity: O(bytes + strains).
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Validate checks the structural rules: a stem id, non-empty unique strain
// ids (the stem id may not be redeclared), and a non-empty parent list per
// strain. Referential order is not checked here; Build surfaces it through
// the engine.
// Complexity: O(strains).
func (m *Manifest) Validate() error {
	if m.Stem == "" {
		return ErrEmptyStem
	}

	seen := map[string]struct{}{m.Stem: {}}
	for i, s := range m.Strains {
		if s.ID == "" {
			return fmt.Errorf("%w: entry %d", ErrEmptyID, i)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateStrain, s.ID)
		}
		seen[s.ID] = struct{}{}

		if len(s.Parents) == 0 {
			return fmt.Errorf("%w: %s", ErrNoParents, s.ID)
		}
	}

	return nil
}

// Build replays the manifest through a fresh genealogy, top to bottom.
// Engine errors propagate wrapped with the failing strain: a parent
// declared after its child (or never) surfaces as
// genealogy.ErrVirusNotFound.
// Complexity: O(strains · parents).
func Build[V any](m *Manifest, payload genealogy.PayloadFunc[string, V]) (*genealogy.Genealogy[string, V], error) {
	if m == nil {
		return nil, ErrNilManifest
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	g, err := genealogy.New(m.Stem, payload, genealogy.WithCapacity(len(m.Strains)+1))
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	for _, s := range m.Strains {
		if err = g.Create(s.ID, s.Parents...); err != nil {
			return nil, fmt.Errorf("manifest: strain %s: %w", s.ID, err)
		}
	}

	return g, nil
}
