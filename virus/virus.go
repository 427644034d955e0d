package virus

import "github.com/google/uuid"

// Virus is one strain record. The id is fixed at construction; the engine
// owning the genealogy treats the whole value as opaque.
type Virus struct {
	id string
}

// New constructs the strain record for id. Its signature matches
// genealogy.PayloadFunc[string, *Virus].
func New(id string) *Virus {
	return &Virus{id: id}
}

// ID returns the identifier the strain was constructed from.
func (v *Virus) ID() string {
	return v.id
}

// String implements fmt.Stringer.
func (v *Virus) String() string {
	return v.id
}

// NewStrainID mints a fresh globally unique strain identifier (RFC 4122),
// for mutations observed before anyone has named them.
func NewStrainID() string {
	return uuid.NewString()
}
