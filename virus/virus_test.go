package virus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viralab/lineage/genealogy"
	"github.com/viralab/lineage/virus"
)

func TestNew_CarriesID(t *testing.T) {
	v := virus.New("ALPHA")
	assert.Equal(t, "ALPHA", v.ID())
	assert.Equal(t, "ALPHA", v.String())
}

func TestNew_AsPayloadFunc(t *testing.T) {
	g, err := genealogy.New("WILD", virus.New)
	require.NoError(t, err)
	require.NoError(t, g.Create("ALPHA", "WILD"))

	v, err := g.Payload("ALPHA")
	require.NoError(t, err)
	assert.Equal(t, "ALPHA", v.ID())
}

func TestNewStrainID_UniqueAndWellFormed(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 256; i++ {
		id := virus.NewStrainID()
		assert.Len(t, id, 36)
		_, dup := seen[id]
		assert.False(t, dup, "strain ids must not repeat")
		seen[id] = struct{}{}
	}
}
