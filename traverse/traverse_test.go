package traverse_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viralab/lineage/genealogy"
	"github.com/viralab/lineage/traverse"
)

func ident(id string) string { return id }

// buildFamily returns S→A, S→B, {A,B}→C, C→D.
func buildFamily(t *testing.T) *genealogy.Genealogy[string, string] {
	t.Helper()
	g, err := genealogy.New("S", ident)
	require.NoError(t, err)
	require.NoError(t, g.Create("A", "S"))
	require.NoError(t, g.Create("B", "S"))
	require.NoError(t, g.Create("C", "A", "B"))
	require.NoError(t, g.Create("D", "C"))

	return g
}

func TestDescendants_NilGenealogy(t *testing.T) {
	var g *genealogy.Genealogy[string, string]
	res, err := traverse.Descendants(g, "S", nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, traverse.ErrGenealogyNil)
}

func TestDescendants_StartNotFound(t *testing.T) {
	g, err := genealogy.New("S", ident)
	require.NoError(t, err)

	res, err := traverse.Descendants(g, "X", nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, traverse.ErrStartNotFound)
}

func TestDescendants_OrderDepthVia(t *testing.T) {
	g := buildFamily(t)

	res, err := traverse.Descendants(g, "S", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"S", "A", "B", "C", "D"}, res.Order)
	assert.Equal(t, map[string]int{"S": 0, "A": 1, "B": 1, "C": 2, "D": 3}, res.Depth)

	// C was first reached through A (sorted expansion), D through C
	assert.Equal(t, "A", res.Via["C"])
	assert.Equal(t, "C", res.Via["D"])
	_, hasVia := res.Via["S"]
	assert.False(t, hasVia, "start strain carries no Via link")
}

func TestDescendants_MaxDepth(t *testing.T) {
	g := buildFamily(t)

	res, err := traverse.Descendants(g, "S", &traverse.Options[string]{MaxDepth: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "B"}, res.Order)
}

func TestDescendants_NegativeMaxDepth(t *testing.T) {
	g := buildFamily(t)

	res, err := traverse.Descendants(g, "S", &traverse.Options[string]{MaxDepth: -2})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, traverse.ErrOptionViolation)
}

func TestDescendants_FilterPrunes(t *testing.T) {
	g := buildFamily(t)

	res, err := traverse.Descendants(g, "S", &traverse.Options[string]{
		Filter: func(id string) bool { return id != "A" },
	})
	require.NoError(t, err)

	// C is still reached, through B; A never appears
	assert.Equal(t, []string{"S", "B", "C", "D"}, res.Order)
	assert.Equal(t, "B", res.Via["C"])
}

func TestDescendants_VisitAbort(t *testing.T) {
	g := buildFamily(t)
	boom := errors.New("boom")

	res, err := traverse.Descendants(g, "S", &traverse.Options[string]{
		OnVisit: func(id string, _ int) error {
			if id == "B" {
				return boom
			}
			return nil
		},
	})
	require.NotNil(t, res)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"S", "A", "B"}, res.Order, "the walk stops at the failing strain")
}

func TestDescendants_ContextCancelled(t *testing.T) {
	g := buildFamily(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := traverse.Descendants(g, "S", &traverse.Options[string]{Ctx: ctx})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAncestors_Walk(t *testing.T) {
	g := buildFamily(t)

	res, err := traverse.Ancestors(g, "D", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"D", "C", "A", "B", "S"}, res.Order)
	assert.Equal(t, map[string]int{"D": 0, "C": 1, "A": 2, "B": 2, "S": 3}, res.Depth)
}

func TestAncestors_OfStem(t *testing.T) {
	g := buildFamily(t)

	res, err := traverse.Ancestors(g, "S", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"S"}, res.Order)
}

func TestResult_PathTo(t *testing.T) {
	g := buildFamily(t)

	res, err := traverse.Descendants(g, "S", nil)
	require.NoError(t, err)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "C", "D"}, path)

	path, err = res.PathTo("S")
	require.NoError(t, err)
	assert.Equal(t, []string{"S"}, path)

	_, err = res.PathTo("nope")
	assert.Error(t, err)
}

func TestTraverse_IntKeys(t *testing.T) {
	g, err := genealogy.New(0, func(id int) int { return id })
	require.NoError(t, err)
	require.NoError(t, g.Create(10, 0))
	require.NoError(t, g.Create(20, 10))

	res, err := traverse.Descendants(g, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 10, 20}, res.Order)
}
