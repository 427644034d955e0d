package traverse_test

import (
	"fmt"

	"github.com/viralab/lineage/genealogy"
	"github.com/viralab/lineage/traverse"
)

// ExampleDescendants walks everything derived from one strain, level by
// level.
func ExampleDescendants() {
	g, _ := genealogy.New("S", func(id string) string { return id })
	_ = g.Create("A", "S")
	_ = g.Create("B", "S")
	_ = g.Create("C", "A", "B")

	res, _ := traverse.Descendants(g, "S", &traverse.Options[string]{
		OnVisit: func(id string, depth int) error {
			fmt.Printf("gen %d: %s\n", depth, id)
			return nil
		},
	})
	fmt.Println("order:", res.Order)

	// Output:
	// gen 0: S
	// gen 1: A
	// gen 1: B
	// gen 2: C
	// order: [S A B C]
}

// ExampleAncestors reconstructs where a strain came from.
func ExampleAncestors() {
	g, _ := genealogy.New("S", func(id string) string { return id })
	_ = g.Create("A", "S")
	_ = g.Create("B", "A")
	_ = g.Create("C", "B")

	res, _ := traverse.Ancestors(g, "C", nil)
	fmt.Println("ancestry:", res.Order)

	path, _ := res.PathTo("S")
	fmt.Println("C back to stem:", path)

	// Output:
	// ancestry: [C B A S]
	// C back to stem: [C B A S]
}
