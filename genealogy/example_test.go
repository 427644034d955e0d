package genealogy_test

import (
	"fmt"

	"github.com/viralab/lineage/genealogy"
)

// ExampleGenealogy demonstrates building a small lineage and querying it.
func ExampleGenealogy() {
	g, _ := genealogy.New("S", func(id string) string { return id })

	_ = g.Create("A", "S")
	_ = g.Create("B", "S")
	_ = g.Create("C", "A", "B") // recombinant strain

	fmt.Println("strains:", g.IDs())

	kids, _ := g.Children("S")
	fmt.Println("children of S:", kids)

	parents, _ := g.Parents("C")
	fmt.Println("parents of C:", parents)

	// Output:
	// strains: [A B C S]
	// children of S: [A B]
	// parents of C: [A B]
}

// ExampleGenealogy_Remove shows the cascade: a strain that loses its last
// parent is purged together with its own orphaned descendants.
func ExampleGenealogy_Remove() {
	g, _ := genealogy.New("S", func(id string) string { return id })

	_ = g.Create("A", "S")
	_ = g.Create("B", "S")
	_ = g.Create("C", "A", "B")
	_ = g.Create("D", "C")

	_ = g.Remove("A") // C survives through B, so D survives too
	fmt.Println("after removing A:", g.IDs())

	_ = g.Remove("B") // C loses its last parent; D cascades with it
	fmt.Println("after removing B:", g.IDs())

	// Output:
	// after removing A: [B C D S]
	// after removing B: [S]
}

// ExampleGenealogy_Connect records an extra descent edge after creation.
func ExampleGenealogy_Connect() {
	g, _ := genealogy.New("S", func(id string) string { return id })

	_ = g.Create("A", "S")
	_ = g.Create("B", "S")
	_ = g.Connect("B", "A") // B turns out to descend from A as well

	parents, _ := g.Parents("B")
	fmt.Println("parents of B:", parents)

	_ = g.Remove("A") // B keeps S, so it survives
	fmt.Println("B survives:", g.Has("B"))

	// Output:
	// parents of B: [A S]
	// B survives: true
}
