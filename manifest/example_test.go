package manifest_test

import (
	"fmt"

	"github.com/viralab/lineage/genealogy"
	"github.com/viralab/lineage/manifest"
)

// ExampleParse decodes a manifest and replays it through the engine.
func ExampleParse() {
	doc := []byte(`
stem: S
strains:
  - id: A
    parents: [S]
  - id: B
    parents: [S]
  - id: C
    parents: [A, B]
`)
	m, _ := manifest.Parse(doc)
	g, _ := manifest.Build(m, func(id string) string { return id })

	fmt.Println("strains:", g.IDs())
	kids, _ := g.Children("S")
	fmt.Println("children of S:", kids)

	// Output:
	// strains: [A B C S]
	// children of S: [A B]
}

// ExampleFromGenealogy lays a live genealogy out in descent order.
func ExampleFromGenealogy() {
	g, _ := genealogy.New("S", func(id string) string { return id })
	_ = g.Create("B", "S")
	_ = g.Create("A", "S")
	_ = g.Create("C", "A", "B")

	m, _ := manifest.FromGenealogy(g)
	for _, s := range m.Strains {
		fmt.Printf("%s <- %v\n", s.ID, s.Parents)
	}

	// Output:
	// A <- [S]
	// B <- [S]
	// C <- [A B]
}
