package dot_test

import (
	"fmt"

	"github.com/viralab/lineage/dot"
	"github.com/viralab/lineage/genealogy"
)

// ExampleMarshal renders a small lineage as Graphviz DOT.
func ExampleMarshal() {
	g, _ := genealogy.New("S", func(id string) string { return id })
	_ = g.Create("A", "S")
	_ = g.Create("B", "S", "A")

	out, _ := dot.Marshal(g, nil)
	fmt.Print(string(out))

	// Output:
	// digraph "genealogy" {
	//   rankdir=TB;
	//   "A";
	//   "B";
	//   "S" [peripheries=2];
	//   "A" -> "B";
	//   "S" -> "A";
	//   "S" -> "B";
	// }
}

// ExampleMarshalMermaid renders the same lineage as a Mermaid flowchart.
func ExampleMarshalMermaid() {
	g, _ := genealogy.New("S", func(id string) string { return id })
	_ = g.Create("A", "S")
	_ = g.Create("B", "S", "A")

	out, _ := dot.MarshalMermaid(g, nil)
	fmt.Print(string(out))

	// Output:
	// flowchart TD
	//     n0["A"]
	//     n1["B"]
	//     n2["S"]
	//     n0 --> n1
	//     n2 --> n0
	//     n2 --> n1
}
