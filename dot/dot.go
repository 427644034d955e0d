package dot

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"github.com/viralab/lineage/genealogy"
)

// Sentinel errors for rendering.
var (
	// ErrGenealogyNil is returned if a nil genealogy pointer is passed.
	ErrGenealogyNil = errors.New("dot: genealogy is nil")

	// ErrOptionViolation is returned for invalid Options values.
	ErrOptionViolation = errors.New("dot: invalid option supplied")
)

const defaultName = "genealogy"

// Options tunes rendering. A nil *Options (or the zero value) renders a
// top-down graph named "genealogy" with ids as labels.
type Options[K cmp.Ordered, V any] struct {
	// Name of the DOT digraph. Mermaid output has no name.
	Name string

	// RankDir is the layout direction: "TB" (default) or "LR".
	RankDir string

	// Label renders a strain's node label; nil uses the id itself.
	Label func(id K, payload V) string
}

// resolve fills defaults and validates; shared by both renderers.
func resolve[K cmp.Ordered, V any](opts *Options[K, V]) (Options[K, V], error) {
	var o Options[K, V]
	if opts != nil {
		o = *opts
	}
	if o.Name == "" {
		o.Name = defaultName
	}
	switch o.RankDir {
	case "":
		o.RankDir = "TB"
	case "TB", "LR":
	default:
		return o, fmt.Errorf("%w: RankDir %q", ErrOptionViolation, o.RankDir)
	}
	if o.Label == nil {
		o.Label = func(id K, _ V) string { return fmt.Sprint(id) }
	}

	return o, nil
}

// label resolves the display label for one strain.
func label[K cmp.Ordered, V any](g *genealogy.Genealogy[K, V], o Options[K, V], id K) (string, error) {
	payload, err := g.Payload(id)
	if err != nil {
		return "", fmt.Errorf("dot: %w", err)
	}

	return o.Label(id, payload), nil
}

// Marshal renders the genealogy as a Graphviz digraph: one node per
// strain (the stem drawn with doubled peripheries), one arrow per
// parent→child edge, everything in ascending id order.
// Complexity: O(n log n + edges).
func Marshal[K cmp.Ordered, V any](g *genealogy.Genealogy[K, V], opts *Options[K, V]) ([]byte, error) {
	if g == nil {
		return nil, ErrGenealogyNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	ids := g.IDs()
	stem := g.StemID()

	var b strings.Builder
	fmt.Fprintf(&b, "digraph %q {\n", o.Name)
	fmt.Fprintf(&b, "  rankdir=%s;\n", o.RankDir)

	for _, id := range ids {
		name := fmt.Sprint(id)
		lbl, lerr := label(g, o, id)
		if lerr != nil {
			return nil, lerr
		}

		attrs := make([]string, 0, 2)
		if lbl != name {
			attrs = append(attrs, fmt.Sprintf("label=%q", lbl))
		}
		if id == stem {
			attrs = append(attrs, "peripheries=2")
		}

		if len(attrs) == 0 {
			fmt.Fprintf(&b, "  %q;\n", name)
			continue
		}
		fmt.Fprintf(&b, "  %q [%s];\n", name, strings.Join(attrs, ", "))
	}

	for _, id := range ids {
		cs, cerr := g.Children(id)
		if cerr != nil {
			return nil, fmt.Errorf("dot: %w", cerr)
		}
		for _, c := range cs {
			fmt.Fprintf(&b, "  %q -> %q;\n", fmt.Sprint(id), fmt.Sprint(c))
		}
	}

	b.WriteString("}\n")

	return []byte(b.String()), nil
}

// MarshalMermaid renders the genealogy as a Mermaid flowchart. Strains get
// positional tokens (n0, n1, … in ascending id order) so arbitrary ids
// never clash with Mermaid syntax.
// Complexity: O(n log n + edges).
func MarshalMermaid[K cmp.Ordered, V any](g *genealogy.Genealogy[K, V], opts *Options[K, V]) ([]byte, error) {
	if g == nil {
		return nil, ErrGenealogyNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	direction := "TD"
	if o.RankDir == "LR" {
		direction = "LR"
	}

	ids := g.IDs()
	token := make(map[K]string, len(ids))
	for i, id := range ids {
		token[id] = fmt.Sprintf("n%d", i)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "flowchart %s\n", direction)

	for _, id := range ids {
		lbl, lerr := label(g, o, id)
		if lerr != nil {
			return nil, lerr
		}
		fmt.Fprintf(&b, "    %s[%q]\n", token[id], lbl)
	}

	for _, id := range ids {
		cs, cerr := g.Children(id)
		if cerr != nil {
			return nil, fmt.Errorf("dot: %w", cerr)
		}
		for _, c := range cs {
			fmt.Fprintf(&b, "    %s --> %s\n", token[id], token[c])
		}
	}

	return []byte(b.String()), nil
}
