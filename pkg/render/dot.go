package render

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/graphnet/pkg/graph"
)

// Options configures diagram generation.
type Options struct {
	// Detailed adds the remaining attributes to node and edge labels.
	Detailed bool
	// Layout is the Graphviz engine: "dot" (default) or "neato".
	Layout string
}

// ToDOT converts a graph to Graphviz DOT source.
//
// Nodes are named by index so that graphs with repeated node ids still
// render one box per node.
func ToDOT[G, E any](g *graph.Graph[G, Style, E], opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	if opts.Layout != "" && opts.Layout != "dot" {
		fmt.Fprintf(&buf, "  layout=%q;\n", opts.Layout)
	}
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	if opts.Detailed {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", g.ID())
	}
	buf.WriteString("\n")

	for i, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  n%d [%s];\n", i, strings.Join(nodeAttrs(n, opts), ", "))
	}

	if g.EdgeCount() > 0 {
		buf.WriteString("\n")
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  n%d -> n%d", e.Start(), e.End())
		if opts.Detailed && e.Attrs.Len() > 0 {
			fmt.Fprintf(&buf, " [label=%q]", fmtPairs(&e.Attrs))
		}
		buf.WriteString(";\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs[E any](n *graph.Node[Style, E], opts Options) []string {
	style := n.Attrs.Typed
	label := n.ID()
	if style.Label != "" {
		label = style.Label
	}
	if opts.Detailed && n.Attrs.Len() > 0 {
		label += "\n" + fmtPairs(&n.Attrs)
	}

	attrs := []string{fmt.Sprintf("label=%q", label)}
	if style.Color != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", style.Color))
	}
	if style.Shape != "" {
		attrs = append(attrs, fmt.Sprintf("shape=%q", style.Shape))
	}
	if n.X != 0 || n.Y != 0 {
		attrs = append(attrs, fmt.Sprintf("pos=\"%g,%g!\"", n.X, n.Y))
	}
	return attrs
}

func fmtPairs[T any](a *graph.Attrs[T]) string {
	keys := a.Keys()
	slices.Sort(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		v, _ := a.Lookup(k)
		parts[i] = k + ": " + v
	}
	return strings.Join(parts, "\n")
}
