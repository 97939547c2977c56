package render

import (
	"github.com/matzehuels/graphnet/pkg/bind"
	"github.com/matzehuels/graphnet/pkg/graph"
)

// Style holds the presentation attributes of a node.
type Style struct {
	Label string     // replaces the node id as label
	Color string     // Graphviz fill color
	Shape string     // Graphviz node shape
	Pos   [2]float32 // layout position in points, used by neato
}

// StyleSchema binds the label, color, shape and pos attributes.
var StyleSchema = bind.NewSchema(
	bind.String("label", func(s *Style) *string { return &s.Label }),
	bind.String("color", func(s *Style) *string { return &s.Color }),
	bind.String("shape", func(s *Style) *string { return &s.Shape }),
	bind.Vec2("pos", func(s *Style) *[2]float32 { return &s.Pos }),
)

// Library is a library whose nodes carry a [Style].
type Library = graph.Library[any, any, Style, any]

// Graph is a graph whose nodes carry a [Style].
type Graph = graph.Graph[any, Style, any]

// ApplyStyles decodes node styles for every graph in lib and copies each
// position into the node's X and Y coordinates.
func ApplyStyles[L, G, E any](lib *graph.Library[L, G, Style, E]) {
	bind.Decode(lib, nil, StyleSchema, nil)
	for _, g := range lib.Graphs() {
		for _, n := range g.Nodes() {
			n.X, n.Y = n.Attrs.Typed.Pos[0], n.Attrs.Typed.Pos[1]
		}
	}
}
