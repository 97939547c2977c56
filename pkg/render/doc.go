// Package render draws graphs as node-link diagrams.
//
// # Overview
//
// A graph is first converted to Graphviz DOT source with [ToDOT], then laid
// out and rasterized in-process by [Render] using go-graphviz. Nodes appear
// as rounded boxes labeled with their id; edges are arrows from start to
// end node.
//
//	lib, err := io.ImportFile[any, any, render.Style, any]("city.fgn")
//	render.ApplyStyles(lib)
//	g, _ := lib.Get("city")
//	dot := render.ToDOT(g, render.Options{Detailed: true})
//	svg, err := render.Render(ctx, dot, render.FormatSVG)
//
// # Styles
//
// Node appearance is read from ordinary attributes. [ApplyStyles] binds the
// keys label, color, shape and pos into each node's [Style] and copies pos
// into the node coordinates. With [Options.Layout] set to "neato" the
// positions are pinned; the default "dot" layout ignores them.
//
// # Detailed Output
//
// With [Options.Detailed], node and edge labels list the attributes that
// were not consumed as styles, sorted by key.
package render
