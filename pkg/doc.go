// Package pkg holds the graphnet libraries.
//
// A graph library is a named collection of directed multigraphs whose graphs,
// nodes and edges carry ordered string attributes. The packages build on
// each other:
//
//  1. [errors] - coded errors and id/path validation
//  2. [codec] - line splitting and value escaping for the text format
//  3. [graph] - Library, Graph, Node, Edge and Attrs, plus traversals
//  4. [io] - the .fgn text format, snappy-compressed files, JSON and YAML
//  5. [bind] - schemas that move attribute pairs into typed structs
//  6. [render] - DOT generation and Graphviz rendering
//  7. [cache] - file-backed cache for rendered images
//  8. [observability] - hooks for load, save, render and cache events
//
// # Quick Start
//
//	lib, err := io.ImportFile[any, any, any, any]("deps.fgn")
//	if err != nil {
//		return err
//	}
//	g, err := lib.Get("build")
//	if err != nil {
//		return err
//	}
//	start, _ := g.FindNode("package")
//	roots, err := g.FindRoots([]int{start})
//
// [errors]: github.com/matzehuels/graphnet/pkg/errors
// [codec]: github.com/matzehuels/graphnet/pkg/codec
// [graph]: github.com/matzehuels/graphnet/pkg/graph
// [io]: github.com/matzehuels/graphnet/pkg/io
// [bind]: github.com/matzehuels/graphnet/pkg/bind
// [render]: github.com/matzehuels/graphnet/pkg/render
// [cache]: github.com/matzehuels/graphnet/pkg/cache
// [observability]: github.com/matzehuels/graphnet/pkg/observability
package pkg
