// Package graph provides the in-memory model behind graphnet: a library of
// named, attributed, directed multigraphs.
//
// # Overview
//
// A [Library] owns a set of [Graph] values keyed by id. A graph owns its
// nodes and edges in two append-only sequences. Edges refer to nodes by
// index and nodes list their incoming and outgoing edges by index, so the
// ownership tree stays acyclic even when the graph itself has cycles.
// Nodes navigate their neighbourhood through a [Lookup] supplied by the
// owning graph when the node is created.
//
// # Basic Usage
//
//	lib := graph.NewLibrary[any, any, any, any]()
//	g := lib.Add("pipeline")
//	a := g.AddNode("fetch")
//	b := g.AddNode("build")
//	e, _ := g.AddEdge(a, b)
//	g.Edge(e).Attrs.Set("weight", "5")
//
// Node indices start at zero and grow by one per [Graph.AddNode]. Nothing
// is ever removed from a graph, so an index stays valid for the graph's
// lifetime.
//
// # Attributes
//
// Libraries, graphs, nodes and edges each carry an [Attrs] store. Its
// string pairs are what the io package persists. Its Typed field holds an
// application value of the corresponding type parameter and is never
// persisted; the bind package can populate it from the string pairs.
//
// # Traversal
//
// [Graph.FindRoots] follows incoming edges to the ancestors that have no
// inputs. [Graph.FindConnected] collects the weakly connected component of a
// set of seed nodes. Both visit each node at most once.
//
// # Errors
//
// Lookups of unknown graph ids, node ids or attribute keys return errors
// coded NOT_FOUND; out of range node indices return INDEX_OUT_OF_RANGE.
// Test for them with errors.Is from the graphnet errors package.
//
// # Concurrency
//
// Nothing in this package is safe for concurrent mutation. A library that
// is no longer modified may be read from several goroutines.
package graph
