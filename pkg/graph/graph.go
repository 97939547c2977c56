package graph

import (
	"fmt"
	"iter"

	"github.com/matzehuels/graphnet/pkg/errors"
)

// NotFound is the index reported by [Graph.FindNode] when no node matches.
const NotFound = -1

// Graph is a directed multigraph. It owns its nodes and edges, which live in
// append-only sequences and are identified by their position. Cycles,
// self-loops and parallel edges are all permitted.
//
// The zero value is not usable - use [NewGraph] or [Library.Add].
// Graph is not safe for concurrent mutation.
type Graph[G, N, E any] struct {
	id    string
	nodes []*Node[N, E]
	edges []*Edge[E]

	Attrs Attrs[G]
}

// NewGraph creates an empty graph with the given identifier.
func NewGraph[G, N, E any](id string) *Graph[G, N, E] {
	return &Graph[G, N, E]{id: id}
}

// ID returns the graph identifier.
func (g *Graph[G, N, E]) ID() string { return g.id }

// NodeCount returns the number of nodes.
func (g *Graph[G, N, E]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph[G, N, E]) EdgeCount() int { return len(g.edges) }

// Node returns the node at index, or nil when index is out of range.
func (g *Graph[G, N, E]) Node(index int) *Node[N, E] {
	if index < 0 || index >= len(g.nodes) {
		return nil
	}
	return g.nodes[index]
}

// Edge returns the edge at index, or nil when index is out of range.
func (g *Graph[G, N, E]) Edge(index int) *Edge[E] {
	if index < 0 || index >= len(g.edges) {
		return nil
	}
	return g.edges[index]
}

// Nodes iterates over nodes in index order.
func (g *Graph[G, N, E]) Nodes() iter.Seq2[int, *Node[N, E]] {
	return func(yield func(int, *Node[N, E]) bool) {
		for i, n := range g.nodes {
			if !yield(i, n) {
				return
			}
		}
	}
}

// Edges iterates over edges in index order.
func (g *Graph[G, N, E]) Edges() iter.Seq2[int, *Edge[E]] {
	return func(yield func(int, *Edge[E]) bool) {
		for i, e := range g.edges {
			if !yield(i, e) {
				return
			}
		}
	}
}

// AddNode appends a node and returns its index. Indices are assigned in
// increasing order and never reused.
//
// AddNode does not reject duplicate ids; [Graph.FindNode] resolves an id to
// its first occurrence, and [Graph.Validate] reports duplicates.
func (g *Graph[G, N, E]) AddNode(id string) int {
	g.nodes = append(g.nodes, newNode[N, E](g, id))
	return len(g.nodes) - 1
}

// FindNode returns the index of the first node with the given id.
// When there is none it returns NotFound and false.
func (g *Graph[G, N, E]) FindNode(id string) (int, bool) {
	for i, n := range g.nodes {
		if n.id == id {
			return i, true
		}
	}
	return NotFound, false
}

// NodeByID returns the first node with the given id.
func (g *Graph[G, N, E]) NodeByID(id string) (*Node[N, E], bool) {
	i, ok := g.FindNode(id)
	if !ok {
		return nil, false
	}
	return g.nodes[i], true
}

// AddEdge appends an edge from node start to node end and registers it in
// both endpoints' adjacency lists. It returns the new edge index, or an
// INDEX_OUT_OF_RANGE error when either endpoint is not a valid node index.
func (g *Graph[G, N, E]) AddEdge(start, end int) (int, error) {
	if start < 0 || start >= len(g.nodes) {
		return NotFound, errors.OutOfRange("edge start %d: graph %q has %d nodes", start, g.id, len(g.nodes))
	}
	if end < 0 || end >= len(g.nodes) {
		return NotFound, errors.OutOfRange("edge end %d: graph %q has %d nodes", end, g.id, len(g.nodes))
	}
	g.edges = append(g.edges, &Edge[E]{start: start, end: end})
	idx := len(g.edges) - 1
	g.nodes[start].out = append(g.nodes[start].out, idx)
	g.nodes[end].in = append(g.nodes[end].in, idx)
	return idx, nil
}

// AddEdgeByID resolves both ids with [Graph.FindNode] and adds the edge.
// An unknown id is a NOT_FOUND error.
func (g *Graph[G, N, E]) AddEdgeByID(startID, endID string) (int, error) {
	start, ok := g.FindNode(startID)
	if !ok {
		return NotFound, errors.NotFound("edge start node %q in graph %q", startID, g.id)
	}
	end, ok := g.FindNode(endID)
	if !ok {
		return NotFound, errors.NotFound("edge end node %q in graph %q", endID, g.id)
	}
	return g.AddEdge(start, end)
}

// AddEdgeBetween adds an edge between two node handles, resolving them by id.
func (g *Graph[G, N, E]) AddEdgeBetween(start, end *Node[N, E]) (int, error) {
	return g.AddEdgeByID(start.ID(), end.ID())
}

func (g *Graph[G, N, E]) String() string {
	return fmt.Sprintf("Graph %s - N:%d E:%d", g.id, len(g.nodes), len(g.edges))
}

// Ensure Graph implements Lookup.
var _ Lookup[any, any] = (*Graph[any, any, any])(nil)
