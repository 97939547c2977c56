package graph

import (
	"iter"
	"slices"
)

// Loc selects which side of a node's adjacency to walk.
type Loc int

const (
	// In walks incoming edges (edges whose End is the node).
	In Loc = iota
	// Out walks outgoing edges (edges whose Start is the node).
	Out
	// Any walks incoming edges followed by outgoing edges.
	Any
)

// Lookup resolves node and edge indices. A [Graph] hands itself to every
// node it creates so the node can navigate its adjacency without holding
// direct references to other nodes or edges.
type Lookup[N, E any] interface {
	Node(index int) *Node[N, E]
	Edge(index int) *Edge[E]
}

// Node is a vertex of a [Graph]. Its identity is its index in the owning
// graph; adjacency is stored as edge indices.
//
// X, Y and Z are scratch coordinates for layout code. They are never
// written to or read from the file format.
type Node[N, E any] struct {
	id     string
	lookup Lookup[N, E]
	in     []int
	out    []int

	Attrs Attrs[N]

	X, Y, Z float32
}

func newNode[N, E any](lookup Lookup[N, E], id string) *Node[N, E] {
	return &Node[N, E]{id: id, lookup: lookup}
}

// ID returns the node identifier. It is fixed at creation.
func (n *Node[N, E]) ID() string { return n.id }

// InCount returns the number of incoming edges.
func (n *Node[N, E]) InCount() int { return len(n.in) }

// OutCount returns the number of outgoing edges.
func (n *Node[N, E]) OutCount() int { return len(n.out) }

// InEdges returns a copy of the incoming edge indices in insertion order.
func (n *Node[N, E]) InEdges() []int { return slices.Clone(n.in) }

// OutEdges returns a copy of the outgoing edge indices in insertion order.
func (n *Node[N, E]) OutEdges() []int { return slices.Clone(n.out) }

// InEdge returns the i-th incoming edge.
func (n *Node[N, E]) InEdge(i int) *Edge[E] { return n.lookup.Edge(n.in[i]) }

// OutEdge returns the i-th outgoing edge.
func (n *Node[N, E]) OutEdge(i int) *Edge[E] { return n.lookup.Edge(n.out[i]) }

// InNode returns the source node of the i-th incoming edge.
func (n *Node[N, E]) InNode(i int) *Node[N, E] { return n.lookup.Node(n.InEdge(i).Start()) }

// OutNode returns the target node of the i-th outgoing edge.
func (n *Node[N, E]) OutNode(i int) *Node[N, E] { return n.lookup.Node(n.OutEdge(i).End()) }

// Edges iterates over the node's edges on the given side, yielding each
// edge index with the edge.
func (n *Node[N, E]) Edges(loc Loc) iter.Seq2[int, *Edge[E]] {
	return func(yield func(int, *Edge[E]) bool) {
		if loc == In || loc == Any {
			for _, i := range n.in {
				if !yield(i, n.lookup.Edge(i)) {
					return
				}
			}
		}
		if loc == Out || loc == Any {
			for _, i := range n.out {
				if !yield(i, n.lookup.Edge(i)) {
					return
				}
			}
		}
	}
}

// Neighbors iterates over the nodes across the node's edges on the given
// side: sources for In, targets for Out. A neighbor appears once per edge.
func (n *Node[N, E]) Neighbors(loc Loc) iter.Seq[*Node[N, E]] {
	return func(yield func(*Node[N, E]) bool) {
		if loc == In || loc == Any {
			for _, i := range n.in {
				if !yield(n.lookup.Node(n.lookup.Edge(i).Start())) {
					return
				}
			}
		}
		if loc == Out || loc == Any {
			for _, i := range n.out {
				if !yield(n.lookup.Node(n.lookup.Edge(i).End())) {
					return
				}
			}
		}
	}
}

func (n *Node[N, E]) String() string { return "Node " + n.id }
