package graph

import (
	"fmt"
	"iter"
	"slices"

	"github.com/matzehuels/graphnet/pkg/errors"
)

// Library is a named collection of graphs plus library-level attributes.
// It is the unit that the io package loads and saves.
//
// Graphs are kept in the order they were first added so that saving is
// deterministic. The zero value is not usable - use [NewLibrary].
//
// The type parameters select the Typed payload of each attribute store:
// L for the library, G for graphs, N for nodes and E for edges.
type Library[L, G, N, E any] struct {
	graphs map[string]*Graph[G, N, E]
	order  []string

	Attrs Attrs[L]
}

// AnyLibrary is a library whose typed slots are unused.
type AnyLibrary = Library[any, any, any, any]

// AnyGraph is a graph whose typed slots are unused.
type AnyGraph = Graph[any, any, any]

// AnyNode is a node whose typed slots are unused.
type AnyNode = Node[any, any]

// NewLibrary creates an empty library.
func NewLibrary[L, G, N, E any]() *Library[L, G, N, E] {
	return &Library[L, G, N, E]{graphs: make(map[string]*Graph[G, N, E])}
}

// Add creates an empty graph under id and returns it. An existing graph
// with the same id is replaced; the new graph takes its position.
func (l *Library[L, G, N, E]) Add(id string) *Graph[G, N, E] {
	g := NewGraph[G, N, E](id)
	if _, exists := l.graphs[id]; !exists {
		l.order = append(l.order, id)
	}
	l.graphs[id] = g
	return g
}

// Get returns the graph stored under id, or a NOT_FOUND error.
func (l *Library[L, G, N, E]) Get(id string) (*Graph[G, N, E], error) {
	g, ok := l.graphs[id]
	if !ok {
		return nil, errors.NotFound("graph %q", id)
	}
	return g, nil
}

// Lookup returns the graph stored under id and whether it exists.
func (l *Library[L, G, N, E]) Lookup(id string) (*Graph[G, N, E], bool) {
	g, ok := l.graphs[id]
	return g, ok
}

// Delete removes the graph stored under id. Unknown ids are ignored.
func (l *Library[L, G, N, E]) Delete(id string) {
	if _, ok := l.graphs[id]; !ok {
		return
	}
	delete(l.graphs, id)
	l.order = slices.DeleteFunc(l.order, func(s string) bool { return s == id })
}

// Len returns the number of graphs.
func (l *Library[L, G, N, E]) Len() int { return len(l.order) }

// IDs returns the graph ids in library order.
func (l *Library[L, G, N, E]) IDs() []string { return slices.Clone(l.order) }

// Graphs iterates over the graphs in library order.
func (l *Library[L, G, N, E]) Graphs() iter.Seq2[string, *Graph[G, N, E]] {
	return func(yield func(string, *Graph[G, N, E]) bool) {
		for _, id := range l.order {
			if !yield(id, l.graphs[id]) {
				return
			}
		}
	}
}

func (l *Library[L, G, N, E]) String() string {
	return fmt.Sprintf("Library - %d graphs", len(l.order))
}
