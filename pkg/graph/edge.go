package graph

import "fmt"

// Edge is a directed connection between two nodes of the same [Graph],
// referenced by node index.
type Edge[E any] struct {
	start int
	end   int

	Attrs Attrs[E]
}

// Start returns the index of the source node.
func (e *Edge[E]) Start() int { return e.start }

// End returns the index of the target node.
func (e *Edge[E]) End() int { return e.end }

func (e *Edge[E]) String() string { return fmt.Sprintf("Edge %d -> %d", e.start, e.end) }
