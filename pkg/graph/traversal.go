package graph

import (
	"github.com/matzehuels/graphnet/pkg/errors"
)

// FindRoots walks incoming edges upward from the seed nodes and returns
// every ancestor (or seed) that has no incoming edges.
//
// Each node is expanded at most once, so cycles terminate and every root is
// reported exactly once, in the order it was reached. A seed inside a cycle
// with no entry from outside has no roots. Seeds must be valid node indices;
// otherwise an INDEX_OUT_OF_RANGE error is returned.
func (g *Graph[G, N, E]) FindRoots(seeds []int) ([]int, error) {
	if err := g.checkSeeds(seeds); err != nil {
		return nil, err
	}

	visited := make([]bool, len(g.nodes))
	pending := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if !visited[s] {
			visited[s] = true
			pending = append(pending, s)
		}
	}

	var roots []int
	for len(pending) > 0 {
		id := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		n := g.nodes[id]
		if len(n.in) == 0 {
			roots = append(roots, id)
			continue
		}
		for _, ei := range n.in {
			src := g.edges[ei].start
			if !visited[src] {
				visited[src] = true
				pending = append(pending, src)
			}
		}
	}
	return roots, nil
}

// FindConnected returns the weakly connected closure of the seed nodes:
// every node reachable when edge direction is ignored.
//
// The result lists each node once. Seeds come first in the order given
// (duplicates collapsed), followed by the rest of the component in
// breadth-first order. Seeds must be valid node indices; otherwise an
// INDEX_OUT_OF_RANGE error is returned.
func (g *Graph[G, N, E]) FindConnected(seeds []int) ([]int, error) {
	if err := g.checkSeeds(seeds); err != nil {
		return nil, err
	}

	seen := make([]bool, len(g.nodes))
	result := make([]int, 0, len(seeds))
	add := func(i int) {
		if !seen[i] {
			seen[i] = true
			result = append(result, i)
		}
	}
	for _, s := range seeds {
		add(s)
	}

	for pos := 0; pos < len(result); pos++ {
		n := g.nodes[result[pos]]
		for _, ei := range n.in {
			add(g.edges[ei].start)
		}
		for _, ei := range n.out {
			add(g.edges[ei].end)
		}
	}
	return result, nil
}

// Roots returns every node of the graph with no incoming edges, in index
// order.
func (g *Graph[G, N, E]) Roots() []int {
	var roots []int
	for i, n := range g.nodes {
		if len(n.in) == 0 {
			roots = append(roots, i)
		}
	}
	return roots
}

// Components partitions the graph into weakly connected components, ordered
// by their lowest node index.
func (g *Graph[G, N, E]) Components() [][]int {
	assigned := make([]bool, len(g.nodes))
	var comps [][]int
	for i := range g.nodes {
		if assigned[i] {
			continue
		}
		comp, _ := g.FindConnected([]int{i})
		for _, c := range comp {
			assigned[c] = true
		}
		comps = append(comps, comp)
	}
	return comps
}

func (g *Graph[G, N, E]) checkSeeds(seeds []int) error {
	for _, s := range seeds {
		if s < 0 || s >= len(g.nodes) {
			return errors.OutOfRange("seed node %d: graph %q has %d nodes", s, g.id, len(g.nodes))
		}
	}
	return nil
}
