package graph

import (
	stderrors "errors"
	"fmt"

	"github.com/matzehuels/graphnet/pkg/errors"
)

// Validate checks that the graph survives a save/load round trip and that
// its adjacency lists are consistent. It returns nil if valid.
//
// It verifies:
//
//  1. The graph id and every node id pass [errors.ValidateID] and
//     [errors.ValidateNodeID]
//  2. Node ids are unique (edges are saved by id, so a duplicate would be
//     reloaded as a different endpoint)
//  3. Every attribute key passes [errors.ValidateKey]
//  4. Every edge endpoint is a valid node index, and every adjacency entry
//     points at an edge that starts or ends at that node
//
// All problems are reported, joined with [stderrors.Join].
func (g *Graph[G, N, E]) Validate() error {
	var errs []error
	if err := errors.ValidateID(g.id); err != nil {
		errs = append(errs, fmt.Errorf("graph %q: %w", g.id, err))
	}
	errs = append(errs, checkKeys(fmt.Sprintf("graph %q", g.id), &g.Attrs)...)

	seen := make(map[string]int, len(g.nodes))
	for i, n := range g.nodes {
		where := fmt.Sprintf("graph %q node %d", g.id, i)
		if err := errors.ValidateNodeID(n.id); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", where, err))
		}
		if first, dup := seen[n.id]; dup {
			errs = append(errs, fmt.Errorf("%s: %w", where,
				errors.New(errors.ErrCodeInvalidID, "duplicate node id %q (first at %d)", n.id, first)))
		} else {
			seen[n.id] = i
		}
		errs = append(errs, checkKeys(where, &n.Attrs)...)
		for _, ei := range n.in {
			if e := g.Edge(ei); e == nil || e.end != i {
				errs = append(errs, fmt.Errorf("%s: %w", where,
					errors.New(errors.ErrCodeInternal, "incoming edge %d does not end here", ei)))
			}
		}
		for _, ei := range n.out {
			if e := g.Edge(ei); e == nil || e.start != i {
				errs = append(errs, fmt.Errorf("%s: %w", where,
					errors.New(errors.ErrCodeInternal, "outgoing edge %d does not start here", ei)))
			}
		}
	}

	for i, e := range g.edges {
		where := fmt.Sprintf("graph %q edge %d", g.id, i)
		if g.Node(e.start) == nil || g.Node(e.end) == nil {
			errs = append(errs, fmt.Errorf("%s: %w", where,
				errors.OutOfRange("endpoint %d -> %d", e.start, e.end)))
		}
		errs = append(errs, checkKeys(where, &e.Attrs)...)
	}
	return stderrors.Join(errs...)
}

// Validate runs [Graph.Validate] on every graph and checks the library
// attribute keys.
func (l *Library[L, G, N, E]) Validate() error {
	errs := checkKeys("library", &l.Attrs)
	for _, g := range l.Graphs() {
		if err := g.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

func checkKeys[T any](where string, a *Attrs[T]) []error {
	var errs []error
	for _, k := range a.keys {
		if err := errors.ValidateKey(k); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", where, err))
		}
	}
	return errs
}
