package io

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/graphnet/pkg/graph"
)

// ReadJSON decodes a document written by [WriteJSON] into a new library.
//
// The input must be a JSON object with a "graphs" array; each graph has an
// "id", optional "attrs", and "nodes" and "edges" arrays:
//
//	{
//	  "graphs": [{
//	    "id": "g",
//	    "nodes": [{"id": "a"}, {"id": "b"}],
//	    "edges": [{"from": "a", "to": "b"}]
//	  }]
//	}
//
// Edges that reference an unknown node id fail with a NOT_FOUND error.
// ReadJSON does not close r.
func ReadJSON[L, G, N, E any](r io.Reader) (*graph.Library[L, G, N, E], error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return fromDocument[L, G, N, E](doc)
}

// ReadYAML is like [ReadJSON] but decodes a document written by [WriteYAML].
func ReadYAML[L, G, N, E any](r io.Reader) (*graph.Library[L, G, N, E], error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return fromDocument[L, G, N, E](doc)
}

func fromDocument[L, G, N, E any](doc document) (*graph.Library[L, G, N, E], error) {
	lib := graph.NewLibrary[L, G, N, E]()
	setSorted(&lib.Attrs, doc.Attrs)

	for _, gd := range doc.Graphs {
		g := lib.Add(gd.ID)
		setSorted(&g.Attrs, gd.Attrs)
		for _, nd := range gd.Nodes {
			idx := g.AddNode(nd.ID)
			setSorted(&g.Node(idx).Attrs, nd.Attrs)
		}
		for _, ed := range gd.Edges {
			idx, err := g.AddEdgeByID(ed.From, ed.To)
			if err != nil {
				return nil, fmt.Errorf("graph %s: edge %s->%s: %w", gd.ID, ed.From, ed.To, err)
			}
			setSorted(&g.Edge(idx).Attrs, ed.Attrs)
		}
	}
	return lib, nil
}

// setSorted copies m into a in key order so that re-saving is deterministic.
func setSorted[T any](a *graph.Attrs[T], m map[string]string) {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		a.Set(k, m[k])
	}
}
