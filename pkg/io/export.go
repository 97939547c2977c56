package io

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/graphnet/pkg/graph"
)

type document struct {
	Attrs  map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Graphs []graphDoc        `json:"graphs" yaml:"graphs"`
}

type graphDoc struct {
	ID    string            `json:"id" yaml:"id"`
	Attrs map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Nodes []nodeDoc         `json:"nodes" yaml:"nodes"`
	Edges []edgeDoc         `json:"edges" yaml:"edges"`
}

type nodeDoc struct {
	ID    string            `json:"id" yaml:"id"`
	Attrs map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

type edgeDoc struct {
	From  string            `json:"from" yaml:"from"`
	To    string            `json:"to" yaml:"to"`
	Attrs map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

func toDocument[L, G, N, E any](lib *graph.Library[L, G, N, E]) document {
	doc := document{
		Attrs:  lib.Attrs.Map(),
		Graphs: make([]graphDoc, 0, lib.Len()),
	}
	for _, g := range lib.Graphs() {
		gd := graphDoc{
			ID:    g.ID(),
			Attrs: g.Attrs.Map(),
			Nodes: make([]nodeDoc, 0, g.NodeCount()),
			Edges: make([]edgeDoc, 0, g.EdgeCount()),
		}
		for _, n := range g.Nodes() {
			gd.Nodes = append(gd.Nodes, nodeDoc{ID: n.ID(), Attrs: n.Attrs.Map()})
		}
		for _, e := range g.Edges() {
			gd.Edges = append(gd.Edges, edgeDoc{
				From:  g.Node(e.Start()).ID(),
				To:    g.Node(e.End()).ID(),
				Attrs: e.Attrs.Map(),
			})
		}
		doc.Graphs = append(doc.Graphs, gd)
	}
	return doc
}

// WriteJSON encodes a library as an indented JSON document and writes it
// to w. Attribute maps are written with sorted keys. The output can be
// re-imported with [ReadJSON].
func WriteJSON[L, G, N, E any](lib *graph.Library[L, G, N, E], w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDocument(lib)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteYAML is like [WriteJSON] but produces YAML.
func WriteYAML[L, G, N, E any](lib *graph.Library[L, G, N, E], w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDocument(lib)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}
