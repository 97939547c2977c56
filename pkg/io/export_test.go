package io

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/graphnet/pkg/errors"
)

func TestWriteJSON(t *testing.T) {
	lib := load(t, "owner ops\n-g G\n-n A\n\tcost 1\n-n B\n-e A, B\n\tweight 5\n")

	var buf bytes.Buffer
	if err := WriteJSON(lib, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var doc document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.Attrs["owner"] != "ops" {
		t.Errorf("attrs = %v", doc.Attrs)
	}
	if len(doc.Graphs) != 1 {
		t.Fatalf("graphs = %d, want 1", len(doc.Graphs))
	}
	g := doc.Graphs[0]
	if g.ID != "G" || len(g.Nodes) != 2 || len(g.Edges) != 1 {
		t.Errorf("graph = %+v", g)
	}
	if g.Nodes[0].Attrs["cost"] != "1" {
		t.Errorf("node attrs = %v", g.Nodes[0].Attrs)
	}
	if e := g.Edges[0]; e.From != "A" || e.To != "B" || e.Attrs["weight"] != "5" {
		t.Errorf("edge = %+v", e)
	}
	if strings.Contains(buf.String(), `"attrs": {}`) {
		t.Error("empty attribute maps should be omitted")
	}
}

func TestStructuredRoundTrip(t *testing.T) {
	want := trickyLibrary()
	tests := []struct {
		name  string
		write func(*bytes.Buffer) error
		read  func(*bytes.Buffer) (string, error)
	}{
		{
			name:  "json",
			write: func(b *bytes.Buffer) error { return WriteJSON(want, b) },
			read: func(b *bytes.Buffer) (string, error) {
				lib, err := ReadJSON[any, any, any, any](b)
				if err != nil {
					return "", err
				}
				return Save(lib), nil
			},
		},
		{
			name:  "yaml",
			write: func(b *bytes.Buffer) error { return WriteYAML(want, b) },
			read: func(b *bytes.Buffer) (string, error) {
				lib, err := ReadYAML[any, any, any, any](b)
				if err != nil {
					return "", err
				}
				return Save(lib), nil
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.write(&buf); err != nil {
				t.Fatalf("write error = %v", err)
			}
			got, err := tt.read(&buf)
			if err != nil {
				t.Fatalf("read error = %v", err)
			}
			lib := load(t, got)
			g := mustGraph(t, lib, "tricky graph")
			if g.NodeCount() != len(trickyValues) {
				t.Errorf("NodeCount() = %d, want %d", g.NodeCount(), len(trickyValues))
			}
			for i, v := range trickyValues {
				wantAttr(t, &g.Node(i).Attrs, "value", v)
			}
		})
	}
}

func TestReadJSONErrors(t *testing.T) {
	_, err := ReadJSON[any, any, any, any](strings.NewReader(`{"graphs": [{"id": "G", "nodes": [{"id": "A"}], "edges": [{"from": "A", "to": "Z"}]}]}`))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("unknown node: error = %v, want NOT_FOUND", err)
	}

	if _, err := ReadJSON[any, any, any, any](strings.NewReader(`{"graphs": [`)); err == nil {
		t.Error("truncated JSON expected error")
	}
}
