package io

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matzehuels/graphnet/pkg/codec"
	"github.com/matzehuels/graphnet/pkg/graph"
)

// Save serializes a library: library attributes, a blank line, then every
// graph in library order. The result parses back with [Load].
func Save[L, G, N, E any](lib *graph.Library[L, G, N, E]) string {
	var b strings.Builder
	writeAttrs(&b, &lib.Attrs, 0)
	b.WriteByte('\n')
	for _, g := range lib.Graphs() {
		writeGraph(&b, g)
	}
	return b.String()
}

// SaveGraph serializes a single graph as a one-graph document.
func SaveGraph[G, N, E any](g *graph.Graph[G, N, E]) string {
	var b strings.Builder
	writeGraph(&b, g)
	return b.String()
}

// Write serializes lib with [Save] and writes it to w.
func Write[L, G, N, E any](lib *graph.Library[L, G, N, E], w io.Writer) error {
	_, err := io.WriteString(w, Save(lib))
	return err
}

func writeGraph[G, N, E any](b *strings.Builder, g *graph.Graph[G, N, E]) {
	b.WriteString("-g ")
	b.WriteString(g.ID())
	b.WriteByte('\n')
	writeAttrs(b, &g.Attrs, 1)
	b.WriteByte('\n')

	for _, n := range g.Nodes() {
		b.WriteString("-n ")
		b.WriteString(n.ID())
		b.WriteByte('\n')
		writeAttrs(b, &n.Attrs, 1)
	}
	if g.EdgeCount() > 0 {
		b.WriteByte('\n')
	}
	for _, e := range g.Edges() {
		b.WriteString("-e ")
		b.WriteString(g.Node(e.Start()).ID())
		b.WriteString(", ")
		b.WriteString(g.Node(e.End()).ID())
		b.WriteByte('\n')
		writeAttrs(b, &e.Attrs, 1)
	}
	b.WriteByte('\n')
}

func writeAttrs[T any](b *strings.Builder, a *graph.Attrs[T], indent int) {
	tabs := strings.Repeat("\t", indent)
	for k, v := range a.All() {
		b.WriteString(tabs)
		b.WriteString(k)
		b.WriteByte(' ')
		if needsQuotes(v) {
			b.WriteByte('"')
			b.WriteString(codec.Escape(v))
			b.WriteByte('"')
		} else {
			b.WriteString(codec.Escape(v))
		}
		b.WriteByte('\n')
	}
}

// needsQuotes reports whether a raw value must be wrapped in quotes to load
// back unchanged: line breaks would otherwise end the logical line, and
// empty or padded values would otherwise be trimmed away.
func needsQuotes(v string) bool {
	if v == "" || strings.ContainsAny(v, "\r\n") {
		return true
	}
	first, _ := utf8.DecodeRuneInString(v)
	last, _ := utf8.DecodeLastRuneInString(v)
	return unicode.IsSpace(first) || unicode.IsSpace(last)
}
