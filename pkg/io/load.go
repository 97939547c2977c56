package io

import (
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/graphnet/pkg/codec"
	"github.com/matzehuels/graphnet/pkg/errors"
	"github.com/matzehuels/graphnet/pkg/graph"
)

// active identifies which entity receives attribute lines.
type active int

const (
	activeLibrary active = iota
	activeGraph
	activeNode
	activeEdge
)

type parser[L, G, N, E any] struct {
	lib    *graph.Library[L, G, N, E]
	graph  *graph.Graph[G, N, E]
	node   int
	edge   int
	active active
}

// Load parses a document into a new library.
//
// Load either returns a complete library or an error; it never returns a
// partially loaded library. Errors are prefixed with the line number and
// carry an INVALID_FORMAT or NOT_FOUND code.
func Load[L, G, N, E any](data string) (*graph.Library[L, G, N, E], error) {
	p := &parser[L, G, N, E]{
		lib:  graph.NewLibrary[L, G, N, E](),
		node: graph.NotFound,
		edge: graph.NotFound,
	}
	for lineNo, raw := range codec.NumberedLines(data) {
		if err := p.parseLine(strings.TrimSpace(raw)); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return p.lib, nil
}

// Read reads r to the end and parses it with [Load]. Read does not close r.
func Read[L, G, N, E any](r io.Reader) (*graph.Library[L, G, N, E], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return Load[L, G, N, E](string(data))
}

func (p *parser[L, G, N, E]) parseLine(line string) error {
	switch {
	case line == "", line[0] == '#':
		return nil
	case line[0] == '-':
		return p.parseCommand(line)
	default:
		return p.parseAttr(line)
	}
}

func (p *parser[L, G, N, E]) parseCommand(line string) error {
	if len(line) < 3 || (line[2] != ' ' && line[2] != '\t') {
		return nil
	}
	args := strings.TrimSpace(line[3:])

	switch line[1] {
	case 'g':
		p.graph = p.lib.Add(args)
		p.active = activeGraph
	case 'n':
		if p.graph == nil {
			return errors.InvalidFormat("node %q declared outside of a graph", args)
		}
		p.node = p.graph.AddNode(args)
		p.active = activeNode
	case 'e':
		if p.graph == nil {
			return errors.InvalidFormat("edge %q declared outside of a graph", args)
		}
		from, to, ok := strings.Cut(args, ",")
		if !ok {
			return errors.InvalidFormat("edge %q is missing the comma between its endpoints", args)
		}
		idx, err := p.graph.AddEdgeByID(strings.TrimSpace(from), strings.TrimSpace(to))
		if err != nil {
			return err
		}
		p.edge = idx
		p.active = activeEdge
	}
	return nil
}

func (p *parser[L, G, N, E]) parseAttr(line string) error {
	key, raw, ok := strings.Cut(line, " ")
	if !ok {
		return errors.InvalidFormat("attribute line %q has no value", line)
	}
	value := codec.Unescape(raw)

	switch p.active {
	case activeGraph:
		p.graph.Attrs.Set(key, value)
	case activeNode:
		p.graph.Node(p.node).Attrs.Set(key, value)
	case activeEdge:
		p.graph.Edge(p.edge).Attrs.Set(key, value)
	default:
		p.lib.Attrs.Set(key, value)
	}
	return nil
}
