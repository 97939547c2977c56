package bind

import "github.com/matzehuels/graphnet/pkg/graph"

// State identifies the entity a field is decoded for or encoded from.
type State struct {
	// Graph is the id of the graph being processed.
	Graph string
	// Node and Edge are the indices of the current node or edge, or
	// graph.NotFound when the entity is not of that kind.
	Node, Edge int

	find func(id string) (int, bool)
	name func(idx int) (string, bool)
}

// FindNode resolves a node id in the current graph.
func (s State) FindNode(id string) (int, bool) {
	if s.find == nil {
		return graph.NotFound, false
	}
	return s.find(id)
}

// NodeID returns the id of the node at idx in the current graph.
func (s State) NodeID(idx int) (string, bool) {
	if s.name == nil {
		return "", false
	}
	return s.name(idx)
}

func graphState[G, N, E any](g *graph.Graph[G, N, E]) State {
	return State{
		Graph: g.ID(),
		Node:  graph.NotFound,
		Edge:  graph.NotFound,
		find:  g.FindNode,
		name: func(idx int) (string, bool) {
			n := g.Node(idx)
			if n == nil {
				return "", false
			}
			return n.ID(), true
		},
	}
}

// Field binds one attribute key to part of a T.
type Field[T any] struct {
	Key string
	// Init prepares the zero T before any pair is decoded. Optional.
	Init func(dst *T)
	// Decode parses text into dst and reports whether it succeeded.
	Decode func(s State, text string, dst *T) bool
	// Encode formats src. It reports false when the value should be
	// omitted. A nil Encode makes the field decode-only.
	Encode func(s State, src *T) (string, bool)
}

// Schema is an ordered set of fields for a typed slot of type T.
type Schema[T any] struct {
	fields []Field[T]
	index  map[string]int
}

// NewSchema returns a schema containing fields.
func NewSchema[T any](fields ...Field[T]) *Schema[T] {
	s := &Schema[T]{index: make(map[string]int)}
	for _, f := range fields {
		s.Add(f)
	}
	return s
}

// Add appends f. A later field with the same key replaces the earlier one
// in place.
func (s *Schema[T]) Add(f Field[T]) *Schema[T] {
	if i, ok := s.index[f.Key]; ok {
		s.fields[i] = f
		return s
	}
	s.index[f.Key] = len(s.fields)
	s.fields = append(s.fields, f)
	return s
}

// Keys returns the attribute keys of the schema in order.
func (s *Schema[T]) Keys() []string {
	keys := make([]string, len(s.fields))
	for i, f := range s.fields {
		keys[i] = f.Key
	}
	return keys
}

func (s *Schema[T]) field(key string) (Field[T], bool) {
	i, ok := s.index[key]
	if !ok {
		return Field[T]{}, false
	}
	return s.fields[i], true
}

// decode resets a.Typed and consumes every pair that parses.
func (s *Schema[T]) decode(st State, a *graph.Attrs[T]) int {
	var zero T
	a.Typed = zero
	for _, f := range s.fields {
		if f.Init != nil {
			f.Init(&a.Typed)
		}
	}

	bound := 0
	for _, key := range a.Keys() {
		f, ok := s.field(key)
		if !ok || f.Decode == nil {
			continue
		}
		text, _ := a.Lookup(key)
		if f.Decode(st, text, &a.Typed) {
			a.Delete(key)
			bound++
		}
	}
	return bound
}

// encode writes every non-omitted field of a.Typed as a pair.
func (s *Schema[T]) encode(st State, a *graph.Attrs[T]) int {
	written := 0
	for _, f := range s.fields {
		if f.Encode == nil {
			continue
		}
		if text, ok := f.Encode(st, &a.Typed); ok {
			a.Set(f.Key, text)
			written++
		}
	}
	return written
}
