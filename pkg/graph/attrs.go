package graph

import (
	"iter"
	"slices"

	"github.com/matzehuels/graphnet/pkg/errors"
)

// Attrs is the attribute store attached to a library, graph, node or edge.
//
// It holds string key/value pairs, which are what the file format persists,
// plus a Typed slot for application data. Typed is never serialized; callers
// fill it after loading, either by hand or with the bind package.
//
// Pairs keep their insertion order so that saving is deterministic. The zero
// value is an empty, ready to use store.
type Attrs[T any] struct {
	pairs map[string]string
	keys  []string

	// Typed is runtime-only application data.
	Typed T
}

// Set stores value under key, replacing any previous value. A replaced key
// keeps its original position.
func (a *Attrs[T]) Set(key, value string) *Attrs[T] {
	if a.pairs == nil {
		a.pairs = make(map[string]string)
	}
	if _, exists := a.pairs[key]; !exists {
		a.keys = append(a.keys, key)
	}
	a.pairs[key] = value
	return a
}

// Get returns the value stored under key, or a NOT_FOUND error.
func (a *Attrs[T]) Get(key string) (string, error) {
	v, ok := a.pairs[key]
	if !ok {
		return "", errors.NotFound("attribute %q", key)
	}
	return v, nil
}

// Lookup returns the value stored under key and whether it was present.
func (a *Attrs[T]) Lookup(key string) (string, bool) {
	v, ok := a.pairs[key]
	return v, ok
}

// Has reports whether key is present.
func (a *Attrs[T]) Has(key string) bool {
	_, ok := a.pairs[key]
	return ok
}

// Delete removes key if present.
func (a *Attrs[T]) Delete(key string) {
	if _, ok := a.pairs[key]; !ok {
		return
	}
	delete(a.pairs, key)
	a.keys = slices.DeleteFunc(a.keys, func(k string) bool { return k == key })
}

// Len returns the number of pairs.
func (a *Attrs[T]) Len() int { return len(a.keys) }

// Keys returns a copy of the keys in insertion order.
func (a *Attrs[T]) Keys() []string { return slices.Clone(a.keys) }

// All iterates over the pairs in insertion order.
func (a *Attrs[T]) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range a.keys {
			if !yield(k, a.pairs[k]) {
				return
			}
		}
	}
}

// Map returns a copy of the pairs. It is never nil.
func (a *Attrs[T]) Map() map[string]string {
	m := make(map[string]string, len(a.keys))
	for _, k := range a.keys {
		m[k] = a.pairs[k]
	}
	return m
}
