// Package bind moves attribute pairs into typed values and back.
//
// Attribute stores keep every pair as a string. Applications that want
// structured data describe it with a [Schema]: a list of fields, each
// naming the attribute key it consumes and how to parse and format it.
//
//	type Edge struct {
//	    Weight float32
//	    Via    int
//	}
//
//	edges := bind.NewSchema(
//	    bind.Float("weight", func(e *Edge) *float32 { return &e.Weight }),
//	    bind.NodeRef("via", func(e *Edge) *int { return &e.Via }),
//	)
//	bind.Decode(lib, nil, nil, edges)
//
// [Decode] resets each entity's typed slot, parses every pair whose key
// has a field, and removes the pairs that parsed. Pairs without a field,
// or whose value does not parse, stay in the string map untouched.
// [Encode] is the inverse: each field with a non-zero value is written
// back as a pair so that it is included when the library is saved.
//
// Node references are stored as node indices and resolved by id against
// the graph being decoded.
package bind
