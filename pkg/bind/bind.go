package bind

import "github.com/matzehuels/graphnet/pkg/graph"

// Decode binds every graph in lib. A nil schema leaves that kind of
// entity untouched. It returns the number of pairs consumed.
func Decode[L, G, N, E any](lib *graph.Library[L, G, N, E], graphs *Schema[G], nodes *Schema[N], edges *Schema[E]) int {
	total := 0
	for _, g := range lib.Graphs() {
		total += DecodeGraph(g, graphs, nodes, edges)
	}
	return total
}

// DecodeGraph binds a single graph, its nodes and its edges.
func DecodeGraph[G, N, E any](g *graph.Graph[G, N, E], graphs *Schema[G], nodes *Schema[N], edges *Schema[E]) int {
	st := graphState(g)
	total := 0
	if graphs != nil {
		total += graphs.decode(st, &g.Attrs)
	}
	if nodes != nil {
		for i, n := range g.Nodes() {
			st.Node = i
			total += nodes.decode(st, &n.Attrs)
		}
		st.Node = graph.NotFound
	}
	if edges != nil {
		for i, e := range g.Edges() {
			st.Edge = i
			total += edges.decode(st, &e.Attrs)
		}
	}
	return total
}

// Encode writes the typed values of every graph in lib back as pairs.
// It returns the number of pairs written.
func Encode[L, G, N, E any](lib *graph.Library[L, G, N, E], graphs *Schema[G], nodes *Schema[N], edges *Schema[E]) int {
	total := 0
	for _, g := range lib.Graphs() {
		total += EncodeGraph(g, graphs, nodes, edges)
	}
	return total
}

// EncodeGraph is like [Encode] for a single graph.
func EncodeGraph[G, N, E any](g *graph.Graph[G, N, E], graphs *Schema[G], nodes *Schema[N], edges *Schema[E]) int {
	st := graphState(g)
	total := 0
	if graphs != nil {
		total += graphs.encode(st, &g.Attrs)
	}
	if nodes != nil {
		for i, n := range g.Nodes() {
			st.Node = i
			total += nodes.encode(st, &n.Attrs)
		}
		st.Node = graph.NotFound
	}
	if edges != nil {
		for i, e := range g.Edges() {
			st.Edge = i
			total += edges.encode(st, &e.Attrs)
		}
	}
	return total
}
