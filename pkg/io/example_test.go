package io_test

import (
	"fmt"

	"github.com/matzehuels/graphnet/pkg/graph"
	"github.com/matzehuels/graphnet/pkg/io"
)

func ExampleLoad() {
	lib, err := io.Load[any, any, any, any](`
# release pipeline
-g deploy
	desc "Rolls out a release.
Two stages."
-n build
-n ship
-e build, ship
	weight 5
`)
	if err != nil {
		fmt.Println(err)
		return
	}
	g, _ := lib.Get("deploy")
	desc, _ := g.Attrs.Get("desc")
	fmt.Println(g)
	fmt.Printf("%q\n", desc)
	for _, e := range g.Edges() {
		w, _ := e.Attrs.Get("weight")
		fmt.Println(g.Node(e.Start()).ID(), "->", g.Node(e.End()).ID(), "weight", w)
	}
	// Output:
	// Graph deploy - N:2 E:1
	// "Rolls out a release.\nTwo stages."
	// build -> ship weight 5
}

func ExampleLoad_error() {
	_, err := io.Load[any, any, any, any]("-g G\n-n A\n-e A, B\n")
	fmt.Println(err)
	// Output:
	// line 3: NOT_FOUND: edge end node "B" in graph "G"
}

func ExampleSaveGraph() {
	g := graph.NewGraph[any, any, any]("g")
	g.AddNode("a")
	g.AddNode("b")
	g.AddEdge(0, 1)
	fmt.Print(io.SaveGraph(g))
	// Output:
	// -g g
	//
	// -n a
	// -n b
	//
	// -e a, b
}
