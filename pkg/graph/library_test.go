package graph

import (
	"slices"
	"testing"

	"github.com/matzehuels/graphnet/pkg/errors"
)

func TestLibraryAddGet(t *testing.T) {
	lib := NewLibrary[any, any, any, any]()
	g := lib.Add("G1")
	g.AddNode("a")

	got, err := lib.Get("G1")
	if err != nil {
		t.Fatalf("Get(G1): %v", err)
	}
	if got != g {
		t.Error("Get returned a different graph")
	}
	if got.ID() != "G1" {
		t.Errorf("ID() = %q, want G1", got.ID())
	}
}

func TestLibraryGetMissing(t *testing.T) {
	lib := NewLibrary[any, any, any, any]()
	if _, err := lib.Get("nope"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Get(nope) error = %v, want NOT_FOUND", err)
	}
	if _, ok := lib.Lookup("nope"); ok {
		t.Error("Lookup(nope) reported found")
	}
}

func TestLibraryAddOverwrites(t *testing.T) {
	lib := NewLibrary[any, any, any, any]()
	lib.Add("a")
	old := lib.Add("b")
	old.AddNode("x")
	lib.Add("c")

	fresh := lib.Add("b")
	if fresh == old {
		t.Fatal("Add must create a new graph on collision")
	}
	if fresh.NodeCount() != 0 {
		t.Errorf("overwritten graph has %d nodes, want 0", fresh.NodeCount())
	}
	if lib.Len() != 3 {
		t.Errorf("Len() = %d, want 3", lib.Len())
	}
	if ids := lib.IDs(); !slices.Equal(ids, []string{"a", "b", "c"}) {
		t.Errorf("IDs() = %v, want [a b c]", ids)
	}
}

func TestLibraryDelete(t *testing.T) {
	lib := NewLibrary[any, any, any, any]()
	lib.Add("a")
	lib.Add("b")

	lib.Delete("a")
	lib.Delete("missing")

	if lib.Len() != 1 {
		t.Errorf("Len() = %d, want 1", lib.Len())
	}
	if _, ok := lib.Lookup("a"); ok {
		t.Error("a still present after Delete")
	}

	var ids []string
	for id, g := range lib.Graphs() {
		if g.ID() != id {
			t.Errorf("Graphs() yielded id %q for graph %q", id, g.ID())
		}
		ids = append(ids, id)
	}
	if !slices.Equal(ids, []string{"b"}) {
		t.Errorf("Graphs() ids = %v, want [b]", ids)
	}
}

func TestLibraryTypedSlots(t *testing.T) {
	type libInfo struct{ Author string }
	type nodeInfo struct{ Cost int }

	lib := NewLibrary[libInfo, any, nodeInfo, any]()
	lib.Attrs.Typed.Author = "me"
	g := lib.Add("g")
	n := g.Node(g.AddNode("a"))
	n.Attrs.Typed.Cost = 100

	if lib.Attrs.Typed.Author != "me" || n.Attrs.Typed.Cost != 100 {
		t.Error("typed slots did not hold their values")
	}
}

func TestLibraryString(t *testing.T) {
	lib := NewLibrary[any, any, any, any]()
	lib.Add("a")
	if got := lib.String(); got != "Library - 1 graphs" {
		t.Errorf("String() = %q", got)
	}
}
