package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/graphnet/pkg/graph"
	"github.com/matzehuels/graphnet/pkg/io"
)

func styledGraph(t *testing.T, data string) *Graph {
	t.Helper()
	lib, err := io.Load[any, any, Style, any](data)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	ApplyStyles(lib)
	ids := lib.IDs()
	if len(ids) == 0 {
		t.Fatal("no graphs")
	}
	g, _ := lib.Get(ids[0])
	return g
}

func TestApplyStyles(t *testing.T) {
	g := styledGraph(t, `
-g G
-n a
	label Alpha
	color "#ff0000"
	pos 10, 20
	cost 3
-n b
	pos somewhere
`)
	a := g.Node(0)
	want := Style{Label: "Alpha", Color: "#ff0000", Pos: [2]float32{10, 20}}
	if a.Attrs.Typed != want {
		t.Errorf("style = %+v, want %+v", a.Attrs.Typed, want)
	}
	if a.X != 10 || a.Y != 20 {
		t.Errorf("coordinates = %v,%v, want 10,20", a.X, a.Y)
	}
	if got := a.Attrs.Keys(); len(got) != 1 || got[0] != "cost" {
		t.Errorf("remaining pairs = %v, want [cost]", got)
	}
	if b := g.Node(1); !b.Attrs.Has("pos") {
		t.Error("unparseable pos should stay as a pair")
	}
}

func TestToDOT(t *testing.T) {
	g := styledGraph(t, `
-g G
-n a
	label Alpha
	shape ellipse
	cost 3
-n a
-n b
-e a, b
	weight 5
`)

	tests := []struct {
		name    string
		opts    Options
		want    []string
		notWant []string
	}{
		{
			name: "plain",
			want: []string{
				"digraph G {",
				`n0 [label="Alpha", shape="ellipse"];`,
				`n1 [label="a"];`,
				`n2 [label="b"];`,
				"n0 -> n2;",
			},
			notWant: []string{"cost", "weight", "layout=", "labelloc"},
		},
		{
			name: "detailed",
			opts: Options{Detailed: true},
			want: []string{
				`label="G";`,
				`n0 [label="Alpha\ncost: 3", shape="ellipse"];`,
				`n0 -> n2 [label="weight: 5"];`,
			},
		},
		{
			name: "neato",
			opts: Options{Layout: "neato"},
			want: []string{`layout="neato";`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dot := ToDOT(g, tt.opts)
			for _, s := range tt.want {
				if !strings.Contains(dot, s) {
					t.Errorf("DOT missing %q:\n%s", s, dot)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(dot, s) {
					t.Errorf("DOT should not contain %q:\n%s", s, dot)
				}
			}
		})
	}
}

func TestToDOTPositions(t *testing.T) {
	g := graph.NewGraph[any, Style, any]("g")
	n := g.Node(g.AddNode("a"))
	n.X, n.Y = 1.5, -2

	dot := ToDOT(g, Options{Layout: "neato"})
	if !strings.Contains(dot, `pos="1.5,-2!"`) {
		t.Errorf("DOT missing pinned position:\n%s", dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(graph.NewGraph[any, Style, any]("empty"), Options{})
	if !strings.HasPrefix(dot, "digraph G {\n") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("unexpected DOT:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Error("empty graph should have no edges")
	}
}
