package io

import (
	"strings"
	"testing"

	"github.com/matzehuels/graphnet/pkg/errors"
	"github.com/matzehuels/graphnet/pkg/graph"
)

func load(t *testing.T, data string) *graph.AnyLibrary {
	t.Helper()
	lib, err := Load[any, any, any, any](data)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return lib
}

func mustGraph[L, G, N, E any](t *testing.T, lib *graph.Library[L, G, N, E], id string) *graph.Graph[G, N, E] {
	t.Helper()
	g, err := lib.Get(id)
	if err != nil {
		t.Fatalf("Get(%q) error = %v", id, err)
	}
	return g
}

func wantAttr[T any](t *testing.T, a *graph.Attrs[T], key, want string) {
	t.Helper()
	got, err := a.Get(key)
	if err != nil {
		t.Errorf("Get(%q) error = %v", key, err)
		return
	}
	if got != want {
		t.Errorf("Get(%q) = %q, want %q", key, got, want)
	}
}

func TestLoadSample(t *testing.T) {
	lib := load(t, "-g G1\ndesc hello\n-n A\n-n B\n-e A, B\nweight 5\n")

	if lib.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", lib.Len())
	}
	g := mustGraph(t, lib, "G1")
	wantAttr(t, &g.Attrs, "desc", "hello")

	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Fatalf("got %d nodes %d edges, want 2 and 1", g.NodeCount(), g.EdgeCount())
	}
	if g.Node(0).ID() != "A" || g.Node(1).ID() != "B" {
		t.Errorf("node ids = %q %q, want A B", g.Node(0).ID(), g.Node(1).ID())
	}
	e := g.Edge(0)
	if e.Start() != 0 || e.End() != 1 {
		t.Errorf("edge = %d -> %d, want 0 -> 1", e.Start(), e.End())
	}
	wantAttr(t, &e.Attrs, "weight", "5")
	if g.Node(0).Attrs.Len() != 0 || g.Node(1).Attrs.Len() != 0 {
		t.Error("nodes should have no attributes")
	}
	if g.Attrs.Len() != 1 {
		t.Errorf("graph attrs = %v, want only desc", g.Attrs.Keys())
	}
}

func TestLoadCommentsAndBlankLines(t *testing.T) {
	lib := load(t, strings.Join([]string{
		"top 1",
		"# library comment",
		"",
		"-g G",
		"# graph comment",
		"a 1",
		"",
		"",
		"-n X",
		"\t# indented comment",
		"b 2",
	}, "\n"))

	wantAttr(t, &lib.Attrs, "top", "1")
	if lib.Attrs.Len() != 1 {
		t.Errorf("library attrs = %v, want only top", lib.Attrs.Keys())
	}
	g := mustGraph(t, lib, "G")
	wantAttr(t, &g.Attrs, "a", "1")
	if g.Attrs.Len() != 1 {
		t.Errorf("graph attrs = %v, want only a", g.Attrs.Keys())
	}
	n, ok := g.NodeByID("X")
	if !ok {
		t.Fatal("node X missing")
	}
	wantAttr(t, &n.Attrs, "b", "2")
	if n.Attrs.Len() != 1 {
		t.Errorf("node attrs = %v, want only b", n.Attrs.Keys())
	}
}

func TestLoadActiveContext(t *testing.T) {
	lib := load(t, `
lib yes
-g one
	g1 yes
-n a
	na yes
-n b
	nb yes
-e a, b
	e yes
-g two
	g2 yes
`)
	wantAttr(t, &lib.Attrs, "lib", "yes")

	one := mustGraph(t, lib, "one")
	wantAttr(t, &one.Attrs, "g1", "yes")
	wantAttr(t, &one.Node(0).Attrs, "na", "yes")
	wantAttr(t, &one.Node(1).Attrs, "nb", "yes")
	wantAttr(t, &one.Edge(0).Attrs, "e", "yes")
	if one.Edge(0).Attrs.Len() != 1 {
		t.Errorf("edge attrs = %v", one.Edge(0).Attrs.Keys())
	}

	two := mustGraph(t, lib, "two")
	wantAttr(t, &two.Attrs, "g2", "yes")
	if one.Attrs.Has("g2") {
		t.Error("g2 leaked into graph one")
	}
}

func TestLoadValues(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"plain", `k hello`, "hello"},
		{"inner spaces", `k hello big world`, "hello big world"},
		{"escaped quote", `k say \'hi\'`, `say "hi"`},
		{"escaped backslash", `k c:\\dir`, `c:\dir`},
		{"quoted multi-line", "k \"one\ntwo\"", "one\ntwo"},
		{"quoted padding", `k "  padded  "`, "  padded  "},
		{"quoted empty", `k ""`, ""},
		{"trailing whitespace trimmed", "k value \t", "value"},
		{"leading space kept", "k  value", " value"},
		{"hash in value", "k #not a comment", "#not a comment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := load(t, tt.line)
			wantAttr(t, &lib.Attrs, "k", tt.want)
		})
	}
}

func TestLoadSkipsMalformedCommands(t *testing.T) {
	lib := load(t, strings.Join([]string{
		"-g G",
		"k1 v1",
		"-x ignored",
		"-nA",
		"-",
		"-n",
		"k2 v2",
		"-n\tB",
		"k3 v3",
	}, "\n"))

	g := mustGraph(t, lib, "G")
	wantAttr(t, &g.Attrs, "k1", "v1")
	wantAttr(t, &g.Attrs, "k2", "v2")
	if g.NodeCount() != 1 || g.Node(0).ID() != "B" {
		t.Fatalf("nodes = %d, want only B", g.NodeCount())
	}
	wantAttr(t, &g.Node(0).Attrs, "k3", "v3")
}

func TestLoadEdgeSpacing(t *testing.T) {
	for _, line := range []string{"-e A,B", "-e A, B", "-e   A ,  B  ", "-e\tA,\tB"} {
		lib := load(t, "-g G\n-n A\n-n B\n"+line)
		g := mustGraph(t, lib, "G")
		if g.EdgeCount() != 1 {
			t.Errorf("%q: EdgeCount() = %d, want 1", line, g.EdgeCount())
			continue
		}
		if e := g.Edge(0); e.Start() != 0 || e.End() != 1 {
			t.Errorf("%q: edge = %v", line, e)
		}
	}
}

func TestLoadOverwritesGraph(t *testing.T) {
	lib := load(t, "-g G\n-n A\n-g other\n-g G\n-n B\n")

	if got := lib.IDs(); len(got) != 2 || got[0] != "G" || got[1] != "other" {
		t.Errorf("IDs() = %v, want [G other]", got)
	}
	g := mustGraph(t, lib, "G")
	if g.NodeCount() != 1 || g.Node(0).ID() != "B" {
		t.Errorf("graph G was not replaced: %v", g)
	}
}

func TestLoadLineEndings(t *testing.T) {
	for name, data := range map[string]string{
		"crlf":                "-g G\r\ndesc hi\r\n-n A\r\n",
		"cr":                  "-g G\rdesc hi\r-n A\r",
		"leading terminators": "\n\n\r\n-g G\ndesc hi\n-n A",
	} {
		t.Run(name, func(t *testing.T) {
			g := mustGraph(t, load(t, data), "G")
			wantAttr(t, &g.Attrs, "desc", "hi")
			if g.NodeCount() != 1 {
				t.Errorf("NodeCount() = %d, want 1", g.NodeCount())
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		code     errors.Code
		wantLine string
	}{
		{"attr without value", "-g G\nnovalue\n", errors.ErrCodeInvalidFormat, "line 2"},
		{"library attr without value", "novalue", errors.ErrCodeInvalidFormat, "line 1"},
		{"node outside graph", "k v\n-n A\n", errors.ErrCodeInvalidFormat, "line 2"},
		{"edge outside graph", "-e A, B\n", errors.ErrCodeInvalidFormat, "line 1"},
		{"edge without comma", "-g G\n-n A\n-n B\n-e A B\n", errors.ErrCodeInvalidFormat, "line 4"},
		{"edge to unknown node", "-g G\n-n A\n\n\n-e A, Z\n", errors.ErrCodeNotFound, "line 5"},
		{"edge from unknown node", "-g G\n-n A\n-e Z, A\n", errors.ErrCodeNotFound, "line 3"},
		{"line after multi-line value", "-g G\nd \"a\nb\"\nbad\n", errors.ErrCodeInvalidFormat, "line 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib, err := Load[any, any, any, any](tt.data)
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if lib != nil {
				t.Error("Load() returned a partial library")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %s, want %s (%v)", errors.GetCode(err), tt.code, err)
			}
			if !strings.Contains(err.Error(), tt.wantLine) {
				t.Errorf("error %q does not mention %q", err, tt.wantLine)
			}
		})
	}
}

func TestRead(t *testing.T) {
	lib, err := Read[any, any, any, any](strings.NewReader("-g G\n-n A\n"))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if g := mustGraph(t, lib, "G"); g.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", g.NodeCount())
	}
}
