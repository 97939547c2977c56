package codec

import (
	"slices"
	"testing"
)

func TestNextLine(t *testing.T) {
	buf := "first\nsecond\r\n\n\nthird"

	line, next, ok := NextLine(buf, 0)
	if !ok || line != "first" {
		t.Fatalf("NextLine(0) = %q, %v, want %q, true", line, ok, "first")
	}
	line, next, ok = NextLine(buf, next)
	if !ok || line != "second" {
		t.Fatalf("NextLine = %q, %v, want %q, true", line, ok, "second")
	}
	line, next, ok = NextLine(buf, next)
	if !ok || line != "third" {
		t.Fatalf("NextLine = %q, %v, want %q, true", line, ok, "third")
	}
	if next != len(buf) {
		t.Errorf("cursor = %d, want %d", next, len(buf))
	}
	if _, _, ok = NextLine(buf, next); ok {
		t.Error("NextLine at end of buffer should report no more lines")
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"only terminators", "\n\r\n\n", nil},
		{"single", "abc", []string{"abc"}},
		{"trailing newline", "abc\n", []string{"abc"}},
		{"leading newlines", "\n\nabc\ndef", []string{"abc", "def"}},
		{"blank lines collapse", "a\n\n\n\nb", []string{"a", "b"}},
		{"cr only", "a\rb\rc", []string{"a", "b", "c"}},
		{"quoted newline", "desc \"one\ntwo\"\nnext", []string{"desc \"one\ntwo\"", "next"}},
		{"quoted crlf", "k \"x\r\ny\"\r\nz", []string{"k \"x\r\ny\"", "z"}},
		{"unterminated quote runs to end", "k \"open\nstill open", []string{"k \"open\nstill open"}},
		{"whitespace kept", "  indented\t\n", []string{"  indented\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Lines(tt.in))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Lines(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLinesRestartable(t *testing.T) {
	seq := Lines("a\nb\nc")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("second iteration = %q, want %q", second, first)
	}

	// Early break must not disturb later iterations.
	for line := range seq {
		if line == "a" {
			break
		}
	}
	if got := slices.Collect(seq); !slices.Equal(got, first) {
		t.Errorf("after break = %q, want %q", got, first)
	}
}

func TestNumberedLines(t *testing.T) {
	buf := "\n-g G\ndesc \"a\nb\"\n\n-n A\r\nx 1"

	var nums []int
	var lines []string
	for n, line := range NumberedLines(buf) {
		nums = append(nums, n)
		lines = append(lines, line)
	}

	wantLines := []string{"-g G", "desc \"a\nb\"", "-n A", "x 1"}
	wantNums := []int{2, 3, 6, 7}
	if !slices.Equal(lines, wantLines) {
		t.Errorf("lines = %q, want %q", lines, wantLines)
	}
	if !slices.Equal(nums, wantNums) {
		t.Errorf("line numbers = %v, want %v", nums, wantNums)
	}
}
