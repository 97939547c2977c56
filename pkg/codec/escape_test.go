package codec

import (
	"strings"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "hello world", "hello world"},
		{"backslash", `a\b`, `a\\b`},
		{"quote", `say "hi"`, `say \'hi\'`},
		{"both", `"\"`, `\'\\\'`},
		{"newline untouched", "a\nb", "a\nb"},
		{"single quote untouched", "it's", "it's"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "hello", "hello"},
		{"escaped quote", `\'`, `"`},
		{"escaped backslash", `\\`, `\`},
		{"escaped other", `\n`, "n"},
		{"bare quotes dropped", `"multi"`, "multi"},
		{"trailing backslash kept", `abc\`, `abc\`},
		{"quote then escape", `"a\'b"`, `a"b`},
		{"single quote untouched", "it's", "it's"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unescape(tt.in); got != tt.want {
				t.Errorf("Unescape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnescapeEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		`back\slash`,
		`trailing\`,
		`\\double`,
		"line one\nline two\r\nline three",
		`Here's some "text" with some quotes in it, ouch!`,
		`And a single " quote in the middle.`,
		`\'`,
	}

	for _, in := range inputs {
		if got := Unescape(Escape(in)); got != in {
			t.Errorf("Unescape(Escape(%q)) = %q, want identity", in, got)
		}
	}
}

func TestEscapeUnescapeDropsBareQuote(t *testing.T) {
	// Bare quotes in stored text are structural, so decoding discards them
	// and encoding the result cannot bring them back.
	in := `a "b" c`
	decoded := Unescape(in)
	if decoded != "a b c" {
		t.Fatalf("Unescape(%q) = %q, want %q", in, decoded, "a b c")
	}
	if got := Escape(decoded); got == in {
		t.Errorf("Escape(Unescape(%q)) unexpectedly restored the bare quotes", in)
	}
	if strings.Contains(Escape(decoded), `"`) {
		t.Errorf("Escape output must never contain a bare quote, got %q", Escape(decoded))
	}
}
