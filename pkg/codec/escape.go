package codec

import "strings"

// Escape encodes text so it can be stored as an attribute value.
// Backslashes are doubled and double quotes become \' .
func Escape(text string) string {
	if !strings.ContainsAny(text, `\"`) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + 8)
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '"':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Unescape decodes a stored attribute value.
//
// Every literal double quote is removed before decoding, since quotes in the
// file only delimit multi-line values. A backslash followed by ' yields a
// double quote, a backslash followed by any other byte yields that byte, and
// a trailing lone backslash is kept as is.
func Unescape(text string) string {
	text = strings.ReplaceAll(text, `"`, "")
	if !strings.Contains(text, `\`) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\\' && i+1 < len(text) {
			i++
			if text[i] == '\'' {
				b.WriteByte('"')
			} else {
				b.WriteByte(text[i])
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
