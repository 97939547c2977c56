package codec

import "iter"

func isTerminator(c byte) bool { return c == '\n' || c == '\r' }

// NextLine returns the logical line starting at cursor and the cursor
// position of the line after it.
//
// The line ends at the first \n or \r seen outside a quoted span; every
// terminator that follows is consumed so that blank lines collapse. Leading
// terminators at cursor are skipped. ok is false once no bytes remain.
// The returned line is untrimmed.
func NextLine(buf string, cursor int) (line string, next int, ok bool) {
	for cursor < len(buf) && isTerminator(buf[cursor]) {
		cursor++
	}
	if cursor >= len(buf) {
		return "", len(buf), false
	}

	start := cursor
	quoted := false
	for cursor < len(buf) && (quoted || !isTerminator(buf[cursor])) {
		if buf[cursor] == '"' {
			quoted = !quoted
		}
		cursor++
	}
	end := cursor
	for cursor < len(buf) && isTerminator(buf[cursor]) {
		cursor++
	}
	return buf[start:end], cursor, true
}

// Lines returns the logical lines of buf in order.
// Each iteration of the sequence starts again from the beginning of buf.
func Lines(buf string) iter.Seq[string] {
	return func(yield func(string) bool) {
		cursor := 0
		for {
			line, next, ok := NextLine(buf, cursor)
			if !ok || !yield(line) {
				return
			}
			cursor = next
		}
	}
}

// NumberedLines is like [Lines] but also yields the 1-based physical line
// number on which each logical line starts.
func NumberedLines(buf string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		cursor, lineNo := 0, 1
		for {
			skipped := cursor
			for skipped < len(buf) && isTerminator(buf[skipped]) {
				skipped++
			}
			lineNo += countBreaks(buf[cursor:skipped])

			line, next, ok := NextLine(buf, cursor)
			if !ok || !yield(lineNo, line) {
				return
			}
			lineNo += countBreaks(buf[skipped:next])
			cursor = next
		}
	}
}

// countBreaks counts physical line breaks, treating \r\n as one.
func countBreaks(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			n++
		case '\r':
			if i+1 >= len(s) || s[i+1] != '\n' {
				n++
			}
		}
	}
	return n
}
