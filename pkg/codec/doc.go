// Package codec implements the text transforms underneath the graphnet file
// format: value escaping and the quote-aware logical-line tokenizer.
//
// # Escaping
//
// Attribute values are written with [Escape] and read back with [Unescape].
// The pair is deliberately asymmetric to stay compatible with existing files:
//
//	Escape:   \  ->  \\      "  ->  \'
//	Unescape: every literal " is dropped first, then \' -> " and \X -> X
//
// A literal double quote in the file is therefore never data. It only marks
// the boundaries of a value that spans several physical lines, which the
// writer wraps in quotes. Unescape(Escape(s)) == s holds for every s; the
// reverse direction does not hold for text containing a bare quote.
//
// # Logical lines
//
// [NextLine] and [Lines] split a buffer into logical lines. A double quote
// toggles a quoted span, and line terminators inside a quoted span do not end
// the line. Runs of terminators after a line are consumed together, so blank
// lines never appear as separate tokens.
//
// All functions are stateless and safe for concurrent use.
package codec
