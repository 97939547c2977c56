// Package io reads and writes graphnet libraries.
//
// # Overview
//
// The native format is a line-oriented text file, conventionally with the
// .fgn extension. It stores library attributes, then each graph with its
// attributes, nodes and edges:
//
//	author ops team
//
//	-g deploy
//		desc "Rolls out a release.
//	Two stages."
//
//	-n build
//		cost 100
//	-n ship
//
//	-e build, ship
//		weight 5
//
// # Grammar
//
// Each logical line (see the codec package) is trimmed and classified:
//
//   - empty lines and lines starting with # are ignored
//   - "-g <id>" starts a graph, replacing any graph with the same id
//   - "-n <id>" appends a node to the current graph
//   - "-e <idA>, <idB>" appends an edge between two existing nodes
//   - anything else is "<key> <value>", split at the first space
//
// A key/value line applies to whichever graph, node or edge was opened
// last, or to the library when nothing has been opened yet. Command lines
// that are too short, or whose third character is not a space or tab, are
// skipped. Values are decoded with codec.Unescape.
//
// # Errors
//
// [Load] is all-or-nothing. A key/value line without a space, a node or
// edge outside of any graph, or an edge line without a comma fails with an
// INVALID_FORMAT error; an edge naming an unknown node fails with NOT_FOUND.
// Errors carry the line number where the offending logical line starts.
//
// # Writing
//
// [Save] is the inverse of [Load]. Values are encoded with codec.Escape and
// wrapped in double quotes when they contain a line break, are empty, or
// have surrounding whitespace, so that they survive the loader's trimming.
//
// # Files
//
// [ImportFile] and [ExportFile] read and write whole files. A path ending in
// ".sz" is snappy-compressed (framed format).
//
// # Other Formats
//
// [WriteJSON] and [WriteYAML] export a library as a structured document for
// other tools; [ReadJSON] and [ReadYAML] import that document back.
package io
