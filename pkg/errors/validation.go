package errors

import (
	"strings"
	"unicode"
)

// ValidateID checks that a graph or node identifier survives a save/load
// round trip through the text format.
//
// The rules mirror how the loader tokenizes command lines:
//   - No empty ids
//   - No line terminators (a command always fits on one line)
//   - No leading or trailing whitespace (lines are trimmed before parsing)
//   - No control characters
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidID, "id cannot be empty")
	}
	if strings.ContainsAny(id, "\r\n") {
		return New(ErrCodeInvalidID, "id %q contains a line break", id)
	}
	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidID, "id %q has surrounding whitespace", id)
	}
	for _, r := range id {
		if unicode.IsControl(r) && r != '\t' {
			return New(ErrCodeInvalidID, "id %q contains control characters", id)
		}
	}
	return nil
}

// ValidateNodeID applies [ValidateID] plus the edge-command restriction:
// edge lines separate their endpoints with a comma, so node ids cannot
// contain one.
func ValidateNodeID(id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	if strings.Contains(id, ",") {
		return New(ErrCodeInvalidID, "node id %q contains a comma", id)
	}
	return nil
}

// ValidateKey checks that an attribute key can be written as the first word
// of an attribute line.
func ValidateKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidID, "attribute key cannot be empty")
	}
	if strings.ContainsAny(key, " \t\r\n") {
		return New(ErrCodeInvalidID, "attribute key %q contains whitespace", key)
	}
	if strings.HasPrefix(key, "#") || strings.HasPrefix(key, "-") {
		return New(ErrCodeInvalidID, "attribute key %q starts with a reserved character", key)
	}
	return nil
}

// ValidatePath validates an output file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
