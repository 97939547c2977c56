package bind

import (
	"strconv"
	"strings"

	"github.com/matzehuels/graphnet/pkg/graph"
)

// Float binds a float32 written in decimal or exponent form.
// Zero is omitted on encode.
func Float[T any](key string, at func(*T) *float32) Field[T] {
	return Field[T]{
		Key: key,
		Decode: func(_ State, text string, dst *T) bool {
			v, ok := parseFloat(text)
			if ok {
				*at(dst) = v
			}
			return ok
		},
		Encode: func(_ State, src *T) (string, bool) {
			v := *at(src)
			if v == 0 {
				return "", false
			}
			return formatFloat(v), true
		},
	}
}

// Vec2 binds two comma-separated floats such as "1.5, -2".
// The zero vector is omitted on encode.
func Vec2[T any](key string, at func(*T) *[2]float32) Field[T] {
	return Field[T]{
		Key: key,
		Decode: func(_ State, text string, dst *T) bool {
			var v [2]float32
			if !parseFloats(text, v[:]) {
				return false
			}
			*at(dst) = v
			return true
		},
		Encode: func(_ State, src *T) (string, bool) {
			v := *at(src)
			if v == ([2]float32{}) {
				return "", false
			}
			return formatFloats(v[:]), true
		},
	}
}

// Vec3 binds three comma-separated floats.
// The zero vector is omitted on encode.
func Vec3[T any](key string, at func(*T) *[3]float32) Field[T] {
	return Field[T]{
		Key: key,
		Decode: func(_ State, text string, dst *T) bool {
			var v [3]float32
			if !parseFloats(text, v[:]) {
				return false
			}
			*at(dst) = v
			return true
		},
		Encode: func(_ State, src *T) (string, bool) {
			v := *at(src)
			if v == ([3]float32{}) {
				return "", false
			}
			return formatFloats(v[:]), true
		},
	}
}

// Int binds a base-10 int32. Zero is omitted on encode.
func Int[T any](key string, at func(*T) *int32) Field[T] {
	return Field[T]{
		Key: key,
		Decode: func(_ State, text string, dst *T) bool {
			v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
			if err != nil {
				return false
			}
			*at(dst) = int32(v)
			return true
		},
		Encode: func(_ State, src *T) (string, bool) {
			v := *at(src)
			if v == 0 {
				return "", false
			}
			return strconv.FormatInt(int64(v), 10), true
		},
	}
}

// String binds the value verbatim. The empty string is omitted on encode.
func String[T any](key string, at func(*T) *string) Field[T] {
	return Field[T]{
		Key: key,
		Decode: func(_ State, text string, dst *T) bool {
			*at(dst) = text
			return true
		},
		Encode: func(_ State, src *T) (string, bool) {
			v := *at(src)
			return v, v != ""
		},
	}
}

// NodeRef binds a node id of the current graph, stored as its index.
// The index starts out as graph.NotFound; ids that do not resolve are left
// as pairs. NotFound is omitted on encode.
func NodeRef[T any](key string, at func(*T) *int) Field[T] {
	return Field[T]{
		Key:  key,
		Init: func(dst *T) { *at(dst) = graph.NotFound },
		Decode: func(s State, text string, dst *T) bool {
			idx, ok := s.FindNode(text)
			if ok {
				*at(dst) = idx
			}
			return ok
		},
		Encode: func(s State, src *T) (string, bool) {
			idx := *at(src)
			if idx == graph.NotFound {
				return "", false
			}
			return s.NodeID(idx)
		},
	}
}

func parseFloat(text string) (float32, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}

func parseFloats(text string, dst []float32) bool {
	parts := strings.Split(text, ",")
	if len(parts) != len(dst) {
		return false
	}
	for i, p := range parts {
		v, ok := parseFloat(p)
		if !ok {
			return false
		}
		dst[i] = v
	}
	return true
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func formatFloats(v []float32) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = formatFloat(f)
	}
	return strings.Join(parts, ", ")
}
