package cache

// Keyer builds cache keys within a scope.
//
// The CLI scopes keys by program version so that a new Graphviz build or
// DOT generator never serves artifacts produced by an older one.
type Keyer struct {
	prefix string
}

// NewKeyer returns a keyer whose keys start with scope. An empty scope
// produces unscoped keys.
func NewKeyer(scope string) Keyer {
	if scope == "" {
		return Keyer{}
	}
	return Keyer{prefix: scope + ":"}
}

// RenderKey identifies the rendering of dot in format.
func (k Keyer) RenderKey(dot, format string) string {
	return k.prefix + hashKey("render", format, dot)
}
