// Package cache stores rendered artifacts between CLI runs.
//
// Rendering a large graph through Graphviz is slow compared to parsing it,
// so the render command memoizes its output keyed by a hash of the DOT
// source and the output format. Two implementations are provided:
//
//   - [FileCache] keeps entries as JSON files under a directory, sharded by
//     the first two hex digits of the key hash, with optional expiry.
//   - [NullCache] never stores anything; it is used when caching is
//     disabled.
//
// Cache hits, misses and writes are reported to the hooks registered with
// the observability package.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was present.
	// Expired and unreadable entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
