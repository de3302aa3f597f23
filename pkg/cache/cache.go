// Package cache provides byte-level caching for pipeline results.
//
// Designs and layouts are deterministic functions of their inputs, so their
// entries never expire; rendered artifacts depend on asset files on disk and
// get a finite time-to-live. Keys are built by a Keyer so every stage hashes
// its full input set and stale entries can never be confused across stages.
package cache

import (
	"context"
	"time"
)

// Time-to-live per pipeline stage. Zero means entries never expire.
const (
	// TTLDesign applies to combinatorial designs, which are pure
	// functions of the symbols-per-card count.
	TTLDesign = time.Duration(0)

	// TTLLayout applies to card layouts, pure functions of the symbol
	// identifiers and the layout configuration.
	TTLLayout = time.Duration(0)

	// TTLArtifact applies to rendered card images, which also depend on
	// emoji assets that may change on disk.
	TTLArtifact = 30 * 24 * time.Hour
)

// Cache stores opaque byte values under string keys.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
