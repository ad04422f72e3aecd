// Package cache stores rendered diagrams so repeated renders of an unchanged
// layout skip Graphviz.
//
// Backends implement [Cache]: [FileCache] keeps entries under a directory
// (the CLI uses ~/.cache/mosaic/), [NullCache] disables caching.
// Keys come from [DiagramKey], which hashes the DOT source and output format.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was found. Expired or
	// corrupt entries count as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
