// Package cache stores encoded banner artifacts between runs.
//
// Rendering is deterministic for a given configuration, style, format and
// seed, so the bytes produced by a run can be reused. [FileCache] keeps
// entries on disk for the CLI; [NullCache] disables caching.
//
// Keys are produced by a [Keyer]. [DefaultKeyer] hashes the inputs that
// influence the output; [ScopedKeyer] prefixes keys, which the pipeline uses
// to separate entries written by different builds.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long an encoded banner stays cached.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiration.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKeyOpts are the output settings that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Style   string  `json:"style"`
	Format  string  `json:"format"`
	Scale   float64 `json:"scale"`
	Quality int     `json:"quality,omitempty"`
	Seed    uint64  `json:"seed,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key of an encoded artifact for a banner
	// configuration identified by configHash.
	ArtifactKey(configHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a [DefaultKeyer].
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ArtifactKey(configHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", configHash, opts)
}
