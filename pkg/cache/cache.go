// Package cache provides byte-level caching for rendered scene artifacts.
//
// A [Cache] stores opaque values under string keys produced by a [Keyer].
// Three backends are provided:
//
//   - [FileCache] stores entries as JSON files under a directory (CLI default)
//   - [RedisCache] shares entries between machines through Redis
//   - [NullCache] never stores anything (--no-cache)
//
// Keys are content addressed: the keyer hashes the evaluated scene together
// with every option that affects the output, so editing a document or
// changing the format produces a new key instead of a stale hit.
package cache

import (
	"context"
	"time"
)

// Cache is a key/value store with optional per-entry expiration.
//
// Get reports a miss as (nil, false, nil); an error means the backend
// itself failed. A ttl of zero means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// KeyTypeArtifact is the key type reported to cache hooks for artifacts.
const KeyTypeArtifact = "artifact"

// ArtifactTTL is how long rendered artifacts are kept.
const ArtifactTTL = 7 * 24 * time.Hour

// ArtifactKeyOpts holds the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format    string `json:"format"`
	Detailed  bool   `json:"detailed"`
	Precision int    `json:"precision"`
}

// Keyer generates cache keys.
type Keyer interface {
	// ArtifactKey addresses a rendered artifact of an evaluated scene.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey hashes the scene hash together with the options.
func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}
