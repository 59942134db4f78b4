package ports

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by Cache.Get when a key is absent. A miss is not
// a failure; callers recompute and repopulate, the error never reaches an
// HTTP response.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the process-wide store for serialized read-model payloads.
// Entries have no TTL and live until explicitly deleted, so the only way an
// entry leaves the cache is an invalidation event or a process restart.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Has reports whether the key currently holds a value.
	Has(ctx context.Context, key string) bool

	// Get retrieves the stored bytes, or ErrCacheMiss if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting unconditionally.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key; deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}
