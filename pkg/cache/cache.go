// Package cache is the invalidation-driven collection cache behind the
// marketplace reads. Mutations delete the cached collection; the next read
// repopulates it (cache-aside), which gives read-after-write without
// incremental patching.
package cache

import (
	"context"
	"time"
)

// Store is the narrow cache contract. Values are JSON-encoded by the
// implementations; Get reports a miss with found=false, not an error.
type Store interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
