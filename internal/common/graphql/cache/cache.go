package cache

import "context"

// Store keeps raw response payloads keyed by operation fingerprint.
// A Get on an unknown or expired key returns graphql.ErrCacheMiss.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, payload []byte) error
	Flush(ctx context.Context) error
}
