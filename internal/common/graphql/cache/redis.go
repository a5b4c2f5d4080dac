package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JulianoL13/identity-verify-sdk/internal/common/graphql"
	"github.com/redis/go-redis/v9"
)

const defaultRedisTTL = 15 * time.Minute

// Redis shares the response cache across processes.
type Redis struct {
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
}

func NewRedis(client *redis.Client, keyPrefix string) *Redis {
	if keyPrefix == "" {
		keyPrefix = "idverify"
	}
	return &Redis{
		client:    client,
		ttl:       defaultRedisTTL,
		keyPrefix: keyPrefix,
	}
}

func (r *Redis) WithTTL(ttl time.Duration) *Redis {
	r.ttl = ttl
	return r
}

func (r *Redis) responseKey(key string) string {
	return fmt.Sprintf("%s:response:%s", r.keyPrefix, key)
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := r.client.Get(ctx, r.responseKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, graphql.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	return payload, nil
}

func (r *Redis) Set(ctx context.Context, key string, payload []byte) error {
	if err := r.client.Set(ctx, r.responseKey(key), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (r *Redis) Flush(ctx context.Context) error {
	var cursor uint64
	pattern := fmt.Sprintf("%s:response:*", r.keyPrefix)

	for {
		keys, next, err := r.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("cache flush scan: %w", err)
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache flush del: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

var _ Store = (*Redis)(nil)
