package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/JulianoL13/identity-verify-sdk/internal/common/graphql"
	"github.com/JulianoL13/identity-verify-sdk/internal/common/graphql/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("get on unknown key misses", func(t *testing.T) {
		store := cache.NewMemory()

		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, graphql.ErrCacheMiss)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		store := cache.NewMemory()

		require.NoError(t, store.Set(ctx, "k", []byte(`{"owner":"u1"}`)))

		payload, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"owner":"u1"}`), payload)
	})

	t.Run("expired entries miss", func(t *testing.T) {
		store := cache.NewMemory().WithTTL(10 * time.Millisecond)

		require.NoError(t, store.Set(ctx, "k", []byte("v")))
		time.Sleep(20 * time.Millisecond)

		_, err := store.Get(ctx, "k")
		assert.ErrorIs(t, err, graphql.ErrCacheMiss)
	})

	t.Run("flush drops everything", func(t *testing.T) {
		store := cache.NewMemory()

		require.NoError(t, store.Set(ctx, "a", []byte("1")))
		require.NoError(t, store.Set(ctx, "b", []byte("2")))
		require.NoError(t, store.Flush(ctx))

		_, err := store.Get(ctx, "a")
		assert.ErrorIs(t, err, graphql.ErrCacheMiss)
		_, err = store.Get(ctx, "b")
		assert.ErrorIs(t, err, graphql.ErrCacheMiss)
	})

	t.Run("returned payload is a copy", func(t *testing.T) {
		store := cache.NewMemory()

		require.NoError(t, store.Set(ctx, "k", []byte("abc")))

		payload, err := store.Get(ctx, "k")
		require.NoError(t, err)
		payload[0] = 'x'

		again, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again)
	})
}
