package persistence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hengtai25/portfolio-api/internal/application/service"
)

func newTestRedisKV(t *testing.T) *RedisKVStore {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisKVStore(client)
}

func TestRedisKVStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisKV(t)

	require.NoError(t, store.Set(ctx, "portfolio:theme", []byte(`{"presetId":"ocean"}`)))

	value, err := store.Get(ctx, "portfolio:theme")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"presetId":"ocean"}`), value)

	require.NoError(t, store.Set(ctx, "portfolio:theme", []byte(`{"presetId":"neon"}`)))
	value, err = store.Get(ctx, "portfolio:theme")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"presetId":"neon"}`), value)
}

func TestRedisKVStoreMissingKey(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisKV(t)

	_, err := store.Get(ctx, "portfolio:editor-draft")
	assert.ErrorIs(t, err, service.ErrKeyNotFound)
}

func TestRedisKVStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisKV(t)

	require.NoError(t, store.Set(ctx, "portfolio:published-version", []byte("alpha")))
	require.NoError(t, store.Delete(ctx, "portfolio:published-version"))

	_, err := store.Get(ctx, "portfolio:published-version")
	assert.ErrorIs(t, err, service.ErrKeyNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete(ctx, "portfolio:published-version"))
}
