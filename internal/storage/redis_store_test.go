package storage

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestRedisReadMissingKey(t *testing.T) {
	store := newTestRedis(t)

	_, err := store.Read("state")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisWriteRead(t *testing.T) {
	store := newTestRedis(t)

	require.NoError(t, store.Write("state", `{"products":[]}`))
	value, err := store.Read("state")
	require.NoError(t, err)
	assert.Equal(t, `{"products":[]}`, value)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Read("state")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Write("state", "value"))
	value, err := store.Read("state")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}
