package redisstore_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commodityhub/inventory-api/internal/infrastructure/redisstore"
)

func newTestStorage(t *testing.T) *redisstore.SessionStorage {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return redisstore.New(client)
}

func TestGet_LlaveInexistente(t *testing.T) {
	storage := newTestStorage(t)

	val, ok, err := storage.Get(context.Background(), "commodityhub_token")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)
}

func TestSetGet_RoundTrip(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, "commodityhub_token", "abc123"))

	val, ok, err := storage.Get(ctx, "commodityhub_token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc123", val)
}

func TestDelete_IdempotenteYMultillave(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, "commodityhub_token", "abc"))
	require.NoError(t, storage.Set(ctx, "commodityhub_user", "{}"))

	require.NoError(t, storage.Delete(ctx, "commodityhub_token", "commodityhub_user"))

	_, ok, err := storage.Get(ctx, "commodityhub_token")
	require.NoError(t, err)
	assert.False(t, ok)

	// Borrar llaves ya inexistentes no es error.
	require.NoError(t, storage.Delete(ctx, "commodityhub_token"))
	require.NoError(t, storage.Delete(ctx))
}
