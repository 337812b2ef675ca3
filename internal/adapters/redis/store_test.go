package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/ouro/pkg/domain"
	"github.com/aretw0/ouro/pkg/ports"
)

func newTestStore(t *testing.T, opts ...Option) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := NewFromClient(client, opts...)
	t.Cleanup(func() { _ = store.Close() })

	return store, mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunStoreContract(t, store)
}

func TestRedisStore_KeyPrefix(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", &domain.ExecutionResult{FinalLabel: "Ruby"}))
	assert.True(t, mr.Exists("ouro:run:abc"))
}

func TestRedisStore_CustomPrefix(t *testing.T) {
	store, mr := newTestStore(t, WithPrefix("custom:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", &domain.ExecutionResult{}))
	assert.True(t, mr.Exists("custom:abc"))
	assert.False(t, mr.Exists("ouro:run:abc"))
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	store, mr := newTestStore(t, WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "fleeting", &domain.ExecutionResult{}))

	mr.FastForward(2 * time.Minute)

	_, err := store.Load(ctx, "fleeting")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestRedisStore_DeleteRemovesIndexEntry(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "r1", &domain.ExecutionResult{}))
	require.NoError(t, store.Delete(ctx, "r1"))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, ids, "r1")
}
