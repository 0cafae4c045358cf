package redis

import (
	"context"
	"testing"
	"time"

	"wager-tracker/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionStore(t *testing.T, ttl time.Duration) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSessionStore(client, ttl), mr
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store, _ := newTestSessionStore(t, 30*time.Minute)
	ctx := context.Background()

	odds := domain.Odds{A: decimal.RequireFromString("1.5"), B: decimal.RequireFromString("2.4")}
	err := store.Save(ctx, &domain.Dialogue{
		UserID:      42,
		ChatID:      -100,
		Step:        domain.StepEditStake,
		WagerID:     7,
		PendingOdds: &odds,
	})
	require.NoError(t, err)

	got, err := store.Get(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.StepEditStake, got.Step)
	assert.Equal(t, int64(7), got.WagerID)
	assert.Equal(t, int64(-100), got.ChatID)
	require.NotNil(t, got.PendingOdds)
	assert.True(t, got.PendingOdds.B.Equal(decimal.RequireFromString("2.4")))
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestSessionStore_GetMissing(t *testing.T) {
	store, _ := newTestSessionStore(t, time.Minute)

	got, err := store.Get(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_Expires(t *testing.T) {
	store, mr := newTestSessionStore(t, 30*time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Dialogue{UserID: 5, Step: domain.StepAwaitMatchup}))
	assert.Equal(t, 30*time.Minute, mr.TTL("dialogue:5"))

	mr.FastForward(31 * time.Minute)

	got, err := store.Get(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, got, "abandoned dialogue should expire")
}

func TestSessionStore_IsolatedPerUser(t *testing.T) {
	store, _ := newTestSessionStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Dialogue{UserID: 1, Step: domain.StepAwaitOdds, WagerID: 10}))
	require.NoError(t, store.Save(ctx, &domain.Dialogue{UserID: 2, Step: domain.StepAwaitStake, WagerID: 20}))

	first, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), first.WagerID)

	require.NoError(t, store.Delete(ctx, 1))

	first, err = store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, first)

	second, err := store.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.StepAwaitStake, second.Step)
}

func TestSessionStore_RejectsUnknownStep(t *testing.T) {
	store, _ := newTestSessionStore(t, time.Minute)

	err := store.Save(context.Background(), &domain.Dialogue{UserID: 1, Step: "SOMETHING"})
	assert.Error(t, err)
}

func TestSessionStore_CorruptPayload(t *testing.T) {
	store, mr := newTestSessionStore(t, time.Minute)
	require.NoError(t, mr.Set("dialogue:9", "not-json"))

	_, err := store.Get(context.Background(), 9)
	assert.ErrorContains(t, err, "decode session")
}

func TestSessionStore_DeleteMissing(t *testing.T) {
	store, _ := newTestSessionStore(t, time.Minute)
	assert.NoError(t, store.Delete(context.Background(), 404))
}
