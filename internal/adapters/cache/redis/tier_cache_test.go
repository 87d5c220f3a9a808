package redis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	"github.com/SscSPs/cash_wallet_app/internal/middleware"
)

func sampleTiers() []domain.ProfitTier {
	return []domain.ProfitTier{
		{TierID: "t1", AccountID: "acc-1", MinAmount: decimal.NewFromInt(1), MaxAmount: decimal.NewFromInt(45), Fee: decimal.NewFromInt(5)},
		{TierID: "t2", AccountID: "acc-1", MinAmount: decimal.NewFromInt(46), MaxAmount: decimal.NewFromInt(250), Fee: decimal.NewFromInt(10)},
	}
}

func TestTierCache_GetHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewTierCache(client, time.Minute)

	data, err := json.Marshal(sampleTiers())
	require.NoError(t, err)
	mock.ExpectGet("tiers:gen:acc-1").SetVal("2")
	mock.ExpectGet("tiers:acc-1:2").SetVal(string(data))

	tiers, generation, ok := cache.Get(context.Background(), "acc-1")
	require.True(t, ok)
	assert.Equal(t, "2", generation)
	require.Len(t, tiers, 2)
	assert.True(t, tiers[1].Fee.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "t2", tiers[1].TierID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTierCache_GetMissAndError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewTierCache(client, time.Minute)

	mock.ExpectGet("tiers:gen:acc-1").RedisNil()
	mock.ExpectGet("tiers:acc-1:0").RedisNil()
	_, generation, ok := cache.Get(context.Background(), "acc-1")
	assert.False(t, ok)
	assert.Equal(t, "0", generation, "missing counter is generation zero")

	mock.ExpectGet("tiers:gen:acc-1").SetVal("1")
	mock.ExpectGet("tiers:acc-1:1").SetErr(errors.New("connection reset"))
	_, generation, ok = cache.Get(context.Background(), "acc-1")
	assert.False(t, ok)
	assert.Equal(t, "1", generation)

	mock.ExpectGet("tiers:gen:acc-1").SetVal("1")
	mock.ExpectGet("tiers:acc-1:1").SetVal("not json")
	_, _, ok = cache.Get(context.Background(), "acc-1")
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTierCache_GenerationReadFailureDisablesStore(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewTierCache(client, time.Minute)

	mock.ExpectGet("tiers:gen:acc-1").SetErr(errors.New("connection reset"))
	_, generation, ok := cache.Get(context.Background(), "acc-1")
	assert.False(t, ok)
	assert.Empty(t, generation)

	// No SET is expected; an unexpected command would leave the mock with an error.
	cache.Set(context.Background(), "acc-1", generation, sampleTiers())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTierCache_SetAndInvalidate(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewTierCache(client, 5*time.Minute)

	data, err := json.Marshal(sampleTiers())
	require.NoError(t, err)
	mock.ExpectSet("tiers:acc-1:0", string(data), 5*time.Minute).SetVal("OK")
	mock.ExpectIncr("tiers:gen:acc-1").SetVal(1)

	cache.Set(context.Background(), "acc-1", "0", sampleTiers())
	cache.Invalidate(context.Background(), "acc-1")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTierCache_WriteFromRacingReadIsNeverServed(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewTierCache(client, time.Minute)
	ctx := context.Background()

	stale, err := json.Marshal(sampleTiers())
	require.NoError(t, err)

	// A reader misses at generation 3 and loads the old schedule.
	mock.ExpectGet("tiers:gen:acc-1").SetVal("3")
	mock.ExpectGet("tiers:acc-1:3").RedisNil()
	// A save commits and bumps the generation before the reader stores its copy.
	mock.ExpectIncr("tiers:gen:acc-1").SetVal(4)
	mock.ExpectSet("tiers:acc-1:3", string(stale), time.Minute).SetVal("OK")
	// The next read looks at generation 4 and misses.
	mock.ExpectGet("tiers:gen:acc-1").SetVal("4")
	mock.ExpectGet("tiers:acc-1:4").RedisNil()

	_, generation, ok := cache.Get(ctx, "acc-1")
	require.False(t, ok)
	cache.Invalidate(ctx, "acc-1")
	cache.Set(ctx, "acc-1", generation, sampleTiers())

	_, generation, ok = cache.Get(ctx, "acc-1")
	assert.False(t, ok)
	assert.Equal(t, "4", generation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTierCache_SetLogsEncodeFailure(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewTierCache(client, time.Minute)

	orig := marshalTiers
	marshalTiers = func(any) ([]byte, error) { return nil, errors.New("unsupported value") }
	t.Cleanup(func() { marshalTiers = orig })

	var buf bytes.Buffer
	ctx := middleware.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	cache.Set(ctx, "acc-1", "0", sampleTiers())

	assert.Contains(t, buf.String(), "Tier cache encode failed")
	assert.Contains(t, buf.String(), "unsupported value")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTierCache_NilClientIsNoop(t *testing.T) {
	cache := NewTierCache(nil, time.Minute)

	cache.Set(context.Background(), "acc-1", "0", sampleTiers())
	cache.Invalidate(context.Background(), "acc-1")
	_, _, ok := cache.Get(context.Background(), "acc-1")
	assert.False(t, ok)
}
