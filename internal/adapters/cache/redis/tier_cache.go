package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/SscSPs/cash_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cash_wallet_app/internal/core/ports/repositories"
	"github.com/SscSPs/cash_wallet_app/internal/middleware"
)

const (
	tierKeyPrefix = "tiers:"
	genKeyPrefix  = "tiers:gen:"
)

// marshalTiers is replaced in tests.
var marshalTiers = json.Marshal

// TierCache stores fee schedules as JSON under tiers:<accountID>:<generation>.
// The generation counter lives in tiers:gen:<accountID> and is bumped on every
// invalidation, so an entry written from a read that raced a save lands under an
// old generation and is never served. Any redis failure is logged and treated as
// a miss.
type TierCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewTierCache returns a cache backed by client. A nil client yields a cache that
// never hits.
func NewTierCache(client *goredis.Client, ttl time.Duration) *TierCache {
	return &TierCache{client: client, ttl: ttl}
}

var _ portsrepo.ProfitTierCache = (*TierCache)(nil)

func tierKey(accountID, generation string) string {
	return tierKeyPrefix + accountID + ":" + generation
}

func genKey(accountID string) string {
	return genKeyPrefix + accountID
}

// Get returns the entry for the account's current generation. The generation is
// returned on a miss too so the caller can store what it loads under it. An empty
// generation means the counter could not be read and nothing should be stored.
func (c *TierCache) Get(ctx context.Context, accountID string) ([]domain.ProfitTier, string, bool) {
	if c == nil || c.client == nil {
		return nil, "", false
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	generation, err := c.client.Get(ctx, genKey(accountID)).Result()
	switch {
	case errors.Is(err, goredis.Nil):
		generation = "0"
	case err != nil:
		logger.Warn("Tier cache generation read failed", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return nil, "", false
	}

	data, err := c.client.Get(ctx, tierKey(accountID, generation)).Bytes()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			logger.Warn("Tier cache read failed", slog.String("account_id", accountID), slog.String("error", err.Error()))
		}
		return nil, generation, false
	}
	var tiers []domain.ProfitTier
	if err := json.Unmarshal(data, &tiers); err != nil {
		logger.Warn("Tier cache entry is corrupt", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return nil, generation, false
	}
	return tiers, generation, true
}

// Set stores tiers under generation, as returned by the Get that missed.
func (c *TierCache) Set(ctx context.Context, accountID, generation string, tiers []domain.ProfitTier) {
	if c == nil || c.client == nil || generation == "" {
		return
	}
	data, err := marshalTiers(tiers)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Tier cache encode failed", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return
	}
	if err := c.client.Set(ctx, tierKey(accountID, generation), string(data), c.ttl).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Tier cache write failed", slog.String("account_id", accountID), slog.String("error", err.Error()))
	}
}

// Invalidate bumps the account's generation. Entries of older generations expire by TTL.
func (c *TierCache) Invalidate(ctx context.Context, accountID string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Incr(ctx, genKey(accountID)).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Tier cache invalidation failed", slog.String("account_id", accountID), slog.String("error", err.Error()))
	}
}

// NewClient connects to redisURL (redis://[:password@]host:port/db) and pings it.
// It returns nil when the URL is empty or redis is unreachable so that the caller can
// run without a cache.
func NewClient(ctx context.Context, redisURL string) *goredis.Client {
	if redisURL == "" {
		return nil
	}
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		slog.Warn("Invalid REDIS_URL, continuing without tier cache", slog.String("error", err.Error()))
		return nil
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis connection failed, continuing without tier cache", slog.String("addr", opts.Addr), slog.String("error", err.Error()))
		_ = client.Close()
		return nil
	}
	slog.Info("Redis connection established", slog.String("addr", opts.Addr))
	return client
}
