package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/team-manager/internal/logger"
	"github.com/sbilibin2017/team-manager/internal/models"
)

// HighlightCacheRepository caches the best-of-week record of a week in Redis
type HighlightCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached entries
}

// NewHighlightCacheRepository creates a new repository instance with the given TTL
func NewHighlightCacheRepository(client *redis.Client, expiration time.Duration) *HighlightCacheRepository {
	return &HighlightCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func highlightKey(weekStart time.Time) string {
	return fmt.Sprintf("best_of_week:%d", weekStart.UnixMilli())
}

// GetWeek returns the cached record of the week, or nil on a cache miss.
func (r *HighlightCacheRepository) GetWeek(ctx context.Context, weekStart time.Time) (*models.BestOfWeek, error) {
	key := highlightKey(weekStart)

	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		logger.Log.Infow("cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		logger.Log.Infow("cache get", "key", key, "error", err)
		return nil, err
	}

	var b models.BestOfWeek
	if err := json.Unmarshal([]byte(val), &b); err != nil {
		logger.Log.Infow("cache decode", "key", key, "value", val, "error", err)
		return nil, err
	}

	logger.Log.Infow("cache hit", "key", key, "result", b.ID)
	return &b, nil
}

// SetWeek stores the record of the week with expiration
func (r *HighlightCacheRepository) SetWeek(ctx context.Context, weekStart time.Time, b *models.BestOfWeek) error {
	key := highlightKey(weekStart)

	data, err := json.Marshal(b)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache set", "key", key, "ttl", r.exp, "error", err)
	return err
}

// InvalidateWeek drops the cached entry of the week.
func (r *HighlightCacheRepository) InvalidateWeek(ctx context.Context, weekStart time.Time) error {
	key := highlightKey(weekStart)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("cache invalidate", "key", key, "error", err)
	return err
}
