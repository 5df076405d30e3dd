package scheduling

import (
	"context"
	"encoding/json"
	"time"

	"medibook/models"
	"medibook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ListingCache holds derived appointment listings keyed by doctor or patient
// id. It is a cache, not a source of truth: a miss or a broken entry simply
// falls through to the repository.
type ListingCache interface {
	Get(ctx context.Context, key string) ([]models.Appointment, bool)
	Set(ctx context.Context, key string, appts []models.Appointment)
	Invalidate(ctx context.Context, keys ...string)
}

func doctorListingKey(doctorID string) string {
	return "appointments:doctor:" + doctorID
}

func patientListingKey(patientID string) string {
	return "appointments:patient:" + patientID
}

// RedisListingCache backs ListingCache with Redis, storing listings as JSON.
type RedisListingCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisListingCache constructs a Redis-backed listing cache.
func NewRedisListingCache(client *redis.Client, ttl time.Duration) *RedisListingCache {
	return &RedisListingCache{Client: client, TTL: ttl}
}

func (c *RedisListingCache) Get(ctx context.Context, key string) ([]models.Appointment, bool) {
	data, err := c.Client.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var appts []models.Appointment
	if err := json.Unmarshal([]byte(data), &appts); err != nil {
		utils.GetLogger().Warn("dropping unreadable listing cache entry",
			zap.String("key", key), zap.Error(err))
		c.Client.Del(ctx, key)
		return nil, false
	}
	return appts, true
}

func (c *RedisListingCache) Set(ctx context.Context, key string, appts []models.Appointment) {
	data, err := json.Marshal(appts)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, key, data, c.TTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache listing",
			zap.String("key", key), zap.Error(err))
	}
}

func (c *RedisListingCache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.Client.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate listing cache", zap.Error(err))
	}
}
