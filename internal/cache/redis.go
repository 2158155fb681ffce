package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/airline-mgmt/config"
	"github.com/Domenick1991/airline-mgmt/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps weekly schedules, which change rarely, out of the hot
// query path.
type RedisCache struct {
	client      *redis.Client
	scheduleTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, scheduleTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		scheduleTTL: scheduleTTL,
	}
}

func (c *RedisCache) GetSchedule(ctx context.Context, flightNumber string) ([]domain.Schedule, error) {
	data, err := c.client.Get(ctx, scheduleKey(flightNumber)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var items []domain.Schedule
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *RedisCache) SetSchedule(ctx context.Context, flightNumber string, items []domain.Schedule) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, scheduleKey(flightNumber), payload, c.scheduleTTL).Err()
}

func scheduleKey(flightNumber string) string {
	return fmt.Sprintf("cache:schedule:%s", flightNumber)
}
