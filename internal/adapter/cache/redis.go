package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mallforge/tradesvc/internal/adapter/config"
	"github.com/mallforge/tradesvc/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

// IntentCache keeps the full trade intent in redis so consumers woken
// by the trade-created event can hydrate without re-querying checkout.
type IntentCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIntentCache(ctx context.Context, conf *config.Redis) (*IntentCache, error) {
	client := redis.NewClient(&redis.Options{Addr: conf.Addr})

	err := client.Ping(ctx).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &IntentCache{client: client, ttl: conf.IntentTTL}, nil
}

func (c *IntentCache) PutIntent(ctx context.Context, key string, intent *domain.TradeIntent) error {
	data, err := json.Marshal(intent)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *IntentCache) GetIntent(ctx context.Context, key string) (*domain.TradeIntent, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	intent := domain.TradeIntent{}
	err = json.Unmarshal(data, &intent)
	if err != nil {
		return nil, err
	}

	return &intent, nil
}

func (c *IntentCache) Close() error {
	return c.client.Close()
}
