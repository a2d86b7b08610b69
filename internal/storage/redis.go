package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"restaurant-analytics/internal/domain"
	"restaurant-analytics/internal/store"

	"github.com/redis/go-redis/v9"
)

const SnapshotKey = "analytics:snapshot"

// RedisCachedSource shares one loaded snapshot between replicas. It serves
// the cached copy while the key lives and falls back to Source otherwise.
// Redis being unavailable degrades to loading from Source directly.
type RedisCachedSource struct {
	Client *redis.Client
	Source store.Source
	TTL    time.Duration
	Key    string
}

func NewRedisCachedSource(client *redis.Client, source store.Source, ttl time.Duration) *RedisCachedSource {
	return &RedisCachedSource{
		Client: client,
		Source: source,
		TTL:    ttl,
		Key:    SnapshotKey,
	}
}

func (c *RedisCachedSource) Load(ctx context.Context) (*domain.Snapshot, error) {
	payload, err := c.Client.Get(ctx, c.Key).Bytes()
	switch {
	case err == nil:
		var snapshot domain.Snapshot
		if err := json.Unmarshal(payload, &snapshot); err == nil {
			return &snapshot, nil
		}
		log.Printf("ERROR: discarding unreadable cached snapshot %s: %v", c.Key, err)
	case errors.Is(err, redis.Nil):
	default:
		log.Printf("ERROR: redis get %s: %v", c.Key, err)
	}

	snapshot, err := c.Source.Load(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(snapshot); err != nil {
		log.Printf("ERROR: encode snapshot for cache: %v", err)
	} else if err := c.Client.Set(ctx, c.Key, payload, c.TTL).Err(); err != nil {
		log.Printf("ERROR: redis set %s: %v", c.Key, err)
	}
	return snapshot, nil
}

func (c *RedisCachedSource) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, c.Key).Err()
}
