package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tripdeck/travel-itinerary-service/internal/domain"
)

// Redis is a SnapshotStore backed by a Redis instance. Each session's
// itinerary lives under a single key holding one JSON document; the key TTL
// is the session lifetime and every Save refreshes it.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis snapshot store using the given client.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// snapshotKey builds the Redis key for a session's itinerary snapshot.
func snapshotKey(sessionID string) string {
	return fmt.Sprintf("itinerary:session:%s", sessionID)
}

// Load implements SnapshotStore.Load.
func (r *Redis) Load(ctx context.Context, sessionID string) (*domain.Itinerary, error) {
	data, err := r.client.Get(ctx, snapshotKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return decodeSnapshot(data)
}

// Save implements SnapshotStore.Save.
func (r *Redis) Save(ctx context.Context, sessionID string, it *domain.Itinerary) error {
	data, err := encodeSnapshot(it)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, snapshotKey(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Delete implements SnapshotStore.Delete.
func (r *Redis) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, snapshotKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

// Ping verifies connectivity to the Redis instance.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Ensure interface is implemented.
var _ SnapshotStore = (*Redis)(nil)
