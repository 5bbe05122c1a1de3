package storage

import (
	"context"
	"fmt"

	"weather-widget/internal/domain/model"
	"weather-widget/pkg/redis"
)

// RedisStore keeps items as plain Redis strings without expiration
type RedisStore struct {
	client *redis.Client
}

var _ KeyValueStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	value, found, err := s.client.Lookup(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, found, nil
}

func (s *RedisStore) SetItem(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) RemoveItem(ctx context.Context, key string) error {
	if err := s.client.Delete(ctx, key); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Health() model.ComponentHealthStatus {
	result := redis.HealthCheck(context.Background(), s.client)

	details := map[string]string{"backend": "redis"}
	for k, v := range result.Details {
		details[k] = v
	}

	status := model.StatusUnknown
	switch result.Status {
	case redis.StatusUp:
		status = model.StatusUp
	case redis.StatusDown:
		status = model.StatusDown
	}
	return model.ComponentHealthStatus{Status: status, Details: details}
}
