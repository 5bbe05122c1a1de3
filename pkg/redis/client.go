package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps the Redis client with the key-value operations the widget needs
type Client struct {
	rdb    *redis.Client
	config *Config
}

// NewClient creates a new Redis client with the given configuration
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid Redis configuration: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:           fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password:       config.Password,
		DB:             config.Database,
		MinIdleConns:   config.MinIdleConns,
		MaxIdleConns:   config.MaxIdleConns,
		MaxActiveConns: config.MaxActive,
		MaxRetries:     config.MaxRetries,
		DialTimeout:    config.DialTimeout,
		ReadTimeout:    config.ReadTimeout,
		WriteTimeout:   config.WriteTimeout,
		PoolTimeout:    config.PoolTimeout,
	})

	return &Client{
		rdb:    rdb,
		config: config,
	}, nil
}

// Ping tests the connection to Redis
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close closes the Redis client connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// GetClient returns the underlying Redis client for advanced operations
func (c *Client) GetClient() *redis.Client {
	return c.rdb
}

// GetConfig returns the Redis configuration
func (c *Client) GetConfig() *Config {
	return c.config
}

// Set stores a key-value pair. A zero expiration keeps the key forever.
func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.rdb.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key, returning "" when the key does not exist
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	value, _, err := c.Lookup(ctx, key)
	return value, err
}

// Lookup retrieves a value by key and reports whether the key exists
func (c *Client) Lookup(ctx context.Context, key string) (string, bool, error) {
	result, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return result, true, nil
}

// Delete removes one or more keys. Missing keys are ignored.
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	return c.rdb.Del(ctx, keys...).Err()
}

// Exists counts how many of the given keys exist
func (c *Client) Exists(ctx context.Context, keys ...string) (int64, error) {
	return c.rdb.Exists(ctx, keys...).Result()
}

// Publish publishes a message to a channel
func (c *Client) Publish(ctx context.Context, channel string, message interface{}) error {
	return c.rdb.Publish(ctx, channel, message).Err()
}
