package redis

import (
	"fmt"
	"time"
)

// Config represents Redis connection options
type Config struct {
	Host     string
	Port     int
	Password string
	// Database is the logical Redis database number (0-15)
	Database     int
	MinIdleConns int
	MaxIdleConns int
	MaxActive    int
	// MaxRetries is passed to go-redis as is; -1 disables command retries
	MaxRetries   int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
}

// NewRedisConfig creates a Redis configuration pointing at localhost:6379.
// Command retries are disabled: callers see the first failure.
func NewRedisConfig() *Config {
	return &Config{
		Host:         "localhost",
		Port:         6379,
		MinIdleConns: 1,
		MaxIdleConns: 5,
		MaxActive:    20,
		MaxRetries:   -1,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  4 * time.Second,
	}
}

// DefaultConfig returns a default Redis configuration
func DefaultConfig() *Config {
	return NewRedisConfig()
}

func (c *Config) WithHost(host string) *Config {
	c.Host = host
	return c
}

func (c *Config) WithPort(port int) *Config {
	c.Port = port
	return c
}

func (c *Config) WithPassword(password string) *Config {
	c.Password = password
	return c
}

func (c *Config) WithDatabase(database int) *Config {
	c.Database = database
	return c
}

// Validate reports the first invalid field
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d, must be between 1 and 65535", c.Port)
	}
	if c.Database < 0 || c.Database > 15 {
		return fmt.Errorf("invalid database: %d, must be between 0 and 15", c.Database)
	}
	if c.MinIdleConns < 0 || c.MaxIdleConns < 0 || c.MaxActive < 0 {
		return fmt.Errorf("connection pool sizes must be non-negative")
	}
	if c.MaxRetries < -1 {
		return fmt.Errorf("invalid max retries: %d, must be -1 or greater", c.MaxRetries)
	}
	if c.DialTimeout < 0 || c.ReadTimeout < 0 || c.WriteTimeout < 0 || c.PoolTimeout < 0 {
		return fmt.Errorf("timeouts must be non-negative")
	}
	return nil
}
