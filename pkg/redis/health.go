package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// HealthCheckResult represents the outcome of a Redis health check
type HealthCheckResult struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthCheck pings Redis and reports pool statistics
func HealthCheck(ctx context.Context, client *Client) HealthCheckResult {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	if err := client.Ping(ctx); err != nil {
		return HealthCheckResult{
			Status: StatusDown,
			Details: map[string]string{
				"message": fmt.Sprintf("ping failed: %v", err),
			},
		}
	}

	stats := client.GetClient().PoolStats()
	return HealthCheckResult{
		Status: StatusUp,
		Details: map[string]string{
			"message":     string(StatusUp),
			"latency":     time.Since(start).String(),
			"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
			"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
		},
	}
}

// HealthStatus is the outcome of HealthCheck
type HealthStatus string

const (
	// StatusUp indicates the service is healthy and running
	StatusUp HealthStatus = "UP"
	// StatusDown indicates the service is not healthy or not running
	StatusDown HealthStatus = "DOWN"
	// StatusUnknown indicates the service status cannot be determined
	StatusUnknown HealthStatus = "UNKNOWN"
)
