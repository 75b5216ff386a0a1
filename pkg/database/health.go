package database

import (
	"context"
	"database/sql"
	"time"
)

// PoolHealth is the Postgres snapshot the readiness probe reports: ping
// latency plus connection-pool pressure, so saturation shows up before
// queries start failing.
type PoolHealth struct {
	Status          string `json:"status"`
	ResponseTime    int64  `json:"response_time_ms"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    int64  `json:"wait_duration_ms"`
	MaxOpenConns    int    `json:"max_open_conns"`
}

// Health pings the database and snapshots the pool. An unreachable
// database still returns the elapsed time alongside the error so the
// probe can report how long the ping hung.
func Health(ctx context.Context, db *sql.DB) (*PoolHealth, error) {
	start := time.Now()

	if err := db.PingContext(ctx); err != nil {
		return &PoolHealth{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	stats := db.Stats()

	return &PoolHealth{
		Status:          "healthy",
		ResponseTime:    time.Since(start).Milliseconds(),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitDuration:    stats.WaitDuration.Milliseconds(),
		MaxOpenConns:    stats.MaxOpenConnections,
	}, nil
}
