// Package queue provides the durable job queue and its worker pools.
//
// Jobs are Postgres rows claimed with FOR UPDATE SKIP LOCKED, giving
// at-least-once delivery with FIFO order within priority. Producers can
// supply their own job ids for dedupe; delayed jobs carry a future run_at.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/emissary-bot/emissary/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no due pending jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrShuttingDown indicates the manager no longer accepts work.
	ErrShuttingDown = errors.New("queue shutting down")
)

// Handler processes one claimed job. Handlers MUST be idempotent: delivery
// is at-least-once. A returned error reschedules the job with exponential
// backoff until its attempt budget is exhausted.
type Handler func(ctx context.Context, job *ent.Job) error

// EnqueueOptions controls job placement.
type EnqueueOptions struct {
	// JobID is the producer-side dedupe key. Empty = random id.
	JobID string

	Payload map[string]interface{}

	// Delay schedules wall-clock delivery at now+Delay.
	Delay time.Duration

	// Priority orders delivery within a queue (higher first, FIFO within).
	Priority int

	// MaxAttempts overrides the queue's default attempt budget when > 0.
	MaxAttempts int
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Queue         string    `json:"queue"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}

// ManagerHealth contains health information for all queue workers.
type ManagerHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	PodID         string         `json:"pod_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
	LastStaleScan time.Time      `json:"last_stale_scan"`
	StaleRequeued int            `json:"stale_requeued"`
}

// Backoff returns the delay before retry number attempt (1-based):
// base, 2·base, 4·base, ...
func Backoff(base time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return base << uint(attempt-1)
}
