package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how jobs are polled, claimed, and processed.
type QueueConfig struct {
	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// JobTimeout is the maximum time a single job can be processed.
	JobTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for active jobs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration

	// StaleRunningThreshold is how long a running job can go without an
	// update before the sweep requeues it (crashed worker).
	StaleRunningThreshold time.Duration

	// StaleSweepInterval is how often the stale-running sweep runs.
	StaleSweepInterval time.Duration

	// BackoffBase is the first retry delay; each retry doubles it.
	BackoffBase time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              5 * time.Minute,
		GracefulShutdownTimeout: 5 * time.Minute,
		StaleRunningThreshold:   10 * time.Minute,
		StaleSweepInterval:      1 * time.Minute,
		BackoffBase:             1 * time.Second,
	}
}

// QueueDefinition describes one named queue.
type QueueDefinition struct {
	Name        string
	MaxAttempts int
	Concurrency int
}

// Queue names.
const (
	QueueUpdates            = "updates"
	QueueAgentTurns         = "agent-turns"
	QueueApprovalTimeouts   = "approval-timeouts"
	QueueApprovalCountdowns = "approval-countdowns"
	QueueRetryDeadLetter    = "retry-deadletter"
)

// QueueDefinitions returns the fixed set of queues with their retry budgets
// and concurrency caps.
func QueueDefinitions() []QueueDefinition {
	return []QueueDefinition{
		{Name: QueueUpdates, MaxAttempts: 5, Concurrency: 20},
		{Name: QueueAgentTurns, MaxAttempts: 5, Concurrency: 12},
		{Name: QueueApprovalTimeouts, MaxAttempts: 1, Concurrency: 5},
		{Name: QueueApprovalCountdowns, MaxAttempts: 1, Concurrency: 5},
		{Name: QueueRetryDeadLetter, MaxAttempts: 1, Concurrency: 2},
	}
}
