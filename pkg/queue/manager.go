package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/emissary-bot/emissary/ent"
	"github.com/emissary-bot/emissary/ent/job"
	"github.com/emissary-bot/emissary/pkg/config"
)

// Manager runs the worker pools for all registered queues and the
// stale-running sweep.
type Manager struct {
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	handlers map[string]Handler
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	// Stale-running sweep state
	staleMu       sync.Mutex
	lastStaleScan time.Time
	staleRequeued int
}

// NewManager creates a queue Manager. handlers maps queue name → Handler;
// queues without a handler are not polled by this replica.
func NewManager(podID string, client *ent.Client, cfg *config.QueueConfig, handlers map[string]Handler) *Manager {
	return &Manager{
		podID:    podID,
		client:   client,
		config:   cfg,
		handlers: handlers,
		stopCh:   make(chan struct{}),
	}
}

// Start spawns workers per queue definition (concurrency cap = worker count)
// and the stale-running sweep. Safe to call multiple times; subsequent calls
// are no-ops.
func (m *Manager) Start(ctx context.Context) error {
	if m.started {
		slog.Warn("Queue manager already started, ignoring duplicate Start call", "pod_id", m.podID)
		return nil
	}
	m.started = true

	for _, def := range config.QueueDefinitions() {
		handler, ok := m.handlers[def.Name]
		if !ok {
			continue
		}
		for i := 0; i < def.Concurrency; i++ {
			workerID := fmt.Sprintf("%s-%s-%d", m.podID, def.Name, i)
			worker := NewWorker(workerID, m.podID, def.Name, m.client, m.config, handler)
			m.workers = append(m.workers, worker)
			worker.Start(ctx)
		}
		slog.Info("Queue workers started", "queue", def.Name, "concurrency", def.Concurrency)
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.runStaleSweep(ctx)
	}()

	slog.Info("Queue manager started", "pod_id", m.podID, "workers", len(m.workers))
	return nil
}

// Stop signals all workers to stop and waits for them to finish their
// current jobs (graceful shutdown).
func (m *Manager) Stop() {
	slog.Info("Stopping queue manager gracefully")

	for _, worker := range m.workers {
		worker.Stop()
	}

	m.stopOnce.Do(func() { close(m.stopCh) })
	m.wg.Wait()

	slog.Info("Queue manager stopped gracefully")
}

// Health returns the current health status of all workers.
func (m *Manager) Health() *ManagerHealth {
	ctx := context.Background()

	queueDepth, errQ := m.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusPending),
			job.RunAtLTE(time.Now()),
		).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check", "pod_id", m.podID, "error", errQ)
	}

	workerStats := make([]WorkerHealth, len(m.workers))
	activeWorkers := 0
	for i, worker := range m.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	m.staleMu.Lock()
	lastStaleScan := m.lastStaleScan
	staleRequeued := m.staleRequeued
	m.staleMu.Unlock()

	dbHealthy := errQ == nil
	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	}

	return &ManagerHealth{
		IsHealthy:     len(m.workers) > 0 && dbHealthy,
		DBReachable:   dbHealthy,
		DBError:       dbError,
		PodID:         m.podID,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(m.workers),
		QueueDepth:    queueDepth,
		WorkerStats:   workerStats,
		LastStaleScan: lastStaleScan,
		StaleRequeued: staleRequeued,
	}
}

// runStaleSweep periodically requeues running jobs whose worker stopped
// updating them (crashed pod). All pods run this independently — the
// requeue is idempotent and handlers tolerate redelivery.
func (m *Manager) runStaleSweep(ctx context.Context) {
	ticker := time.NewTicker(m.config.StaleSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stopCh:
			return
		case <-ticker.C:
			if err := m.requeueStaleRunning(ctx); err != nil {
				slog.Error("Stale job sweep failed", "error", err)
			}
		}
	}
}

// requeueStaleRunning moves stale running jobs back to pending.
func (m *Manager) requeueStaleRunning(ctx context.Context) error {
	threshold := time.Now().Add(-m.config.StaleRunningThreshold)

	n, err := m.client.Job.Update().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.UpdatedAtLT(threshold),
		).
		SetStatus(job.StatusPending).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue stale running jobs: %w", err)
	}

	m.staleMu.Lock()
	m.lastStaleScan = time.Now()
	m.staleRequeued += n
	m.staleMu.Unlock()

	if n > 0 {
		slog.Warn("Requeued stale running jobs", "count", n)
	}
	return nil
}

// RequeueStartupOrphans performs a one-time requeue of jobs owned by this
// pod that were running when the pod previously crashed. Called once during
// startup, before workers begin polling.
func RequeueStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	n, err := client.Job.Update().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.PodIDEQ(podID),
		).
		SetStatus(job.StatusPending).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to requeue startup orphans: %w", err)
	}
	if n > 0 {
		slog.Warn("Requeued startup orphan jobs from previous run", "pod_id", podID, "count", n)
	}
	return nil
}
