package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/emissary-bot/emissary/ent"
	"github.com/emissary-bot/emissary/ent/job"
	"github.com/emissary-bot/emissary/pkg/config"
	"github.com/google/uuid"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls one named queue.
type Worker struct {
	id       string
	podID    string
	queue    string
	client   *ent.Client
	config   *config.QueueConfig
	handler  Handler
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker bound to one queue.
func NewWorker(id, podID, queueName string, client *ent.Client, cfg *config.QueueConfig, handler Handler) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		queue:        queueName,
		client:       client,
		config:       cfg,
		handler:      handler,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current job.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Queue:         w.queue,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "queue", w.queue, "pod_id", w.podID)
	log.Info("Queue worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Queue worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, queue worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next due job and runs the handler.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	claimed, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", claimed.ID, "queue", w.queue, "worker_id", w.id, "attempt", claimed.Attempts)
	log.Debug("Job claimed")

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	jobCtx, cancel := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancel()

	handlerErr := w.handler(jobCtx, claimed)

	// Terminal updates use a background context — the job ctx may be done.
	if handlerErr != nil {
		if ferr := w.failJob(context.Background(), claimed, handlerErr); ferr != nil {
			log.Error("Failed to record job failure", "error", ferr)
			return ferr
		}
		log.Warn("Job failed", "error", handlerErr)
	} else {
		if cerr := w.completeJob(context.Background(), claimed); cerr != nil {
			log.Error("Failed to record job completion", "error", cerr)
			return cerr
		}
		log.Debug("Job completed")
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()
	return nil
}

// claimNextJob atomically claims the next due pending job using
// FOR UPDATE SKIP LOCKED. FIFO within priority (higher priority first).
func (w *Worker) claimNextJob(ctx context.Context) (*ent.Job, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	claimed, err := tx.Job.Query().
		Where(
			job.QueueEQ(w.queue),
			job.StatusEQ(job.StatusPending),
			job.RunAtLTE(time.Now()),
		).
		Order(ent.Desc(job.FieldPriority), ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	claimed, err = claimed.Update().
		SetStatus(job.StatusRunning).
		SetPodID(w.podID).
		SetAttempts(claimed.Attempts + 1).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// completeJob marks a job done.
func (w *Worker) completeJob(ctx context.Context, claimed *ent.Job) error {
	return w.client.Job.UpdateOneID(claimed.ID).
		SetStatus(job.StatusCompleted).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
}

// failJob reschedules with exponential backoff, or moves the job to the
// dead-letter table when the attempt budget is exhausted.
func (w *Worker) failJob(ctx context.Context, claimed *ent.Job, handlerErr error) error {
	if claimed.Attempts < claimed.MaxAttempts {
		delay := Backoff(w.config.BackoffBase, claimed.Attempts)
		return w.client.Job.UpdateOneID(claimed.ID).
			SetStatus(job.StatusPending).
			SetRunAt(time.Now().Add(delay)).
			SetLastError(handlerErr.Error()).
			SetUpdatedAt(time.Now()).
			Exec(ctx)
	}

	if err := w.client.Job.UpdateOneID(claimed.ID).
		SetStatus(job.StatusDead).
		SetLastError(handlerErr.Error()).
		SetUpdatedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark job dead: %w", err)
	}

	correlationID, _ := claimed.Payload["correlation_id"].(string)
	if err := w.client.DeadLetter.Create().
		SetID(uuid.New().String()).
		SetQueue(claimed.Queue).
		SetJobID(claimed.ID).
		SetPayload(claimed.Payload).
		SetReason(handlerErr.Error()).
		SetCorrelationID(correlationID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to write dead letter for job %s: %w", claimed.ID, err)
	}

	slog.Warn("Job moved to dead letter",
		"job_id", claimed.ID,
		"queue", claimed.Queue,
		"attempts", claimed.Attempts,
		"correlation_id", correlationID)
	return nil
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
