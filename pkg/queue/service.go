package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/emissary-bot/emissary/ent"
	"github.com/emissary-bot/emissary/ent/job"
	"github.com/emissary-bot/emissary/pkg/config"
	"github.com/google/uuid"
)

// Service is the producer side of the queue.
type Service struct {
	client      *ent.Client
	maxAttempts map[string]int
}

// NewService creates a queue Service with per-queue attempt budgets taken
// from the fixed queue definitions.
func NewService(client *ent.Client) *Service {
	budgets := make(map[string]int)
	for _, def := range config.QueueDefinitions() {
		budgets[def.Name] = def.MaxAttempts
	}
	return &Service{client: client, maxAttempts: budgets}
}

// Enqueue places a job. If a job with the same id already exists the call
// is a no-op and inserted=false — the producer-side dedupe contract.
func (s *Service) Enqueue(ctx context.Context, queueName string, opts EnqueueOptions) (jobID string, inserted bool, err error) {
	jobID = opts.JobID
	if jobID == "" {
		jobID = uuid.New().String()
	}

	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		if budget, ok := s.maxAttempts[queueName]; ok {
			maxAttempts = budget
		} else {
			maxAttempts = 5
		}
	}

	payload := opts.Payload
	if payload == nil {
		payload = map[string]interface{}{}
	}

	create := s.client.Job.Create().
		SetID(jobID).
		SetQueue(queueName).
		SetPayload(payload).
		SetPriority(opts.Priority).
		SetMaxAttempts(maxAttempts)
	if opts.Delay > 0 {
		create = create.SetRunAt(time.Now().Add(opts.Delay))
	}

	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return jobID, false, nil
		}
		return "", false, fmt.Errorf("failed to enqueue job %s on %s: %w", jobID, queueName, err)
	}
	return jobID, true, nil
}

// Depth returns the number of due pending jobs across all queues.
func (s *Service) Depth(ctx context.Context) (int, error) {
	n, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusPending),
			job.RunAtLTE(time.Now()),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query queue depth: %w", err)
	}
	return n, nil
}
