// Package ingest turns raw transport updates into durable queue work. Both
// transport modes (webhook push and long-poll pull) share one contract:
// persist first, acknowledge, then enqueue. Enqueue failures are healed by
// the recovery sweep, so an acknowledged update is never lost.
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/emissary-bot/emissary/ent/processedupdate"
	"github.com/emissary-bot/emissary/pkg/config"
	"github.com/emissary-bot/emissary/pkg/models"
	"github.com/emissary-bot/emissary/pkg/queue"
	"github.com/emissary-bot/emissary/pkg/services"
)

// Pipeline is the shared ingestion entry point.
type Pipeline struct {
	updates *services.UpdateService
	queue   *queue.Service
}

// NewPipeline creates an ingestion Pipeline.
func NewPipeline(updates *services.UpdateService, q *queue.Service) *Pipeline {
	return &Pipeline{updates: updates, queue: q}
}

// Result reports what ingestion did with one update.
type Result struct {
	Duplicate bool
	JobID     string
}

// Ingest persists and enqueues one update. Duplicates stop after the
// insert attempt. An enqueue failure leaves the row in received state for
// the recovery sweep and is NOT returned as an error: the durable insert
// is the acknowledgment contract.
func (p *Pipeline) Ingest(ctx context.Context, update *models.Update) (*Result, error) {
	if update.UpdateID <= 0 {
		return nil, services.NewValidationError("update_id", "must be a positive integer")
	}

	payload, err := update.Payload()
	if err != nil {
		return nil, fmt.Errorf("failed to encode update %d: %w", update.UpdateID, err)
	}

	inserted, _, err := p.updates.TryInsert(ctx, update.UpdateID, payload)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return &Result{Duplicate: true}, nil
	}

	jobID, err := p.enqueue(ctx, update.UpdateID, payload)
	if err != nil {
		slog.Warn("Update persisted but enqueue failed, recovery sweep will retry",
			"update_id", update.UpdateID, "error", err)
		return &Result{JobID: ""}, nil
	}
	return &Result{JobID: jobID}, nil
}

// enqueue places the update job and advances the row to enqueued.
func (p *Pipeline) enqueue(ctx context.Context, updateID int64, payload map[string]interface{}) (string, error) {
	jobID := fmt.Sprintf("update-%d", updateID)
	if _, _, err := p.queue.Enqueue(ctx, config.QueueUpdates, queue.EnqueueOptions{
		JobID:   jobID,
		Payload: map[string]interface{}{"update_id": updateID},
	}); err != nil {
		return "", err
	}
	if err := p.updates.MarkStatus(ctx, updateID, processedupdate.StatusEnqueued, ""); err != nil {
		return "", err
	}
	return jobID, nil
}
