package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/emissary-bot/emissary/ent/processedupdate"
)

// Recovery sweep parameters.
const (
	sweepInterval  = 5 * time.Second
	sweepBatchSize = 200
)

// RunRecoverySweep re-enqueues updates stuck in received state. It runs one
// pass immediately, then every sweepInterval until the context is done.
// Every replica runs the sweep; the job-id dedupe makes the overlap safe.
func (p *Pipeline) RunRecoverySweep(ctx context.Context) {
	slog.Info("Update recovery sweep started", "interval", sweepInterval, "batch", sweepBatchSize)

	p.sweepOnce(ctx)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Update recovery sweep stopped")
			return
		case <-ticker.C:
			p.sweepOnce(ctx)
		}
	}
}

// sweepOnce re-enqueues one batch of stuck updates. Per-row failures
// re-mark the row received so the next tick retries it.
func (p *Pipeline) sweepOnce(ctx context.Context) {
	rows, err := p.updates.ListReceivedForRecovery(ctx, sweepBatchSize)
	if err != nil {
		slog.Error("Recovery sweep failed to list stuck updates", "error", err)
		return
	}
	if len(rows) == 0 {
		return
	}

	recovered := 0
	for _, row := range rows {
		if _, err := p.enqueue(ctx, row.ID, row.Payload); err != nil {
			slog.Warn("Recovery re-enqueue failed", "update_id", row.ID, "error", err)
			if merr := p.updates.MarkStatus(ctx, row.ID, processedupdate.StatusReceived, err.Error()); merr != nil {
				slog.Error("Failed to re-mark update received", "update_id", row.ID, "error", merr)
			}
			continue
		}
		recovered++
	}
	slog.Info("Recovery sweep pass complete", "stuck", len(rows), "recovered", recovered)
}
