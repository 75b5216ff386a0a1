package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/emissary-bot/emissary/pkg/models"
)

// UpdateSource is the pull-mode intake: a long-poll binding to the chat
// platform. offset is the first update id the caller has not yet seen.
type UpdateSource interface {
	PollUpdates(ctx context.Context, offset int64) ([]models.Update, error)
}

// pollErrorBackoff spaces retries after a failed poll.
const pollErrorBackoff = 3 * time.Second

// RunLongPoll consumes an UpdateSource until the context is done. The
// offset only advances past an update once it is durably persisted, so a
// crash between poll and persist redelivers — and the idempotency record
// absorbs the duplicate.
func (p *Pipeline) RunLongPoll(ctx context.Context, source UpdateSource) {
	slog.Info("Long-poll intake started")

	var offset int64
	for {
		select {
		case <-ctx.Done():
			slog.Info("Long-poll intake stopped")
			return
		default:
		}

		updates, err := source.PollUpdates(ctx, offset)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Warn("Long poll failed", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(pollErrorBackoff):
			}
			continue
		}

		for i := range updates {
			update := &updates[i]
			if _, err := p.Ingest(ctx, update); err != nil {
				// Do not advance past a failed persist; the next poll
				// redelivers from here.
				slog.Error("Failed to ingest polled update", "update_id", update.UpdateID, "error", err)
				break
			}
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
		}
	}
}
