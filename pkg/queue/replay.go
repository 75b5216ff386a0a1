package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/emissary-bot/emissary/ent"
	"github.com/emissary-bot/emissary/pkg/config"
)

// ReplayDeadLetterHandler returns the retry-deadletter queue handler: it
// re-enqueues a dead letter's original payload on its original queue, then
// removes the dead letter. Replay jobs themselves have no retry budget.
func (s *Service) ReplayDeadLetterHandler() Handler {
	return func(ctx context.Context, job *ent.Job) error {
		deadLetterID, _ := job.Payload["dead_letter_id"].(string)
		if deadLetterID == "" {
			return fmt.Errorf("replay job %s has no dead_letter_id", job.ID)
		}

		dl, err := s.client.DeadLetter.Get(ctx, deadLetterID)
		if err != nil {
			if ent.IsNotFound(err) {
				slog.Warn("Replay job for missing dead letter", "dead_letter_id", deadLetterID)
				return nil
			}
			return fmt.Errorf("failed to load dead letter %s: %w", deadLetterID, err)
		}

		jobID, inserted, err := s.Enqueue(ctx, dl.Queue, EnqueueOptions{Payload: dl.Payload})
		if err != nil {
			return fmt.Errorf("failed to re-enqueue dead letter %s: %w", deadLetterID, err)
		}

		if err := s.client.DeadLetter.DeleteOneID(deadLetterID).Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete replayed dead letter %s: %w", deadLetterID, err)
		}

		slog.Info("Dead letter replayed",
			"dead_letter_id", deadLetterID,
			"queue", dl.Queue,
			"job_id", jobID,
			"inserted", inserted,
			"correlation_id", dl.CorrelationID)
		return nil
	}
}

// RequestDeadLetterReplay schedules a dead letter for replay.
func (s *Service) RequestDeadLetterReplay(ctx context.Context, deadLetterID string) (string, error) {
	jobID, _, err := s.Enqueue(ctx, config.QueueRetryDeadLetter, EnqueueOptions{
		JobID:   "replay-" + deadLetterID,
		Payload: map[string]interface{}{"dead_letter_id": deadLetterID},
	})
	return jobID, err
}
