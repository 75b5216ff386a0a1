package approval

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/emissary-bot/emissary/ent"
	entapproval "github.com/emissary-bot/emissary/ent/approval"
	"github.com/emissary-bot/emissary/pkg/config"
	"github.com/emissary-bot/emissary/pkg/queue"
	"github.com/emissary-bot/emissary/pkg/transport"
)

// ExpiryHandler returns the approval-timeouts queue handler. The job fires
// at the TTL deadline; the handler re-checks state, transitions to expired,
// and notifies the user.
func (e *Engine) ExpiryHandler() queue.Handler {
	return func(ctx context.Context, job *ent.Job) error {
		approvalID, _ := job.Payload["approval_id"].(string)
		if approvalID == "" {
			return fmt.Errorf("expiry job %s has no approval_id", job.ID)
		}

		rec, err := e.client.Approval.Get(ctx, approvalID)
		if err != nil {
			if ent.IsNotFound(err) {
				slog.Warn("Expiry job for missing approval", "approval_id", approvalID)
				return nil
			}
			return fmt.Errorf("failed to load approval %s: %w", approvalID, err)
		}

		if rec.Status != entapproval.StatusRequested || e.now().Before(rec.ExpiresAt) {
			return nil
		}

		if err := e.expire(ctx, rec); err != nil {
			return err
		}

		e.notifyExpired(ctx, rec)
		return nil
	}
}

// notifyExpired edits the prompt card and sends a follow-up line. Transport
// failures are non-fatal: the state transition already happened.
func (e *Engine) notifyExpired(ctx context.Context, rec *ent.Approval) {
	text := RenderExpiredCard(rec)
	if rec.PromptMessageID != nil {
		if err := e.transport.EditText(ctx, rec.ChatID, *rec.PromptMessageID, text, nil); err != nil && !transport.IsNotModified(err) {
			slog.Warn("Failed to edit expired approval prompt", "approval_id", rec.ID, "error", err)
		}
	}
	if err := e.transport.SendText(ctx, rec.ChatID, text, transport.SendOptions{}); err != nil {
		slog.Warn("Failed to send approval expiry notice", "approval_id", rec.ID, "error", err)
	}
}

// CountdownHandler returns the approval-countdowns queue handler. While the
// approval is still decidable it re-renders the remaining time on the
// prompt card and reschedules itself; otherwise it stops.
func (e *Engine) CountdownHandler() queue.Handler {
	return func(ctx context.Context, job *ent.Job) error {
		approvalID, _ := job.Payload["approval_id"].(string)
		if approvalID == "" {
			return fmt.Errorf("countdown job %s has no approval_id", job.ID)
		}

		rec, err := e.client.Approval.Get(ctx, approvalID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil
			}
			return fmt.Errorf("failed to load approval %s: %w", approvalID, err)
		}

		now := e.now()
		remaining := rec.ExpiresAt.Sub(now)
		if rec.Status != entapproval.StatusRequested || remaining <= 0 {
			return nil
		}

		if rec.PromptMessageID != nil {
			text, keyboard := RenderPendingCard(rec, remaining)
			if err := e.transport.EditText(ctx, rec.ChatID, *rec.PromptMessageID, text, keyboard); err != nil && !transport.IsNotModified(err) {
				slog.Debug("Countdown card edit failed", "approval_id", rec.ID, "error", err)
			}
		}

		next := countdownTick
		if remaining < next {
			next = remaining
		}
		if _, _, err := e.queue.Enqueue(ctx, config.QueueApprovalCountdowns, queue.EnqueueOptions{
			Payload: job.Payload,
			Delay:   next,
		}); err != nil {
			slog.Warn("Failed to reschedule countdown job", "approval_id", rec.ID, "error", err)
		}
		return nil
	}
}

// PostPromptCard sends the approval card and records the prompt message id.
// Called by the executor after registering approvals for a turn.
func (e *Engine) PostPromptCard(ctx context.Context, rec *ent.Approval, opts transport.SendOptions) error {
	text, keyboard := RenderPendingCard(rec, time.Until(rec.ExpiresAt))
	messageID, err := e.transport.SendMessageWithKeyboard(ctx, rec.ChatID, text, keyboard, opts)
	if err != nil {
		return fmt.Errorf("failed to post approval prompt: %w", err)
	}
	if err := e.SetPromptMessage(ctx, rec.ID, messageID); err != nil {
		slog.Warn("Failed to record approval prompt message id", "approval_id", rec.ID, "error", err)
	}
	return nil
}
