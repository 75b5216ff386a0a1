// Package services contains the business-logic service layer over ent.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/emissary-bot/emissary/ent"
	"github.com/emissary-bot/emissary/ent/processedupdate"
)

// UpdateService owns ProcessedUpdate rows: the idempotency records that make
// transport ingestion exactly-once.
type UpdateService struct {
	client *ent.Client
}

// NewUpdateService creates a new UpdateService.
func NewUpdateService(client *ent.Client) *UpdateService {
	return &UpdateService{client: client}
}

// TryInsert atomically inserts the idempotency record for an update.
// inserted=false means the update was seen before; callers MUST NOT
// re-enqueue it.
func (s *UpdateService) TryInsert(ctx context.Context, updateID int64, payload map[string]interface{}) (bool, *ent.ProcessedUpdate, error) {
	rec, err := s.client.ProcessedUpdate.Create().
		SetID(updateID).
		SetPayload(payload).
		SetStatus(processedupdate.StatusReceived).
		Save(ctx)
	if err == nil {
		return true, rec, nil
	}
	if !ent.IsConstraintError(err) {
		return false, nil, fmt.Errorf("failed to insert update %d: %w", updateID, err)
	}

	// Duplicate: return the existing record.
	existing, getErr := s.client.ProcessedUpdate.Get(ctx, updateID)
	if getErr != nil {
		return false, nil, fmt.Errorf("failed to load duplicate update %d: %w", updateID, getErr)
	}
	return false, existing, nil
}

// Get returns the stored record for an update id.
func (s *UpdateService) Get(ctx context.Context, updateID int64) (*ent.ProcessedUpdate, error) {
	rec, err := s.client.ProcessedUpdate.Get(ctx, updateID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load update %d: %w", updateID, err)
	}
	return rec, nil
}

// allowedTransitions encodes the monotone status lifecycle:
// received → enqueued → {processed, failed}. received → received is
// permitted so recovery retries can reset a failed enqueue; enqueued never
// moves backward.
var allowedTransitions = map[processedupdate.Status][]processedupdate.Status{
	processedupdate.StatusReceived: {
		processedupdate.StatusReceived,
		processedupdate.StatusEnqueued,
		processedupdate.StatusProcessed,
		processedupdate.StatusFailed,
	},
	processedupdate.StatusEnqueued: {
		processedupdate.StatusEnqueued,
		processedupdate.StatusProcessed,
		processedupdate.StatusFailed,
	},
	processedupdate.StatusProcessed: {processedupdate.StatusProcessed},
	processedupdate.StatusFailed:    {processedupdate.StatusFailed},
}

// MarkStatus moves an update along its lifecycle. Idempotent: setting the
// current status again is a no-op. Regressions from terminal states return
// ErrInvalidTransition.
func (s *UpdateService) MarkStatus(ctx context.Context, updateID int64, status processedupdate.Status, errMsg string) error {
	rec, err := s.client.ProcessedUpdate.Get(ctx, updateID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load update %d: %w", updateID, err)
	}

	if !transitionAllowed(rec.Status, status) {
		return fmt.Errorf("%w: %s → %s for update %d", ErrInvalidTransition, rec.Status, status, updateID)
	}

	update := rec.Update().SetStatus(status)
	switch status {
	case processedupdate.StatusProcessed, processedupdate.StatusFailed:
		update = update.SetHandledAt(time.Now())
	}
	if errMsg != "" {
		update = update.SetError(errMsg)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark update %d %s: %w", updateID, status, err)
	}
	return nil
}

// ListReceivedForRecovery returns updates stuck in received state, oldest
// first, for the recovery sweep to re-enqueue.
func (s *UpdateService) ListReceivedForRecovery(ctx context.Context, limit int) ([]*ent.ProcessedUpdate, error) {
	rows, err := s.client.ProcessedUpdate.Query().
		Where(processedupdate.StatusEQ(processedupdate.StatusReceived)).
		Order(ent.Asc(processedupdate.FieldReceivedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list received updates: %w", err)
	}
	return rows, nil
}

func transitionAllowed(from, to processedupdate.Status) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
