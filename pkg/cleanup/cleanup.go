// Package cleanup enforces retention: old idempotency records, finished
// jobs, and terminal approvals are deleted on a fixed cadence.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/emissary-bot/emissary/ent"
	entapproval "github.com/emissary-bot/emissary/ent/approval"
	"github.com/emissary-bot/emissary/ent/job"
	"github.com/emissary-bot/emissary/ent/processedupdate"
)

// Retention windows.
const (
	updateRetention   = 30 * 24 * time.Hour // replay window for processed updates
	jobRetention      = 7 * 24 * time.Hour  // completed jobs
	approvalRetention = 30 * 24 * time.Hour // terminal approvals

	runInterval = time.Hour
)

// Service deletes expired rows.
type Service struct {
	client *ent.Client
}

// NewService creates a cleanup Service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// Run executes cleanup passes until the context is done. The first pass
// runs immediately.
func (s *Service) Run(ctx context.Context) {
	slog.Info("Cleanup service started", "interval", runInterval)

	s.runOnce(ctx)

	ticker := time.NewTicker(runInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Cleanup service stopped")
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

// runOnce performs one cleanup pass. Each deletion is independent; a
// failure in one does not block the others.
func (s *Service) runOnce(ctx context.Context) {
	now := time.Now()

	updates, err := s.client.ProcessedUpdate.Delete().
		Where(
			processedupdate.StatusIn(processedupdate.StatusProcessed, processedupdate.StatusFailed),
			processedupdate.ReceivedAtLT(now.Add(-updateRetention)),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to delete old processed updates", "error", err)
	}

	jobs, err := s.client.Job.Delete().
		Where(
			job.StatusEQ(job.StatusCompleted),
			job.UpdatedAtLT(now.Add(-jobRetention)),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to delete completed jobs", "error", err)
	}

	approvals, err := s.client.Approval.Delete().
		Where(
			entapproval.StatusIn(
				entapproval.StatusApproved,
				entapproval.StatusDenied,
				entapproval.StatusExpired,
				entapproval.StatusFailed,
			),
			entapproval.CreatedAtLT(now.Add(-approvalRetention)),
		).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to delete terminal approvals", "error", err)
	}

	if updates+jobs+approvals > 0 {
		slog.Info("Cleanup pass complete",
			"updates_deleted", updates,
			"jobs_deleted", jobs,
			"approvals_deleted", approvals)
	}
}
