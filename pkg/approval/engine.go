// Package approval implements the consent gate for sensitive tool calls:
// a persisted state machine (requested → approved|denied|expired|failed),
// TTL-driven expiry, a live countdown card, and a cautious-mode double-tap
// confirmation.
package approval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/emissary-bot/emissary/ent"
	entapproval "github.com/emissary-bot/emissary/ent/approval"
	"github.com/emissary-bot/emissary/pkg/audit"
	"github.com/emissary-bot/emissary/pkg/config"
	"github.com/emissary-bot/emissary/pkg/models"
	"github.com/emissary-bot/emissary/pkg/queue"
	"github.com/emissary-bot/emissary/pkg/tools"
	"github.com/emissary-bot/emissary/pkg/transport"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// State machine parameters.
const (
	// TTL is how long an approval stays decidable.
	TTL = 5 * time.Minute

	// countdownTick is the cadence of the pending-card refresh.
	countdownTick = 30 * time.Second

	// confirmMarkerTTL bounds the cautious-mode double-tap window.
	confirmMarkerTTL = 30 * time.Second
)

// Sentinel errors.
var (
	// ErrUnknownToken indicates the callback token matches no approval.
	ErrUnknownToken = errors.New("unknown approval token")

	// ErrConfirmationRequired indicates a cautious-mode first tap: the
	// decision is withheld until a second tap lands within the marker TTL.
	ErrConfirmationRequired = errors.New("confirmation required")
)

// StateError reports a decision attempt against a non-requested approval.
type StateError struct {
	Status string
}

func (e *StateError) Error() string {
	return "approval already " + e.Status
}

// IsStateError reports whether err is a terminal-state rejection.
func IsStateError(err error) bool {
	var se *StateError
	return errors.As(err, &se)
}

// Action is a user decision verb.
type Action string

// Decision actions.
const (
	ActionApprove Action = "approve"
	ActionDeny    Action = "deny"
)

// Engine owns Approval rows and their lifecycle jobs.
type Engine struct {
	client    *ent.Client
	rdb       redis.UniversalClient
	queue     *queue.Service
	audit     *audit.Service
	transport transport.Client
	features  config.FeatureFlags

	now func() time.Time
}

// NewEngine creates an approval Engine.
func NewEngine(client *ent.Client, rdb redis.UniversalClient, q *queue.Service, auditSvc *audit.Service, tc transport.Client, features config.FeatureFlags) *Engine {
	return &Engine{
		client:    client,
		rdb:       rdb,
		queue:     q,
		audit:     auditSvc,
		transport: tc,
		features:  features,
		now:       time.Now,
	}
}

// CreateInput describes one gated tool call to register.
type CreateInput struct {
	SessionID     string
	ChatID        int64
	UserID        int64
	ToolName      string
	ToolCallID    string
	ToolClass     tools.Class
	ToolInput     map[string]interface{}
	RiskProfile   models.RiskProfile
	CorrelationID string
}

// Create registers an approval: assess risk, assign the callback token,
// persist with the TTL deadline, and schedule the expiry and countdown
// jobs. The approval-requested audit event is best-effort.
func (e *Engine) Create(ctx context.Context, in CreateInput) (*ent.Approval, error) {
	token, err := newCallbackToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate callback token: %w", err)
	}

	assessment := Assess(in.ToolClass, in.ToolInput, in.RiskProfile)
	expiresAt := e.now().Add(TTL)
	approvalID := uuid.New().String()

	rec, err := e.client.Approval.Create().
		SetID(approvalID).
		SetCallbackToken(token).
		SetSessionID(in.SessionID).
		SetChatID(in.ChatID).
		SetUserID(in.UserID).
		SetToolName(in.ToolName).
		SetToolCallID(in.ToolCallID).
		SetToolInput(in.ToolInput).
		SetRiskLevel(entapproval.RiskLevel(assessment.Level.String())).
		SetRiskConfidence(entapproval.RiskConfidence(string(assessment.Confidence))).
		SetExpiresAt(expiresAt).
		SetCorrelationID(in.CorrelationID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist approval: %w", err)
	}

	if _, err := e.audit.Append(ctx, audit.Entry{
		ActorType:     audit.ActorTypeSystem,
		ActorID:       "approval-engine",
		EventType:     "approval.requested",
		CorrelationID: in.CorrelationID,
		Metadata: map[string]interface{}{
			"approval_id": approvalID,
			"tool_name":   in.ToolName,
			"risk_level":  assessment.Level.String(),
			"expires_at":  expiresAt.UTC().Format(time.RFC3339),
		},
	}); err != nil {
		slog.Warn("Audit append failed for approval request", "approval_id", approvalID, "error", err)
	}

	e.scheduleLifecycleJobs(ctx, rec)
	return rec, nil
}

// scheduleLifecycleJobs enqueues the expiry and first countdown jobs.
// Failures are logged: expiry is additionally enforced at decision time,
// so a missing job degrades UX but not safety. The countdown is pure card
// cosmetics and is skipped when the approval-UX feature is off.
func (e *Engine) scheduleLifecycleJobs(ctx context.Context, rec *ent.Approval) {
	if _, _, err := e.queue.Enqueue(ctx, config.QueueApprovalTimeouts, queue.EnqueueOptions{
		JobID:   "approval-expiry-" + rec.ID,
		Payload: map[string]interface{}{"approval_id": rec.ID, "correlation_id": rec.CorrelationID},
		Delay:   TTL,
	}); err != nil {
		slog.Error("Failed to schedule approval expiry job", "approval_id", rec.ID, "error", err)
	}

	if !e.features.ApprovalUX {
		return
	}
	if _, _, err := e.queue.Enqueue(ctx, config.QueueApprovalCountdowns, queue.EnqueueOptions{
		Payload: map[string]interface{}{"approval_id": rec.ID, "correlation_id": rec.CorrelationID},
		Delay:   countdownTick,
	}); err != nil {
		slog.Warn("Failed to schedule approval countdown job", "approval_id", rec.ID, "error", err)
	}
}

// SetPromptMessage records the transport message id of the approval card,
// so expiry and countdown workers can edit it later.
func (e *Engine) SetPromptMessage(ctx context.Context, approvalID string, messageID int64) error {
	return e.client.Approval.UpdateOneID(approvalID).
		SetPromptMessageID(messageID).
		Exec(ctx)
}

// DecideInput describes one decision attempt.
type DecideInput struct {
	CallbackToken string
	Action        Action
	DeciderID     int64

	// DeciderProfile drives the cautious double-tap rule.
	DeciderProfile models.RiskProfile
}

// Outcome is the result of a completed decision.
type Outcome struct {
	Approval *ent.Approval
	Approved bool

	// Response is the synthetic part the router feeds back into the
	// agent loop as a follow-up turn.
	Response models.ApprovalResponsePart
}

// Decide applies a user decision. Terminal states are immutable
// (StateError); past-deadline approvals transition to expired first.
// For high/critical risk under a cautious profile, the first approve tap
// returns ErrConfirmationRequired and only a second tap within the marker
// TTL decides. The decision audit event is security-critical: append
// failure fails the decision.
func (e *Engine) Decide(ctx context.Context, in DecideInput) (*Outcome, error) {
	rec, err := e.client.Approval.Query().
		Where(entapproval.CallbackTokenEQ(in.CallbackToken)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrUnknownToken
		}
		return nil, fmt.Errorf("failed to load approval by token: %w", err)
	}

	if rec.Status != entapproval.StatusRequested {
		return nil, &StateError{Status: string(rec.Status)}
	}

	now := e.now()
	if now.After(rec.ExpiresAt) {
		if err := e.expire(ctx, rec); err != nil {
			slog.Error("Failed to expire overdue approval at decision time", "approval_id", rec.ID, "error", err)
		}
		return nil, &StateError{Status: string(entapproval.StatusExpired)}
	}

	if in.Action == ActionApprove && e.needsDoubleTap(rec, in.DeciderProfile) {
		confirmed, err := e.takeConfirmMarker(ctx, rec.ID, in.DeciderID)
		if err != nil {
			// Marker store down: fall through and decide on one tap
			// rather than deadlock the approval.
			slog.Warn("Confirmation marker check failed, proceeding without double-tap", "approval_id", rec.ID, "error", err)
		} else if !confirmed {
			return nil, ErrConfirmationRequired
		}
	}

	target := entapproval.StatusDenied
	if in.Action == ActionApprove {
		target = entapproval.StatusApproved
	}

	// Guarded update: only one concurrent decision can win.
	n, err := e.client.Approval.Update().
		Where(
			entapproval.IDEQ(rec.ID),
			entapproval.StatusEQ(entapproval.StatusRequested),
		).
		SetStatus(target).
		SetDecidedBy(in.DeciderID).
		SetDecidedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record approval decision: %w", err)
	}
	if n == 0 {
		current, qerr := e.client.Approval.Get(ctx, rec.ID)
		if qerr != nil {
			return nil, fmt.Errorf("approval decision lost race and reload failed: %w", qerr)
		}
		return nil, &StateError{Status: string(current.Status)}
	}

	if _, err := e.audit.Append(ctx, audit.Entry{
		ActorType:     audit.ActorTypeUser,
		ActorID:       fmt.Sprintf("%d", in.DeciderID),
		EventType:     "approval.decided",
		CorrelationID: rec.CorrelationID,
		Metadata: map[string]interface{}{
			"approval_id": rec.ID,
			"tool_name":   rec.ToolName,
			"decision":    string(target),
			"risk_level":  string(rec.RiskLevel),
		},
	}); err != nil {
		// Security-critical: the decision stands in the database but the
		// caller must know the audit trail is incomplete.
		return nil, fmt.Errorf("approval decided but audit append failed: %w", err)
	}

	decided, err := e.client.Approval.Get(ctx, rec.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload decided approval: %w", err)
	}

	return &Outcome{
		Approval: decided,
		Approved: target == entapproval.StatusApproved,
		Response: models.ApprovalResponsePart{
			ApprovalID: decided.ID,
			CallID:     decided.ToolCallID,
			Name:       decided.ToolName,
			Approved:   target == entapproval.StatusApproved,
		},
	}, nil
}

// GetByToken loads an approval by its callback token.
func (e *Engine) GetByToken(ctx context.Context, token string) (*ent.Approval, error) {
	rec, err := e.client.Approval.Query().
		Where(entapproval.CallbackTokenEQ(token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrUnknownToken
		}
		return nil, err
	}
	return rec, nil
}

// PendingForSession returns requested approvals for a session.
func (e *Engine) PendingForSession(ctx context.Context, sessionID string) ([]*ent.Approval, error) {
	return e.client.Approval.Query().
		Where(
			entapproval.SessionIDEQ(sessionID),
			entapproval.StatusEQ(entapproval.StatusRequested),
		).
		Order(ent.Asc(entapproval.FieldCreatedAt)).
		All(ctx)
}

// needsDoubleTap applies the cautious-mode rule.
func (e *Engine) needsDoubleTap(rec *ent.Approval, profile models.RiskProfile) bool {
	if profile != models.RiskProfileCautious {
		return false
	}
	return rec.RiskLevel == entapproval.RiskLevelHigh || rec.RiskLevel == entapproval.RiskLevelCritical
}

// takeConfirmMarker sets the double-tap intent marker. Returns false on
// first tap (marker created), true on second tap (marker already present).
func (e *Engine) takeConfirmMarker(ctx context.Context, approvalID string, userID int64) (bool, error) {
	key := fmt.Sprintf("apconfirm:%s:%d", approvalID, userID)
	created, err := e.rdb.SetNX(ctx, key, 1, confirmMarkerTTL).Result()
	if err != nil {
		return false, err
	}
	return !created, nil
}

// expire transitions a requested approval to expired with a guarded update
// and appends the audit event best-effort.
func (e *Engine) expire(ctx context.Context, rec *ent.Approval) error {
	n, err := e.client.Approval.Update().
		Where(
			entapproval.IDEQ(rec.ID),
			entapproval.StatusEQ(entapproval.StatusRequested),
		).
		SetStatus(entapproval.StatusExpired).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to expire approval %s: %w", rec.ID, err)
	}
	if n == 0 {
		return nil // already terminal
	}

	if _, err := e.audit.Append(ctx, audit.Entry{
		ActorType:     audit.ActorTypeSystem,
		ActorID:       "approval-engine",
		EventType:     "approval.expired",
		CorrelationID: rec.CorrelationID,
		Metadata: map[string]interface{}{
			"approval_id": rec.ID,
			"tool_name":   rec.ToolName,
		},
	}); err != nil {
		slog.Warn("Audit append failed for approval expiry", "approval_id", rec.ID, "error", err)
	}
	return nil
}
