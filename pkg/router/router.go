// Package router classifies stored updates into callbacks, commands, and
// agent turns, applying admission control before any turn is enqueued.
package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/emissary-bot/emissary/ent"
	"github.com/emissary-bot/emissary/ent/processedupdate"
	"github.com/emissary-bot/emissary/pkg/approval"
	"github.com/emissary-bot/emissary/pkg/config"
	"github.com/emissary-bot/emissary/pkg/models"
	"github.com/emissary-bot/emissary/pkg/queue"
	"github.com/emissary-bot/emissary/pkg/ratelimit"
	"github.com/emissary-bot/emissary/pkg/services"
	"github.com/emissary-bot/emissary/pkg/transport"
	"github.com/google/uuid"
)

// TopicNamer asks a model for a forum topic title. Implemented by the
// agent package's model client adapter; nil routers fall back to the
// heuristic naming.
type TopicNamer interface {
	NameTopic(ctx context.Context, modelID, text string) (string, error)
}

// Router turns stored updates into dispatched work.
type Router struct {
	updates   *services.UpdateService
	sessions  *services.SessionService
	prefs     *services.PreferenceService
	limiter   *ratelimit.Limiter
	queue     *queue.Service
	engine    *approval.Engine
	transport transport.Client
	namer     TopicNamer
	modelCfg  config.ModelConfig
	features  config.FeatureFlags
}

// NewRouter wires a Router.
func NewRouter(
	updates *services.UpdateService,
	sessions *services.SessionService,
	prefs *services.PreferenceService,
	limiter *ratelimit.Limiter,
	q *queue.Service,
	engine *approval.Engine,
	tc transport.Client,
	namer TopicNamer,
	modelCfg config.ModelConfig,
	features config.FeatureFlags,
) *Router {
	return &Router{
		updates:   updates,
		sessions:  sessions,
		prefs:     prefs,
		limiter:   limiter,
		queue:     q,
		engine:    engine,
		transport: tc,
		namer:     namer,
		modelCfg:  modelCfg,
		features:  features,
	}
}

// UpdateHandler returns the updates queue handler: load the stored payload,
// route it, and advance the idempotency record to its terminal status.
func (r *Router) UpdateHandler() queue.Handler {
	return func(ctx context.Context, job *ent.Job) error {
		updateID, ok := numericPayload(job.Payload, "update_id")
		if !ok {
			return fmt.Errorf("update job %s has no update_id", job.ID)
		}

		rec, err := r.updates.Get(ctx, updateID)
		if err != nil {
			return err
		}

		update, err := models.UpdateFromPayload(rec.Payload)
		if err != nil {
			// Undecodable payloads never succeed; fail the record now.
			if merr := r.updates.MarkStatus(ctx, updateID, processedupdate.StatusFailed, err.Error()); merr != nil {
				slog.Error("Failed to mark undecodable update failed", "update_id", updateID, "error", merr)
			}
			return fmt.Errorf("undecodable update %d: %v", updateID, err)
		}

		if err := r.Route(ctx, update); err != nil {
			if job.Attempts >= job.MaxAttempts {
				if merr := r.updates.MarkStatus(ctx, updateID, processedupdate.StatusFailed, err.Error()); merr != nil {
					slog.Error("Failed to mark update failed", "update_id", updateID, "error", merr)
				}
			}
			return err
		}

		return r.updates.MarkStatus(ctx, updateID, processedupdate.StatusProcessed, "")
	}
}

// Route dispatches one update. Callbacks win over text when both are
// somehow present.
func (r *Router) Route(ctx context.Context, update *models.Update) error {
	switch {
	case update.Callback != nil:
		return r.routeCallback(ctx, update.Callback)
	case update.Message != nil:
		return r.routeMessage(ctx, update.Message)
	default:
		slog.Debug("Update carries neither message nor callback, ignoring", "update_id", update.UpdateID)
		return nil
	}
}

// routeMessage applies the admission ladder, then either runs a command or
// enqueues an agent turn.
func (r *Router) routeMessage(ctx context.Context, msg *models.IncomingMessage) error {
	if decision := r.limiter.CheckChatFlood(ctx, msg.ChatID); !decision.Allowed {
		r.notifyDenial(ctx, msg, decision)
		return nil
	}

	if cmd, args, ok := parseCommand(msg.Text); ok && isAllowlistedCommand(cmd) {
		return r.runCommand(ctx, msg, cmd, args)
	}

	if decision := r.limiter.CheckUserTurn(ctx, msg.UserID); !decision.Allowed {
		r.notifyDenial(ctx, msg, decision)
		return nil
	}

	threadID := msg.ThreadID
	if r.features.TopicAutoCreate && msg.ChatType == models.ChatTypeForum && threadID == 0 {
		threadID = r.autoCreateTopic(ctx, msg)
	}

	sess, err := r.sessions.GetOrCreate(ctx, msg.ChatID, msg.UserID, threadID)
	if err != nil {
		return err
	}
	prefs, err := r.prefs.Effective(ctx, msg.ChatID, msg.UserID)
	if err != nil {
		return err
	}

	return r.enqueueTurn(ctx, &models.TurnExecutionRequest{
		CorrelationID: uuid.New().String(),
		SessionID:     sess.ID,
		ChatID:        msg.ChatID,
		ChatType:      msg.ChatType,
		UserID:        msg.UserID,
		ThreadID:      threadID,
		Text:          msg.Text,
		Network:       prefs.Network,
		ModelID:       r.modelCfg.Primary,
		ResponseStyle: prefs.ResponseStyle,
		RiskProfile:   prefs.RiskProfile,
		WalletAddress: prefs.WalletAddress,
	})
}

// enqueueTurn serializes the request onto the agent-turns queue.
func (r *Router) enqueueTurn(ctx context.Context, req *models.TurnExecutionRequest) error {
	payload, err := turnPayload(req)
	if err != nil {
		return err
	}
	if _, _, err := r.queue.Enqueue(ctx, config.QueueAgentTurns, queue.EnqueueOptions{Payload: payload}); err != nil {
		return err
	}
	slog.Info("Agent turn enqueued",
		"correlation_id", req.CorrelationID,
		"session_id", req.SessionID,
		"chat_id", req.ChatID)
	return nil
}

// notifyDenial sends a rate-limit notice, throttled by the per-(user,
// reason) cooldown.
func (r *Router) notifyDenial(ctx context.Context, msg *models.IncomingMessage, decision ratelimit.Decision) {
	slog.Info("Message rate limited",
		"chat_id", msg.ChatID, "user_id", msg.UserID, "reason", decision.Reason)

	if !r.limiter.ShouldNotify(ctx, msg.UserID, decision.Reason) {
		return
	}

	var text string
	switch decision.Reason {
	case ratelimit.ReasonUserDaily:
		text = fmt.Sprintf("Daily limit reached (%d/%d). Resets at %s.",
			decision.DailyUsed, decision.DailyLimit,
			decision.ResetsAtUTC.Format(time.RFC3339))
	default:
		text = fmt.Sprintf("You're sending messages too quickly. Try again in %d seconds.",
			max(decision.RetryAfterSeconds, 1))
	}

	opts := transport.SendOptions{ThreadID: msg.ThreadID}
	if err := r.transport.SendText(ctx, msg.ChatID, text, opts); err != nil {
		slog.Warn("Failed to send rate limit notice", "chat_id", msg.ChatID, "error", err)
	}
}

// routeCallback handles an inline-button press.
func (r *Router) routeCallback(ctx context.Context, cb *models.CallbackQuery) error {
	parsed := ParseCallback(cb.Data)

	switch parsed.Kind {
	case CallbackApproval:
		return r.handleApprovalCallback(ctx, cb, parsed)
	case CallbackSettings:
		return r.handleSettingsCallback(ctx, cb, parsed)
	case CallbackWallet:
		return r.handleWalletCallback(ctx, cb, parsed)
	default:
		slog.Debug("Unknown callback payload ignored", "chat_id", cb.ChatID)
		return r.answer(ctx, cb.CallbackID, "", false)
	}
}

// handleApprovalCallback drives decisions, details, and refresh.
func (r *Router) handleApprovalCallback(ctx context.Context, cb *models.CallbackQuery, parsed ParsedCallback) error {
	switch parsed.Action {
	case ApprovalActionDetails:
		rec, err := r.engine.GetByToken(ctx, parsed.Token)
		if err != nil {
			if errors.Is(err, approval.ErrUnknownToken) {
				return r.answer(ctx, cb.CallbackID, "This approval no longer exists.", true)
			}
			return err
		}
		return r.answer(ctx, cb.CallbackID, approval.RenderDetails(rec), true)

	case ApprovalActionRefresh:
		rec, err := r.engine.GetByToken(ctx, parsed.Token)
		if err != nil {
			if errors.Is(err, approval.ErrUnknownToken) {
				return r.answer(ctx, cb.CallbackID, "This approval no longer exists.", true)
			}
			return err
		}
		if rec.PromptMessageID != nil {
			text, keyboard := approval.RenderPendingCard(rec, time.Until(rec.ExpiresAt))
			if err := r.transport.EditText(ctx, rec.ChatID, *rec.PromptMessageID, text, keyboard); err != nil && !transport.IsNotModified(err) {
				slog.Debug("Approval card refresh failed", "approval_id", rec.ID, "error", err)
			}
		}
		return r.answer(ctx, cb.CallbackID, "", false)
	}

	prefs, err := r.prefs.Effective(ctx, cb.ChatID, cb.UserID)
	if err != nil {
		return err
	}

	action := approval.ActionDeny
	if parsed.Action == ApprovalActionApprove {
		action = approval.ActionApprove
	}

	outcome, err := r.engine.Decide(ctx, approval.DecideInput{
		CallbackToken:  parsed.Token,
		Action:         action,
		DeciderID:      cb.UserID,
		DeciderProfile: prefs.RiskProfile,
	})
	switch {
	case err == nil:
	case errors.Is(err, approval.ErrConfirmationRequired):
		return r.answer(ctx, cb.CallbackID, "High-risk action: tap Approve again within 30 seconds to confirm.", true)
	case errors.Is(err, approval.ErrUnknownToken):
		return r.answer(ctx, cb.CallbackID, "This approval no longer exists.", true)
	case approval.IsStateError(err):
		return r.answer(ctx, cb.CallbackID, capitalize(err.Error())+".", true)
	default:
		return err
	}

	rec := outcome.Approval
	if rec.PromptMessageID != nil {
		text := approval.RenderDecidedCard(rec, outcome.Approved)
		if err := r.transport.EditText(ctx, rec.ChatID, *rec.PromptMessageID, text, nil); err != nil && !transport.IsNotModified(err) {
			slog.Debug("Decided card edit failed", "approval_id", rec.ID, "error", err)
		}
	}

	if err := r.enqueueFollowUpTurn(ctx, cb, rec.SessionID, outcome.Response); err != nil {
		return err
	}
	return r.answer(ctx, cb.CallbackID, "", false)
}

// enqueueFollowUpTurn resumes the agent loop with the decision as a
// synthetic tool-role input.
func (r *Router) enqueueFollowUpTurn(ctx context.Context, cb *models.CallbackQuery, sessionID string, response models.ApprovalResponsePart) error {
	sess, err := r.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	prefs, err := r.prefs.Effective(ctx, sess.ChatID, sess.UserID)
	if err != nil {
		return err
	}

	return r.enqueueTurn(ctx, &models.TurnExecutionRequest{
		CorrelationID:    uuid.New().String(),
		SessionID:        sess.ID,
		ChatID:           sess.ChatID,
		ChatType:         cb.ChatType,
		UserID:           sess.UserID,
		ThreadID:         sess.ThreadID,
		ApprovalResponse: &response,
		Network:          prefs.Network,
		ModelID:          r.modelCfg.Primary,
		ResponseStyle:    prefs.ResponseStyle,
		RiskProfile:      prefs.RiskProfile,
		WalletAddress:    prefs.WalletAddress,
	})
}

// autoCreateTopic names and creates a forum topic for a first message
// without a thread. Failures fall back to the main thread.
func (r *Router) autoCreateTopic(ctx context.Context, msg *models.IncomingMessage) int64 {
	name := r.topicName(ctx, msg.Text)
	threadID, err := r.transport.CreateForumTopic(ctx, msg.ChatID, name)
	if err != nil {
		slog.Warn("Forum topic auto-create failed", "chat_id", msg.ChatID, "error", err)
		return 0
	}
	slog.Info("Forum topic created", "chat_id", msg.ChatID, "thread_id", threadID, "name", name)
	return threadID
}

// topicName asks the topic-naming model when one is configured, falling
// back to the heuristic on failure or an empty answer.
func (r *Router) topicName(ctx context.Context, text string) string {
	if r.namer != nil && r.modelCfg.TopicNaming != "" {
		name, err := r.namer.NameTopic(ctx, r.modelCfg.TopicNaming, text)
		if err != nil {
			slog.Warn("Model topic naming failed, using heuristic", "error", err)
		} else if name = strings.TrimSpace(name); name != "" {
			if len(name) > maxTopicNameLength {
				name = TopicNameFromText(name)
			}
			return name
		}
	}
	return TopicNameFromText(text)
}

func (r *Router) answer(ctx context.Context, callbackID, text string, alert bool) error {
	if err := r.transport.AnswerCallback(ctx, callbackID, text, alert); err != nil {
		slog.Warn("Failed to answer callback", "callback_id", callbackID, "error", err)
	}
	return nil
}

func numericPayload(payload map[string]interface{}, key string) (int64, bool) {
	switch v := payload[key].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}

func turnPayload(req *models.TurnExecutionRequest) (map[string]interface{}, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode turn request: %w", err)
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to encode turn request: %w", err)
	}
	return payload, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
