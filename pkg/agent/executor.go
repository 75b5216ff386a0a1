package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/emissary-bot/emissary/ent"
	"github.com/emissary-bot/emissary/ent/message"
	"github.com/emissary-bot/emissary/pkg/approval"
	"github.com/emissary-bot/emissary/pkg/audit"
	"github.com/emissary-bot/emissary/pkg/chatlock"
	"github.com/emissary-bot/emissary/pkg/config"
	"github.com/emissary-bot/emissary/pkg/models"
	"github.com/emissary-bot/emissary/pkg/queue"
	"github.com/emissary-bot/emissary/pkg/services"
	"github.com/emissary-bot/emissary/pkg/tools"
	"github.com/emissary-bot/emissary/pkg/transport"
)

// maxToolIterations bounds the model→tool→model loop within one turn.
const maxToolIterations = 8

// Executor runs one agent turn end to end.
type Executor struct {
	sessions  *services.SessionService
	messages  *services.MessageService
	locker    *chatlock.Locker
	engine    *approval.Engine
	llm       LLMClient
	transport transport.Client
	registry  *tools.Registry
	audit     *audit.Service
	modelCfg  config.ModelConfig
	features  config.FeatureFlags
}

// NewExecutor wires an Executor.
func NewExecutor(
	sessions *services.SessionService,
	messages *services.MessageService,
	locker *chatlock.Locker,
	engine *approval.Engine,
	llm LLMClient,
	tc transport.Client,
	registry *tools.Registry,
	auditSvc *audit.Service,
	modelCfg config.ModelConfig,
	features config.FeatureFlags,
) *Executor {
	return &Executor{
		sessions:  sessions,
		messages:  messages,
		locker:    locker,
		engine:    engine,
		llm:       llm,
		transport: tc,
		registry:  registry,
		audit:     auditSvc,
		modelCfg:  modelCfg,
		features:  features,
	}
}

// Handler returns the agent-turns queue handler. Turn failures propagate so
// the queue retries; on the final attempt the user gets the generic failure
// line (except for lock contention, which is backpressure, not an error).
func (e *Executor) Handler() queue.Handler {
	return func(ctx context.Context, job *ent.Job) error {
		req, err := decodeTurnRequest(job.Payload)
		if err != nil {
			return fmt.Errorf("invalid turn payload in job %s: %v", job.ID, err)
		}

		_, execErr := e.Execute(ctx, req)
		if execErr == nil {
			return nil
		}

		if job.Attempts >= job.MaxAttempts && !errors.Is(execErr, chatlock.ErrLockNotAcquired) {
			opts := transport.SendOptions{ThreadID: req.ThreadID}
			if err := e.transport.SendText(context.Background(), req.ChatID, genericFailureLine, opts); err != nil {
				slog.Warn("Failed to send turn failure notice", "chat_id", req.ChatID, "error", err)
			}
		}
		return execErr
	}
}

// Execute runs one turn: serialize on the conversation lock, stream through
// primary (fallback only before the first delta), loop tools, register
// approvals, apply the response policy, and deliver the result.
func (e *Executor) Execute(ctx context.Context, req *models.TurnExecutionRequest) (*models.TurnResult, error) {
	log := slog.With("correlation_id", req.CorrelationID, "session_id", req.SessionID, "chat_id", req.ChatID)

	lease, err := e.locker.Acquire(ctx, req.ChatID, req.ThreadID)
	if err != nil {
		if errors.Is(err, chatlock.ErrLockNotAcquired) {
			log.Info("Conversation busy, turn will be retried")
		}
		return nil, err
	}
	defer func() {
		if err := lease.Release(context.Background()); err != nil && !errors.Is(err, chatlock.ErrLockLost) {
			log.Warn("Failed to release conversation lock", "error", err)
		}
	}()

	history, err := e.messages.LoadRecent(ctx, req.SessionID, services.DefaultHistoryLimit)
	if err != nil {
		return nil, err
	}

	incoming, err := e.persistIncoming(ctx, req)
	if err != nil {
		return nil, err
	}
	conversation := convertHistory(append(history, incoming))

	if err := e.sessions.TouchLastMessage(ctx, req.SessionID); err != nil {
		log.Warn("Failed to touch session", "error", err)
	}

	catalog := e.registry.Catalog(tools.Policy{ChatType: req.ChatType})
	catalogByName := make(map[string]tools.Tool, len(catalog))
	rawByName := make(map[string]tools.Tool, len(catalog))
	for _, t := range catalog {
		catalogByName[t.Name()] = t
	}
	for _, t := range e.registry.All() {
		rawByName[t.Name()] = t
	}

	sink := e.draftSink(req)

	turn := &turnState{req: req, sink: sink}
	if err := e.runTurn(ctx, turn, conversation, catalog, catalogByName, rawByName); err != nil {
		return nil, err
	}

	policy := ApplyResponsePolicy(PolicyInput{
		RawText:          turn.finalText.String(),
		ApprovedCallback: req.ApprovalResponse != nil && req.ApprovalResponse.Approved,
		UserRequest:      req.Text,
		ToolResults:      turn.toolResults,
		PendingApprovals: len(turn.approvals),
	})
	if policy.ReaskBlocked {
		if _, err := e.audit.Append(ctx, audit.Entry{
			ActorType:     audit.ActorTypeAgent,
			ActorID:       turn.modelUsed,
			EventType:     "agent.turn.reask_blocked",
			CorrelationID: req.CorrelationID,
			Metadata:      map[string]interface{}{"session_id": req.SessionID},
		}); err != nil {
			log.Warn("Audit append failed for reask block", "error", err)
		}
	}

	e.deliver(ctx, req, sink, policy.Text)

	pendingIDs := make([]string, 0, len(turn.approvals))
	for _, a := range turn.approvals {
		pendingIDs = append(pendingIDs, a.ID)
	}

	return &models.TurnResult{
		Text:                 policy.Text,
		PendingApprovalIDs:   pendingIDs,
		ForcedApprovedStatus: policy.ForcedApprovedStatus,
		ModelUsed:            turn.modelUsed,
		UsedFallback:         turn.usedFallback,
	}, nil
}

// turnState accumulates everything one turn produces.
type turnState struct {
	req  *models.TurnExecutionRequest
	sink transport.DraftSink

	finalText    strings.Builder
	deltaCount   int
	toolResults  []models.ToolResultPart
	approvals    []*ent.Approval
	modelUsed    string
	usedFallback bool
}

// runTurn drives the model↔tool loop.
func (e *Executor) runTurn(
	ctx context.Context,
	turn *turnState,
	conversation []ConversationMessage,
	catalog []tools.Tool,
	catalogByName, rawByName map[string]tools.Tool,
) error {
	req := turn.req
	modelID := req.ModelID
	if modelID == "" {
		modelID = e.modelCfg.Primary
	}
	turn.modelUsed = modelID

	toolDefs := toToolDefinitions(catalog)
	systemPrompt := BuildSystemPrompt(req)

	for iteration := 0; iteration < maxToolIterations; iteration++ {
		text, toolCalls, err := e.stream(ctx, turn, &GenerateInput{
			SessionID:     req.SessionID,
			CorrelationID: req.CorrelationID,
			ModelID:       turn.modelUsed,
			SystemPrompt:  systemPrompt,
			Messages:      conversation,
			Tools:         toolDefs,
		})
		if err != nil {
			fellBack, fberr := e.tryFallback(ctx, turn, err)
			if fberr != nil {
				return fberr
			}
			if fellBack {
				iteration--
				continue
			}
			return err
		}

		assistantParts := assistantParts(text, toolCalls)
		if len(assistantParts) > 0 {
			if _, err := e.messages.Append(ctx, req.SessionID, message.RoleAssistant, assistantParts, req.CorrelationID); err != nil {
				return err
			}
		}
		conversation = append(conversation, assistantMessage(text, toolCalls))

		if len(toolCalls) == 0 {
			return nil
		}

		gated, results, err := e.runToolCalls(ctx, turn, toolCalls, catalogByName, rawByName)
		if err != nil {
			return err
		}
		if gated {
			// Approval requests end the loop; the decided callback
			// resumes the conversation as a fresh turn.
			return nil
		}

		for _, r := range results {
			part := models.Part{Type: models.PartTypeToolResult, ToolResult: &r}
			if _, err := e.messages.Append(ctx, req.SessionID, message.RoleTool, []models.Part{part}, req.CorrelationID); err != nil {
				return err
			}
			conversation = append(conversation, ConversationMessage{
				Role:       "tool",
				Content:    r.Content,
				ToolCallID: r.CallID,
				ToolName:   r.Name,
			})
		}
	}

	slog.Warn("Tool loop hit iteration cap", "correlation_id", req.CorrelationID, "cap", maxToolIterations)
	return nil
}

// stream consumes one model stream, forwarding text deltas to the draft
// sink and collecting tool calls.
func (e *Executor) stream(ctx context.Context, turn *turnState, input *GenerateInput) (string, []ToolCall, error) {
	ch, err := e.llm.Generate(ctx, input)
	if err != nil {
		return "", nil, err
	}

	var text strings.Builder
	var toolCalls []ToolCall
	for chunk := range ch {
		switch c := chunk.(type) {
		case *TextChunk:
			text.WriteString(c.Content)
			turn.finalText.WriteString(c.Content)
			turn.deltaCount++
			turn.sink.PushDelta(ctx, turn.finalText.String())
		case *ToolCallChunk:
			toolCalls = append(toolCalls, ToolCall{ID: c.CallID, Name: c.Name, Arguments: c.Arguments})
		case *UsageChunk:
			slog.Debug("Model usage", "correlation_id", input.CorrelationID,
				"input_tokens", c.InputTokens, "output_tokens", c.OutputTokens)
		case *ErrorChunk:
			return "", nil, fmt.Errorf("model stream error: %s", c.Message)
		}
	}
	return text.String(), toolCalls, nil
}

// tryFallback decides whether a stream failure may switch to the fallback
// model. Allowed only before any delta reached the user (a mid-stream
// switch would desync the draft) and only once. The fallback audit event is
// security-critical: append failure fails the turn.
func (e *Executor) tryFallback(ctx context.Context, turn *turnState, streamErr error) (bool, error) {
	if turn.deltaCount > 0 || turn.usedFallback || e.modelCfg.Fallback == "" || e.modelCfg.Fallback == turn.modelUsed {
		return false, nil
	}

	slog.Warn("Primary model failed before first delta, switching to fallback",
		"correlation_id", turn.req.CorrelationID,
		"primary", turn.modelUsed,
		"fallback", e.modelCfg.Fallback,
		"error", streamErr)

	if _, err := e.audit.Append(ctx, audit.Entry{
		ActorType:     audit.ActorTypeSystem,
		ActorID:       "agent-executor",
		EventType:     "agent.turn.provider.fallback",
		CorrelationID: turn.req.CorrelationID,
		Metadata: map[string]interface{}{
			"primaryProvider":  turn.modelUsed,
			"fallbackProvider": e.modelCfg.Fallback,
			"error":            streamErr.Error(),
		},
	}); err != nil {
		return false, fmt.Errorf("fallback audit append failed: %w", err)
	}

	turn.modelUsed = e.modelCfg.Fallback
	turn.usedFallback = true
	return true, nil
}

// runToolCalls executes the model's tool calls. Gated tools register
// approvals and stop the loop; the rest run through the policy wrapper.
func (e *Executor) runToolCalls(
	ctx context.Context,
	turn *turnState,
	calls []ToolCall,
	catalogByName, rawByName map[string]tools.Tool,
) (gated bool, results []models.ToolResultPart, err error) {
	req := turn.req

	for _, call := range calls {
		input := map[string]interface{}{}
		if call.Arguments != "" {
			if err := json.Unmarshal([]byte(call.Arguments), &input); err != nil {
				results = append(results, errorResult(call, fmt.Sprintf("invalid tool arguments: %v", err)))
				continue
			}
		}

		tool, ok := catalogByName[call.Name]
		if !ok {
			results = append(results, errorResult(call, "unknown tool"))
			continue
		}

		if tool.NeedsApproval(input) {
			if err := e.registerApproval(ctx, turn, call, input, rawByName[call.Name]); err != nil {
				return false, nil, err
			}
			gated = true
			continue
		}

		result, execErr := tool.Execute(ctx, input)
		if execErr != nil {
			results = append(results, errorResult(call, execErr.Error()))
			continue
		}
		content, _ := json.Marshal(result)
		part := models.ToolResultPart{CallID: call.ID, Name: call.Name, Content: string(content)}
		results = append(results, part)
		turn.toolResults = append(turn.toolResults, part)
	}

	if gated {
		// Persist the approval-request parts so the resumed turn replays
		// them, then drop any results from this batch: mixing executed
		// and gated calls in one step would complicate replay.
		parts := make([]models.Part, 0, len(turn.approvals))
		for _, a := range turn.approvals {
			parts = append(parts, models.Part{
				Type: models.PartTypeApprovalRequest,
				ApprovalRequest: &models.ApprovalRequestPart{
					ApprovalID: a.ID,
					CallID:     a.ToolCallID,
					Name:       a.ToolName,
					Arguments:  toJSON(a.ToolInput),
				},
			})
		}
		if len(parts) > 0 {
			if _, err := e.messages.Append(ctx, req.SessionID, message.RoleAssistant, parts, req.CorrelationID); err != nil {
				return false, nil, err
			}
		}
	}
	return gated, results, nil
}

// registerApproval creates the approval record and posts the consent card.
func (e *Executor) registerApproval(ctx context.Context, turn *turnState, call ToolCall, input map[string]interface{}, raw tools.Tool) error {
	req := turn.req

	class := tools.ClassWrite
	if raw != nil {
		class = raw.Class()
	}

	rec, err := e.engine.Create(ctx, approval.CreateInput{
		SessionID:     req.SessionID,
		ChatID:        req.ChatID,
		UserID:        req.UserID,
		ToolName:      call.Name,
		ToolCallID:    call.ID,
		ToolClass:     class,
		ToolInput:     input,
		RiskProfile:   req.RiskProfile,
		CorrelationID: req.CorrelationID,
	})
	if err != nil {
		return fmt.Errorf("failed to register approval for %s: %w", call.Name, err)
	}
	turn.approvals = append(turn.approvals, rec)

	if err := e.engine.PostPromptCard(ctx, rec, transport.SendOptions{ThreadID: req.ThreadID}); err != nil {
		slog.Warn("Failed to post approval card", "approval_id", rec.ID, "error", err)
	}
	return nil
}

// persistIncoming stores this turn's input message and returns it in the
// stored form for replay.
func (e *Executor) persistIncoming(ctx context.Context, req *models.TurnExecutionRequest) (services.StoredMessage, error) {
	var role message.Role
	var parts []models.Part
	if req.ApprovalResponse != nil {
		role = message.RoleTool
		parts = []models.Part{{Type: models.PartTypeApprovalResponse, ApprovalResponse: req.ApprovalResponse}}
	} else {
		role = message.RoleUser
		parts = []models.Part{models.TextPart(req.Text)}
	}

	msg, err := e.messages.Append(ctx, req.SessionID, role, parts, req.CorrelationID)
	if err != nil {
		return services.StoredMessage{}, err
	}
	return services.StoredMessage{
		ID:            msg.ID,
		SessionID:     req.SessionID,
		Role:          role,
		Parts:         parts,
		CorrelationID: req.CorrelationID,
	}, nil
}

// deliver flushes the draft surface and sends the final text as a regular
// message when no draft displayed it.
func (e *Executor) deliver(ctx context.Context, req *models.TurnExecutionRequest, sink transport.DraftSink, text string) {
	if text == "" {
		return
	}
	if sink.Finish(ctx, text) {
		return
	}
	opts := transport.SendOptions{ThreadID: req.ThreadID}
	if err := transport.SendChunked(ctx, e.transport, req.ChatID, text, opts); err != nil {
		slog.Error("Failed to send turn response", "chat_id", req.ChatID, "correlation_id", req.CorrelationID, "error", err)
	}
}

func (e *Executor) draftSink(req *models.TurnExecutionRequest) transport.DraftSink {
	if !e.features.StreamingDrafts {
		return transport.NoopDraftSink{}
	}
	opts := transport.SendOptions{ThreadID: req.ThreadID}
	return transport.NewThrottledDraftSink(e.transport, req.ChatID, req.CorrelationID, opts)
}

// ── conversions ──

func decodeTurnRequest(payload map[string]interface{}) (*models.TurnExecutionRequest, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var req models.TurnExecutionRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, err
	}
	if req.SessionID == "" || req.CorrelationID == "" {
		return nil, errors.New("missing session_id or correlation_id")
	}
	return &req, nil
}

// convertHistory flattens stored messages into the model's replay format.
func convertHistory(history []services.StoredMessage) []ConversationMessage {
	out := make([]ConversationMessage, 0, len(history))
	for _, m := range history {
		var text strings.Builder
		var toolCalls []ToolCall
		var entry *ConversationMessage

		for _, p := range m.Parts {
			switch p.Type {
			case models.PartTypeText:
				text.WriteString(p.Text)
			case models.PartTypeToolCall:
				if p.ToolCall != nil {
					toolCalls = append(toolCalls, ToolCall{ID: p.ToolCall.CallID, Name: p.ToolCall.Name, Arguments: p.ToolCall.Arguments})
				}
			case models.PartTypeApprovalRequest:
				if p.ApprovalRequest != nil {
					toolCalls = append(toolCalls, ToolCall{ID: p.ApprovalRequest.CallID, Name: p.ApprovalRequest.Name, Arguments: p.ApprovalRequest.Arguments})
				}
			case models.PartTypeToolResult:
				if p.ToolResult != nil {
					entry = &ConversationMessage{
						Role:       "tool",
						Content:    p.ToolResult.Content,
						ToolCallID: p.ToolResult.CallID,
						ToolName:   p.ToolResult.Name,
					}
				}
			case models.PartTypeApprovalResponse:
				if p.ApprovalResponse != nil {
					decision := "denied"
					if p.ApprovalResponse.Approved {
						decision = "approved"
					}
					entry = &ConversationMessage{
						Role:       "tool",
						Content:    fmt.Sprintf(`{"approval":"%s"}`, decision),
						ToolCallID: p.ApprovalResponse.CallID,
						ToolName:   p.ApprovalResponse.Name,
					}
				}
			}
		}

		if entry != nil {
			out = append(out, *entry)
			continue
		}
		out = append(out, ConversationMessage{
			Role:      string(m.Role),
			Content:   text.String(),
			ToolCalls: toolCalls,
		})
	}
	return out
}

func assistantParts(text string, calls []ToolCall) []models.Part {
	var parts []models.Part
	if strings.TrimSpace(text) != "" {
		parts = append(parts, models.TextPart(text))
	}
	for _, c := range calls {
		parts = append(parts, models.Part{
			Type:     models.PartTypeToolCall,
			ToolCall: &models.ToolCallPart{CallID: c.ID, Name: c.Name, Arguments: c.Arguments},
		})
	}
	return parts
}

func assistantMessage(text string, calls []ToolCall) ConversationMessage {
	return ConversationMessage{Role: "assistant", Content: text, ToolCalls: calls}
}

func toToolDefinitions(catalog []tools.Tool) []ToolDefinition {
	defs := make([]ToolDefinition, 0, len(catalog))
	for _, t := range catalog {
		defs = append(defs, ToolDefinition{
			Name:             t.Name(),
			Description:      t.Description(),
			ParametersSchema: toJSON(t.ParametersSchema()),
		})
	}
	return defs
}

func errorResult(call ToolCall, msg string) models.ToolResultPart {
	return models.ToolResultPart{CallID: call.ID, Name: call.Name, Content: msg, IsError: true}
}

func toJSON(v interface{}) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(raw)
}
