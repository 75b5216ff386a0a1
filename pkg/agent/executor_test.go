package agent

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emissary-bot/emissary/ent"
	entapproval "github.com/emissary-bot/emissary/ent/approval"
	"github.com/emissary-bot/emissary/ent/auditevent"
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
	"github.com/emissary-bot/emissary/test/util"
)

// scriptedLLM replays a fixed sequence of model calls. Each entry either
// yields a closed channel of chunks or fails the call outright.
type scriptedLLM struct {
	mu     sync.Mutex
	script []func() (<-chan Chunk, error)
	calls  []*GenerateInput
}

func (s *scriptedLLM) Generate(_ context.Context, input *GenerateInput) (<-chan Chunk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, input)
	if len(s.script) == 0 {
		return nil, errors.New("unscripted model call")
	}
	next := s.script[0]
	s.script = s.script[1:]
	return next()
}

func (s *scriptedLLM) Close() error { return nil }

func streamOf(chunks ...Chunk) func() (<-chan Chunk, error) {
	return func() (<-chan Chunk, error) {
		ch := make(chan Chunk, len(chunks))
		for _, c := range chunks {
			ch <- c
		}
		close(ch)
		return ch, nil
	}
}

func callFailure(err error) func() (<-chan Chunk, error) {
	return func() (<-chan Chunk, error) { return nil, err }
}

type fakeTransport struct {
	mu            sync.Mutex
	nextMessageID int64
	sent          []string
	keyboardSends int
}

func (f *fakeTransport) SendText(_ context.Context, _ int64, text string, _ transport.SendOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, text)
	return nil
}

func (f *fakeTransport) EditText(context.Context, int64, int64, string, transport.Keyboard) error {
	return nil
}

func (f *fakeTransport) SendMessageWithKeyboard(_ context.Context, _ int64, _ string, _ transport.Keyboard, _ transport.SendOptions) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keyboardSends++
	f.nextMessageID++
	return f.nextMessageID, nil
}

func (f *fakeTransport) SendDraft(context.Context, int64, string, string, transport.SendOptions) error {
	return transport.ErrDraftUnsupported
}

func (f *fakeTransport) AnswerCallback(context.Context, string, string, bool) error { return nil }

func (f *fakeTransport) CreateForumTopic(context.Context, int64, string) (int64, error) {
	return 0, transport.ErrThreadNotFound
}

func (f *fakeTransport) EditForumTopic(context.Context, int64, int64, string) error { return nil }

type executorFixture struct {
	exec      *Executor
	client    *ent.Client
	llm       *scriptedLLM
	ft        *fakeTransport
	messages  *services.MessageService
	mr        *miniredis.Miniredis
	sessionID string
}

func newExecutorFixture(t *testing.T, rawTools ...tools.Tool) *executorFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	registry := tools.NewRegistry()
	for _, tl := range rawTools {
		require.NoError(t, registry.Register(tl))
	}

	ft := &fakeTransport{}
	llm := &scriptedLLM{}
	sessions := services.NewSessionService(client)
	messages := services.NewMessageService(client)
	auditSvc := audit.NewService(client)
	engine := approval.NewEngine(client, rdb, queue.NewService(client), auditSvc, ft, config.FeatureFlags{ApprovalUX: true})

	exec := NewExecutor(
		sessions, messages, chatlock.NewLocker(rdb), engine, llm, ft, registry, auditSvc,
		config.ModelConfig{Primary: "primary", Fallback: "backup"},
		config.FeatureFlags{},
	)

	sess, err := sessions.GetOrCreate(context.Background(), 100, 42, 0)
	require.NoError(t, err)

	return &executorFixture{
		exec:      exec,
		client:    client,
		llm:       llm,
		ft:        ft,
		messages:  messages,
		mr:        mr,
		sessionID: sess.ID,
	}
}

func (f *executorFixture) newRequest(text string) *models.TurnExecutionRequest {
	return &models.TurnExecutionRequest{
		CorrelationID: "corr-1",
		SessionID:     f.sessionID,
		ChatID:        100,
		ChatType:      models.ChatTypePrivate,
		UserID:        42,
		Text:          text,
		Network:       "mainnet",
		ModelID:       "primary",
		ResponseStyle: models.ResponseStyleConcise,
		RiskProfile:   models.RiskProfileBalanced,
	}
}

func fallbackAuditCount(t *testing.T, client *ent.Client) int {
	t.Helper()
	n, err := client.AuditEvent.Query().
		Where(auditevent.EventTypeEQ("agent.turn.provider.fallback")).
		Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestExecutor_DeliversModelReply(t *testing.T) {
	f := newExecutorFixture(t)
	f.llm.script = []func() (<-chan Chunk, error){
		streamOf(&TextChunk{Content: "Here is your balance."}),
	}

	res, err := f.exec.Execute(context.Background(), f.newRequest("what is my balance?"))
	require.NoError(t, err)

	assert.Equal(t, "Here is your balance.", res.Text)
	assert.Equal(t, "primary", res.ModelUsed)
	assert.False(t, res.UsedFallback)
	require.Len(t, f.llm.calls, 1)
	assert.Equal(t, "primary", f.llm.calls[0].ModelID)
	require.Len(t, f.ft.sent, 1)
	assert.Equal(t, "Here is your balance.", f.ft.sent[0])

	// Both sides of the exchange landed in history.
	history, err := f.messages.LoadRecent(context.Background(), f.sessionID, services.DefaultHistoryLimit)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, message.RoleUser, history[0].Role)
	assert.Equal(t, message.RoleAssistant, history[1].Role)
}

func TestExecutor_FallsBackBeforeFirstDelta(t *testing.T) {
	f := newExecutorFixture(t)
	f.llm.script = []func() (<-chan Chunk, error){
		callFailure(errors.New("primary down")),
		streamOf(&TextChunk{Content: "All good."}),
	}

	res, err := f.exec.Execute(context.Background(), f.newRequest("ping"))
	require.NoError(t, err)

	assert.True(t, res.UsedFallback)
	assert.Equal(t, "backup", res.ModelUsed)
	assert.Equal(t, "All good.", res.Text)
	require.Len(t, f.llm.calls, 2)
	assert.Equal(t, "backup", f.llm.calls[1].ModelID)
	assert.Equal(t, 1, fallbackAuditCount(t, f.client))
}

func TestExecutor_NoFallbackAfterFirstDelta(t *testing.T) {
	f := newExecutorFixture(t)
	f.llm.script = []func() (<-chan Chunk, error){
		streamOf(
			&TextChunk{Content: "partial answer"},
			&ErrorChunk{Message: "stream broke"},
		),
		streamOf(&TextChunk{Content: "never reached"}),
	}

	_, err := f.exec.Execute(context.Background(), f.newRequest("ping"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stream broke")

	// The user already saw a delta: no second model call, no fallback.
	assert.Len(t, f.llm.calls, 1)
	assert.Zero(t, fallbackAuditCount(t, f.client))
}

func TestExecutor_FallbackOnlyOnce(t *testing.T) {
	f := newExecutorFixture(t)
	f.llm.script = []func() (<-chan Chunk, error){
		callFailure(errors.New("primary down")),
		callFailure(errors.New("backup down too")),
	}

	_, err := f.exec.Execute(context.Background(), f.newRequest("ping"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backup down too")
	assert.Len(t, f.llm.calls, 2)
}

func TestExecutor_ToolLoopFeedsResultBack(t *testing.T) {
	balanceTool := &tools.FuncTool{
		ToolName:  "get_balance",
		ToolDesc:  "Reads the wallet balance.",
		Schema:    map[string]interface{}{"type": "object"},
		ToolClass: tools.ClassReadOnly,
		ExecuteFn: func(context.Context, map[string]interface{}) (map[string]interface{}, error) {
			return map[string]interface{}{"amount": "5.0"}, nil
		},
	}
	f := newExecutorFixture(t, balanceTool)
	f.llm.script = []func() (<-chan Chunk, error){
		streamOf(&ToolCallChunk{CallID: "c1", Name: "get_balance", Arguments: `{"account":"main"}`}),
		streamOf(&TextChunk{Content: "Your balance is 5.0 TON."}),
	}

	res, err := f.exec.Execute(context.Background(), f.newRequest("what is my balance?"))
	require.NoError(t, err)
	assert.Equal(t, "Your balance is 5.0 TON.", res.Text)
	require.Len(t, f.llm.calls, 2)

	// The second call replays the tool result to the model.
	second := f.llm.calls[1].Messages
	require.NotEmpty(t, second)
	last := second[len(second)-1]
	assert.Equal(t, "tool", last.Role)
	assert.Equal(t, "c1", last.ToolCallID)
	assert.Contains(t, last.Content, "5.0")

	// History carries user, assistant tool call, tool result, final reply.
	history, err := f.messages.LoadRecent(context.Background(), f.sessionID, services.DefaultHistoryLimit)
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, message.RoleTool, history[2].Role)
}

func TestExecutor_GatedToolRegistersApproval(t *testing.T) {
	sendTool := &tools.FuncTool{
		ToolName:   "send_ton",
		ToolDesc:   "Transfers funds.",
		Schema:     map[string]interface{}{"type": "object"},
		ToolClass:  tools.ClassWrite,
		ApprovalFn: func(map[string]interface{}) bool { return true },
		ExecuteFn: func(context.Context, map[string]interface{}) (map[string]interface{}, error) {
			t.Fatal("gated tool must not execute without a decision")
			return nil, nil
		},
	}
	f := newExecutorFixture(t, sendTool)
	f.llm.script = []func() (<-chan Chunk, error){
		streamOf(&ToolCallChunk{CallID: "c1", Name: "send_ton", Arguments: `{"amount":2,"destination":"EQabc"}`}),
	}

	res, err := f.exec.Execute(context.Background(), f.newRequest("send 2 TON to EQabc"))
	require.NoError(t, err)

	// The turn ends at the gate: one model call, one pending approval.
	require.Len(t, res.PendingApprovalIDs, 1)
	assert.Len(t, f.llm.calls, 1)
	assert.True(t, strings.HasSuffix(res.Text, pendingSuffix))

	rec, err := f.client.Approval.Query().Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entapproval.StatusRequested, rec.Status)
	assert.Equal(t, "send_ton", rec.ToolName)
	assert.Equal(t, "c1", rec.ToolCallID)
	assert.Equal(t, 1, f.ft.keyboardSends)
}

func TestExecutor_ApprovedCallbackForcesStatus(t *testing.T) {
	f := newExecutorFixture(t)
	f.llm.script = []func() (<-chan Chunk, error){
		streamOf(&TextChunk{Content: "Done"}),
	}

	req := f.newRequest("")
	req.ApprovalResponse = &models.ApprovalResponsePart{
		ApprovalID: "ap-1",
		CallID:     "c1",
		Name:       "send_ton",
		Approved:   true,
	}

	res, err := f.exec.Execute(context.Background(), req)
	require.NoError(t, err)

	// A trivial reply after an approved decision is rewritten into the
	// canonical status line.
	assert.True(t, res.ForcedApprovedStatus)
	assert.True(t, strings.HasPrefix(res.Text, approvedStatusPrefix))
}

func TestExecutor_LockContentionAbortsBeforeModel(t *testing.T) {
	f := newExecutorFixture(t)

	// Another turn holds the conversation lease.
	require.NoError(t, f.mr.Set("chatlock:100", "other-holder"))

	ctx, cancel := context.WithTimeout(context.Background(), 600*time.Millisecond)
	defer cancel()

	_, err := f.exec.Execute(ctx, f.newRequest("ping"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, f.llm.calls)
}
