package approval

import (
	"context"
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
	entjob "github.com/emissary-bot/emissary/ent/job"
	"github.com/emissary-bot/emissary/pkg/audit"
	"github.com/emissary-bot/emissary/pkg/config"
	"github.com/emissary-bot/emissary/pkg/models"
	"github.com/emissary-bot/emissary/pkg/queue"
	"github.com/emissary-bot/emissary/pkg/tools"
	"github.com/emissary-bot/emissary/pkg/transport"
	"github.com/emissary-bot/emissary/test/util"
)

// fakeTransport records outbound traffic so card lifecycle tests can
// assert on it.
type fakeTransport struct {
	mu            sync.Mutex
	nextMessageID int64
	sent          []string
	edits         []string
	keyboardSends int
}

func (f *fakeTransport) SendText(_ context.Context, _ int64, text string, _ transport.SendOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, text)
	return nil
}

func (f *fakeTransport) EditText(_ context.Context, _, _ int64, text string, _ transport.Keyboard) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, text)
	return nil
}

func (f *fakeTransport) SendMessageWithKeyboard(_ context.Context, _ int64, text string, _ transport.Keyboard, _ transport.SendOptions) (int64, error) {
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

func newTestEngine(t *testing.T, features config.FeatureFlags) (*Engine, *ent.Client, *miniredis.Miniredis, *fakeTransport) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	ft := &fakeTransport{}
	engine := NewEngine(client, rdb, queue.NewService(client), audit.NewService(client), ft, features)
	return engine, client, mr, ft
}

func createTestApproval(t *testing.T, e *Engine, class tools.Class) *ent.Approval {
	t.Helper()
	rec, err := e.Create(context.Background(), CreateInput{
		SessionID:     "sess-1",
		ChatID:        100,
		UserID:        42,
		ToolName:      "send",
		ToolCallID:    "call-1",
		ToolClass:     class,
		ToolInput:     map[string]interface{}{"amount": 2.0, "destination": "EQabc"},
		RiskProfile:   models.RiskProfileBalanced,
		CorrelationID: "corr-1",
	})
	require.NoError(t, err)
	return rec
}

func auditCount(t *testing.T, client *ent.Client, eventType string) int {
	t.Helper()
	n, err := client.AuditEvent.Query().Where(auditevent.EventTypeEQ(eventType)).Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestEngine_CreateSchedulesLifecycleJobs(t *testing.T) {
	engine, client, _, _ := newTestEngine(t, config.FeatureFlags{ApprovalUX: true})
	ctx := context.Background()

	rec := createTestApproval(t, engine, tools.ClassWrite)
	assert.Equal(t, entapproval.StatusRequested, rec.Status)
	assert.Len(t, rec.CallbackToken, 14)
	assert.WithinDuration(t, time.Now().Add(TTL), rec.ExpiresAt, 5*time.Second)

	expiry, err := client.Job.Get(ctx, "approval-expiry-"+rec.ID)
	require.NoError(t, err)
	assert.Equal(t, config.QueueApprovalTimeouts, expiry.Queue)
	assert.WithinDuration(t, rec.ExpiresAt, expiry.RunAt, 5*time.Second)

	countdowns, err := client.Job.Query().Where(entjob.QueueEQ(config.QueueApprovalCountdowns)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, countdowns)

	assert.Equal(t, 1, auditCount(t, client, "approval.requested"))
}

func TestEngine_CreateSkipsCountdownWhenUXOff(t *testing.T) {
	engine, client, _, _ := newTestEngine(t, config.FeatureFlags{ApprovalUX: false})
	ctx := context.Background()

	rec := createTestApproval(t, engine, tools.ClassWrite)

	// Safety job stays; the cosmetic countdown does not.
	_, err := client.Job.Get(ctx, "approval-expiry-"+rec.ID)
	require.NoError(t, err)

	countdowns, err := client.Job.Query().Where(entjob.QueueEQ(config.QueueApprovalCountdowns)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, countdowns)
}

func TestEngine_DecideApprove(t *testing.T) {
	engine, client, _, _ := newTestEngine(t, config.FeatureFlags{ApprovalUX: true})
	ctx := context.Background()

	rec := createTestApproval(t, engine, tools.ClassWrite)

	outcome, err := engine.Decide(ctx, DecideInput{
		CallbackToken:  rec.CallbackToken,
		Action:         ActionApprove,
		DeciderID:      42,
		DeciderProfile: models.RiskProfileBalanced,
	})
	require.NoError(t, err)
	assert.True(t, outcome.Approved)
	assert.Equal(t, rec.ID, outcome.Response.ApprovalID)
	assert.Equal(t, "call-1", outcome.Response.CallID)
	assert.Equal(t, "send", outcome.Response.Name)
	assert.True(t, outcome.Response.Approved)

	stored, err := client.Approval.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, entapproval.StatusApproved, stored.Status)
	require.NotNil(t, stored.DecidedBy)
	assert.Equal(t, int64(42), *stored.DecidedBy)
	require.NotNil(t, stored.DecidedAt)

	assert.Equal(t, 1, auditCount(t, client, "approval.decided"))
}

func TestEngine_DecideDeny(t *testing.T) {
	engine, client, _, _ := newTestEngine(t, config.FeatureFlags{ApprovalUX: true})
	ctx := context.Background()

	rec := createTestApproval(t, engine, tools.ClassWrite)

	outcome, err := engine.Decide(ctx, DecideInput{
		CallbackToken:  rec.CallbackToken,
		Action:         ActionDeny,
		DeciderID:      42,
		DeciderProfile: models.RiskProfileBalanced,
	})
	require.NoError(t, err)
	assert.False(t, outcome.Approved)
	assert.False(t, outcome.Response.Approved)

	stored, err := client.Approval.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, entapproval.StatusDenied, stored.Status)
}

func TestEngine_FirstDecisionIsTerminal(t *testing.T) {
	engine, client, _, _ := newTestEngine(t, config.FeatureFlags{ApprovalUX: true})
	ctx := context.Background()

	rec := createTestApproval(t, engine, tools.ClassWrite)

	_, err := engine.Decide(ctx, DecideInput{
		CallbackToken:  rec.CallbackToken,
		Action:         ActionApprove,
		DeciderID:      42,
		DeciderProfile: models.RiskProfileBalanced,
	})
	require.NoError(t, err)

	// A second tap, even with the opposite verb, bounces off the terminal
	// state.
	_, err = engine.Decide(ctx, DecideInput{
		CallbackToken:  rec.CallbackToken,
		Action:         ActionDeny,
		DeciderID:      43,
		DeciderProfile: models.RiskProfileBalanced,
	})
	require.Error(t, err)
	assert.True(t, IsStateError(err))
	assert.Equal(t, "approval already approved", err.Error())

	stored, err := client.Approval.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, entapproval.StatusApproved, stored.Status)
	assert.Equal(t, int64(42), *stored.DecidedBy)
}

func TestEngine_LateApprovalExpiresFirst(t *testing.T) {
	engine, client, _, _ := newTestEngine(t, config.FeatureFlags{ApprovalUX: true})
	ctx := context.Background()

	rec := createTestApproval(t, engine, tools.ClassWrite)

	// The tap lands after the deadline: expiry wins over the approve.
	engine.now = func() time.Time { return time.Now().Add(TTL + time.Minute) }

	_, err := engine.Decide(ctx, DecideInput{
		CallbackToken:  rec.CallbackToken,
		Action:         ActionApprove,
		DeciderID:      42,
		DeciderProfile: models.RiskProfileBalanced,
	})
	require.Error(t, err)
	assert.True(t, IsStateError(err))
	assert.Equal(t, "approval already expired", err.Error())

	stored, err := client.Approval.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, entapproval.StatusExpired, stored.Status)
	assert.Nil(t, stored.DecidedBy)
	assert.Equal(t, 1, auditCount(t, client, "approval.expired"))
}

func TestEngine_CautiousApproveNeedsDoubleTap(t *testing.T) {
	engine, client, mr, _ := newTestEngine(t, config.FeatureFlags{ApprovalUX: true})
	ctx := context.Background()

	rec := createTestApproval(t, engine, tools.ClassWrite) // high risk

	in := DecideInput{
		CallbackToken:  rec.CallbackToken,
		Action:         ActionApprove,
		DeciderID:      42,
		DeciderProfile: models.RiskProfileCautious,
	}

	_, err := engine.Decide(ctx, in)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.True(t, mr.Exists("apconfirm:"+rec.ID+":42"))

	stored, err := client.Approval.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, entapproval.StatusRequested, stored.Status)

	// Second tap within the marker window decides.
	outcome, err := engine.Decide(ctx, in)
	require.NoError(t, err)
	assert.True(t, outcome.Approved)
}

func TestEngine_DoubleTapMarkerExpires(t *testing.T) {
	engine, _, mr, _ := newTestEngine(t, config.FeatureFlags{ApprovalUX: true})
	ctx := context.Background()

	rec := createTestApproval(t, engine, tools.ClassWrite)
	in := DecideInput{
		CallbackToken:  rec.CallbackToken,
		Action:         ActionApprove,
		DeciderID:      42,
		DeciderProfile: models.RiskProfileCautious,
	}

	_, err := engine.Decide(ctx, in)
	assert.ErrorIs(t, err, ErrConfirmationRequired)

	// The confirmation window lapses; the next tap starts over.
	mr.FastForward(confirmMarkerTTL + time.Second)

	_, err = engine.Decide(ctx, in)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
}

func TestEngine_CautiousDenyDecidesImmediately(t *testing.T) {
	engine, _, _, _ := newTestEngine(t, config.FeatureFlags{ApprovalUX: true})
	ctx := context.Background()

	rec := createTestApproval(t, engine, tools.ClassWrite)

	outcome, err := engine.Decide(ctx, DecideInput{
		CallbackToken:  rec.CallbackToken,
		Action:         ActionDeny,
		DeciderID:      42,
		DeciderProfile: models.RiskProfileCautious,
	})
	require.NoError(t, err)
	assert.False(t, outcome.Approved)
}

func TestEngine_DoubleTapFailsOpenWhenMarkerStoreDown(t *testing.T) {
	engine, _, mr, _ := newTestEngine(t, config.FeatureFlags{ApprovalUX: true})
	ctx := context.Background()

	rec := createTestApproval(t, engine, tools.ClassWrite)
	mr.Close()

	// Marker store unavailable: one tap decides rather than deadlocking.
	outcome, err := engine.Decide(ctx, DecideInput{
		CallbackToken:  rec.CallbackToken,
		Action:         ActionApprove,
		DeciderID:      42,
		DeciderProfile: models.RiskProfileCautious,
	})
	require.NoError(t, err)
	assert.True(t, outcome.Approved)
}

func TestEngine_DecideUnknownToken(t *testing.T) {
	engine, _, _, _ := newTestEngine(t, config.FeatureFlags{ApprovalUX: true})

	_, err := engine.Decide(context.Background(), DecideInput{
		CallbackToken: "no-such-token",
		Action:        ActionApprove,
		DeciderID:     42,
	})
	assert.ErrorIs(t, err, ErrUnknownToken)
}

func TestEngine_ExpiryHandlerExpiresAndNotifies(t *testing.T) {
	engine, client, _, ft := newTestEngine(t, config.FeatureFlags{ApprovalUX: true})
	ctx := context.Background()

	rec := createTestApproval(t, engine, tools.ClassWrite)
	require.NoError(t, engine.SetPromptMessage(ctx, rec.ID, 7))

	engine.now = func() time.Time { return time.Now().Add(TTL + time.Minute) }

	err := engine.ExpiryHandler()(ctx, &ent.Job{
		ID:      "approval-expiry-" + rec.ID,
		Payload: map[string]interface{}{"approval_id": rec.ID},
	})
	require.NoError(t, err)

	stored, err := client.Approval.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, entapproval.StatusExpired, stored.Status)

	// The card was rewritten and a follow-up notice went out.
	require.Len(t, ft.edits, 1)
	assert.Contains(t, ft.edits[0], "expired")
	require.Len(t, ft.sent, 1)
	assert.Contains(t, ft.sent[0], "expired")
}

func TestEngine_ExpiryHandlerLeavesDecidableAlone(t *testing.T) {
	engine, client, _, ft := newTestEngine(t, config.FeatureFlags{ApprovalUX: true})
	ctx := context.Background()

	rec := createTestApproval(t, engine, tools.ClassWrite)

	err := engine.ExpiryHandler()(ctx, &ent.Job{
		ID:      "approval-expiry-" + rec.ID,
		Payload: map[string]interface{}{"approval_id": rec.ID},
	})
	require.NoError(t, err)

	stored, err := client.Approval.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, entapproval.StatusRequested, stored.Status)
	assert.Empty(t, ft.sent)
}

func TestEngine_CountdownHandlerReschedulesWhileRequested(t *testing.T) {
	engine, client, _, ft := newTestEngine(t, config.FeatureFlags{ApprovalUX: true})
	ctx := context.Background()

	rec := createTestApproval(t, engine, tools.ClassWrite)
	require.NoError(t, engine.SetPromptMessage(ctx, rec.ID, 7))

	err := engine.CountdownHandler()(ctx, &ent.Job{
		ID:      "countdown-1",
		Payload: map[string]interface{}{"approval_id": rec.ID},
	})
	require.NoError(t, err)

	// Card refreshed and a successor tick enqueued alongside the original.
	assert.Len(t, ft.edits, 1)
	countdowns, err := client.Job.Query().Where(entjob.QueueEQ(config.QueueApprovalCountdowns)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, countdowns)
}

func TestEngine_CountdownHandlerStopsAfterDecision(t *testing.T) {
	engine, client, _, ft := newTestEngine(t, config.FeatureFlags{ApprovalUX: true})
	ctx := context.Background()

	rec := createTestApproval(t, engine, tools.ClassWrite)
	_, err := engine.Decide(ctx, DecideInput{
		CallbackToken:  rec.CallbackToken,
		Action:         ActionDeny,
		DeciderID:      42,
		DeciderProfile: models.RiskProfileBalanced,
	})
	require.NoError(t, err)

	before, err := client.Job.Query().Where(entjob.QueueEQ(config.QueueApprovalCountdowns)).Count(ctx)
	require.NoError(t, err)

	err = engine.CountdownHandler()(ctx, &ent.Job{
		ID:      "countdown-1",
		Payload: map[string]interface{}{"approval_id": rec.ID},
	})
	require.NoError(t, err)

	after, err := client.Job.Query().Where(entjob.QueueEQ(config.QueueApprovalCountdowns)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Empty(t, ft.edits)
}
