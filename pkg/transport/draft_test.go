package transport

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient records draft sends; other surfaces are inert.
type fakeClient struct {
	mu       sync.Mutex
	drafts   []string
	draftErr error
}

func (f *fakeClient) SendText(context.Context, int64, string, SendOptions) error { return nil }

func (f *fakeClient) EditText(context.Context, int64, int64, string, Keyboard) error { return nil }

func (f *fakeClient) SendMessageWithKeyboard(context.Context, int64, string, Keyboard, SendOptions) (int64, error) {
	return 0, nil
}

func (f *fakeClient) SendDraft(_ context.Context, _ int64, _ string, text string, _ SendOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.draftErr != nil {
		return f.draftErr
	}
	f.drafts = append(f.drafts, text)
	return nil
}

func (f *fakeClient) AnswerCallback(context.Context, string, string, bool) error { return nil }

func (f *fakeClient) CreateForumTopic(context.Context, int64, string) (int64, error) { return 0, nil }

func (f *fakeClient) EditForumTopic(context.Context, int64, int64, string) error { return nil }

func (f *fakeClient) sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.drafts))
	copy(out, f.drafts)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestNoopDraftSink(t *testing.T) {
	var sink NoopDraftSink
	ctx := context.Background()

	sink.PushDelta(ctx, "hello")
	assert.False(t, sink.Finish(ctx, "hello"))
}

func TestThrottledDraftSink_SendsAndFinishes(t *testing.T) {
	client := &fakeClient{}
	sink := NewThrottledDraftSink(client, 100, "draft-1", SendOptions{})
	ctx := context.Background()

	sink.PushDelta(ctx, "Hel")
	waitFor(t, func() bool { return len(client.sent()) == 1 })

	displayed := sink.Finish(ctx, "Hello world")
	assert.True(t, displayed)

	sent := client.sent()
	require.NotEmpty(t, sent)
	assert.Equal(t, "Hel", sent[0])
	assert.Equal(t, "Hello world", sent[len(sent)-1])
}

func TestThrottledDraftSink_CoalescesBursts(t *testing.T) {
	client := &fakeClient{}
	sink := NewThrottledDraftSink(client, 100, "draft-1", SendOptions{})
	ctx := context.Background()

	// A burst of snapshots much faster than the throttle interval.
	text := ""
	for i := 0; i < 50; i++ {
		text += "word "
		sink.PushDelta(ctx, text)
	}

	sink.Finish(ctx, text)

	sent := client.sent()
	require.NotEmpty(t, sent)
	// Far fewer sends than pushes, and the final snapshot wins.
	assert.Less(t, len(sent), 10)
	assert.Equal(t, text, sent[len(sent)-1])
}

func TestThrottledDraftSink_SkipsUnchangedAndOversized(t *testing.T) {
	client := &fakeClient{}
	sink := NewThrottledDraftSink(client, 100, "draft-1", SendOptions{})
	ctx := context.Background()

	sink.PushDelta(ctx, "same")
	waitFor(t, func() bool { return len(client.sent()) == 1 })

	sink.PushDelta(ctx, "same")
	sink.PushDelta(ctx, "")
	sink.PushDelta(ctx, strings.Repeat("x", MaxMessageLength+1))

	// Finish with the already-sent text: no extra send, still displayed.
	assert.True(t, sink.Finish(ctx, "same"))
	assert.Equal(t, []string{"same"}, client.sent())
}

func TestThrottledDraftSink_DisabledOnUnsupported(t *testing.T) {
	client := &fakeClient{draftErr: ErrDraftUnsupported}
	sink := NewThrottledDraftSink(client, 100, "draft-1", SendOptions{})
	ctx := context.Background()

	sink.PushDelta(ctx, "hello")

	assert.False(t, sink.Finish(ctx, "hello world"))
	assert.Empty(t, client.sent())
}

func TestThrottledDraftSink_FinishWithoutPushes(t *testing.T) {
	client := &fakeClient{}
	sink := NewThrottledDraftSink(client, 100, "draft-1", SendOptions{})

	assert.True(t, sink.Finish(context.Background(), "only final"))
	assert.Equal(t, []string{"only final"}, client.sent())

	// Empty final text displays nothing.
	empty := NewThrottledDraftSink(client, 100, "draft-2", SendOptions{})
	assert.False(t, empty.Finish(context.Background(), ""))
}
