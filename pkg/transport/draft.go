package transport

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// minDraftInterval is the minimum spacing between draft sends.
const minDraftInterval = 180 * time.Millisecond

// DraftSink receives progressive text while an agent turn streams. PushDelta
// is called once per accumulated snapshot; Finish flushes the final text and
// reports whether the transport displayed it (false means the caller should
// send the response as a regular message).
type DraftSink interface {
	PushDelta(ctx context.Context, text string)
	Finish(ctx context.Context, finalText string) bool
}

// NoopDraftSink satisfies DraftSink for transports without a draft surface.
type NoopDraftSink struct{}

// PushDelta does nothing.
func (NoopDraftSink) PushDelta(context.Context, string) {}

// Finish reports that nothing was displayed.
func (NoopDraftSink) Finish(context.Context, string) bool { return false }

// ThrottledDraftSink forwards accumulated text to the transport's draft
// surface with bounded cadence: at most one in-flight send, at least
// minDraftInterval between sends, unchanged or oversized snapshots skipped.
// Sends are chained, never concurrent, so token order is preserved.
type ThrottledDraftSink struct {
	client  Client
	chatID  int64
	draftID string
	opts    SendOptions

	mu       sync.Mutex
	lastSent string
	lastAt   time.Time
	inflight bool
	pending  string // most recent snapshot waiting behind an in-flight send
	sentAny  bool
	disabled bool
}

// NewThrottledDraftSink creates a draft sink bound to one conversation.
func NewThrottledDraftSink(client Client, chatID int64, draftID string, opts SendOptions) *ThrottledDraftSink {
	return &ThrottledDraftSink{
		client:  client,
		chatID:  chatID,
		draftID: draftID,
		opts:    opts,
	}
}

// PushDelta schedules a draft update for the given snapshot. Returns
// immediately; the send happens on a goroutine chained behind any in-flight
// send.
func (s *ThrottledDraftSink) PushDelta(ctx context.Context, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disabled || text == "" || text == s.lastSent || len(text) > MaxMessageLength {
		return
	}
	if s.inflight {
		s.pending = text
		return
	}
	s.inflight = true
	go s.send(ctx, text)
}

// Finish sends the final snapshot synchronously (waiting out the throttle)
// and reports whether any draft was displayed during the turn.
func (s *ThrottledDraftSink) Finish(ctx context.Context, finalText string) bool {
	// Let the in-flight chain drain.
	for {
		s.mu.Lock()
		if !s.inflight {
			break
		}
		s.mu.Unlock()
		time.Sleep(10 * time.Millisecond)
	}
	sentAny := s.sentAny
	disabled := s.disabled
	lastSent := s.lastSent
	s.mu.Unlock()

	if disabled || finalText == "" || len(finalText) > MaxMessageLength {
		return false
	}
	if finalText != lastSent {
		if err := s.client.SendDraft(ctx, s.chatID, s.draftID, finalText, s.opts); err != nil {
			return false
		}
		sentAny = true
	}
	return sentAny
}

// send delivers one snapshot, then the most recent pending one, until the
// queue is empty.
func (s *ThrottledDraftSink) send(ctx context.Context, text string) {
	for {
		s.throttle()

		err := s.client.SendDraft(ctx, s.chatID, s.draftID, text, s.opts)

		s.mu.Lock()
		if err != nil {
			if errors.Is(err, ErrDraftUnsupported) {
				s.disabled = true
			} else {
				slog.Debug("Draft send failed", "chat_id", s.chatID, "error", err)
			}
		} else {
			s.lastSent = text
			s.lastAt = time.Now()
			s.sentAny = true
		}

		next := s.pending
		s.pending = ""
		if next == "" || next == s.lastSent || s.disabled {
			s.inflight = false
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()
		text = next
	}
}

// throttle sleeps until minDraftInterval has passed since the last send.
func (s *ThrottledDraftSink) throttle() {
	s.mu.Lock()
	wait := minDraftInterval - time.Since(s.lastAt)
	s.mu.Unlock()
	if wait > 0 {
		time.Sleep(wait)
	}
}
