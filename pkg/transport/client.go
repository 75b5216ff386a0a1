// Package transport defines the chat-platform boundary the runtime core
// consumes. The concrete platform binding lives behind Client; the core
// only depends on this interface, the chunking rules, and the draft sink
// streaming contract.
package transport

import (
	"context"
	"errors"
	"strings"
)

// MaxMessageLength is the platform's per-message text cap.
const MaxMessageLength = 4096

// Platform error classification. Concrete clients wrap platform errors so
// these predicates match.
var (
	// ErrThreadNotFound indicates the target message thread no longer
	// exists; senders retry without the thread id.
	ErrThreadNotFound = errors.New("message thread not found")

	// ErrNotModified indicates an edit carried identical content.
	// Suppressed by EditText callers.
	ErrNotModified = errors.New("message is not modified")
)

// SendOptions carry the optional knobs of an outbound text send.
type SendOptions struct {
	ThreadID         int64
	ReplyToMessageID int64
	ParseMode        string
}

// Button is one inline-keyboard button.
type Button struct {
	Text         string
	CallbackData string
}

// Keyboard is an inline keyboard as rows of buttons.
type Keyboard [][]Button

// Client is the outbound transport surface.
type Client interface {
	// SendText delivers text to a chat. Implementations apply the
	// thread-fallback contract: on ErrThreadNotFound with a thread id
	// set, retry once without it.
	SendText(ctx context.Context, chatID int64, text string, opts SendOptions) error

	// EditText replaces a sent message's text. Idempotent: ErrNotModified
	// is swallowed and reported as success.
	EditText(ctx context.Context, chatID, messageID int64, text string, keyboard Keyboard) error

	// SendMessageWithKeyboard posts text with an inline keyboard and
	// returns the platform message id, used to track approval prompts.
	SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard Keyboard, opts SendOptions) (int64, error)

	// SendDraft updates the live-draft surface. Optional capability;
	// transports without it return ErrDraftUnsupported.
	SendDraft(ctx context.Context, chatID int64, draftID string, text string, opts SendOptions) error

	// AnswerCallback acknowledges a button press. text, when non-empty,
	// is shown to the user as a toast or alert.
	AnswerCallback(ctx context.Context, callbackID, text string, showAlert bool) error

	// CreateForumTopic creates a named topic in a forum chat and returns
	// its thread id. Optional capability.
	CreateForumTopic(ctx context.Context, chatID int64, name string) (int64, error)

	// EditForumTopic renames an existing topic. Optional capability.
	EditForumTopic(ctx context.Context, chatID, threadID int64, name string) error
}

// ErrDraftUnsupported is returned by transports without a draft surface.
var ErrDraftUnsupported = errors.New("draft messages not supported by transport")

// SendChunked splits text per ChunkText and sends each chunk in order.
// Stops at the first send error.
func SendChunked(ctx context.Context, client Client, chatID int64, text string, opts SendOptions) error {
	for _, chunk := range ChunkText(text, MaxMessageLength) {
		if err := client.SendText(ctx, chatID, chunk, opts); err != nil {
			return err
		}
	}
	return nil
}

// IsThreadNotFound reports whether err is the missing-thread condition.
func IsThreadNotFound(err error) bool {
	if errors.Is(err, ErrThreadNotFound) {
		return true
	}
	// Raw platform error text, for clients that don't wrap.
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "message thread not found")
}

// IsNotModified reports whether err is the identical-edit condition.
func IsNotModified(err error) bool {
	if errors.Is(err, ErrNotModified) {
		return true
	}
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "message is not modified")
}
