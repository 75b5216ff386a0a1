package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/emissary-bot/emissary/pkg/config"
	"github.com/emissary-bot/emissary/pkg/models"
	"github.com/emissary-bot/emissary/pkg/transport"
)

// newTransportClient builds the bot-API binding when a token is
// configured. Without one the binding is inert — useful for queue-only
// replicas and local testing.
func newTransportClient(cfg *config.Config) transport.Client {
	if cfg.Transport.Token == "" {
		return inertTransport{}
	}
	return &botAPIClient{
		baseURL: fmt.Sprintf("%s/bot%s", cfg.Transport.BaseURL, cfg.Transport.Token),
		http:    &http.Client{Timeout: 35 * time.Second},
	}
}

// botAPIClient is a thin HTTP binding to the chat platform's bot API. The
// runtime core never sees these details; it talks to transport.Client.
type botAPIClient struct {
	baseURL string
	http    *http.Client
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

func (c *botAPIClient) call(ctx context.Context, method string, params map[string]interface{}, result interface{}) error {
	body, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to encode %s params: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s response read failed: %w", method, err)
	}

	var decoded apiResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("%s response decode failed: %w", method, err)
	}
	if !decoded.OK {
		return fmt.Errorf("%s: %s", method, decoded.Description)
	}
	if result != nil && len(decoded.Result) > 0 {
		if err := json.Unmarshal(decoded.Result, result); err != nil {
			return fmt.Errorf("%s result decode failed: %w", method, err)
		}
	}
	return nil
}

func (c *botAPIClient) SendText(ctx context.Context, chatID int64, text string, opts transport.SendOptions) error {
	params := map[string]interface{}{"chat_id": chatID, "text": text}
	applySendOptions(params, opts)

	err := c.call(ctx, "sendMessage", params, nil)
	if err != nil && opts.ThreadID != 0 && transport.IsThreadNotFound(err) {
		// The topic was deleted under us; deliver to the main thread.
		delete(params, "message_thread_id")
		return c.call(ctx, "sendMessage", params, nil)
	}
	return err
}

func (c *botAPIClient) EditText(ctx context.Context, chatID, messageID int64, text string, keyboard transport.Keyboard) error {
	params := map[string]interface{}{"chat_id": chatID, "message_id": messageID, "text": text}
	if keyboard != nil {
		params["reply_markup"] = encodeKeyboard(keyboard)
	}
	err := c.call(ctx, "editMessageText", params, nil)
	if transport.IsNotModified(err) {
		return nil
	}
	return err
}

func (c *botAPIClient) SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard transport.Keyboard, opts transport.SendOptions) (int64, error) {
	params := map[string]interface{}{
		"chat_id":      chatID,
		"text":         text,
		"reply_markup": encodeKeyboard(keyboard),
	}
	applySendOptions(params, opts)

	var result struct {
		MessageID int64 `json:"message_id"`
	}
	if err := c.call(ctx, "sendMessage", params, &result); err != nil {
		return 0, err
	}
	return result.MessageID, nil
}

func (c *botAPIClient) SendDraft(ctx context.Context, chatID int64, draftID string, text string, opts transport.SendOptions) error {
	return transport.ErrDraftUnsupported
}

func (c *botAPIClient) AnswerCallback(ctx context.Context, callbackID, text string, showAlert bool) error {
	params := map[string]interface{}{"callback_query_id": callbackID}
	if text != "" {
		params["text"] = text
		params["show_alert"] = showAlert
	}
	return c.call(ctx, "answerCallbackQuery", params, nil)
}

func (c *botAPIClient) CreateForumTopic(ctx context.Context, chatID int64, name string) (int64, error) {
	var result struct {
		ThreadID int64 `json:"message_thread_id"`
	}
	params := map[string]interface{}{"chat_id": chatID, "name": name}
	if err := c.call(ctx, "createForumTopic", params, &result); err != nil {
		return 0, err
	}
	return result.ThreadID, nil
}

func (c *botAPIClient) EditForumTopic(ctx context.Context, chatID, threadID int64, name string) error {
	params := map[string]interface{}{"chat_id": chatID, "message_thread_id": threadID, "name": name}
	return c.call(ctx, "editForumTopic", params, nil)
}

// PollUpdates implements ingest.UpdateSource for RUN_MODE=polling.
func (c *botAPIClient) PollUpdates(ctx context.Context, offset int64) ([]models.Update, error) {
	params := map[string]interface{}{"offset": offset, "timeout": 30}
	var result []models.Update
	if err := c.call(ctx, "getUpdates", params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func applySendOptions(params map[string]interface{}, opts transport.SendOptions) {
	if opts.ThreadID != 0 {
		params["message_thread_id"] = opts.ThreadID
	}
	if opts.ReplyToMessageID != 0 {
		params["reply_to_message_id"] = opts.ReplyToMessageID
	}
	if opts.ParseMode != "" {
		params["parse_mode"] = opts.ParseMode
	}
}

func encodeKeyboard(keyboard transport.Keyboard) map[string]interface{} {
	rows := make([][]map[string]interface{}, len(keyboard))
	for i, row := range keyboard {
		buttons := make([]map[string]interface{}, len(row))
		for j, b := range row {
			buttons[j] = map[string]interface{}{"text": b.Text, "callback_data": b.CallbackData}
		}
		rows[i] = buttons
	}
	return map[string]interface{}{"inline_keyboard": rows}
}

// inertTransport is the tokenless binding: sends vanish, polls return
// nothing. Queue-only replicas run with this.
type inertTransport struct{}

func (inertTransport) SendText(context.Context, int64, string, transport.SendOptions) error {
	return nil
}

func (inertTransport) EditText(context.Context, int64, int64, string, transport.Keyboard) error {
	return nil
}

func (inertTransport) SendMessageWithKeyboard(context.Context, int64, string, transport.Keyboard, transport.SendOptions) (int64, error) {
	return 0, nil
}

func (inertTransport) SendDraft(context.Context, int64, string, string, transport.SendOptions) error {
	return transport.ErrDraftUnsupported
}

func (inertTransport) AnswerCallback(context.Context, string, string, bool) error { return nil }

func (inertTransport) CreateForumTopic(context.Context, int64, string) (int64, error) {
	return 0, fmt.Errorf("forum topics unsupported without a transport token")
}

func (inertTransport) EditForumTopic(context.Context, int64, int64, string) error { return nil }
