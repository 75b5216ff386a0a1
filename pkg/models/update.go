package models

import "encoding/json"

// ChatType distinguishes private conversations from group chats.
type ChatType string

// Chat type constants.
const (
	ChatTypePrivate ChatType = "private"
	ChatTypeGroup   ChatType = "group"
	ChatTypeForum   ChatType = "forum"
)

// Update is the transport-neutral representation of an inbound platform
// event. Exactly one of Message or Callback is set.
type Update struct {
	UpdateID int64            `json:"update_id"`
	Message  *IncomingMessage `json:"message,omitempty"`
	Callback *CallbackQuery   `json:"callback,omitempty"`
}

// IncomingMessage is a user text message.
type IncomingMessage struct {
	MessageID int64    `json:"message_id"`
	ChatID    int64    `json:"chat_id"`
	ChatType  ChatType `json:"chat_type"`
	UserID    int64    `json:"user_id"`
	ThreadID  int64    `json:"thread_id,omitempty"`
	Text      string   `json:"text"`
}

// CallbackQuery is a button press on an inline keyboard.
type CallbackQuery struct {
	CallbackID string   `json:"callback_id"`
	ChatID     int64    `json:"chat_id"`
	ChatType   ChatType `json:"chat_type"`
	UserID     int64    `json:"user_id"`
	ThreadID   int64    `json:"thread_id,omitempty"`
	MessageID  int64    `json:"message_id"`
	Data       string   `json:"data"`
}

// UpdateFromPayload decodes a stored raw payload back into an Update.
func UpdateFromPayload(payload map[string]interface{}) (*Update, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var u Update
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Payload encodes the update as a JSON object for durable storage.
func (u *Update) Payload() (map[string]interface{}, error) {
	raw, err := json.Marshal(u)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
