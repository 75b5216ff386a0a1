package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/emissary-bot/emissary/ent"
	"github.com/emissary-bot/emissary/ent/message"
	"github.com/emissary-bot/emissary/pkg/models"
	"github.com/google/uuid"
)

// DefaultHistoryLimit bounds how much conversation history is replayed to
// the LLM. Old messages simply fall out of the window; there is no
// summarization.
const DefaultHistoryLimit = 80

// StoredMessage is a message with its parts decoded from JSON.
type StoredMessage struct {
	ID            string
	SessionID     string
	Role          message.Role
	Parts         []models.Part
	CorrelationID string
}

// MessageService owns the append-only conversation history.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService.
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// Append adds one message to a session's history.
func (s *MessageService) Append(ctx context.Context, sessionID string, role message.Role, parts []models.Part, correlationID string) (*ent.Message, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if len(parts) == 0 {
		return nil, NewValidationError("parts", "required")
	}

	encoded, err := encodeParts(parts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode message parts: %w", err)
	}

	msg, err := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetRole(role).
		SetParts(encoded).
		SetCorrelationID(correlationID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}
	return msg, nil
}

// LoadRecent returns up to limit most recent messages for a session,
// oldest first, with parts decoded.
func (s *MessageService) LoadRecent(ctx context.Context, sessionID string, limit int) ([]StoredMessage, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := s.client.Message.Query().
		Where(message.SessionIDEQ(sessionID)).
		Order(ent.Desc(message.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages for session %s: %w", sessionID, err)
	}

	// Reverse: the query returns newest-first, replay wants oldest-first.
	out := make([]StoredMessage, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		parts, err := decodeParts(row.Parts)
		if err != nil {
			return nil, fmt.Errorf("failed to decode parts of message %s: %w", row.ID, err)
		}
		out = append(out, StoredMessage{
			ID:            row.ID,
			SessionID:     row.SessionID,
			Role:          row.Role,
			Parts:         parts,
			CorrelationID: row.CorrelationID,
		})
	}
	return out, nil
}

func encodeParts(parts []models.Part) ([]map[string]interface{}, error) {
	raw, err := json.Marshal(parts)
	if err != nil {
		return nil, err
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeParts(encoded []map[string]interface{}) ([]models.Part, error) {
	raw, err := json.Marshal(encoded)
	if err != nil {
		return nil, err
	}
	var out []models.Part
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
