package services

import (
	"context"
	"fmt"
	"time"

	"github.com/emissary-bot/emissary/ent"
	"github.com/emissary-bot/emissary/ent/session"
	"github.com/google/uuid"
)

// SessionService owns Session rows: one per (chat, user, thread) scope.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// GetOrCreate returns the session for a scope tuple, creating it on first
// contact. threadID is 0 when the chat has no topic threads. A concurrent
// create loses the unique-constraint race and rereads the winner's row.
func (s *SessionService) GetOrCreate(ctx context.Context, chatID, userID, threadID int64) (*ent.Session, error) {
	sess, err := s.querySession(ctx, chatID, userID, threadID)
	if err == nil {
		return sess, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	sess, err = s.client.Session.Create().
		SetID(uuid.New().String()).
		SetChatID(chatID).
		SetUserID(userID).
		SetThreadID(threadID).
		Save(ctx)
	if err == nil {
		return sess, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	sess, err = s.querySession(ctx, chatID, userID, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to reread session after create race: %w", err)
	}
	return sess, nil
}

// Get returns a session by id.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*ent.Session, error) {
	sess, err := s.client.Session.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
	}
	return sess, nil
}

// TouchLastMessage stamps the session's last activity time.
func (s *SessionService) TouchLastMessage(ctx context.Context, sessionID string) error {
	err := s.client.Session.UpdateOneID(sessionID).
		SetLastMessageAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch session %s: %w", sessionID, err)
	}
	return nil
}

// UpdateState replaces the session's opaque state document.
func (s *SessionService) UpdateState(ctx context.Context, sessionID string, state map[string]interface{}) error {
	err := s.client.Session.UpdateOneID(sessionID).
		SetState(state).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update session state %s: %w", sessionID, err)
	}
	return nil
}

func (s *SessionService) querySession(ctx context.Context, chatID, userID, threadID int64) (*ent.Session, error) {
	return s.client.Session.Query().
		Where(
			session.ChatIDEQ(chatID),
			session.UserIDEQ(userID),
			session.ThreadIDEQ(threadID),
		).
		Only(ctx)
}
