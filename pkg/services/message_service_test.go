package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emissary-bot/emissary/ent/message"
	"github.com/emissary-bot/emissary/pkg/models"
	"github.com/emissary-bot/emissary/test/util"
)

func TestMessageService_AppendAndLoadRecent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sessions := NewSessionService(client)
	svc := NewMessageService(client)
	ctx := context.Background()

	sess, err := sessions.GetOrCreate(ctx, 100, 42, 0)
	require.NoError(t, err)

	_, err = svc.Append(ctx, sess.ID, message.RoleUser, []models.Part{models.TextPart("hi")}, "corr-1")
	require.NoError(t, err)
	_, err = svc.Append(ctx, sess.ID, message.RoleAssistant, []models.Part{
		{
			Type: models.PartTypeToolCall,
			ToolCall: &models.ToolCallPart{
				CallID:    "c1",
				Name:      "balance",
				Arguments: `{"address":"EQabc"}`,
			},
		},
		models.TextPart("checking"),
	}, "corr-1")
	require.NoError(t, err)

	history, err := svc.LoadRecent(ctx, sess.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// Oldest first, parts round-trip intact.
	assert.Equal(t, message.RoleUser, history[0].Role)
	assert.Equal(t, "hi", history[0].Parts[0].Text)

	assert.Equal(t, message.RoleAssistant, history[1].Role)
	require.Len(t, history[1].Parts, 2)
	require.NotNil(t, history[1].Parts[0].ToolCall)
	assert.Equal(t, "balance", history[1].Parts[0].ToolCall.Name)
	assert.Equal(t, `{"address":"EQabc"}`, history[1].Parts[0].ToolCall.Arguments)
}

func TestMessageService_LoadRecentWindow(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	sessions := NewSessionService(client)
	svc := NewMessageService(client)
	ctx := context.Background()

	sess, err := sessions.GetOrCreate(ctx, 100, 42, 0)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := svc.Append(ctx, sess.ID, message.RoleUser,
			[]models.Part{models.TextPart(fmt.Sprintf("message %d", i))}, "corr")
		require.NoError(t, err)
	}

	history, err := svc.LoadRecent(ctx, sess.ID, 3)
	require.NoError(t, err)
	require.Len(t, history, 3)

	// The window keeps the newest messages, oldest of them first.
	assert.Equal(t, "message 2", history[0].Parts[0].Text)
	assert.Equal(t, "message 4", history[2].Parts[0].Text)
}

func TestMessageService_AppendValidation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewMessageService(client)
	ctx := context.Background()

	_, err := svc.Append(ctx, "", message.RoleUser, []models.Part{models.TextPart("x")}, "corr")
	assert.True(t, IsValidationError(err))

	_, err = svc.Append(ctx, "sess", message.RoleUser, nil, "corr")
	assert.True(t, IsValidationError(err))
}
