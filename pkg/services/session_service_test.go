package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emissary-bot/emissary/test/util"
)

func TestSessionService_GetOrCreate(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	sess, err := svc.GetOrCreate(ctx, 100, 42, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(100), sess.ChatID)
	assert.Equal(t, int64(42), sess.UserID)
	assert.Equal(t, int64(0), sess.ThreadID)

	// Same scope returns the same session.
	again, err := svc.GetOrCreate(ctx, 100, 42, 0)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, again.ID)

	// A different thread is a different scope.
	threaded, err := svc.GetOrCreate(ctx, 100, 42, 55)
	require.NoError(t, err)
	assert.NotEqual(t, sess.ID, threaded.ID)
}

func TestSessionService_Get(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	created, err := svc.GetOrCreate(ctx, 100, 42, 0)
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionService_TouchLastMessage(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	sess, err := svc.GetOrCreate(ctx, 100, 42, 0)
	require.NoError(t, err)

	require.NoError(t, svc.TouchLastMessage(ctx, sess.ID))

	touched, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.False(t, touched.LastMessageAt.Before(sess.LastMessageAt))
}

func TestSessionService_UpdateState(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	sess, err := svc.GetOrCreate(ctx, 100, 42, 0)
	require.NoError(t, err)

	state := map[string]interface{}{"wallet_flow": "pending"}
	require.NoError(t, svc.UpdateState(ctx, sess.ID, state))

	got, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", got.State["wallet_flow"])
}
