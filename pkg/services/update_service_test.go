package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emissary-bot/emissary/ent/processedupdate"
	"github.com/emissary-bot/emissary/test/util"
)

func TestUpdateService_TryInsertDedupe(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewUpdateService(client)
	ctx := context.Background()

	payload := map[string]interface{}{"update_id": float64(1001), "text": "hello"}

	inserted, rec, err := svc.TryInsert(ctx, 1001, payload)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, processedupdate.StatusReceived, rec.Status)

	// The same update id is absorbed, returning the existing record.
	inserted, dup, err := svc.TryInsert(ctx, 1001, payload)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, rec.ID, dup.ID)
}

func TestUpdateService_MarkStatusLifecycle(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewUpdateService(client)
	ctx := context.Background()

	_, _, err := svc.TryInsert(ctx, 42, map[string]interface{}{})
	require.NoError(t, err)

	require.NoError(t, svc.MarkStatus(ctx, 42, processedupdate.StatusEnqueued, ""))
	require.NoError(t, svc.MarkStatus(ctx, 42, processedupdate.StatusProcessed, ""))

	rec, err := svc.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, processedupdate.StatusProcessed, rec.Status)
	assert.NotNil(t, rec.HandledAt)

	// Terminal states do not regress.
	err = svc.MarkStatus(ctx, 42, processedupdate.StatusReceived, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Re-marking the current terminal status is idempotent.
	assert.NoError(t, svc.MarkStatus(ctx, 42, processedupdate.StatusProcessed, ""))
}

func TestUpdateService_MarkStatusNeverMovesBackward(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewUpdateService(client)
	ctx := context.Background()

	_, _, err := svc.TryInsert(ctx, 55, map[string]interface{}{})
	require.NoError(t, err)
	require.NoError(t, svc.MarkStatus(ctx, 55, processedupdate.StatusEnqueued, ""))

	// The recovery re-mark only applies while still received; an enqueued
	// update cannot be pulled back.
	err = svc.MarkStatus(ctx, 55, processedupdate.StatusReceived, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	rec, err := svc.Get(ctx, 55)
	require.NoError(t, err)
	assert.Equal(t, processedupdate.StatusEnqueued, rec.Status)
}

func TestUpdateService_MarkStatusFailedRecordsError(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewUpdateService(client)
	ctx := context.Background()

	_, _, err := svc.TryInsert(ctx, 7, map[string]interface{}{})
	require.NoError(t, err)

	require.NoError(t, svc.MarkStatus(ctx, 7, processedupdate.StatusFailed, "handler exploded"))

	rec, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, processedupdate.StatusFailed, rec.Status)
	require.NotNil(t, rec.Error)
	assert.Equal(t, "handler exploded", *rec.Error)
}

func TestUpdateService_GetNotFound(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewUpdateService(client)

	_, err := svc.Get(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateService_ListReceivedForRecovery(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewUpdateService(client)
	ctx := context.Background()

	for id := int64(1); id <= 3; id++ {
		_, _, err := svc.TryInsert(ctx, id, map[string]interface{}{})
		require.NoError(t, err)
	}
	// One already moved on; it must not show up.
	require.NoError(t, svc.MarkStatus(ctx, 2, processedupdate.StatusEnqueued, ""))

	rows, err := svc.ListReceivedForRecovery(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].ID)
	assert.Equal(t, int64(3), rows[1].ID)
}
