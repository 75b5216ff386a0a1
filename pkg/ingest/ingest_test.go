package ingest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entjob "github.com/emissary-bot/emissary/ent/job"
	"github.com/emissary-bot/emissary/ent/processedupdate"
	"github.com/emissary-bot/emissary/pkg/config"
	"github.com/emissary-bot/emissary/pkg/models"
	"github.com/emissary-bot/emissary/pkg/queue"
	"github.com/emissary-bot/emissary/pkg/services"
	"github.com/emissary-bot/emissary/test/util"
)

func testUpdate(id int64) *models.Update {
	return &models.Update{
		UpdateID: id,
		Message: &models.IncomingMessage{
			MessageID: id * 10,
			ChatID:    100,
			ChatType:  models.ChatTypePrivate,
			UserID:    42,
			Text:      "hello",
		},
	}
}

func TestPipeline_Ingest(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	updates := services.NewUpdateService(client)
	pipeline := NewPipeline(updates, queue.NewService(client))
	ctx := context.Background()

	res, err := pipeline.Ingest(ctx, testUpdate(1001))
	require.NoError(t, err)
	assert.False(t, res.Duplicate)
	assert.Equal(t, "update-1001", res.JobID)

	// The idempotency row advanced to enqueued and the job exists.
	rec, err := updates.Get(ctx, 1001)
	require.NoError(t, err)
	assert.Equal(t, processedupdate.StatusEnqueued, rec.Status)

	row, err := client.Job.Get(ctx, "update-1001")
	require.NoError(t, err)
	assert.Equal(t, config.QueueUpdates, row.Queue)
	assert.Equal(t, float64(1001), row.Payload["update_id"])
}

func TestPipeline_IngestDuplicate(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	pipeline := NewPipeline(services.NewUpdateService(client), queue.NewService(client))
	ctx := context.Background()

	_, err := pipeline.Ingest(ctx, testUpdate(1001))
	require.NoError(t, err)

	res, err := pipeline.Ingest(ctx, testUpdate(1001))
	require.NoError(t, err)
	assert.True(t, res.Duplicate)

	// Still exactly one job.
	n, err := client.Job.Query().Where(entjob.QueueEQ(config.QueueUpdates)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPipeline_IngestRejectsInvalidID(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	pipeline := NewPipeline(services.NewUpdateService(client), queue.NewService(client))

	_, err := pipeline.Ingest(context.Background(), &models.Update{UpdateID: 0})
	assert.True(t, services.IsValidationError(err))

	_, err = pipeline.Ingest(context.Background(), &models.Update{UpdateID: -5})
	assert.True(t, services.IsValidationError(err))
}

func TestPipeline_SweepRecoversStuckUpdates(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	updates := services.NewUpdateService(client)
	pipeline := NewPipeline(updates, queue.NewService(client))
	ctx := context.Background()

	// Simulate a crash between persist and enqueue: row exists in
	// received state with no job.
	payload, err := testUpdate(2002).Payload()
	require.NoError(t, err)
	inserted, _, err := updates.TryInsert(ctx, 2002, payload)
	require.NoError(t, err)
	require.True(t, inserted)

	pipeline.sweepOnce(ctx)

	rec, err := updates.Get(ctx, 2002)
	require.NoError(t, err)
	assert.Equal(t, processedupdate.StatusEnqueued, rec.Status)

	row, err := client.Job.Get(ctx, "update-2002")
	require.NoError(t, err)
	assert.Equal(t, float64(2002), row.Payload["update_id"])
}

func TestPipeline_SweepSkipsHandledUpdates(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	updates := services.NewUpdateService(client)
	pipeline := NewPipeline(updates, queue.NewService(client))
	ctx := context.Background()

	_, err := pipeline.Ingest(ctx, testUpdate(3003))
	require.NoError(t, err)
	require.NoError(t, updates.MarkStatus(ctx, 3003, processedupdate.StatusProcessed, ""))

	// Remove the consumed job, then sweep: nothing should come back.
	_, err = client.Job.Delete().Exec(ctx)
	require.NoError(t, err)

	pipeline.sweepOnce(ctx)

	n, err := client.Job.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
