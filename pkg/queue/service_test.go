package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emissary-bot/emissary/ent"
	entjob "github.com/emissary-bot/emissary/ent/job"
	"github.com/emissary-bot/emissary/pkg/config"
	"github.com/emissary-bot/emissary/test/util"
)

func TestService_EnqueueDedupe(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	jobID, inserted, err := svc.Enqueue(ctx, config.QueueUpdates, EnqueueOptions{
		JobID:   "update-1001",
		Payload: map[string]interface{}{"update_id": float64(1001)},
	})
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, "update-1001", jobID)

	// Same id again: no-op, no second row.
	_, inserted, err = svc.Enqueue(ctx, config.QueueUpdates, EnqueueOptions{
		JobID:   "update-1001",
		Payload: map[string]interface{}{"update_id": float64(1001)},
	})
	require.NoError(t, err)
	assert.False(t, inserted)

	n, err := client.Job.Query().Where(entjob.QueueEQ(config.QueueUpdates)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestService_EnqueueGeneratesID(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)

	a, inserted, err := svc.Enqueue(context.Background(), config.QueueAgentTurns, EnqueueOptions{})
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NotEmpty(t, a)

	b, _, err := svc.Enqueue(context.Background(), config.QueueAgentTurns, EnqueueOptions{})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestService_EnqueueAppliesQueueBudget(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	jobID, _, err := svc.Enqueue(ctx, config.QueueApprovalTimeouts, EnqueueOptions{})
	require.NoError(t, err)

	row, err := client.Job.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, 1, row.MaxAttempts)

	override, _, err := svc.Enqueue(ctx, config.QueueUpdates, EnqueueOptions{MaxAttempts: 9})
	require.NoError(t, err)
	row, err = client.Job.Get(ctx, override)
	require.NoError(t, err)
	assert.Equal(t, 9, row.MaxAttempts)
}

func TestService_DepthCountsOnlyDueJobs(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	_, _, err := svc.Enqueue(ctx, config.QueueUpdates, EnqueueOptions{})
	require.NoError(t, err)
	_, _, err = svc.Enqueue(ctx, config.QueueUpdates, EnqueueOptions{Delay: time.Hour})
	require.NoError(t, err)

	depth, err := svc.Depth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth)
}

func newTestWorker(client *ent.Client, queueName string, handler Handler) *Worker {
	return NewWorker("w-test", "pod-test", queueName, client, config.DefaultQueueConfig(), handler)
}

func TestWorker_ClaimCompleteLifecycle(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	jobID, _, err := svc.Enqueue(ctx, config.QueueUpdates, EnqueueOptions{
		Payload: map[string]interface{}{"update_id": float64(7)},
	})
	require.NoError(t, err)

	var handled *ent.Job
	worker := newTestWorker(client, config.QueueUpdates, func(_ context.Context, j *ent.Job) error {
		handled = j
		return nil
	})

	require.NoError(t, worker.pollAndProcess(ctx))
	require.NotNil(t, handled)
	assert.Equal(t, jobID, handled.ID)
	assert.Equal(t, 1, handled.Attempts)

	row, err := client.Job.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, entjob.StatusCompleted, row.Status)
	require.NotNil(t, row.PodID)
	assert.Equal(t, "pod-test", *row.PodID)

	// Nothing left to claim.
	err = worker.pollAndProcess(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestWorker_DelayedJobNotClaimable(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	_, _, err := svc.Enqueue(ctx, config.QueueUpdates, EnqueueOptions{Delay: time.Hour})
	require.NoError(t, err)

	worker := newTestWorker(client, config.QueueUpdates, func(context.Context, *ent.Job) error {
		t.Fatal("delayed job must not be delivered")
		return nil
	})

	err = worker.pollAndProcess(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestWorker_PriorityThenFIFO(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	_, _, err := svc.Enqueue(ctx, config.QueueUpdates, EnqueueOptions{JobID: "low-1"})
	require.NoError(t, err)
	_, _, err = svc.Enqueue(ctx, config.QueueUpdates, EnqueueOptions{JobID: "high", Priority: 5})
	require.NoError(t, err)
	_, _, err = svc.Enqueue(ctx, config.QueueUpdates, EnqueueOptions{JobID: "low-2"})
	require.NoError(t, err)

	var order []string
	worker := newTestWorker(client, config.QueueUpdates, func(_ context.Context, j *ent.Job) error {
		order = append(order, j.ID)
		return nil
	})

	for i := 0; i < 3; i++ {
		require.NoError(t, worker.pollAndProcess(ctx))
	}
	assert.Equal(t, []string{"high", "low-1", "low-2"}, order)
}

func TestWorker_FailureReschedulesWithBackoff(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	jobID, _, err := svc.Enqueue(ctx, config.QueueUpdates, EnqueueOptions{})
	require.NoError(t, err)

	worker := newTestWorker(client, config.QueueUpdates, func(context.Context, *ent.Job) error {
		return errors.New("handler exploded")
	})

	before := time.Now()
	require.NoError(t, worker.pollAndProcess(ctx))

	row, err := client.Job.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, entjob.StatusPending, row.Status)
	assert.Equal(t, 1, row.Attempts)
	require.NotNil(t, row.LastError)
	assert.Contains(t, *row.LastError, "handler exploded")
	// First retry delay is the backoff base.
	assert.True(t, row.RunAt.After(before))
}

func TestWorker_ExhaustedJobMovesToDeadLetter(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	jobID, _, err := svc.Enqueue(ctx, config.QueueUpdates, EnqueueOptions{
		MaxAttempts: 1,
		Payload:     map[string]interface{}{"correlation_id": "corr-9"},
	})
	require.NoError(t, err)

	worker := newTestWorker(client, config.QueueUpdates, func(context.Context, *ent.Job) error {
		return errors.New("permanent failure")
	})
	require.NoError(t, worker.pollAndProcess(ctx))

	row, err := client.Job.Get(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, entjob.StatusDead, row.Status)

	letters, err := client.DeadLetter.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, letters, 1)
	assert.Equal(t, jobID, letters[0].JobID)
	assert.Equal(t, config.QueueUpdates, letters[0].Queue)
	assert.Equal(t, "permanent failure", letters[0].Reason)
	assert.Equal(t, "corr-9", letters[0].CorrelationID)
}

func TestService_ReplayDeadLetter(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	// Drive a job into the dead-letter table.
	originalID, _, err := svc.Enqueue(ctx, config.QueueAgentTurns, EnqueueOptions{
		MaxAttempts: 1,
		Payload:     map[string]interface{}{"session_id": "sess-1"},
	})
	require.NoError(t, err)

	worker := newTestWorker(client, config.QueueAgentTurns, func(context.Context, *ent.Job) error {
		return errors.New("boom")
	})
	require.NoError(t, worker.pollAndProcess(ctx))

	letters, err := client.DeadLetter.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, letters, 1)

	// Request and execute the replay.
	replayJobID, err := svc.RequestDeadLetterReplay(ctx, letters[0].ID)
	require.NoError(t, err)

	replayJob, err := client.Job.Get(ctx, replayJobID)
	require.NoError(t, err)
	require.NoError(t, svc.ReplayDeadLetterHandler()(ctx, replayJob))

	// The dead letter is consumed and the payload is back on its queue.
	remaining, err := client.DeadLetter.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, remaining)

	pending, err := client.Job.Query().
		Where(
			entjob.QueueEQ(config.QueueAgentTurns),
			entjob.StatusEQ(entjob.StatusPending),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "sess-1", pending[0].Payload["session_id"])
	assert.NotEqual(t, originalID, pending[0].ID)
}
