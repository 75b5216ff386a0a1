package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emissary-bot/emissary/test/util"
)

func TestService_AppendChains(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	first, err := svc.Append(ctx, Entry{
		ActorType:     ActorTypeSystem,
		ActorID:       "runtime",
		EventType:     "update.ingested",
		Metadata:      map[string]interface{}{"update_id": "1001"},
		CorrelationID: "corr-1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Seq)
	assert.Len(t, first.HashChain, 64)

	second, err := svc.Append(ctx, Entry{
		ActorType:     ActorTypeUser,
		ActorID:       "42",
		EventType:     "approval.decided",
		Metadata:      map[string]interface{}{"decision": "approved"},
		CorrelationID: "corr-1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Seq)
	assert.NotEqual(t, first.HashChain, second.HashChain)

	// The second event's hash commits to the first.
	want, err := ComputeChainHash(first.HashChain, second.EventType, second.Metadata,
		second.CreatedAt.UTC().Format(time.RFC3339Nano))
	require.NoError(t, err)
	assert.Equal(t, want, second.HashChain)
}

func TestService_VerifyIntactChain(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Append(ctx, Entry{
			ActorType: ActorTypeSystem,
			ActorID:   "runtime",
			EventType: "job.completed",
			Metadata:  map[string]interface{}{"n": float64(i)},
		})
		require.NoError(t, err)
	}

	broken, err := svc.Verify(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), broken)

	// A prefix verifies too.
	broken, err = svc.Verify(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(0), broken)
}

func TestService_VerifyDetectsTampering(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		ev, err := svc.Append(ctx, Entry{
			ActorType: ActorTypeSystem,
			ActorID:   "runtime",
			EventType: "job.completed",
			Metadata:  map[string]interface{}{"n": float64(i)},
		})
		require.NoError(t, err)
		ids = append(ids, ev.ID)
	}

	// Rewrite the middle event's metadata behind the chain's back.
	err := client.AuditEvent.UpdateOneID(ids[1]).
		SetMetadata(map[string]interface{}{"n": float64(99)}).
		Exec(ctx)
	require.NoError(t, err)

	broken, err := svc.Verify(ctx, 0)
	assert.Error(t, err)
	assert.Equal(t, int64(2), broken)
}

func TestService_VerifyEmptyChain(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewService(client)

	broken, err := svc.Verify(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), broken)
}
