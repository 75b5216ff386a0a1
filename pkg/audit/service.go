// Package audit implements the append-only, hash-chained audit log.
// Each event commits to the previous event's hash, making tampering
// detectable by forward verification from a known-good root.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/emissary-bot/emissary/ent"
	"github.com/emissary-bot/emissary/ent/auditevent"
	"github.com/google/uuid"
)

// maxAppendRetries bounds the CAS loop on the chain sequence. Contention on
// the audit chain is low (one append per state transition), so conflicts
// are rare and resolve on the next read.
const maxAppendRetries = 5

// Actor type constants.
const (
	ActorTypeUser   = "user"
	ActorTypeSystem = "system"
	ActorTypeAgent  = "agent"
)

// Entry is one event to append to the chain.
type Entry struct {
	ActorType     string
	ActorID       string
	EventType     string
	Metadata      map[string]interface{}
	CorrelationID string
}

// Service appends to and verifies the audit chain.
type Service struct {
	client *ent.Client
}

// NewService creates a new audit Service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// Append writes one event to the chain. The new event's hash covers the
// most recent event's hash; a unique constraint on the sequence number
// serializes concurrent appends across replicas (conflict = reread + retry).
func (s *Service) Append(ctx context.Context, entry Entry) (*ent.AuditEvent, error) {
	for attempt := 0; attempt < maxAppendRetries; attempt++ {
		latest, err := s.client.AuditEvent.Query().
			Order(ent.Desc(auditevent.FieldSeq)).
			First(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to read chain head: %w", err)
		}

		prevHash := ""
		nextSeq := int64(1)
		if latest != nil {
			prevHash = latest.HashChain
			nextSeq = latest.Seq + 1
		}

		// Truncate to microseconds: timestamptz round-trips at microsecond
		// precision, and Verify recomputes hashes from the stored value.
		createdAt := time.Now().UTC().Truncate(time.Microsecond)
		hash, err := ComputeChainHash(prevHash, entry.EventType, entry.Metadata, createdAt.Format(time.RFC3339Nano))
		if err != nil {
			return nil, err
		}

		ev, err := s.client.AuditEvent.Create().
			SetID(uuid.New().String()).
			SetSeq(nextSeq).
			SetActorType(entry.ActorType).
			SetActorID(entry.ActorID).
			SetEventType(entry.EventType).
			SetMetadata(entry.Metadata).
			SetCorrelationID(entry.CorrelationID).
			SetHashChain(hash).
			SetCreatedAt(createdAt).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// Another replica appended first; reread the head and retry.
				continue
			}
			return nil, fmt.Errorf("failed to append audit event: %w", err)
		}
		return ev, nil
	}
	return nil, fmt.Errorf("failed to append audit event after %d attempts: chain contention", maxAppendRetries)
}

// Verify recomputes the chain forward from the first event and reports the
// first index (seq) whose stored hash does not match, or 0 if the prefix of
// up to limit events is intact. limit <= 0 verifies the whole chain.
func (s *Service) Verify(ctx context.Context, limit int) (int64, error) {
	q := s.client.AuditEvent.Query().
		Order(ent.Asc(auditevent.FieldSeq))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load audit chain: %w", err)
	}

	prevHash := ""
	for _, ev := range events {
		want, err := ComputeChainHash(prevHash, ev.EventType, ev.Metadata, ev.CreatedAt.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return ev.Seq, err
		}
		if want != ev.HashChain {
			return ev.Seq, fmt.Errorf("audit chain broken at seq %d", ev.Seq)
		}
		prevHash = ev.HashChain
	}
	return 0, nil
}
