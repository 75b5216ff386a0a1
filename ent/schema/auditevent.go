package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEvent holds the schema definition for the AuditEvent entity.
// Append-only hash-chained log: each row commits to the previous row's
// hash_chain value. Rows are never updated or deleted.
type AuditEvent struct {
	ent.Schema
}

// Fields of the AuditEvent.
func (AuditEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_event_id").
			Unique().
			Immutable(),
		field.Int64("seq").
			Unique().
			Immutable().
			Comment("Chain position; the unique constraint serializes concurrent appends"),
		field.String("actor_type").
			Immutable().
			Comment("user | system | agent"),
		field.String("actor_id").
			Immutable(),
		field.String("event_type").
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.String("correlation_id").
			Immutable(),
		field.String("hash_chain").
			Immutable().
			Comment("hex(sha256(canonical JSON of {previousHash, eventType, metadata, createdAtIso}))"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditEvent.
func (AuditEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Chain order
		index.Fields("seq").
			Unique(),
		index.Fields("created_at"),
		index.Fields("event_type", "created_at"),
		index.Fields("correlation_id"),
	}
}
