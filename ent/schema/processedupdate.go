package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProcessedUpdate holds the schema definition for the ProcessedUpdate entity.
// One row per inbound transport update — the idempotency record that makes
// ingestion exactly-once (insert conflict means duplicate).
type ProcessedUpdate struct {
	ent.Schema
}

// Fields of the ProcessedUpdate.
func (ProcessedUpdate) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("update_id").
			Unique().
			Immutable().
			Comment("Transport-assigned monotonically increasing update id"),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Raw transport update payload"),
		field.Enum("status").
			Values("received", "enqueued", "processed", "failed").
			Default("received"),
		field.Time("received_at").
			Default(time.Now).
			Immutable(),
		field.Time("handled_at").
			Optional().
			Nillable(),
		field.String("error").
			Optional().
			Nillable(),
	}
}

// Indexes of the ProcessedUpdate.
func (ProcessedUpdate) Indexes() []ent.Index {
	return []ent.Index{
		// Recovery sweep: received rows oldest-first
		index.Fields("status", "received_at"),
		// Retention cleanup
		index.Fields("received_at"),
	}
}
