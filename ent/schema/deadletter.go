package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeadLetter holds the schema definition for the DeadLetter entity.
// A record of a job that exceeded its retry budget, retained for
// out-of-band investigation and manual replay.
type DeadLetter struct {
	ent.Schema
}

// Fields of the DeadLetter.
func (DeadLetter) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("dead_letter_id").
			Unique().
			Immutable(),
		field.String("queue").
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Immutable(),
		field.String("reason").
			Immutable(),
		field.String("correlation_id").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DeadLetter.
func (DeadLetter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("queue", "created_at"),
		index.Fields("job_id"),
	}
}
