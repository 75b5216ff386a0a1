package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity.
// Durable FIFO-within-priority work queue row. The caller-supplied id
// doubles as the producer-side dedupe key (insert conflict = no-op).
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("queue").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}),
		field.Enum("status").
			Values("pending", "running", "completed", "dead").
			Default("pending"),
		field.Int("priority").
			Default(0),
		field.Time("run_at").
			Default(time.Now).
			Comment("Earliest wall-clock delivery time (delayed jobs)"),
		field.Int("attempts").
			Default(0),
		field.Int("max_attempts").
			Default(5),
		field.String("last_error").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination and startup requeue"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		// Claim query: pending jobs due for delivery, FIFO within priority
		index.Fields("queue", "status", "run_at"),
		// Stale-running sweep
		index.Fields("status", "updated_at"),
		index.Fields("pod_id", "status"),
	}
}
