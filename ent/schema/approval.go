package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Approval holds the schema definition for the Approval entity.
// A server-mediated gate requiring explicit user consent before a
// sensitive tool call executes. Terminal states are immutable.
type Approval struct {
	ent.Schema
}

// Fields of the Approval.
func (Approval) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("approval_id").
			Unique().
			Immutable(),
		field.String("callback_token").
			Unique().
			Immutable().
			Comment("Short unguessable token carried in button callback data"),
		field.String("session_id").
			Immutable(),
		field.Int64("chat_id").
			Immutable(),
		field.Int64("user_id").
			Immutable(),
		field.String("tool_name").
			Immutable(),
		field.String("tool_call_id").
			Immutable(),
		field.JSON("tool_input", map[string]interface{}{}).
			Immutable(),
		field.Enum("risk_level").
			Values("low", "medium", "high", "critical"),
		field.Enum("risk_confidence").
			Values("low", "medium", "high"),
		field.Enum("status").
			Values("requested", "approved", "denied", "expired", "failed").
			Default("requested"),
		field.Time("expires_at"),
		field.Int64("decided_by").
			Optional().
			Nillable(),
		field.Time("decided_at").
			Optional().
			Nillable(),
		field.Int64("prompt_message_id").
			Optional().
			Nillable().
			Comment("Transport message id of the approval prompt card"),
		field.String("correlation_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Approval.
func (Approval) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("callback_token").
			Unique(),
		// Expiry worker: requested rows past deadline
		index.Fields("status", "expires_at"),
		index.Fields("session_id", "status"),
	}
}
