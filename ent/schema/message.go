package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
// Append-only conversation history replayed to the LLM on each turn.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Enum("role").
			Values("system", "user", "assistant", "tool"),
		field.JSON("parts", []map[string]interface{}{}).
			Comment("Tagged content parts: text, tool_call, tool_result, tool_approval_request, tool_approval_response"),
		field.String("correlation_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		// Replay order within a session
		index.Fields("session_id", "created_at"),
		index.Fields("correlation_id"),
	}
}
