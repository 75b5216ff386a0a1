package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity.
// A conversation thread scoped by (chat_id, user_id, thread_id).
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.Int64("chat_id").
			Immutable(),
		field.Int64("user_id").
			Immutable(),
		field.Int64("thread_id").
			Default(0).
			Immutable().
			Comment("0 when the chat has no topic threads"),
		field.JSON("state", map[string]interface{}{}).
			Optional().
			Comment("Opaque session state (wallet-link flow, etc.)"),
		field.Time("last_message_at").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		// Exactly one session per scope tuple
		index.Fields("chat_id", "user_id", "thread_id").
			Unique(),
		index.Fields("last_message_at"),
	}
}
