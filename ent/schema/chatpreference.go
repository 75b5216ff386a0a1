package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ChatPreference holds the schema definition for the ChatPreference entity.
// Per-chat overrides; nil fields fall through to the user defaults.
type ChatPreference struct {
	ent.Schema
}

// Fields of the ChatPreference.
func (ChatPreference) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("chat_id").
			Unique().
			Immutable(),
		field.Enum("response_style").
			Values("concise", "detailed").
			Optional().
			Nillable(),
		field.Enum("risk_profile").
			Values("cautious", "balanced", "advanced").
			Optional().
			Nillable(),
		field.String("network").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
