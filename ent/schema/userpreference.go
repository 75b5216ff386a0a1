package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// UserPreference holds the schema definition for the UserPreference entity.
// Per-user defaults; chat-level overrides live in ChatPreference.
type UserPreference struct {
	ent.Schema
}

// Fields of the UserPreference.
func (UserPreference) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.Enum("response_style").
			Values("concise", "detailed").
			Default("concise"),
		field.Enum("risk_profile").
			Values("cautious", "balanced", "advanced").
			Default("balanced"),
		field.String("network").
			Default("mainnet"),
		field.String("wallet_address").
			Optional().
			Nillable().
			Comment("Linked wallet, managed by the wallet flow"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
