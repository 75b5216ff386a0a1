// Code generated by ent, DO NOT EDIT.

package chatpreference

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the chatpreference type in the database.
	Label = "chat_preference"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "chat_id"
	// FieldResponseStyle holds the string denoting the response_style field in the database.
	FieldResponseStyle = "response_style"
	// FieldRiskProfile holds the string denoting the risk_profile field in the database.
	FieldRiskProfile = "risk_profile"
	// FieldNetwork holds the string denoting the network field in the database.
	FieldNetwork = "network"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the chatpreference in the database.
	Table = "chat_preferences"
)

// Columns holds all SQL columns for chatpreference fields.
var Columns = []string{
	FieldID,
	FieldResponseStyle,
	FieldRiskProfile,
	FieldNetwork,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ResponseStyle defines the type for the "response_style" enum field.
type ResponseStyle string

// ResponseStyle values.
const (
	ResponseStyleConcise  ResponseStyle = "concise"
	ResponseStyleDetailed ResponseStyle = "detailed"
)

func (rs ResponseStyle) String() string {
	return string(rs)
}

// ResponseStyleValidator is a validator for the "response_style" field enum values. It is called by the builders before save.
func ResponseStyleValidator(rs ResponseStyle) error {
	switch rs {
	case ResponseStyleConcise, ResponseStyleDetailed:
		return nil
	default:
		return fmt.Errorf("chatpreference: invalid enum value for response_style field: %q", rs)
	}
}

// RiskProfile defines the type for the "risk_profile" enum field.
type RiskProfile string

// RiskProfile values.
const (
	RiskProfileCautious RiskProfile = "cautious"
	RiskProfileBalanced RiskProfile = "balanced"
	RiskProfileAdvanced RiskProfile = "advanced"
)

func (rp RiskProfile) String() string {
	return string(rp)
}

// RiskProfileValidator is a validator for the "risk_profile" field enum values. It is called by the builders before save.
func RiskProfileValidator(rp RiskProfile) error {
	switch rp {
	case RiskProfileCautious, RiskProfileBalanced, RiskProfileAdvanced:
		return nil
	default:
		return fmt.Errorf("chatpreference: invalid enum value for risk_profile field: %q", rp)
	}
}

// OrderOption defines the ordering options for the ChatPreference queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByResponseStyle orders the results by the response_style field.
func ByResponseStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseStyle, opts...).ToFunc()
}

// ByRiskProfile orders the results by the risk_profile field.
func ByRiskProfile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskProfile, opts...).ToFunc()
}

// ByNetwork orders the results by the network field.
func ByNetwork(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetwork, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
