// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/emissary-bot/emissary/ent/chatpreference"
)

// ChatPreference is the model entity for the ChatPreference schema.
type ChatPreference struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// ResponseStyle holds the value of the "response_style" field.
	ResponseStyle *chatpreference.ResponseStyle `json:"response_style,omitempty"`
	// RiskProfile holds the value of the "risk_profile" field.
	RiskProfile *chatpreference.RiskProfile `json:"risk_profile,omitempty"`
	// Network holds the value of the "network" field.
	Network *string `json:"network,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChatPreference) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chatpreference.FieldID:
			values[i] = new(sql.NullInt64)
		case chatpreference.FieldResponseStyle, chatpreference.FieldRiskProfile, chatpreference.FieldNetwork:
			values[i] = new(sql.NullString)
		case chatpreference.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChatPreference fields.
func (_m *ChatPreference) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chatpreference.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case chatpreference.FieldResponseStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_style", values[i])
			} else if value.Valid {
				_m.ResponseStyle = new(chatpreference.ResponseStyle)
				*_m.ResponseStyle = chatpreference.ResponseStyle(value.String)
			}
		case chatpreference.FieldRiskProfile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_profile", values[i])
			} else if value.Valid {
				_m.RiskProfile = new(chatpreference.RiskProfile)
				*_m.RiskProfile = chatpreference.RiskProfile(value.String)
			}
		case chatpreference.FieldNetwork:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field network", values[i])
			} else if value.Valid {
				_m.Network = new(string)
				*_m.Network = value.String
			}
		case chatpreference.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChatPreference.
// This includes values selected through modifiers, order, etc.
func (_m *ChatPreference) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ChatPreference.
// Note that you need to call ChatPreference.Unwrap() before calling this method if this ChatPreference
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChatPreference) Update() *ChatPreferenceUpdateOne {
	return NewChatPreferenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChatPreference entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChatPreference) Unwrap() *ChatPreference {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChatPreference is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChatPreference) String() string {
	var builder strings.Builder
	builder.WriteString("ChatPreference(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.ResponseStyle; v != nil {
		builder.WriteString("response_style=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RiskProfile; v != nil {
		builder.WriteString("risk_profile=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Network; v != nil {
		builder.WriteString("network=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ChatPreferences is a parsable slice of ChatPreference.
type ChatPreferences []*ChatPreference
