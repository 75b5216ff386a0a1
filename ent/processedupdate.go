// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/emissary-bot/emissary/ent/processedupdate"
)

// ProcessedUpdate is the model entity for the ProcessedUpdate schema.
type ProcessedUpdate struct {
	config `json:"-"`
	// ID of the ent.
	// Transport-assigned monotonically increasing update id
	ID int64 `json:"id,omitempty"`
	// Raw transport update payload
	Payload map[string]interface{} `json:"payload,omitempty"`
	// Status holds the value of the "status" field.
	Status processedupdate.Status `json:"status,omitempty"`
	// ReceivedAt holds the value of the "received_at" field.
	ReceivedAt time.Time `json:"received_at,omitempty"`
	// HandledAt holds the value of the "handled_at" field.
	HandledAt *time.Time `json:"handled_at,omitempty"`
	// Error holds the value of the "error" field.
	Error        *string `json:"error,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcessedUpdate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processedupdate.FieldPayload:
			values[i] = new([]byte)
		case processedupdate.FieldID:
			values[i] = new(sql.NullInt64)
		case processedupdate.FieldStatus, processedupdate.FieldError:
			values[i] = new(sql.NullString)
		case processedupdate.FieldReceivedAt, processedupdate.FieldHandledAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcessedUpdate fields.
func (_m *ProcessedUpdate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processedupdate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case processedupdate.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case processedupdate.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = processedupdate.Status(value.String)
			}
		case processedupdate.FieldReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at", values[i])
			} else if value.Valid {
				_m.ReceivedAt = value.Time
			}
		case processedupdate.FieldHandledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field handled_at", values[i])
			} else if value.Valid {
				_m.HandledAt = new(time.Time)
				*_m.HandledAt = value.Time
			}
		case processedupdate.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcessedUpdate.
// This includes values selected through modifiers, order, etc.
func (_m *ProcessedUpdate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProcessedUpdate.
// Note that you need to call ProcessedUpdate.Unwrap() before calling this method if this ProcessedUpdate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcessedUpdate) Update() *ProcessedUpdateUpdateOne {
	return NewProcessedUpdateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcessedUpdate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcessedUpdate) Unwrap() *ProcessedUpdate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProcessedUpdate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcessedUpdate) String() string {
	var builder strings.Builder
	builder.WriteString("ProcessedUpdate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("received_at=")
	builder.WriteString(_m.ReceivedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.HandledAt; v != nil {
		builder.WriteString("handled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ProcessedUpdates is a parsable slice of ProcessedUpdate.
type ProcessedUpdates []*ProcessedUpdate
