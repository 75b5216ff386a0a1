// Code generated by ent, DO NOT EDIT.

package processedupdate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the processedupdate type in the database.
	Label = "processed_update"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "update_id"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldReceivedAt holds the string denoting the received_at field in the database.
	FieldReceivedAt = "received_at"
	// FieldHandledAt holds the string denoting the handled_at field in the database.
	FieldHandledAt = "handled_at"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// Table holds the table name of the processedupdate in the database.
	Table = "processed_updates"
)

// Columns holds all SQL columns for processedupdate fields.
var Columns = []string{
	FieldID,
	FieldPayload,
	FieldStatus,
	FieldReceivedAt,
	FieldHandledAt,
	FieldError,
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
	// DefaultReceivedAt holds the default value on creation for the "received_at" field.
	DefaultReceivedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusReceived is the default value of the Status enum.
const DefaultStatus = StatusReceived

// Status values.
const (
	StatusReceived  Status = "received"
	StatusEnqueued  Status = "enqueued"
	StatusProcessed Status = "processed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusReceived, StatusEnqueued, StatusProcessed, StatusFailed:
		return nil
	default:
		return fmt.Errorf("processedupdate: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ProcessedUpdate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByReceivedAt orders the results by the received_at field.
func ByReceivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedAt, opts...).ToFunc()
}

// ByHandledAt orders the results by the handled_at field.
func ByHandledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHandledAt, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}
