// Code generated by ent, DO NOT EDIT.

package processedupdate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/emissary-bot/emissary/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldLTE(FieldID, id))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldEQ(FieldReceivedAt, v))
}

// HandledAt applies equality check predicate on the "handled_at" field. It's identical to HandledAtEQ.
func HandledAt(v time.Time) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldEQ(FieldHandledAt, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldEQ(FieldError, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldNotIn(FieldStatus, vs...))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldLTE(FieldReceivedAt, v))
}

// HandledAtEQ applies the EQ predicate on the "handled_at" field.
func HandledAtEQ(v time.Time) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldEQ(FieldHandledAt, v))
}

// HandledAtNEQ applies the NEQ predicate on the "handled_at" field.
func HandledAtNEQ(v time.Time) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldNEQ(FieldHandledAt, v))
}

// HandledAtIn applies the In predicate on the "handled_at" field.
func HandledAtIn(vs ...time.Time) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldIn(FieldHandledAt, vs...))
}

// HandledAtNotIn applies the NotIn predicate on the "handled_at" field.
func HandledAtNotIn(vs ...time.Time) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldNotIn(FieldHandledAt, vs...))
}

// HandledAtGT applies the GT predicate on the "handled_at" field.
func HandledAtGT(v time.Time) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldGT(FieldHandledAt, v))
}

// HandledAtGTE applies the GTE predicate on the "handled_at" field.
func HandledAtGTE(v time.Time) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldGTE(FieldHandledAt, v))
}

// HandledAtLT applies the LT predicate on the "handled_at" field.
func HandledAtLT(v time.Time) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldLT(FieldHandledAt, v))
}

// HandledAtLTE applies the LTE predicate on the "handled_at" field.
func HandledAtLTE(v time.Time) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldLTE(FieldHandledAt, v))
}

// HandledAtIsNil applies the IsNil predicate on the "handled_at" field.
func HandledAtIsNil() predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldIsNull(FieldHandledAt))
}

// HandledAtNotNil applies the NotNil predicate on the "handled_at" field.
func HandledAtNotNil() predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldNotNull(FieldHandledAt))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.FieldContainsFold(FieldError, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessedUpdate) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessedUpdate) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessedUpdate) predicate.ProcessedUpdate {
	return predicate.ProcessedUpdate(sql.NotPredicates(p))
}
