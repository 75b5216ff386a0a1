// Code generated by ent, DO NOT EDIT.

package chatpreference

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/emissary-bot/emissary/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldLTE(FieldID, id))
}

// Network applies equality check predicate on the "network" field. It's identical to NetworkEQ.
func Network(v string) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldEQ(FieldNetwork, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldEQ(FieldUpdatedAt, v))
}

// ResponseStyleEQ applies the EQ predicate on the "response_style" field.
func ResponseStyleEQ(v ResponseStyle) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldEQ(FieldResponseStyle, v))
}

// ResponseStyleNEQ applies the NEQ predicate on the "response_style" field.
func ResponseStyleNEQ(v ResponseStyle) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldNEQ(FieldResponseStyle, v))
}

// ResponseStyleIn applies the In predicate on the "response_style" field.
func ResponseStyleIn(vs ...ResponseStyle) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldIn(FieldResponseStyle, vs...))
}

// ResponseStyleNotIn applies the NotIn predicate on the "response_style" field.
func ResponseStyleNotIn(vs ...ResponseStyle) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldNotIn(FieldResponseStyle, vs...))
}

// ResponseStyleIsNil applies the IsNil predicate on the "response_style" field.
func ResponseStyleIsNil() predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldIsNull(FieldResponseStyle))
}

// ResponseStyleNotNil applies the NotNil predicate on the "response_style" field.
func ResponseStyleNotNil() predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldNotNull(FieldResponseStyle))
}

// RiskProfileEQ applies the EQ predicate on the "risk_profile" field.
func RiskProfileEQ(v RiskProfile) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldEQ(FieldRiskProfile, v))
}

// RiskProfileNEQ applies the NEQ predicate on the "risk_profile" field.
func RiskProfileNEQ(v RiskProfile) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldNEQ(FieldRiskProfile, v))
}

// RiskProfileIn applies the In predicate on the "risk_profile" field.
func RiskProfileIn(vs ...RiskProfile) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldIn(FieldRiskProfile, vs...))
}

// RiskProfileNotIn applies the NotIn predicate on the "risk_profile" field.
func RiskProfileNotIn(vs ...RiskProfile) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldNotIn(FieldRiskProfile, vs...))
}

// RiskProfileIsNil applies the IsNil predicate on the "risk_profile" field.
func RiskProfileIsNil() predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldIsNull(FieldRiskProfile))
}

// RiskProfileNotNil applies the NotNil predicate on the "risk_profile" field.
func RiskProfileNotNil() predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldNotNull(FieldRiskProfile))
}

// NetworkEQ applies the EQ predicate on the "network" field.
func NetworkEQ(v string) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldEQ(FieldNetwork, v))
}

// NetworkNEQ applies the NEQ predicate on the "network" field.
func NetworkNEQ(v string) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldNEQ(FieldNetwork, v))
}

// NetworkIn applies the In predicate on the "network" field.
func NetworkIn(vs ...string) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldIn(FieldNetwork, vs...))
}

// NetworkNotIn applies the NotIn predicate on the "network" field.
func NetworkNotIn(vs ...string) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldNotIn(FieldNetwork, vs...))
}

// NetworkGT applies the GT predicate on the "network" field.
func NetworkGT(v string) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldGT(FieldNetwork, v))
}

// NetworkGTE applies the GTE predicate on the "network" field.
func NetworkGTE(v string) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldGTE(FieldNetwork, v))
}

// NetworkLT applies the LT predicate on the "network" field.
func NetworkLT(v string) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldLT(FieldNetwork, v))
}

// NetworkLTE applies the LTE predicate on the "network" field.
func NetworkLTE(v string) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldLTE(FieldNetwork, v))
}

// NetworkContains applies the Contains predicate on the "network" field.
func NetworkContains(v string) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldContains(FieldNetwork, v))
}

// NetworkHasPrefix applies the HasPrefix predicate on the "network" field.
func NetworkHasPrefix(v string) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldHasPrefix(FieldNetwork, v))
}

// NetworkHasSuffix applies the HasSuffix predicate on the "network" field.
func NetworkHasSuffix(v string) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldHasSuffix(FieldNetwork, v))
}

// NetworkIsNil applies the IsNil predicate on the "network" field.
func NetworkIsNil() predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldIsNull(FieldNetwork))
}

// NetworkNotNil applies the NotNil predicate on the "network" field.
func NetworkNotNil() predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldNotNull(FieldNetwork))
}

// NetworkEqualFold applies the EqualFold predicate on the "network" field.
func NetworkEqualFold(v string) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldEqualFold(FieldNetwork, v))
}

// NetworkContainsFold applies the ContainsFold predicate on the "network" field.
func NetworkContainsFold(v string) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldContainsFold(FieldNetwork, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ChatPreference {
	return predicate.ChatPreference(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChatPreference) predicate.ChatPreference {
	return predicate.ChatPreference(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChatPreference) predicate.ChatPreference {
	return predicate.ChatPreference(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChatPreference) predicate.ChatPreference {
	return predicate.ChatPreference(sql.NotPredicates(p))
}
