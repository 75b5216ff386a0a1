// Code generated by ent, DO NOT EDIT.

package userpreference

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/emissary-bot/emissary/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLTE(FieldID, id))
}

// Network applies equality check predicate on the "network" field. It's identical to NetworkEQ.
func Network(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldNetwork, v))
}

// WalletAddress applies equality check predicate on the "wallet_address" field. It's identical to WalletAddressEQ.
func WalletAddress(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldWalletAddress, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldUpdatedAt, v))
}

// ResponseStyleEQ applies the EQ predicate on the "response_style" field.
func ResponseStyleEQ(v ResponseStyle) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldResponseStyle, v))
}

// ResponseStyleNEQ applies the NEQ predicate on the "response_style" field.
func ResponseStyleNEQ(v ResponseStyle) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNEQ(FieldResponseStyle, v))
}

// ResponseStyleIn applies the In predicate on the "response_style" field.
func ResponseStyleIn(vs ...ResponseStyle) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIn(FieldResponseStyle, vs...))
}

// ResponseStyleNotIn applies the NotIn predicate on the "response_style" field.
func ResponseStyleNotIn(vs ...ResponseStyle) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotIn(FieldResponseStyle, vs...))
}

// RiskProfileEQ applies the EQ predicate on the "risk_profile" field.
func RiskProfileEQ(v RiskProfile) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldRiskProfile, v))
}

// RiskProfileNEQ applies the NEQ predicate on the "risk_profile" field.
func RiskProfileNEQ(v RiskProfile) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNEQ(FieldRiskProfile, v))
}

// RiskProfileIn applies the In predicate on the "risk_profile" field.
func RiskProfileIn(vs ...RiskProfile) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIn(FieldRiskProfile, vs...))
}

// RiskProfileNotIn applies the NotIn predicate on the "risk_profile" field.
func RiskProfileNotIn(vs ...RiskProfile) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotIn(FieldRiskProfile, vs...))
}

// NetworkEQ applies the EQ predicate on the "network" field.
func NetworkEQ(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldNetwork, v))
}

// NetworkNEQ applies the NEQ predicate on the "network" field.
func NetworkNEQ(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNEQ(FieldNetwork, v))
}

// NetworkIn applies the In predicate on the "network" field.
func NetworkIn(vs ...string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIn(FieldNetwork, vs...))
}

// NetworkNotIn applies the NotIn predicate on the "network" field.
func NetworkNotIn(vs ...string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotIn(FieldNetwork, vs...))
}

// NetworkGT applies the GT predicate on the "network" field.
func NetworkGT(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGT(FieldNetwork, v))
}

// NetworkGTE applies the GTE predicate on the "network" field.
func NetworkGTE(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGTE(FieldNetwork, v))
}

// NetworkLT applies the LT predicate on the "network" field.
func NetworkLT(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLT(FieldNetwork, v))
}

// NetworkLTE applies the LTE predicate on the "network" field.
func NetworkLTE(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLTE(FieldNetwork, v))
}

// NetworkContains applies the Contains predicate on the "network" field.
func NetworkContains(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldContains(FieldNetwork, v))
}

// NetworkHasPrefix applies the HasPrefix predicate on the "network" field.
func NetworkHasPrefix(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldHasPrefix(FieldNetwork, v))
}

// NetworkHasSuffix applies the HasSuffix predicate on the "network" field.
func NetworkHasSuffix(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldHasSuffix(FieldNetwork, v))
}

// NetworkEqualFold applies the EqualFold predicate on the "network" field.
func NetworkEqualFold(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEqualFold(FieldNetwork, v))
}

// NetworkContainsFold applies the ContainsFold predicate on the "network" field.
func NetworkContainsFold(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldContainsFold(FieldNetwork, v))
}

// WalletAddressEQ applies the EQ predicate on the "wallet_address" field.
func WalletAddressEQ(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldWalletAddress, v))
}

// WalletAddressNEQ applies the NEQ predicate on the "wallet_address" field.
func WalletAddressNEQ(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNEQ(FieldWalletAddress, v))
}

// WalletAddressIn applies the In predicate on the "wallet_address" field.
func WalletAddressIn(vs ...string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIn(FieldWalletAddress, vs...))
}

// WalletAddressNotIn applies the NotIn predicate on the "wallet_address" field.
func WalletAddressNotIn(vs ...string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotIn(FieldWalletAddress, vs...))
}

// WalletAddressGT applies the GT predicate on the "wallet_address" field.
func WalletAddressGT(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGT(FieldWalletAddress, v))
}

// WalletAddressGTE applies the GTE predicate on the "wallet_address" field.
func WalletAddressGTE(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGTE(FieldWalletAddress, v))
}

// WalletAddressLT applies the LT predicate on the "wallet_address" field.
func WalletAddressLT(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLT(FieldWalletAddress, v))
}

// WalletAddressLTE applies the LTE predicate on the "wallet_address" field.
func WalletAddressLTE(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLTE(FieldWalletAddress, v))
}

// WalletAddressContains applies the Contains predicate on the "wallet_address" field.
func WalletAddressContains(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldContains(FieldWalletAddress, v))
}

// WalletAddressHasPrefix applies the HasPrefix predicate on the "wallet_address" field.
func WalletAddressHasPrefix(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldHasPrefix(FieldWalletAddress, v))
}

// WalletAddressHasSuffix applies the HasSuffix predicate on the "wallet_address" field.
func WalletAddressHasSuffix(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldHasSuffix(FieldWalletAddress, v))
}

// WalletAddressIsNil applies the IsNil predicate on the "wallet_address" field.
func WalletAddressIsNil() predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIsNull(FieldWalletAddress))
}

// WalletAddressNotNil applies the NotNil predicate on the "wallet_address" field.
func WalletAddressNotNil() predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotNull(FieldWalletAddress))
}

// WalletAddressEqualFold applies the EqualFold predicate on the "wallet_address" field.
func WalletAddressEqualFold(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEqualFold(FieldWalletAddress, v))
}

// WalletAddressContainsFold applies the ContainsFold predicate on the "wallet_address" field.
func WalletAddressContainsFold(v string) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldContainsFold(FieldWalletAddress, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UserPreference {
	return predicate.UserPreference(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserPreference) predicate.UserPreference {
	return predicate.UserPreference(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserPreference) predicate.UserPreference {
	return predicate.UserPreference(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserPreference) predicate.UserPreference {
	return predicate.UserPreference(sql.NotPredicates(p))
}
