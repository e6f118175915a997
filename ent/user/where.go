// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cliptokk/api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// PasswordHash applies equality check predicate on the "password_hash" field. It's identical to PasswordHashEQ.
func PasswordHash(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordHash, v))
}

// Pseudo applies equality check predicate on the "pseudo" field. It's identical to PseudoEQ.
func Pseudo(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPseudo, v))
}

// TiktokUsername applies equality check predicate on the "tiktok_username" field. It's identical to TiktokUsernameEQ.
func TiktokUsername(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTiktokUsername, v))
}

// AvatarURL applies equality check predicate on the "avatar_url" field. It's identical to AvatarURLEQ.
func AvatarURL(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAvatarURL, v))
}

// PayoutPhone applies equality check predicate on the "payout_phone" field. It's identical to PayoutPhoneEQ.
func PayoutPhone(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPayoutPhone, v))
}

// TotalEarnings applies equality check predicate on the "total_earnings" field. It's identical to TotalEarningsEQ.
func TotalEarnings(v float64) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTotalEarnings, v))
}

// StripeCustomerID applies equality check predicate on the "stripe_customer_id" field. It's identical to StripeCustomerIDEQ.
func StripeCustomerID(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldStripeCustomerID, v))
}

// StripeAccountID applies equality check predicate on the "stripe_account_id" field. It's identical to StripeAccountIDEQ.
func StripeAccountID(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldStripeAccountID, v))
}

// EmailVerified applies equality check predicate on the "email_verified" field. It's identical to EmailVerifiedEQ.
func EmailVerified(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerified, v))
}

// EmailVerificationToken applies equality check predicate on the "email_verification_token" field. It's identical to EmailVerificationTokenEQ.
func EmailVerificationToken(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenExpiresAt applies equality check predicate on the "email_verification_token_expires_at" field. It's identical to EmailVerificationTokenExpiresAtEQ.
func EmailVerificationTokenExpiresAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerificationTokenExpiresAt, v))
}

// EmailVerifiedAt applies equality check predicate on the "email_verified_at" field. It's identical to EmailVerifiedAtEQ.
func EmailVerifiedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerifiedAt, v))
}

// OnboardingCompleted applies equality check predicate on the "onboarding_completed" field. It's identical to OnboardingCompletedEQ.
func OnboardingCompleted(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOnboardingCompleted, v))
}

// LastLoginAt applies equality check predicate on the "last_login_at" field. It's identical to LastLoginAtEQ.
func LastLoginAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLoginAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDeletedAt, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmail, v))
}

// PasswordHashEQ applies the EQ predicate on the "password_hash" field.
func PasswordHashEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordHash, v))
}

// PasswordHashNEQ applies the NEQ predicate on the "password_hash" field.
func PasswordHashNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPasswordHash, v))
}

// PasswordHashIn applies the In predicate on the "password_hash" field.
func PasswordHashIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldPasswordHash, vs...))
}

// PasswordHashNotIn applies the NotIn predicate on the "password_hash" field.
func PasswordHashNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPasswordHash, vs...))
}

// PasswordHashGT applies the GT predicate on the "password_hash" field.
func PasswordHashGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldPasswordHash, v))
}

// PasswordHashGTE applies the GTE predicate on the "password_hash" field.
func PasswordHashGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPasswordHash, v))
}

// PasswordHashLT applies the LT predicate on the "password_hash" field.
func PasswordHashLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldPasswordHash, v))
}

// PasswordHashLTE applies the LTE predicate on the "password_hash" field.
func PasswordHashLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPasswordHash, v))
}

// PasswordHashContains applies the Contains predicate on the "password_hash" field.
func PasswordHashContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldPasswordHash, v))
}

// PasswordHashHasPrefix applies the HasPrefix predicate on the "password_hash" field.
func PasswordHashHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldPasswordHash, v))
}

// PasswordHashHasSuffix applies the HasSuffix predicate on the "password_hash" field.
func PasswordHashHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldPasswordHash, v))
}

// PasswordHashEqualFold applies the EqualFold predicate on the "password_hash" field.
func PasswordHashEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldPasswordHash, v))
}

// PasswordHashContainsFold applies the ContainsFold predicate on the "password_hash" field.
func PasswordHashContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldPasswordHash, v))
}

// PseudoEQ applies the EQ predicate on the "pseudo" field.
func PseudoEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPseudo, v))
}

// PseudoNEQ applies the NEQ predicate on the "pseudo" field.
func PseudoNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPseudo, v))
}

// PseudoIn applies the In predicate on the "pseudo" field.
func PseudoIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldPseudo, vs...))
}

// PseudoNotIn applies the NotIn predicate on the "pseudo" field.
func PseudoNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPseudo, vs...))
}

// PseudoGT applies the GT predicate on the "pseudo" field.
func PseudoGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldPseudo, v))
}

// PseudoGTE applies the GTE predicate on the "pseudo" field.
func PseudoGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPseudo, v))
}

// PseudoLT applies the LT predicate on the "pseudo" field.
func PseudoLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldPseudo, v))
}

// PseudoLTE applies the LTE predicate on the "pseudo" field.
func PseudoLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPseudo, v))
}

// PseudoContains applies the Contains predicate on the "pseudo" field.
func PseudoContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldPseudo, v))
}

// PseudoHasPrefix applies the HasPrefix predicate on the "pseudo" field.
func PseudoHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldPseudo, v))
}

// PseudoHasSuffix applies the HasSuffix predicate on the "pseudo" field.
func PseudoHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldPseudo, v))
}

// PseudoEqualFold applies the EqualFold predicate on the "pseudo" field.
func PseudoEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldPseudo, v))
}

// PseudoContainsFold applies the ContainsFold predicate on the "pseudo" field.
func PseudoContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldPseudo, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.User {
	return predicate.User(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.User {
	return predicate.User(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldRole, vs...))
}

// TiktokUsernameEQ applies the EQ predicate on the "tiktok_username" field.
func TiktokUsernameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTiktokUsername, v))
}

// TiktokUsernameNEQ applies the NEQ predicate on the "tiktok_username" field.
func TiktokUsernameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldTiktokUsername, v))
}

// TiktokUsernameIn applies the In predicate on the "tiktok_username" field.
func TiktokUsernameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldTiktokUsername, vs...))
}

// TiktokUsernameNotIn applies the NotIn predicate on the "tiktok_username" field.
func TiktokUsernameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldTiktokUsername, vs...))
}

// TiktokUsernameGT applies the GT predicate on the "tiktok_username" field.
func TiktokUsernameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldTiktokUsername, v))
}

// TiktokUsernameGTE applies the GTE predicate on the "tiktok_username" field.
func TiktokUsernameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldTiktokUsername, v))
}

// TiktokUsernameLT applies the LT predicate on the "tiktok_username" field.
func TiktokUsernameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldTiktokUsername, v))
}

// TiktokUsernameLTE applies the LTE predicate on the "tiktok_username" field.
func TiktokUsernameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldTiktokUsername, v))
}

// TiktokUsernameContains applies the Contains predicate on the "tiktok_username" field.
func TiktokUsernameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldTiktokUsername, v))
}

// TiktokUsernameHasPrefix applies the HasPrefix predicate on the "tiktok_username" field.
func TiktokUsernameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldTiktokUsername, v))
}

// TiktokUsernameHasSuffix applies the HasSuffix predicate on the "tiktok_username" field.
func TiktokUsernameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldTiktokUsername, v))
}

// TiktokUsernameIsNil applies the IsNil predicate on the "tiktok_username" field.
func TiktokUsernameIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldTiktokUsername))
}

// TiktokUsernameNotNil applies the NotNil predicate on the "tiktok_username" field.
func TiktokUsernameNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldTiktokUsername))
}

// TiktokUsernameEqualFold applies the EqualFold predicate on the "tiktok_username" field.
func TiktokUsernameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldTiktokUsername, v))
}

// TiktokUsernameContainsFold applies the ContainsFold predicate on the "tiktok_username" field.
func TiktokUsernameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldTiktokUsername, v))
}

// AvatarURLEQ applies the EQ predicate on the "avatar_url" field.
func AvatarURLEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAvatarURL, v))
}

// AvatarURLNEQ applies the NEQ predicate on the "avatar_url" field.
func AvatarURLNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldAvatarURL, v))
}

// AvatarURLIn applies the In predicate on the "avatar_url" field.
func AvatarURLIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldAvatarURL, vs...))
}

// AvatarURLNotIn applies the NotIn predicate on the "avatar_url" field.
func AvatarURLNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldAvatarURL, vs...))
}

// AvatarURLGT applies the GT predicate on the "avatar_url" field.
func AvatarURLGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldAvatarURL, v))
}

// AvatarURLGTE applies the GTE predicate on the "avatar_url" field.
func AvatarURLGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldAvatarURL, v))
}

// AvatarURLLT applies the LT predicate on the "avatar_url" field.
func AvatarURLLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldAvatarURL, v))
}

// AvatarURLLTE applies the LTE predicate on the "avatar_url" field.
func AvatarURLLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldAvatarURL, v))
}

// AvatarURLContains applies the Contains predicate on the "avatar_url" field.
func AvatarURLContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldAvatarURL, v))
}

// AvatarURLHasPrefix applies the HasPrefix predicate on the "avatar_url" field.
func AvatarURLHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldAvatarURL, v))
}

// AvatarURLHasSuffix applies the HasSuffix predicate on the "avatar_url" field.
func AvatarURLHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldAvatarURL, v))
}

// AvatarURLIsNil applies the IsNil predicate on the "avatar_url" field.
func AvatarURLIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldAvatarURL))
}

// AvatarURLNotNil applies the NotNil predicate on the "avatar_url" field.
func AvatarURLNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldAvatarURL))
}

// AvatarURLEqualFold applies the EqualFold predicate on the "avatar_url" field.
func AvatarURLEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldAvatarURL, v))
}

// AvatarURLContainsFold applies the ContainsFold predicate on the "avatar_url" field.
func AvatarURLContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldAvatarURL, v))
}

// PayoutPhoneEQ applies the EQ predicate on the "payout_phone" field.
func PayoutPhoneEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPayoutPhone, v))
}

// PayoutPhoneNEQ applies the NEQ predicate on the "payout_phone" field.
func PayoutPhoneNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPayoutPhone, v))
}

// PayoutPhoneIn applies the In predicate on the "payout_phone" field.
func PayoutPhoneIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldPayoutPhone, vs...))
}

// PayoutPhoneNotIn applies the NotIn predicate on the "payout_phone" field.
func PayoutPhoneNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPayoutPhone, vs...))
}

// PayoutPhoneGT applies the GT predicate on the "payout_phone" field.
func PayoutPhoneGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldPayoutPhone, v))
}

// PayoutPhoneGTE applies the GTE predicate on the "payout_phone" field.
func PayoutPhoneGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPayoutPhone, v))
}

// PayoutPhoneLT applies the LT predicate on the "payout_phone" field.
func PayoutPhoneLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldPayoutPhone, v))
}

// PayoutPhoneLTE applies the LTE predicate on the "payout_phone" field.
func PayoutPhoneLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPayoutPhone, v))
}

// PayoutPhoneContains applies the Contains predicate on the "payout_phone" field.
func PayoutPhoneContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldPayoutPhone, v))
}

// PayoutPhoneHasPrefix applies the HasPrefix predicate on the "payout_phone" field.
func PayoutPhoneHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldPayoutPhone, v))
}

// PayoutPhoneHasSuffix applies the HasSuffix predicate on the "payout_phone" field.
func PayoutPhoneHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldPayoutPhone, v))
}

// PayoutPhoneIsNil applies the IsNil predicate on the "payout_phone" field.
func PayoutPhoneIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldPayoutPhone))
}

// PayoutPhoneNotNil applies the NotNil predicate on the "payout_phone" field.
func PayoutPhoneNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldPayoutPhone))
}

// PayoutPhoneEqualFold applies the EqualFold predicate on the "payout_phone" field.
func PayoutPhoneEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldPayoutPhone, v))
}

// PayoutPhoneContainsFold applies the ContainsFold predicate on the "payout_phone" field.
func PayoutPhoneContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldPayoutPhone, v))
}

// TotalEarningsEQ applies the EQ predicate on the "total_earnings" field.
func TotalEarningsEQ(v float64) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTotalEarnings, v))
}

// TotalEarningsNEQ applies the NEQ predicate on the "total_earnings" field.
func TotalEarningsNEQ(v float64) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldTotalEarnings, v))
}

// TotalEarningsIn applies the In predicate on the "total_earnings" field.
func TotalEarningsIn(vs ...float64) predicate.User {
	return predicate.User(sql.FieldIn(FieldTotalEarnings, vs...))
}

// TotalEarningsNotIn applies the NotIn predicate on the "total_earnings" field.
func TotalEarningsNotIn(vs ...float64) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldTotalEarnings, vs...))
}

// TotalEarningsGT applies the GT predicate on the "total_earnings" field.
func TotalEarningsGT(v float64) predicate.User {
	return predicate.User(sql.FieldGT(FieldTotalEarnings, v))
}

// TotalEarningsGTE applies the GTE predicate on the "total_earnings" field.
func TotalEarningsGTE(v float64) predicate.User {
	return predicate.User(sql.FieldGTE(FieldTotalEarnings, v))
}

// TotalEarningsLT applies the LT predicate on the "total_earnings" field.
func TotalEarningsLT(v float64) predicate.User {
	return predicate.User(sql.FieldLT(FieldTotalEarnings, v))
}

// TotalEarningsLTE applies the LTE predicate on the "total_earnings" field.
func TotalEarningsLTE(v float64) predicate.User {
	return predicate.User(sql.FieldLTE(FieldTotalEarnings, v))
}

// StripeCustomerIDEQ applies the EQ predicate on the "stripe_customer_id" field.
func StripeCustomerIDEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldStripeCustomerID, v))
}

// StripeCustomerIDNEQ applies the NEQ predicate on the "stripe_customer_id" field.
func StripeCustomerIDNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldStripeCustomerID, v))
}

// StripeCustomerIDIn applies the In predicate on the "stripe_customer_id" field.
func StripeCustomerIDIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldStripeCustomerID, vs...))
}

// StripeCustomerIDNotIn applies the NotIn predicate on the "stripe_customer_id" field.
func StripeCustomerIDNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldStripeCustomerID, vs...))
}

// StripeCustomerIDGT applies the GT predicate on the "stripe_customer_id" field.
func StripeCustomerIDGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldStripeCustomerID, v))
}

// StripeCustomerIDGTE applies the GTE predicate on the "stripe_customer_id" field.
func StripeCustomerIDGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldStripeCustomerID, v))
}

// StripeCustomerIDLT applies the LT predicate on the "stripe_customer_id" field.
func StripeCustomerIDLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldStripeCustomerID, v))
}

// StripeCustomerIDLTE applies the LTE predicate on the "stripe_customer_id" field.
func StripeCustomerIDLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldStripeCustomerID, v))
}

// StripeCustomerIDContains applies the Contains predicate on the "stripe_customer_id" field.
func StripeCustomerIDContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldStripeCustomerID, v))
}

// StripeCustomerIDHasPrefix applies the HasPrefix predicate on the "stripe_customer_id" field.
func StripeCustomerIDHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldStripeCustomerID, v))
}

// StripeCustomerIDHasSuffix applies the HasSuffix predicate on the "stripe_customer_id" field.
func StripeCustomerIDHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldStripeCustomerID, v))
}

// StripeCustomerIDIsNil applies the IsNil predicate on the "stripe_customer_id" field.
func StripeCustomerIDIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldStripeCustomerID))
}

// StripeCustomerIDNotNil applies the NotNil predicate on the "stripe_customer_id" field.
func StripeCustomerIDNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldStripeCustomerID))
}

// StripeCustomerIDEqualFold applies the EqualFold predicate on the "stripe_customer_id" field.
func StripeCustomerIDEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldStripeCustomerID, v))
}

// StripeCustomerIDContainsFold applies the ContainsFold predicate on the "stripe_customer_id" field.
func StripeCustomerIDContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldStripeCustomerID, v))
}

// StripeAccountIDEQ applies the EQ predicate on the "stripe_account_id" field.
func StripeAccountIDEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldStripeAccountID, v))
}

// StripeAccountIDNEQ applies the NEQ predicate on the "stripe_account_id" field.
func StripeAccountIDNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldStripeAccountID, v))
}

// StripeAccountIDIn applies the In predicate on the "stripe_account_id" field.
func StripeAccountIDIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldStripeAccountID, vs...))
}

// StripeAccountIDNotIn applies the NotIn predicate on the "stripe_account_id" field.
func StripeAccountIDNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldStripeAccountID, vs...))
}

// StripeAccountIDGT applies the GT predicate on the "stripe_account_id" field.
func StripeAccountIDGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldStripeAccountID, v))
}

// StripeAccountIDGTE applies the GTE predicate on the "stripe_account_id" field.
func StripeAccountIDGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldStripeAccountID, v))
}

// StripeAccountIDLT applies the LT predicate on the "stripe_account_id" field.
func StripeAccountIDLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldStripeAccountID, v))
}

// StripeAccountIDLTE applies the LTE predicate on the "stripe_account_id" field.
func StripeAccountIDLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldStripeAccountID, v))
}

// StripeAccountIDContains applies the Contains predicate on the "stripe_account_id" field.
func StripeAccountIDContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldStripeAccountID, v))
}

// StripeAccountIDHasPrefix applies the HasPrefix predicate on the "stripe_account_id" field.
func StripeAccountIDHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldStripeAccountID, v))
}

// StripeAccountIDHasSuffix applies the HasSuffix predicate on the "stripe_account_id" field.
func StripeAccountIDHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldStripeAccountID, v))
}

// StripeAccountIDIsNil applies the IsNil predicate on the "stripe_account_id" field.
func StripeAccountIDIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldStripeAccountID))
}

// StripeAccountIDNotNil applies the NotNil predicate on the "stripe_account_id" field.
func StripeAccountIDNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldStripeAccountID))
}

// StripeAccountIDEqualFold applies the EqualFold predicate on the "stripe_account_id" field.
func StripeAccountIDEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldStripeAccountID, v))
}

// StripeAccountIDContainsFold applies the ContainsFold predicate on the "stripe_account_id" field.
func StripeAccountIDContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldStripeAccountID, v))
}

// EmailVerifiedEQ applies the EQ predicate on the "email_verified" field.
func EmailVerifiedEQ(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerified, v))
}

// EmailVerifiedNEQ applies the NEQ predicate on the "email_verified" field.
func EmailVerifiedNEQ(v bool) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmailVerified, v))
}

// EmailVerificationTokenEQ applies the EQ predicate on the "email_verification_token" field.
func EmailVerificationTokenEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenNEQ applies the NEQ predicate on the "email_verification_token" field.
func EmailVerificationTokenNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenIn applies the In predicate on the "email_verification_token" field.
func EmailVerificationTokenIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmailVerificationToken, vs...))
}

// EmailVerificationTokenNotIn applies the NotIn predicate on the "email_verification_token" field.
func EmailVerificationTokenNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmailVerificationToken, vs...))
}

// EmailVerificationTokenGT applies the GT predicate on the "email_verification_token" field.
func EmailVerificationTokenGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenGTE applies the GTE predicate on the "email_verification_token" field.
func EmailVerificationTokenGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenLT applies the LT predicate on the "email_verification_token" field.
func EmailVerificationTokenLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenLTE applies the LTE predicate on the "email_verification_token" field.
func EmailVerificationTokenLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenContains applies the Contains predicate on the "email_verification_token" field.
func EmailVerificationTokenContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenHasPrefix applies the HasPrefix predicate on the "email_verification_token" field.
func EmailVerificationTokenHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenHasSuffix applies the HasSuffix predicate on the "email_verification_token" field.
func EmailVerificationTokenHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenIsNil applies the IsNil predicate on the "email_verification_token" field.
func EmailVerificationTokenIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldEmailVerificationToken))
}

// EmailVerificationTokenNotNil applies the NotNil predicate on the "email_verification_token" field.
func EmailVerificationTokenNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldEmailVerificationToken))
}

// EmailVerificationTokenEqualFold applies the EqualFold predicate on the "email_verification_token" field.
func EmailVerificationTokenEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenContainsFold applies the ContainsFold predicate on the "email_verification_token" field.
func EmailVerificationTokenContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenExpiresAtEQ applies the EQ predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerificationTokenExpiresAt, v))
}

// EmailVerificationTokenExpiresAtNEQ applies the NEQ predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmailVerificationTokenExpiresAt, v))
}

// EmailVerificationTokenExpiresAtIn applies the In predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmailVerificationTokenExpiresAt, vs...))
}

// EmailVerificationTokenExpiresAtNotIn applies the NotIn predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmailVerificationTokenExpiresAt, vs...))
}

// EmailVerificationTokenExpiresAtGT applies the GT predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmailVerificationTokenExpiresAt, v))
}

// EmailVerificationTokenExpiresAtGTE applies the GTE predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmailVerificationTokenExpiresAt, v))
}

// EmailVerificationTokenExpiresAtLT applies the LT predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmailVerificationTokenExpiresAt, v))
}

// EmailVerificationTokenExpiresAtLTE applies the LTE predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmailVerificationTokenExpiresAt, v))
}

// EmailVerificationTokenExpiresAtIsNil applies the IsNil predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldEmailVerificationTokenExpiresAt))
}

// EmailVerificationTokenExpiresAtNotNil applies the NotNil predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldEmailVerificationTokenExpiresAt))
}

// EmailVerifiedAtEQ applies the EQ predicate on the "email_verified_at" field.
func EmailVerifiedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerifiedAt, v))
}

// EmailVerifiedAtNEQ applies the NEQ predicate on the "email_verified_at" field.
func EmailVerifiedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmailVerifiedAt, v))
}

// EmailVerifiedAtIn applies the In predicate on the "email_verified_at" field.
func EmailVerifiedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmailVerifiedAt, vs...))
}

// EmailVerifiedAtNotIn applies the NotIn predicate on the "email_verified_at" field.
func EmailVerifiedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmailVerifiedAt, vs...))
}

// EmailVerifiedAtGT applies the GT predicate on the "email_verified_at" field.
func EmailVerifiedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmailVerifiedAt, v))
}

// EmailVerifiedAtGTE applies the GTE predicate on the "email_verified_at" field.
func EmailVerifiedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmailVerifiedAt, v))
}

// EmailVerifiedAtLT applies the LT predicate on the "email_verified_at" field.
func EmailVerifiedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmailVerifiedAt, v))
}

// EmailVerifiedAtLTE applies the LTE predicate on the "email_verified_at" field.
func EmailVerifiedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmailVerifiedAt, v))
}

// EmailVerifiedAtIsNil applies the IsNil predicate on the "email_verified_at" field.
func EmailVerifiedAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldEmailVerifiedAt))
}

// EmailVerifiedAtNotNil applies the NotNil predicate on the "email_verified_at" field.
func EmailVerifiedAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldEmailVerifiedAt))
}

// OnboardingCompletedEQ applies the EQ predicate on the "onboarding_completed" field.
func OnboardingCompletedEQ(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOnboardingCompleted, v))
}

// OnboardingCompletedNEQ applies the NEQ predicate on the "onboarding_completed" field.
func OnboardingCompletedNEQ(v bool) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldOnboardingCompleted, v))
}

// LastLoginAtEQ applies the EQ predicate on the "last_login_at" field.
func LastLoginAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLoginAt, v))
}

// LastLoginAtNEQ applies the NEQ predicate on the "last_login_at" field.
func LastLoginAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLastLoginAt, v))
}

// LastLoginAtIn applies the In predicate on the "last_login_at" field.
func LastLoginAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldLastLoginAt, vs...))
}

// LastLoginAtNotIn applies the NotIn predicate on the "last_login_at" field.
func LastLoginAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLastLoginAt, vs...))
}

// LastLoginAtGT applies the GT predicate on the "last_login_at" field.
func LastLoginAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldLastLoginAt, v))
}

// LastLoginAtGTE applies the GTE predicate on the "last_login_at" field.
func LastLoginAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLastLoginAt, v))
}

// LastLoginAtLT applies the LT predicate on the "last_login_at" field.
func LastLoginAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldLastLoginAt, v))
}

// LastLoginAtLTE applies the LTE predicate on the "last_login_at" field.
func LastLoginAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLastLoginAt, v))
}

// LastLoginAtIsNil applies the IsNil predicate on the "last_login_at" field.
func LastLoginAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldLastLoginAt))
}

// LastLoginAtNotNil applies the NotNil predicate on the "last_login_at" field.
func LastLoginAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldLastLoginAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldDeletedAt))
}

// HasMissions applies the HasEdge predicate on the "missions" edge.
func HasMissions() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MissionsTable, MissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMissionsWith applies the HasEdge predicate on the "missions" edge with a given conditions (other predicates).
func HasMissionsWith(preds ...predicate.Mission) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newMissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubmissions applies the HasEdge predicate on the "submissions" edge.
func HasSubmissions() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubmissionsTable, SubmissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionsWith applies the HasEdge predicate on the "submissions" edge with a given conditions (other predicates).
func HasSubmissionsWith(preds ...predicate.Submission) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newSubmissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasClipSubmissions applies the HasEdge predicate on the "clip_submissions" edge.
func HasClipSubmissions() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ClipSubmissionsTable, ClipSubmissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClipSubmissionsWith applies the HasEdge predicate on the "clip_submissions" edge with a given conditions (other predicates).
func HasClipSubmissionsWith(preds ...predicate.ClipSubmission) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newClipSubmissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWalletTransactions applies the HasEdge predicate on the "wallet_transactions" edge.
func HasWalletTransactions() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WalletTransactionsTable, WalletTransactionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWalletTransactionsWith applies the HasEdge predicate on the "wallet_transactions" edge with a given conditions (other predicates).
func HasWalletTransactionsWith(preds ...predicate.WalletTransaction) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newWalletTransactionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuditLogs applies the HasEdge predicate on the "audit_logs" edge.
func HasAuditLogs() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuditLogsTable, AuditLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditLogsWith applies the HasEdge predicate on the "audit_logs" edge with a given conditions (other predicates).
func HasAuditLogsWith(preds ...predicate.AuditLog) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newAuditLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
