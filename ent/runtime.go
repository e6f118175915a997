// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cliptokk/api/ent/auditlog"
	"github.com/cliptokk/api/ent/clipsubmission"
	"github.com/cliptokk/api/ent/mission"
	"github.com/cliptokk/api/ent/schema"
	"github.com/cliptokk/api/ent/submission"
	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/ent/wallettransaction"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[9].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	clipsubmissionFields := schema.ClipSubmission{}.Fields()
	_ = clipsubmissionFields
	// clipsubmissionDescViewsDeclared is the schema descriptor for views_declared field.
	clipsubmissionDescViewsDeclared := clipsubmissionFields[4].Descriptor()
	// clipsubmission.ViewsDeclaredValidator is a validator for the "views_declared" field. It is called by the builders before save.
	clipsubmission.ViewsDeclaredValidator = clipsubmissionDescViewsDeclared.Validators[0].(func(int) error)
	// clipsubmissionDescTiktokLink is the schema descriptor for tiktok_link field.
	clipsubmissionDescTiktokLink := clipsubmissionFields[5].Descriptor()
	// clipsubmission.TiktokLinkValidator is a validator for the "tiktok_link" field. It is called by the builders before save.
	clipsubmission.TiktokLinkValidator = clipsubmissionDescTiktokLink.Validators[0].(func(string) error)
	// clipsubmissionDescCreatedAt is the schema descriptor for created_at field.
	clipsubmissionDescCreatedAt := clipsubmissionFields[9].Descriptor()
	// clipsubmission.DefaultCreatedAt holds the default value on creation for the created_at field.
	clipsubmission.DefaultCreatedAt = clipsubmissionDescCreatedAt.Default.(func() time.Time)
	missionFields := schema.Mission{}.Fields()
	_ = missionFields
	// missionDescTitle is the schema descriptor for title field.
	missionDescTitle := missionFields[0].Descriptor()
	// mission.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	mission.TitleValidator = missionDescTitle.Validators[0].(func(string) error)
	// missionDescDescription is the schema descriptor for description field.
	missionDescDescription := missionFields[1].Descriptor()
	// mission.DefaultDescription holds the default value on creation for the description field.
	mission.DefaultDescription = missionDescDescription.Default.(string)
	// missionDescSpent is the schema descriptor for spent field.
	missionDescSpent := missionFields[5].Descriptor()
	// mission.DefaultSpent holds the default value on creation for the spent field.
	mission.DefaultSpent = missionDescSpent.Default.(float64)
	// missionDescCategory is the schema descriptor for category field.
	missionDescCategory := missionFields[7].Descriptor()
	// mission.DefaultCategory holds the default value on creation for the category field.
	mission.DefaultCategory = missionDescCategory.Default.(string)
	// missionDescSourceVideoURL is the schema descriptor for source_video_url field.
	missionDescSourceVideoURL := missionFields[9].Descriptor()
	// mission.DefaultSourceVideoURL holds the default value on creation for the source_video_url field.
	mission.DefaultSourceVideoURL = missionDescSourceVideoURL.Default.(string)
	// missionDescCreatedAt is the schema descriptor for created_at field.
	missionDescCreatedAt := missionFields[10].Descriptor()
	// mission.DefaultCreatedAt holds the default value on creation for the created_at field.
	mission.DefaultCreatedAt = missionDescCreatedAt.Default.(func() time.Time)
	// missionDescUpdatedAt is the schema descriptor for updated_at field.
	missionDescUpdatedAt := missionFields[11].Descriptor()
	// mission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mission.DefaultUpdatedAt = missionDescUpdatedAt.Default.(func() time.Time)
	// mission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mission.UpdateDefaultUpdatedAt = missionDescUpdatedAt.UpdateDefault.(func() time.Time)
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescTiktokURL is the schema descriptor for tiktok_url field.
	submissionDescTiktokURL := submissionFields[2].Descriptor()
	// submission.TiktokURLValidator is a validator for the "tiktok_url" field. It is called by the builders before save.
	submission.TiktokURLValidator = submissionDescTiktokURL.Validators[0].(func(string) error)
	// submissionDescViewsCount is the schema descriptor for views_count field.
	submissionDescViewsCount := submissionFields[3].Descriptor()
	// submission.DefaultViewsCount holds the default value on creation for the views_count field.
	submission.DefaultViewsCount = submissionDescViewsCount.Default.(int)
	// submission.ViewsCountValidator is a validator for the "views_count" field. It is called by the builders before save.
	submission.ViewsCountValidator = submissionDescViewsCount.Validators[0].(func(int) error)
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionFields[5].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescUpdatedAt is the schema descriptor for updated_at field.
	submissionDescUpdatedAt := submissionFields[6].Descriptor()
	// submission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	submission.DefaultUpdatedAt = submissionDescUpdatedAt.Default.(func() time.Time)
	// submission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	submission.UpdateDefaultUpdatedAt = submissionDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescPseudo is the schema descriptor for pseudo field.
	userDescPseudo := userFields[2].Descriptor()
	// user.PseudoValidator is a validator for the "pseudo" field. It is called by the builders before save.
	user.PseudoValidator = userDescPseudo.Validators[0].(func(string) error)
	// userDescTotalEarnings is the schema descriptor for total_earnings field.
	userDescTotalEarnings := userFields[7].Descriptor()
	// user.DefaultTotalEarnings holds the default value on creation for the total_earnings field.
	user.DefaultTotalEarnings = userDescTotalEarnings.Default.(float64)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[10].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescOnboardingCompleted is the schema descriptor for onboarding_completed field.
	userDescOnboardingCompleted := userFields[14].Descriptor()
	// user.DefaultOnboardingCompleted holds the default value on creation for the onboarding_completed field.
	user.DefaultOnboardingCompleted = userDescOnboardingCompleted.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[16].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[17].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	wallettransactionFields := schema.WalletTransaction{}.Fields()
	_ = wallettransactionFields
	// wallettransactionDescReference is the schema descriptor for reference field.
	wallettransactionDescReference := wallettransactionFields[4].Descriptor()
	// wallettransaction.DefaultReference holds the default value on creation for the reference field.
	wallettransaction.DefaultReference = wallettransactionDescReference.Default.(string)
	// wallettransactionDescDescription is the schema descriptor for description field.
	wallettransactionDescDescription := wallettransactionFields[5].Descriptor()
	// wallettransaction.DefaultDescription holds the default value on creation for the description field.
	wallettransaction.DefaultDescription = wallettransactionDescDescription.Default.(string)
	// wallettransactionDescCreatedAt is the schema descriptor for created_at field.
	wallettransactionDescCreatedAt := wallettransactionFields[6].Descriptor()
	// wallettransaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	wallettransaction.DefaultCreatedAt = wallettransactionDescCreatedAt.Default.(func() time.Time)
}
