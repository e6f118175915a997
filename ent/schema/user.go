package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			Comment("User email address"),
		field.String("password_hash").
			Sensitive().
			NotEmpty().
			Comment("Bcrypt hashed password"),
		field.String("pseudo").
			Unique().
			NotEmpty().
			Comment("Public display name, unique across the marketplace"),
		field.Enum("role").
			Values("admin", "creator", "clipper").
			Default("clipper").
			Comment("Marketplace role, assigned during onboarding"),
		field.String("tiktok_username").
			Optional().
			Nillable().
			Comment("Linked TikTok account handle"),
		field.String("avatar_url").
			Optional().
			Nillable().
			Comment("Public URL of the uploaded avatar"),
		field.String("payout_phone").
			Optional().
			Nillable().
			Comment("Contact phone required before payouts (E.164)"),
		field.Float("total_earnings").
			Default(0).
			Comment("Lifetime approved earnings in EUR"),
		field.String("stripe_customer_id").
			Optional().
			Nillable().
			Comment("Stripe customer ID for wallet recharges"),
		field.String("stripe_account_id").
			Optional().
			Nillable().
			Comment("Stripe Connect account ID for payouts"),
		field.Bool("email_verified").
			Default(false).
			Comment("Whether email is verified"),
		field.String("email_verification_token").
			Optional().
			Nillable().
			Sensitive().
			Comment("Token for email verification"),
		field.Time("email_verification_token_expires_at").
			Optional().
			Nillable().
			Comment("Expiration time for verification token"),
		field.Time("email_verified_at").
			Optional().
			Nillable().
			Comment("When email was verified"),
		field.Bool("onboarding_completed").
			Default(false).
			Comment("Whether role selection and profile setup are done"),
		field.Time("last_login_at").
			Optional().
			Nillable().
			Comment("Last login timestamp"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete timestamp"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("missions", Mission.Type).
			Comment("Missions funded by this creator"),
		edge.To("submissions", Submission.Type).
			Comment("Clips submitted by this clipper"),
		edge.To("clip_submissions", ClipSubmission.Type).
			Comment("Milestone declarations by this clipper"),
		edge.To("wallet_transactions", WalletTransaction.Type).
			Comment("Wallet ledger entries"),
		edge.To("audit_logs", AuditLog.Type).
			Comment("User's audit log entries"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
		index.Fields("role"),
		index.Fields("stripe_customer_id"),
		index.Fields("created_at"),
	}
}
