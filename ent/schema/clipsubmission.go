package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ClipSubmission holds the schema definition for a milestone declaration
// ("palier"): a clipper-declared view tier for an existing submission,
// reviewed by an admin.
type ClipSubmission struct {
	ent.Schema
}

// Fields of the ClipSubmission.
func (ClipSubmission) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Comment("Declaring clipper"),
		field.Int("mission_id").
			Comment("Mission of the underlying submission"),
		field.Int("submission_id").
			Comment("Submission the declared views belong to"),
		field.Int("palier").
			Comment("Declared milestone tier (10000, 100000 or 1000000 views)"),
		field.Int("views_declared").
			NonNegative().
			Comment("View count claimed by the clipper"),
		field.String("tiktok_link").
			NotEmpty().
			Comment("TikTok URL backing the declaration"),
		field.Enum("status").
			Values("pending", "approved", "rejected").
			Default("pending").
			Comment("Admin review status"),
		field.Int("reviewed_by").
			Optional().
			Nillable().
			Comment("Admin who decided the declaration"),
		field.Time("reviewed_at").
			Optional().
			Nillable().
			Comment("When the declaration was decided"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the ClipSubmission.
func (ClipSubmission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("clipper", User.Type).
			Ref("clip_submissions").
			Field("user_id").
			Unique().
			Required(),
		edge.From("mission", Mission.Type).
			Ref("clip_submissions").
			Field("mission_id").
			Unique().
			Required(),
		edge.From("submission", Submission.Type).
			Ref("milestones").
			Field("submission_id").
			Unique().
			Required(),
	}
}

// Indexes of the ClipSubmission.
func (ClipSubmission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user_id"),
		index.Fields("submission_id"),
		index.Fields("created_at"),
	}
}
