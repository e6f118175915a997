package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Submission holds the schema definition for the Submission entity.
// One clip per clipper per mission; views and status are written by the
// admin validation gate, never by the clipper.
type Submission struct {
	ent.Schema
}

// Fields of the Submission.
func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.Int("mission_id").
			Comment("Mission this clip was submitted against"),
		field.Int("user_id").
			Comment("Clipper who submitted the clip"),
		field.String("tiktok_url").
			NotEmpty().
			Comment("Public TikTok URL of the clip"),
		field.Int("views_count").
			Default(0).
			NonNegative().
			Comment("Validated view count, set on milestone approval"),
		field.Enum("status").
			Values("pending", "approved", "rejected", "paid").
			Default("pending").
			Comment("Validation lifecycle status"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Submission.
func (Submission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("mission", Mission.Type).
			Ref("submissions").
			Field("mission_id").
			Unique().
			Required(),
		edge.From("clipper", User.Type).
			Ref("submissions").
			Field("user_id").
			Unique().
			Required(),
		edge.To("milestones", ClipSubmission.Type).
			Comment("Milestone declarations for this clip"),
	}
}

// Indexes of the Submission.
func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		// One submission per clipper per mission.
		index.Fields("user_id", "mission_id").Unique(),
		index.Fields("mission_id"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
