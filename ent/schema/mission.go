package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Mission holds the schema definition for the Mission entity.
// A mission is a creator-funded task paying clippers per 1000 views.
type Mission struct {
	ent.Schema
}

// Fields of the Mission.
func (Mission) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
			Comment("Mission title shown in the marketplace"),
		field.Text("description").
			Default("").
			Comment("What the creator expects from clips"),
		field.Int("creator_id").
			Comment("Owning creator user ID"),
		field.Float("price_per_1k_views").
			Comment("Payout rate in EUR per 1000 views"),
		field.Float("total_budget").
			Comment("Total budget in EUR, immutable after creation"),
		field.Float("spent").
			Default(0).
			Comment("Budget consumed by approved earnings"),
		field.Enum("status").
			Values("active", "paused", "completed").
			Default("active").
			Comment("Mission lifecycle status"),
		field.String("category").
			Default("general").
			Comment("Content category (gaming, lifestyle, ...)"),
		field.JSON("platforms", []string{}).
			Optional().
			Comment("Target platforms, e.g. [tiktok]"),
		field.String("source_video_url").
			Optional().
			Default("").
			Comment("Original video the clips should be cut from"),
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

// Edges of the Mission.
func (Mission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("creator", User.Type).
			Ref("missions").
			Field("creator_id").
			Unique().
			Required().
			Comment("Creator who funds this mission"),
		edge.To("submissions", Submission.Type).
			Comment("Clips submitted against this mission"),
		edge.To("clip_submissions", ClipSubmission.Type).
			Comment("Milestone declarations against this mission"),
	}
}

// Indexes of the Mission.
func (Mission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("category"),
		index.Fields("creator_id"),
		index.Fields("created_at"),
	}
}
