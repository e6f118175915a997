// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cliptokk/api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldID, id))
}

// MissionID applies equality check predicate on the "mission_id" field. It's identical to MissionIDEQ.
func MissionID(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldMissionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUserID, v))
}

// TiktokURL applies equality check predicate on the "tiktok_url" field. It's identical to TiktokURLEQ.
func TiktokURL(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTiktokURL, v))
}

// ViewsCount applies equality check predicate on the "views_count" field. It's identical to ViewsCountEQ.
func ViewsCount(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldViewsCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// MissionIDEQ applies the EQ predicate on the "mission_id" field.
func MissionIDEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldMissionID, v))
}

// MissionIDNEQ applies the NEQ predicate on the "mission_id" field.
func MissionIDNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldMissionID, v))
}

// MissionIDIn applies the In predicate on the "mission_id" field.
func MissionIDIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldMissionID, vs...))
}

// MissionIDNotIn applies the NotIn predicate on the "mission_id" field.
func MissionIDNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldMissionID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldUserID, vs...))
}

// TiktokURLEQ applies the EQ predicate on the "tiktok_url" field.
func TiktokURLEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldTiktokURL, v))
}

// TiktokURLNEQ applies the NEQ predicate on the "tiktok_url" field.
func TiktokURLNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldTiktokURL, v))
}

// TiktokURLIn applies the In predicate on the "tiktok_url" field.
func TiktokURLIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldTiktokURL, vs...))
}

// TiktokURLNotIn applies the NotIn predicate on the "tiktok_url" field.
func TiktokURLNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldTiktokURL, vs...))
}

// TiktokURLGT applies the GT predicate on the "tiktok_url" field.
func TiktokURLGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldTiktokURL, v))
}

// TiktokURLGTE applies the GTE predicate on the "tiktok_url" field.
func TiktokURLGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldTiktokURL, v))
}

// TiktokURLLT applies the LT predicate on the "tiktok_url" field.
func TiktokURLLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldTiktokURL, v))
}

// TiktokURLLTE applies the LTE predicate on the "tiktok_url" field.
func TiktokURLLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldTiktokURL, v))
}

// TiktokURLContains applies the Contains predicate on the "tiktok_url" field.
func TiktokURLContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldTiktokURL, v))
}

// TiktokURLHasPrefix applies the HasPrefix predicate on the "tiktok_url" field.
func TiktokURLHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldTiktokURL, v))
}

// TiktokURLHasSuffix applies the HasSuffix predicate on the "tiktok_url" field.
func TiktokURLHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldTiktokURL, v))
}

// TiktokURLEqualFold applies the EqualFold predicate on the "tiktok_url" field.
func TiktokURLEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldTiktokURL, v))
}

// TiktokURLContainsFold applies the ContainsFold predicate on the "tiktok_url" field.
func TiktokURLContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldTiktokURL, v))
}

// ViewsCountEQ applies the EQ predicate on the "views_count" field.
func ViewsCountEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldViewsCount, v))
}

// ViewsCountNEQ applies the NEQ predicate on the "views_count" field.
func ViewsCountNEQ(v int) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldViewsCount, v))
}

// ViewsCountIn applies the In predicate on the "views_count" field.
func ViewsCountIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldViewsCount, vs...))
}

// ViewsCountNotIn applies the NotIn predicate on the "views_count" field.
func ViewsCountNotIn(vs ...int) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldViewsCount, vs...))
}

// ViewsCountGT applies the GT predicate on the "views_count" field.
func ViewsCountGT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldViewsCount, v))
}

// ViewsCountGTE applies the GTE predicate on the "views_count" field.
func ViewsCountGTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldViewsCount, v))
}

// ViewsCountLT applies the LT predicate on the "views_count" field.
func ViewsCountLT(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldViewsCount, v))
}

// ViewsCountLTE applies the LTE predicate on the "views_count" field.
func ViewsCountLTE(v int) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldViewsCount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMission applies the HasEdge predicate on the "mission" edge.
func HasMission() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MissionTable, MissionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMissionWith applies the HasEdge predicate on the "mission" edge with a given conditions (other predicates).
func HasMissionWith(preds ...predicate.Mission) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newMissionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasClipper applies the HasEdge predicate on the "clipper" edge.
func HasClipper() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClipperTable, ClipperColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClipperWith applies the HasEdge predicate on the "clipper" edge with a given conditions (other predicates).
func HasClipperWith(preds ...predicate.User) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newClipperStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMilestones applies the HasEdge predicate on the "milestones" edge.
func HasMilestones() predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MilestonesTable, MilestonesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMilestonesWith applies the HasEdge predicate on the "milestones" edge with a given conditions (other predicates).
func HasMilestonesWith(preds ...predicate.ClipSubmission) predicate.Submission {
	return predicate.Submission(func(s *sql.Selector) {
		step := newMilestonesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.NotPredicates(p))
}
