// Code generated by ent, DO NOT EDIT.

package clipsubmission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cliptokk/api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldUserID, v))
}

// MissionID applies equality check predicate on the "mission_id" field. It's identical to MissionIDEQ.
func MissionID(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldMissionID, v))
}

// SubmissionID applies equality check predicate on the "submission_id" field. It's identical to SubmissionIDEQ.
func SubmissionID(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldSubmissionID, v))
}

// Palier applies equality check predicate on the "palier" field. It's identical to PalierEQ.
func Palier(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldPalier, v))
}

// ViewsDeclared applies equality check predicate on the "views_declared" field. It's identical to ViewsDeclaredEQ.
func ViewsDeclared(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldViewsDeclared, v))
}

// TiktokLink applies equality check predicate on the "tiktok_link" field. It's identical to TiktokLinkEQ.
func TiktokLink(v string) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldTiktokLink, v))
}

// ReviewedBy applies equality check predicate on the "reviewed_by" field. It's identical to ReviewedByEQ.
func ReviewedBy(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldReviewedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNotIn(FieldUserID, vs...))
}

// MissionIDEQ applies the EQ predicate on the "mission_id" field.
func MissionIDEQ(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldMissionID, v))
}

// MissionIDNEQ applies the NEQ predicate on the "mission_id" field.
func MissionIDNEQ(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNEQ(FieldMissionID, v))
}

// MissionIDIn applies the In predicate on the "mission_id" field.
func MissionIDIn(vs ...int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldIn(FieldMissionID, vs...))
}

// MissionIDNotIn applies the NotIn predicate on the "mission_id" field.
func MissionIDNotIn(vs ...int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNotIn(FieldMissionID, vs...))
}

// SubmissionIDEQ applies the EQ predicate on the "submission_id" field.
func SubmissionIDEQ(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldSubmissionID, v))
}

// SubmissionIDNEQ applies the NEQ predicate on the "submission_id" field.
func SubmissionIDNEQ(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNEQ(FieldSubmissionID, v))
}

// SubmissionIDIn applies the In predicate on the "submission_id" field.
func SubmissionIDIn(vs ...int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldIn(FieldSubmissionID, vs...))
}

// SubmissionIDNotIn applies the NotIn predicate on the "submission_id" field.
func SubmissionIDNotIn(vs ...int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNotIn(FieldSubmissionID, vs...))
}

// PalierEQ applies the EQ predicate on the "palier" field.
func PalierEQ(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldPalier, v))
}

// PalierNEQ applies the NEQ predicate on the "palier" field.
func PalierNEQ(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNEQ(FieldPalier, v))
}

// PalierIn applies the In predicate on the "palier" field.
func PalierIn(vs ...int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldIn(FieldPalier, vs...))
}

// PalierNotIn applies the NotIn predicate on the "palier" field.
func PalierNotIn(vs ...int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNotIn(FieldPalier, vs...))
}

// PalierGT applies the GT predicate on the "palier" field.
func PalierGT(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldGT(FieldPalier, v))
}

// PalierGTE applies the GTE predicate on the "palier" field.
func PalierGTE(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldGTE(FieldPalier, v))
}

// PalierLT applies the LT predicate on the "palier" field.
func PalierLT(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldLT(FieldPalier, v))
}

// PalierLTE applies the LTE predicate on the "palier" field.
func PalierLTE(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldLTE(FieldPalier, v))
}

// ViewsDeclaredEQ applies the EQ predicate on the "views_declared" field.
func ViewsDeclaredEQ(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldViewsDeclared, v))
}

// ViewsDeclaredNEQ applies the NEQ predicate on the "views_declared" field.
func ViewsDeclaredNEQ(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNEQ(FieldViewsDeclared, v))
}

// ViewsDeclaredIn applies the In predicate on the "views_declared" field.
func ViewsDeclaredIn(vs ...int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldIn(FieldViewsDeclared, vs...))
}

// ViewsDeclaredNotIn applies the NotIn predicate on the "views_declared" field.
func ViewsDeclaredNotIn(vs ...int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNotIn(FieldViewsDeclared, vs...))
}

// ViewsDeclaredGT applies the GT predicate on the "views_declared" field.
func ViewsDeclaredGT(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldGT(FieldViewsDeclared, v))
}

// ViewsDeclaredGTE applies the GTE predicate on the "views_declared" field.
func ViewsDeclaredGTE(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldGTE(FieldViewsDeclared, v))
}

// ViewsDeclaredLT applies the LT predicate on the "views_declared" field.
func ViewsDeclaredLT(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldLT(FieldViewsDeclared, v))
}

// ViewsDeclaredLTE applies the LTE predicate on the "views_declared" field.
func ViewsDeclaredLTE(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldLTE(FieldViewsDeclared, v))
}

// TiktokLinkEQ applies the EQ predicate on the "tiktok_link" field.
func TiktokLinkEQ(v string) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldTiktokLink, v))
}

// TiktokLinkNEQ applies the NEQ predicate on the "tiktok_link" field.
func TiktokLinkNEQ(v string) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNEQ(FieldTiktokLink, v))
}

// TiktokLinkIn applies the In predicate on the "tiktok_link" field.
func TiktokLinkIn(vs ...string) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldIn(FieldTiktokLink, vs...))
}

// TiktokLinkNotIn applies the NotIn predicate on the "tiktok_link" field.
func TiktokLinkNotIn(vs ...string) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNotIn(FieldTiktokLink, vs...))
}

// TiktokLinkGT applies the GT predicate on the "tiktok_link" field.
func TiktokLinkGT(v string) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldGT(FieldTiktokLink, v))
}

// TiktokLinkGTE applies the GTE predicate on the "tiktok_link" field.
func TiktokLinkGTE(v string) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldGTE(FieldTiktokLink, v))
}

// TiktokLinkLT applies the LT predicate on the "tiktok_link" field.
func TiktokLinkLT(v string) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldLT(FieldTiktokLink, v))
}

// TiktokLinkLTE applies the LTE predicate on the "tiktok_link" field.
func TiktokLinkLTE(v string) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldLTE(FieldTiktokLink, v))
}

// TiktokLinkContains applies the Contains predicate on the "tiktok_link" field.
func TiktokLinkContains(v string) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldContains(FieldTiktokLink, v))
}

// TiktokLinkHasPrefix applies the HasPrefix predicate on the "tiktok_link" field.
func TiktokLinkHasPrefix(v string) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldHasPrefix(FieldTiktokLink, v))
}

// TiktokLinkHasSuffix applies the HasSuffix predicate on the "tiktok_link" field.
func TiktokLinkHasSuffix(v string) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldHasSuffix(FieldTiktokLink, v))
}

// TiktokLinkEqualFold applies the EqualFold predicate on the "tiktok_link" field.
func TiktokLinkEqualFold(v string) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEqualFold(FieldTiktokLink, v))
}

// TiktokLinkContainsFold applies the ContainsFold predicate on the "tiktok_link" field.
func TiktokLinkContainsFold(v string) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldContainsFold(FieldTiktokLink, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNotIn(FieldStatus, vs...))
}

// ReviewedByEQ applies the EQ predicate on the "reviewed_by" field.
func ReviewedByEQ(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldReviewedBy, v))
}

// ReviewedByNEQ applies the NEQ predicate on the "reviewed_by" field.
func ReviewedByNEQ(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNEQ(FieldReviewedBy, v))
}

// ReviewedByIn applies the In predicate on the "reviewed_by" field.
func ReviewedByIn(vs ...int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldIn(FieldReviewedBy, vs...))
}

// ReviewedByNotIn applies the NotIn predicate on the "reviewed_by" field.
func ReviewedByNotIn(vs ...int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNotIn(FieldReviewedBy, vs...))
}

// ReviewedByGT applies the GT predicate on the "reviewed_by" field.
func ReviewedByGT(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldGT(FieldReviewedBy, v))
}

// ReviewedByGTE applies the GTE predicate on the "reviewed_by" field.
func ReviewedByGTE(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldGTE(FieldReviewedBy, v))
}

// ReviewedByLT applies the LT predicate on the "reviewed_by" field.
func ReviewedByLT(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldLT(FieldReviewedBy, v))
}

// ReviewedByLTE applies the LTE predicate on the "reviewed_by" field.
func ReviewedByLTE(v int) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldLTE(FieldReviewedBy, v))
}

// ReviewedByIsNil applies the IsNil predicate on the "reviewed_by" field.
func ReviewedByIsNil() predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldIsNull(FieldReviewedBy))
}

// ReviewedByNotNil applies the NotNil predicate on the "reviewed_by" field.
func ReviewedByNotNil() predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNotNull(FieldReviewedBy))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNotNull(FieldReviewedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.FieldLTE(FieldCreatedAt, v))
}

// HasClipper applies the HasEdge predicate on the "clipper" edge.
func HasClipper() predicate.ClipSubmission {
	return predicate.ClipSubmission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClipperTable, ClipperColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClipperWith applies the HasEdge predicate on the "clipper" edge with a given conditions (other predicates).
func HasClipperWith(preds ...predicate.User) predicate.ClipSubmission {
	return predicate.ClipSubmission(func(s *sql.Selector) {
		step := newClipperStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMission applies the HasEdge predicate on the "mission" edge.
func HasMission() predicate.ClipSubmission {
	return predicate.ClipSubmission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MissionTable, MissionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMissionWith applies the HasEdge predicate on the "mission" edge with a given conditions (other predicates).
func HasMissionWith(preds ...predicate.Mission) predicate.ClipSubmission {
	return predicate.ClipSubmission(func(s *sql.Selector) {
		step := newMissionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubmission applies the HasEdge predicate on the "submission" edge.
func HasSubmission() predicate.ClipSubmission {
	return predicate.ClipSubmission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SubmissionTable, SubmissionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionWith applies the HasEdge predicate on the "submission" edge with a given conditions (other predicates).
func HasSubmissionWith(preds ...predicate.Submission) predicate.ClipSubmission {
	return predicate.ClipSubmission(func(s *sql.Selector) {
		step := newSubmissionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClipSubmission) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClipSubmission) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClipSubmission) predicate.ClipSubmission {
	return predicate.ClipSubmission(sql.NotPredicates(p))
}
