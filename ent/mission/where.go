// Code generated by ent, DO NOT EDIT.

package mission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cliptokk/api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldDescription, v))
}

// CreatorID applies equality check predicate on the "creator_id" field. It's identical to CreatorIDEQ.
func CreatorID(v int) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCreatorID, v))
}

// PricePer1kViews applies equality check predicate on the "price_per_1k_views" field. It's identical to PricePer1kViewsEQ.
func PricePer1kViews(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldPricePer1kViews, v))
}

// TotalBudget applies equality check predicate on the "total_budget" field. It's identical to TotalBudgetEQ.
func TotalBudget(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldTotalBudget, v))
}

// Spent applies equality check predicate on the "spent" field. It's identical to SpentEQ.
func Spent(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldSpent, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCategory, v))
}

// SourceVideoURL applies equality check predicate on the "source_video_url" field. It's identical to SourceVideoURLEQ.
func SourceVideoURL(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldSourceVideoURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldDescription, v))
}

// CreatorIDEQ applies the EQ predicate on the "creator_id" field.
func CreatorIDEQ(v int) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCreatorID, v))
}

// CreatorIDNEQ applies the NEQ predicate on the "creator_id" field.
func CreatorIDNEQ(v int) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldCreatorID, v))
}

// CreatorIDIn applies the In predicate on the "creator_id" field.
func CreatorIDIn(vs ...int) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldCreatorID, vs...))
}

// CreatorIDNotIn applies the NotIn predicate on the "creator_id" field.
func CreatorIDNotIn(vs ...int) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldCreatorID, vs...))
}

// PricePer1kViewsEQ applies the EQ predicate on the "price_per_1k_views" field.
func PricePer1kViewsEQ(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldPricePer1kViews, v))
}

// PricePer1kViewsNEQ applies the NEQ predicate on the "price_per_1k_views" field.
func PricePer1kViewsNEQ(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldPricePer1kViews, v))
}

// PricePer1kViewsIn applies the In predicate on the "price_per_1k_views" field.
func PricePer1kViewsIn(vs ...float64) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldPricePer1kViews, vs...))
}

// PricePer1kViewsNotIn applies the NotIn predicate on the "price_per_1k_views" field.
func PricePer1kViewsNotIn(vs ...float64) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldPricePer1kViews, vs...))
}

// PricePer1kViewsGT applies the GT predicate on the "price_per_1k_views" field.
func PricePer1kViewsGT(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldPricePer1kViews, v))
}

// PricePer1kViewsGTE applies the GTE predicate on the "price_per_1k_views" field.
func PricePer1kViewsGTE(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldPricePer1kViews, v))
}

// PricePer1kViewsLT applies the LT predicate on the "price_per_1k_views" field.
func PricePer1kViewsLT(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldPricePer1kViews, v))
}

// PricePer1kViewsLTE applies the LTE predicate on the "price_per_1k_views" field.
func PricePer1kViewsLTE(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldPricePer1kViews, v))
}

// TotalBudgetEQ applies the EQ predicate on the "total_budget" field.
func TotalBudgetEQ(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldTotalBudget, v))
}

// TotalBudgetNEQ applies the NEQ predicate on the "total_budget" field.
func TotalBudgetNEQ(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldTotalBudget, v))
}

// TotalBudgetIn applies the In predicate on the "total_budget" field.
func TotalBudgetIn(vs ...float64) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldTotalBudget, vs...))
}

// TotalBudgetNotIn applies the NotIn predicate on the "total_budget" field.
func TotalBudgetNotIn(vs ...float64) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldTotalBudget, vs...))
}

// TotalBudgetGT applies the GT predicate on the "total_budget" field.
func TotalBudgetGT(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldTotalBudget, v))
}

// TotalBudgetGTE applies the GTE predicate on the "total_budget" field.
func TotalBudgetGTE(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldTotalBudget, v))
}

// TotalBudgetLT applies the LT predicate on the "total_budget" field.
func TotalBudgetLT(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldTotalBudget, v))
}

// TotalBudgetLTE applies the LTE predicate on the "total_budget" field.
func TotalBudgetLTE(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldTotalBudget, v))
}

// SpentEQ applies the EQ predicate on the "spent" field.
func SpentEQ(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldSpent, v))
}

// SpentNEQ applies the NEQ predicate on the "spent" field.
func SpentNEQ(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldSpent, v))
}

// SpentIn applies the In predicate on the "spent" field.
func SpentIn(vs ...float64) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldSpent, vs...))
}

// SpentNotIn applies the NotIn predicate on the "spent" field.
func SpentNotIn(vs ...float64) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldSpent, vs...))
}

// SpentGT applies the GT predicate on the "spent" field.
func SpentGT(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldSpent, v))
}

// SpentGTE applies the GTE predicate on the "spent" field.
func SpentGTE(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldSpent, v))
}

// SpentLT applies the LT predicate on the "spent" field.
func SpentLT(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldSpent, v))
}

// SpentLTE applies the LTE predicate on the "spent" field.
func SpentLTE(v float64) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldSpent, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldStatus, vs...))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldCategory, v))
}

// PlatformsIsNil applies the IsNil predicate on the "platforms" field.
func PlatformsIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldPlatforms))
}

// PlatformsNotNil applies the NotNil predicate on the "platforms" field.
func PlatformsNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldPlatforms))
}

// SourceVideoURLEQ applies the EQ predicate on the "source_video_url" field.
func SourceVideoURLEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldSourceVideoURL, v))
}

// SourceVideoURLNEQ applies the NEQ predicate on the "source_video_url" field.
func SourceVideoURLNEQ(v string) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldSourceVideoURL, v))
}

// SourceVideoURLIn applies the In predicate on the "source_video_url" field.
func SourceVideoURLIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldSourceVideoURL, vs...))
}

// SourceVideoURLNotIn applies the NotIn predicate on the "source_video_url" field.
func SourceVideoURLNotIn(vs ...string) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldSourceVideoURL, vs...))
}

// SourceVideoURLGT applies the GT predicate on the "source_video_url" field.
func SourceVideoURLGT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldSourceVideoURL, v))
}

// SourceVideoURLGTE applies the GTE predicate on the "source_video_url" field.
func SourceVideoURLGTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldSourceVideoURL, v))
}

// SourceVideoURLLT applies the LT predicate on the "source_video_url" field.
func SourceVideoURLLT(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldSourceVideoURL, v))
}

// SourceVideoURLLTE applies the LTE predicate on the "source_video_url" field.
func SourceVideoURLLTE(v string) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldSourceVideoURL, v))
}

// SourceVideoURLContains applies the Contains predicate on the "source_video_url" field.
func SourceVideoURLContains(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContains(FieldSourceVideoURL, v))
}

// SourceVideoURLHasPrefix applies the HasPrefix predicate on the "source_video_url" field.
func SourceVideoURLHasPrefix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasPrefix(FieldSourceVideoURL, v))
}

// SourceVideoURLHasSuffix applies the HasSuffix predicate on the "source_video_url" field.
func SourceVideoURLHasSuffix(v string) predicate.Mission {
	return predicate.Mission(sql.FieldHasSuffix(FieldSourceVideoURL, v))
}

// SourceVideoURLIsNil applies the IsNil predicate on the "source_video_url" field.
func SourceVideoURLIsNil() predicate.Mission {
	return predicate.Mission(sql.FieldIsNull(FieldSourceVideoURL))
}

// SourceVideoURLNotNil applies the NotNil predicate on the "source_video_url" field.
func SourceVideoURLNotNil() predicate.Mission {
	return predicate.Mission(sql.FieldNotNull(FieldSourceVideoURL))
}

// SourceVideoURLEqualFold applies the EqualFold predicate on the "source_video_url" field.
func SourceVideoURLEqualFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldEqualFold(FieldSourceVideoURL, v))
}

// SourceVideoURLContainsFold applies the ContainsFold predicate on the "source_video_url" field.
func SourceVideoURLContainsFold(v string) predicate.Mission {
	return predicate.Mission(sql.FieldContainsFold(FieldSourceVideoURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Mission {
	return predicate.Mission(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCreator applies the HasEdge predicate on the "creator" edge.
func HasCreator() predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CreatorTable, CreatorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreatorWith applies the HasEdge predicate on the "creator" edge with a given conditions (other predicates).
func HasCreatorWith(preds ...predicate.User) predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := newCreatorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubmissions applies the HasEdge predicate on the "submissions" edge.
func HasSubmissions() predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubmissionsTable, SubmissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionsWith applies the HasEdge predicate on the "submissions" edge with a given conditions (other predicates).
func HasSubmissionsWith(preds ...predicate.Submission) predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := newSubmissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasClipSubmissions applies the HasEdge predicate on the "clip_submissions" edge.
func HasClipSubmissions() predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ClipSubmissionsTable, ClipSubmissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClipSubmissionsWith applies the HasEdge predicate on the "clip_submissions" edge with a given conditions (other predicates).
func HasClipSubmissionsWith(preds ...predicate.ClipSubmission) predicate.Mission {
	return predicate.Mission(func(s *sql.Selector) {
		step := newClipSubmissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Mission) predicate.Mission {
	return predicate.Mission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Mission) predicate.Mission {
	return predicate.Mission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Mission) predicate.Mission {
	return predicate.Mission(sql.NotPredicates(p))
}
