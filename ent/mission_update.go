// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/cliptokk/api/ent/clipsubmission"
	"github.com/cliptokk/api/ent/mission"
	"github.com/cliptokk/api/ent/predicate"
	"github.com/cliptokk/api/ent/submission"
	"github.com/cliptokk/api/ent/user"
)

// MissionUpdate is the builder for updating Mission entities.
type MissionUpdate struct {
	config
	hooks    []Hook
	mutation *MissionMutation
}

// Where appends a list predicates to the MissionUpdate builder.
func (_u *MissionUpdate) Where(ps ...predicate.Mission) *MissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *MissionUpdate) SetTitle(v string) *MissionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableTitle(v *string) *MissionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MissionUpdate) SetDescription(v string) *MissionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableDescription(v *string) *MissionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCreatorID sets the "creator_id" field.
func (_u *MissionUpdate) SetCreatorID(v int) *MissionUpdate {
	_u.mutation.SetCreatorID(v)
	return _u
}

// SetNillableCreatorID sets the "creator_id" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableCreatorID(v *int) *MissionUpdate {
	if v != nil {
		_u.SetCreatorID(*v)
	}
	return _u
}

// SetPricePer1kViews sets the "price_per_1k_views" field.
func (_u *MissionUpdate) SetPricePer1kViews(v float64) *MissionUpdate {
	_u.mutation.ResetPricePer1kViews()
	_u.mutation.SetPricePer1kViews(v)
	return _u
}

// SetNillablePricePer1kViews sets the "price_per_1k_views" field if the given value is not nil.
func (_u *MissionUpdate) SetNillablePricePer1kViews(v *float64) *MissionUpdate {
	if v != nil {
		_u.SetPricePer1kViews(*v)
	}
	return _u
}

// AddPricePer1kViews adds value to the "price_per_1k_views" field.
func (_u *MissionUpdate) AddPricePer1kViews(v float64) *MissionUpdate {
	_u.mutation.AddPricePer1kViews(v)
	return _u
}

// SetTotalBudget sets the "total_budget" field.
func (_u *MissionUpdate) SetTotalBudget(v float64) *MissionUpdate {
	_u.mutation.ResetTotalBudget()
	_u.mutation.SetTotalBudget(v)
	return _u
}

// SetNillableTotalBudget sets the "total_budget" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableTotalBudget(v *float64) *MissionUpdate {
	if v != nil {
		_u.SetTotalBudget(*v)
	}
	return _u
}

// AddTotalBudget adds value to the "total_budget" field.
func (_u *MissionUpdate) AddTotalBudget(v float64) *MissionUpdate {
	_u.mutation.AddTotalBudget(v)
	return _u
}

// SetSpent sets the "spent" field.
func (_u *MissionUpdate) SetSpent(v float64) *MissionUpdate {
	_u.mutation.ResetSpent()
	_u.mutation.SetSpent(v)
	return _u
}

// SetNillableSpent sets the "spent" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableSpent(v *float64) *MissionUpdate {
	if v != nil {
		_u.SetSpent(*v)
	}
	return _u
}

// AddSpent adds value to the "spent" field.
func (_u *MissionUpdate) AddSpent(v float64) *MissionUpdate {
	_u.mutation.AddSpent(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MissionUpdate) SetStatus(v mission.Status) *MissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableStatus(v *mission.Status) *MissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *MissionUpdate) SetCategory(v string) *MissionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableCategory(v *string) *MissionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPlatforms sets the "platforms" field.
func (_u *MissionUpdate) SetPlatforms(v []string) *MissionUpdate {
	_u.mutation.SetPlatforms(v)
	return _u
}

// AppendPlatforms appends value to the "platforms" field.
func (_u *MissionUpdate) AppendPlatforms(v []string) *MissionUpdate {
	_u.mutation.AppendPlatforms(v)
	return _u
}

// ClearPlatforms clears the value of the "platforms" field.
func (_u *MissionUpdate) ClearPlatforms() *MissionUpdate {
	_u.mutation.ClearPlatforms()
	return _u
}

// SetSourceVideoURL sets the "source_video_url" field.
func (_u *MissionUpdate) SetSourceVideoURL(v string) *MissionUpdate {
	_u.mutation.SetSourceVideoURL(v)
	return _u
}

// SetNillableSourceVideoURL sets the "source_video_url" field if the given value is not nil.
func (_u *MissionUpdate) SetNillableSourceVideoURL(v *string) *MissionUpdate {
	if v != nil {
		_u.SetSourceVideoURL(*v)
	}
	return _u
}

// ClearSourceVideoURL clears the value of the "source_video_url" field.
func (_u *MissionUpdate) ClearSourceVideoURL() *MissionUpdate {
	_u.mutation.ClearSourceVideoURL()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MissionUpdate) SetUpdatedAt(v time.Time) *MissionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreator sets the "creator" edge to the User entity.
func (_u *MissionUpdate) SetCreator(v *User) *MissionUpdate {
	return _u.SetCreatorID(v.ID)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *MissionUpdate) AddSubmissionIDs(ids ...int) *MissionUpdate {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *MissionUpdate) AddSubmissions(v ...*Submission) *MissionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// AddClipSubmissionIDs adds the "clip_submissions" edge to the ClipSubmission entity by IDs.
func (_u *MissionUpdate) AddClipSubmissionIDs(ids ...int) *MissionUpdate {
	_u.mutation.AddClipSubmissionIDs(ids...)
	return _u
}

// AddClipSubmissions adds the "clip_submissions" edges to the ClipSubmission entity.
func (_u *MissionUpdate) AddClipSubmissions(v ...*ClipSubmission) *MissionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClipSubmissionIDs(ids...)
}

// Mutation returns the MissionMutation object of the builder.
func (_u *MissionUpdate) Mutation() *MissionMutation {
	return _u.mutation
}

// ClearCreator clears the "creator" edge to the User entity.
func (_u *MissionUpdate) ClearCreator() *MissionUpdate {
	_u.mutation.ClearCreator()
	return _u
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *MissionUpdate) ClearSubmissions() *MissionUpdate {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *MissionUpdate) RemoveSubmissionIDs(ids ...int) *MissionUpdate {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *MissionUpdate) RemoveSubmissions(v ...*Submission) *MissionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// ClearClipSubmissions clears all "clip_submissions" edges to the ClipSubmission entity.
func (_u *MissionUpdate) ClearClipSubmissions() *MissionUpdate {
	_u.mutation.ClearClipSubmissions()
	return _u
}

// RemoveClipSubmissionIDs removes the "clip_submissions" edge to ClipSubmission entities by IDs.
func (_u *MissionUpdate) RemoveClipSubmissionIDs(ids ...int) *MissionUpdate {
	_u.mutation.RemoveClipSubmissionIDs(ids...)
	return _u
}

// RemoveClipSubmissions removes "clip_submissions" edges to ClipSubmission entities.
func (_u *MissionUpdate) RemoveClipSubmissions(v ...*ClipSubmission) *MissionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClipSubmissionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MissionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MissionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := mission.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Mission.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	if _u.mutation.CreatorCleared() && len(_u.mutation.CreatorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Mission.creator"`)
	}
	return nil
}

func (_u *MissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mission.Table, mission.Columns, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(mission.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(mission.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.PricePer1kViews(); ok {
		_spec.SetField(mission.FieldPricePer1kViews, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPricePer1kViews(); ok {
		_spec.AddField(mission.FieldPricePer1kViews, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalBudget(); ok {
		_spec.SetField(mission.FieldTotalBudget, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalBudget(); ok {
		_spec.AddField(mission.FieldTotalBudget, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Spent(); ok {
		_spec.SetField(mission.FieldSpent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpent(); ok {
		_spec.AddField(mission.FieldSpent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(mission.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Platforms(); ok {
		_spec.SetField(mission.FieldPlatforms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlatforms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mission.FieldPlatforms, value)
		})
	}
	if _u.mutation.PlatformsCleared() {
		_spec.ClearField(mission.FieldPlatforms, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceVideoURL(); ok {
		_spec.SetField(mission.FieldSourceVideoURL, field.TypeString, value)
	}
	if _u.mutation.SourceVideoURLCleared() {
		_spec.ClearField(mission.FieldSourceVideoURL, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mission.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CreatorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mission.CreatorTable,
			Columns: []string{mission.CreatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CreatorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mission.CreatorTable,
			Columns: []string{mission.CreatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.SubmissionsTable,
			Columns: []string{mission.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.SubmissionsTable,
			Columns: []string{mission.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.SubmissionsTable,
			Columns: []string{mission.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClipSubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.ClipSubmissionsTable,
			Columns: []string{mission.ClipSubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clipsubmission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClipSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.ClipSubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.ClipSubmissionsTable,
			Columns: []string{mission.ClipSubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clipsubmission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClipSubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.ClipSubmissionsTable,
			Columns: []string{mission.ClipSubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clipsubmission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MissionUpdateOne is the builder for updating a single Mission entity.
type MissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MissionMutation
}

// SetTitle sets the "title" field.
func (_u *MissionUpdateOne) SetTitle(v string) *MissionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableTitle(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MissionUpdateOne) SetDescription(v string) *MissionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableDescription(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCreatorID sets the "creator_id" field.
func (_u *MissionUpdateOne) SetCreatorID(v int) *MissionUpdateOne {
	_u.mutation.SetCreatorID(v)
	return _u
}

// SetNillableCreatorID sets the "creator_id" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableCreatorID(v *int) *MissionUpdateOne {
	if v != nil {
		_u.SetCreatorID(*v)
	}
	return _u
}

// SetPricePer1kViews sets the "price_per_1k_views" field.
func (_u *MissionUpdateOne) SetPricePer1kViews(v float64) *MissionUpdateOne {
	_u.mutation.ResetPricePer1kViews()
	_u.mutation.SetPricePer1kViews(v)
	return _u
}

// SetNillablePricePer1kViews sets the "price_per_1k_views" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillablePricePer1kViews(v *float64) *MissionUpdateOne {
	if v != nil {
		_u.SetPricePer1kViews(*v)
	}
	return _u
}

// AddPricePer1kViews adds value to the "price_per_1k_views" field.
func (_u *MissionUpdateOne) AddPricePer1kViews(v float64) *MissionUpdateOne {
	_u.mutation.AddPricePer1kViews(v)
	return _u
}

// SetTotalBudget sets the "total_budget" field.
func (_u *MissionUpdateOne) SetTotalBudget(v float64) *MissionUpdateOne {
	_u.mutation.ResetTotalBudget()
	_u.mutation.SetTotalBudget(v)
	return _u
}

// SetNillableTotalBudget sets the "total_budget" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableTotalBudget(v *float64) *MissionUpdateOne {
	if v != nil {
		_u.SetTotalBudget(*v)
	}
	return _u
}

// AddTotalBudget adds value to the "total_budget" field.
func (_u *MissionUpdateOne) AddTotalBudget(v float64) *MissionUpdateOne {
	_u.mutation.AddTotalBudget(v)
	return _u
}

// SetSpent sets the "spent" field.
func (_u *MissionUpdateOne) SetSpent(v float64) *MissionUpdateOne {
	_u.mutation.ResetSpent()
	_u.mutation.SetSpent(v)
	return _u
}

// SetNillableSpent sets the "spent" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableSpent(v *float64) *MissionUpdateOne {
	if v != nil {
		_u.SetSpent(*v)
	}
	return _u
}

// AddSpent adds value to the "spent" field.
func (_u *MissionUpdateOne) AddSpent(v float64) *MissionUpdateOne {
	_u.mutation.AddSpent(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MissionUpdateOne) SetStatus(v mission.Status) *MissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableStatus(v *mission.Status) *MissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *MissionUpdateOne) SetCategory(v string) *MissionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableCategory(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetPlatforms sets the "platforms" field.
func (_u *MissionUpdateOne) SetPlatforms(v []string) *MissionUpdateOne {
	_u.mutation.SetPlatforms(v)
	return _u
}

// AppendPlatforms appends value to the "platforms" field.
func (_u *MissionUpdateOne) AppendPlatforms(v []string) *MissionUpdateOne {
	_u.mutation.AppendPlatforms(v)
	return _u
}

// ClearPlatforms clears the value of the "platforms" field.
func (_u *MissionUpdateOne) ClearPlatforms() *MissionUpdateOne {
	_u.mutation.ClearPlatforms()
	return _u
}

// SetSourceVideoURL sets the "source_video_url" field.
func (_u *MissionUpdateOne) SetSourceVideoURL(v string) *MissionUpdateOne {
	_u.mutation.SetSourceVideoURL(v)
	return _u
}

// SetNillableSourceVideoURL sets the "source_video_url" field if the given value is not nil.
func (_u *MissionUpdateOne) SetNillableSourceVideoURL(v *string) *MissionUpdateOne {
	if v != nil {
		_u.SetSourceVideoURL(*v)
	}
	return _u
}

// ClearSourceVideoURL clears the value of the "source_video_url" field.
func (_u *MissionUpdateOne) ClearSourceVideoURL() *MissionUpdateOne {
	_u.mutation.ClearSourceVideoURL()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MissionUpdateOne) SetUpdatedAt(v time.Time) *MissionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCreator sets the "creator" edge to the User entity.
func (_u *MissionUpdateOne) SetCreator(v *User) *MissionUpdateOne {
	return _u.SetCreatorID(v.ID)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (_u *MissionUpdateOne) AddSubmissionIDs(ids ...int) *MissionUpdateOne {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (_u *MissionUpdateOne) AddSubmissions(v ...*Submission) *MissionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// AddClipSubmissionIDs adds the "clip_submissions" edge to the ClipSubmission entity by IDs.
func (_u *MissionUpdateOne) AddClipSubmissionIDs(ids ...int) *MissionUpdateOne {
	_u.mutation.AddClipSubmissionIDs(ids...)
	return _u
}

// AddClipSubmissions adds the "clip_submissions" edges to the ClipSubmission entity.
func (_u *MissionUpdateOne) AddClipSubmissions(v ...*ClipSubmission) *MissionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddClipSubmissionIDs(ids...)
}

// Mutation returns the MissionMutation object of the builder.
func (_u *MissionUpdateOne) Mutation() *MissionMutation {
	return _u.mutation
}

// ClearCreator clears the "creator" edge to the User entity.
func (_u *MissionUpdateOne) ClearCreator() *MissionUpdateOne {
	_u.mutation.ClearCreator()
	return _u
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (_u *MissionUpdateOne) ClearSubmissions() *MissionUpdateOne {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (_u *MissionUpdateOne) RemoveSubmissionIDs(ids ...int) *MissionUpdateOne {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (_u *MissionUpdateOne) RemoveSubmissions(v ...*Submission) *MissionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// ClearClipSubmissions clears all "clip_submissions" edges to the ClipSubmission entity.
func (_u *MissionUpdateOne) ClearClipSubmissions() *MissionUpdateOne {
	_u.mutation.ClearClipSubmissions()
	return _u
}

// RemoveClipSubmissionIDs removes the "clip_submissions" edge to ClipSubmission entities by IDs.
func (_u *MissionUpdateOne) RemoveClipSubmissionIDs(ids ...int) *MissionUpdateOne {
	_u.mutation.RemoveClipSubmissionIDs(ids...)
	return _u
}

// RemoveClipSubmissions removes "clip_submissions" edges to ClipSubmission entities.
func (_u *MissionUpdateOne) RemoveClipSubmissions(v ...*ClipSubmission) *MissionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveClipSubmissionIDs(ids...)
}

// Where appends a list predicates to the MissionUpdate builder.
func (_u *MissionUpdateOne) Where(ps ...predicate.Mission) *MissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MissionUpdateOne) Select(field string, fields ...string) *MissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Mission entity.
func (_u *MissionUpdateOne) Save(ctx context.Context) (*Mission, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissionUpdateOne) SaveX(ctx context.Context) *Mission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MissionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MissionUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := mission.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Mission.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := mission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Mission.status": %w`, err)}
		}
	}
	if _u.mutation.CreatorCleared() && len(_u.mutation.CreatorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Mission.creator"`)
	}
	return nil
}

func (_u *MissionUpdateOne) sqlSave(ctx context.Context) (_node *Mission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mission.Table, mission.Columns, sqlgraph.NewFieldSpec(mission.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Mission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mission.FieldID)
		for _, f := range fields {
			if !mission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mission.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(mission.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(mission.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.PricePer1kViews(); ok {
		_spec.SetField(mission.FieldPricePer1kViews, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPricePer1kViews(); ok {
		_spec.AddField(mission.FieldPricePer1kViews, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalBudget(); ok {
		_spec.SetField(mission.FieldTotalBudget, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalBudget(); ok {
		_spec.AddField(mission.FieldTotalBudget, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Spent(); ok {
		_spec.SetField(mission.FieldSpent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpent(); ok {
		_spec.AddField(mission.FieldSpent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(mission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(mission.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Platforms(); ok {
		_spec.SetField(mission.FieldPlatforms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlatforms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mission.FieldPlatforms, value)
		})
	}
	if _u.mutation.PlatformsCleared() {
		_spec.ClearField(mission.FieldPlatforms, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceVideoURL(); ok {
		_spec.SetField(mission.FieldSourceVideoURL, field.TypeString, value)
	}
	if _u.mutation.SourceVideoURLCleared() {
		_spec.ClearField(mission.FieldSourceVideoURL, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mission.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CreatorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mission.CreatorTable,
			Columns: []string{mission.CreatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CreatorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mission.CreatorTable,
			Columns: []string{mission.CreatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.SubmissionsTable,
			Columns: []string{mission.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.SubmissionsTable,
			Columns: []string{mission.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.SubmissionsTable,
			Columns: []string{mission.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ClipSubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.ClipSubmissionsTable,
			Columns: []string{mission.ClipSubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clipsubmission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedClipSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.ClipSubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.ClipSubmissionsTable,
			Columns: []string{mission.ClipSubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clipsubmission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClipSubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mission.ClipSubmissionsTable,
			Columns: []string{mission.ClipSubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clipsubmission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Mission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
