// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cliptokk/api/ent/clipsubmission"
	"github.com/cliptokk/api/ent/mission"
	"github.com/cliptokk/api/ent/predicate"
	"github.com/cliptokk/api/ent/submission"
	"github.com/cliptokk/api/ent/user"
)

// ClipSubmissionUpdate is the builder for updating ClipSubmission entities.
type ClipSubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *ClipSubmissionMutation
}

// Where appends a list predicates to the ClipSubmissionUpdate builder.
func (_u *ClipSubmissionUpdate) Where(ps ...predicate.ClipSubmission) *ClipSubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ClipSubmissionUpdate) SetUserID(v int) *ClipSubmissionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ClipSubmissionUpdate) SetNillableUserID(v *int) *ClipSubmissionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMissionID sets the "mission_id" field.
func (_u *ClipSubmissionUpdate) SetMissionID(v int) *ClipSubmissionUpdate {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *ClipSubmissionUpdate) SetNillableMissionID(v *int) *ClipSubmissionUpdate {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// SetSubmissionID sets the "submission_id" field.
func (_u *ClipSubmissionUpdate) SetSubmissionID(v int) *ClipSubmissionUpdate {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *ClipSubmissionUpdate) SetNillableSubmissionID(v *int) *ClipSubmissionUpdate {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetPalier sets the "palier" field.
func (_u *ClipSubmissionUpdate) SetPalier(v int) *ClipSubmissionUpdate {
	_u.mutation.ResetPalier()
	_u.mutation.SetPalier(v)
	return _u
}

// SetNillablePalier sets the "palier" field if the given value is not nil.
func (_u *ClipSubmissionUpdate) SetNillablePalier(v *int) *ClipSubmissionUpdate {
	if v != nil {
		_u.SetPalier(*v)
	}
	return _u
}

// AddPalier adds value to the "palier" field.
func (_u *ClipSubmissionUpdate) AddPalier(v int) *ClipSubmissionUpdate {
	_u.mutation.AddPalier(v)
	return _u
}

// SetViewsDeclared sets the "views_declared" field.
func (_u *ClipSubmissionUpdate) SetViewsDeclared(v int) *ClipSubmissionUpdate {
	_u.mutation.ResetViewsDeclared()
	_u.mutation.SetViewsDeclared(v)
	return _u
}

// SetNillableViewsDeclared sets the "views_declared" field if the given value is not nil.
func (_u *ClipSubmissionUpdate) SetNillableViewsDeclared(v *int) *ClipSubmissionUpdate {
	if v != nil {
		_u.SetViewsDeclared(*v)
	}
	return _u
}

// AddViewsDeclared adds value to the "views_declared" field.
func (_u *ClipSubmissionUpdate) AddViewsDeclared(v int) *ClipSubmissionUpdate {
	_u.mutation.AddViewsDeclared(v)
	return _u
}

// SetTiktokLink sets the "tiktok_link" field.
func (_u *ClipSubmissionUpdate) SetTiktokLink(v string) *ClipSubmissionUpdate {
	_u.mutation.SetTiktokLink(v)
	return _u
}

// SetNillableTiktokLink sets the "tiktok_link" field if the given value is not nil.
func (_u *ClipSubmissionUpdate) SetNillableTiktokLink(v *string) *ClipSubmissionUpdate {
	if v != nil {
		_u.SetTiktokLink(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClipSubmissionUpdate) SetStatus(v clipsubmission.Status) *ClipSubmissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClipSubmissionUpdate) SetNillableStatus(v *clipsubmission.Status) *ClipSubmissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *ClipSubmissionUpdate) SetReviewedBy(v int) *ClipSubmissionUpdate {
	_u.mutation.ResetReviewedBy()
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *ClipSubmissionUpdate) SetNillableReviewedBy(v *int) *ClipSubmissionUpdate {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// AddReviewedBy adds value to the "reviewed_by" field.
func (_u *ClipSubmissionUpdate) AddReviewedBy(v int) *ClipSubmissionUpdate {
	_u.mutation.AddReviewedBy(v)
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *ClipSubmissionUpdate) ClearReviewedBy() *ClipSubmissionUpdate {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *ClipSubmissionUpdate) SetReviewedAt(v time.Time) *ClipSubmissionUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *ClipSubmissionUpdate) SetNillableReviewedAt(v *time.Time) *ClipSubmissionUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *ClipSubmissionUpdate) ClearReviewedAt() *ClipSubmissionUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetClipperID sets the "clipper" edge to the User entity by ID.
func (_u *ClipSubmissionUpdate) SetClipperID(id int) *ClipSubmissionUpdate {
	_u.mutation.SetClipperID(id)
	return _u
}

// SetClipper sets the "clipper" edge to the User entity.
func (_u *ClipSubmissionUpdate) SetClipper(v *User) *ClipSubmissionUpdate {
	return _u.SetClipperID(v.ID)
}

// SetMission sets the "mission" edge to the Mission entity.
func (_u *ClipSubmissionUpdate) SetMission(v *Mission) *ClipSubmissionUpdate {
	return _u.SetMissionID(v.ID)
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_u *ClipSubmissionUpdate) SetSubmission(v *Submission) *ClipSubmissionUpdate {
	return _u.SetSubmissionID(v.ID)
}

// Mutation returns the ClipSubmissionMutation object of the builder.
func (_u *ClipSubmissionUpdate) Mutation() *ClipSubmissionMutation {
	return _u.mutation
}

// ClearClipper clears the "clipper" edge to the User entity.
func (_u *ClipSubmissionUpdate) ClearClipper() *ClipSubmissionUpdate {
	_u.mutation.ClearClipper()
	return _u
}

// ClearMission clears the "mission" edge to the Mission entity.
func (_u *ClipSubmissionUpdate) ClearMission() *ClipSubmissionUpdate {
	_u.mutation.ClearMission()
	return _u
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (_u *ClipSubmissionUpdate) ClearSubmission() *ClipSubmissionUpdate {
	_u.mutation.ClearSubmission()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClipSubmissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClipSubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClipSubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClipSubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClipSubmissionUpdate) check() error {
	if v, ok := _u.mutation.ViewsDeclared(); ok {
		if err := clipsubmission.ViewsDeclaredValidator(v); err != nil {
			return &ValidationError{Name: "views_declared", err: fmt.Errorf(`ent: validator failed for field "ClipSubmission.views_declared": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TiktokLink(); ok {
		if err := clipsubmission.TiktokLinkValidator(v); err != nil {
			return &ValidationError{Name: "tiktok_link", err: fmt.Errorf(`ent: validator failed for field "ClipSubmission.tiktok_link": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := clipsubmission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ClipSubmission.status": %w`, err)}
		}
	}
	if _u.mutation.ClipperCleared() && len(_u.mutation.ClipperIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClipSubmission.clipper"`)
	}
	if _u.mutation.MissionCleared() && len(_u.mutation.MissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClipSubmission.mission"`)
	}
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClipSubmission.submission"`)
	}
	return nil
}

func (_u *ClipSubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clipsubmission.Table, clipsubmission.Columns, sqlgraph.NewFieldSpec(clipsubmission.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Palier(); ok {
		_spec.SetField(clipsubmission.FieldPalier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPalier(); ok {
		_spec.AddField(clipsubmission.FieldPalier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ViewsDeclared(); ok {
		_spec.SetField(clipsubmission.FieldViewsDeclared, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedViewsDeclared(); ok {
		_spec.AddField(clipsubmission.FieldViewsDeclared, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TiktokLink(); ok {
		_spec.SetField(clipsubmission.FieldTiktokLink, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(clipsubmission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(clipsubmission.FieldReviewedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewedBy(); ok {
		_spec.AddField(clipsubmission.FieldReviewedBy, field.TypeInt, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(clipsubmission.FieldReviewedBy, field.TypeInt)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(clipsubmission.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(clipsubmission.FieldReviewedAt, field.TypeTime)
	}
	if _u.mutation.ClipperCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clipsubmission.ClipperTable,
			Columns: []string{clipsubmission.ClipperColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClipperIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clipsubmission.ClipperTable,
			Columns: []string{clipsubmission.ClipperColumn},
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
	if _u.mutation.MissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clipsubmission.MissionTable,
			Columns: []string{clipsubmission.MissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clipsubmission.MissionTable,
			Columns: []string{clipsubmission.MissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clipsubmission.SubmissionTable,
			Columns: []string{clipsubmission.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clipsubmission.SubmissionTable,
			Columns: []string{clipsubmission.SubmissionColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clipsubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClipSubmissionUpdateOne is the builder for updating a single ClipSubmission entity.
type ClipSubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClipSubmissionMutation
}

// SetUserID sets the "user_id" field.
func (_u *ClipSubmissionUpdateOne) SetUserID(v int) *ClipSubmissionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ClipSubmissionUpdateOne) SetNillableUserID(v *int) *ClipSubmissionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMissionID sets the "mission_id" field.
func (_u *ClipSubmissionUpdateOne) SetMissionID(v int) *ClipSubmissionUpdateOne {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *ClipSubmissionUpdateOne) SetNillableMissionID(v *int) *ClipSubmissionUpdateOne {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// SetSubmissionID sets the "submission_id" field.
func (_u *ClipSubmissionUpdateOne) SetSubmissionID(v int) *ClipSubmissionUpdateOne {
	_u.mutation.SetSubmissionID(v)
	return _u
}

// SetNillableSubmissionID sets the "submission_id" field if the given value is not nil.
func (_u *ClipSubmissionUpdateOne) SetNillableSubmissionID(v *int) *ClipSubmissionUpdateOne {
	if v != nil {
		_u.SetSubmissionID(*v)
	}
	return _u
}

// SetPalier sets the "palier" field.
func (_u *ClipSubmissionUpdateOne) SetPalier(v int) *ClipSubmissionUpdateOne {
	_u.mutation.ResetPalier()
	_u.mutation.SetPalier(v)
	return _u
}

// SetNillablePalier sets the "palier" field if the given value is not nil.
func (_u *ClipSubmissionUpdateOne) SetNillablePalier(v *int) *ClipSubmissionUpdateOne {
	if v != nil {
		_u.SetPalier(*v)
	}
	return _u
}

// AddPalier adds value to the "palier" field.
func (_u *ClipSubmissionUpdateOne) AddPalier(v int) *ClipSubmissionUpdateOne {
	_u.mutation.AddPalier(v)
	return _u
}

// SetViewsDeclared sets the "views_declared" field.
func (_u *ClipSubmissionUpdateOne) SetViewsDeclared(v int) *ClipSubmissionUpdateOne {
	_u.mutation.ResetViewsDeclared()
	_u.mutation.SetViewsDeclared(v)
	return _u
}

// SetNillableViewsDeclared sets the "views_declared" field if the given value is not nil.
func (_u *ClipSubmissionUpdateOne) SetNillableViewsDeclared(v *int) *ClipSubmissionUpdateOne {
	if v != nil {
		_u.SetViewsDeclared(*v)
	}
	return _u
}

// AddViewsDeclared adds value to the "views_declared" field.
func (_u *ClipSubmissionUpdateOne) AddViewsDeclared(v int) *ClipSubmissionUpdateOne {
	_u.mutation.AddViewsDeclared(v)
	return _u
}

// SetTiktokLink sets the "tiktok_link" field.
func (_u *ClipSubmissionUpdateOne) SetTiktokLink(v string) *ClipSubmissionUpdateOne {
	_u.mutation.SetTiktokLink(v)
	return _u
}

// SetNillableTiktokLink sets the "tiktok_link" field if the given value is not nil.
func (_u *ClipSubmissionUpdateOne) SetNillableTiktokLink(v *string) *ClipSubmissionUpdateOne {
	if v != nil {
		_u.SetTiktokLink(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClipSubmissionUpdateOne) SetStatus(v clipsubmission.Status) *ClipSubmissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClipSubmissionUpdateOne) SetNillableStatus(v *clipsubmission.Status) *ClipSubmissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *ClipSubmissionUpdateOne) SetReviewedBy(v int) *ClipSubmissionUpdateOne {
	_u.mutation.ResetReviewedBy()
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *ClipSubmissionUpdateOne) SetNillableReviewedBy(v *int) *ClipSubmissionUpdateOne {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// AddReviewedBy adds value to the "reviewed_by" field.
func (_u *ClipSubmissionUpdateOne) AddReviewedBy(v int) *ClipSubmissionUpdateOne {
	_u.mutation.AddReviewedBy(v)
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *ClipSubmissionUpdateOne) ClearReviewedBy() *ClipSubmissionUpdateOne {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *ClipSubmissionUpdateOne) SetReviewedAt(v time.Time) *ClipSubmissionUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *ClipSubmissionUpdateOne) SetNillableReviewedAt(v *time.Time) *ClipSubmissionUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *ClipSubmissionUpdateOne) ClearReviewedAt() *ClipSubmissionUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetClipperID sets the "clipper" edge to the User entity by ID.
func (_u *ClipSubmissionUpdateOne) SetClipperID(id int) *ClipSubmissionUpdateOne {
	_u.mutation.SetClipperID(id)
	return _u
}

// SetClipper sets the "clipper" edge to the User entity.
func (_u *ClipSubmissionUpdateOne) SetClipper(v *User) *ClipSubmissionUpdateOne {
	return _u.SetClipperID(v.ID)
}

// SetMission sets the "mission" edge to the Mission entity.
func (_u *ClipSubmissionUpdateOne) SetMission(v *Mission) *ClipSubmissionUpdateOne {
	return _u.SetMissionID(v.ID)
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_u *ClipSubmissionUpdateOne) SetSubmission(v *Submission) *ClipSubmissionUpdateOne {
	return _u.SetSubmissionID(v.ID)
}

// Mutation returns the ClipSubmissionMutation object of the builder.
func (_u *ClipSubmissionUpdateOne) Mutation() *ClipSubmissionMutation {
	return _u.mutation
}

// ClearClipper clears the "clipper" edge to the User entity.
func (_u *ClipSubmissionUpdateOne) ClearClipper() *ClipSubmissionUpdateOne {
	_u.mutation.ClearClipper()
	return _u
}

// ClearMission clears the "mission" edge to the Mission entity.
func (_u *ClipSubmissionUpdateOne) ClearMission() *ClipSubmissionUpdateOne {
	_u.mutation.ClearMission()
	return _u
}

// ClearSubmission clears the "submission" edge to the Submission entity.
func (_u *ClipSubmissionUpdateOne) ClearSubmission() *ClipSubmissionUpdateOne {
	_u.mutation.ClearSubmission()
	return _u
}

// Where appends a list predicates to the ClipSubmissionUpdate builder.
func (_u *ClipSubmissionUpdateOne) Where(ps ...predicate.ClipSubmission) *ClipSubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClipSubmissionUpdateOne) Select(field string, fields ...string) *ClipSubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClipSubmission entity.
func (_u *ClipSubmissionUpdateOne) Save(ctx context.Context) (*ClipSubmission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClipSubmissionUpdateOne) SaveX(ctx context.Context) *ClipSubmission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClipSubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClipSubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClipSubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.ViewsDeclared(); ok {
		if err := clipsubmission.ViewsDeclaredValidator(v); err != nil {
			return &ValidationError{Name: "views_declared", err: fmt.Errorf(`ent: validator failed for field "ClipSubmission.views_declared": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TiktokLink(); ok {
		if err := clipsubmission.TiktokLinkValidator(v); err != nil {
			return &ValidationError{Name: "tiktok_link", err: fmt.Errorf(`ent: validator failed for field "ClipSubmission.tiktok_link": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := clipsubmission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ClipSubmission.status": %w`, err)}
		}
	}
	if _u.mutation.ClipperCleared() && len(_u.mutation.ClipperIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClipSubmission.clipper"`)
	}
	if _u.mutation.MissionCleared() && len(_u.mutation.MissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClipSubmission.mission"`)
	}
	if _u.mutation.SubmissionCleared() && len(_u.mutation.SubmissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClipSubmission.submission"`)
	}
	return nil
}

func (_u *ClipSubmissionUpdateOne) sqlSave(ctx context.Context) (_node *ClipSubmission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clipsubmission.Table, clipsubmission.Columns, sqlgraph.NewFieldSpec(clipsubmission.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClipSubmission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clipsubmission.FieldID)
		for _, f := range fields {
			if !clipsubmission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != clipsubmission.FieldID {
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
	if value, ok := _u.mutation.Palier(); ok {
		_spec.SetField(clipsubmission.FieldPalier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPalier(); ok {
		_spec.AddField(clipsubmission.FieldPalier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ViewsDeclared(); ok {
		_spec.SetField(clipsubmission.FieldViewsDeclared, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedViewsDeclared(); ok {
		_spec.AddField(clipsubmission.FieldViewsDeclared, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TiktokLink(); ok {
		_spec.SetField(clipsubmission.FieldTiktokLink, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(clipsubmission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(clipsubmission.FieldReviewedBy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewedBy(); ok {
		_spec.AddField(clipsubmission.FieldReviewedBy, field.TypeInt, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(clipsubmission.FieldReviewedBy, field.TypeInt)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(clipsubmission.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(clipsubmission.FieldReviewedAt, field.TypeTime)
	}
	if _u.mutation.ClipperCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clipsubmission.ClipperTable,
			Columns: []string{clipsubmission.ClipperColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClipperIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clipsubmission.ClipperTable,
			Columns: []string{clipsubmission.ClipperColumn},
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
	if _u.mutation.MissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clipsubmission.MissionTable,
			Columns: []string{clipsubmission.MissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clipsubmission.MissionTable,
			Columns: []string{clipsubmission.MissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SubmissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clipsubmission.SubmissionTable,
			Columns: []string{clipsubmission.SubmissionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   clipsubmission.SubmissionTable,
			Columns: []string{clipsubmission.SubmissionColumn},
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
	_node = &ClipSubmission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clipsubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
