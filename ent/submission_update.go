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

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMissionID sets the "mission_id" field.
func (_u *SubmissionUpdate) SetMissionID(v int) *SubmissionUpdate {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableMissionID(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SubmissionUpdate) SetUserID(v int) *SubmissionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableUserID(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTiktokURL sets the "tiktok_url" field.
func (_u *SubmissionUpdate) SetTiktokURL(v string) *SubmissionUpdate {
	_u.mutation.SetTiktokURL(v)
	return _u
}

// SetNillableTiktokURL sets the "tiktok_url" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableTiktokURL(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetTiktokURL(*v)
	}
	return _u
}

// SetViewsCount sets the "views_count" field.
func (_u *SubmissionUpdate) SetViewsCount(v int) *SubmissionUpdate {
	_u.mutation.ResetViewsCount()
	_u.mutation.SetViewsCount(v)
	return _u
}

// SetNillableViewsCount sets the "views_count" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableViewsCount(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetViewsCount(*v)
	}
	return _u
}

// AddViewsCount adds value to the "views_count" field.
func (_u *SubmissionUpdate) AddViewsCount(v int) *SubmissionUpdate {
	_u.mutation.AddViewsCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdate) SetStatus(v submission.Status) *SubmissionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableStatus(v *submission.Status) *SubmissionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdate) SetUpdatedAt(v time.Time) *SubmissionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMission sets the "mission" edge to the Mission entity.
func (_u *SubmissionUpdate) SetMission(v *Mission) *SubmissionUpdate {
	return _u.SetMissionID(v.ID)
}

// SetClipperID sets the "clipper" edge to the User entity by ID.
func (_u *SubmissionUpdate) SetClipperID(id int) *SubmissionUpdate {
	_u.mutation.SetClipperID(id)
	return _u
}

// SetClipper sets the "clipper" edge to the User entity.
func (_u *SubmissionUpdate) SetClipper(v *User) *SubmissionUpdate {
	return _u.SetClipperID(v.ID)
}

// AddMilestoneIDs adds the "milestones" edge to the ClipSubmission entity by IDs.
func (_u *SubmissionUpdate) AddMilestoneIDs(ids ...int) *SubmissionUpdate {
	_u.mutation.AddMilestoneIDs(ids...)
	return _u
}

// AddMilestones adds the "milestones" edges to the ClipSubmission entity.
func (_u *SubmissionUpdate) AddMilestones(v ...*ClipSubmission) *SubmissionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMilestoneIDs(ids...)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearMission clears the "mission" edge to the Mission entity.
func (_u *SubmissionUpdate) ClearMission() *SubmissionUpdate {
	_u.mutation.ClearMission()
	return _u
}

// ClearClipper clears the "clipper" edge to the User entity.
func (_u *SubmissionUpdate) ClearClipper() *SubmissionUpdate {
	_u.mutation.ClearClipper()
	return _u
}

// ClearMilestones clears all "milestones" edges to the ClipSubmission entity.
func (_u *SubmissionUpdate) ClearMilestones() *SubmissionUpdate {
	_u.mutation.ClearMilestones()
	return _u
}

// RemoveMilestoneIDs removes the "milestones" edge to ClipSubmission entities by IDs.
func (_u *SubmissionUpdate) RemoveMilestoneIDs(ids ...int) *SubmissionUpdate {
	_u.mutation.RemoveMilestoneIDs(ids...)
	return _u
}

// RemoveMilestones removes "milestones" edges to ClipSubmission entities.
func (_u *SubmissionUpdate) RemoveMilestones(v ...*ClipSubmission) *SubmissionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMilestoneIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdate) check() error {
	if v, ok := _u.mutation.TiktokURL(); ok {
		if err := submission.TiktokURLValidator(v); err != nil {
			return &ValidationError{Name: "tiktok_url", err: fmt.Errorf(`ent: validator failed for field "Submission.tiktok_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ViewsCount(); ok {
		if err := submission.ViewsCountValidator(v); err != nil {
			return &ValidationError{Name: "views_count", err: fmt.Errorf(`ent: validator failed for field "Submission.views_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if _u.mutation.MissionCleared() && len(_u.mutation.MissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.mission"`)
	}
	if _u.mutation.ClipperCleared() && len(_u.mutation.ClipperIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.clipper"`)
	}
	return nil
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TiktokURL(); ok {
		_spec.SetField(submission.FieldTiktokURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ViewsCount(); ok {
		_spec.SetField(submission.FieldViewsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedViewsCount(); ok {
		_spec.AddField(submission.FieldViewsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.MissionTable,
			Columns: []string{submission.MissionColumn},
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
			Table:   submission.MissionTable,
			Columns: []string{submission.MissionColumn},
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
	if _u.mutation.ClipperCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.ClipperTable,
			Columns: []string{submission.ClipperColumn},
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
			Table:   submission.ClipperTable,
			Columns: []string{submission.ClipperColumn},
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
	if _u.mutation.MilestonesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.MilestonesTable,
			Columns: []string{submission.MilestonesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clipsubmission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMilestonesIDs(); len(nodes) > 0 && !_u.mutation.MilestonesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.MilestonesTable,
			Columns: []string{submission.MilestonesColumn},
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
	if nodes := _u.mutation.MilestonesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.MilestonesTable,
			Columns: []string{submission.MilestonesColumn},
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
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetMissionID sets the "mission_id" field.
func (_u *SubmissionUpdateOne) SetMissionID(v int) *SubmissionUpdateOne {
	_u.mutation.SetMissionID(v)
	return _u
}

// SetNillableMissionID sets the "mission_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableMissionID(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetMissionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SubmissionUpdateOne) SetUserID(v int) *SubmissionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableUserID(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTiktokURL sets the "tiktok_url" field.
func (_u *SubmissionUpdateOne) SetTiktokURL(v string) *SubmissionUpdateOne {
	_u.mutation.SetTiktokURL(v)
	return _u
}

// SetNillableTiktokURL sets the "tiktok_url" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableTiktokURL(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetTiktokURL(*v)
	}
	return _u
}

// SetViewsCount sets the "views_count" field.
func (_u *SubmissionUpdateOne) SetViewsCount(v int) *SubmissionUpdateOne {
	_u.mutation.ResetViewsCount()
	_u.mutation.SetViewsCount(v)
	return _u
}

// SetNillableViewsCount sets the "views_count" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableViewsCount(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetViewsCount(*v)
	}
	return _u
}

// AddViewsCount adds value to the "views_count" field.
func (_u *SubmissionUpdateOne) AddViewsCount(v int) *SubmissionUpdateOne {
	_u.mutation.AddViewsCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionUpdateOne) SetStatus(v submission.Status) *SubmissionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableStatus(v *submission.Status) *SubmissionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionUpdateOne) SetUpdatedAt(v time.Time) *SubmissionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMission sets the "mission" edge to the Mission entity.
func (_u *SubmissionUpdateOne) SetMission(v *Mission) *SubmissionUpdateOne {
	return _u.SetMissionID(v.ID)
}

// SetClipperID sets the "clipper" edge to the User entity by ID.
func (_u *SubmissionUpdateOne) SetClipperID(id int) *SubmissionUpdateOne {
	_u.mutation.SetClipperID(id)
	return _u
}

// SetClipper sets the "clipper" edge to the User entity.
func (_u *SubmissionUpdateOne) SetClipper(v *User) *SubmissionUpdateOne {
	return _u.SetClipperID(v.ID)
}

// AddMilestoneIDs adds the "milestones" edge to the ClipSubmission entity by IDs.
func (_u *SubmissionUpdateOne) AddMilestoneIDs(ids ...int) *SubmissionUpdateOne {
	_u.mutation.AddMilestoneIDs(ids...)
	return _u
}

// AddMilestones adds the "milestones" edges to the ClipSubmission entity.
func (_u *SubmissionUpdateOne) AddMilestones(v ...*ClipSubmission) *SubmissionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMilestoneIDs(ids...)
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// ClearMission clears the "mission" edge to the Mission entity.
func (_u *SubmissionUpdateOne) ClearMission() *SubmissionUpdateOne {
	_u.mutation.ClearMission()
	return _u
}

// ClearClipper clears the "clipper" edge to the User entity.
func (_u *SubmissionUpdateOne) ClearClipper() *SubmissionUpdateOne {
	_u.mutation.ClearClipper()
	return _u
}

// ClearMilestones clears all "milestones" edges to the ClipSubmission entity.
func (_u *SubmissionUpdateOne) ClearMilestones() *SubmissionUpdateOne {
	_u.mutation.ClearMilestones()
	return _u
}

// RemoveMilestoneIDs removes the "milestones" edge to ClipSubmission entities by IDs.
func (_u *SubmissionUpdateOne) RemoveMilestoneIDs(ids ...int) *SubmissionUpdateOne {
	_u.mutation.RemoveMilestoneIDs(ids...)
	return _u
}

// RemoveMilestones removes "milestones" edges to ClipSubmission entities.
func (_u *SubmissionUpdateOne) RemoveMilestones(v ...*ClipSubmission) *SubmissionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMilestoneIDs(ids...)
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submission.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.TiktokURL(); ok {
		if err := submission.TiktokURLValidator(v); err != nil {
			return &ValidationError{Name: "tiktok_url", err: fmt.Errorf(`ent: validator failed for field "Submission.tiktok_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ViewsCount(); ok {
		if err := submission.ViewsCountValidator(v); err != nil {
			return &ValidationError{Name: "views_count", err: fmt.Errorf(`ent: validator failed for field "Submission.views_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := submission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Submission.status": %w`, err)}
		}
	}
	if _u.mutation.MissionCleared() && len(_u.mutation.MissionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.mission"`)
	}
	if _u.mutation.ClipperCleared() && len(_u.mutation.ClipperIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Submission.clipper"`)
	}
	return nil
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
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
	if value, ok := _u.mutation.TiktokURL(); ok {
		_spec.SetField(submission.FieldTiktokURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.ViewsCount(); ok {
		_spec.SetField(submission.FieldViewsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedViewsCount(); ok {
		_spec.AddField(submission.FieldViewsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submission.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submission.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MissionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.MissionTable,
			Columns: []string{submission.MissionColumn},
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
			Table:   submission.MissionTable,
			Columns: []string{submission.MissionColumn},
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
	if _u.mutation.ClipperCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submission.ClipperTable,
			Columns: []string{submission.ClipperColumn},
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
			Table:   submission.ClipperTable,
			Columns: []string{submission.ClipperColumn},
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
	if _u.mutation.MilestonesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.MilestonesTable,
			Columns: []string{submission.MilestonesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clipsubmission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMilestonesIDs(); len(nodes) > 0 && !_u.mutation.MilestonesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.MilestonesTable,
			Columns: []string{submission.MilestonesColumn},
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
	if nodes := _u.mutation.MilestonesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   submission.MilestonesTable,
			Columns: []string{submission.MilestonesColumn},
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
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
