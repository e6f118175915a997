// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cliptokk/api/ent/clipsubmission"
	"github.com/cliptokk/api/ent/mission"
	"github.com/cliptokk/api/ent/submission"
	"github.com/cliptokk/api/ent/user"
)

// ClipSubmissionCreate is the builder for creating a ClipSubmission entity.
type ClipSubmissionCreate struct {
	config
	mutation *ClipSubmissionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ClipSubmissionCreate) SetUserID(v int) *ClipSubmissionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetMissionID sets the "mission_id" field.
func (_c *ClipSubmissionCreate) SetMissionID(v int) *ClipSubmissionCreate {
	_c.mutation.SetMissionID(v)
	return _c
}

// SetSubmissionID sets the "submission_id" field.
func (_c *ClipSubmissionCreate) SetSubmissionID(v int) *ClipSubmissionCreate {
	_c.mutation.SetSubmissionID(v)
	return _c
}

// SetPalier sets the "palier" field.
func (_c *ClipSubmissionCreate) SetPalier(v int) *ClipSubmissionCreate {
	_c.mutation.SetPalier(v)
	return _c
}

// SetViewsDeclared sets the "views_declared" field.
func (_c *ClipSubmissionCreate) SetViewsDeclared(v int) *ClipSubmissionCreate {
	_c.mutation.SetViewsDeclared(v)
	return _c
}

// SetTiktokLink sets the "tiktok_link" field.
func (_c *ClipSubmissionCreate) SetTiktokLink(v string) *ClipSubmissionCreate {
	_c.mutation.SetTiktokLink(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ClipSubmissionCreate) SetStatus(v clipsubmission.Status) *ClipSubmissionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ClipSubmissionCreate) SetNillableStatus(v *clipsubmission.Status) *ClipSubmissionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReviewedBy sets the "reviewed_by" field.
func (_c *ClipSubmissionCreate) SetReviewedBy(v int) *ClipSubmissionCreate {
	_c.mutation.SetReviewedBy(v)
	return _c
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_c *ClipSubmissionCreate) SetNillableReviewedBy(v *int) *ClipSubmissionCreate {
	if v != nil {
		_c.SetReviewedBy(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *ClipSubmissionCreate) SetReviewedAt(v time.Time) *ClipSubmissionCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *ClipSubmissionCreate) SetNillableReviewedAt(v *time.Time) *ClipSubmissionCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClipSubmissionCreate) SetCreatedAt(v time.Time) *ClipSubmissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClipSubmissionCreate) SetNillableCreatedAt(v *time.Time) *ClipSubmissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetClipperID sets the "clipper" edge to the User entity by ID.
func (_c *ClipSubmissionCreate) SetClipperID(id int) *ClipSubmissionCreate {
	_c.mutation.SetClipperID(id)
	return _c
}

// SetClipper sets the "clipper" edge to the User entity.
func (_c *ClipSubmissionCreate) SetClipper(v *User) *ClipSubmissionCreate {
	return _c.SetClipperID(v.ID)
}

// SetMission sets the "mission" edge to the Mission entity.
func (_c *ClipSubmissionCreate) SetMission(v *Mission) *ClipSubmissionCreate {
	return _c.SetMissionID(v.ID)
}

// SetSubmission sets the "submission" edge to the Submission entity.
func (_c *ClipSubmissionCreate) SetSubmission(v *Submission) *ClipSubmissionCreate {
	return _c.SetSubmissionID(v.ID)
}

// Mutation returns the ClipSubmissionMutation object of the builder.
func (_c *ClipSubmissionCreate) Mutation() *ClipSubmissionMutation {
	return _c.mutation
}

// Save creates the ClipSubmission in the database.
func (_c *ClipSubmissionCreate) Save(ctx context.Context) (*ClipSubmission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClipSubmissionCreate) SaveX(ctx context.Context) *ClipSubmission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClipSubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClipSubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClipSubmissionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := clipsubmission.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clipsubmission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClipSubmissionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ClipSubmission.user_id"`)}
	}
	if _, ok := _c.mutation.MissionID(); !ok {
		return &ValidationError{Name: "mission_id", err: errors.New(`ent: missing required field "ClipSubmission.mission_id"`)}
	}
	if _, ok := _c.mutation.SubmissionID(); !ok {
		return &ValidationError{Name: "submission_id", err: errors.New(`ent: missing required field "ClipSubmission.submission_id"`)}
	}
	if _, ok := _c.mutation.Palier(); !ok {
		return &ValidationError{Name: "palier", err: errors.New(`ent: missing required field "ClipSubmission.palier"`)}
	}
	if _, ok := _c.mutation.ViewsDeclared(); !ok {
		return &ValidationError{Name: "views_declared", err: errors.New(`ent: missing required field "ClipSubmission.views_declared"`)}
	}
	if v, ok := _c.mutation.ViewsDeclared(); ok {
		if err := clipsubmission.ViewsDeclaredValidator(v); err != nil {
			return &ValidationError{Name: "views_declared", err: fmt.Errorf(`ent: validator failed for field "ClipSubmission.views_declared": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TiktokLink(); !ok {
		return &ValidationError{Name: "tiktok_link", err: errors.New(`ent: missing required field "ClipSubmission.tiktok_link"`)}
	}
	if v, ok := _c.mutation.TiktokLink(); ok {
		if err := clipsubmission.TiktokLinkValidator(v); err != nil {
			return &ValidationError{Name: "tiktok_link", err: fmt.Errorf(`ent: validator failed for field "ClipSubmission.tiktok_link": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ClipSubmission.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := clipsubmission.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ClipSubmission.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ClipSubmission.created_at"`)}
	}
	if len(_c.mutation.ClipperIDs()) == 0 {
		return &ValidationError{Name: "clipper", err: errors.New(`ent: missing required edge "ClipSubmission.clipper"`)}
	}
	if len(_c.mutation.MissionIDs()) == 0 {
		return &ValidationError{Name: "mission", err: errors.New(`ent: missing required edge "ClipSubmission.mission"`)}
	}
	if len(_c.mutation.SubmissionIDs()) == 0 {
		return &ValidationError{Name: "submission", err: errors.New(`ent: missing required edge "ClipSubmission.submission"`)}
	}
	return nil
}

func (_c *ClipSubmissionCreate) sqlSave(ctx context.Context) (*ClipSubmission, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClipSubmissionCreate) createSpec() (*ClipSubmission, *sqlgraph.CreateSpec) {
	var (
		_node = &ClipSubmission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clipsubmission.Table, sqlgraph.NewFieldSpec(clipsubmission.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Palier(); ok {
		_spec.SetField(clipsubmission.FieldPalier, field.TypeInt, value)
		_node.Palier = value
	}
	if value, ok := _c.mutation.ViewsDeclared(); ok {
		_spec.SetField(clipsubmission.FieldViewsDeclared, field.TypeInt, value)
		_node.ViewsDeclared = value
	}
	if value, ok := _c.mutation.TiktokLink(); ok {
		_spec.SetField(clipsubmission.FieldTiktokLink, field.TypeString, value)
		_node.TiktokLink = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(clipsubmission.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ReviewedBy(); ok {
		_spec.SetField(clipsubmission.FieldReviewedBy, field.TypeInt, value)
		_node.ReviewedBy = &value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(clipsubmission.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clipsubmission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ClipperIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MissionIDs(); len(nodes) > 0 {
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
		_node.MissionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SubmissionIDs(); len(nodes) > 0 {
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
		_node.SubmissionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ClipSubmissionCreateBulk is the builder for creating many ClipSubmission entities in bulk.
type ClipSubmissionCreateBulk struct {
	config
	err      error
	builders []*ClipSubmissionCreate
}

// Save creates the ClipSubmission entities in the database.
func (_c *ClipSubmissionCreateBulk) Save(ctx context.Context) ([]*ClipSubmission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClipSubmission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClipSubmissionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ClipSubmissionCreateBulk) SaveX(ctx context.Context) []*ClipSubmission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClipSubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClipSubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
