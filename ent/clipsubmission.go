// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cliptokk/api/ent/clipsubmission"
	"github.com/cliptokk/api/ent/mission"
	"github.com/cliptokk/api/ent/submission"
	"github.com/cliptokk/api/ent/user"
)

// ClipSubmission is the model entity for the ClipSubmission schema.
type ClipSubmission struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Declaring clipper
	UserID int `json:"user_id,omitempty"`
	// Mission of the underlying submission
	MissionID int `json:"mission_id,omitempty"`
	// Submission the declared views belong to
	SubmissionID int `json:"submission_id,omitempty"`
	// Declared milestone tier (10000, 100000 or 1000000 views)
	Palier int `json:"palier,omitempty"`
	// View count claimed by the clipper
	ViewsDeclared int `json:"views_declared,omitempty"`
	// TikTok URL backing the declaration
	TiktokLink string `json:"tiktok_link,omitempty"`
	// Admin review status
	Status clipsubmission.Status `json:"status,omitempty"`
	// Admin who decided the declaration
	ReviewedBy *int `json:"reviewed_by,omitempty"`
	// When the declaration was decided
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClipSubmissionQuery when eager-loading is set.
	Edges        ClipSubmissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClipSubmissionEdges holds the relations/edges for other nodes in the graph.
type ClipSubmissionEdges struct {
	// Clipper holds the value of the clipper edge.
	Clipper *User `json:"clipper,omitempty"`
	// Mission holds the value of the mission edge.
	Mission *Mission `json:"mission,omitempty"`
	// Submission holds the value of the submission edge.
	Submission *Submission `json:"submission,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ClipperOrErr returns the Clipper value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClipSubmissionEdges) ClipperOrErr() (*User, error) {
	if e.Clipper != nil {
		return e.Clipper, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "clipper"}
}

// MissionOrErr returns the Mission value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClipSubmissionEdges) MissionOrErr() (*Mission, error) {
	if e.Mission != nil {
		return e.Mission, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: mission.Label}
	}
	return nil, &NotLoadedError{edge: "mission"}
}

// SubmissionOrErr returns the Submission value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClipSubmissionEdges) SubmissionOrErr() (*Submission, error) {
	if e.Submission != nil {
		return e.Submission, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: submission.Label}
	}
	return nil, &NotLoadedError{edge: "submission"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClipSubmission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clipsubmission.FieldID, clipsubmission.FieldUserID, clipsubmission.FieldMissionID, clipsubmission.FieldSubmissionID, clipsubmission.FieldPalier, clipsubmission.FieldViewsDeclared, clipsubmission.FieldReviewedBy:
			values[i] = new(sql.NullInt64)
		case clipsubmission.FieldTiktokLink, clipsubmission.FieldStatus:
			values[i] = new(sql.NullString)
		case clipsubmission.FieldReviewedAt, clipsubmission.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClipSubmission fields.
func (_m *ClipSubmission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clipsubmission.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case clipsubmission.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case clipsubmission.FieldMissionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mission_id", values[i])
			} else if value.Valid {
				_m.MissionID = int(value.Int64)
			}
		case clipsubmission.FieldSubmissionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field submission_id", values[i])
			} else if value.Valid {
				_m.SubmissionID = int(value.Int64)
			}
		case clipsubmission.FieldPalier:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field palier", values[i])
			} else if value.Valid {
				_m.Palier = int(value.Int64)
			}
		case clipsubmission.FieldViewsDeclared:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field views_declared", values[i])
			} else if value.Valid {
				_m.ViewsDeclared = int(value.Int64)
			}
		case clipsubmission.FieldTiktokLink:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tiktok_link", values[i])
			} else if value.Valid {
				_m.TiktokLink = value.String
			}
		case clipsubmission.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = clipsubmission.Status(value.String)
			}
		case clipsubmission.FieldReviewedBy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_by", values[i])
			} else if value.Valid {
				_m.ReviewedBy = new(int)
				*_m.ReviewedBy = int(value.Int64)
			}
		case clipsubmission.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = new(time.Time)
				*_m.ReviewedAt = value.Time
			}
		case clipsubmission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClipSubmission.
// This includes values selected through modifiers, order, etc.
func (_m *ClipSubmission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClipper queries the "clipper" edge of the ClipSubmission entity.
func (_m *ClipSubmission) QueryClipper() *UserQuery {
	return NewClipSubmissionClient(_m.config).QueryClipper(_m)
}

// QueryMission queries the "mission" edge of the ClipSubmission entity.
func (_m *ClipSubmission) QueryMission() *MissionQuery {
	return NewClipSubmissionClient(_m.config).QueryMission(_m)
}

// QuerySubmission queries the "submission" edge of the ClipSubmission entity.
func (_m *ClipSubmission) QuerySubmission() *SubmissionQuery {
	return NewClipSubmissionClient(_m.config).QuerySubmission(_m)
}

// Update returns a builder for updating this ClipSubmission.
// Note that you need to call ClipSubmission.Unwrap() before calling this method if this ClipSubmission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClipSubmission) Update() *ClipSubmissionUpdateOne {
	return NewClipSubmissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClipSubmission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClipSubmission) Unwrap() *ClipSubmission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ClipSubmission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClipSubmission) String() string {
	var builder strings.Builder
	builder.WriteString("ClipSubmission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("mission_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MissionID))
	builder.WriteString(", ")
	builder.WriteString("submission_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubmissionID))
	builder.WriteString(", ")
	builder.WriteString("palier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Palier))
	builder.WriteString(", ")
	builder.WriteString("views_declared=")
	builder.WriteString(fmt.Sprintf("%v", _m.ViewsDeclared))
	builder.WriteString(", ")
	builder.WriteString("tiktok_link=")
	builder.WriteString(_m.TiktokLink)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ReviewedBy; v != nil {
		builder.WriteString("reviewed_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReviewedAt; v != nil {
		builder.WriteString("reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ClipSubmissions is a parsable slice of ClipSubmission.
type ClipSubmissions []*ClipSubmission
