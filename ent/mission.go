// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cliptokk/api/ent/mission"
	"github.com/cliptokk/api/ent/user"
)

// Mission is the model entity for the Mission schema.
type Mission struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Mission title shown in the marketplace
	Title string `json:"title,omitempty"`
	// What the creator expects from clips
	Description string `json:"description,omitempty"`
	// Owning creator user ID
	CreatorID int `json:"creator_id,omitempty"`
	// Payout rate in EUR per 1000 views
	PricePer1kViews float64 `json:"price_per_1k_views,omitempty"`
	// Total budget in EUR, immutable after creation
	TotalBudget float64 `json:"total_budget,omitempty"`
	// Budget consumed by approved earnings
	Spent float64 `json:"spent,omitempty"`
	// Mission lifecycle status
	Status mission.Status `json:"status,omitempty"`
	// Content category (gaming, lifestyle, ...)
	Category string `json:"category,omitempty"`
	// Target platforms, e.g. [tiktok]
	Platforms []string `json:"platforms,omitempty"`
	// Original video the clips should be cut from
	SourceVideoURL string `json:"source_video_url,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MissionQuery when eager-loading is set.
	Edges        MissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MissionEdges holds the relations/edges for other nodes in the graph.
type MissionEdges struct {
	// Creator who funds this mission
	Creator *User `json:"creator,omitempty"`
	// Clips submitted against this mission
	Submissions []*Submission `json:"submissions,omitempty"`
	// Milestone declarations against this mission
	ClipSubmissions []*ClipSubmission `json:"clip_submissions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CreatorOrErr returns the Creator value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MissionEdges) CreatorOrErr() (*User, error) {
	if e.Creator != nil {
		return e.Creator, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "creator"}
}

// SubmissionsOrErr returns the Submissions value or an error if the edge
// was not loaded in eager-loading.
func (e MissionEdges) SubmissionsOrErr() ([]*Submission, error) {
	if e.loadedTypes[1] {
		return e.Submissions, nil
	}
	return nil, &NotLoadedError{edge: "submissions"}
}

// ClipSubmissionsOrErr returns the ClipSubmissions value or an error if the edge
// was not loaded in eager-loading.
func (e MissionEdges) ClipSubmissionsOrErr() ([]*ClipSubmission, error) {
	if e.loadedTypes[2] {
		return e.ClipSubmissions, nil
	}
	return nil, &NotLoadedError{edge: "clip_submissions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Mission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mission.FieldPlatforms:
			values[i] = new([]byte)
		case mission.FieldPricePer1kViews, mission.FieldTotalBudget, mission.FieldSpent:
			values[i] = new(sql.NullFloat64)
		case mission.FieldID, mission.FieldCreatorID:
			values[i] = new(sql.NullInt64)
		case mission.FieldTitle, mission.FieldDescription, mission.FieldStatus, mission.FieldCategory, mission.FieldSourceVideoURL:
			values[i] = new(sql.NullString)
		case mission.FieldCreatedAt, mission.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Mission fields.
func (_m *Mission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mission.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case mission.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case mission.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case mission.FieldCreatorID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field creator_id", values[i])
			} else if value.Valid {
				_m.CreatorID = int(value.Int64)
			}
		case mission.FieldPricePer1kViews:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price_per_1k_views", values[i])
			} else if value.Valid {
				_m.PricePer1kViews = value.Float64
			}
		case mission.FieldTotalBudget:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_budget", values[i])
			} else if value.Valid {
				_m.TotalBudget = value.Float64
			}
		case mission.FieldSpent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field spent", values[i])
			} else if value.Valid {
				_m.Spent = value.Float64
			}
		case mission.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = mission.Status(value.String)
			}
		case mission.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case mission.FieldPlatforms:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field platforms", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Platforms); err != nil {
					return fmt.Errorf("unmarshal field platforms: %w", err)
				}
			}
		case mission.FieldSourceVideoURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_video_url", values[i])
			} else if value.Valid {
				_m.SourceVideoURL = value.String
			}
		case mission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case mission.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Mission.
// This includes values selected through modifiers, order, etc.
func (_m *Mission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCreator queries the "creator" edge of the Mission entity.
func (_m *Mission) QueryCreator() *UserQuery {
	return NewMissionClient(_m.config).QueryCreator(_m)
}

// QuerySubmissions queries the "submissions" edge of the Mission entity.
func (_m *Mission) QuerySubmissions() *SubmissionQuery {
	return NewMissionClient(_m.config).QuerySubmissions(_m)
}

// QueryClipSubmissions queries the "clip_submissions" edge of the Mission entity.
func (_m *Mission) QueryClipSubmissions() *ClipSubmissionQuery {
	return NewMissionClient(_m.config).QueryClipSubmissions(_m)
}

// Update returns a builder for updating this Mission.
// Note that you need to call Mission.Unwrap() before calling this method if this Mission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Mission) Update() *MissionUpdateOne {
	return NewMissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Mission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Mission) Unwrap() *Mission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Mission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Mission) String() string {
	var builder strings.Builder
	builder.WriteString("Mission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("creator_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatorID))
	builder.WriteString(", ")
	builder.WriteString("price_per_1k_views=")
	builder.WriteString(fmt.Sprintf("%v", _m.PricePer1kViews))
	builder.WriteString(", ")
	builder.WriteString("total_budget=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalBudget))
	builder.WriteString(", ")
	builder.WriteString("spent=")
	builder.WriteString(fmt.Sprintf("%v", _m.Spent))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("platforms=")
	builder.WriteString(fmt.Sprintf("%v", _m.Platforms))
	builder.WriteString(", ")
	builder.WriteString("source_video_url=")
	builder.WriteString(_m.SourceVideoURL)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Missions is a parsable slice of Mission.
type Missions []*Mission
