// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/ent/wallettransaction"
)

// WalletTransaction is the model entity for the WalletTransaction schema.
type WalletTransaction struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Wallet owner
	UserID int `json:"user_id,omitempty"`
	// Ledger entry type
	Type wallettransaction.Type `json:"type,omitempty"`
	// Amount in EUR, always positive; type determines direction
	Amount float64 `json:"amount,omitempty"`
	// Settlement status
	Status wallettransaction.Status `json:"status,omitempty"`
	// Related entity: submission ID, Stripe session or transfer ID
	Reference string `json:"reference,omitempty"`
	// Human-readable ledger line
	Description string `json:"description,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WalletTransactionQuery when eager-loading is set.
	Edges        WalletTransactionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WalletTransactionEdges holds the relations/edges for other nodes in the graph.
type WalletTransactionEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WalletTransactionEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WalletTransaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case wallettransaction.FieldAmount:
			values[i] = new(sql.NullFloat64)
		case wallettransaction.FieldID, wallettransaction.FieldUserID:
			values[i] = new(sql.NullInt64)
		case wallettransaction.FieldType, wallettransaction.FieldStatus, wallettransaction.FieldReference, wallettransaction.FieldDescription:
			values[i] = new(sql.NullString)
		case wallettransaction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WalletTransaction fields.
func (_m *WalletTransaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case wallettransaction.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case wallettransaction.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case wallettransaction.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = wallettransaction.Type(value.String)
			}
		case wallettransaction.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		case wallettransaction.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = wallettransaction.Status(value.String)
			}
		case wallettransaction.FieldReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference", values[i])
			} else if value.Valid {
				_m.Reference = value.String
			}
		case wallettransaction.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case wallettransaction.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the WalletTransaction.
// This includes values selected through modifiers, order, etc.
func (_m *WalletTransaction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the WalletTransaction entity.
func (_m *WalletTransaction) QueryUser() *UserQuery {
	return NewWalletTransactionClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this WalletTransaction.
// Note that you need to call WalletTransaction.Unwrap() before calling this method if this WalletTransaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WalletTransaction) Update() *WalletTransactionUpdateOne {
	return NewWalletTransactionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WalletTransaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WalletTransaction) Unwrap() *WalletTransaction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WalletTransaction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WalletTransaction) String() string {
	var builder strings.Builder
	builder.WriteString("WalletTransaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("reference=")
	builder.WriteString(_m.Reference)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WalletTransactions is a parsable slice of WalletTransaction.
type WalletTransactions []*WalletTransaction
