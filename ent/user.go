// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cliptokk/api/ent/user"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// User email address
	Email string `json:"email,omitempty"`
	// Bcrypt hashed password
	PasswordHash string `json:"-"`
	// Public display name, unique across the marketplace
	Pseudo string `json:"pseudo,omitempty"`
	// Marketplace role, assigned during onboarding
	Role user.Role `json:"role,omitempty"`
	// Linked TikTok account handle
	TiktokUsername *string `json:"tiktok_username,omitempty"`
	// Public URL of the uploaded avatar
	AvatarURL *string `json:"avatar_url,omitempty"`
	// Contact phone required before payouts (E.164)
	PayoutPhone *string `json:"payout_phone,omitempty"`
	// Lifetime approved earnings in EUR
	TotalEarnings float64 `json:"total_earnings,omitempty"`
	// Stripe customer ID for wallet recharges
	StripeCustomerID *string `json:"stripe_customer_id,omitempty"`
	// Stripe Connect account ID for payouts
	StripeAccountID *string `json:"stripe_account_id,omitempty"`
	// Whether email is verified
	EmailVerified bool `json:"email_verified,omitempty"`
	// Token for email verification
	EmailVerificationToken *string `json:"-"`
	// Expiration time for verification token
	EmailVerificationTokenExpiresAt *time.Time `json:"email_verification_token_expires_at,omitempty"`
	// When email was verified
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	// Whether role selection and profile setup are done
	OnboardingCompleted bool `json:"onboarding_completed,omitempty"`
	// Last login timestamp
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Soft delete timestamp
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserQuery when eager-loading is set.
	Edges        UserEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserEdges holds the relations/edges for other nodes in the graph.
type UserEdges struct {
	// Missions funded by this creator
	Missions []*Mission `json:"missions,omitempty"`
	// Clips submitted by this clipper
	Submissions []*Submission `json:"submissions,omitempty"`
	// Milestone declarations by this clipper
	ClipSubmissions []*ClipSubmission `json:"clip_submissions,omitempty"`
	// Wallet ledger entries
	WalletTransactions []*WalletTransaction `json:"wallet_transactions,omitempty"`
	// User's audit log entries
	AuditLogs []*AuditLog `json:"audit_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// MissionsOrErr returns the Missions value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) MissionsOrErr() ([]*Mission, error) {
	if e.loadedTypes[0] {
		return e.Missions, nil
	}
	return nil, &NotLoadedError{edge: "missions"}
}

// SubmissionsOrErr returns the Submissions value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) SubmissionsOrErr() ([]*Submission, error) {
	if e.loadedTypes[1] {
		return e.Submissions, nil
	}
	return nil, &NotLoadedError{edge: "submissions"}
}

// ClipSubmissionsOrErr returns the ClipSubmissions value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ClipSubmissionsOrErr() ([]*ClipSubmission, error) {
	if e.loadedTypes[2] {
		return e.ClipSubmissions, nil
	}
	return nil, &NotLoadedError{edge: "clip_submissions"}
}

// WalletTransactionsOrErr returns the WalletTransactions value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) WalletTransactionsOrErr() ([]*WalletTransaction, error) {
	if e.loadedTypes[3] {
		return e.WalletTransactions, nil
	}
	return nil, &NotLoadedError{edge: "wallet_transactions"}
}

// AuditLogsOrErr returns the AuditLogs value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) AuditLogsOrErr() ([]*AuditLog, error) {
	if e.loadedTypes[4] {
		return e.AuditLogs, nil
	}
	return nil, &NotLoadedError{edge: "audit_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldEmailVerified, user.FieldOnboardingCompleted:
			values[i] = new(sql.NullBool)
		case user.FieldTotalEarnings:
			values[i] = new(sql.NullFloat64)
		case user.FieldID:
			values[i] = new(sql.NullInt64)
		case user.FieldEmail, user.FieldPasswordHash, user.FieldPseudo, user.FieldRole, user.FieldTiktokUsername, user.FieldAvatarURL, user.FieldPayoutPhone, user.FieldStripeCustomerID, user.FieldStripeAccountID, user.FieldEmailVerificationToken:
			values[i] = new(sql.NullString)
		case user.FieldEmailVerificationTokenExpiresAt, user.FieldEmailVerifiedAt, user.FieldLastLoginAt, user.FieldCreatedAt, user.FieldUpdatedAt, user.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case user.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case user.FieldPasswordHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_hash", values[i])
			} else if value.Valid {
				_m.PasswordHash = value.String
			}
		case user.FieldPseudo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pseudo", values[i])
			} else if value.Valid {
				_m.Pseudo = value.String
			}
		case user.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = user.Role(value.String)
			}
		case user.FieldTiktokUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tiktok_username", values[i])
			} else if value.Valid {
				_m.TiktokUsername = new(string)
				*_m.TiktokUsername = value.String
			}
		case user.FieldAvatarURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field avatar_url", values[i])
			} else if value.Valid {
				_m.AvatarURL = new(string)
				*_m.AvatarURL = value.String
			}
		case user.FieldPayoutPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payout_phone", values[i])
			} else if value.Valid {
				_m.PayoutPhone = new(string)
				*_m.PayoutPhone = value.String
			}
		case user.FieldTotalEarnings:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_earnings", values[i])
			} else if value.Valid {
				_m.TotalEarnings = value.Float64
			}
		case user.FieldStripeCustomerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_customer_id", values[i])
			} else if value.Valid {
				_m.StripeCustomerID = new(string)
				*_m.StripeCustomerID = value.String
			}
		case user.FieldStripeAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_account_id", values[i])
			} else if value.Valid {
				_m.StripeAccountID = new(string)
				*_m.StripeAccountID = value.String
			}
		case user.FieldEmailVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_verified", values[i])
			} else if value.Valid {
				_m.EmailVerified = value.Bool
			}
		case user.FieldEmailVerificationToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email_verification_token", values[i])
			} else if value.Valid {
				_m.EmailVerificationToken = new(string)
				*_m.EmailVerificationToken = value.String
			}
		case user.FieldEmailVerificationTokenExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field email_verification_token_expires_at", values[i])
			} else if value.Valid {
				_m.EmailVerificationTokenExpiresAt = new(time.Time)
				*_m.EmailVerificationTokenExpiresAt = value.Time
			}
		case user.FieldEmailVerifiedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field email_verified_at", values[i])
			} else if value.Valid {
				_m.EmailVerifiedAt = new(time.Time)
				*_m.EmailVerifiedAt = value.Time
			}
		case user.FieldOnboardingCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field onboarding_completed", values[i])
			} else if value.Valid {
				_m.OnboardingCompleted = value.Bool
			}
		case user.FieldLastLoginAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_login_at", values[i])
			} else if value.Valid {
				_m.LastLoginAt = new(time.Time)
				*_m.LastLoginAt = value.Time
			}
		case user.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case user.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case user.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMissions queries the "missions" edge of the User entity.
func (_m *User) QueryMissions() *MissionQuery {
	return NewUserClient(_m.config).QueryMissions(_m)
}

// QuerySubmissions queries the "submissions" edge of the User entity.
func (_m *User) QuerySubmissions() *SubmissionQuery {
	return NewUserClient(_m.config).QuerySubmissions(_m)
}

// QueryClipSubmissions queries the "clip_submissions" edge of the User entity.
func (_m *User) QueryClipSubmissions() *ClipSubmissionQuery {
	return NewUserClient(_m.config).QueryClipSubmissions(_m)
}

// QueryWalletTransactions queries the "wallet_transactions" edge of the User entity.
func (_m *User) QueryWalletTransactions() *WalletTransactionQuery {
	return NewUserClient(_m.config).QueryWalletTransactions(_m)
}

// QueryAuditLogs queries the "audit_logs" edge of the User entity.
func (_m *User) QueryAuditLogs() *AuditLogQuery {
	return NewUserClient(_m.config).QueryAuditLogs(_m)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("password_hash=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("pseudo=")
	builder.WriteString(_m.Pseudo)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	if v := _m.TiktokUsername; v != nil {
		builder.WriteString("tiktok_username=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AvatarURL; v != nil {
		builder.WriteString("avatar_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PayoutPhone; v != nil {
		builder.WriteString("payout_phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("total_earnings=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalEarnings))
	builder.WriteString(", ")
	if v := _m.StripeCustomerID; v != nil {
		builder.WriteString("stripe_customer_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StripeAccountID; v != nil {
		builder.WriteString("stripe_account_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("email_verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailVerified))
	builder.WriteString(", ")
	builder.WriteString("email_verification_token=<sensitive>")
	builder.WriteString(", ")
	if v := _m.EmailVerificationTokenExpiresAt; v != nil {
		builder.WriteString("email_verification_token_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EmailVerifiedAt; v != nil {
		builder.WriteString("email_verified_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("onboarding_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.OnboardingCompleted))
	builder.WriteString(", ")
	if v := _m.LastLoginAt; v != nil {
		builder.WriteString("last_login_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
