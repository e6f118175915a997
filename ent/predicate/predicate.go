// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// ClipSubmission is the predicate function for clipsubmission builders.
type ClipSubmission func(*sql.Selector)

// Mission is the predicate function for mission builders.
type Mission func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WalletTransaction is the predicate function for wallettransaction builders.
type WalletTransaction func(*sql.Selector)
