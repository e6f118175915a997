package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeInternal            = "INTERNAL_ERROR"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeAlreadySubmitted    = "ALREADY_SUBMITTED"
	ErrCodeAlreadyDecided      = "ALREADY_DECIDED"
	ErrCodeInsufficientBalance = "INSUFFICIENT_BALANCE"
)

// Error constructors

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string) error {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError creates a new validation error
func NewValidationError(msg string) error {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError() error {
	return &DomainError{
		Code:    ErrCodeUnauthorized,
		Message: "Authentication required",
	}
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(msg string) error {
	return &DomainError{
		Code:    ErrCodeForbidden,
		Message: msg,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(err error) error {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: "An internal error occurred",
		Err:     err,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(msg string) error {
	return &DomainError{
		Code:    ErrCodeConflict,
		Message: msg,
	}
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(msg string) error {
	return &DomainError{
		Code:    ErrCodeBadRequest,
		Message: msg,
	}
}

// AlreadySubmittedError reports that a clipper already has a submission for
// a mission. It carries the existing submission ID so callers can redirect
// to it instead of retrying.
type AlreadySubmittedError struct {
	DomainError
	SubmissionID int
}

// NewAlreadySubmittedError creates an already-submitted error pointing at
// the existing submission.
func NewAlreadySubmittedError(submissionID int) error {
	return &AlreadySubmittedError{
		DomainError: DomainError{
			Code:    ErrCodeAlreadySubmitted,
			Message: "You already submitted a clip for this mission",
		},
		SubmissionID: submissionID,
	}
}

// NewAlreadyDecidedError reports that another admin decided a milestone
// first; the losing decision must not be applied silently.
func NewAlreadyDecidedError() error {
	return &DomainError{
		Code:    ErrCodeAlreadyDecided,
		Message: "This milestone has already been decided",
	}
}

// NewInsufficientBalanceError reports a payout request exceeding the
// available wallet balance.
func NewInsufficientBalanceError(available float64) error {
	return &DomainError{
		Code:    ErrCodeInsufficientBalance,
		Message: fmt.Sprintf("Insufficient balance: %.2f EUR available", available),
	}
}

// Helper functions to check error types

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return GetErrorCode(err) == ErrCodeNotFound
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return GetErrorCode(err) == ErrCodeValidation
}

// IsUnauthorized checks if the error is an unauthorized error
func IsUnauthorized(err error) bool {
	return GetErrorCode(err) == ErrCodeUnauthorized
}

// IsForbidden checks if the error is a forbidden error
func IsForbidden(err error) bool {
	return GetErrorCode(err) == ErrCodeForbidden
}

// IsConflict checks if the error is a conflict error
func IsConflict(err error) bool {
	return GetErrorCode(err) == ErrCodeConflict
}

// IsAlreadySubmitted checks if the error is a duplicate-submission error
func IsAlreadySubmitted(err error) bool {
	return GetErrorCode(err) == ErrCodeAlreadySubmitted
}

// IsAlreadyDecided checks if the error is an already-decided error
func IsAlreadyDecided(err error) bool {
	return GetErrorCode(err) == ErrCodeAlreadyDecided
}

// IsInsufficientBalance checks if the error is an insufficient balance error
func IsInsufficientBalance(err error) bool {
	return GetErrorCode(err) == ErrCodeInsufficientBalance
}

// AsAlreadySubmitted reports whether err is (or wraps) an
// AlreadySubmittedError, storing it in target when it is.
func AsAlreadySubmitted(err error, target **AlreadySubmittedError) bool {
	return errors.As(err, target)
}

// GetErrorCode extracts the error code from a domain error
func GetErrorCode(err error) string {
	switch e := err.(type) {
	case *AlreadySubmittedError:
		return e.Code
	case *DomainError:
		return e.Code
	default:
		return ErrCodeInternal
	}
}

// GetErrorMessage extracts the user-facing message from a domain error
func GetErrorMessage(err error) string {
	switch e := err.(type) {
	case *AlreadySubmittedError:
		return e.Message
	case *DomainError:
		return e.Message
	default:
		return "An internal error occurred"
	}
}
