package shared

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so callers can switch on it exhaustively
// instead of matching on message text.
type ErrorKind string

const (
	// KindValidation indicates malformed input (e.g. a non-positive counter offer)
	KindValidation ErrorKind = "VALIDATION"

	// KindNotFound indicates a missing proposal, player, team or season
	KindNotFound ErrorKind = "NOT_FOUND"

	// KindBusinessRule indicates a domain rule rejected the operation
	// (validator hard failure, invalid state transition, insufficient funds)
	KindBusinessRule ErrorKind = "BUSINESS_RULE"

	// KindConflict indicates a duplicate active proposal for the same triple
	KindConflict ErrorKind = "CONFLICT"

	// KindInternal indicates an unexpected or storage-level failure
	KindInternal ErrorKind = "INTERNAL"
)

// DomainError is the base error type for all engine errors
type DomainError struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *DomainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.cause
}

// NewValidationError creates a VALIDATION-kind error
func NewValidationError(format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewNotFoundError creates a NOT_FOUND-kind error
func NewNotFoundError(format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewBusinessRuleError creates a BUSINESS_RULE-kind error
func NewBusinessRuleError(format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: KindBusinessRule, Message: fmt.Sprintf(format, args...)}
}

// NewConflictError creates a CONFLICT-kind error
func NewConflictError(format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// NewInternalError wraps an unexpected failure as an INTERNAL-kind error
func NewInternalError(message string, cause error) *DomainError {
	return &DomainError{Kind: KindInternal, Message: message, cause: cause}
}

// KindOf extracts the ErrorKind from an error chain.
// Errors that are not DomainErrors are classified as INTERNAL.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
