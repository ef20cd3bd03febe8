package models

import (
	"fmt"
	"strings"
)

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error code constants
const (
	ErrBadRequest       = "BAD_REQUEST"
	ErrNotFound         = "NOT_FOUND"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"
	ErrBusinessRule     = "BUSINESS_RULE_VIOLATION"
	ErrRateLimited      = "RATE_LIMIT_EXCEEDED"
)

// GenericErrorMessage is the only message a client sees for unexpected failures
const GenericErrorMessage = "a generic error occurred"

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string) APIError {
	return APIError{
		Code:    code,
		Message: message,
	}
}

// ErrorKind classifies a DomainError for transport mapping
type ErrorKind string

const (
	// KindValidation is a malformed or unparsable payload.
	KindValidation ErrorKind = "validation"
	// KindConstraint is one or more field rules failing.
	KindConstraint ErrorKind = "constraint"
	// KindBusinessRule is a domain rule refusing the operation.
	KindBusinessRule ErrorKind = "business_rule"
	// KindNotFound is a referenced id that does not resolve.
	KindNotFound ErrorKind = "not_found"
	// KindUnexpected is anything else, store failures included.
	KindUnexpected ErrorKind = "unexpected"
)

// FieldViolation is a single failed field rule
type FieldViolation struct {
	Field   string
	Message string
}

// DomainError carries the kind of failure, a client-facing message and the underlying cause.
type DomainError struct {
	Kind       ErrorKind
	Message    string
	Violations []FieldViolation
	Cause      error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// NewValidationError reports a payload that could not be read.
func NewValidationError(message string, cause error) *DomainError {
	return &DomainError{Kind: KindValidation, Message: message, Cause: cause}
}

// NewConstraintError joins every violated field message, in order, with ", ".
func NewConstraintError(violations []FieldViolation) *DomainError {
	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		messages = append(messages, v.Message)
	}
	return &DomainError{
		Kind:       KindConstraint,
		Message:    strings.Join(messages, ", "),
		Violations: violations,
	}
}

// NewBusinessRuleError reports a domain rule refusing the operation.
func NewBusinessRuleError(message string) *DomainError {
	return &DomainError{Kind: KindBusinessRule, Message: message}
}

// NewNotFoundError reports an entity that does not exist.
func NewNotFoundError(entity string, id uint) *DomainError {
	return &DomainError{Kind: KindNotFound, Message: fmt.Sprintf("%s %d not found", entity, id)}
}

// WrapUnexpected hides cause behind the generic message.
func WrapUnexpected(cause error) *DomainError {
	return &DomainError{Kind: KindUnexpected, Message: GenericErrorMessage, Cause: cause}
}
