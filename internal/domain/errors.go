package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Generation pipeline errors
	CodeConfiguration          ErrorCode = "CONFIGURATION_ERROR"
	CodeInvalidRequestType     ErrorCode = "INVALID_REQUEST_TYPE"
	CodeGatewayRateLimited     ErrorCode = "GATEWAY_RATE_LIMITED"
	CodeGatewayPaymentRequired ErrorCode = "GATEWAY_PAYMENT_REQUIRED"
	CodeGatewayUpstream        ErrorCode = "GATEWAY_UPSTREAM_ERROR"
	CodeShapeValidation        ErrorCode = "SHAPE_VALIDATION_ERROR"
)

// User-facing messages for the generation endpoint.
const (
	MsgRateLimited        = "Rate limit exceeded. Please try again later."
	MsgPaymentRequired    = "Payment required. Please add credits to continue."
	MsgInvalidRequestType = "Invalid request type"
	MsgNoContent          = "No content in AI response"
	MsgMissingCredential  = "AI gateway API key is not configured"
	MsgUnusableResponse   = "The AI response could not be used. Please try again."
	MsgUnexpected         = "An unexpected error occurred"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Context map[string]any `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error { return e.Cause }

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches diagnostic key/values. They are logged, never returned to callers.
func (e *DomainError) WithContext(key string, value any) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the code of the first DomainError in err's chain, or CodeInternal.
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeInternal
}

// MessageOf returns the caller-facing message for err. Errors outside the
// domain taxonomy never leak their text.
func MessageOf(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return MsgUnexpected
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewUnauthorizedError(message string, err error) *DomainError {
	return NewError(CodeUnauthorized, message, err)
}

func NewConfigurationError(message string) *DomainError {
	return NewError(CodeConfiguration, message, nil)
}

func NewInvalidRequestTypeError(requestType string) *DomainError {
	return NewError(CodeInvalidRequestType, MsgInvalidRequestType, nil).
		WithContext("type", requestType)
}

func NewRateLimitedError(err error) *DomainError {
	return NewError(CodeGatewayRateLimited, MsgRateLimited, err)
}

func NewPaymentRequiredError(err error) *DomainError {
	return NewError(CodeGatewayPaymentRequired, MsgPaymentRequired, err)
}

// NewUpstreamError reports a non-classified gateway failure. status is 0 when
// no HTTP response was received at all.
func NewUpstreamError(status int, body string, err error) *DomainError {
	return NewError(CodeGatewayUpstream, fmt.Sprintf("AI Gateway error: %d", status), err).
		WithContext("status", status).
		WithContext("body", body)
}

func NewShapeValidationError(err error) *DomainError {
	return NewError(CodeShapeValidation, MsgUnusableResponse, err)
}
