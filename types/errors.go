package types

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates the failure variants returned by the client.
type ErrorKind string

const (
	KindTimeout          ErrorKind = "timeout"
	KindAuthentication   ErrorKind = "authentication_error"
	KindNotFound         ErrorKind = "not_found"
	KindActionNotAllowed ErrorKind = "action_not_allowed"
	KindValidation       ErrorKind = "validation_error"
	KindTooManyRequests  ErrorKind = "too_many_requests"
	KindBadGateway       ErrorKind = "bad_gateway"
	KindAPI              ErrorKind = "api_error"
	// KindValue is raised locally before any network call.
	KindValue ErrorKind = "value_error"
)

// APIError is the single error type surfaced by the client. Status and
// Body are zero for timeouts and local value errors.
type APIError struct {
	Kind      ErrorKind   `json:"kind"`
	Status    int         `json:"status,omitempty"`
	Body      interface{} `json:"body,omitempty"`
	Message   string      `json:"message"`
	RequestID string      `json:"requestId,omitempty"`

	cause error
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// WithCause attaches the underlying failure.
func (e *APIError) WithCause(err error) *APIError {
	e.cause = err
	return e
}

// Payload returns the error body as a JSON object, or nil.
func (e *APIError) Payload() Payload {
	if e == nil {
		return nil
	}
	switch v := e.Body.(type) {
	case Payload:
		return v
	case map[string]interface{}:
		return Payload(v)
	default:
		return nil
	}
}

// ErrorType returns the API's error_type field when present.
func (e *APIError) ErrorType() string {
	s, _ := e.Payload()["error_type"].(string)
	return s
}

// ErrorCodes returns the API's error_codes list when present.
func (e *APIError) ErrorCodes() []string {
	raw, _ := e.Payload()["error_codes"].([]interface{})
	codes := make([]string, 0, len(raw))
	for _, c := range raw {
		if s, ok := c.(string); ok {
			codes = append(codes, s)
		}
	}
	return codes
}

// NewValueError reports a payload rejected before reaching the network.
func NewValueError(message string) *APIError {
	return &APIError{Kind: KindValue, Message: message}
}

// AsAPIError extracts an *APIError from err's chain.
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// IsKind reports whether err is an *APIError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	apiErr := AsAPIError(err)
	return apiErr != nil && apiErr.Kind == kind
}
