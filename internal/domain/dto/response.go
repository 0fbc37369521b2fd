package dto

import (
	"net/http"
	"time"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeConflict indicates a conflict with current state, such as a
	// mutation attempted on a completed pack.
	ErrCodeConflict = "conflict"
	// ErrCodeStateDesync indicates the caller referenced a step that does not
	// belong to the pack; the UI is operating on stale state.
	ErrCodeStateDesync = "state_desync"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeBadGateway indicates a persistence collaborator fault.
	ErrCodeBadGateway = "bad_gateway"
)

// SuccessResponse wraps successful API responses with metadata. Workflow
// endpoints additionally carry the outcome notification for the UI.
//
// @Description Successful API response wrapper
type SuccessResponse struct {
	Data interface{} `json:"data" swaggertype:"object"`
	// Notification is present on workflow endpoints only.
	Notification *Notification `json:"notification,omitempty"`
	RequestID    string        `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp    time.Time     `json:"timestamp" example:"2026-08-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse is the standardized error payload for the API.
//
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"conflict"`
	Message string `json:"message,omitempty" example:"This webster pack has already been completed"`
	// Notification mirrors the error as a UI outcome event.
	Notification *Notification `json:"notification,omitempty"`
	RequestID    string        `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp    time.Time     `json:"timestamp" example:"2026-08-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates an ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID attaches the request ID.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithNotification attaches a UI notification to the error.
func (e ErrorResponse) WithNotification(n Notification) ErrorResponse {
	e.Notification = &n
	return e
}

// ErrCodeFromStatus returns the error code conventionally used for an HTTP
// status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusUnprocessableEntity:
		return ErrCodeStateDesync
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusBadGateway:
		return ErrCodeBadGateway
	default:
		return ErrCodeInternal
	}
}
