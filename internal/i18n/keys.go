// Package i18n provides internationalization support for the webster service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyStorageUnavailable indicates the datastore rejected the operation.
	ErrKeyStorageUnavailable = "error.storage_unavailable"
)

// Workflow notification keys. Each notification has a title and a message
// variant so the client can render toast headers separately.
const (
	// KeyPackAlreadyCompletedTitle and KeyPackAlreadyCompleted report a
	// completion attempt on a finished pack.
	KeyPackAlreadyCompletedTitle = "workflow.pack_already_completed.title"
	KeyPackAlreadyCompleted      = "workflow.pack_already_completed.message"
	// KeyStepNotFoundTitle and KeyStepNotFound report a step id that does
	// not belong to the pack.
	KeyStepNotFoundTitle = "workflow.step_not_found.title"
	KeyStepNotFound      = "workflow.step_not_found.message"
	// KeyPackNotFoundTitle and KeyPackNotFound report an unknown pack.
	KeyPackNotFoundTitle = "workflow.pack_not_found.title"
	KeyPackNotFound      = "workflow.pack_not_found.message"
	// KeyStepCompletedTitle and KeyStepCompleted report a recorded step.
	KeyStepCompletedTitle = "workflow.step_completed.title"
	KeyStepCompleted      = "workflow.step_completed.message"
	// KeyPackCompletedTitle and KeyPackCompleted report a finished pack.
	KeyPackCompletedTitle = "workflow.pack_completed.title"
	KeyPackCompleted      = "workflow.pack_completed.message"
	// KeyScanVerifiedTitle and KeyScanVerified report a matched barcode.
	KeyScanVerifiedTitle = "workflow.scan_verified.title"
	KeyScanVerified      = "workflow.scan_verified.message"
	// KeyScanUnmatchedTitle and KeyScanUnmatched report an unmatched barcode.
	KeyScanUnmatchedTitle = "workflow.scan_unmatched.title"
	KeyScanUnmatched      = "workflow.scan_unmatched.message"
	// KeyPackCreatedTitle and KeyPackCreated report a created pack.
	KeyPackCreatedTitle = "workflow.pack_created.title"
	KeyPackCreated      = "workflow.pack_created.message"
)
