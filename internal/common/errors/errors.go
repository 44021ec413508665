// internal/common/errors/errors.go
// Package errors provides standardized error types for the concierge service.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeRecognizerFailed     ErrorCode = "RECOGNIZER_FAILED"
	ErrCodeStoreQueryFailed     ErrorCode = "STORE_QUERY_FAILED"
	ErrCodePublishFailed        ErrorCode = "NOTIFICATION_PUBLISH_FAILED"
	ErrCodeIntentUnrecognized   ErrorCode = "INTENT_UNRECOGNIZED"
	ErrCodeInvalidTurnEnvelope  ErrorCode = "INVALID_TURN_ENVELOPE"
	ErrCodeDirectoryFetchFailed ErrorCode = "DIRECTORY_FETCH_FAILED"
	ErrCodeRecordWriteFailed    ErrorCode = "RECORD_WRITE_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewRecognizerFailedError wraps a failed call to the intent recognizer.
// The relay makes a single attempt, so nothing is retryable in-process.
func NewRecognizerFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRecognizerFailed,
		Message:   "Intent recognizer request failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreQueryFailedError wraps a failed restaurant lookup. Surfaced to the
// user as the closing message body, never retried automatically.
func NewStoreQueryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreQueryFailed,
		Message:   "Restaurant store query failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPublishFailedError wraps a failed notification publish. Advisory only:
// logged and counted, never surfaced to the end user.
func NewPublishFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePublishFailed,
		Message:   "Notification publish failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidTurnEnvelopeError reports a fulfillment payload that failed
// schema validation before dispatch.
func NewInvalidTurnEnvelopeError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidTurnEnvelope,
		Message:   "Turn envelope failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDirectoryFetchFailedError wraps a failed business-directory API call
// during ingestion.
func NewDirectoryFetchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDirectoryFetchFailed,
		Message:   "Business directory fetch failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRecordWriteFailedError wraps a failed store write during ingestion.
// Ingestion is fail-fast: the first write error aborts the batch.
func NewRecordWriteFailedError(restaurantID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRecordWriteFailed,
		Message:   "Restaurant record write failed",
		Details:   fmt.Sprintf("restaurantId: %s, error: %s", restaurantID, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
