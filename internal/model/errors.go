package model

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned by admin operations called without a valid session.
var ErrUnauthorized = errors.New("not authorized")

// ValidationError reports a missing or malformed user-supplied field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("invalid field: %s", e.Field)
}

// MissingField returns the ValidationError for an absent required field.
func MissingField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "Missing required field: " + field}
}

// InvalidField returns a ValidationError for a present but malformed field.
func InvalidField(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("Invalid %s: %s", field, reason)}
}

// NotFoundError reports an id that does not resolve to a record.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item %d not found", e.ID)
}

// UploadError reports an oversized or non-image upload.
type UploadError struct {
	Message string
}

func (e *UploadError) Error() string {
	return e.Message
}

// StoreError wraps a persistence failure. Its detail is for logs only.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// MatchFinderError wraps a failure while searching for matches. It is
// logged and never returned to callers of the create operation.
type MatchFinderError struct {
	ItemID int64
	Err    error
}

func (e *MatchFinderError) Error() string {
	return fmt.Sprintf("finding matches for item %d: %v", e.ItemID, e.Err)
}

func (e *MatchFinderError) Unwrap() error {
	return e.Err
}
