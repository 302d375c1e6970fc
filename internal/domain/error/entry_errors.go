// Package error defines domain-specific errors for the Timesheet Tracker application.
package error

import "errors"

// Timesheet entry domain errors.
var (
	// ErrEntryNotFound is returned when a timesheet entry is not found in the system.
	ErrEntryNotFound = errors.New("timesheet entry not found")

	// ErrEntryWeekNotFound is returned when the week an entry refers to does not exist.
	ErrEntryWeekNotFound = errors.New("week not found")

	// ErrNotAuthorizedToModifyEntry is returned when the user does not own the entry's week.
	ErrNotAuthorizedToModifyEntry = errors.New("not authorized to modify entry")

	// ErrInvalidHours is returned when the hours value is out of bounds.
	ErrInvalidHours = errors.New("invalid hours value")

	// ErrInvalidProject is returned when the project name is not in the closed project set.
	ErrInvalidProject = errors.New("invalid project name")

	// ErrInvalidWorkType is returned when the work type is not in the closed work-type set.
	ErrInvalidWorkType = errors.New("invalid type of work")

	// ErrWeekMismatch is returned when an update names a week other than the entry's own.
	ErrWeekMismatch = errors.New("entry does not belong to the given week")

	// ErrWeeklyCapExceeded is returned when a mutation would push a week past the hour cap.
	ErrWeeklyCapExceeded = errors.New("weekly hours limit exceeded")
)

// EntryErrorCode defines error codes for timesheet entry errors.
// Format: TSE-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEntryNotFound       EntryErrorCode = "TSE-010001"
	ErrCodeEntryWeekNotFound   EntryErrorCode = "TSE-010002"
	ErrCodeNotAuthorizedEntry  EntryErrorCode = "TSE-010003"
	ErrCodeInvalidHours        EntryErrorCode = "TSE-010004"
	ErrCodeInvalidProject      EntryErrorCode = "TSE-010005"
	ErrCodeInvalidWorkType     EntryErrorCode = "TSE-010006"
	ErrCodeMissingEntryFields  EntryErrorCode = "TSE-010007"
	ErrCodeEntryWeekMismatch   EntryErrorCode = "TSE-010008"

	// Capacity errors (02XXXX)
	ErrCodeWeeklyCapExceeded EntryErrorCode = "TSE-020001"
)

// EntryError represents a timesheet entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
