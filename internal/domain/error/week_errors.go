// Package error defines domain-specific errors for the Timesheet Tracker application.
package error

import "errors"

// Week domain errors.
var (
	// ErrWeekNotFound is returned when a week is not found in the system.
	ErrWeekNotFound = errors.New("week not found")

	// ErrWeekAlreadyExists is returned when a week with the same date range already exists.
	ErrWeekAlreadyExists = errors.New("week already exists for this date range")

	// ErrNotAuthorizedToModifyWeek is returned when the user does not own the week.
	ErrNotAuthorizedToModifyWeek = errors.New("not authorized to modify week")

	// ErrInvalidWeekStatus is returned when the status is not a known week status.
	ErrInvalidWeekStatus = errors.New("invalid week status")

	// ErrInvalidWeekNumber is returned when the week number is not positive.
	ErrInvalidWeekNumber = errors.New("invalid week number")

	// ErrInvalidDateRange is returned when the end date precedes the start date.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidTotalHours is returned when a negative total is supplied on override.
	ErrInvalidTotalHours = errors.New("invalid total hours")
)

// WeekErrorCode defines error codes for week errors.
// Format: WEK-XXYYYY where XX is category and YYYY is specific error.
type WeekErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeWeekNotFound      WeekErrorCode = "WEK-010001"
	ErrCodeWeekAlreadyExists WeekErrorCode = "WEK-010002"
	ErrCodeNotAuthorizedWeek WeekErrorCode = "WEK-010003"
	ErrCodeInvalidWeekStatus WeekErrorCode = "WEK-010004"
	ErrCodeInvalidWeekNumber WeekErrorCode = "WEK-010005"
	ErrCodeInvalidDateRange  WeekErrorCode = "WEK-010006"
	ErrCodeInvalidTotalHours WeekErrorCode = "WEK-010007"
	ErrCodeMissingWeekFields WeekErrorCode = "WEK-010008"
)

// WeekError represents a week error with code and message.
type WeekError struct {
	Code    WeekErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WeekError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WeekError) Unwrap() error {
	return e.Err
}

// NewWeekError creates a new WeekError with the given code and message.
func NewWeekError(code WeekErrorCode, message string, err error) *WeekError {
	return &WeekError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
