// Package entry contains timesheet entry-related use cases.
package entry

import (
	"time"

	"github.com/google/uuid"

	"github.com/timesheet-tracker/backend/internal/domain/entity"
)

// EntryOutput represents a timesheet entry in use case outputs.
type EntryOutput struct {
	ID          uuid.UUID
	WeekID      uuid.UUID
	Date        time.Time
	ProjectName string
	TypeOfWork  string
	Description string
	Hours       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// toEntryOutput converts a domain entity to an EntryOutput.
func toEntryOutput(e *entity.TimesheetEntry) *EntryOutput {
	return &EntryOutput{
		ID:          e.ID,
		WeekID:      e.WeekID,
		Date:        e.Date,
		ProjectName: e.ProjectName,
		TypeOfWork:  e.TypeOfWork,
		Description: e.Description,
		Hours:       e.Hours,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
