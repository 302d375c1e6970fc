// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Projects is the closed set of project names an entry can be logged against.
var Projects = []string{"Project A", "Project B", "Project C", "Internal"}

// WorkTypes is the closed set of work-type categories.
var WorkTypes = []string{"Development", "Testing", "Documentation", "Meeting", "Support", "Other"}

// IsValidProject reports whether name belongs to the closed project set.
func IsValidProject(name string) bool {
	for _, p := range Projects {
		if p == name {
			return true
		}
	}
	return false
}

// IsValidWorkType reports whether workType belongs to the closed work-type set.
func IsValidWorkType(workType string) bool {
	for _, t := range WorkTypes {
		if t == workType {
			return true
		}
	}
	return false
}

// TimesheetEntry represents one unit of logged work. An entry belongs to
// exactly one week and its hours count against that week's 40-hour cap.
type TimesheetEntry struct {
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

// NewTimesheetEntry creates a new TimesheetEntry entity.
func NewTimesheetEntry(weekID uuid.UUID, date time.Time, projectName, typeOfWork, description string, hours int) *TimesheetEntry {
	now := time.Now().UTC()

	return &TimesheetEntry{
		ID:          uuid.New(),
		WeekID:      weekID,
		Date:        date,
		ProjectName: projectName,
		TypeOfWork:  typeOfWork,
		Description: description,
		Hours:       hours,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
