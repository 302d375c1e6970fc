// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/timesheet-tracker/backend/internal/domain/entity"
)

// TimesheetEntryModel represents the timesheet_entries table in the database.
type TimesheetEntryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WeekID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Date        time.Time `gorm:"type:date;not null"`
	ProjectName string    `gorm:"type:varchar(100);not null"`
	TypeOfWork  string    `gorm:"type:varchar(50);not null"`
	Description *string   `gorm:"type:text"`
	Hours       int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the TimesheetEntryModel.
func (TimesheetEntryModel) TableName() string {
	return "timesheet_entries"
}

// ToEntity converts a TimesheetEntryModel to a domain TimesheetEntry entity.
func (m *TimesheetEntryModel) ToEntity() *entity.TimesheetEntry {
	description := ""
	if m.Description != nil {
		description = *m.Description
	}

	return &entity.TimesheetEntry{
		ID:          m.ID,
		WeekID:      m.WeekID,
		Date:        m.Date,
		ProjectName: m.ProjectName,
		TypeOfWork:  m.TypeOfWork,
		Description: description,
		Hours:       m.Hours,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// EntryFromEntity creates a TimesheetEntryModel from a domain TimesheetEntry entity.
func EntryFromEntity(entry *entity.TimesheetEntry) *TimesheetEntryModel {
	var description *string
	if entry.Description != "" {
		d := entry.Description
		description = &d
	}

	return &TimesheetEntryModel{
		ID:          entry.ID,
		WeekID:      entry.WeekID,
		Date:        entry.Date,
		ProjectName: entry.ProjectName,
		TypeOfWork:  entry.TypeOfWork,
		Description: description,
		Hours:       entry.Hours,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}
