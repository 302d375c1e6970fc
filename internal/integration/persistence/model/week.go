// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/timesheet-tracker/backend/internal/domain/entity"
)

// WeekModel represents the weeks table in the database. A user can have at
// most one week per date range, enforced by the composite unique index.
type WeekModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	WeekNumber int       `gorm:"not null"`
	StartDate  time.Time `gorm:"type:date;not null;uniqueIndex:idx_weeks_user_range"`
	EndDate    time.Time `gorm:"type:date;not null;uniqueIndex:idx_weeks_user_range"`
	Status     string    `gorm:"type:varchar(20);not null;default:'Missing'"`
	TotalHours int       `gorm:"not null;default:0"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_weeks_user_range"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	Entries []TimesheetEntryModel `gorm:"foreignKey:WeekID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the WeekModel.
func (WeekModel) TableName() string {
	return "weeks"
}

// ToEntity converts a WeekModel to a domain Week entity.
func (m *WeekModel) ToEntity() *entity.Week {
	return &entity.Week{
		ID:         m.ID,
		WeekNumber: m.WeekNumber,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		Status:     entity.WeekStatus(m.Status),
		TotalHours: m.TotalHours,
		UserID:     m.UserID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// WeekFromEntity creates a WeekModel from a domain Week entity.
func WeekFromEntity(week *entity.Week) *WeekModel {
	return &WeekModel{
		ID:         week.ID,
		WeekNumber: week.WeekNumber,
		StartDate:  week.StartDate,
		EndDate:    week.EndDate,
		Status:     string(week.Status),
		TotalHours: week.TotalHours,
		UserID:     week.UserID,
		CreatedAt:  week.CreatedAt,
		UpdatedAt:  week.UpdatedAt,
	}
}
