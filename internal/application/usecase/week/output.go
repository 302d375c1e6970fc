// Package week contains week-related use cases.
package week

import (
	"time"

	"github.com/google/uuid"

	"github.com/timesheet-tracker/backend/internal/domain/entity"
)

// WeekOutput represents a week in use case outputs.
type WeekOutput struct {
	ID         uuid.UUID
	WeekNumber int
	StartDate  time.Time
	EndDate    time.Time
	Status     entity.WeekStatus
	TotalHours int
	UserID     uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// toWeekOutput converts a domain entity to a WeekOutput.
func toWeekOutput(w *entity.Week) *WeekOutput {
	return &WeekOutput{
		ID:         w.ID,
		WeekNumber: w.WeekNumber,
		StartDate:  w.StartDate,
		EndDate:    w.EndDate,
		Status:     w.Status,
		TotalHours: w.TotalHours,
		UserID:     w.UserID,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}
