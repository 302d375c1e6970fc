// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WeekStatus represents the completion status of a work week.
type WeekStatus string

const (
	WeekStatusMissing    WeekStatus = "Missing"
	WeekStatusIncomplete WeekStatus = "Incomplete"
	WeekStatusCompleted  WeekStatus = "Completed"
)

// WeeklyHourCap is the maximum number of hours that can be logged in a week.
const WeeklyHourCap = 40

// IsValidWeekStatus reports whether the given status is a known week status.
func IsValidWeekStatus(status WeekStatus) bool {
	switch status {
	case WeekStatusMissing, WeekStatusIncomplete, WeekStatusCompleted:
		return true
	}
	return false
}

// StatusForTotal derives the week status from a total hour count.
// A total above the cap cannot be produced by the mutation paths, but the
// function is total over all non-negative inputs and degrades to Incomplete.
func StatusForTotal(totalHours int) WeekStatus {
	switch {
	case totalHours == WeeklyHourCap:
		return WeekStatusCompleted
	case totalHours == 0:
		return WeekStatusMissing
	default:
		return WeekStatusIncomplete
	}
}

// Week represents one calendar work week for one user. TotalHours is derived
// from the week's timesheet entries and kept in sync on every entry mutation.
type Week struct {
	ID         uuid.UUID
	WeekNumber int
	StartDate  time.Time
	EndDate    time.Time
	Status     WeekStatus
	TotalHours int
	UserID     uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewWeek creates a new Week entity with zero logged hours.
func NewWeek(userID uuid.UUID, weekNumber int, startDate, endDate time.Time, status WeekStatus) *Week {
	now := time.Now().UTC()

	return &Week{
		ID:         uuid.New(),
		WeekNumber: weekNumber,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     status,
		TotalHours: 0,
		UserID:     userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
