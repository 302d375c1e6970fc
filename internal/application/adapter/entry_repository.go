// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/timesheet-tracker/backend/internal/domain/entity"
)

// EntryRepository defines the interface for timesheet entry persistence
// operations. The mutating operations also carry the owning week's new
// aggregate values so the entry write and the week update commit together.
type EntryRepository interface {
	// FindByID retrieves a timesheet entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TimesheetEntry, error)

	// FindByWeek retrieves all entries of a week, ordered by date ascending.
	FindByWeek(ctx context.Context, weekID uuid.UUID) ([]*entity.TimesheetEntry, error)

	// SumHoursByWeek returns the total hours currently logged in a week.
	SumHoursByWeek(ctx context.Context, weekID uuid.UUID) (int, error)

	// SumHoursByWeekExcluding returns the total hours logged in a week,
	// leaving out the named entry.
	SumHoursByWeekExcluding(ctx context.Context, weekID, entryID uuid.UUID) (int, error)

	// Create inserts the entry and writes the week's new total and status
	// in one transaction.
	Create(ctx context.Context, entry *entity.TimesheetEntry, weekTotal int, weekStatus entity.WeekStatus) error

	// Update overwrites the entry and writes the week's new total and
	// status in one transaction.
	Update(ctx context.Context, entry *entity.TimesheetEntry, weekTotal int, weekStatus entity.WeekStatus) error

	// Delete removes the entry, recounts the remaining hours of its week
	// and writes the week's new total and status, all in one transaction.
	// It returns the week's fresh total.
	Delete(ctx context.Context, id, weekID uuid.UUID) (int, error)
}
