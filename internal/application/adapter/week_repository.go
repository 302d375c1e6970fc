// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/timesheet-tracker/backend/internal/domain/entity"
)

// WeekFilter constrains the weeks returned by FindByUser. Nil fields are
// ignored; StartDate and EndDate bound the week's own date range inclusively.
type WeekFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    *entity.WeekStatus
}

// WeekRepository defines the interface for week persistence operations.
type WeekRepository interface {
	// Create creates a new week in the database.
	Create(ctx context.Context, week *entity.Week) error

	// FindByID retrieves a week by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Week, error)

	// FindByUser retrieves all weeks for a user matching the filter,
	// ordered by week number descending.
	FindByUser(ctx context.Context, userID uuid.UUID, filter WeekFilter) ([]*entity.Week, error)

	// UpdateTotals writes the given total hours and status onto the week row.
	UpdateTotals(ctx context.Context, id uuid.UUID, totalHours int, status entity.WeekStatus) error

	// ExistsByUserAndDateRange checks whether a week with the exact same
	// date range already exists for the user.
	ExistsByUserAndDateRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (bool, error)
}
