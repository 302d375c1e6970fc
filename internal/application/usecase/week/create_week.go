// Package week contains week-related use cases.
package week

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/timesheet-tracker/backend/internal/application/adapter"
	"github.com/timesheet-tracker/backend/internal/domain/entity"
	domainerror "github.com/timesheet-tracker/backend/internal/domain/error"
)

// CreateWeekInput represents the input for week creation. Status defaults
// to Missing when nil.
type CreateWeekInput struct {
	UserID     uuid.UUID
	WeekNumber int
	StartDate  time.Time
	EndDate    time.Time
	Status     *entity.WeekStatus
}

// CreateWeekOutput represents the output of week creation.
type CreateWeekOutput struct {
	Week *WeekOutput
}

// CreateWeekUseCase handles week creation logic.
type CreateWeekUseCase struct {
	weekRepo adapter.WeekRepository
}

// NewCreateWeekUseCase creates a new CreateWeekUseCase instance.
func NewCreateWeekUseCase(weekRepo adapter.WeekRepository) *CreateWeekUseCase {
	return &CreateWeekUseCase{
		weekRepo: weekRepo,
	}
}

// Execute performs the week creation with zero logged hours.
func (uc *CreateWeekUseCase) Execute(ctx context.Context, input CreateWeekInput) (*CreateWeekOutput, error) {
	if input.WeekNumber < 1 {
		return nil, domainerror.NewWeekError(
			domainerror.ErrCodeInvalidWeekNumber,
			"week number must be positive",
			domainerror.ErrInvalidWeekNumber,
		)
	}

	if input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewWeekError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not precede start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	status := entity.WeekStatusMissing
	if input.Status != nil {
		if !entity.IsValidWeekStatus(*input.Status) {
			return nil, domainerror.NewWeekError(
				domainerror.ErrCodeInvalidWeekStatus,
				fmt.Sprintf("status %q is not a known week status", *input.Status),
				domainerror.ErrInvalidWeekStatus,
			)
		}
		status = *input.Status
	}

	// One week per owner and date range; the model also carries a unique
	// index so racing creates cannot slip a duplicate in.
	exists, err := uc.weekRepo.ExistsByUserAndDateRange(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing week: %w", err)
	}
	if exists {
		return nil, domainerror.NewWeekError(
			domainerror.ErrCodeWeekAlreadyExists,
			"a week with this date range already exists",
			domainerror.ErrWeekAlreadyExists,
		)
	}

	newWeek := entity.NewWeek(input.UserID, input.WeekNumber, input.StartDate, input.EndDate, status)

	if err := uc.weekRepo.Create(ctx, newWeek); err != nil {
		return nil, fmt.Errorf("failed to create week: %w", err)
	}

	return &CreateWeekOutput{
		Week: toWeekOutput(newWeek),
	}, nil
}
