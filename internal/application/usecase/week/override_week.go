// Package week contains week-related use cases.
package week

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/timesheet-tracker/backend/internal/application/adapter"
	"github.com/timesheet-tracker/backend/internal/domain/entity"
	domainerror "github.com/timesheet-tracker/backend/internal/domain/error"
)

// OverrideWeekInput represents the input for an administrative week override.
type OverrideWeekInput struct {
	WeekID     uuid.UUID
	UserID     uuid.UUID
	Status     entity.WeekStatus
	TotalHours int
}

// OverrideWeekOutput represents the output of a week override.
type OverrideWeekOutput struct {
	Week *WeekOutput
}

// OverrideWeekUseCase applies caller-supplied status and total hours to a
// week directly, without recomputing them from entries. The stored values
// stand until the next entry mutation recomputes them.
type OverrideWeekUseCase struct {
	weekRepo adapter.WeekRepository
}

// NewOverrideWeekUseCase creates a new OverrideWeekUseCase instance.
func NewOverrideWeekUseCase(weekRepo adapter.WeekRepository) *OverrideWeekUseCase {
	return &OverrideWeekUseCase{
		weekRepo: weekRepo,
	}
}

// Execute performs the week override.
func (uc *OverrideWeekUseCase) Execute(ctx context.Context, input OverrideWeekInput) (*OverrideWeekOutput, error) {
	if !entity.IsValidWeekStatus(input.Status) {
		return nil, domainerror.NewWeekError(
			domainerror.ErrCodeInvalidWeekStatus,
			fmt.Sprintf("status %q is not a known week status", input.Status),
			domainerror.ErrInvalidWeekStatus,
		)
	}

	if input.TotalHours < 0 {
		return nil, domainerror.NewWeekError(
			domainerror.ErrCodeInvalidTotalHours,
			"total hours must not be negative",
			domainerror.ErrInvalidTotalHours,
		)
	}

	week, err := uc.weekRepo.FindByID(ctx, input.WeekID)
	if err != nil {
		if errors.Is(err, domainerror.ErrWeekNotFound) {
			return nil, domainerror.NewWeekError(
				domainerror.ErrCodeWeekNotFound,
				"week not found",
				domainerror.ErrWeekNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find week: %w", err)
	}

	if week.UserID != input.UserID {
		return nil, domainerror.NewWeekError(
			domainerror.ErrCodeNotAuthorizedWeek,
			"user is not authorized to modify this week",
			domainerror.ErrNotAuthorizedToModifyWeek,
		)
	}

	if err := uc.weekRepo.UpdateTotals(ctx, week.ID, input.TotalHours, input.Status); err != nil {
		return nil, fmt.Errorf("failed to override week: %w", err)
	}

	week.TotalHours = input.TotalHours
	week.Status = input.Status

	return &OverrideWeekOutput{
		Week: toWeekOutput(week),
	}, nil
}
