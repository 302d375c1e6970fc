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

// ListWeeksInput represents the input for listing weeks. All filters are
// optional.
type ListWeeksInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Status    *entity.WeekStatus
}

// ListWeeksOutput represents the output of listing weeks.
type ListWeeksOutput struct {
	Weeks []*WeekOutput
}

// ListWeeksUseCase handles listing the user's weeks.
type ListWeeksUseCase struct {
	weekRepo adapter.WeekRepository
}

// NewListWeeksUseCase creates a new ListWeeksUseCase instance.
func NewListWeeksUseCase(weekRepo adapter.WeekRepository) *ListWeeksUseCase {
	return &ListWeeksUseCase{
		weekRepo: weekRepo,
	}
}

// Execute lists the user's weeks, ordered by week number descending.
func (uc *ListWeeksUseCase) Execute(ctx context.Context, input ListWeeksInput) (*ListWeeksOutput, error) {
	if input.Status != nil && !entity.IsValidWeekStatus(*input.Status) {
		return nil, domainerror.NewWeekError(
			domainerror.ErrCodeInvalidWeekStatus,
			fmt.Sprintf("status %q is not a known week status", *input.Status),
			domainerror.ErrInvalidWeekStatus,
		)
	}

	weeks, err := uc.weekRepo.FindByUser(ctx, input.UserID, adapter.WeekFilter{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Status:    input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list weeks: %w", err)
	}

	outputs := make([]*WeekOutput, len(weeks))
	for i, w := range weeks {
		outputs[i] = toWeekOutput(w)
	}

	return &ListWeeksOutput{
		Weeks: outputs,
	}, nil
}
