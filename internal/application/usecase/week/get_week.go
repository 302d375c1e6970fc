// Package week contains week-related use cases.
package week

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/timesheet-tracker/backend/internal/application/adapter"
	domainerror "github.com/timesheet-tracker/backend/internal/domain/error"
)

// GetWeekInput represents the input for fetching a single week.
type GetWeekInput struct {
	WeekID uuid.UUID
	UserID uuid.UUID
}

// WeekEntryOutput represents an entry attached to a week detail.
type WeekEntryOutput struct {
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

// GetWeekOutput represents the output of fetching a week, including its
// entries ordered by date.
type GetWeekOutput struct {
	Week    *WeekOutput
	Entries []*WeekEntryOutput
}

// GetWeekUseCase handles fetching a week with its entries.
type GetWeekUseCase struct {
	weekRepo  adapter.WeekRepository
	entryRepo adapter.EntryRepository
}

// NewGetWeekUseCase creates a new GetWeekUseCase instance.
func NewGetWeekUseCase(weekRepo adapter.WeekRepository, entryRepo adapter.EntryRepository) *GetWeekUseCase {
	return &GetWeekUseCase{
		weekRepo:  weekRepo,
		entryRepo: entryRepo,
	}
}

// Execute fetches the week and its entries.
func (uc *GetWeekUseCase) Execute(ctx context.Context, input GetWeekInput) (*GetWeekOutput, error) {
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
			"user is not authorized to access this week",
			domainerror.ErrNotAuthorizedToModifyWeek,
		)
	}

	entries, err := uc.entryRepo.FindByWeek(ctx, week.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list week entries: %w", err)
	}

	entryOutputs := make([]*WeekEntryOutput, len(entries))
	for i, e := range entries {
		entryOutputs[i] = &WeekEntryOutput{
			ID:          e.ID,
			WeekID:      e.WeekID,
			Date:        e.Date,
			ProjectName: e.ProjectName,
			TypeOfWork:  e.TypeOfWork,
			Description: e.Description,
			Hours:       e.Hours,
			CreatedAt:   e.CreatedAt,
			UpdatedAt:   e.UpdatedAt,
		}
	}

	return &GetWeekOutput{
		Week:    toWeekOutput(week),
		Entries: entryOutputs,
	}, nil
}
