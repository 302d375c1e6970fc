// Package entry contains timesheet entry-related use cases.
package entry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/timesheet-tracker/backend/internal/application/adapter"
	"github.com/timesheet-tracker/backend/internal/domain/entity"
	domainerror "github.com/timesheet-tracker/backend/internal/domain/error"
)

// CreateEntryInput represents the input for timesheet entry creation.
type CreateEntryInput struct {
	UserID      uuid.UUID
	WeekID      uuid.UUID
	Date        time.Time
	ProjectName string
	TypeOfWork  string
	Description string
	Hours       int
}

// CreateEntryOutput represents the output of timesheet entry creation.
type CreateEntryOutput struct {
	Entry *EntryOutput
}

// CreateEntryUseCase handles timesheet entry creation logic.
type CreateEntryUseCase struct {
	entryRepo adapter.EntryRepository
	weekRepo  adapter.WeekRepository
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(entryRepo adapter.EntryRepository, weekRepo adapter.WeekRepository) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		entryRepo: entryRepo,
		weekRepo:  weekRepo,
	}
}

// Execute performs the timesheet entry creation. The entry insert and the
// week's total/status update commit in one transaction; a rejected cap check
// writes nothing.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	if err := validateEntryFields(input.ProjectName, input.TypeOfWork, input.Hours); err != nil {
		return nil, err
	}

	// The week must exist and belong to the caller.
	week, err := uc.weekRepo.FindByID(ctx, input.WeekID)
	if err != nil {
		if errors.Is(err, domainerror.ErrWeekNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryWeekNotFound,
				"week not found",
				domainerror.ErrEntryWeekNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find week: %w", err)
	}

	if week.UserID != input.UserID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeNotAuthorizedEntry,
			"not authorized to log hours on this week",
			domainerror.ErrNotAuthorizedToModifyEntry,
		)
	}

	// Enforce the weekly cap against the current aggregate.
	currentTotal, err := uc.entryRepo.SumHoursByWeek(ctx, input.WeekID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum week hours: %w", err)
	}

	newTotal := currentTotal + input.Hours
	if newTotal > entity.WeeklyHourCap {
		return nil, capExceededError(newTotal)
	}

	timesheetEntry := entity.NewTimesheetEntry(
		input.WeekID,
		input.Date,
		input.ProjectName,
		input.TypeOfWork,
		input.Description,
		input.Hours,
	)

	if err := uc.entryRepo.Create(ctx, timesheetEntry, newTotal, entity.StatusForTotal(newTotal)); err != nil {
		return nil, fmt.Errorf("failed to create timesheet entry: %w", err)
	}

	return &CreateEntryOutput{
		Entry: toEntryOutput(timesheetEntry),
	}, nil
}
