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

// UpdateEntryInput represents the input for timesheet entry update.
// WeekID names the entry's owning week; entries do not move between weeks.
type UpdateEntryInput struct {
	UserID      uuid.UUID
	EntryID     uuid.UUID
	WeekID      uuid.UUID
	Date        time.Time
	ProjectName string
	TypeOfWork  string
	Description string
	Hours       int
}

// UpdateEntryOutput represents the output of timesheet entry update.
type UpdateEntryOutput struct {
	Entry *EntryOutput
}

// UpdateEntryUseCase handles timesheet entry update logic.
type UpdateEntryUseCase struct {
	entryRepo adapter.EntryRepository
	weekRepo  adapter.WeekRepository
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(entryRepo adapter.EntryRepository, weekRepo adapter.WeekRepository) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		entryRepo: entryRepo,
		weekRepo:  weekRepo,
	}
}

// Execute performs the timesheet entry update. The cap check sums all other
// entries of the week, excluding this entry's own prior hours, so edits at
// the cap are not wrongly rejected.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	if err := validateEntryFields(input.ProjectName, input.TypeOfWork, input.Hours); err != nil {
		return nil, err
	}

	timesheetEntry, err := uc.entryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"timesheet entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find timesheet entry: %w", err)
	}

	if input.WeekID != timesheetEntry.WeekID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryWeekMismatch,
			"entry does not belong to the given week",
			domainerror.ErrWeekMismatch,
		)
	}

	week, err := uc.weekRepo.FindByID(ctx, timesheetEntry.WeekID)
	if err != nil {
		return nil, fmt.Errorf("failed to find week: %w", err)
	}

	if week.UserID != input.UserID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeNotAuthorizedEntry,
			"not authorized to modify this entry",
			domainerror.ErrNotAuthorizedToModifyEntry,
		)
	}

	otherTotal, err := uc.entryRepo.SumHoursByWeekExcluding(ctx, timesheetEntry.WeekID, timesheetEntry.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum week hours: %w", err)
	}

	newTotal := otherTotal + input.Hours
	if newTotal > entity.WeeklyHourCap {
		return nil, capExceededError(newTotal)
	}

	timesheetEntry.Date = input.Date
	timesheetEntry.ProjectName = input.ProjectName
	timesheetEntry.TypeOfWork = input.TypeOfWork
	timesheetEntry.Description = input.Description
	timesheetEntry.Hours = input.Hours
	timesheetEntry.UpdatedAt = time.Now().UTC()

	if err := uc.entryRepo.Update(ctx, timesheetEntry, newTotal, entity.StatusForTotal(newTotal)); err != nil {
		return nil, fmt.Errorf("failed to update timesheet entry: %w", err)
	}

	return &UpdateEntryOutput{
		Entry: toEntryOutput(timesheetEntry),
	}, nil
}
