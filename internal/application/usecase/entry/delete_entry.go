// Package entry contains timesheet entry-related use cases.
package entry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/timesheet-tracker/backend/internal/application/adapter"
	domainerror "github.com/timesheet-tracker/backend/internal/domain/error"
)

// DeleteEntryInput represents the input for timesheet entry deletion.
type DeleteEntryInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
}

// DeleteEntryOutput represents the output of timesheet entry deletion.
type DeleteEntryOutput struct {
	Success bool
}

// DeleteEntryUseCase handles timesheet entry deletion logic.
type DeleteEntryUseCase struct {
	entryRepo adapter.EntryRepository
	weekRepo  adapter.WeekRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(entryRepo adapter.EntryRepository, weekRepo adapter.WeekRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		entryRepo: entryRepo,
		weekRepo:  weekRepo,
	}
}

// Execute performs the timesheet entry deletion. The week's total is
// recounted from the remaining rows rather than derived by subtraction.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) (*DeleteEntryOutput, error) {
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

	week, err := uc.weekRepo.FindByID(ctx, timesheetEntry.WeekID)
	if err != nil {
		return nil, fmt.Errorf("failed to find week: %w", err)
	}

	if week.UserID != input.UserID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeNotAuthorizedEntry,
			"not authorized to delete this entry",
			domainerror.ErrNotAuthorizedToModifyEntry,
		)
	}

	if _, err := uc.entryRepo.Delete(ctx, timesheetEntry.ID, timesheetEntry.WeekID); err != nil {
		return nil, fmt.Errorf("failed to delete timesheet entry: %w", err)
	}

	return &DeleteEntryOutput{
		Success: true,
	}, nil
}
