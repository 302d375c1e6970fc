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

// GetEntryInput represents the input for fetching a single timesheet entry.
type GetEntryInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
}

// GetEntryOutput represents the output of fetching a single timesheet entry.
type GetEntryOutput struct {
	Entry *EntryOutput
}

// GetEntryUseCase handles single-entry retrieval.
type GetEntryUseCase struct {
	entryRepo adapter.EntryRepository
	weekRepo  adapter.WeekRepository
}

// NewGetEntryUseCase creates a new GetEntryUseCase instance.
func NewGetEntryUseCase(entryRepo adapter.EntryRepository, weekRepo adapter.WeekRepository) *GetEntryUseCase {
	return &GetEntryUseCase{
		entryRepo: entryRepo,
		weekRepo:  weekRepo,
	}
}

// Execute fetches a timesheet entry by ID.
func (uc *GetEntryUseCase) Execute(ctx context.Context, input GetEntryInput) (*GetEntryOutput, error) {
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
			"not authorized to view this entry",
			domainerror.ErrNotAuthorizedToModifyEntry,
		)
	}

	return &GetEntryOutput{
		Entry: toEntryOutput(timesheetEntry),
	}, nil
}
