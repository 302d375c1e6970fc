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

// ListEntriesInput represents the input for listing a week's entries.
type ListEntriesInput struct {
	UserID uuid.UUID
	WeekID uuid.UUID
}

// ListEntriesOutput represents the output of listing a week's entries.
type ListEntriesOutput struct {
	Entries []*EntryOutput
}

// ListEntriesUseCase handles listing the entries of a week.
type ListEntriesUseCase struct {
	entryRepo adapter.EntryRepository
	weekRepo  adapter.WeekRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.EntryRepository, weekRepo adapter.WeekRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
		weekRepo:  weekRepo,
	}
}

// Execute lists the entries of a week, ordered by date ascending.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
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
			"not authorized to view this week's entries",
			domainerror.ErrNotAuthorizedToModifyEntry,
		)
	}

	entries, err := uc.entryRepo.FindByWeek(ctx, input.WeekID)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheet entries: %w", err)
	}

	outputs := make([]*EntryOutput, len(entries))
	for i, e := range entries {
		outputs[i] = toEntryOutput(e)
	}

	return &ListEntriesOutput{
		Entries: outputs,
	}, nil
}
