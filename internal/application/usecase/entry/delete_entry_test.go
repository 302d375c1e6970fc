package entry

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/timesheet-tracker/backend/internal/domain/entity"
	domainerror "github.com/timesheet-tracker/backend/internal/domain/error"
)

func TestDeleteEntryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deletes entry and recounts week totals", func(t *testing.T) {
		week := testWeek(userID)
		week.TotalHours = 40
		week.Status = entity.WeekStatusCompleted
		weekRepo := newFakeWeekRepository(week)

		target := entity.NewTimesheetEntry(week.ID, week.StartDate, "Project A", "Development", "", 10)
		entries := []*entity.TimesheetEntry{target}
		for i := 1; i < 4; i++ {
			entries = append(entries, entity.NewTimesheetEntry(week.ID, week.StartDate.AddDate(0, 0, i), "Project A", "Development", "", 10))
		}
		entryRepo := newFakeEntryRepository(weekRepo, entries...)
		uc := NewDeleteEntryUseCase(entryRepo, weekRepo)

		output, err := uc.Execute(ctx, DeleteEntryInput{UserID: userID, EntryID: target.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success {
			t.Error("expected Success to be true")
		}

		if week.TotalHours != 30 {
			t.Errorf("expected week total 30, got %d", week.TotalHours)
		}
		if week.Status != entity.WeekStatusIncomplete {
			t.Errorf("expected status Incomplete, got %q", week.Status)
		}
	})

	t.Run("deleting the last entry resets the week to missing", func(t *testing.T) {
		week := testWeek(userID)
		week.TotalHours = 8
		week.Status = entity.WeekStatusIncomplete
		weekRepo := newFakeWeekRepository(week)

		target := entity.NewTimesheetEntry(week.ID, week.StartDate, "Project A", "Development", "", 8)
		entryRepo := newFakeEntryRepository(weekRepo, target)
		uc := NewDeleteEntryUseCase(entryRepo, weekRepo)

		if _, err := uc.Execute(ctx, DeleteEntryInput{UserID: userID, EntryID: target.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if week.TotalHours != 0 {
			t.Errorf("expected week total 0, got %d", week.TotalHours)
		}
		if week.Status != entity.WeekStatusMissing {
			t.Errorf("expected status Missing, got %q", week.Status)
		}
	})

	t.Run("rejects unknown entry", func(t *testing.T) {
		week := testWeek(userID)
		weekRepo := newFakeWeekRepository(week)
		entryRepo := newFakeEntryRepository(weekRepo)
		uc := NewDeleteEntryUseCase(entryRepo, weekRepo)

		_, err := uc.Execute(ctx, DeleteEntryInput{UserID: userID, EntryID: uuid.New()})
		if code := entryErrorCode(t, err); code != domainerror.ErrCodeEntryNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEntryNotFound, code)
		}
	})

	t.Run("rejects another user's entry", func(t *testing.T) {
		week := testWeek(uuid.New())
		weekRepo := newFakeWeekRepository(week)
		target := entity.NewTimesheetEntry(week.ID, week.StartDate, "Project A", "Development", "", 8)
		entryRepo := newFakeEntryRepository(weekRepo, target)
		uc := NewDeleteEntryUseCase(entryRepo, weekRepo)

		_, err := uc.Execute(ctx, DeleteEntryInput{UserID: userID, EntryID: target.ID})
		if code := entryErrorCode(t, err); code != domainerror.ErrCodeNotAuthorizedEntry {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeNotAuthorizedEntry, code)
		}
		if entryRepo.deleteCalls != 0 {
			t.Errorf("expected no delete call, got %d", entryRepo.deleteCalls)
		}
	})
}
