package week

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/timesheet-tracker/backend/internal/domain/entity"
	domainerror "github.com/timesheet-tracker/backend/internal/domain/error"
)

func TestGetWeekUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	t.Run("returns week with entries ordered by date", func(t *testing.T) {
		week := entity.NewWeek(userID, 35, start, start.AddDate(0, 0, 4), entity.WeekStatusIncomplete)
		weekRepo := newFakeWeekRepository(week)

		// Inserted out of order on purpose.
		entryRepo := &fakeEntryRepository{entries: []*entity.TimesheetEntry{
			entity.NewTimesheetEntry(week.ID, start.AddDate(0, 0, 2), "Project B", "Testing", "", 4),
			entity.NewTimesheetEntry(week.ID, start, "Project A", "Development", "", 8),
		}}
		uc := NewGetWeekUseCase(weekRepo, entryRepo)

		output, err := uc.Execute(ctx, GetWeekInput{WeekID: week.ID, UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Week.ID != week.ID {
			t.Errorf("expected week %s, got %s", week.ID, output.Week.ID)
		}
		if len(output.Entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(output.Entries))
		}
		if !output.Entries[0].Date.Before(output.Entries[1].Date) {
			t.Error("expected entries ordered by date ascending")
		}
	})

	t.Run("rejects unknown week", func(t *testing.T) {
		uc := NewGetWeekUseCase(newFakeWeekRepository(), &fakeEntryRepository{})

		_, err := uc.Execute(ctx, GetWeekInput{WeekID: uuid.New(), UserID: userID})
		if code := weekErrorCode(t, err); code != domainerror.ErrCodeWeekNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeWeekNotFound, code)
		}
	})

	t.Run("rejects another user's week", func(t *testing.T) {
		week := entity.NewWeek(uuid.New(), 35, start, start.AddDate(0, 0, 4), entity.WeekStatusMissing)
		uc := NewGetWeekUseCase(newFakeWeekRepository(week), &fakeEntryRepository{})

		_, err := uc.Execute(ctx, GetWeekInput{WeekID: week.ID, UserID: userID})
		if code := weekErrorCode(t, err); code != domainerror.ErrCodeNotAuthorizedWeek {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeNotAuthorizedWeek, code)
		}
	})
}

func TestListWeeksUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	t.Run("filters by status", func(t *testing.T) {
		w1 := entity.NewWeek(userID, 34, start.AddDate(0, 0, -7), start.AddDate(0, 0, -3), entity.WeekStatusCompleted)
		w2 := entity.NewWeek(userID, 35, start, start.AddDate(0, 0, 4), entity.WeekStatusMissing)
		uc := NewListWeeksUseCase(newFakeWeekRepository(w1, w2))

		status := entity.WeekStatusCompleted
		output, err := uc.Execute(ctx, ListWeeksInput{UserID: userID, Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Weeks) != 1 {
			t.Fatalf("expected 1 week, got %d", len(output.Weeks))
		}
		if output.Weeks[0].WeekNumber != 34 {
			t.Errorf("expected week 34, got %d", output.Weeks[0].WeekNumber)
		}
	})

	t.Run("orders by week number descending", func(t *testing.T) {
		w1 := entity.NewWeek(userID, 33, start.AddDate(0, 0, -14), start.AddDate(0, 0, -10), entity.WeekStatusMissing)
		w2 := entity.NewWeek(userID, 35, start, start.AddDate(0, 0, 4), entity.WeekStatusMissing)
		uc := NewListWeeksUseCase(newFakeWeekRepository(w1, w2))

		output, err := uc.Execute(ctx, ListWeeksInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Weeks) != 2 {
			t.Fatalf("expected 2 weeks, got %d", len(output.Weeks))
		}
		if output.Weeks[0].WeekNumber != 35 || output.Weeks[1].WeekNumber != 33 {
			t.Errorf("unexpected order: %d, %d", output.Weeks[0].WeekNumber, output.Weeks[1].WeekNumber)
		}
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		uc := NewListWeeksUseCase(newFakeWeekRepository())

		status := entity.WeekStatus("Done")
		_, err := uc.Execute(ctx, ListWeeksInput{UserID: userID, Status: &status})
		if code := weekErrorCode(t, err); code != domainerror.ErrCodeInvalidWeekStatus {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidWeekStatus, code)
		}
	})

	t.Run("excludes other users' weeks", func(t *testing.T) {
		mine := entity.NewWeek(userID, 35, start, start.AddDate(0, 0, 4), entity.WeekStatusMissing)
		theirs := entity.NewWeek(uuid.New(), 35, start, start.AddDate(0, 0, 4), entity.WeekStatusMissing)
		uc := NewListWeeksUseCase(newFakeWeekRepository(mine, theirs))

		output, err := uc.Execute(ctx, ListWeeksInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Weeks) != 1 {
			t.Fatalf("expected 1 week, got %d", len(output.Weeks))
		}
	})
}
