package week

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/timesheet-tracker/backend/internal/domain/entity"
	domainerror "github.com/timesheet-tracker/backend/internal/domain/error"
)

func TestOverrideWeekUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	newWeek := func(owner uuid.UUID) *entity.Week {
		return entity.NewWeek(owner, 35, start, start.AddDate(0, 0, 4), entity.WeekStatusMissing)
	}

	t.Run("applies caller values without recomputing", func(t *testing.T) {
		week := newWeek(userID)
		weekRepo := newFakeWeekRepository(week)
		uc := NewOverrideWeekUseCase(weekRepo)

		// Status and total that no recomputation would produce together.
		output, err := uc.Execute(ctx, OverrideWeekInput{
			WeekID:     week.ID,
			UserID:     userID,
			Status:     entity.WeekStatusCompleted,
			TotalHours: 38,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Week.Status != entity.WeekStatusCompleted {
			t.Errorf("expected status Completed, got %q", output.Week.Status)
		}
		if output.Week.TotalHours != 38 {
			t.Errorf("expected total 38, got %d", output.Week.TotalHours)
		}
		if week.TotalHours != 38 || week.Status != entity.WeekStatusCompleted {
			t.Errorf("stored week not overridden: total=%d status=%q", week.TotalHours, week.Status)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		week := newWeek(userID)
		uc := NewOverrideWeekUseCase(newFakeWeekRepository(week))

		_, err := uc.Execute(ctx, OverrideWeekInput{
			WeekID:     week.ID,
			UserID:     userID,
			Status:     "Done",
			TotalHours: 10,
		})
		if code := weekErrorCode(t, err); code != domainerror.ErrCodeInvalidWeekStatus {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidWeekStatus, code)
		}
	})

	t.Run("rejects negative total", func(t *testing.T) {
		week := newWeek(userID)
		uc := NewOverrideWeekUseCase(newFakeWeekRepository(week))

		_, err := uc.Execute(ctx, OverrideWeekInput{
			WeekID:     week.ID,
			UserID:     userID,
			Status:     entity.WeekStatusMissing,
			TotalHours: -1,
		})
		if code := weekErrorCode(t, err); code != domainerror.ErrCodeInvalidTotalHours {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidTotalHours, code)
		}
	})

	t.Run("rejects unknown week", func(t *testing.T) {
		uc := NewOverrideWeekUseCase(newFakeWeekRepository())

		_, err := uc.Execute(ctx, OverrideWeekInput{
			WeekID:     uuid.New(),
			UserID:     userID,
			Status:     entity.WeekStatusMissing,
			TotalHours: 0,
		})
		if code := weekErrorCode(t, err); code != domainerror.ErrCodeWeekNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeWeekNotFound, code)
		}
	})

	t.Run("rejects another user's week", func(t *testing.T) {
		week := newWeek(uuid.New())
		uc := NewOverrideWeekUseCase(newFakeWeekRepository(week))

		_, err := uc.Execute(ctx, OverrideWeekInput{
			WeekID:     week.ID,
			UserID:     userID,
			Status:     entity.WeekStatusMissing,
			TotalHours: 0,
		})
		if code := weekErrorCode(t, err); code != domainerror.ErrCodeNotAuthorizedWeek {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeNotAuthorizedWeek, code)
		}
	})
}
