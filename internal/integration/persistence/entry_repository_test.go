package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/timesheet-tracker/backend/internal/application/adapter"
	"github.com/timesheet-tracker/backend/internal/domain/entity"
	domainerror "github.com/timesheet-tracker/backend/internal/domain/error"
	"github.com/timesheet-tracker/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory database with the full schema and
// foreign keys enforced.
func newTestDB(t *testing.T) *gorm.DB {
	return openTestDB(t, true)
}

func openTestDB(t *testing.T, foreignKeys bool) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if foreignKeys {
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			t.Fatalf("failed to enable foreign keys: %v", err)
		}
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.WeekModel{},
		&model.TimesheetEntryModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedWeek(t *testing.T, repo adapter.WeekRepository, userID uuid.UUID) *entity.Week {
	t.Helper()

	start := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	week := entity.NewWeek(userID, 35, start, start.AddDate(0, 0, 4), entity.WeekStatusMissing)
	if err := repo.Create(context.Background(), week); err != nil {
		t.Fatalf("failed to seed week: %v", err)
	}
	return week
}

func TestEntryRepository_CreateUpdatesWeekInSameTransaction(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	weekRepo := NewWeekRepository(db)
	entryRepo := NewEntryRepository(db)

	week := seedWeek(t, weekRepo, uuid.New())
	e := entity.NewTimesheetEntry(week.ID, week.StartDate, "Project A", "Development", "api work", 8)

	if err := entryRepo.Create(ctx, e, 8, entity.StatusForTotal(8)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := weekRepo.FindByID(ctx, week.ID)
	if err != nil {
		t.Fatalf("failed to reload week: %v", err)
	}
	if stored.TotalHours != 8 {
		t.Errorf("expected week total 8, got %d", stored.TotalHours)
	}
	if stored.Status != entity.WeekStatusIncomplete {
		t.Errorf("expected status Incomplete, got %q", stored.Status)
	}

	total, err := entryRepo.SumHoursByWeek(ctx, week.ID)
	if err != nil {
		t.Fatalf("failed to sum hours: %v", err)
	}
	if total != 8 {
		t.Errorf("expected sum 8, got %d", total)
	}
}

func TestEntryRepository_CreateWritesNothingWhenWeekMissing(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	entryRepo := NewEntryRepository(db)

	e := entity.NewTimesheetEntry(uuid.New(), time.Now().UTC(), "Project A", "Development", "", 8)

	// With foreign keys enforced the entry insert itself is rejected; either
	// way the create must fail and leave no row behind.
	if err := entryRepo.Create(ctx, e, 8, entity.WeekStatusIncomplete); err == nil {
		t.Fatal("expected error for missing week, got nil")
	}

	var count int64
	if err := db.Model(&model.TimesheetEntryModel{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count entries: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 entries after failed create, got %d", count)
	}
}

func TestEntryRepository_CreateRollsBackWhenWeekRowGone(t *testing.T) {
	ctx := context.Background()
	// Foreign keys off so the insert succeeds and the failure comes from the
	// week aggregate update, which must roll the insert back with it.
	db := openTestDB(t, false)
	entryRepo := NewEntryRepository(db)

	e := entity.NewTimesheetEntry(uuid.New(), time.Now().UTC(), "Project A", "Development", "", 8)

	err := entryRepo.Create(ctx, e, 8, entity.WeekStatusIncomplete)
	if !errors.Is(err, domainerror.ErrWeekNotFound) {
		t.Fatalf("expected ErrWeekNotFound, got %v", err)
	}

	var count int64
	if err := db.Model(&model.TimesheetEntryModel{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count entries: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 entries after rollback, got %d", count)
	}
}

func TestEntryRepository_SumHoursByWeekExcluding(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	weekRepo := NewWeekRepository(db)
	entryRepo := NewEntryRepository(db)

	week := seedWeek(t, weekRepo, uuid.New())
	first := entity.NewTimesheetEntry(week.ID, week.StartDate, "Project A", "Development", "", 8)
	second := entity.NewTimesheetEntry(week.ID, week.StartDate.AddDate(0, 0, 1), "Project B", "Testing", "", 6)

	if err := entryRepo.Create(ctx, first, 8, entity.WeekStatusIncomplete); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := entryRepo.Create(ctx, second, 14, entity.WeekStatusIncomplete); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total, err := entryRepo.SumHoursByWeekExcluding(ctx, week.ID, first.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 6 {
		t.Errorf("expected 6 excluding first entry, got %d", total)
	}
}

func TestEntryRepository_DeleteRecountsFreshTotal(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	weekRepo := NewWeekRepository(db)
	entryRepo := NewEntryRepository(db)

	week := seedWeek(t, weekRepo, uuid.New())
	kept := entity.NewTimesheetEntry(week.ID, week.StartDate, "Project A", "Development", "", 10)
	removed := entity.NewTimesheetEntry(week.ID, week.StartDate.AddDate(0, 0, 1), "Project B", "Testing", "", 12)

	if err := entryRepo.Create(ctx, kept, 10, entity.WeekStatusIncomplete); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := entryRepo.Create(ctx, removed, 22, entity.WeekStatusIncomplete); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	freshTotal, err := entryRepo.Delete(ctx, removed.ID, week.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if freshTotal != 10 {
		t.Errorf("expected fresh total 10, got %d", freshTotal)
	}

	stored, err := weekRepo.FindByID(ctx, week.ID)
	if err != nil {
		t.Fatalf("failed to reload week: %v", err)
	}
	if stored.TotalHours != 10 {
		t.Errorf("expected week total 10, got %d", stored.TotalHours)
	}
	if stored.Status != entity.WeekStatusIncomplete {
		t.Errorf("expected status Incomplete, got %q", stored.Status)
	}

	if _, err := entryRepo.FindByID(ctx, removed.ID); !errors.Is(err, domainerror.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound for deleted entry, got %v", err)
	}
}

func TestEntryRepository_DeleteUnknownEntry(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	weekRepo := NewWeekRepository(db)
	entryRepo := NewEntryRepository(db)

	week := seedWeek(t, weekRepo, uuid.New())

	if _, err := entryRepo.Delete(ctx, uuid.New(), week.ID); !errors.Is(err, domainerror.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestEntryRepository_FindByWeekOrdersByDate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	weekRepo := NewWeekRepository(db)
	entryRepo := NewEntryRepository(db)

	week := seedWeek(t, weekRepo, uuid.New())
	later := entity.NewTimesheetEntry(week.ID, week.StartDate.AddDate(0, 0, 3), "Project A", "Development", "", 4)
	earlier := entity.NewTimesheetEntry(week.ID, week.StartDate, "Project A", "Development", "", 4)

	if err := entryRepo.Create(ctx, later, 4, entity.WeekStatusIncomplete); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := entryRepo.Create(ctx, earlier, 8, entity.WeekStatusIncomplete); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := entryRepo.FindByWeek(ctx, week.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != earlier.ID {
		t.Error("expected earliest entry first")
	}
}

func TestWeekRepository_FindByUserFilters(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	weekRepo := NewWeekRepository(db)
	userID := uuid.New()

	start1 := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	start2 := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	w1 := entity.NewWeek(userID, 34, start1, start1.AddDate(0, 0, 4), entity.WeekStatusCompleted)
	w1.TotalHours = 40
	w2 := entity.NewWeek(userID, 35, start2, start2.AddDate(0, 0, 4), entity.WeekStatusMissing)

	for _, w := range []*entity.Week{w1, w2} {
		if err := weekRepo.Create(ctx, w); err != nil {
			t.Fatalf("failed to create week: %v", err)
		}
	}

	t.Run("unfiltered ordered by week number descending", func(t *testing.T) {
		weeks, err := weekRepo.FindByUser(ctx, userID, adapter.WeekFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(weeks) != 2 {
			t.Fatalf("expected 2 weeks, got %d", len(weeks))
		}
		if weeks[0].WeekNumber != 35 {
			t.Errorf("expected week 35 first, got %d", weeks[0].WeekNumber)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		status := entity.WeekStatusCompleted
		weeks, err := weekRepo.FindByUser(ctx, userID, adapter.WeekFilter{Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(weeks) != 1 || weeks[0].WeekNumber != 34 {
			t.Fatalf("expected only week 34, got %d weeks", len(weeks))
		}
	})

	t.Run("date range filter", func(t *testing.T) {
		weeks, err := weekRepo.FindByUser(ctx, userID, adapter.WeekFilter{StartDate: &start2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(weeks) != 1 || weeks[0].WeekNumber != 35 {
			t.Fatalf("expected only week 35, got %d weeks", len(weeks))
		}
	})
}

func TestWeekRepository_ExistsByUserAndDateRange(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	weekRepo := NewWeekRepository(db)
	userID := uuid.New()

	week := seedWeek(t, weekRepo, userID)

	exists, err := weekRepo.ExistsByUserAndDateRange(ctx, userID, week.StartDate, week.EndDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected existing range to be found")
	}

	exists, err = weekRepo.ExistsByUserAndDateRange(ctx, uuid.New(), week.StartDate, week.EndDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected another user's lookup to find nothing")
	}
}

func TestWeekRepository_UpdateTotalsUnknownWeek(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	weekRepo := NewWeekRepository(db)

	err := weekRepo.UpdateTotals(ctx, uuid.New(), 10, entity.WeekStatusIncomplete)
	if !errors.Is(err, domainerror.ErrWeekNotFound) {
		t.Fatalf("expected ErrWeekNotFound, got %v", err)
	}
}
