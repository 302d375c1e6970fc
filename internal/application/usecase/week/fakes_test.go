package week

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/timesheet-tracker/backend/internal/application/adapter"
	"github.com/timesheet-tracker/backend/internal/domain/entity"
	domainerror "github.com/timesheet-tracker/backend/internal/domain/error"
)

// fakeWeekRepository is an in-memory adapter.WeekRepository for tests.
type fakeWeekRepository struct {
	weeks map[uuid.UUID]*entity.Week
}

func newFakeWeekRepository(weeks ...*entity.Week) *fakeWeekRepository {
	repo := &fakeWeekRepository{weeks: make(map[uuid.UUID]*entity.Week)}
	for _, w := range weeks {
		repo.weeks[w.ID] = w
	}
	return repo
}

func (r *fakeWeekRepository) Create(ctx context.Context, week *entity.Week) error {
	r.weeks[week.ID] = week
	return nil
}

func (r *fakeWeekRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Week, error) {
	week, ok := r.weeks[id]
	if !ok {
		return nil, domainerror.ErrWeekNotFound
	}
	return week, nil
}

func (r *fakeWeekRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter adapter.WeekFilter) ([]*entity.Week, error) {
	var weeks []*entity.Week
	for _, w := range r.weeks {
		if w.UserID != userID {
			continue
		}
		if filter.StartDate != nil && w.StartDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && w.EndDate.After(*filter.EndDate) {
			continue
		}
		if filter.Status != nil && w.Status != *filter.Status {
			continue
		}
		weeks = append(weeks, w)
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekNumber > weeks[j].WeekNumber
	})
	return weeks, nil
}

func (r *fakeWeekRepository) UpdateTotals(ctx context.Context, id uuid.UUID, totalHours int, status entity.WeekStatus) error {
	week, ok := r.weeks[id]
	if !ok {
		return domainerror.ErrWeekNotFound
	}
	week.TotalHours = totalHours
	week.Status = status
	return nil
}

func (r *fakeWeekRepository) ExistsByUserAndDateRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (bool, error) {
	for _, w := range r.weeks {
		if w.UserID == userID && w.StartDate.Equal(startDate) && w.EndDate.Equal(endDate) {
			return true, nil
		}
	}
	return false, nil
}

// fakeEntryRepository backs GetWeek tests with a fixed entry list.
type fakeEntryRepository struct {
	entries []*entity.TimesheetEntry
}

func (r *fakeEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TimesheetEntry, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domainerror.ErrEntryNotFound
}

func (r *fakeEntryRepository) FindByWeek(ctx context.Context, weekID uuid.UUID) ([]*entity.TimesheetEntry, error) {
	var entries []*entity.TimesheetEntry
	for _, e := range r.entries {
		if e.WeekID == weekID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries, nil
}

func (r *fakeEntryRepository) SumHoursByWeek(ctx context.Context, weekID uuid.UUID) (int, error) {
	total := 0
	for _, e := range r.entries {
		if e.WeekID == weekID {
			total += e.Hours
		}
	}
	return total, nil
}

func (r *fakeEntryRepository) SumHoursByWeekExcluding(ctx context.Context, weekID, entryID uuid.UUID) (int, error) {
	total := 0
	for _, e := range r.entries {
		if e.WeekID == weekID && e.ID != entryID {
			total += e.Hours
		}
	}
	return total, nil
}

func (r *fakeEntryRepository) Create(ctx context.Context, entry *entity.TimesheetEntry, weekTotal int, weekStatus entity.WeekStatus) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeEntryRepository) Update(ctx context.Context, entry *entity.TimesheetEntry, weekTotal int, weekStatus entity.WeekStatus) error {
	return nil
}

func (r *fakeEntryRepository) Delete(ctx context.Context, id, weekID uuid.UUID) (int, error) {
	return 0, nil
}
