package entry

import (
	"context"
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
		if w.UserID == userID {
			weeks = append(weeks, w)
		}
	}
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

// fakeEntryRepository is an in-memory adapter.EntryRepository for tests. It
// mirrors the transactional contract: every mutating call also writes the
// week's total and status through the linked week repository.
type fakeEntryRepository struct {
	entries  map[uuid.UUID]*entity.TimesheetEntry
	weekRepo *fakeWeekRepository

	createCalls int
	updateCalls int
	deleteCalls int
}

func newFakeEntryRepository(weekRepo *fakeWeekRepository, entries ...*entity.TimesheetEntry) *fakeEntryRepository {
	repo := &fakeEntryRepository{
		entries:  make(map[uuid.UUID]*entity.TimesheetEntry),
		weekRepo: weekRepo,
	}
	for _, e := range entries {
		repo.entries[e.ID] = e
	}
	return repo
}

func (r *fakeEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TimesheetEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, domainerror.ErrEntryNotFound
	}
	return e, nil
}

func (r *fakeEntryRepository) FindByWeek(ctx context.Context, weekID uuid.UUID) ([]*entity.TimesheetEntry, error) {
	var entries []*entity.TimesheetEntry
	for _, e := range r.entries {
		if e.WeekID == weekID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (r *fakeEntryRepository) SumHoursByWeek(ctx context.Context, weekID uuid.UUID) (int, error) {
	return r.sum(weekID, uuid.Nil), nil
}

func (r *fakeEntryRepository) SumHoursByWeekExcluding(ctx context.Context, weekID, entryID uuid.UUID) (int, error) {
	return r.sum(weekID, entryID), nil
}

func (r *fakeEntryRepository) sum(weekID, exclude uuid.UUID) int {
	total := 0
	for _, e := range r.entries {
		if e.WeekID == weekID && e.ID != exclude {
			total += e.Hours
		}
	}
	return total
}

func (r *fakeEntryRepository) Create(ctx context.Context, entry *entity.TimesheetEntry, weekTotal int, weekStatus entity.WeekStatus) error {
	r.createCalls++
	r.entries[entry.ID] = entry
	return r.weekRepo.UpdateTotals(ctx, entry.WeekID, weekTotal, weekStatus)
}

func (r *fakeEntryRepository) Update(ctx context.Context, entry *entity.TimesheetEntry, weekTotal int, weekStatus entity.WeekStatus) error {
	r.updateCalls++
	r.entries[entry.ID] = entry
	return r.weekRepo.UpdateTotals(ctx, entry.WeekID, weekTotal, weekStatus)
}

func (r *fakeEntryRepository) Delete(ctx context.Context, id, weekID uuid.UUID) (int, error) {
	r.deleteCalls++
	if _, ok := r.entries[id]; !ok {
		return 0, domainerror.ErrEntryNotFound
	}
	delete(r.entries, id)
	total := r.sum(weekID, uuid.Nil)
	if err := r.weekRepo.UpdateTotals(ctx, weekID, total, entity.StatusForTotal(total)); err != nil {
		return 0, err
	}
	return total, nil
}
