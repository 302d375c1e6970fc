// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/timesheet-tracker/backend/internal/application/adapter"
	"github.com/timesheet-tracker/backend/internal/domain/entity"
	domainerror "github.com/timesheet-tracker/backend/internal/domain/error"
	"github.com/timesheet-tracker/backend/internal/integration/persistence/model"
)

// entryRepository implements the adapter.EntryRepository interface. Entry
// writes and the owning week's aggregate update run in one transaction so a
// reader never observes them out of sync.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new timesheet entry repository instance.
func NewEntryRepository(db *gorm.DB) adapter.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// FindByID retrieves a timesheet entry by its ID.
func (r *entryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TimesheetEntry, error) {
	var entryModel model.TimesheetEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByWeek retrieves all entries of a week, ordered by date ascending.
func (r *entryRepository) FindByWeek(ctx context.Context, weekID uuid.UUID) ([]*entity.TimesheetEntry, error) {
	var entryModels []model.TimesheetEntryModel
	result := r.db.WithContext(ctx).
		Where("week_id = ?", weekID).
		Order("date ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.TimesheetEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToEntity()
	}
	return entries, nil
}

// SumHoursByWeek returns the total hours currently logged in a week.
func (r *entryRepository) SumHoursByWeek(ctx context.Context, weekID uuid.UUID) (int, error) {
	return sumHours(r.db.WithContext(ctx), weekID, uuid.Nil)
}

// SumHoursByWeekExcluding returns the total hours logged in a week, leaving
// out the named entry.
func (r *entryRepository) SumHoursByWeekExcluding(ctx context.Context, weekID, entryID uuid.UUID) (int, error) {
	return sumHours(r.db.WithContext(ctx), weekID, entryID)
}

// sumHours sums entry hours for a week, optionally excluding one entry.
func sumHours(db *gorm.DB, weekID, excludeEntryID uuid.UUID) (int, error) {
	query := db.Model(&model.TimesheetEntryModel{}).Where("week_id = ?", weekID)
	if excludeEntryID != uuid.Nil {
		query = query.Where("id != ?", excludeEntryID)
	}

	var total int
	result := query.Select("COALESCE(SUM(hours), 0)").Scan(&total)
	if result.Error != nil {
		return 0, result.Error
	}
	return total, nil
}

// Create inserts the entry and writes the week's new total and status in one
// transaction.
func (r *entryRepository) Create(ctx context.Context, entry *entity.TimesheetEntry, weekTotal int, weekStatus entity.WeekStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entryModel := model.EntryFromEntity(entry)
		if err := tx.Create(entryModel).Error; err != nil {
			return err
		}
		return updateWeekTotals(tx, entry.WeekID, weekTotal, weekStatus)
	})
}

// Update overwrites the entry and writes the week's new total and status in
// one transaction.
func (r *entryRepository) Update(ctx context.Context, entry *entity.TimesheetEntry, weekTotal int, weekStatus entity.WeekStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entryModel := model.EntryFromEntity(entry)
		result := tx.Model(&model.TimesheetEntryModel{}).
			Where("id = ?", entry.ID).
			Updates(map[string]interface{}{
				"date":         entryModel.Date,
				"project_name": entryModel.ProjectName,
				"type_of_work": entryModel.TypeOfWork,
				"description":  entryModel.Description,
				"hours":        entryModel.Hours,
				"updated_at":   entryModel.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrEntryNotFound
		}
		return updateWeekTotals(tx, entry.WeekID, weekTotal, weekStatus)
	})
}

// Delete removes the entry, recounts the remaining hours of its week and
// writes the week's new total and status, all in one transaction. It returns
// the week's fresh total.
func (r *entryRepository) Delete(ctx context.Context, id, weekID uuid.UUID) (int, error) {
	var freshTotal int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.TimesheetEntryModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrEntryNotFound
		}

		// Recount from what actually remains rather than trusting a
		// caller-computed value.
		total, err := sumHours(tx, weekID, uuid.Nil)
		if err != nil {
			return err
		}
		freshTotal = total

		return updateWeekTotals(tx, weekID, total, entity.StatusForTotal(total))
	})
	if err != nil {
		return 0, err
	}

	return freshTotal, nil
}

// updateWeekTotals writes the aggregate columns on the week row inside the
// caller's transaction.
func updateWeekTotals(tx *gorm.DB, weekID uuid.UUID, totalHours int, status entity.WeekStatus) error {
	result := tx.Model(&model.WeekModel{}).
		Where("id = ?", weekID).
		Updates(map[string]interface{}{
			"total_hours": totalHours,
			"status":      string(status),
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrWeekNotFound
	}
	return nil
}
