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

// weekRepository implements the adapter.WeekRepository interface.
type weekRepository struct {
	db *gorm.DB
}

// NewWeekRepository creates a new week repository instance.
func NewWeekRepository(db *gorm.DB) adapter.WeekRepository {
	return &weekRepository{
		db: db,
	}
}

// Create creates a new week in the database.
func (r *weekRepository) Create(ctx context.Context, week *entity.Week) error {
	weekModel := model.WeekFromEntity(week)
	result := r.db.WithContext(ctx).Create(weekModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a week by its ID.
func (r *weekRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Week, error) {
	var weekModel model.WeekModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&weekModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrWeekNotFound
		}
		return nil, result.Error
	}
	return weekModel.ToEntity(), nil
}

// FindByUser retrieves all weeks for a user matching the filter, ordered by
// week number descending.
func (r *weekRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter adapter.WeekFilter) ([]*entity.Week, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.StartDate != nil {
		query = query.Where("start_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("end_date <= ?", *filter.EndDate)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var weekModels []model.WeekModel
	result := query.Order("week_number DESC").Find(&weekModels)
	if result.Error != nil {
		return nil, result.Error
	}

	weeks := make([]*entity.Week, len(weekModels))
	for i := range weekModels {
		weeks[i] = weekModels[i].ToEntity()
	}
	return weeks, nil
}

// UpdateTotals writes the given total hours and status onto the week row.
func (r *weekRepository) UpdateTotals(ctx context.Context, id uuid.UUID, totalHours int, status entity.WeekStatus) error {
	result := r.db.WithContext(ctx).Model(&model.WeekModel{}).
		Where("id = ?", id).
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

// ExistsByUserAndDateRange checks whether a week with the exact same date
// range already exists for the user.
func (r *weekRepository) ExistsByUserAndDateRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.WeekModel{}).
		Where("user_id = ? AND start_date = ? AND end_date = ?", userID, startDate, endDate).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
