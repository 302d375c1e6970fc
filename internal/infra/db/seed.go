// Package db provides database connection and management functionality.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/timesheet-tracker/backend/internal/domain/entity"
	"github.com/timesheet-tracker/backend/internal/integration/persistence/model"
)

const (
	demoUserEmail    = "admin@gmail.com"
	demoUserName     = "Admin"
	demoUserPassword = "admin"

	seedWeekCount = 5
)

// SeedDemoData inserts the demo user and their last five Monday-to-Friday
// weeks. It is idempotent: existing rows are left untouched, so it is safe
// to run on every startup.
func (d *Database) SeedDemoData() error {
	user, err := d.ensureDemoUser()
	if err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}

	created, err := d.ensureDemoWeeks(user.ID)
	if err != nil {
		return fmt.Errorf("failed to seed demo weeks: %w", err)
	}

	slog.Info("Demo data seeded", "user", demoUserEmail, "weeks_created", created)
	return nil
}

// ensureDemoUser finds or creates the demo user.
func (d *Database) ensureDemoUser() (*model.UserModel, error) {
	var user model.UserModel
	err := d.db.Where("email = ?", demoUserEmail).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	newUser := entity.NewUser(demoUserEmail, demoUserName, string(hash))
	user = *model.FromEntity(newUser)
	if err := d.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ensureDemoWeeks creates the user's last five work weeks if they do not
// exist yet. Each week runs Monday through Friday.
func (d *Database) ensureDemoWeeks(userID uuid.UUID) (int, error) {
	monday := mostRecentMonday(time.Now().UTC())
	created := 0

	for i := 0; i < seedWeekCount; i++ {
		start := monday.AddDate(0, 0, -7*i)
		end := start.AddDate(0, 0, 4)

		var count int64
		err := d.db.Model(&model.WeekModel{}).
			Where("user_id = ? AND start_date = ? AND end_date = ?", userID, start, end).
			Count(&count).Error
		if err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}

		_, isoWeek := start.ISOWeek()
		week := entity.NewWeek(userID, isoWeek, start, end, entity.WeekStatusMissing)
		if err := d.db.Create(model.WeekFromEntity(week)).Error; err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}

// mostRecentMonday truncates t to midnight and walks back to Monday.
func mostRecentMonday(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
