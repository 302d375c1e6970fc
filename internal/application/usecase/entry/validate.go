// Package entry contains timesheet entry-related use cases.
package entry

import (
	"fmt"

	"github.com/timesheet-tracker/backend/internal/domain/entity"
	domainerror "github.com/timesheet-tracker/backend/internal/domain/error"
)

// validateEntryFields checks the hours bound and the closed project and
// work-type sets. It runs before any mutating statement.
func validateEntryFields(projectName, typeOfWork string, hours int) error {
	if hours < 1 {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidHours,
			fmt.Sprintf("hours must be positive, got %d", hours),
			domainerror.ErrInvalidHours,
		)
	}

	if !entity.IsValidProject(projectName) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidProject,
			fmt.Sprintf("project name %q is not a known project", projectName),
			domainerror.ErrInvalidProject,
		)
	}

	if !entity.IsValidWorkType(typeOfWork) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidWorkType,
			fmt.Sprintf("type of work %q is not a known work type", typeOfWork),
			domainerror.ErrInvalidWorkType,
		)
	}

	return nil
}

// capExceededError builds the CapacityExceeded error carrying the attempted total.
func capExceededError(attemptedTotal int) error {
	return domainerror.NewEntryError(
		domainerror.ErrCodeWeeklyCapExceeded,
		fmt.Sprintf("weekly hours limit exceeded: %d of max %d hours", attemptedTotal, entity.WeeklyHourCap),
		domainerror.ErrWeeklyCapExceeded,
	)
}
