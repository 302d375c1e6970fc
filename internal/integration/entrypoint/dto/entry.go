// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/timesheet-tracker/backend/internal/application/usecase/entry"
)

// CreateEntryRequest represents the request body for timesheet entry creation.
type CreateEntryRequest struct {
	WeekID      string `json:"week_id" binding:"required,uuid"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	ProjectName string `json:"project_name" binding:"required"`
	TypeOfWork  string `json:"type_of_work" binding:"required"`
	Description string `json:"description,omitempty" binding:"omitempty,max=1000"`
	Hours       int    `json:"hours" binding:"required,min=1"`
}

// UpdateEntryRequest represents the request body for timesheet entry update.
type UpdateEntryRequest struct {
	WeekID      string `json:"week_id" binding:"required,uuid"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	ProjectName string `json:"project_name" binding:"required"`
	TypeOfWork  string `json:"type_of_work" binding:"required"`
	Description string `json:"description,omitempty" binding:"omitempty,max=1000"`
	Hours       int    `json:"hours" binding:"required,min=1"`
}

// EntryResponse represents a single timesheet entry in API responses.
type EntryResponse struct {
	ID          string    `json:"id"`
	WeekID      string    `json:"week_id"`
	Date        string    `json:"date"`
	ProjectName string    `json:"project_name"`
	TypeOfWork  string    `json:"type_of_work"`
	Description string    `json:"description"`
	Hours       int       `json:"hours"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EntryListResponse represents the response for listing a week's entries.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts an entry use case output to an EntryResponse DTO.
func ToEntryResponse(e *entry.EntryOutput) EntryResponse {
	return EntryResponse{
		ID:          e.ID.String(),
		WeekID:      e.WeekID.String(),
		Date:        e.Date.Format("2006-01-02"),
		ProjectName: e.ProjectName,
		TypeOfWork:  e.TypeOfWork,
		Description: e.Description,
		Hours:       e.Hours,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
