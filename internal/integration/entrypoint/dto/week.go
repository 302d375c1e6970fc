// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/timesheet-tracker/backend/internal/application/usecase/week"
)

// CreateWeekRequest represents the request body for week creation.
type CreateWeekRequest struct {
	WeekNumber int    `json:"week_number" binding:"required,min=1"`
	StartDate  string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Status     string `json:"status,omitempty" binding:"omitempty,oneof=Missing Incomplete Completed"`
}

// OverrideWeekRequest represents the request body for an administrative week
// override. Both fields are required so a partial override cannot leave the
// stored pair inconsistent by accident.
type OverrideWeekRequest struct {
	Status     string `json:"status" binding:"required,oneof=Missing Incomplete Completed"`
	TotalHours *int   `json:"total_hours" binding:"required,min=0"`
}

// WeekResponse represents a single week in API responses.
type WeekResponse struct {
	ID         string    `json:"id"`
	WeekNumber int       `json:"week_number"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Status     string    `json:"status"`
	TotalHours int       `json:"total_hours"`
	UserID     string    `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// WeekDetailResponse represents a week together with its entries.
type WeekDetailResponse struct {
	WeekResponse
	Entries []EntryResponse `json:"entries"`
}

// WeekListResponse represents the response for listing weeks.
type WeekListResponse struct {
	Weeks []WeekResponse `json:"weeks"`
}

// ToWeekResponse converts a week use case output to a WeekResponse DTO.
func ToWeekResponse(w *week.WeekOutput) WeekResponse {
	return WeekResponse{
		ID:         w.ID.String(),
		WeekNumber: w.WeekNumber,
		StartDate:  w.StartDate.Format("2006-01-02"),
		EndDate:    w.EndDate.Format("2006-01-02"),
		Status:     string(w.Status),
		TotalHours: w.TotalHours,
		UserID:     w.UserID.String(),
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

// ToWeekDetailResponse converts a week detail output to a WeekDetailResponse DTO.
func ToWeekDetailResponse(output *week.GetWeekOutput) WeekDetailResponse {
	entries := make([]EntryResponse, len(output.Entries))
	for i, e := range output.Entries {
		entries[i] = EntryResponse{
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

	return WeekDetailResponse{
		WeekResponse: ToWeekResponse(output.Week),
		Entries:      entries,
	}
}
