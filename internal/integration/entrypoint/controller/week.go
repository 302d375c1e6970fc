// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/timesheet-tracker/backend/internal/application/usecase/week"
	"github.com/timesheet-tracker/backend/internal/domain/entity"
	domainerror "github.com/timesheet-tracker/backend/internal/domain/error"
	"github.com/timesheet-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/timesheet-tracker/backend/internal/integration/entrypoint/middleware"
)

// WeekController handles week endpoints.
type WeekController struct {
	listUseCase     *week.ListWeeksUseCase
	getUseCase      *week.GetWeekUseCase
	createUseCase   *week.CreateWeekUseCase
	overrideUseCase *week.OverrideWeekUseCase
}

// NewWeekController creates a new week controller instance.
func NewWeekController(
	listUseCase *week.ListWeeksUseCase,
	getUseCase *week.GetWeekUseCase,
	createUseCase *week.CreateWeekUseCase,
	overrideUseCase *week.OverrideWeekUseCase,
) *WeekController {
	return &WeekController{
		listUseCase:     listUseCase,
		getUseCase:      getUseCase,
		createUseCase:   createUseCase,
		overrideUseCase: overrideUseCase,
	}
}

// List handles GET /weeks requests.
func (c *WeekController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := week.ListWeeksInput{
		UserID: userID,
	}

	// Parse date filters
	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err == nil {
			input.EndDate = &endDate
		}
	}

	// Parse status filter
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.WeekStatus(statusStr)
		input.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWeekError(ctx, err)
		return
	}

	weeks := make([]dto.WeekResponse, len(output.Weeks))
	for i, w := range output.Weeks {
		weeks[i] = dto.ToWeekResponse(w)
	}

	ctx.JSON(http.StatusOK, dto.WeekListResponse{
		Weeks: weeks,
	})
}

// Get handles GET /weeks/:id requests.
func (c *WeekController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	weekID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid week ID",
			Code:  string(domainerror.ErrCodeWeekNotFound),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), week.GetWeekInput{
		WeekID: weekID,
		UserID: userID,
	})
	if err != nil {
		c.handleWeekError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeekDetailResponse(output))
}

// Create handles POST /weeks requests.
func (c *WeekController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateWeekRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingWeekFields),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date format",
			Code:  string(domainerror.ErrCodeInvalidDateRange),
		})
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end date format",
			Code:  string(domainerror.ErrCodeInvalidDateRange),
		})
		return
	}

	input := week.CreateWeekInput{
		UserID:     userID,
		WeekNumber: req.WeekNumber,
		StartDate:  startDate,
		EndDate:    endDate,
	}
	if req.Status != "" {
		status := entity.WeekStatus(req.Status)
		input.Status = &status
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWeekError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWeekResponse(output.Week))
}

// Override handles PUT /weeks/:id requests.
func (c *WeekController) Override(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	weekID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid week ID",
			Code:  string(domainerror.ErrCodeWeekNotFound),
		})
		return
	}

	var req dto.OverrideWeekRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingWeekFields),
		})
		return
	}

	output, err := c.overrideUseCase.Execute(ctx.Request.Context(), week.OverrideWeekInput{
		WeekID:     weekID,
		UserID:     userID,
		Status:     entity.WeekStatus(req.Status),
		TotalHours: *req.TotalHours,
	})
	if err != nil {
		c.handleWeekError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeekResponse(output.Week))
}

// handleWeekError handles week errors and returns appropriate HTTP responses.
func (c *WeekController) handleWeekError(ctx *gin.Context, err error) {
	var weekErr *domainerror.WeekError
	if errors.As(err, &weekErr) {
		statusCode := c.getStatusCodeForWeekError(weekErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: weekErr.Message,
			Code:  string(weekErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForWeekError maps week error codes to HTTP status codes.
func (c *WeekController) getStatusCodeForWeekError(code domainerror.WeekErrorCode) int {
	switch code {
	case domainerror.ErrCodeWeekNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeWeekAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeNotAuthorizedWeek:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidWeekStatus,
		domainerror.ErrCodeInvalidWeekNumber,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidTotalHours,
		domainerror.ErrCodeMissingWeekFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
