package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FCT-TaskManager/Backend/internal/models"
	"github.com/FCT-TaskManager/Backend/internal/services"
	"github.com/FCT-TaskManager/Backend/internal/utils"
)

type TimeEntryHandler struct {
	timeEntries *services.TimeEntryService
}

func NewTimeEntryHandler(timeEntries *services.TimeEntryService) *TimeEntryHandler {
	return &TimeEntryHandler{timeEntries: timeEntries}
}

type TimeEntryRequest struct {
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Duration    *int       `json:"duration"`
	ProjectID   *uint      `json:"project_id"`
	TaskID      *uint      `json:"task_id"`
}

func (r TimeEntryRequest) input() services.TimeEntryInput {
	return services.TimeEntryInput{
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Duration:    r.Duration,
		ProjectID:   r.ProjectID,
		TaskID:      r.TaskID,
	}
}

func (h *TimeEntryHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	entries, err := h.timeEntries.List(userID)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve time entries")
		return
	}

	if entries == nil {
		entries = []models.TimeEntry{}
	}

	respondData(ctx, http.StatusOK, entries)
}

func (h *TimeEntryHandler) Create(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	var req TimeEntryRequest

	if err := ctx.BindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request")
		return
	}

	entry, err := h.timeEntries.Create(userID, req.input())
	if err != nil {
		respondError(ctx, err, "Failed to create time entry")
		return
	}

	respondData(ctx, http.StatusCreated, entry)
}

func (h *TimeEntryHandler) Update(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	entryID, err := utils.ParamID(ctx, "id")
	if err != nil {
		respondBadRequest(ctx, "Invalid time entry ID")
		return
	}

	var req TimeEntryRequest

	if err := ctx.BindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request")
		return
	}

	entry, err := h.timeEntries.Update(entryID, userID, req.input())
	if err != nil {
		respondError(ctx, err, "Failed to update time entry")
		return
	}

	respondData(ctx, http.StatusOK, entry)
}

func (h *TimeEntryHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	entryID, err := utils.ParamID(ctx, "id")
	if err != nil {
		respondBadRequest(ctx, "Invalid time entry ID")
		return
	}

	if err := h.timeEntries.Delete(entryID, userID); err != nil {
		respondError(ctx, err, "Failed to delete time entry")
		return
	}

	respondMessage(ctx, http.StatusOK, "Time entry deleted successfully")
}
