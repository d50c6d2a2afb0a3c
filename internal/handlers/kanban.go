package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FCT-TaskManager/Backend/internal/services"
	"github.com/FCT-TaskManager/Backend/internal/utils"
)

type KanbanHandler struct {
	kanban *services.KanbanService
}

func NewKanbanHandler(kanban *services.KanbanService) *KanbanHandler {
	return &KanbanHandler{kanban: kanban}
}

type CreateKanbanTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Completed   bool       `json:"completed"`
	Order       int        `json:"order"`
	ProjectID   uint       `json:"project_id" binding:"required"`
	ColumnID    uint       `json:"column_id" binding:"required"`
	UserID      *uint      `json:"user_id"`
}

type UpdateKanbanTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Completed   *bool      `json:"completed"`
	Order       *int       `json:"order"`
}

type MoveKanbanTaskRequest struct {
	ColumnID uint `json:"column_id" binding:"required"`
	Order    *int `json:"order"`
}

type ReorderKanbanTasksRequest struct {
	ColumnID  uint   `json:"column_id" binding:"required"`
	TaskOrder []uint `json:"task_order" binding:"required"`
}

func (h *KanbanHandler) Create(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	var req CreateKanbanTaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request")
		return
	}

	task, err := h.kanban.Create(currentUser.ID, currentUser.Name, services.CreateKanbanTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
		Order:       req.Order,
		ProjectID:   req.ProjectID,
		ColumnID:    req.ColumnID,
		AssigneeID:  req.UserID,
	})
	if err != nil {
		respondError(ctx, err, "Failed to create kanban task")
		return
	}

	respondData(ctx, http.StatusCreated, task)
}

func (h *KanbanHandler) Update(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	taskID, err := utils.ParamID(ctx, "id")
	if err != nil {
		respondBadRequest(ctx, "Invalid task ID")
		return
	}

	var req UpdateKanbanTaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request")
		return
	}

	task, err := h.kanban.Update(taskID, userID, services.UpdateKanbanTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
		Order:       req.Order,
	})
	if err != nil {
		respondError(ctx, err, "Failed to update kanban task")
		return
	}

	respondData(ctx, http.StatusOK, task)
}

func (h *KanbanHandler) Move(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	taskID, err := utils.ParamID(ctx, "id")
	if err != nil {
		respondBadRequest(ctx, "Invalid task ID")
		return
	}

	var req MoveKanbanTaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request")
		return
	}

	task, err := h.kanban.Move(taskID, userID, req.ColumnID, req.Order)
	if err != nil {
		respondError(ctx, err, "Failed to move kanban task")
		return
	}

	respondData(ctx, http.StatusOK, task)
}

func (h *KanbanHandler) Reorder(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	var req ReorderKanbanTasksRequest

	if err := ctx.BindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request")
		return
	}

	if err := h.kanban.Reorder(userID, req.ColumnID, req.TaskOrder); err != nil {
		respondError(ctx, err, "Failed to reorder kanban tasks")
		return
	}

	respondMessage(ctx, http.StatusOK, "Tasks reordered successfully")
}

func (h *KanbanHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	taskID, err := utils.ParamID(ctx, "id")
	if err != nil {
		respondBadRequest(ctx, "Invalid task ID")
		return
	}

	if err := h.kanban.Delete(taskID, userID); err != nil {
		respondError(ctx, err, "Failed to delete kanban task")
		return
	}

	respondMessage(ctx, http.StatusOK, "Task deleted successfully")
}
