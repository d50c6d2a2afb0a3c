package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FCT-TaskManager/Backend/internal/models"
	"github.com/FCT-TaskManager/Backend/internal/services"
	"github.com/FCT-TaskManager/Backend/internal/utils"
)

// TaskHandler serves the flat personal todo list.
type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

type TaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	DueDate     *time.Time `json:"due_date"`
}

func (r TaskRequest) input() services.TaskInput {
	return services.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		DueDate:     r.DueDate,
	}
}

func (h *TaskHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	tasks, err := h.tasks.List(userID)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve tasks")
		return
	}

	if tasks == nil {
		tasks = []models.Task{}
	}

	respondData(ctx, http.StatusOK, tasks)
}

func (h *TaskHandler) Create(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	var req TaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request")
		return
	}

	task, err := h.tasks.Create(userID, req.input())
	if err != nil {
		respondError(ctx, err, "Failed to create task")
		return
	}

	respondData(ctx, http.StatusCreated, task)
}

func (h *TaskHandler) Get(ctx *gin.Context) {
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

	task, err := h.tasks.Get(taskID, userID)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve task")
		return
	}

	respondData(ctx, http.StatusOK, task)
}

func (h *TaskHandler) Update(ctx *gin.Context) {
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

	var req TaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request")
		return
	}

	task, err := h.tasks.Update(taskID, userID, req.input())
	if err != nil {
		respondError(ctx, err, "Failed to update task")
		return
	}

	respondData(ctx, http.StatusOK, task)
}

func (h *TaskHandler) Delete(ctx *gin.Context) {
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

	if err := h.tasks.Delete(taskID, userID); err != nil {
		respondError(ctx, err, "Failed to delete task")
		return
	}

	respondMessage(ctx, http.StatusOK, "Task removed")
}
