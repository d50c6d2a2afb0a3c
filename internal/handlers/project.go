package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FCT-TaskManager/Backend/internal/models"
	"github.com/FCT-TaskManager/Backend/internal/services"
	"github.com/FCT-TaskManager/Backend/internal/utils"
)

type ProjectHandler struct {
	projects *services.ProjectService
}

func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *ProjectHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	projects, err := h.projects.List(userID)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve projects")
		return
	}

	if projects == nil {
		projects = []models.Project{}
	}

	respondData(ctx, http.StatusOK, projects)
}

func (h *ProjectHandler) Create(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	var req CreateProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request")
		return
	}

	project, err := h.projects.Create(userID, req.Name, req.Description)
	if err != nil {
		respondError(ctx, err, "Failed to create project")
		return
	}

	respondData(ctx, http.StatusCreated, project)
}

func (h *ProjectHandler) Get(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	projectID, err := utils.ParamID(ctx, "id")
	if err != nil {
		respondBadRequest(ctx, "Invalid project ID")
		return
	}

	project, err := h.projects.Get(projectID, userID)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve project")
		return
	}

	respondData(ctx, http.StatusOK, project)
}

func (h *ProjectHandler) Columns(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	projectID, err := utils.ParamID(ctx, "id")
	if err != nil {
		respondBadRequest(ctx, "Invalid project ID")
		return
	}

	columns, err := h.projects.Columns(projectID, userID)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve project columns")
		return
	}

	respondData(ctx, http.StatusOK, columns)
}

func (h *ProjectHandler) KanbanTasks(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	projectID, err := utils.ParamID(ctx, "id")
	if err != nil {
		respondBadRequest(ctx, "Invalid project ID")
		return
	}

	tasks, err := h.projects.KanbanTasks(projectID, userID)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve project kanban tasks")
		return
	}

	if tasks == nil {
		tasks = []models.KanbanTask{}
	}

	respondData(ctx, http.StatusOK, tasks)
}

func (h *ProjectHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	projectID, err := utils.ParamID(ctx, "id")
	if err != nil {
		respondBadRequest(ctx, "Invalid project ID")
		return
	}

	if err := h.projects.Delete(projectID, userID); err != nil {
		respondError(ctx, err, "Failed to delete project")
		return
	}

	respondMessage(ctx, http.StatusOK, "Project deleted successfully")
}
