package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FCT-TaskManager/Backend/internal/models"
	"github.com/FCT-TaskManager/Backend/internal/services"
	"github.com/FCT-TaskManager/Backend/internal/utils"
)

type CollabHandler struct {
	collab *services.CollabService
}

func NewCollabHandler(collab *services.CollabService) *CollabHandler {
	return &CollabHandler{collab: collab}
}

type InviteUserRequest struct {
	ProjectID uint `json:"project_id" binding:"required"`
	UserID    uint `json:"user_id" binding:"required"`
}

type RespondInvitationRequest struct {
	InvitationID uint `json:"invitation_id" binding:"required"`
	Accept       bool `json:"accept"`
}

func (h *CollabHandler) AvailableUsers(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	projectID, err := utils.ParamID(ctx, "project_id")
	if err != nil {
		respondBadRequest(ctx, "Invalid project ID")
		return
	}

	users, err := h.collab.AvailableUsers(projectID, userID)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve available users")
		return
	}

	response := make([]UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, UserResponse{ID: user.ID, Name: user.Name, Email: user.Email})
	}

	respondData(ctx, http.StatusOK, response)
}

func (h *CollabHandler) Invite(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	var req InviteUserRequest

	if err := ctx.BindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request")
		return
	}

	invitation, err := h.collab.Invite(req.ProjectID, currentUser.ID, currentUser.Name, req.UserID)
	if err != nil {
		respondError(ctx, err, "Failed to invite user")
		return
	}

	respondData(ctx, http.StatusCreated, invitation)
}

func (h *CollabHandler) Respond(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	var req RespondInvitationRequest

	if err := ctx.BindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request")
		return
	}

	invitation, err := h.collab.Respond(req.InvitationID, currentUser.ID, currentUser.Name, req.Accept)
	if err != nil {
		respondError(ctx, err, "Failed to respond to invitation")
		return
	}

	message := "Invitation rejected successfully"
	if req.Accept {
		message = "Invitation accepted successfully"
	}

	respondDataMessage(ctx, http.StatusOK, invitation, message)
}

func (h *CollabHandler) Pending(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	invitations, err := h.collab.Pending(userID)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve pending invitations")
		return
	}

	if invitations == nil {
		invitations = []models.ProjectInvitation{}
	}

	respondData(ctx, http.StatusOK, invitations)
}
