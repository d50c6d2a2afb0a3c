package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FCT-TaskManager/Backend/internal/models"
	"github.com/FCT-TaskManager/Backend/internal/services"
	"github.com/FCT-TaskManager/Backend/internal/utils"
)

type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	notifications, err := h.notifications.List(userID)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve notifications")
		return
	}

	if notifications == nil {
		notifications = []models.Notification{}
	}

	respondData(ctx, http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	notificationID, err := utils.ParamID(ctx, "notification_id")
	if err != nil {
		respondBadRequest(ctx, "Invalid notification ID")
		return
	}

	notification, err := h.notifications.MarkRead(notificationID, userID)
	if err != nil {
		respondError(ctx, err, "Failed to mark notification as read")
		return
	}

	respondData(ctx, http.StatusOK, notification)
}

func (h *NotificationHandler) MarkAllRead(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		respondUnauthenticated(ctx)
		return
	}

	if err := h.notifications.MarkAllRead(userID); err != nil {
		respondError(ctx, err, "Failed to mark all notifications as read")
		return
	}

	respondMessage(ctx, http.StatusOK, "All notifications marked as read")
}
