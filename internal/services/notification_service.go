package services

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/FCT-TaskManager/Backend/internal/models"
	"github.com/FCT-TaskManager/Backend/internal/store"
)

// recentNotificationLimit caps the notification feed at the newest entries.
const recentNotificationLimit = 50

// NotificationRef pairs a notification type with the id it refers to, so a
// type never ships with the wrong kind of related id. Construct one with the
// typed helpers below.
type NotificationRef struct {
	Type      string
	RelatedID uint
}

func InvitationRef(invitationID uint) NotificationRef {
	return NotificationRef{Type: models.NotificationInvitation, RelatedID: invitationID}
}

func InvitationResponseRef(projectID uint) NotificationRef {
	return NotificationRef{Type: models.NotificationInvitationResponse, RelatedID: projectID}
}

func TaskDueRef(taskID uint) NotificationRef {
	return NotificationRef{Type: models.NotificationTaskDue, RelatedID: taskID}
}

func TaskAssignedRef(taskID uint) NotificationRef {
	return NotificationRef{Type: models.NotificationTaskAssigned, RelatedID: taskID}
}

// emitNotification appends one notification through the given store handle,
// which lets callers emit inside their own transaction.
func emitNotification(st *store.Store, userID uint, ref NotificationRef, message string) error {
	relatedID := ref.RelatedID

	return st.Notifications.Create(&models.Notification{
		UserID:    userID,
		Type:      ref.Type,
		Message:   message,
		RelatedID: &relatedID,
	})
}

type NotificationService struct {
	store *store.Store
}

func NewNotificationService(st *store.Store) *NotificationService {
	return &NotificationService{store: st}
}

func (s *NotificationService) Emit(userID uint, ref NotificationRef, message string) error {
	return emitNotification(s.store, userID, ref, message)
}

// List returns the user's newest notifications, capped at 50.
func (s *NotificationService) List(userID uint) ([]models.Notification, error) {
	return s.store.Notifications.Recent(userID, recentNotificationLimit)
}

func (s *NotificationService) MarkRead(notificationID, userID uint) (*models.Notification, error) {
	notification, err := s.store.Notifications.ByIDForUser(notificationID, userID)
	if err != nil {
		return nil, notFoundOr(err, "Notification not found")
	}

	notification.Read = true

	if err := s.store.Notifications.Save(notification); err != nil {
		return nil, err
	}

	return notification, nil
}

// MarkAllRead flips every unread notification of the user. Idempotent; zero
// unread rows still succeeds.
func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.store.Notifications.MarkAllRead(userID)
}

// EmitDueReminders notifies creators of incomplete tasks falling due within
// the window, once per task. Returns how many reminders were sent.
func (s *NotificationService) EmitDueReminders(window time.Duration) (int, error) {
	tasks, err := s.store.KanbanTasks.DueSoon(window)
	if err != nil {
		return 0, err
	}

	sent := 0

	for _, task := range tasks {
		userID := *task.UserID

		already, err := s.store.Notifications.HasForTask(userID, models.NotificationTaskDue, task.ID)
		if err != nil {
			return sent, err
		}
		if already {
			continue
		}

		projectName := ""
		if project, err := s.store.Projects.ByID(task.ProjectID); err == nil {
			projectName = project.Name
		} else {
			log.Warn().Err(err).Uint("task_id", task.ID).Msg("due reminder: project lookup failed")
		}

		message := fmt.Sprintf("The task %q in the project %q is due soon", task.Title, projectName)
		if err := emitNotification(s.store, userID, TaskDueRef(task.ID), message); err != nil {
			return sent, err
		}
		sent++
	}

	return sent, nil
}
