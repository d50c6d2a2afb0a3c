package store

import (
	"github.com/FCT-TaskManager/Backend/internal/models"
	"gorm.io/gorm"
)

type NotificationStore interface {
	Create(notification *models.Notification) error
	// Recent returns the newest notifications for a user, capped at limit.
	Recent(userID uint, limit int) ([]models.Notification, error)
	ByIDForUser(id, userID uint) (*models.Notification, error)
	Save(notification *models.Notification) error
	// MarkAllRead flips every unread notification of the user. Zero matches
	// is not an error.
	MarkAllRead(userID uint) error
	// HasForTask reports whether a notification of the given type already
	// references the task, used to dedup reminder emission.
	HasForTask(userID uint, notificationType string, taskID uint) (bool, error)
}

type notificationsStore struct {
	db *gorm.DB
}

func (s notificationsStore) Create(notification *models.Notification) error {
	return s.db.Create(notification).Error
}

func (s notificationsStore) Recent(userID uint, limit int) ([]models.Notification, error) {
	var notifications []models.Notification

	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

func (s notificationsStore) ByIDForUser(id, userID uint) (*models.Notification, error) {
	var notification models.Notification

	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&notification).Error; err != nil {
		return nil, err
	}

	return &notification, nil
}

func (s notificationsStore) Save(notification *models.Notification) error {
	return s.db.Save(notification).Error
}

func (s notificationsStore) MarkAllRead(userID uint) error {
	return s.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}

func (s notificationsStore) HasForTask(userID uint, notificationType string, taskID uint) (bool, error) {
	var count int64

	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ? AND related_id = ?", userID, notificationType, taskID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
