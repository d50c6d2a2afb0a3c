package store

import (
	"github.com/FCT-TaskManager/Backend/internal/models"
	"gorm.io/gorm"
)

type TaskStore interface {
	Create(task *models.Task) error
	ByIDForUser(id, userID uint) (*models.Task, error)
	ByUser(userID uint) ([]models.Task, error)
	Save(task *models.Task) error
	Delete(task *models.Task) error
}

type tasksStore struct {
	db *gorm.DB
}

func (s tasksStore) Create(task *models.Task) error {
	return s.db.Create(task).Error
}

func (s tasksStore) ByIDForUser(id, userID uint) (*models.Task, error) {
	var task models.Task

	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

func (s tasksStore) ByUser(userID uint) ([]models.Task, error) {
	var tasks []models.Task

	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

func (s tasksStore) Save(task *models.Task) error {
	return s.db.Save(task).Error
}

func (s tasksStore) Delete(task *models.Task) error {
	return s.db.Delete(task).Error
}
