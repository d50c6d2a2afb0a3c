package store

import (
	"time"

	"github.com/FCT-TaskManager/Backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KanbanTaskStore interface {
	Create(task *models.KanbanTask) error
	ByID(id uint) (*models.KanbanTask, error)
	ByProject(projectID uint) ([]models.KanbanTask, error)
	Save(task *models.KanbanTask) error
	Delete(task *models.KanbanTask) error
	// SetOrder rewrites the order of one task, guarded by column so ids from
	// other columns are silently ignored.
	SetOrder(taskID, columnID uint, order int) error
	// DueSoon returns incomplete tasks with a creator that fall due within
	// the window starting now.
	DueSoon(window time.Duration) ([]models.KanbanTask, error)
}

type kanbanTasksStore struct {
	db *gorm.DB
}

func (s kanbanTasksStore) Create(task *models.KanbanTask) error {
	return s.db.Create(task).Error
}

func (s kanbanTasksStore) ByID(id uint) (*models.KanbanTask, error) {
	var task models.KanbanTask

	if err := s.db.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

func (s kanbanTasksStore) ByProject(projectID uint) ([]models.KanbanTask, error) {
	var tasks []models.KanbanTask

	err := s.db.
		Where("project_id = ?", projectID).
		Order("\"order\" ASC, id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

func (s kanbanTasksStore) Save(task *models.KanbanTask) error {
	return s.db.Omit(clause.Associations).Save(task).Error
}

func (s kanbanTasksStore) Delete(task *models.KanbanTask) error {
	return s.db.Delete(task).Error
}

func (s kanbanTasksStore) SetOrder(taskID, columnID uint, order int) error {
	return s.db.Model(&models.KanbanTask{}).
		Where("id = ? AND column_id = ?", taskID, columnID).
		Update("order", order).Error
}

func (s kanbanTasksStore) DueSoon(window time.Duration) ([]models.KanbanTask, error) {
	var tasks []models.KanbanTask

	now := time.Now()
	err := s.db.
		Where("completed = ? AND user_id IS NOT NULL AND due_date IS NOT NULL AND due_date BETWEEN ? AND ?",
			false, now, now.Add(window)).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	return tasks, nil
}
