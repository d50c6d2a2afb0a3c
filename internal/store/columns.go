package store

import (
	"github.com/FCT-TaskManager/Backend/internal/models"
	"gorm.io/gorm"
)

type ColumnStore interface {
	Create(column *models.Column) error
	ByID(id uint) (*models.Column, error)
	// ByIDInProject enforces that the column belongs to the given project;
	// cross-project references surface as gorm.ErrRecordNotFound.
	ByIDInProject(id, projectID uint) (*models.Column, error)
	// ByProject returns the project's columns in display order, each with its
	// ordered tasks.
	ByProject(projectID uint) ([]models.Column, error)
}

type columnsStore struct {
	db *gorm.DB
}

func (s columnsStore) Create(column *models.Column) error {
	return s.db.Create(column).Error
}

func (s columnsStore) ByID(id uint) (*models.Column, error) {
	var column models.Column

	if err := s.db.First(&column, id).Error; err != nil {
		return nil, err
	}

	return &column, nil
}

func (s columnsStore) ByIDInProject(id, projectID uint) (*models.Column, error) {
	var column models.Column

	if err := s.db.Where("id = ? AND project_id = ?", id, projectID).First(&column).Error; err != nil {
		return nil, err
	}

	return &column, nil
}

func (s columnsStore) ByProject(projectID uint) ([]models.Column, error) {
	var columns []models.Column

	err := s.db.
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("kanban_tasks.\"order\" ASC, kanban_tasks.id ASC")
		}).
		Where("project_id = ?", projectID).
		Order("\"order\" ASC, id ASC").
		Find(&columns).Error
	if err != nil {
		return nil, err
	}

	return columns, nil
}
