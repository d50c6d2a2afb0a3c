package store

import (
	"github.com/FCT-TaskManager/Backend/internal/models"
	"gorm.io/gorm"
)

type ProjectStore interface {
	Create(project *models.Project) error
	ByID(id uint) (*models.Project, error)
	// WithMembers loads the project together with its membership rows, the
	// shape every permission check needs.
	WithMembers(id uint) (*models.Project, error)
	// Board loads the full project view: ordered columns with their ordered
	// tasks, members with user summaries, and the owner.
	Board(id uint) (*models.Project, error)
	// ForUser returns projects the user owns or is a member of, newest first.
	ForUser(userID uint) ([]models.Project, error)
	Delete(project *models.Project) error
}

type projectsStore struct {
	db *gorm.DB
}

func (s projectsStore) Create(project *models.Project) error {
	return s.db.Create(project).Error
}

func (s projectsStore) ByID(id uint) (*models.Project, error) {
	var project models.Project

	if err := s.db.First(&project, id).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

func (s projectsStore) WithMembers(id uint) (*models.Project, error) {
	var project models.Project

	if err := s.db.Preload("Members").First(&project, id).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

func (s projectsStore) Board(id uint) (*models.Project, error) {
	var project models.Project

	err := s.db.
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("columns.\"order\" ASC, columns.id ASC")
		}).
		Preload("Columns.Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("kanban_tasks.\"order\" ASC, kanban_tasks.id ASC")
		}).
		Preload("Members.User").
		Preload("Members").
		Preload("Owner").
		First(&project, id).Error
	if err != nil {
		return nil, err
	}

	return &project, nil
}

func (s projectsStore) ForUser(userID uint) ([]models.Project, error) {
	var projects []models.Project

	err := s.db.
		Where("owner_id = ? OR id IN (?)", userID,
			s.db.Model(&models.ProjectMember{}).Select("project_id").Where("user_id = ?", userID)).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}

	return projects, nil
}

func (s projectsStore) Delete(project *models.Project) error {
	return s.db.Delete(project).Error
}
