package store

import (
	"github.com/FCT-TaskManager/Backend/internal/models"
	"gorm.io/gorm"
)

type MemberStore interface {
	Create(member *models.ProjectMember) error
	ByProject(projectID uint) ([]models.ProjectMember, error)
	// DeleteByProject purges every membership row of a project, part of
	// project deletion.
	DeleteByProject(projectID uint) error
}

type membersStore struct {
	db *gorm.DB
}

func (s membersStore) Create(member *models.ProjectMember) error {
	return s.db.Create(member).Error
}

func (s membersStore) ByProject(projectID uint) ([]models.ProjectMember, error) {
	var members []models.ProjectMember

	if err := s.db.Where("project_id = ?", projectID).Find(&members).Error; err != nil {
		return nil, err
	}

	return members, nil
}

func (s membersStore) DeleteByProject(projectID uint) error {
	return s.db.Where("project_id = ?", projectID).Delete(&models.ProjectMember{}).Error
}
