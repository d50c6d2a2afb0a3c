package services

import (
	"strings"

	"github.com/FCT-TaskManager/Backend/internal/models"
	"github.com/FCT-TaskManager/Backend/internal/store"
)

// Every new project starts with the same three columns.
var defaultColumns = []models.Column{
	{Title: "To do", Order: 0},
	{Title: "In progress", Order: 1},
	{Title: "Done", Order: 2},
}

type ProjectService struct {
	store *store.Store
}

func NewProjectService(st *store.Store) *ProjectService {
	return &ProjectService{store: st}
}

// Create inserts the project and its default columns in one transaction and
// returns the project with the columns loaded.
func (s *ProjectService) Create(ownerID uint, name, description string) (*models.Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, Invalid("Project name is required")
	}

	project := &models.Project{
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
	}

	err := s.store.Atomic(func(tx *store.Store) error {
		if err := tx.Projects.Create(project); err != nil {
			return err
		}

		for _, column := range defaultColumns {
			column.ProjectID = project.ID
			if err := tx.Columns.Create(&column); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.store.Projects.Board(project.ID)
}

// List returns the projects the user owns or is a member of, newest first.
func (s *ProjectService) List(userID uint) ([]models.Project, error) {
	return s.store.Projects.ForUser(userID)
}

// Get returns the full board view. Missing project is 404; existing project
// without any role for the caller is 403.
func (s *ProjectService) Get(projectID, userID uint) (*models.Project, error) {
	project, err := s.store.Projects.Board(projectID)
	if err != nil {
		return nil, notFoundOr(err, "Project not found")
	}

	role := accessRole(project, userID)
	if !role.CanView() {
		return nil, Forbidden("You do not have access to this project")
	}

	return project, nil
}

// Columns returns the project's columns with their tasks, in display order.
func (s *ProjectService) Columns(projectID, userID uint) ([]models.Column, error) {
	if err := s.requireView(projectID, userID); err != nil {
		return nil, err
	}

	return s.store.Columns.ByProject(projectID)
}

// KanbanTasks returns every task of the project in column order.
func (s *ProjectService) KanbanTasks(projectID, userID uint) ([]models.KanbanTask, error) {
	if err := s.requireView(projectID, userID); err != nil {
		return nil, err
	}

	return s.store.KanbanTasks.ByProject(projectID)
}

// Delete removes a project the caller owns. Memberships and invitations are
// purged in the same transaction before the project row; a non-owner gets the
// same 404 as a missing project.
func (s *ProjectService) Delete(projectID, userID uint) error {
	project, err := s.store.Projects.ByID(projectID)
	if err != nil {
		return notFoundOr(err, "Project not found")
	}

	if project.OwnerID != userID {
		return NotFound("Project not found")
	}

	return s.store.Atomic(func(tx *store.Store) error {
		if err := tx.Members.DeleteByProject(projectID); err != nil {
			return err
		}

		if err := tx.Invitations.DeleteByProject(projectID); err != nil {
			return err
		}

		return tx.Projects.Delete(project)
	})
}

func (s *ProjectService) requireView(projectID, userID uint) error {
	_, role, err := loadProjectRole(s.store, projectID, userID)
	if err != nil {
		return err
	}

	if !role.CanView() {
		return Forbidden("You do not have access to this project")
	}

	return nil
}
