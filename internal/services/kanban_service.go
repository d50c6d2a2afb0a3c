package services

import (
	"fmt"
	"time"

	"github.com/FCT-TaskManager/Backend/internal/models"
	"github.com/FCT-TaskManager/Backend/internal/store"
)

type KanbanService struct {
	store *store.Store
}

func NewKanbanService(st *store.Store) *KanbanService {
	return &KanbanService{store: st}
}

type CreateKanbanTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Completed   bool
	Order       int
	ProjectID   uint
	ColumnID    uint
	AssigneeID  *uint
}

type UpdateKanbanTaskInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Completed   *bool
	Order       *int
}

// Create adds a task to a column of the project. The column must belong to
// the same project; a reference into another project reads as not found.
// Assigning the task to someone other than the actor notifies the assignee.
func (s *KanbanService) Create(actorID uint, actorName string, in CreateKanbanTaskInput) (*models.KanbanTask, error) {
	project, role, err := loadProjectRole(s.store, in.ProjectID, actorID)
	if err != nil {
		return nil, err
	}

	if !role.CanManageTasks() {
		return nil, Forbidden("You do not have access to this project")
	}

	if _, err := s.store.Columns.ByIDInProject(in.ColumnID, in.ProjectID); err != nil {
		return nil, notFoundOr(err, "Column not found")
	}

	assigneeID := actorID
	if in.AssigneeID != nil {
		assigneeID = *in.AssigneeID
		if _, err := s.store.Users.ByID(assigneeID); err != nil {
			return nil, notFoundOr(err, "User not found")
		}
	}

	task := &models.KanbanTask{
		ProjectID:   in.ProjectID,
		ColumnID:    in.ColumnID,
		UserID:      &assigneeID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Completed:   in.Completed,
		Order:       in.Order,
	}

	err = s.store.Atomic(func(tx *store.Store) error {
		if err := tx.KanbanTasks.Create(task); err != nil {
			return err
		}

		if assigneeID == actorID {
			return nil
		}

		message := fmt.Sprintf("%s has assigned you the task %q in the project %q", actorName, task.Title, project.Name)
		return emitNotification(tx, assigneeID, TaskAssignedRef(task.ID), message)
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// Update patches the provided fields. An empty title keeps the current one,
// matching the partial-update contract of every other field.
func (s *KanbanService) Update(taskID, userID uint, in UpdateKanbanTaskInput) (*models.KanbanTask, error) {
	task, err := s.requireTask(taskID, userID)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		task.Title = in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	if in.Completed != nil {
		task.Completed = *in.Completed
	}
	if in.Order != nil {
		task.Order = *in.Order
	}

	if err := s.store.KanbanTasks.Save(task); err != nil {
		return nil, err
	}

	return task, nil
}

// Move places the task into another column of the same project, optionally at
// a new position.
func (s *KanbanService) Move(taskID, userID, columnID uint, order *int) (*models.KanbanTask, error) {
	task, err := s.requireTask(taskID, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.Columns.ByIDInProject(columnID, task.ProjectID); err != nil {
		return nil, notFoundOr(err, "Column not found")
	}

	task.ColumnID = columnID
	if order != nil {
		task.Order = *order
	}

	if err := s.store.KanbanTasks.Save(task); err != nil {
		return nil, err
	}

	return task, nil
}

// Reorder rewrites each listed task's order to its index in taskOrder,
// scoped to one column. Ids not belonging to the column are silently
// ignored; the caller supplies a total order, not a diff.
func (s *KanbanService) Reorder(userID, columnID uint, taskOrder []uint) error {
	column, err := s.store.Columns.ByID(columnID)
	if err != nil {
		return notFoundOr(err, "Column not found")
	}

	_, role, err := loadProjectRole(s.store, column.ProjectID, userID)
	if err != nil {
		return err
	}

	if !role.CanManageTasks() {
		return Forbidden("You do not have access to this project")
	}

	return s.store.Atomic(func(tx *store.Store) error {
		for i, taskID := range taskOrder {
			if err := tx.KanbanTasks.SetOrder(taskID, columnID, i); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *KanbanService) Delete(taskID, userID uint) error {
	task, err := s.requireTask(taskID, userID)
	if err != nil {
		return err
	}

	return s.store.KanbanTasks.Delete(task)
}

// requireTask loads a task and checks the caller can act on its project.
func (s *KanbanService) requireTask(taskID, userID uint) (*models.KanbanTask, error) {
	task, err := s.store.KanbanTasks.ByID(taskID)
	if err != nil {
		return nil, notFoundOr(err, "Task not found")
	}

	_, role, err := loadProjectRole(s.store, task.ProjectID, userID)
	if err != nil {
		return nil, err
	}

	if !role.CanManageTasks() {
		return nil, Forbidden("You do not have access to this project")
	}

	return task, nil
}
