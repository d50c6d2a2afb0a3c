package services

import (
	"time"

	"github.com/FCT-TaskManager/Backend/internal/models"
	"github.com/FCT-TaskManager/Backend/internal/store"
)

// TaskService manages flat personal todos, unrelated to project boards.
type TaskService struct {
	store *store.Store
}

func NewTaskService(st *store.Store) *TaskService {
	return &TaskService{store: st}
}

type TaskInput struct {
	Title       string
	Description *string
	Completed   *bool
	DueDate     *time.Time
}

func (s *TaskService) List(userID uint) ([]models.Task, error) {
	return s.store.Tasks.ByUser(userID)
}

func (s *TaskService) Create(userID uint, in TaskInput) (*models.Task, error) {
	if in.Title == "" {
		return nil, Invalid("Task title is required")
	}

	task := &models.Task{
		UserID:  userID,
		Title:   in.Title,
		DueDate: in.DueDate,
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Completed != nil {
		task.Completed = *in.Completed
	}

	if err := s.store.Tasks.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Get(taskID, userID uint) (*models.Task, error) {
	task, err := s.store.Tasks.ByIDForUser(taskID, userID)
	if err != nil {
		return nil, notFoundOr(err, "Task not found")
	}

	return task, nil
}

func (s *TaskService) Update(taskID, userID uint, in TaskInput) (*models.Task, error) {
	task, err := s.store.Tasks.ByIDForUser(taskID, userID)
	if err != nil {
		return nil, notFoundOr(err, "Task not found")
	}

	if in.Title != "" {
		task.Title = in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Completed != nil {
		task.Completed = *in.Completed
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}

	if err := s.store.Tasks.Save(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Delete(taskID, userID uint) error {
	task, err := s.store.Tasks.ByIDForUser(taskID, userID)
	if err != nil {
		return notFoundOr(err, "Task not found")
	}

	return s.store.Tasks.Delete(task)
}
