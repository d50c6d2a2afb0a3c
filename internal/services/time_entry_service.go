package services

import (
	"time"

	"github.com/FCT-TaskManager/Backend/internal/models"
	"github.com/FCT-TaskManager/Backend/internal/store"
)

type TimeEntryService struct {
	store *store.Store
}

func NewTimeEntryService(st *store.Store) *TimeEntryService {
	return &TimeEntryService{store: st}
}

type TimeEntryInput struct {
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Duration    *int
	ProjectID   *uint
	TaskID      *uint
}

// List returns the caller's entries, most recent start first, with project
// and task summaries attached.
func (s *TimeEntryService) List(userID uint) ([]models.TimeEntry, error) {
	return s.store.TimeEntries.ByUser(userID)
}

// Create records a new entry. Referenced project and task ids are checked
// for existence only; a task from a different project than the entry's
// project is accepted (the stored contract is deliberately permissive).
func (s *TimeEntryService) Create(userID uint, in TimeEntryInput) (*models.TimeEntry, error) {
	if in.StartTime == nil {
		return nil, Invalid("Start time is required")
	}

	if err := s.checkReferences(in); err != nil {
		return nil, err
	}

	entry := &models.TimeEntry{
		UserID:    userID,
		ProjectID: in.ProjectID,
		TaskID:    in.TaskID,
		StartTime: *in.StartTime,
		EndTime:   in.EndTime,
		Duration:  in.Duration,
	}
	if in.Description != nil {
		entry.Description = *in.Description
	}

	if err := s.store.TimeEntries.Create(entry); err != nil {
		return nil, err
	}

	return s.store.TimeEntries.WithRelations(entry.ID)
}

// Update patches the caller's entry with the provided fields.
func (s *TimeEntryService) Update(entryID, userID uint, in TimeEntryInput) (*models.TimeEntry, error) {
	entry, err := s.store.TimeEntries.ByIDForUser(entryID, userID)
	if err != nil {
		return nil, notFoundOr(err, "Time entry not found")
	}

	if err := s.checkReferences(in); err != nil {
		return nil, err
	}

	if in.Description != nil {
		entry.Description = *in.Description
	}
	if in.StartTime != nil {
		entry.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		entry.EndTime = in.EndTime
	}
	if in.Duration != nil {
		entry.Duration = in.Duration
	}
	if in.ProjectID != nil {
		entry.ProjectID = in.ProjectID
	}
	if in.TaskID != nil {
		entry.TaskID = in.TaskID
	}

	if err := s.store.TimeEntries.Save(entry); err != nil {
		return nil, err
	}

	return s.store.TimeEntries.WithRelations(entry.ID)
}

func (s *TimeEntryService) Delete(entryID, userID uint) error {
	entry, err := s.store.TimeEntries.ByIDForUser(entryID, userID)
	if err != nil {
		return notFoundOr(err, "Time entry not found")
	}

	return s.store.TimeEntries.Delete(entry)
}

func (s *TimeEntryService) checkReferences(in TimeEntryInput) error {
	if in.ProjectID != nil {
		if _, err := s.store.Projects.ByID(*in.ProjectID); err != nil {
			return notFoundOr(err, "Project not found")
		}
	}

	if in.TaskID != nil {
		if _, err := s.store.KanbanTasks.ByID(*in.TaskID); err != nil {
			return notFoundOr(err, "Task not found")
		}
	}

	return nil
}
