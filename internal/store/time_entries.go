package store

import (
	"github.com/FCT-TaskManager/Backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TimeEntryStore interface {
	Create(entry *models.TimeEntry) error
	// ByIDForUser scopes the lookup to the owning user; other users' entries
	// are indistinguishable from missing ones.
	ByIDForUser(id, userID uint) (*models.TimeEntry, error)
	ByUser(userID uint) ([]models.TimeEntry, error)
	// WithRelations reloads an entry with its project and task summaries.
	WithRelations(id uint) (*models.TimeEntry, error)
	Save(entry *models.TimeEntry) error
	Delete(entry *models.TimeEntry) error
}

type timeEntriesStore struct {
	db *gorm.DB
}

func (s timeEntriesStore) Create(entry *models.TimeEntry) error {
	return s.db.Create(entry).Error
}

func (s timeEntriesStore) ByIDForUser(id, userID uint) (*models.TimeEntry, error) {
	var entry models.TimeEntry

	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

func (s timeEntriesStore) ByUser(userID uint) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry

	err := s.db.
		Preload("Project").
		Preload("Task").
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (s timeEntriesStore) WithRelations(id uint) (*models.TimeEntry, error) {
	var entry models.TimeEntry

	err := s.db.
		Preload("Project").
		Preload("Task").
		First(&entry, id).Error
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

func (s timeEntriesStore) Save(entry *models.TimeEntry) error {
	return s.db.Omit(clause.Associations).Save(entry).Error
}

func (s timeEntriesStore) Delete(entry *models.TimeEntry) error {
	return s.db.Delete(entry).Error
}
