// Package store is the persistence boundary: one narrow repository per
// entity, all backed by gorm. Services receive a *Store and never touch
// *gorm.DB directly, so tests can run the same code against SQLite.
package store

import "gorm.io/gorm"

type Store struct {
	db *gorm.DB

	Users         UserStore
	Projects      ProjectStore
	Members       MemberStore
	Invitations   InvitationStore
	Columns       ColumnStore
	KanbanTasks   KanbanTaskStore
	TimeEntries   TimeEntryStore
	Notifications NotificationStore
	Tasks         TaskStore
}

func New(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Users:         usersStore{db},
		Projects:      projectsStore{db},
		Members:       membersStore{db},
		Invitations:   invitationsStore{db},
		Columns:       columnsStore{db},
		KanbanTasks:   kanbanTasksStore{db},
		TimeEntries:   timeEntriesStore{db},
		Notifications: notificationsStore{db},
		Tasks:         tasksStore{db},
	}
}

// Atomic runs fn against a Store bound to a single transaction. Multi-step
// flows (invitation + notification, acceptance + membership, project +
// default columns) go through here so a failure midway rolls everything back.
func (s *Store) Atomic(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
