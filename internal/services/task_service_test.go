package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTaskRequiresTitle(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")

	_, err := NewTaskService(st).Create(alice.ID, TaskInput{})
	requireServiceError(t, err, 400, "Task title is required")
}

func TestTaskLifecycle(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")

	svc := NewTaskService(st)

	due := time.Now().Add(24 * time.Hour)
	task, err := svc.Create(alice.ID, TaskInput{Title: "Buy groceries", DueDate: &due})
	require.NoError(t, err)
	assert.False(t, task.Completed)

	// Personal todos are invisible across users.
	_, err = svc.Get(task.ID, bob.ID)
	requireServiceError(t, err, 404, "Task not found")

	done := true
	updated, err := svc.Update(task.ID, alice.ID, TaskInput{Completed: &done})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Buy groceries", updated.Title)

	err = svc.Delete(task.ID, bob.ID)
	requireServiceError(t, err, 404, "Task not found")

	require.NoError(t, svc.Delete(task.ID, alice.ID))

	_, err = svc.Get(task.ID, alice.ID)
	requireServiceError(t, err, 404, "Task not found")
}

func TestListTasksScopedToUser(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")

	svc := NewTaskService(st)

	_, err := svc.Create(alice.ID, TaskInput{Title: "Mine"})
	require.NoError(t, err)
	_, err = svc.Create(bob.ID, TaskInput{Title: "Not mine"})
	require.NoError(t, err)

	tasks, err := svc.List(alice.ID)
	require.NoError(t, err)

	require.Len(t, tasks, 1)
	assert.Equal(t, "Mine", tasks[0].Title)
}
