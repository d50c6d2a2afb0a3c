package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTimeEntryRequiresStartTime(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")

	_, err := NewTimeEntryService(st).Create(alice.ID, TimeEntryInput{})
	requireServiceError(t, err, 400, "Start time is required")
}

func TestCreateTimeEntryChecksReferences(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")

	svc := NewTimeEntryService(st)
	start := time.Now()

	missingProject := uint(9999)
	_, err := svc.Create(alice.ID, TimeEntryInput{StartTime: &start, ProjectID: &missingProject})
	requireServiceError(t, err, 404, "Project not found")

	missingTask := uint(9999)
	_, err = svc.Create(alice.ID, TimeEntryInput{StartTime: &start, TaskID: &missingTask})
	requireServiceError(t, err, 404, "Task not found")
}

func TestCreateTimeEntryAcceptsCrossProjectTask(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")

	projectA := createProject(t, st, alice.ID, "Project A")
	projectB := createProject(t, st, alice.ID, "Project B")

	task := createKanbanTask(t, NewKanbanService(st), alice, projectB.ID, projectB.Columns[0].ID, "B work")

	// References are checked for existence only; the task may belong to a
	// different project than the entry points at.
	start := time.Now()
	entry, err := NewTimeEntryService(st).Create(alice.ID, TimeEntryInput{
		StartTime: &start,
		ProjectID: &projectA.ID,
		TaskID:    &task.ID,
	})
	require.NoError(t, err)

	require.NotNil(t, entry.ProjectID)
	assert.Equal(t, projectA.ID, *entry.ProjectID)
	require.NotNil(t, entry.TaskID)
	assert.Equal(t, task.ID, *entry.TaskID)
	require.NotNil(t, entry.Project)
	assert.Equal(t, "Project A", entry.Project.Name)
}

func TestTimeEntryLifecycle(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")

	svc := NewTimeEntryService(st)

	start := time.Now().Add(-time.Hour)
	end := time.Now()
	duration := 3600
	description := "Morning focus block"

	entry, err := svc.Create(alice.ID, TimeEntryInput{
		Description: &description,
		StartTime:   &start,
		EndTime:     &end,
		Duration:    &duration,
	})
	require.NoError(t, err)
	assert.Equal(t, "Morning focus block", entry.Description)
	require.NotNil(t, entry.Duration)
	assert.Equal(t, 3600, *entry.Duration)

	// Another user's id space never reaches this entry.
	_, err = svc.Update(entry.ID, bob.ID, TimeEntryInput{})
	requireServiceError(t, err, 404, "Time entry not found")

	newDuration := 5400
	updated, err := svc.Update(entry.ID, alice.ID, TimeEntryInput{Duration: &newDuration})
	require.NoError(t, err)
	assert.Equal(t, 5400, *updated.Duration)
	assert.Equal(t, "Morning focus block", updated.Description)

	err = svc.Delete(entry.ID, bob.ID)
	requireServiceError(t, err, 404, "Time entry not found")

	require.NoError(t, svc.Delete(entry.ID, alice.ID))

	entries, err := svc.List(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListTimeEntriesNewestStartFirst(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")

	svc := NewTimeEntryService(st)

	for i, offset := range []time.Duration{-3 * time.Hour, -time.Hour, -2 * time.Hour} {
		start := time.Now().Add(offset)
		description := []string{"earliest", "latest", "middle"}[i]
		_, err := svc.Create(alice.ID, TimeEntryInput{StartTime: &start, Description: &description})
		require.NoError(t, err)
	}

	entries, err := svc.List(alice.ID)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, "latest", entries[0].Description)
	assert.Equal(t, "middle", entries[1].Description)
	assert.Equal(t, "earliest", entries[2].Description)
}
