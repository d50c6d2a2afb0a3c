package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FCT-TaskManager/Backend/internal/models"
)

func createKanbanTask(t *testing.T, svc *KanbanService, actor *models.User, projectID, columnID uint, title string) *models.KanbanTask {
	t.Helper()

	task, err := svc.Create(actor.ID, actor.Name, CreateKanbanTaskInput{
		Title:     title,
		ProjectID: projectID,
		ColumnID:  columnID,
	})
	require.NoError(t, err)

	return task
}

func TestCreateKanbanTaskDefaultsAssigneeToActor(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")

	project := createProject(t, st, alice.ID, "Roadmap")
	column := project.Columns[0]

	task := createKanbanTask(t, NewKanbanService(st), alice, project.ID, column.ID, "Write docs")

	require.NotNil(t, task.UserID)
	assert.Equal(t, alice.ID, *task.UserID)
	assert.Equal(t, column.ID, task.ColumnID)
	assert.False(t, task.Completed)

	// Self-assignment produces no notification.
	feed, err := st.Notifications.Recent(alice.ID, 50)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestCreateKanbanTaskNotifiesAssignee(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")

	project := createProject(t, st, alice.ID, "Roadmap")
	addMember(t, st, project.ID, bob.ID, models.RoleMember)

	task, err := NewKanbanService(st).Create(alice.ID, alice.Name, CreateKanbanTaskInput{
		Title:      "Review PR",
		ProjectID:  project.ID,
		ColumnID:   project.Columns[0].ID,
		AssigneeID: &bob.ID,
	})
	require.NoError(t, err)

	feed, err := st.Notifications.Recent(bob.ID, 50)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, models.NotificationTaskAssigned, feed[0].Type)
	require.NotNil(t, feed[0].RelatedID)
	assert.Equal(t, task.ID, *feed[0].RelatedID)
	assert.Contains(t, feed[0].Message, `"Review PR"`)
}

func TestCreateKanbanTaskAccessAndReferences(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")
	carol := createUser(t, st, "carol")

	project := createProject(t, st, alice.ID, "Roadmap")
	other := createProject(t, st, bob.ID, "Elsewhere")
	addMember(t, st, project.ID, bob.ID, models.RoleMember)

	svc := NewKanbanService(st)

	// Members mutate the board like the owner does.
	createKanbanTask(t, svc, bob, project.ID, project.Columns[0].ID, "Member task")

	_, err := svc.Create(carol.ID, carol.Name, CreateKanbanTaskInput{
		Title:     "Sneaky",
		ProjectID: project.ID,
		ColumnID:  project.Columns[0].ID,
	})
	requireServiceError(t, err, 403, "You do not have access to this project")

	_, err = svc.Create(alice.ID, alice.Name, CreateKanbanTaskInput{
		Title:     "Orphan",
		ProjectID: 9999,
		ColumnID:  project.Columns[0].ID,
	})
	requireServiceError(t, err, 404, "Project not found")

	// A column from another project reads as missing.
	_, err = svc.Create(alice.ID, alice.Name, CreateKanbanTaskInput{
		Title:     "Cross-wired",
		ProjectID: project.ID,
		ColumnID:  other.Columns[0].ID,
	})
	requireServiceError(t, err, 404, "Column not found")

	_, err = svc.Create(alice.ID, alice.Name, CreateKanbanTaskInput{
		Title:      "Ghost assignee",
		ProjectID:  project.ID,
		ColumnID:   project.Columns[0].ID,
		AssigneeID: func() *uint { id := uint(9999); return &id }(),
	})
	requireServiceError(t, err, 404, "User not found")
}

func TestUpdateKanbanTaskKeepsUnsetFields(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")

	project := createProject(t, st, alice.ID, "Roadmap")
	svc := NewKanbanService(st)

	task := createKanbanTask(t, svc, alice, project.ID, project.Columns[0].ID, "Write docs")

	done := true
	updated, err := svc.Update(task.ID, alice.ID, UpdateKanbanTaskInput{Completed: &done})
	require.NoError(t, err)

	// An empty title is "not provided", same as every other zero field.
	assert.Equal(t, "Write docs", updated.Title)
	assert.True(t, updated.Completed)

	updated, err = svc.Update(task.ID, alice.ID, UpdateKanbanTaskInput{Title: "Write better docs"})
	require.NoError(t, err)
	assert.Equal(t, "Write better docs", updated.Title)
	assert.True(t, updated.Completed)
}

func TestMoveKanbanTask(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")

	project := createProject(t, st, alice.ID, "Roadmap")
	other := createProject(t, st, bob.ID, "Elsewhere")

	svc := NewKanbanService(st)
	task := createKanbanTask(t, svc, alice, project.ID, project.Columns[0].ID, "Write docs")

	position := 4
	moved, err := svc.Move(task.ID, alice.ID, project.Columns[2].ID, &position)
	require.NoError(t, err)
	assert.Equal(t, project.Columns[2].ID, moved.ColumnID)
	assert.Equal(t, 4, moved.Order)

	_, err = svc.Move(task.ID, alice.ID, other.Columns[0].ID, nil)
	requireServiceError(t, err, 404, "Column not found")
}

func TestReorderRewritesColumnPositions(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")

	project := createProject(t, st, alice.ID, "Roadmap")
	svc := NewKanbanService(st)

	col := project.Columns[0].ID
	first := createKanbanTask(t, svc, alice, project.ID, col, "first")
	second := createKanbanTask(t, svc, alice, project.ID, col, "second")
	third := createKanbanTask(t, svc, alice, project.ID, col, "third")
	elsewhere := createKanbanTask(t, svc, alice, project.ID, project.Columns[1].ID, "elsewhere")

	// A task from another column in the list is silently skipped.
	err := svc.Reorder(alice.ID, col, []uint{third.ID, elsewhere.ID, first.ID, second.ID})
	require.NoError(t, err)

	reloaded := func(id uint) *models.KanbanTask {
		task, err := st.KanbanTasks.ByID(id)
		require.NoError(t, err)
		return task
	}

	assert.Equal(t, 0, reloaded(third.ID).Order)
	assert.Equal(t, 2, reloaded(first.ID).Order)
	assert.Equal(t, 3, reloaded(second.ID).Order)
	assert.Equal(t, project.Columns[1].ID, reloaded(elsewhere.ID).ColumnID)
	assert.Equal(t, 0, reloaded(elsewhere.ID).Order)
}

func TestReorderAccess(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")
	carol := createUser(t, st, "carol")

	project := createProject(t, st, alice.ID, "Roadmap")
	svc := NewKanbanService(st)

	err := svc.Reorder(carol.ID, project.Columns[0].ID, nil)
	requireServiceError(t, err, 403, "You do not have access to this project")

	err = svc.Reorder(alice.ID, 9999, nil)
	requireServiceError(t, err, 404, "Column not found")
}

func TestDeleteKanbanTask(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")
	carol := createUser(t, st, "carol")

	project := createProject(t, st, alice.ID, "Roadmap")
	svc := NewKanbanService(st)

	task := createKanbanTask(t, svc, alice, project.ID, project.Columns[0].ID, "Write docs")

	err := svc.Delete(task.ID, carol.ID)
	requireServiceError(t, err, 403, "You do not have access to this project")

	require.NoError(t, svc.Delete(task.ID, alice.ID))

	err = svc.Delete(task.ID, alice.ID)
	requireServiceError(t, err, 404, "Task not found")
}
