package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FCT-TaskManager/Backend/internal/models"
)

func TestCreateProjectSeedsDefaultColumns(t *testing.T) {
	st := newTestStore(t)
	owner := createUser(t, st, "alice")

	project, err := NewProjectService(st).Create(owner.ID, "Roadmap", "Q3 planning")
	require.NoError(t, err)

	assert.Equal(t, "Roadmap", project.Name)
	assert.Equal(t, owner.ID, project.OwnerID)

	require.Len(t, project.Columns, 3)
	assert.Equal(t, "To do", project.Columns[0].Title)
	assert.Equal(t, "In progress", project.Columns[1].Title)
	assert.Equal(t, "Done", project.Columns[2].Title)
	for i, column := range project.Columns {
		assert.Equal(t, i, column.Order)
	}
}

func TestCreateProjectRequiresName(t *testing.T) {
	st := newTestStore(t)
	owner := createUser(t, st, "alice")

	_, err := NewProjectService(st).Create(owner.ID, "   ", "")
	requireServiceError(t, err, 400, "Project name is required")
}

func TestListProjectsIncludesMemberships(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")

	owned := createProject(t, st, bob.ID, "Bob's own")
	joined := createProject(t, st, alice.ID, "Alice's board")
	createProject(t, st, alice.ID, "Alice only")
	addMember(t, st, joined.ID, bob.ID, models.RoleMember)

	projects, err := NewProjectService(st).List(bob.ID)
	require.NoError(t, err)

	require.Len(t, projects, 2)
	ids := []uint{projects[0].ID, projects[1].ID}
	assert.Contains(t, ids, owned.ID)
	assert.Contains(t, ids, joined.ID)
}

func TestGetProjectAccess(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")
	carol := createUser(t, st, "carol")

	project := createProject(t, st, alice.ID, "Roadmap")
	addMember(t, st, project.ID, bob.ID, models.RoleMember)

	svc := NewProjectService(st)

	got, err := svc.Get(project.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, got.ID)

	_, err = svc.Get(project.ID, bob.ID)
	require.NoError(t, err)

	_, err = svc.Get(project.ID, carol.ID)
	requireServiceError(t, err, 403, "You do not have access to this project")

	_, err = svc.Get(9999, carol.ID)
	requireServiceError(t, err, 404, "Project not found")
}

func TestDeleteProjectOwnerOnly(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")

	project := createProject(t, st, alice.ID, "Roadmap")
	addMember(t, st, project.ID, bob.ID, models.RoleAdmin)

	svc := NewProjectService(st)

	// Admins manage members and tasks but never delete the project.
	err := svc.Delete(project.ID, bob.ID)
	requireServiceError(t, err, 404, "Project not found")

	require.NoError(t, svc.Delete(project.ID, alice.ID))

	_, err = svc.Get(project.ID, alice.ID)
	requireServiceError(t, err, 404, "Project not found")

	err = svc.Delete(project.ID, alice.ID)
	requireServiceError(t, err, 404, "Project not found")
}

func TestDeleteProjectPurgesMembershipsAndInvitations(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")
	carol := createUser(t, st, "carol")

	project := createProject(t, st, alice.ID, "Roadmap")
	addMember(t, st, project.ID, bob.ID, models.RoleMember)

	_, err := NewCollabService(st).Invite(project.ID, alice.ID, alice.Name, carol.ID)
	require.NoError(t, err)

	require.NoError(t, NewProjectService(st).Delete(project.ID, alice.ID))

	members, err := st.Members.ByProject(project.ID)
	require.NoError(t, err)
	assert.Empty(t, members)

	pending, err := st.Invitations.PendingForUser(carol.ID)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestProjectColumnsAndKanbanTasksRequireAccess(t *testing.T) {
	st := newTestStore(t)
	alice := createUser(t, st, "alice")
	carol := createUser(t, st, "carol")

	project := createProject(t, st, alice.ID, "Roadmap")

	svc := NewProjectService(st)

	columns, err := svc.Columns(project.ID, alice.ID)
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	_, err = svc.Columns(project.ID, carol.ID)
	requireServiceError(t, err, 403, "You do not have access to this project")

	_, err = svc.KanbanTasks(9999, alice.ID)
	requireServiceError(t, err, 404, "Project not found")
}
