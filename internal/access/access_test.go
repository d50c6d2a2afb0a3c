package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FCT-TaskManager/Backend/internal/models"
)

func project(ownerID uint) *models.Project {
	p := &models.Project{OwnerID: ownerID}
	p.ID = 1
	return p
}

func member(userID uint, role string) models.ProjectMember {
	return models.ProjectMember{ProjectID: 1, UserID: userID, Role: role}
}

func TestResolve(t *testing.T) {
	members := []models.ProjectMember{
		member(2, models.RoleAdmin),
		member(3, models.RoleMember),
	}

	tests := []struct {
		name   string
		userID uint
		want   Role
	}{
		{"owner", 1, Owner},
		{"admin", 2, Admin},
		{"member", 3, Member},
		{"stranger", 4, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(project(1), members, tt.userID))
		})
	}
}

func TestResolveOwnerWinsOverMembership(t *testing.T) {
	// A membership row for the owner should never exist, but if one sneaks
	// in, ownership still takes precedence.
	members := []models.ProjectMember{member(1, models.RoleMember)}

	assert.Equal(t, Owner, Resolve(project(1), members, 1))
}

func TestResolveNoMembers(t *testing.T) {
	assert.Equal(t, Owner, Resolve(project(7), nil, 7))
	assert.Equal(t, None, Resolve(project(7), nil, 8))
}

func TestPermissions(t *testing.T) {
	tests := []struct {
		role          Role
		view          bool
		manageMembers bool
		manageTasks   bool
		deleteProject bool
	}{
		{Owner, true, true, true, true},
		{Admin, true, true, true, false},
		{Member, true, false, true, false},
		{None, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.view, tt.role.CanView())
			assert.Equal(t, tt.manageMembers, tt.role.CanManageMembers())
			assert.Equal(t, tt.manageTasks, tt.role.CanManageTasks())
			assert.Equal(t, tt.deleteProject, tt.role.CanDelete())
		})
	}
}
