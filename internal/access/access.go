// Package access resolves what a user may do inside a project. Ownership and
// membership are distinct relations (the owner never has a ProjectMember row),
// so both must be consulted. Callers load the project and its member list
// first; a missing project is a not-found condition and never reaches here.
package access

import "github.com/FCT-TaskManager/Backend/internal/models"

type Role int

const (
	None Role = iota
	Member
	Admin
	Owner
)

func (r Role) String() string {
	switch r {
	case Owner:
		return "owner"
	case Admin:
		return "admin"
	case Member:
		return "member"
	default:
		return "none"
	}
}

// Resolve computes the role of userID within project given its member list.
func Resolve(project *models.Project, members []models.ProjectMember, userID uint) Role {
	if project.OwnerID == userID {
		return Owner
	}

	for _, m := range members {
		if m.UserID != userID {
			continue
		}
		if m.Role == models.RoleAdmin {
			return Admin
		}
		return Member
	}

	return None
}

// CanView covers project reads: the project itself, its columns, tasks and
// project-scoped time entries.
func (r Role) CanView() bool {
	return r != None
}

// CanManageMembers covers inviting collaborators and listing invitee
// candidates. Plain members may not invite.
func (r Role) CanManageMembers() bool {
	return r == Owner || r == Admin
}

// CanManageTasks covers creating, updating, moving, reordering and deleting
// kanban tasks. Broader than CanManageMembers: any recognized role qualifies.
func (r Role) CanManageTasks() bool {
	return r != None
}

// CanDelete covers project deletion. Admin is not sufficient.
func (r Role) CanDelete() bool {
	return r == Owner
}
