package services

import (
	"fmt"

	"github.com/FCT-TaskManager/Backend/internal/models"
	"github.com/FCT-TaskManager/Backend/internal/store"
)

// CollabService owns the invitation lifecycle: pending -> accepted|rejected,
// with membership creation and notification emission as transactional side
// effects.
type CollabService struct {
	store *store.Store
}

func NewCollabService(st *store.Store) *CollabService {
	return &CollabService{store: st}
}

// AvailableUsers lists invitee candidates for a project: everyone except
// current members, the owner, and users with a pending invitation.
func (s *CollabService) AvailableUsers(projectID, requesterID uint) ([]models.User, error) {
	project, role, err := loadProjectRole(s.store, projectID, requesterID)
	if err != nil {
		return nil, err
	}

	if !role.CanManageMembers() {
		return nil, Forbidden("You do not have permission to invite users to this project")
	}

	pendingIDs, err := s.store.Invitations.PendingInviteeIDs(projectID)
	if err != nil {
		return nil, err
	}

	exclude := make([]uint, 0, len(project.Members)+len(pendingIDs)+1)
	for _, member := range project.Members {
		exclude = append(exclude, member.UserID)
	}
	exclude = append(exclude, pendingIDs...)
	exclude = append(exclude, project.OwnerID)

	return s.store.Users.AllExcept(exclude)
}

// Invite creates a pending invitation and notifies the invitee. The
// preconditions run in a fixed order; later checks assume earlier ones
// passed, so do not reorder them.
func (s *CollabService) Invite(projectID, inviterID uint, inviterName string, inviteeID uint) (*models.ProjectInvitation, error) {
	project, role, err := loadProjectRole(s.store, projectID, inviterID)
	if err != nil {
		return nil, err
	}

	if !role.CanManageMembers() {
		return nil, Forbidden("You do not have permission to invite users to this project")
	}

	if _, err := s.store.Users.ByID(inviteeID); err != nil {
		return nil, notFoundOr(err, "User not found")
	}

	if accessRole(project, inviteeID).CanView() {
		return nil, Invalid("User is already a member of this project")
	}

	pending, err := s.store.Invitations.HasPending(projectID, inviteeID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, Invalid("There is already a pending invitation for this user")
	}

	invitation := &models.ProjectInvitation{
		ProjectID: projectID,
		InviterID: inviterID,
		InviteeID: inviteeID,
		Status:    models.InvitationPending,
	}

	err = s.store.Atomic(func(tx *store.Store) error {
		if err := tx.Invitations.Create(invitation); err != nil {
			return err
		}

		message := fmt.Sprintf("%s has invited you to join the project %q", inviterName, project.Name)
		return emitNotification(tx, inviteeID, InvitationRef(invitation.ID), message)
	})
	if err != nil {
		return nil, err
	}

	return invitation, nil
}

// Respond resolves a pending invitation. An unknown id, someone else's
// invitation and an already-resolved one are indistinguishable to the caller:
// all 404. Acceptance creates the membership in the same transaction that
// flips the status and notifies the inviter.
func (s *CollabService) Respond(invitationID, userID uint, userName string, accept bool) (*models.ProjectInvitation, error) {
	invitation, err := s.store.Invitations.PendingByID(invitationID, userID)
	if err != nil {
		return nil, notFoundOr(err, "Invitation not found or already processed")
	}

	verb := "rejected"
	invitation.Status = models.InvitationRejected
	if accept {
		verb = "accepted"
		invitation.Status = models.InvitationAccepted
	}

	err = s.store.Atomic(func(tx *store.Store) error {
		if err := tx.Invitations.Save(invitation); err != nil {
			return err
		}

		if accept {
			member := &models.ProjectMember{
				ProjectID: invitation.ProjectID,
				UserID:    userID,
				Role:      models.RoleMember,
			}
			if err := tx.Members.Create(member); err != nil {
				return err
			}
		}

		message := fmt.Sprintf("%s has %s your invitation to the project %q", userName, verb, invitation.Project.Name)
		return emitNotification(tx, invitation.InviterID, InvitationResponseRef(invitation.ProjectID), message)
	})
	if err != nil {
		return nil, err
	}

	return invitation, nil
}

// Pending lists the caller's open invitations with project and inviter
// summaries.
func (s *CollabService) Pending(userID uint) ([]models.ProjectInvitation, error) {
	return s.store.Invitations.PendingForUser(userID)
}
