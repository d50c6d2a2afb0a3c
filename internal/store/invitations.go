package store

import (
	"errors"

	"github.com/FCT-TaskManager/Backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InvitationStore interface {
	Create(invitation *models.ProjectInvitation) error
	// PendingByID looks up a pending invitation addressed to inviteeID.
	// A wrong id, a wrong invitee and an already-resolved invitation are all
	// the same miss: gorm.ErrRecordNotFound.
	PendingByID(id, inviteeID uint) (*models.ProjectInvitation, error)
	PendingForUser(inviteeID uint) ([]models.ProjectInvitation, error)
	// PendingInviteeIDs returns the users with an open invitation for the
	// project, used to exclude them from the invitee candidate list.
	PendingInviteeIDs(projectID uint) ([]uint, error)
	HasPending(projectID, inviteeID uint) (bool, error)
	Save(invitation *models.ProjectInvitation) error
	DeleteByProject(projectID uint) error
}

type invitationsStore struct {
	db *gorm.DB
}

func (s invitationsStore) Create(invitation *models.ProjectInvitation) error {
	return s.db.Create(invitation).Error
}

func (s invitationsStore) PendingByID(id, inviteeID uint) (*models.ProjectInvitation, error) {
	var invitation models.ProjectInvitation

	err := s.db.
		Preload("Project").
		Preload("Inviter").
		Where("id = ? AND invitee_id = ? AND status = ?", id, inviteeID, models.InvitationPending).
		First(&invitation).Error
	if err != nil {
		return nil, err
	}

	return &invitation, nil
}

func (s invitationsStore) PendingForUser(inviteeID uint) ([]models.ProjectInvitation, error) {
	var invitations []models.ProjectInvitation

	err := s.db.
		Preload("Project").
		Preload("Inviter").
		Where("invitee_id = ? AND status = ?", inviteeID, models.InvitationPending).
		Order("created_at DESC").
		Find(&invitations).Error
	if err != nil {
		return nil, err
	}

	return invitations, nil
}

func (s invitationsStore) PendingInviteeIDs(projectID uint) ([]uint, error) {
	var ids []uint

	err := s.db.Model(&models.ProjectInvitation{}).
		Where("project_id = ? AND status = ?", projectID, models.InvitationPending).
		Pluck("invitee_id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (s invitationsStore) HasPending(projectID, inviteeID uint) (bool, error) {
	var invitation models.ProjectInvitation

	err := s.db.
		Where("project_id = ? AND invitee_id = ? AND status = ?", projectID, inviteeID, models.InvitationPending).
		First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s invitationsStore) Save(invitation *models.ProjectInvitation) error {
	// Invitations are often loaded with Project/Inviter preloaded; omit the
	// associations so saving the row never writes back to those tables.
	return s.db.Omit(clause.Associations).Save(invitation).Error
}

func (s invitationsStore) DeleteByProject(projectID uint) error {
	return s.db.Where("project_id = ?", projectID).Delete(&models.ProjectInvitation{}).Error
}
