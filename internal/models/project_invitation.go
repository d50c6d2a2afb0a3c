package models

const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationRejected = "rejected"
)

// ProjectInvitation is one-directional (inviter -> invitee). At most one
// pending invitation may exist per (project, invitee); accepted and rejected
// are terminal states.
type ProjectInvitation struct {
	BaseModel

	ProjectID uint   `gorm:"not null;index" json:"project_id"`
	InviterID uint   `gorm:"not null" json:"inviter_id"`
	InviteeID uint   `gorm:"not null;index" json:"invitee_id"`
	Status    string `gorm:"not null;default:pending" json:"status"`

	// Relationships
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"project,omitempty"`
	Inviter *User    `gorm:"foreignKey:InviterID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"inviter,omitempty"`
	Invitee *User    `gorm:"foreignKey:InviteeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
