package models

const (
	NotificationInvitation         = "invitation"
	NotificationTaskDue            = "task_due"
	NotificationTaskAssigned       = "task_assigned"
	NotificationInvitationResponse = "invitation_response"
)

// Notification is an append-only per-user message. RelatedID points at the
// entity implied by Type: the invitation for "invitation", the project for
// "invitation_response", the kanban task for "task_due"/"task_assigned".
type Notification struct {
	BaseModel

	UserID    uint   `gorm:"not null;index" json:"user_id"`
	Type      string `gorm:"not null" json:"type"`
	Message   string `gorm:"type:text;not null" json:"message"`
	Read      bool   `gorm:"not null;default:false" json:"read"`
	RelatedID *uint  `json:"related_id"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
