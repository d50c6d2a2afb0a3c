package models

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// ProjectMember joins a user to a project with a role. The owner is never
// represented here; ownership lives on Project.OwnerID.
type ProjectMember struct {
	BaseModel

	ProjectID uint   `gorm:"not null;uniqueIndex:idx_member_project" json:"project_id"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_member_project" json:"user_id"`
	Role      string `gorm:"not null;default:member" json:"role"`

	// Relationships
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	User    *User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"user,omitempty"`
}
