package models

import "time"

type KanbanTask struct {
	BaseModel

	ProjectID   uint       `gorm:"not null;index" json:"project_id"`
	ColumnID    uint       `gorm:"not null;index" json:"column_id"`
	UserID      *uint      `gorm:"index" json:"user_id"` // creator/assignee, not an access-control subject
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	Order       int        `gorm:"not null;default:0" json:"order"`

	// Relationships
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Column  *Column  `gorm:"foreignKey:ColumnID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	User    *User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
}
