package models

import "time"

type TimeEntry struct {
	BaseModel

	UserID      uint       `gorm:"not null;index" json:"user_id"`
	ProjectID   *uint      `gorm:"index" json:"project_id"`
	TaskID      *uint      `gorm:"index" json:"task_id"`
	Description string     `gorm:"type:text" json:"description"`
	StartTime   time.Time  `gorm:"not null" json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Duration    *int       `json:"duration"` // seconds

	// Relationships
	User    *User       `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Project *Project    `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"project,omitempty"`
	Task    *KanbanTask `gorm:"foreignKey:TaskID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"task,omitempty"`
}
