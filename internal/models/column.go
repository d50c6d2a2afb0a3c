package models

type Column struct {
	BaseModel

	ProjectID uint   `gorm:"not null;index" json:"project_id"`
	Title     string `gorm:"not null" json:"title"`
	Order     int    `gorm:"not null;default:0" json:"order"`

	// Relationships
	Project *Project     `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Tasks   []KanbanTask `gorm:"foreignKey:ColumnID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"tasks,omitempty"`
}
