package entity

import "time"

// CategoryDisease groups diseases into a named category
type CategoryDisease struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex:uq_categories_disease_name;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Diseases []Disease `gorm:"foreignKey:CategoryDiseaseID" json:"diseases,omitempty"`
}

func (CategoryDisease) TableName() string {
	return "categories_disease"
}
