package entity

import "time"

// Disease represents a known disease within a category
type Disease struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"type:varchar(255);uniqueIndex:uq_diseases_name;not null" json:"name"`
	Description       string    `gorm:"type:text" json:"description"`
	CategoryDiseaseID uint      `gorm:"not null;index" json:"category_disease_id"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	CategoryDisease *CategoryDisease `gorm:"foreignKey:CategoryDiseaseID" json:"category_disease,omitempty"`
	Diagnoses       []Diagnosis      `gorm:"many2many:disease_diagnosis" json:"diagnoses,omitempty"`
}

func (Disease) TableName() string {
	return "diseases"
}
