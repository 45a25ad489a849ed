package entity

import "time"

// Profession represents a medical specialty a doctor can hold
type Profession struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex:uq_professions_name;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctors []Doctor `gorm:"foreignKey:ProfessionID" json:"doctors,omitempty"`
}

func (Profession) TableName() string {
	return "professions"
}

// ProfessionWithSpecialists is the list projection of a profession
// including the number of doctors currently holding it.
type ProfessionWithSpecialists struct {
	Profession
	NumberOfSpecialists int64 `json:"number_of_specialists"`
}
