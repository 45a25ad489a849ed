package entity

import "time"

// Doctor represents a practitioner employed by the clinic.
// The full-name triple is unique across doctors.
type Doctor struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	FirstName     string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_doctors_full_name" json:"first_name"`
	LastName      string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_doctors_full_name" json:"last_name"`
	MiddleName    string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_doctors_full_name" json:"middle_name"`
	DateBirthday  time.Time `gorm:"type:date;not null" json:"date_birthday"`
	DateStartWork time.Time `gorm:"type:date;not null" json:"date_start_work"`
	Avatar        string    `gorm:"type:varchar(255)" json:"avatar"`
	ProfessionID  *uint     `gorm:"index" json:"profession_id,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Profession   *Profession   `gorm:"foreignKey:ProfessionID" json:"profession,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
	Diagnoses    []Diagnosis   `gorm:"foreignKey:DoctorID" json:"diagnoses,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
