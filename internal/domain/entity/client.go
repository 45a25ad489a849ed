package entity

import "time"

// Client represents a patient of the clinic.
// The full-name triple is unique across clients.
type Client struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_clients_full_name" json:"first_name"`
	LastName     string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_clients_full_name" json:"last_name"`
	MiddleName   string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_clients_full_name" json:"middle_name"`
	DateBirthday time.Time `gorm:"type:date;not null" json:"date_birthday"`
	Address      string    `gorm:"type:varchar(255)" json:"address"`
	Avatar       string    `gorm:"type:varchar(255)" json:"avatar"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:ClientID" json:"appointments,omitempty"`
	Diagnoses    []Diagnosis   `gorm:"foreignKey:ClientID" json:"diagnoses,omitempty"`
}

func (Client) TableName() string {
	return "clients"
}
