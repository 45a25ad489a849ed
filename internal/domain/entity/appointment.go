package entity

import "time"

// Appointment represents a scheduled visit of a client to a doctor.
// Doctor and client references go null when the referenced row is deleted,
// so both are optional on the record itself.
type Appointment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StartTime time.Time `gorm:"not null;index" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	DoctorID  *uint     `gorm:"index" json:"doctor_id,omitempty"`
	ClientID  *uint     `gorm:"index" json:"client_id,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Overlaps reports whether the appointment window intersects [start, end).
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && a.EndTime.After(start)
}
