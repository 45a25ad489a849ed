package entity

import "time"

// DiagnosisStatus represents the lifecycle status of a diagnosis
type DiagnosisStatus string

const (
	DiagnosisStatusActive DiagnosisStatus = "active"
	DiagnosisStatusClosed DiagnosisStatus = "closed"
)

// Diagnosis represents a diagnosis made by a doctor for a client,
// associated with zero or more diseases through disease_diagnosis.
type Diagnosis struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Status      DiagnosisStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	DateClosed  *time.Time      `json:"date_closed,omitempty"`
	ClientID    uint            `gorm:"not null;index" json:"client_id"`
	DoctorID    uint            `gorm:"not null;index" json:"doctor_id"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Client   *Client   `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Doctor   *Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Diseases []Disease `gorm:"many2many:disease_diagnosis" json:"diseases,omitempty"`
}

func (Diagnosis) TableName() string {
	return "diagnosis"
}

// IsActive checks if the diagnosis is still open
func (d *Diagnosis) IsActive() bool {
	return d.Status == DiagnosisStatusActive
}

// IsClosed checks if the diagnosis has been closed
func (d *Diagnosis) IsClosed() bool {
	return d.Status == DiagnosisStatusClosed
}

// DiseaseDiagnosis is the join row between diseases and diagnoses
type DiseaseDiagnosis struct {
	DiseaseID   uint `gorm:"primaryKey" json:"disease_id"`
	DiagnosisID uint `gorm:"primaryKey" json:"diagnosis_id"`
}

func (DiseaseDiagnosis) TableName() string {
	return "disease_diagnosis"
}
