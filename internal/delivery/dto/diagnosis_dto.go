package dto

import "time"

// Request DTOs

type CreateDiagnosisRequest struct {
	Name        string     `json:"name" validate:"required,max=255"`
	Description string     `json:"description" validate:"max=1000"`
	Status      string     `json:"status" validate:"omitempty,oneof=active closed"`
	DateClosed  *time.Time `json:"date_closed"`
	ClientID    uint       `json:"client_id" validate:"required,gt=0"`
	DoctorID    uint       `json:"doctor_id" validate:"required,gt=0"`
	DiseaseIDs  []uint     `json:"disease_ids" validate:"omitempty,dive,gt=0"`
}

type UpdateDiagnosisRequest struct {
	Name        string     `json:"name" validate:"required,max=255"`
	Description string     `json:"description" validate:"max=1000"`
	Status      string     `json:"status" validate:"omitempty,oneof=active closed"`
	DateClosed  *time.Time `json:"date_closed"`
	ClientID    uint       `json:"client_id" validate:"required,gt=0"`
	DoctorID    uint       `json:"doctor_id" validate:"required,gt=0"`
	DiseaseIDs  []uint     `json:"disease_ids" validate:"omitempty,dive,gt=0"`
}

// Response DTOs

// DiseaseRef is the embedded disease summary on a diagnosis.
type DiseaseRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type DiagnosisResponse struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	DateClosed  *time.Time   `json:"date_closed,omitempty"`
	ClientID    uint         `json:"client_id"`
	DoctorID    uint         `json:"doctor_id"`
	Diseases    []DiseaseRef `json:"diseases"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type DiagnosisListResponse struct {
	Diagnoses []DiagnosisResponse `json:"diagnoses"`
	Total     int64               `json:"total"`
}
