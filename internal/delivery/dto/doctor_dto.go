package dto

import "time"

// Request DTOs

type CreateDoctorRequest struct {
	FirstName     string `json:"first_name" validate:"required,max=50"`
	LastName      string `json:"last_name" validate:"required,max=50"`
	MiddleName    string `json:"middle_name" validate:"required,max=50"`
	DateBirthday  string `json:"date_birthday" validate:"required"`   // Format: YYYY-MM-DD
	DateStartWork string `json:"date_start_work" validate:"required"` // Format: YYYY-MM-DD
	Avatar        string `json:"avatar" validate:"omitempty,url,max=255"`
	ProfessionID  *uint  `json:"profession_id" validate:"omitempty,gt=0"`
}

type UpdateDoctorRequest struct {
	FirstName     string `json:"first_name" validate:"required,max=50"`
	LastName      string `json:"last_name" validate:"required,max=50"`
	MiddleName    string `json:"middle_name" validate:"required,max=50"`
	DateBirthday  string `json:"date_birthday" validate:"required"`   // Format: YYYY-MM-DD
	DateStartWork string `json:"date_start_work" validate:"required"` // Format: YYYY-MM-DD
	Avatar        string `json:"avatar" validate:"omitempty,url,max=255"`
	ProfessionID  *uint  `json:"profession_id" validate:"omitempty,gt=0"`
}

// Response DTOs

// ProfessionRef is the embedded profession summary on a doctor detail.
type ProfessionRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type DoctorResponse struct {
	ID            uint           `json:"id"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	MiddleName    string         `json:"middle_name"`
	DateBirthday  string         `json:"date_birthday"`
	DateStartWork string         `json:"date_start_work"`
	Avatar        string         `json:"avatar"`
	Profession    *ProfessionRef `json:"profession,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int64            `json:"total"`
}
