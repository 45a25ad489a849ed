package dto

import "time"

// Request DTOs

type CreateProfessionRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type UpdateProfessionRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// Response DTOs

type ProfessionResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfessionListItem adds the doctor count shown on collection pages.
type ProfessionListItem struct {
	ProfessionResponse
	NumberOfSpecialists int64 `json:"number_of_specialists"`
}

type ProfessionListResponse struct {
	Professions []ProfessionListItem `json:"professions"`
	Total       int64                `json:"total"`
}
