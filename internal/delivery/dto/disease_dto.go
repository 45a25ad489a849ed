package dto

import "time"

// Request DTOs

type CreateDiseaseRequest struct {
	Name              string `json:"name" validate:"required,max=255"`
	Description       string `json:"description" validate:"max=10000"`
	CategoryDiseaseID uint   `json:"category_disease_id" validate:"required,gt=0"`
}

type UpdateDiseaseRequest struct {
	Name              string `json:"name" validate:"required,max=255"`
	Description       string `json:"description" validate:"max=10000"`
	CategoryDiseaseID uint   `json:"category_disease_id" validate:"required,gt=0"`
}

// Response DTOs

// CategoryRef is the embedded category summary on a disease detail.
type CategoryRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type DiseaseResponse struct {
	ID                uint         `json:"id"`
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	CategoryDiseaseID uint         `json:"category_disease_id"`
	CategoryDisease   *CategoryRef `json:"category_disease,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

type DiseaseListResponse struct {
	Diseases []DiseaseResponse `json:"diseases"`
	Total    int64             `json:"total"`
}
