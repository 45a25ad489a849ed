package dto

import "time"

// Request DTOs

type CreateCategoryDiseaseRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type UpdateCategoryDiseaseRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// Response DTOs

type CategoryDiseaseResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryDiseaseListResponse struct {
	Categories []CategoryDiseaseResponse `json:"categories"`
	Total      int64                     `json:"total"`
}
