package dto

import "time"

// Request DTOs

type CreateClientRequest struct {
	FirstName    string `json:"first_name" validate:"required,max=50"`
	LastName     string `json:"last_name" validate:"required,max=50"`
	MiddleName   string `json:"middle_name" validate:"required,max=50"`
	DateBirthday string `json:"date_birthday" validate:"required"` // Format: YYYY-MM-DD
	Address      string `json:"address" validate:"required,max=255"`
	Avatar       string `json:"avatar" validate:"omitempty,url,max=255"`
}

type UpdateClientRequest struct {
	FirstName    string `json:"first_name" validate:"required,max=50"`
	LastName     string `json:"last_name" validate:"required,max=50"`
	MiddleName   string `json:"middle_name" validate:"required,max=50"`
	DateBirthday string `json:"date_birthday" validate:"required"` // Format: YYYY-MM-DD
	Address      string `json:"address" validate:"required,max=255"`
	Avatar       string `json:"avatar" validate:"omitempty,url,max=255"`
}

// Response DTOs

type ClientResponse struct {
	ID           uint      `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	MiddleName   string    `json:"middle_name"`
	DateBirthday string    `json:"date_birthday"`
	Address      string    `json:"address"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int64            `json:"total"`
}
