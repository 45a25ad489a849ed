package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	DoctorID  uint      `json:"doctor_id" validate:"required,gt=0"`
	ClientID  uint      `json:"client_id" validate:"required,gt=0"`
}

type UpdateAppointmentRequest struct {
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	DoctorID  uint      `json:"doctor_id" validate:"required,gt=0"`
	ClientID  uint      `json:"client_id" validate:"required,gt=0"`
}

// Response DTOs

// PersonRef is the embedded doctor/client summary on an appointment detail.
type PersonRef struct {
	ID         uint   `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	MiddleName string `json:"middle_name"`
	Avatar     string `json:"avatar"`
}

type AppointmentResponse struct {
	ID        uint       `json:"id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   time.Time  `json:"end_time"`
	DoctorID  *uint      `json:"doctor_id,omitempty"`
	ClientID  *uint      `json:"client_id,omitempty"`
	Doctor    *PersonRef `json:"doctor,omitempty"`
	Client    *PersonRef `json:"client,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int64                 `json:"total"`
}
