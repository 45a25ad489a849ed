package converter

import (
	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its DTO,
// embedding doctor and client summaries when they were preloaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:        appointment.ID,
		StartTime: appointment.StartTime,
		EndTime:   appointment.EndTime,
		DoctorID:  appointment.DoctorID,
		ClientID:  appointment.ClientID,
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}

	if appointment.Doctor != nil {
		response.Doctor = &dto.PersonRef{
			ID:         appointment.Doctor.ID,
			FirstName:  appointment.Doctor.FirstName,
			LastName:   appointment.Doctor.LastName,
			MiddleName: appointment.Doctor.MiddleName,
			Avatar:     appointment.Doctor.Avatar,
		}
	}

	if appointment.Client != nil {
		response.Client = &dto.PersonRef{
			ID:         appointment.Client.ID,
			FirstName:  appointment.Client.FirstName,
			LastName:   appointment.Client.LastName,
			MiddleName: appointment.Client.MiddleName,
			Avatar:     appointment.Client.Avatar,
		}
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
