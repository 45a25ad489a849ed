package converter

import (
	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:            doctor.ID,
		FirstName:     doctor.FirstName,
		LastName:      doctor.LastName,
		MiddleName:    doctor.MiddleName,
		DateBirthday:  doctor.DateBirthday.Format(dateLayout),
		DateStartWork: doctor.DateStartWork.Format(dateLayout),
		Avatar:        doctor.Avatar,
		CreatedAt:     doctor.CreatedAt,
		UpdatedAt:     doctor.UpdatedAt,
	}

	if doctor.Profession != nil {
		response.Profession = &dto.ProfessionRef{
			ID:   doctor.Profession.ID,
			Name: doctor.Profession.Name,
		}
	}

	return response
}

// DoctorsToResponses converts a slice of Doctor entities to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
