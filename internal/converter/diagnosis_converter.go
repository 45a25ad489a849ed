package converter

import (
	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
)

// DiagnosisToResponse converts a Diagnosis entity to its DTO,
// embedding the linked disease summaries.
func DiagnosisToResponse(diagnosis *entity.Diagnosis) *dto.DiagnosisResponse {
	if diagnosis == nil {
		return nil
	}

	diseases := make([]dto.DiseaseRef, len(diagnosis.Diseases))
	for i, disease := range diagnosis.Diseases {
		diseases[i] = dto.DiseaseRef{
			ID:   disease.ID,
			Name: disease.Name,
		}
	}

	return &dto.DiagnosisResponse{
		ID:          diagnosis.ID,
		Name:        diagnosis.Name,
		Description: diagnosis.Description,
		Status:      string(diagnosis.Status),
		DateClosed:  diagnosis.DateClosed,
		ClientID:    diagnosis.ClientID,
		DoctorID:    diagnosis.DoctorID,
		Diseases:    diseases,
		CreatedAt:   diagnosis.CreatedAt,
		UpdatedAt:   diagnosis.UpdatedAt,
	}
}

// DiagnosesToResponses converts a slice of Diagnosis entities to DTOs
func DiagnosesToResponses(diagnoses []entity.Diagnosis) []dto.DiagnosisResponse {
	responses := make([]dto.DiagnosisResponse, len(diagnoses))
	for i := range diagnoses {
		responses[i] = *DiagnosisToResponse(&diagnoses[i])
	}
	return responses
}
