package converter

import (
	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
)

// CategoryDiseaseToResponse converts a CategoryDisease entity to its DTO
func CategoryDiseaseToResponse(category *entity.CategoryDisease) *dto.CategoryDiseaseResponse {
	if category == nil {
		return nil
	}

	return &dto.CategoryDiseaseResponse{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// CategoriesToResponses converts a slice of CategoryDisease entities to DTOs
func CategoriesToResponses(categories []entity.CategoryDisease) []dto.CategoryDiseaseResponse {
	responses := make([]dto.CategoryDiseaseResponse, len(categories))
	for i := range categories {
		responses[i] = *CategoryDiseaseToResponse(&categories[i])
	}
	return responses
}

// DiseaseToResponse converts a Disease entity to its DTO, embedding the
// category summary when it was preloaded.
func DiseaseToResponse(disease *entity.Disease) *dto.DiseaseResponse {
	if disease == nil {
		return nil
	}

	response := &dto.DiseaseResponse{
		ID:                disease.ID,
		Name:              disease.Name,
		Description:       disease.Description,
		CategoryDiseaseID: disease.CategoryDiseaseID,
		CreatedAt:         disease.CreatedAt,
		UpdatedAt:         disease.UpdatedAt,
	}

	if disease.CategoryDisease != nil {
		response.CategoryDisease = &dto.CategoryRef{
			ID:   disease.CategoryDisease.ID,
			Name: disease.CategoryDisease.Name,
		}
	}

	return response
}

// DiseasesToResponses converts a slice of Disease entities to DTOs
func DiseasesToResponses(diseases []entity.Disease) []dto.DiseaseResponse {
	responses := make([]dto.DiseaseResponse, len(diseases))
	for i := range diseases {
		responses[i] = *DiseaseToResponse(&diseases[i])
	}
	return responses
}
