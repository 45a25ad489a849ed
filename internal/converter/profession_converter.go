package converter

import (
	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
)

// ProfessionToResponse converts a Profession entity to ProfessionResponse DTO
func ProfessionToResponse(profession *entity.Profession) *dto.ProfessionResponse {
	if profession == nil {
		return nil
	}

	return &dto.ProfessionResponse{
		ID:        profession.ID,
		Name:      profession.Name,
		CreatedAt: profession.CreatedAt,
		UpdatedAt: profession.UpdatedAt,
	}
}

// ProfessionsToListItems converts list projections including doctor counts
func ProfessionsToListItems(professions []entity.ProfessionWithSpecialists) []dto.ProfessionListItem {
	items := make([]dto.ProfessionListItem, len(professions))
	for i, profession := range professions {
		items[i] = dto.ProfessionListItem{
			ProfessionResponse: dto.ProfessionResponse{
				ID:        profession.ID,
				Name:      profession.Name,
				CreatedAt: profession.CreatedAt,
				UpdatedAt: profession.UpdatedAt,
			},
			NumberOfSpecialists: profession.NumberOfSpecialists,
		}
	}
	return items
}
