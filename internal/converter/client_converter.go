package converter

import (
	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
)

// ClientToResponse converts a Client entity to ClientResponse DTO
func ClientToResponse(client *entity.Client) *dto.ClientResponse {
	if client == nil {
		return nil
	}

	return &dto.ClientResponse{
		ID:           client.ID,
		FirstName:    client.FirstName,
		LastName:     client.LastName,
		MiddleName:   client.MiddleName,
		DateBirthday: client.DateBirthday.Format(dateLayout),
		Address:      client.Address,
		Avatar:       client.Avatar,
		CreatedAt:    client.CreatedAt,
		UpdatedAt:    client.UpdatedAt,
	}
}

// ClientsToResponses converts a slice of Client entities to ClientResponse DTOs
func ClientsToResponses(clients []entity.Client) []dto.ClientResponse {
	responses := make([]dto.ClientResponse, len(clients))
	for i := range clients {
		responses[i] = *ClientToResponse(&clients[i])
	}
	return responses
}
