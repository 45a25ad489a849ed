package usecase

import (
	"context"
	"errors"
	"time"

	"go-clinic-backend/internal/converter"
	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
	"go-clinic-backend/internal/domain/repository"
	storage "go-clinic-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ClientUsecase interface {
	Create(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ClientResponse, error)
	GetList(ctx context.Context, query *entity.ListQuery) (*dto.ClientListResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateClientRequest) (*dto.ClientResponse, error)
	Delete(ctx context.Context, id uint) error
}

type clientUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	clientRepo repository.ClientRepository
}

func NewClientUsecase(db *gorm.DB, log *logrus.Logger, clientRepo repository.ClientRepository) ClientUsecase {
	return &clientUsecase{
		db:         db,
		log:        log,
		clientRepo: clientRepo,
	}
}

func (u *clientUsecase) Create(ctx context.Context, req *dto.CreateClientRequest) (*dto.ClientResponse, error) {
	dateBirthday, err := time.Parse(dateLayout, req.DateBirthday)
	if err != nil {
		return nil, ErrInvalidDate
	}

	client := &entity.Client{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		MiddleName:   req.MiddleName,
		DateBirthday: dateBirthday,
		Address:      req.Address,
		Avatar:       req.Avatar,
	}

	if err := u.clientRepo.Create(u.db.WithContext(ctx), client); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, badRequest("There is already a client with this first_name, last_name, middle_name")
		}
		if errors.Is(err, storage.ErrWriteFailed) {
			return nil, badRequest("Failed to create a client")
		}
		u.log.Warnf("Failed to create client: %+v", err)
		return nil, err
	}

	return converter.ClientToResponse(client), nil
}

func (u *clientUsecase) GetByID(ctx context.Context, id uint) (*dto.ClientResponse, error) {
	client, err := u.clientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find client: %+v", err)
		return nil, err
	}
	if client == nil {
		return nil, notFound("Client", id)
	}

	return converter.ClientToResponse(client), nil
}

func (u *clientUsecase) GetList(ctx context.Context, query *entity.ListQuery) (*dto.ClientListResponse, error) {
	clients, total, err := u.clientRepo.FindAll(u.db.WithContext(ctx), query)
	if err != nil {
		u.log.Warnf("Failed to list clients: %+v", err)
		return nil, err
	}

	return &dto.ClientListResponse{
		Clients: converter.ClientsToResponses(clients),
		Total:   total,
	}, nil
}

func (u *clientUsecase) Update(ctx context.Context, id uint, req *dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	db := u.db.WithContext(ctx)

	client, err := u.clientRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find client: %+v", err)
		return nil, err
	}
	if client == nil {
		return nil, notFound("Client", id)
	}

	dateBirthday, err := time.Parse(dateLayout, req.DateBirthday)
	if err != nil {
		return nil, ErrInvalidDate
	}

	client.FirstName = req.FirstName
	client.LastName = req.LastName
	client.MiddleName = req.MiddleName
	client.DateBirthday = dateBirthday
	client.Address = req.Address
	client.Avatar = req.Avatar

	if err := u.clientRepo.Update(db, client); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, badRequest("There is already a client with this first_name, last_name, middle_name")
		}
		if errors.Is(err, storage.ErrWriteFailed) {
			return nil, badRequest("Failed to update a client")
		}
		u.log.Warnf("Failed to update client: %+v", err)
		return nil, err
	}

	return converter.ClientToResponse(client), nil
}

func (u *clientUsecase) Delete(ctx context.Context, id uint) error {
	db := u.db.WithContext(ctx)

	client, err := u.clientRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find client: %+v", err)
		return err
	}
	if client == nil {
		return notFound("Client", id)
	}

	deleted, err := u.clientRepo.Delete(db, id)
	if err != nil {
		u.log.Warnf("Failed to delete client: %+v", err)
		return err
	}
	if deleted == 0 {
		return badRequest("Failed to delete a client")
	}

	return nil
}
