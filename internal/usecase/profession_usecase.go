package usecase

import (
	"context"
	"errors"

	"go-clinic-backend/internal/converter"
	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
	"go-clinic-backend/internal/domain/repository"
	storage "go-clinic-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProfessionUsecase interface {
	Create(ctx context.Context, req *dto.CreateProfessionRequest) (*dto.ProfessionResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ProfessionResponse, error)
	GetList(ctx context.Context, query *entity.ListQuery) (*dto.ProfessionListResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateProfessionRequest) (*dto.ProfessionResponse, error)
	Delete(ctx context.Context, id uint) error
}

type professionUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	professionRepo repository.ProfessionRepository
}

func NewProfessionUsecase(db *gorm.DB, log *logrus.Logger, professionRepo repository.ProfessionRepository) ProfessionUsecase {
	return &professionUsecase{
		db:             db,
		log:            log,
		professionRepo: professionRepo,
	}
}

func (u *professionUsecase) Create(ctx context.Context, req *dto.CreateProfessionRequest) (*dto.ProfessionResponse, error) {
	profession := &entity.Profession{Name: req.Name}

	if err := u.professionRepo.Create(u.db.WithContext(ctx), profession); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, badRequest("There is already a profession with this name")
		}
		if errors.Is(err, storage.ErrWriteFailed) {
			return nil, badRequest("Failed to create a profession")
		}
		u.log.Warnf("Failed to create profession: %+v", err)
		return nil, err
	}

	return converter.ProfessionToResponse(profession), nil
}

func (u *professionUsecase) GetByID(ctx context.Context, id uint) (*dto.ProfessionResponse, error) {
	profession, err := u.professionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find profession: %+v", err)
		return nil, err
	}
	if profession == nil {
		return nil, notFound("Profession", id)
	}

	return converter.ProfessionToResponse(profession), nil
}

func (u *professionUsecase) GetList(ctx context.Context, query *entity.ListQuery) (*dto.ProfessionListResponse, error) {
	professions, total, err := u.professionRepo.FindAll(u.db.WithContext(ctx), query)
	if err != nil {
		u.log.Warnf("Failed to list professions: %+v", err)
		return nil, err
	}

	return &dto.ProfessionListResponse{
		Professions: converter.ProfessionsToListItems(professions),
		Total:       total,
	}, nil
}

func (u *professionUsecase) Update(ctx context.Context, id uint, req *dto.UpdateProfessionRequest) (*dto.ProfessionResponse, error) {
	profession, err := u.professionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find profession: %+v", err)
		return nil, err
	}
	if profession == nil {
		return nil, notFound("Profession", id)
	}

	profession.Name = req.Name

	if err := u.professionRepo.Update(u.db.WithContext(ctx), profession); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, badRequest("There is already a profession with this name")
		}
		if errors.Is(err, storage.ErrWriteFailed) {
			return nil, badRequest("Failed to update a profession")
		}
		u.log.Warnf("Failed to update profession: %+v", err)
		return nil, err
	}

	return converter.ProfessionToResponse(profession), nil
}

func (u *professionUsecase) Delete(ctx context.Context, id uint) error {
	profession, err := u.professionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find profession: %+v", err)
		return err
	}
	if profession == nil {
		return notFound("Profession", id)
	}

	deleted, err := u.professionRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete profession: %+v", err)
		return err
	}
	if deleted == 0 {
		return badRequest("Failed to delete a profession")
	}

	return nil
}
