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

type DiseaseUsecase interface {
	Create(ctx context.Context, req *dto.CreateDiseaseRequest) (*dto.DiseaseResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.DiseaseResponse, error)
	GetList(ctx context.Context, query *entity.ListQuery) (*dto.DiseaseListResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateDiseaseRequest) (*dto.DiseaseResponse, error)
	Delete(ctx context.Context, id uint) error
}

type diseaseUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	diseaseRepo  repository.DiseaseRepository
	categoryRepo repository.CategoryDiseaseRepository
}

func NewDiseaseUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	diseaseRepo repository.DiseaseRepository,
	categoryRepo repository.CategoryDiseaseRepository,
) DiseaseUsecase {
	return &diseaseUsecase{db: db, log: log, diseaseRepo: diseaseRepo, categoryRepo: categoryRepo}
}

func (u *diseaseUsecase) checkCategory(db *gorm.DB, categoryID uint) error {
	exists, err := u.categoryRepo.ExistsByID(db, categoryID)
	if err != nil {
		u.log.Warnf("Failed to probe category of disease: %+v", err)
		return err
	}
	if !exists {
		return notFound("CategoryDisease", categoryID)
	}
	return nil
}

func (u *diseaseUsecase) Create(ctx context.Context, req *dto.CreateDiseaseRequest) (*dto.DiseaseResponse, error) {
	db := u.db.WithContext(ctx)

	if err := u.checkCategory(db, req.CategoryDiseaseID); err != nil {
		return nil, err
	}

	disease := &entity.Disease{
		Name:              req.Name,
		Description:       req.Description,
		CategoryDiseaseID: req.CategoryDiseaseID,
	}

	if err := u.diseaseRepo.Create(db, disease); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, badRequest("There is already a disease with this name")
		}
		if errors.Is(err, storage.ErrWriteFailed) {
			return nil, badRequest("Failed to create a disease")
		}
		u.log.Warnf("Failed to create disease: %+v", err)
		return nil, err
	}

	// Reload so the response carries the embedded category.
	created, err := u.diseaseRepo.FindByID(db, disease.ID)
	if err != nil || created == nil {
		return converter.DiseaseToResponse(disease), nil
	}

	return converter.DiseaseToResponse(created), nil
}

func (u *diseaseUsecase) GetByID(ctx context.Context, id uint) (*dto.DiseaseResponse, error) {
	disease, err := u.diseaseRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find disease: %+v", err)
		return nil, err
	}
	if disease == nil {
		return nil, notFound("Disease", id)
	}

	return converter.DiseaseToResponse(disease), nil
}

func (u *diseaseUsecase) GetList(ctx context.Context, query *entity.ListQuery) (*dto.DiseaseListResponse, error) {
	diseases, total, err := u.diseaseRepo.FindAll(u.db.WithContext(ctx), query)
	if err != nil {
		u.log.Warnf("Failed to list diseases: %+v", err)
		return nil, err
	}

	return &dto.DiseaseListResponse{
		Diseases: converter.DiseasesToResponses(diseases),
		Total:    total,
	}, nil
}

func (u *diseaseUsecase) Update(ctx context.Context, id uint, req *dto.UpdateDiseaseRequest) (*dto.DiseaseResponse, error) {
	db := u.db.WithContext(ctx)

	disease, err := u.diseaseRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find disease: %+v", err)
		return nil, err
	}
	if disease == nil {
		return nil, notFound("Disease", id)
	}

	if err := u.checkCategory(db, req.CategoryDiseaseID); err != nil {
		return nil, err
	}

	disease.Name = req.Name
	disease.Description = req.Description
	disease.CategoryDiseaseID = req.CategoryDiseaseID
	disease.CategoryDisease = nil

	if err := u.diseaseRepo.Update(db, disease); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, badRequest("There is already a disease with this name")
		}
		if errors.Is(err, storage.ErrWriteFailed) {
			return nil, badRequest("Failed to update a disease")
		}
		u.log.Warnf("Failed to update disease: %+v", err)
		return nil, err
	}

	updated, err := u.diseaseRepo.FindByID(db, id)
	if err != nil || updated == nil {
		return converter.DiseaseToResponse(disease), nil
	}

	return converter.DiseaseToResponse(updated), nil
}

func (u *diseaseUsecase) Delete(ctx context.Context, id uint) error {
	db := u.db.WithContext(ctx)

	disease, err := u.diseaseRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find disease: %+v", err)
		return err
	}
	if disease == nil {
		return notFound("Disease", id)
	}

	deleted, err := u.diseaseRepo.Delete(db, id)
	if err != nil {
		u.log.Warnf("Failed to delete disease: %+v", err)
		return err
	}
	if deleted == 0 {
		return badRequest("Failed to delete a disease")
	}

	return nil
}
