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

type CategoryDiseaseUsecase interface {
	Create(ctx context.Context, req *dto.CreateCategoryDiseaseRequest) (*dto.CategoryDiseaseResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.CategoryDiseaseResponse, error)
	GetList(ctx context.Context, query *entity.ListQuery) (*dto.CategoryDiseaseListResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateCategoryDiseaseRequest) (*dto.CategoryDiseaseResponse, error)
	Delete(ctx context.Context, id uint) error
}

type categoryDiseaseUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	categoryRepo repository.CategoryDiseaseRepository
}

func NewCategoryDiseaseUsecase(db *gorm.DB, log *logrus.Logger, categoryRepo repository.CategoryDiseaseRepository) CategoryDiseaseUsecase {
	return &categoryDiseaseUsecase{db: db, log: log, categoryRepo: categoryRepo}
}

func (u *categoryDiseaseUsecase) Create(ctx context.Context, req *dto.CreateCategoryDiseaseRequest) (*dto.CategoryDiseaseResponse, error) {
	category := &entity.CategoryDisease{Name: req.Name}

	if err := u.categoryRepo.Create(u.db.WithContext(ctx), category); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, badRequest("There is already a category with this name")
		}
		if errors.Is(err, storage.ErrWriteFailed) {
			return nil, badRequest("Failed to create a category of disease")
		}
		u.log.Warnf("Failed to create category of disease: %+v", err)
		return nil, err
	}

	return converter.CategoryDiseaseToResponse(category), nil
}

func (u *categoryDiseaseUsecase) GetByID(ctx context.Context, id uint) (*dto.CategoryDiseaseResponse, error) {
	category, err := u.categoryRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find category of disease: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, notFound("CategoryDisease", id)
	}

	return converter.CategoryDiseaseToResponse(category), nil
}

func (u *categoryDiseaseUsecase) GetList(ctx context.Context, query *entity.ListQuery) (*dto.CategoryDiseaseListResponse, error) {
	categories, total, err := u.categoryRepo.FindAll(u.db.WithContext(ctx), query)
	if err != nil {
		u.log.Warnf("Failed to list categories of disease: %+v", err)
		return nil, err
	}

	return &dto.CategoryDiseaseListResponse{
		Categories: converter.CategoriesToResponses(categories),
		Total:      total,
	}, nil
}

func (u *categoryDiseaseUsecase) Update(ctx context.Context, id uint, req *dto.UpdateCategoryDiseaseRequest) (*dto.CategoryDiseaseResponse, error) {
	db := u.db.WithContext(ctx)

	category, err := u.categoryRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find category of disease: %+v", err)
		return nil, err
	}
	if category == nil {
		return nil, notFound("CategoryDisease", id)
	}

	category.Name = req.Name

	if err := u.categoryRepo.Update(db, category); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, badRequest("There is already a category with this name")
		}
		if errors.Is(err, storage.ErrWriteFailed) {
			return nil, badRequest("Failed to update a category of disease")
		}
		u.log.Warnf("Failed to update category of disease: %+v", err)
		return nil, err
	}

	return converter.CategoryDiseaseToResponse(category), nil
}

func (u *categoryDiseaseUsecase) Delete(ctx context.Context, id uint) error {
	db := u.db.WithContext(ctx)

	category, err := u.categoryRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find category of disease: %+v", err)
		return err
	}
	if category == nil {
		return notFound("CategoryDisease", id)
	}

	deleted, err := u.categoryRepo.Delete(db, id)
	if err != nil {
		u.log.Warnf("Failed to delete category of disease: %+v", err)
		return err
	}
	if deleted == 0 {
		return badRequest("Failed to delete a category of disease")
	}

	return nil
}
