package repository

import (
	"go-clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type CategoryDiseaseRepository interface {
	Create(db *gorm.DB, category *entity.CategoryDisease) error
	FindByID(db *gorm.DB, id uint) (*entity.CategoryDisease, error)
	FindAll(db *gorm.DB, query *entity.ListQuery) ([]entity.CategoryDisease, int64, error)
	ExistsByID(db *gorm.DB, id uint) (bool, error)
	Update(db *gorm.DB, category *entity.CategoryDisease) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
