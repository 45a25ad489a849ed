package repository

import (
	"go-clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type DiseaseRepository interface {
	Create(db *gorm.DB, disease *entity.Disease) error
	// FindByID preloads the disease's category for detail display.
	FindByID(db *gorm.DB, id uint) (*entity.Disease, error)
	FindAll(db *gorm.DB, query *entity.ListQuery) ([]entity.Disease, int64, error)
	ExistsByID(db *gorm.DB, id uint) (bool, error)
	Update(db *gorm.DB, disease *entity.Disease) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
