package repository

import (
	"go-clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ProfessionRepository interface {
	Create(db *gorm.DB, profession *entity.Profession) error
	FindByID(db *gorm.DB, id uint) (*entity.Profession, error)
	FindAll(db *gorm.DB, query *entity.ListQuery) ([]entity.ProfessionWithSpecialists, int64, error)
	ExistsByID(db *gorm.DB, id uint) (bool, error)
	Update(db *gorm.DB, profession *entity.Profession) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
