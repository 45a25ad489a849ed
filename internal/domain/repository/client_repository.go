package repository

import (
	"go-clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(db *gorm.DB, client *entity.Client) error
	FindByID(db *gorm.DB, id uint) (*entity.Client, error)
	FindAll(db *gorm.DB, query *entity.ListQuery) ([]entity.Client, int64, error)
	ExistsByID(db *gorm.DB, id uint) (bool, error)
	Update(db *gorm.DB, client *entity.Client) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
