package repository

import (
	"errors"

	"go-clinic-backend/internal/domain/entity"
	domainRepo "go-clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type clientRepository struct{}

func NewClientRepository() domainRepo.ClientRepository {
	return &clientRepository{}
}

func (r *clientRepository) Create(db *gorm.DB, client *entity.Client) error {
	if err := db.Create(client).Error; err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (r *clientRepository) FindByID(db *gorm.DB, id uint) (*entity.Client, error) {
	var client entity.Client
	err := db.Where("id = ?", id).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindAll(db *gorm.DB, query *entity.ListQuery) ([]entity.Client, int64, error) {
	var total int64

	counted := db.Model(&entity.Client{})
	if query != nil {
		counted = applySearch(counted, query.Search, "first_name", "last_name", "middle_name")
	}
	if err := counted.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx := db.Model(&entity.Client{})
	if query != nil {
		tx = applySearch(tx, query.Search, "first_name", "last_name", "middle_name")
		tx = applyOrder(tx, query.Order)
	}
	tx = applyPage(tx, query)

	var clients []entity.Client
	if err := tx.Find(&clients).Error; err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

func (r *clientRepository) ExistsByID(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Model(&entity.Client{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *clientRepository) Update(db *gorm.DB, client *entity.Client) error {
	result := db.Omit("Appointments", "Diagnoses", "CreatedAt").Save(client)
	if result.Error != nil {
		return translateWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWriteFailed
	}
	return nil
}

func (r *clientRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Client{})
	return result.RowsAffected, result.Error
}
