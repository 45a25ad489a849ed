package repository

import (
	"errors"

	"go-clinic-backend/internal/domain/entity"
	domainRepo "go-clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type diseaseRepository struct{}

func NewDiseaseRepository() domainRepo.DiseaseRepository {
	return &diseaseRepository{}
}

func (r *diseaseRepository) Create(db *gorm.DB, disease *entity.Disease) error {
	if err := db.Omit("CategoryDisease", "Diagnoses").Create(disease).Error; err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (r *diseaseRepository) FindByID(db *gorm.DB, id uint) (*entity.Disease, error) {
	var disease entity.Disease
	err := db.Preload("CategoryDisease").Where("id = ?", id).First(&disease).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &disease, nil
}

func (r *diseaseRepository) FindAll(db *gorm.DB, query *entity.ListQuery) ([]entity.Disease, int64, error) {
	var total int64

	counted := db.Model(&entity.Disease{})
	if query != nil {
		counted = applySearch(counted, query.Search, "name")
	}
	if err := counted.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx := db.Model(&entity.Disease{}).Preload("CategoryDisease")
	if query != nil {
		tx = applySearch(tx, query.Search, "name")
		tx = applyOrder(tx, query.Order)
	}
	tx = applyPage(tx, query)

	var diseases []entity.Disease
	if err := tx.Find(&diseases).Error; err != nil {
		return nil, 0, err
	}
	return diseases, total, nil
}

func (r *diseaseRepository) ExistsByID(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Model(&entity.Disease{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *diseaseRepository) Update(db *gorm.DB, disease *entity.Disease) error {
	result := db.Omit("CategoryDisease", "Diagnoses", "CreatedAt").Save(disease)
	if result.Error != nil {
		return translateWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWriteFailed
	}
	return nil
}

func (r *diseaseRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Disease{})
	return result.RowsAffected, result.Error
}
