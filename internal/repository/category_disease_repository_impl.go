package repository

import (
	"errors"

	"go-clinic-backend/internal/domain/entity"
	domainRepo "go-clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type categoryDiseaseRepository struct{}

func NewCategoryDiseaseRepository() domainRepo.CategoryDiseaseRepository {
	return &categoryDiseaseRepository{}
}

func (r *categoryDiseaseRepository) Create(db *gorm.DB, category *entity.CategoryDisease) error {
	if err := db.Create(category).Error; err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (r *categoryDiseaseRepository) FindByID(db *gorm.DB, id uint) (*entity.CategoryDisease, error) {
	var category entity.CategoryDisease
	err := db.Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryDiseaseRepository) FindAll(db *gorm.DB, query *entity.ListQuery) ([]entity.CategoryDisease, int64, error) {
	var total int64

	counted := db.Model(&entity.CategoryDisease{})
	if query != nil {
		counted = applySearch(counted, query.Search, "name")
	}
	if err := counted.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx := db.Model(&entity.CategoryDisease{})
	if query != nil {
		tx = applySearch(tx, query.Search, "name")
		tx = applyOrder(tx, query.Order)
	}
	tx = applyPage(tx, query)

	var categories []entity.CategoryDisease
	if err := tx.Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *categoryDiseaseRepository) ExistsByID(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Model(&entity.CategoryDisease{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryDiseaseRepository) Update(db *gorm.DB, category *entity.CategoryDisease) error {
	result := db.Omit("Diseases", "CreatedAt").Save(category)
	if result.Error != nil {
		return translateWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWriteFailed
	}
	return nil
}

func (r *categoryDiseaseRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.CategoryDisease{})
	return result.RowsAffected, result.Error
}
