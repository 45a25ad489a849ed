package repository

import (
	"errors"

	"go-clinic-backend/internal/domain/entity"
	domainRepo "go-clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type professionRepository struct{}

func NewProfessionRepository() domainRepo.ProfessionRepository {
	return &professionRepository{}
}

func (r *professionRepository) Create(db *gorm.DB, profession *entity.Profession) error {
	if err := db.Create(profession).Error; err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (r *professionRepository) FindByID(db *gorm.DB, id uint) (*entity.Profession, error) {
	var profession entity.Profession
	err := db.Where("id = ?", id).First(&profession).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profession, nil
}

// FindAll lists professions with the number of doctors holding each one.
func (r *professionRepository) FindAll(db *gorm.DB, query *entity.ListQuery) ([]entity.ProfessionWithSpecialists, int64, error) {
	var total int64

	counted := db.Model(&entity.Profession{})
	if query != nil {
		counted = applySearch(counted, query.Search, "professions.name")
	}
	if err := counted.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx := db.Model(&entity.Profession{}).
		Select("professions.*, COUNT(doctors.id) AS number_of_specialists").
		Joins("LEFT JOIN doctors ON doctors.profession_id = professions.id").
		Group("professions.id")
	if query != nil {
		tx = applySearch(tx, query.Search, "professions.name")
		// Qualify the sort column: doctors carries created_at too.
		tx = applyOrder(tx, qualifyOrder(query.Order, "professions"))
	}
	tx = applyPage(tx, query)

	var professions []entity.ProfessionWithSpecialists
	if err := tx.Scan(&professions).Error; err != nil {
		return nil, 0, err
	}
	return professions, total, nil
}

func (r *professionRepository) ExistsByID(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Model(&entity.Profession{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *professionRepository) Update(db *gorm.DB, profession *entity.Profession) error {
	result := db.Omit("Doctors", "CreatedAt").Save(profession)
	if result.Error != nil {
		return translateWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWriteFailed
	}
	return nil
}

func (r *professionRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Profession{})
	return result.RowsAffected, result.Error
}
