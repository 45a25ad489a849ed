package repository

import (
	"errors"

	"go-clinic-backend/internal/domain/entity"
	domainRepo "go-clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	if err := db.Omit("Profession").Create(doctor).Error; err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("Profession").Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB, query *entity.ListQuery) ([]entity.Doctor, int64, error) {
	var total int64

	counted := db.Model(&entity.Doctor{})
	if query != nil {
		counted = applySearch(counted, query.Search, "first_name", "last_name", "middle_name")
	}
	if err := counted.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx := db.Model(&entity.Doctor{}).Preload("Profession")
	if query != nil {
		tx = applySearch(tx, query.Search, "first_name", "last_name", "middle_name")
		tx = applyOrder(tx, query.Order)
	}
	tx = applyPage(tx, query)

	var doctors []entity.Doctor
	if err := tx.Find(&doctors).Error; err != nil {
		return nil, 0, err
	}
	return doctors, total, nil
}

func (r *doctorRepository) ExistsByID(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Model(&entity.Doctor{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	result := db.Omit("Profession", "Appointments", "Diagnoses", "CreatedAt").Save(doctor)
	if result.Error != nil {
		return translateWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWriteFailed
	}
	return nil
}

func (r *doctorRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}
