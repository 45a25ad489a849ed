package repository

import (
	"errors"

	"go-clinic-backend/internal/domain/entity"
	domainRepo "go-clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type diagnosisRepository struct{}

func NewDiagnosisRepository() domainRepo.DiagnosisRepository {
	return &diagnosisRepository{}
}

func (r *diagnosisRepository) Create(db *gorm.DB, diagnosis *entity.Diagnosis) error {
	if err := db.Omit("Diseases", "Client", "Doctor").Create(diagnosis).Error; err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (r *diagnosisRepository) FindByID(db *gorm.DB, id uint) (*entity.Diagnosis, error) {
	var diagnosis entity.Diagnosis
	err := db.Preload("Diseases").Where("id = ?", id).First(&diagnosis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &diagnosis, nil
}

func (r *diagnosisRepository) FindAll(db *gorm.DB, query *entity.ListQuery) ([]entity.Diagnosis, int64, error) {
	var total int64

	counted := db.Model(&entity.Diagnosis{})
	if query != nil {
		counted = applySearch(counted, query.Search, "name")
	}
	if err := counted.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx := db.Model(&entity.Diagnosis{}).Preload("Diseases")
	if query != nil {
		tx = applySearch(tx, query.Search, "name")
		tx = applyOrder(tx, query.Order)
	}
	tx = applyPage(tx, query)

	var diagnoses []entity.Diagnosis
	if err := tx.Find(&diagnoses).Error; err != nil {
		return nil, 0, err
	}
	return diagnoses, total, nil
}

func (r *diagnosisRepository) Update(db *gorm.DB, diagnosis *entity.Diagnosis) error {
	result := db.Omit("Diseases", "Client", "Doctor", "CreatedAt").Save(diagnosis)
	if result.Error != nil {
		return translateWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWriteFailed
	}
	return nil
}

func (r *diagnosisRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Diagnosis{})
	return result.RowsAffected, result.Error
}

// AddDisease inserts one disease_diagnosis row. Re-linking an already
// linked disease is a no-op rather than a conflict.
func (r *diagnosisRepository) AddDisease(db *gorm.DB, diagnosisID, diseaseID uint) error {
	link := entity.DiseaseDiagnosis{
		DiseaseID:   diseaseID,
		DiagnosisID: diagnosisID,
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

func (r *diagnosisRepository) ClearDiseases(db *gorm.DB, diagnosisID uint) error {
	return db.Where("diagnosis_id = ?", diagnosisID).Delete(&entity.DiseaseDiagnosis{}).Error
}
