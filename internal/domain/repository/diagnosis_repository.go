package repository

import (
	"go-clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type DiagnosisRepository interface {
	Create(db *gorm.DB, diagnosis *entity.Diagnosis) error
	// FindByID preloads the associated diseases.
	FindByID(db *gorm.DB, id uint) (*entity.Diagnosis, error)
	FindAll(db *gorm.DB, query *entity.ListQuery) ([]entity.Diagnosis, int64, error)
	Update(db *gorm.DB, diagnosis *entity.Diagnosis) error
	Delete(db *gorm.DB, id uint) (int64, error)
	// AddDisease and ClearDiseases manage the disease_diagnosis join rows.
	// Each call is a separately committed statement.
	AddDisease(db *gorm.DB, diagnosisID, diseaseID uint) error
	ClearDiseases(db *gorm.DB, diagnosisID uint) error
}
