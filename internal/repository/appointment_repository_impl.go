package repository

import (
	"errors"
	"time"

	"go-clinic-backend/internal/domain/entity"
	domainRepo "go-clinic-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	if err := db.Omit("Doctor", "Client").Create(appointment).Error; err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindDetailByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor").Preload("Client").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, query *entity.AppointmentListQuery) ([]entity.Appointment, int64, error) {
	filtered := r.applyFilters(db.Model(&entity.Appointment{}), query)

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx := r.applyFilters(db.Model(&entity.Appointment{}), query).
		Preload("Doctor").Preload("Client")
	if query != nil {
		tx = applyOrder(tx, query.Order)
		tx = applyPage(tx, &query.ListQuery)
	} else {
		tx = applyPage(tx, nil)
	}

	var appointments []entity.Appointment
	if err := tx.Find(&appointments).Error; err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

func (r *appointmentRepository) applyFilters(tx *gorm.DB, query *entity.AppointmentListQuery) *gorm.DB {
	if query == nil {
		return tx
	}
	if query.StartDate != nil {
		tx = tx.Where("start_time >= ?", *query.StartDate)
	}
	if query.EndDate != nil {
		tx = tx.Where("end_time <= ?", *query.EndDate)
	}
	if query.DoctorID != 0 {
		tx = tx.Where("doctor_id = ?", query.DoctorID)
	}
	if query.ClientID != 0 {
		tx = tx.Where("client_id = ?", query.ClientID)
	}
	return tx
}

// FindOverlapping looks for one appointment of the same doctor or the same
// client whose window intersects [start, end).
func (r *appointmentRepository) FindOverlapping(db *gorm.DB, doctorID, clientID uint, start, end time.Time, excludeID uint) (*entity.Appointment, error) {
	tx := db.
		Where("doctor_id = ? OR client_id = ?", doctorID, clientID).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID != 0 {
		tx = tx.Where("id <> ?", excludeID)
	}

	var appointment entity.Appointment
	err := tx.First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	result := db.Omit("Doctor", "Client", "CreatedAt").Save(appointment)
	if result.Error != nil {
		return translateWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWriteFailed
	}
	return nil
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
