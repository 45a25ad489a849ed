package repository

import (
	"time"

	"go-clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uint) (*entity.Appointment, error)
	// FindDetailByID preloads the doctor and client for detail display.
	FindDetailByID(db *gorm.DB, id uint) (*entity.Appointment, error)
	FindAll(db *gorm.DB, query *entity.AppointmentListQuery) ([]entity.Appointment, int64, error)
	// FindOverlapping returns one appointment of the given doctor or client
	// whose window intersects [start, end), excluding excludeID when nonzero.
	// Returns nil when no such appointment exists.
	FindOverlapping(db *gorm.DB, doctorID, clientID uint, start, end time.Time, excludeID uint) (*entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
