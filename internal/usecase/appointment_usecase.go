package usecase

import (
	"context"
	"errors"
	"time"

	"go-clinic-backend/internal/converter"
	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
	"go-clinic-backend/internal/domain/repository"
	storage "go-clinic-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	GetList(ctx context.Context, query *entity.AppointmentListQuery) (*dto.AppointmentListResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	clientRepo      repository.ClientRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	clientRepo repository.ClientRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		clientRepo:      clientRepo,
	}
}

// checkReferences probes the doctor and client ids before a write.
func (u *appointmentUsecase) checkReferences(db *gorm.DB, doctorID, clientID uint) error {
	exists, err := u.doctorRepo.ExistsByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to probe doctor: %+v", err)
		return err
	}
	if !exists {
		return notFound("Doctor", doctorID)
	}

	exists, err = u.clientRepo.ExistsByID(db, clientID)
	if err != nil {
		u.log.Warnf("Failed to probe client: %+v", err)
		return err
	}
	if !exists {
		return notFound("Client", clientID)
	}

	return nil
}

// checkConflict rejects the proposed window when the doctor or the client
// already has an appointment intersecting [start, end). excludeID skips
// the appointment's own row on update. The check is not atomic with the
// subsequent write; two racing requests can both pass it.
func (u *appointmentUsecase) checkConflict(db *gorm.DB, doctorID, clientID uint, start, end time.Time, excludeID uint) error {
	existing, err := u.appointmentRepo.FindOverlapping(db, doctorID, clientID, start, end, excludeID)
	if err != nil {
		u.log.Warnf("Failed to check appointment conflict: %+v", err)
		return err
	}
	if existing != nil {
		return badRequest("The doctor or client already has an appointment between %s and %s",
			existing.StartTime.Format(time.RFC3339), existing.EndTime.Format(time.RFC3339))
	}
	return nil
}

func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	if err := u.checkReferences(db, req.DoctorID, req.ClientID); err != nil {
		return nil, err
	}
	if err := u.checkConflict(db, req.DoctorID, req.ClientID, req.StartTime, req.EndTime, 0); err != nil {
		return nil, err
	}

	doctorID := req.DoctorID
	clientID := req.ClientID
	appointment := &entity.Appointment{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		DoctorID:  &doctorID,
		ClientID:  &clientID,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		if errors.Is(err, storage.ErrConflict) || errors.Is(err, storage.ErrWriteFailed) {
			return nil, badRequest("Failed to create an appointment")
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindDetailByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, notFound("Appointment", id)
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetList(ctx context.Context, query *entity.AppointmentListQuery) (*dto.AppointmentListResponse, error) {
	appointments, total, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), query)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        total,
	}, nil
}

func (u *appointmentUsecase) Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, notFound("Appointment", id)
	}

	if err := u.checkReferences(db, req.DoctorID, req.ClientID); err != nil {
		return nil, err
	}
	if err := u.checkConflict(db, req.DoctorID, req.ClientID, req.StartTime, req.EndTime, id); err != nil {
		return nil, err
	}

	doctorID := req.DoctorID
	clientID := req.ClientID
	appointment.StartTime = req.StartTime
	appointment.EndTime = req.EndTime
	appointment.DoctorID = &doctorID
	appointment.ClientID = &clientID

	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		if errors.Is(err, storage.ErrConflict) || errors.Is(err, storage.ErrWriteFailed) {
			return nil, badRequest("Failed to update an appointment")
		}
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id uint) error {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return notFound("Appointment", id)
	}

	deleted, err := u.appointmentRepo.Delete(db, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if deleted == 0 {
		return badRequest("Failed to delete an appointment")
	}

	return nil
}
