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

var ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

const dateLayout = "2006-01-02"

type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.DoctorResponse, error)
	GetList(ctx context.Context, query *entity.ListQuery) (*dto.DoctorListResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id uint) error
}

type doctorUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	doctorRepo     repository.DoctorRepository
	professionRepo repository.ProfessionRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	professionRepo repository.ProfessionRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:             db,
		log:            log,
		doctorRepo:     doctorRepo,
		professionRepo: professionRepo,
	}
}

// checkProfessionExists probes the referenced profession before a write.
func (u *doctorUsecase) checkProfessionExists(db *gorm.DB, id *uint) error {
	if id == nil {
		return nil
	}
	exists, err := u.professionRepo.ExistsByID(db, *id)
	if err != nil {
		u.log.Warnf("Failed to probe profession: %+v", err)
		return err
	}
	if !exists {
		return notFound("Profession", *id)
	}
	return nil
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	db := u.db.WithContext(ctx)

	if err := u.checkProfessionExists(db, req.ProfessionID); err != nil {
		return nil, err
	}

	dateBirthday, err := time.Parse(dateLayout, req.DateBirthday)
	if err != nil {
		return nil, ErrInvalidDate
	}
	dateStartWork, err := time.Parse(dateLayout, req.DateStartWork)
	if err != nil {
		return nil, ErrInvalidDate
	}

	doctor := &entity.Doctor{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		MiddleName:    req.MiddleName,
		DateBirthday:  dateBirthday,
		DateStartWork: dateStartWork,
		Avatar:        req.Avatar,
		ProfessionID:  req.ProfessionID,
	}

	if err := u.doctorRepo.Create(db, doctor); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, badRequest("There is already a doctor with this first_name, last_name, middle_name")
		}
		if errors.Is(err, storage.ErrWriteFailed) {
			return nil, badRequest("Failed to create a doctor")
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	// Reload with the profession joined so the response embeds it.
	created, err := u.doctorRepo.FindByID(db, doctor.ID)
	if err != nil || created == nil {
		return converter.DoctorToResponse(doctor), nil
	}
	return converter.DoctorToResponse(created), nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uint) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, notFound("Doctor", id)
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetList(ctx context.Context, query *entity.ListQuery) (*dto.DoctorListResponse, error) {
	doctors, total, err := u.doctorRepo.FindAll(u.db.WithContext(ctx), query)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   total,
	}, nil
}

func (u *doctorUsecase) Update(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, notFound("Doctor", id)
	}

	if err := u.checkProfessionExists(db, req.ProfessionID); err != nil {
		return nil, err
	}

	dateBirthday, err := time.Parse(dateLayout, req.DateBirthday)
	if err != nil {
		return nil, ErrInvalidDate
	}
	dateStartWork, err := time.Parse(dateLayout, req.DateStartWork)
	if err != nil {
		return nil, ErrInvalidDate
	}

	doctor.FirstName = req.FirstName
	doctor.LastName = req.LastName
	doctor.MiddleName = req.MiddleName
	doctor.DateBirthday = dateBirthday
	doctor.DateStartWork = dateStartWork
	doctor.Avatar = req.Avatar
	doctor.ProfessionID = req.ProfessionID
	doctor.Profession = nil

	if err := u.doctorRepo.Update(db, doctor); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, badRequest("There is already a doctor with this first_name, last_name, middle_name")
		}
		if errors.Is(err, storage.ErrWriteFailed) {
			return nil, badRequest("Failed to update a doctor")
		}
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	updated, err := u.doctorRepo.FindByID(db, id)
	if err != nil || updated == nil {
		return converter.DoctorToResponse(doctor), nil
	}
	return converter.DoctorToResponse(updated), nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id uint) error {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return notFound("Doctor", id)
	}

	deleted, err := u.doctorRepo.Delete(db, id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if deleted == 0 {
		return badRequest("Failed to delete a doctor")
	}

	return nil
}
