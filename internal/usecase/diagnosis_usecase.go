package usecase

import (
	"context"
	"errors"

	"go-clinic-backend/internal/converter"
	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
	"go-clinic-backend/internal/domain/repository"
	storage "go-clinic-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DiagnosisUsecase interface {
	Create(ctx context.Context, req *dto.CreateDiagnosisRequest) (*dto.DiagnosisResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.DiagnosisResponse, error)
	GetList(ctx context.Context, query *entity.ListQuery) (*dto.DiagnosisListResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateDiagnosisRequest) (*dto.DiagnosisResponse, error)
	Delete(ctx context.Context, id uint) error
}

type diagnosisUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	diagnosisRepo repository.DiagnosisRepository
	diseaseRepo   repository.DiseaseRepository
	doctorRepo    repository.DoctorRepository
	clientRepo    repository.ClientRepository
}

func NewDiagnosisUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	diagnosisRepo repository.DiagnosisRepository,
	diseaseRepo repository.DiseaseRepository,
	doctorRepo repository.DoctorRepository,
	clientRepo repository.ClientRepository,
) DiagnosisUsecase {
	return &diagnosisUsecase{
		db:            db,
		log:           log,
		diagnosisRepo: diagnosisRepo,
		diseaseRepo:   diseaseRepo,
		doctorRepo:    doctorRepo,
		clientRepo:    clientRepo,
	}
}

// checkReferences probes the doctor, client and every referenced disease
// before a write so a bad id surfaces as a 404 rather than a foreign key
// violation.
func (u *diagnosisUsecase) checkReferences(db *gorm.DB, doctorID, clientID uint, diseaseIDs []uint) error {
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

	for _, diseaseID := range diseaseIDs {
		exists, err = u.diseaseRepo.ExistsByID(db, diseaseID)
		if err != nil {
			u.log.Warnf("Failed to probe disease: %+v", err)
			return err
		}
		if !exists {
			return notFound("Disease", diseaseID)
		}
	}

	return nil
}

func diagnosisStatus(raw string) entity.DiagnosisStatus {
	if raw == "" {
		return entity.DiagnosisStatusActive
	}
	return entity.DiagnosisStatus(raw)
}

func (u *diagnosisUsecase) Create(ctx context.Context, req *dto.CreateDiagnosisRequest) (*dto.DiagnosisResponse, error) {
	db := u.db.WithContext(ctx)

	if err := u.checkReferences(db, req.DoctorID, req.ClientID, req.DiseaseIDs); err != nil {
		return nil, err
	}

	diagnosis := &entity.Diagnosis{
		Name:        req.Name,
		Description: req.Description,
		Status:      diagnosisStatus(req.Status),
		DateClosed:  req.DateClosed,
		ClientID:    req.ClientID,
		DoctorID:    req.DoctorID,
	}

	if err := u.diagnosisRepo.Create(db, diagnosis); err != nil {
		if errors.Is(err, storage.ErrConflict) || errors.Is(err, storage.ErrWriteFailed) {
			return nil, badRequest("Failed to create a diagnosis")
		}
		u.log.Warnf("Failed to create diagnosis: %+v", err)
		return nil, err
	}

	// Join rows are written one statement at a time after the diagnosis
	// row is committed; a failure part-way leaves the earlier links in
	// place.
	for _, diseaseID := range req.DiseaseIDs {
		if err := u.diagnosisRepo.AddDisease(db, diagnosis.ID, diseaseID); err != nil {
			u.log.Warnf("Failed to link disease %d to diagnosis %d: %+v", diseaseID, diagnosis.ID, err)
			return nil, badRequest("Failed to create a diagnosis")
		}
	}

	created, err := u.diagnosisRepo.FindByID(db, diagnosis.ID)
	if err != nil || created == nil {
		return converter.DiagnosisToResponse(diagnosis), nil
	}

	return converter.DiagnosisToResponse(created), nil
}

func (u *diagnosisUsecase) GetByID(ctx context.Context, id uint) (*dto.DiagnosisResponse, error) {
	diagnosis, err := u.diagnosisRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find diagnosis: %+v", err)
		return nil, err
	}
	if diagnosis == nil {
		return nil, notFound("Diagnosis", id)
	}

	return converter.DiagnosisToResponse(diagnosis), nil
}

func (u *diagnosisUsecase) GetList(ctx context.Context, query *entity.ListQuery) (*dto.DiagnosisListResponse, error) {
	diagnoses, total, err := u.diagnosisRepo.FindAll(u.db.WithContext(ctx), query)
	if err != nil {
		u.log.Warnf("Failed to list diagnoses: %+v", err)
		return nil, err
	}

	return &dto.DiagnosisListResponse{
		Diagnoses: converter.DiagnosesToResponses(diagnoses),
		Total:     total,
	}, nil
}

func (u *diagnosisUsecase) Update(ctx context.Context, id uint, req *dto.UpdateDiagnosisRequest) (*dto.DiagnosisResponse, error) {
	db := u.db.WithContext(ctx)

	diagnosis, err := u.diagnosisRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find diagnosis: %+v", err)
		return nil, err
	}
	if diagnosis == nil {
		return nil, notFound("Diagnosis", id)
	}

	if err := u.checkReferences(db, req.DoctorID, req.ClientID, req.DiseaseIDs); err != nil {
		return nil, err
	}

	diagnosis.Name = req.Name
	diagnosis.Description = req.Description
	diagnosis.Status = diagnosisStatus(req.Status)
	diagnosis.DateClosed = req.DateClosed
	diagnosis.ClientID = req.ClientID
	diagnosis.DoctorID = req.DoctorID
	diagnosis.Diseases = nil

	if err := u.diagnosisRepo.Update(db, diagnosis); err != nil {
		if errors.Is(err, storage.ErrConflict) || errors.Is(err, storage.ErrWriteFailed) {
			return nil, badRequest("Failed to update a diagnosis")
		}
		u.log.Warnf("Failed to update diagnosis: %+v", err)
		return nil, err
	}

	// Replace the disease links: clear, then re-add one by one.
	if err := u.diagnosisRepo.ClearDiseases(db, id); err != nil {
		u.log.Warnf("Failed to clear diseases of diagnosis %d: %+v", id, err)
		return nil, badRequest("Failed to update a diagnosis")
	}
	for _, diseaseID := range req.DiseaseIDs {
		if err := u.diagnosisRepo.AddDisease(db, id, diseaseID); err != nil {
			u.log.Warnf("Failed to link disease %d to diagnosis %d: %+v", diseaseID, id, err)
			return nil, badRequest("Failed to update a diagnosis")
		}
	}

	updated, err := u.diagnosisRepo.FindByID(db, id)
	if err != nil || updated == nil {
		return converter.DiagnosisToResponse(diagnosis), nil
	}

	return converter.DiagnosisToResponse(updated), nil
}

func (u *diagnosisUsecase) Delete(ctx context.Context, id uint) error {
	db := u.db.WithContext(ctx)

	diagnosis, err := u.diagnosisRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find diagnosis: %+v", err)
		return err
	}
	if diagnosis == nil {
		return notFound("Diagnosis", id)
	}

	if err := u.diagnosisRepo.ClearDiseases(db, id); err != nil {
		u.log.Warnf("Failed to clear diseases of diagnosis %d: %+v", id, err)
		return badRequest("Failed to delete a diagnosis")
	}

	deleted, err := u.diagnosisRepo.Delete(db, id)
	if err != nil {
		u.log.Warnf("Failed to delete diagnosis: %+v", err)
		return err
	}
	if deleted == 0 {
		return badRequest("Failed to delete a diagnosis")
	}

	return nil
}
