package usecase

import (
	"context"
	"errors"
	"testing"

	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
	storage "go-clinic-backend/internal/repository"

	"gorm.io/gorm"
)

type fakeProfessionRepo struct {
	professions map[uint]*entity.Profession
	createErr   error
	updateErr   error
	deleted     int64
	nextID      uint
}

func newFakeProfessionRepo() *fakeProfessionRepo {
	return &fakeProfessionRepo{professions: map[uint]*entity.Profession{}, nextID: 1, deleted: 1}
}

func (f *fakeProfessionRepo) Create(db *gorm.DB, profession *entity.Profession) error {
	if f.createErr != nil {
		return f.createErr
	}
	profession.ID = f.nextID
	f.nextID++
	f.professions[profession.ID] = profession
	return nil
}

func (f *fakeProfessionRepo) FindByID(db *gorm.DB, id uint) (*entity.Profession, error) {
	return f.professions[id], nil
}

func (f *fakeProfessionRepo) FindAll(db *gorm.DB, query *entity.ListQuery) ([]entity.ProfessionWithSpecialists, int64, error) {
	items := make([]entity.ProfessionWithSpecialists, 0, len(f.professions))
	for _, p := range f.professions {
		items = append(items, entity.ProfessionWithSpecialists{Profession: *p, NumberOfSpecialists: 2})
	}
	return items, int64(len(items)), nil
}

func (f *fakeProfessionRepo) ExistsByID(db *gorm.DB, id uint) (bool, error) {
	_, ok := f.professions[id]
	return ok, nil
}

func (f *fakeProfessionRepo) Update(db *gorm.DB, profession *entity.Profession) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.professions[profession.ID] = profession
	return nil
}

func (f *fakeProfessionRepo) Delete(db *gorm.DB, id uint) (int64, error) {
	delete(f.professions, id)
	return f.deleted, nil
}

func TestProfessionUsecase_Create(t *testing.T) {
	repo := newFakeProfessionRepo()
	uc := NewProfessionUsecase(testDB(t), testLogger(), repo)

	resp, err := uc.Create(context.Background(), &dto.CreateProfessionRequest{Name: "Cardiologist"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ID == 0 || resp.Name != "Cardiologist" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestProfessionUsecase_Create_Duplicate(t *testing.T) {
	repo := newFakeProfessionRepo()
	repo.createErr = storage.ErrConflict
	uc := NewProfessionUsecase(testDB(t), testLogger(), repo)

	_, err := uc.Create(context.Background(), &dto.CreateProfessionRequest{Name: "Cardiologist"})

	var badRequestErr *BadRequestError
	if !errors.As(err, &badRequestErr) {
		t.Fatalf("error = %v, want BadRequestError", err)
	}
	if badRequestErr.Message != "There is already a profession with this name" {
		t.Errorf("unexpected message: %q", badRequestErr.Message)
	}
}

func TestProfessionUsecase_GetByID_NotFound(t *testing.T) {
	uc := NewProfessionUsecase(testDB(t), testLogger(), newFakeProfessionRepo())

	_, err := uc.GetByID(context.Background(), 999)

	var notFoundErr *NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
	if notFoundErr.Error() != "Profession with id: 999 not found" {
		t.Errorf("unexpected message: %q", notFoundErr.Error())
	}
}

func TestProfessionUsecase_GetList(t *testing.T) {
	repo := newFakeProfessionRepo()
	uc := NewProfessionUsecase(testDB(t), testLogger(), repo)

	if _, err := uc.Create(context.Background(), &dto.CreateProfessionRequest{Name: "Cardiologist"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	query, err := entity.NewListQuery("", "", 10, 0, entity.ProfessionOrderKeys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := uc.GetList(context.Background(), query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 1 || len(resp.Professions) != 1 {
		t.Fatalf("unexpected list: %+v", resp)
	}
	if resp.Professions[0].NumberOfSpecialists != 2 {
		t.Errorf("number_of_specialists = %d, want 2", resp.Professions[0].NumberOfSpecialists)
	}
}

func TestProfessionUsecase_Update_NotFound(t *testing.T) {
	uc := NewProfessionUsecase(testDB(t), testLogger(), newFakeProfessionRepo())

	_, err := uc.Update(context.Background(), 42, &dto.UpdateProfessionRequest{Name: "Surgeon"})

	var notFoundErr *NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
}

func TestProfessionUsecase_Delete_WriteFailed(t *testing.T) {
	repo := newFakeProfessionRepo()
	repo.professions[7] = &entity.Profession{ID: 7, Name: "Therapist"}
	repo.deleted = 0
	uc := NewProfessionUsecase(testDB(t), testLogger(), repo)

	err := uc.Delete(context.Background(), 7)

	var badRequestErr *BadRequestError
	if !errors.As(err, &badRequestErr) {
		t.Fatalf("error = %v, want BadRequestError", err)
	}
	if badRequestErr.Message != "Failed to delete a profession" {
		t.Errorf("unexpected message: %q", badRequestErr.Message)
	}
}
