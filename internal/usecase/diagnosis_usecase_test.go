package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"

	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type fakeDiagnosisRepo struct {
	diagnoses map[uint]*entity.Diagnosis
	links     map[uint][]uint
	nextID    uint
	deleted   int64
}

func newFakeDiagnosisRepo() *fakeDiagnosisRepo {
	return &fakeDiagnosisRepo{
		diagnoses: map[uint]*entity.Diagnosis{},
		links:     map[uint][]uint{},
		nextID:    1,
		deleted:   1,
	}
}

func (f *fakeDiagnosisRepo) Create(db *gorm.DB, diagnosis *entity.Diagnosis) error {
	diagnosis.ID = f.nextID
	f.nextID++
	f.diagnoses[diagnosis.ID] = diagnosis
	return nil
}

func (f *fakeDiagnosisRepo) FindByID(db *gorm.DB, id uint) (*entity.Diagnosis, error) {
	diagnosis, ok := f.diagnoses[id]
	if !ok {
		return nil, nil
	}
	clone := *diagnosis
	clone.Diseases = nil
	for _, diseaseID := range f.links[id] {
		clone.Diseases = append(clone.Diseases, entity.Disease{ID: diseaseID})
	}
	return &clone, nil
}

func (f *fakeDiagnosisRepo) FindAll(db *gorm.DB, query *entity.ListQuery) ([]entity.Diagnosis, int64, error) {
	items := make([]entity.Diagnosis, 0, len(f.diagnoses))
	for _, d := range f.diagnoses {
		items = append(items, *d)
	}
	return items, int64(len(items)), nil
}

func (f *fakeDiagnosisRepo) Update(db *gorm.DB, diagnosis *entity.Diagnosis) error {
	f.diagnoses[diagnosis.ID] = diagnosis
	return nil
}

func (f *fakeDiagnosisRepo) Delete(db *gorm.DB, id uint) (int64, error) {
	delete(f.diagnoses, id)
	return f.deleted, nil
}

func (f *fakeDiagnosisRepo) AddDisease(db *gorm.DB, diagnosisID, diseaseID uint) error {
	for _, linked := range f.links[diagnosisID] {
		if linked == diseaseID {
			return nil
		}
	}
	f.links[diagnosisID] = append(f.links[diagnosisID], diseaseID)
	return nil
}

func (f *fakeDiagnosisRepo) ClearDiseases(db *gorm.DB, diagnosisID uint) error {
	delete(f.links, diagnosisID)
	return nil
}

func diagnosisFixture(t *testing.T) (DiagnosisUsecase, *fakeDiagnosisRepo) {
	t.Helper()

	doctorRepo := newFakeDoctorRepo()
	doctorRepo.doctors[1] = &entity.Doctor{ID: 1, FirstName: "Anna"}

	clientRepo := newFakeClientRepo()
	clientRepo.clients[1] = &entity.Client{ID: 1, FirstName: "Carl"}

	diseaseRepo := newFakeDiseaseRepo()
	diseaseRepo.diseases[1] = &entity.Disease{ID: 1, Name: "Influenza"}
	diseaseRepo.diseases[2] = &entity.Disease{ID: 2, Name: "Bronchitis"}

	diagnosisRepo := newFakeDiagnosisRepo()
	uc := NewDiagnosisUsecase(testDB(t), testLogger(), diagnosisRepo, diseaseRepo, doctorRepo, clientRepo)
	return uc, diagnosisRepo
}

func linkedDiseaseIDs(resp *dto.DiagnosisResponse) []uint {
	ids := make([]uint, len(resp.Diseases))
	for i, d := range resp.Diseases {
		ids[i] = d.ID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func TestDiagnosisUsecase_Create_LinksDiseases(t *testing.T) {
	uc, _ := diagnosisFixture(t)

	resp, err := uc.Create(context.Background(), &dto.CreateDiagnosisRequest{
		Name:       "Acute respiratory infection",
		ClientID:   1,
		DoctorID:   1,
		DiseaseIDs: []uint{1, 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != "active" {
		t.Errorf("status = %q, want %q", resp.Status, "active")
	}

	ids := linkedDiseaseIDs(resp)
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("linked diseases = %v, want [1 2]", ids)
	}
}

func TestDiagnosisUsecase_Create_MissingDisease(t *testing.T) {
	uc, _ := diagnosisFixture(t)

	_, err := uc.Create(context.Background(), &dto.CreateDiagnosisRequest{
		Name:       "Acute respiratory infection",
		ClientID:   1,
		DoctorID:   1,
		DiseaseIDs: []uint{1, 77},
	})

	var notFoundErr *NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
	if notFoundErr.Error() != "Disease with id: 77 not found" {
		t.Errorf("unexpected message: %q", notFoundErr.Error())
	}
}

func TestDiagnosisUsecase_Update_ReplacesDiseases(t *testing.T) {
	uc, repo := diagnosisFixture(t)

	created, err := uc.Create(context.Background(), &dto.CreateDiagnosisRequest{
		Name:       "Acute respiratory infection",
		ClientID:   1,
		DoctorID:   1,
		DiseaseIDs: []uint{1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := uc.Update(context.Background(), created.ID, &dto.UpdateDiagnosisRequest{
		Name:       "Acute respiratory infection",
		Status:     "closed",
		ClientID:   1,
		DoctorID:   1,
		DiseaseIDs: []uint{2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != "closed" {
		t.Errorf("status = %q, want %q", resp.Status, "closed")
	}

	ids := linkedDiseaseIDs(resp)
	if len(ids) != 1 || ids[0] != 2 {
		t.Errorf("linked diseases = %v, want [2]", ids)
	}
	if len(repo.links[created.ID]) != 1 {
		t.Errorf("stored links = %v, want single entry", repo.links[created.ID])
	}
}

func TestDiagnosisUsecase_Delete_ClearsLinks(t *testing.T) {
	uc, repo := diagnosisFixture(t)

	created, err := uc.Create(context.Background(), &dto.CreateDiagnosisRequest{
		Name:       "Acute respiratory infection",
		ClientID:   1,
		DoctorID:   1,
		DiseaseIDs: []uint{1, 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.links[created.ID]) != 0 {
		t.Errorf("stored links = %v, want none", repo.links[created.ID])
	}
	if _, ok := repo.diagnoses[created.ID]; ok {
		t.Error("diagnosis row still present after delete")
	}
}
