package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type fakeAppointmentRepo struct {
	appointments map[uint]*entity.Appointment
	nextID       uint
	deleted      int64
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: map[uint]*entity.Appointment{}, nextID: 1, deleted: 1}
}

func (f *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	appointment.ID = f.nextID
	f.nextID++
	f.appointments[appointment.ID] = appointment
	return nil
}

func (f *fakeAppointmentRepo) FindByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	return f.appointments[id], nil
}

func (f *fakeAppointmentRepo) FindDetailByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	return f.appointments[id], nil
}

func (f *fakeAppointmentRepo) FindAll(db *gorm.DB, query *entity.AppointmentListQuery) ([]entity.Appointment, int64, error) {
	items := make([]entity.Appointment, 0, len(f.appointments))
	for _, a := range f.appointments {
		items = append(items, *a)
	}
	return items, int64(len(items)), nil
}

func (f *fakeAppointmentRepo) FindOverlapping(db *gorm.DB, doctorID, clientID uint, start, end time.Time, excludeID uint) (*entity.Appointment, error) {
	for _, a := range f.appointments {
		if excludeID != 0 && a.ID == excludeID {
			continue
		}
		sameDoctor := a.DoctorID != nil && *a.DoctorID == doctorID
		sameClient := a.ClientID != nil && *a.ClientID == clientID
		if (sameDoctor || sameClient) && a.Overlaps(start, end) {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) Update(db *gorm.DB, appointment *entity.Appointment) error {
	f.appointments[appointment.ID] = appointment
	return nil
}

func (f *fakeAppointmentRepo) Delete(db *gorm.DB, id uint) (int64, error) {
	delete(f.appointments, id)
	return f.deleted, nil
}

func appointmentFixture(t *testing.T) (AppointmentUsecase, *fakeAppointmentRepo) {
	t.Helper()

	doctorRepo := newFakeDoctorRepo()
	doctorRepo.doctors[1] = &entity.Doctor{ID: 1, FirstName: "Anna"}
	doctorRepo.doctors[2] = &entity.Doctor{ID: 2, FirstName: "Boris"}

	clientRepo := newFakeClientRepo()
	clientRepo.clients[1] = &entity.Client{ID: 1, FirstName: "Carl"}
	clientRepo.clients[2] = &entity.Client{ID: 2, FirstName: "Dina"}

	appointmentRepo := newFakeAppointmentRepo()
	return NewAppointmentUsecase(testDB(t), testLogger(), appointmentRepo, doctorRepo, clientRepo), appointmentRepo
}

func mustCreateAppointment(t *testing.T, uc AppointmentUsecase, doctorID, clientID uint, start, end time.Time) *dto.AppointmentResponse {
	t.Helper()
	resp, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		StartTime: start,
		EndTime:   end,
		DoctorID:  doctorID,
		ClientID:  clientID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return resp
}

func TestAppointmentUsecase_Create(t *testing.T) {
	uc, _ := appointmentFixture(t)

	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	resp := mustCreateAppointment(t, uc, 1, 1, base, base.Add(time.Hour))

	if resp.ID == 0 {
		t.Error("expected assigned id")
	}
	if resp.DoctorID == nil || *resp.DoctorID != 1 {
		t.Errorf("unexpected doctor id: %v", resp.DoctorID)
	}
}

func TestAppointmentUsecase_Create_MissingDoctor(t *testing.T) {
	uc, _ := appointmentFixture(t)

	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		StartTime: base,
		EndTime:   base.Add(time.Hour),
		DoctorID:  99,
		ClientID:  1,
	})

	var notFoundErr *NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
	if notFoundErr.Error() != "Doctor with id: 99 not found" {
		t.Errorf("unexpected message: %q", notFoundErr.Error())
	}
}

func TestAppointmentUsecase_Create_Conflict(t *testing.T) {
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		doctorID uint
		clientID uint
		start    time.Time
		end      time.Time
		wantErr  bool
	}{
		{"same doctor identical window", 1, 2, base, base.Add(time.Hour), true},
		{"same doctor contained window", 1, 2, base.Add(15 * time.Minute), base.Add(30 * time.Minute), true},
		{"same client overlapping window", 2, 1, base.Add(30 * time.Minute), base.Add(90 * time.Minute), true},
		{"same doctor adjacent window", 1, 2, base.Add(time.Hour), base.Add(2 * time.Hour), false},
		{"different doctor and client", 2, 2, base, base.Add(time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := appointmentFixture(t)
			mustCreateAppointment(t, uc, 1, 1, base, base.Add(time.Hour))

			_, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
				StartTime: tc.start,
				EndTime:   tc.end,
				DoctorID:  tc.doctorID,
				ClientID:  tc.clientID,
			})

			var badRequestErr *BadRequestError
			if tc.wantErr {
				if !errors.As(err, &badRequestErr) {
					t.Fatalf("error = %v, want BadRequestError", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestAppointmentUsecase_Update_ExcludesOwnWindow(t *testing.T) {
	uc, _ := appointmentFixture(t)

	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	created := mustCreateAppointment(t, uc, 1, 1, base, base.Add(time.Hour))

	// Shifting the same appointment within its own window must not
	// count as a conflict with itself.
	resp, err := uc.Update(context.Background(), created.ID, &dto.UpdateAppointmentRequest{
		StartTime: base.Add(15 * time.Minute),
		EndTime:   base.Add(45 * time.Minute),
		DoctorID:  1,
		ClientID:  1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.StartTime.Equal(base.Add(15 * time.Minute)) {
		t.Errorf("start_time = %v, want %v", resp.StartTime, base.Add(15*time.Minute))
	}
}

func TestAppointmentUsecase_Update_Conflict(t *testing.T) {
	uc, _ := appointmentFixture(t)

	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	mustCreateAppointment(t, uc, 1, 1, base, base.Add(time.Hour))
	second := mustCreateAppointment(t, uc, 2, 2, base, base.Add(time.Hour))

	_, err := uc.Update(context.Background(), second.ID, &dto.UpdateAppointmentRequest{
		StartTime: base.Add(30 * time.Minute),
		EndTime:   base.Add(90 * time.Minute),
		DoctorID:  1,
		ClientID:  2,
	})

	var badRequestErr *BadRequestError
	if !errors.As(err, &badRequestErr) {
		t.Fatalf("error = %v, want BadRequestError", err)
	}
}

func TestAppointmentUsecase_Delete_NotFound(t *testing.T) {
	uc, _ := appointmentFixture(t)

	err := uc.Delete(context.Background(), 12)

	var notFoundErr *NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
}
