package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
	"go-clinic-backend/internal/usecase"
	"go-clinic-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type fakeAppointmentUsecase struct {
	createResp *dto.AppointmentResponse
	createErr  error
	lastQuery  *entity.AppointmentListQuery
}

func (f *fakeAppointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return f.createResp, f.createErr
}

func (f *fakeAppointmentUsecase) GetByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	return f.createResp, f.createErr
}

func (f *fakeAppointmentUsecase) GetList(ctx context.Context, query *entity.AppointmentListQuery) (*dto.AppointmentListResponse, error) {
	f.lastQuery = query
	return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}}, nil
}

func (f *fakeAppointmentUsecase) Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return f.createResp, f.createErr
}

func (f *fakeAppointmentUsecase) Delete(ctx context.Context, id uint) error {
	return nil
}

func appointmentRouter(uc usecase.AppointmentUsecase) *mux.Router {
	h := NewAppointmentHandler(uc, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/appointments", h.GetList).Methods(http.MethodGet)
	r.HandleFunc("/appointments", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/appointments/{id}", h.Update).Methods(http.MethodPatch)
	return r
}

func appointmentBody(start, end time.Time) string {
	payload := map[string]interface{}{
		"start_time": start.Format(time.RFC3339),
		"end_time":   end.Format(time.RFC3339),
		"doctor_id":  1,
		"client_id":  1,
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

func TestAppointmentHandler_Create(t *testing.T) {
	uc := &fakeAppointmentUsecase{createResp: &dto.AppointmentResponse{ID: 1}}
	router := appointmentRouter(uc)

	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(appointmentBody(start, start.Add(time.Hour))))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
}

func TestAppointmentHandler_Create_StartInPast(t *testing.T) {
	router := appointmentRouter(&fakeAppointmentUsecase{})

	start := time.Now().Add(-24 * time.Hour).UTC().Truncate(time.Second)
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(appointmentBody(start, start.Add(time.Hour))))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	body := decodeResponse(t, rec)
	if body.Message != "Appointment must be scheduled in the future" {
		t.Errorf("unexpected message: %q", body.Message)
	}
}

func TestAppointmentHandler_Create_EndBeforeStart(t *testing.T) {
	router := appointmentRouter(&fakeAppointmentUsecase{})

	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(appointmentBody(start, start.Add(-time.Hour))))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	body := decodeResponse(t, rec)
	if body.Message != "Validation failed" {
		t.Errorf("unexpected message: %q", body.Message)
	}
}

func TestAppointmentHandler_Create_Conflict(t *testing.T) {
	uc := &fakeAppointmentUsecase{createErr: &usecase.BadRequestError{Message: "The doctor or client already has an appointment between 2026-09-01T10:00:00Z and 2026-09-01T11:00:00Z"}}
	router := appointmentRouter(uc)

	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(appointmentBody(start, start.Add(time.Hour))))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAppointmentHandler_GetList_Filters(t *testing.T) {
	uc := &fakeAppointmentUsecase{}
	router := appointmentRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/appointments?start_date=2026-09-01&end_date=2026-09-30&doctor_id=4&order=-start_time", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if uc.lastQuery == nil {
		t.Fatal("usecase was not called")
	}
	if uc.lastQuery.DoctorID != 4 || uc.lastQuery.Order != "-start_time" {
		t.Errorf("unexpected query: %+v", uc.lastQuery)
	}
	if uc.lastQuery.StartDate == nil || uc.lastQuery.StartDate.Format("2006-01-02") != "2026-09-01" {
		t.Errorf("unexpected start date: %v", uc.lastQuery.StartDate)
	}
}

func TestAppointmentHandler_GetList_BadDate(t *testing.T) {
	router := appointmentRouter(&fakeAppointmentUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/appointments?start_date=01.09.2026", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAppointmentHandler_Update_InvalidID(t *testing.T) {
	router := appointmentRouter(&fakeAppointmentUsecase{})

	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	target := fmt.Sprintf("/appointments/%s", "zero")
	req := httptest.NewRequest(http.MethodPatch, target, strings.NewReader(appointmentBody(start, start.Add(time.Hour))))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
