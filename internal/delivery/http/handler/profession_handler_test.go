package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
	"go-clinic-backend/internal/usecase"
	"go-clinic-backend/pkg/response"
	"go-clinic-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type fakeProfessionUsecase struct {
	createResp *dto.ProfessionResponse
	createErr  error
	getResp    *dto.ProfessionResponse
	getErr     error
	listResp   *dto.ProfessionListResponse
	deleteErr  error
}

func (f *fakeProfessionUsecase) Create(ctx context.Context, req *dto.CreateProfessionRequest) (*dto.ProfessionResponse, error) {
	return f.createResp, f.createErr
}

func (f *fakeProfessionUsecase) GetByID(ctx context.Context, id uint) (*dto.ProfessionResponse, error) {
	return f.getResp, f.getErr
}

func (f *fakeProfessionUsecase) GetList(ctx context.Context, query *entity.ListQuery) (*dto.ProfessionListResponse, error) {
	return f.listResp, nil
}

func (f *fakeProfessionUsecase) Update(ctx context.Context, id uint, req *dto.UpdateProfessionRequest) (*dto.ProfessionResponse, error) {
	return f.createResp, f.createErr
}

func (f *fakeProfessionUsecase) Delete(ctx context.Context, id uint) error {
	return f.deleteErr
}

func professionRouter(uc usecase.ProfessionUsecase) *mux.Router {
	h := NewProfessionHandler(uc, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/professions", h.GetList).Methods(http.MethodGet)
	r.HandleFunc("/professions", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/professions/{id}", h.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/professions/{id}", h.Delete).Methods(http.MethodDelete)
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body
}

func TestProfessionHandler_Create(t *testing.T) {
	uc := &fakeProfessionUsecase{createResp: &dto.ProfessionResponse{ID: 1, Name: "Cardiologist"}}
	router := professionRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/professions", strings.NewReader(`{"name":"Cardiologist"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	body := decodeResponse(t, rec)
	if !body.Success {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestProfessionHandler_Create_InvalidBody(t *testing.T) {
	router := professionRouter(&fakeProfessionUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/professions", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestProfessionHandler_Create_ValidationFailed(t *testing.T) {
	router := professionRouter(&fakeProfessionUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/professions", strings.NewReader(`{"name":""}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	body := decodeResponse(t, rec)
	if body.Message != "Validation failed" {
		t.Errorf("message = %q, want %q", body.Message, "Validation failed")
	}
}

func TestProfessionHandler_Create_Duplicate(t *testing.T) {
	uc := &fakeProfessionUsecase{createErr: &usecase.BadRequestError{Message: "There is already a profession with this name"}}
	router := professionRouter(uc)

	req := httptest.NewRequest(http.MethodPost, "/professions", strings.NewReader(`{"name":"Cardiologist"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	body := decodeResponse(t, rec)
	if body.Message != "There is already a profession with this name" {
		t.Errorf("unexpected message: %q", body.Message)
	}
}

func TestProfessionHandler_GetByID_NotFound(t *testing.T) {
	uc := &fakeProfessionUsecase{getErr: &usecase.NotFoundError{Resource: "Profession", ID: 999}}
	router := professionRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/professions/999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	body := decodeResponse(t, rec)
	if body.Message != "Profession with id: 999 not found" {
		t.Errorf("unexpected message: %q", body.Message)
	}
}

func TestProfessionHandler_GetByID_InvalidID(t *testing.T) {
	router := professionRouter(&fakeProfessionUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/professions/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestProfessionHandler_GetList_UnknownOrderKey(t *testing.T) {
	uc := &fakeProfessionUsecase{listResp: &dto.ProfessionListResponse{}}
	router := professionRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/professions?order=salary", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestProfessionHandler_Delete(t *testing.T) {
	router := professionRouter(&fakeProfessionUsecase{})

	req := httptest.NewRequest(http.MethodDelete, "/professions/3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}
