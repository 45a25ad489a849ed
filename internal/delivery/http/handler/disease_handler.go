package handler

import (
	"encoding/json"
	"net/http"

	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
	"go-clinic-backend/internal/usecase"
	"go-clinic-backend/pkg/response"
	"go-clinic-backend/pkg/validator"
)

type DiseaseHandler struct {
	diseaseUsecase usecase.DiseaseUsecase
	validator      *validator.CustomValidator
}

func NewDiseaseHandler(diseaseUsecase usecase.DiseaseUsecase, validator *validator.CustomValidator) *DiseaseHandler {
	return &DiseaseHandler{
		diseaseUsecase: diseaseUsecase,
		validator:      validator,
	}
}

func (h *DiseaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDiseaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	disease, err := h.diseaseUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create a disease")
		return
	}

	response.Success(w, http.StatusCreated, "Disease created successfully", disease)
}

func (h *DiseaseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid disease id")
		return
	}

	disease, err := h.diseaseUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get a disease")
		return
	}

	response.Success(w, http.StatusOK, "Disease retrieved successfully", disease)
}

func (h *DiseaseHandler) GetList(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r, entity.DiseaseOrderKeys)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	diseases, err := h.diseaseUsecase.GetList(r.Context(), query)
	if err != nil {
		writeError(w, err, "Failed to list diseases")
		return
	}

	response.Success(w, http.StatusOK, "Diseases retrieved successfully", diseases)
}

func (h *DiseaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid disease id")
		return
	}

	var req dto.UpdateDiseaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	disease, err := h.diseaseUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update a disease")
		return
	}

	response.Success(w, http.StatusOK, "Disease updated successfully", disease)
}

func (h *DiseaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid disease id")
		return
	}

	if err := h.diseaseUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete a disease")
		return
	}

	response.NoContent(w)
}
