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

type ProfessionHandler struct {
	professionUsecase usecase.ProfessionUsecase
	validator         *validator.CustomValidator
}

func NewProfessionHandler(professionUsecase usecase.ProfessionUsecase, validator *validator.CustomValidator) *ProfessionHandler {
	return &ProfessionHandler{
		professionUsecase: professionUsecase,
		validator:         validator,
	}
}

func (h *ProfessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProfessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profession, err := h.professionUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create a profession")
		return
	}

	response.Success(w, http.StatusCreated, "Profession created successfully", profession)
}

func (h *ProfessionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid profession id")
		return
	}

	profession, err := h.professionUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get a profession")
		return
	}

	response.Success(w, http.StatusOK, "Profession retrieved successfully", profession)
}

func (h *ProfessionHandler) GetList(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r, entity.ProfessionOrderKeys)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	professions, err := h.professionUsecase.GetList(r.Context(), query)
	if err != nil {
		writeError(w, err, "Failed to list professions")
		return
	}

	response.Success(w, http.StatusOK, "Professions retrieved successfully", professions)
}

func (h *ProfessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid profession id")
		return
	}

	var req dto.UpdateProfessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profession, err := h.professionUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update a profession")
		return
	}

	response.Success(w, http.StatusOK, "Profession updated successfully", profession)
}

func (h *ProfessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid profession id")
		return
	}

	if err := h.professionUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete a profession")
		return
	}

	response.NoContent(w)
}
