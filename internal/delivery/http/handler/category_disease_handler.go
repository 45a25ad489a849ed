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

type CategoryDiseaseHandler struct {
	categoryUsecase usecase.CategoryDiseaseUsecase
	validator       *validator.CustomValidator
}

func NewCategoryDiseaseHandler(categoryUsecase usecase.CategoryDiseaseUsecase, validator *validator.CustomValidator) *CategoryDiseaseHandler {
	return &CategoryDiseaseHandler{
		categoryUsecase: categoryUsecase,
		validator:       validator,
	}
}

func (h *CategoryDiseaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryDiseaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	category, err := h.categoryUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create a category of disease")
		return
	}

	response.Success(w, http.StatusCreated, "Category created successfully", category)
}

func (h *CategoryDiseaseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid category id")
		return
	}

	category, err := h.categoryUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get a category of disease")
		return
	}

	response.Success(w, http.StatusOK, "Category retrieved successfully", category)
}

func (h *CategoryDiseaseHandler) GetList(w http.ResponseWriter, r *http.Request) {
	query, err := parseListQuery(r, entity.CategoryOrderKeys)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	categories, err := h.categoryUsecase.GetList(r.Context(), query)
	if err != nil {
		writeError(w, err, "Failed to list categories of disease")
		return
	}

	response.Success(w, http.StatusOK, "Categories retrieved successfully", categories)
}

func (h *CategoryDiseaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid category id")
		return
	}

	var req dto.UpdateCategoryDiseaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	category, err := h.categoryUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update a category of disease")
		return
	}

	response.Success(w, http.StatusOK, "Category updated successfully", category)
}

func (h *CategoryDiseaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid category id")
		return
	}

	if err := h.categoryUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete a category of disease")
		return
	}

	response.NoContent(w)
}
