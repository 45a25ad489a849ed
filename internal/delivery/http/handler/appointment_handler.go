package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go-clinic-backend/internal/delivery/dto"
	"go-clinic-backend/internal/domain/entity"
	"go-clinic-backend/internal/usecase"
	"go-clinic-backend/pkg/response"
	"go-clinic-backend/pkg/validator"
)

const filterDateLayout = "2006-01-02"

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// checkWindow rejects appointment windows that start in the past. The
// start-before-end rule is enforced by the request validation tags.
func checkWindow(start time.Time) bool {
	return start.After(time.Now())
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if !checkWindow(req.StartTime) {
		response.BadRequest(w, "Appointment must be scheduled in the future")
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create an appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment id")
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get an appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) GetList(w http.ResponseWriter, r *http.Request) {
	query, err := parseAppointmentListQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	appointments, err := h.appointmentUsecase.GetList(r.Context(), query)
	if err != nil {
		writeError(w, err, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment id")
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if !checkWindow(req.StartTime) {
		response.BadRequest(w, "Appointment must be scheduled in the future")
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update an appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.BadRequest(w, "Invalid appointment id")
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete an appointment")
		return
	}

	response.NoContent(w)
}

// parseAppointmentListQuery reads the window and reference filters on top of
// the usual order/limit/offset parameters. Dates use the YYYY-MM-DD layout.
func parseAppointmentListQuery(r *http.Request) (*entity.AppointmentListQuery, error) {
	q := r.URL.Query()

	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	var startDate, endDate *time.Time
	if raw := q.Get("start_date"); raw != "" {
		parsed, err := time.Parse(filterDateLayout, raw)
		if err != nil {
			return nil, usecase.ErrInvalidDate
		}
		startDate = &parsed
	}
	if raw := q.Get("end_date"); raw != "" {
		parsed, err := time.Parse(filterDateLayout, raw)
		if err != nil {
			return nil, usecase.ErrInvalidDate
		}
		endDate = &parsed
	}

	doctorID, _ := strconv.ParseUint(q.Get("doctor_id"), 10, 32)
	clientID, _ := strconv.ParseUint(q.Get("client_id"), 10, 32)

	return entity.NewAppointmentListQuery(q.Get("order"), limit, offset, startDate, endDate, uint(doctorID), uint(clientID))
}
