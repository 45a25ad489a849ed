package handler

import (
	"errors"
	"net/http"
	"strconv"

	"go-clinic-backend/internal/domain/entity"
	"go-clinic-backend/internal/usecase"
	"go-clinic-backend/pkg/response"

	"github.com/gorilla/mux"
)

// parseID extracts the {id} path variable as a positive integer.
func parseID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// parseListQuery reads search/order/limit/offset query parameters and
// validates the order key against the entity's allowed set.
func parseListQuery(r *http.Request, orderKeys []string) (*entity.ListQuery, error) {
	q := r.URL.Query()

	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	return entity.NewListQuery(q.Get("search"), q.Get("order"), limit, offset, orderKeys)
}

// writeError translates a usecase error into an HTTP response.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var notFoundErr *usecase.NotFoundError
	if errors.As(err, &notFoundErr) {
		response.NotFound(w, notFoundErr.Error())
		return
	}

	var badRequestErr *usecase.BadRequestError
	if errors.As(err, &badRequestErr) {
		response.BadRequest(w, badRequestErr.Error())
		return
	}

	if errors.Is(err, usecase.ErrInvalidDate) {
		response.BadRequest(w, err.Error())
		return
	}

	response.InternalServerError(w, fallback)
}
