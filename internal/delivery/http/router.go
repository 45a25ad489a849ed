package http

import (
	"net/http"

	"go-clinic-backend/internal/delivery/http/handler"
	"go-clinic-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	professionHandler  *handler.ProfessionHandler
	doctorHandler      *handler.DoctorHandler
	clientHandler      *handler.ClientHandler
	appointmentHandler *handler.AppointmentHandler
	categoryHandler    *handler.CategoryDiseaseHandler
	diseaseHandler     *handler.DiseaseHandler
	diagnosisHandler   *handler.DiagnosisHandler
	loggingMiddleware  *middleware.LoggingMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	professionHandler *handler.ProfessionHandler,
	doctorHandler *handler.DoctorHandler,
	clientHandler *handler.ClientHandler,
	appointmentHandler *handler.AppointmentHandler,
	categoryHandler *handler.CategoryDiseaseHandler,
	diseaseHandler *handler.DiseaseHandler,
	diagnosisHandler *handler.DiagnosisHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		professionHandler:  professionHandler,
		doctorHandler:      doctorHandler,
		clientHandler:      clientHandler,
		appointmentHandler: appointmentHandler,
		categoryHandler:    categoryHandler,
		diseaseHandler:     diseaseHandler,
		diagnosisHandler:   diagnosisHandler,
		loggingMiddleware:  loggingMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

// resource wires the uniform five routes for a CRUD handler.
type resource interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetList(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

func registerResource(api *mux.Router, path string, h resource) {
	api.HandleFunc("/"+path, h.GetList).Methods(http.MethodGet)
	api.HandleFunc("/"+path, h.Create).Methods(http.MethodPost)
	api.HandleFunc("/"+path+"/{id}", h.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/"+path+"/{id}", h.Update).Methods(http.MethodPatch)
	api.HandleFunc("/"+path+"/{id}", h.Delete).Methods(http.MethodDelete)
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	registerResource(api, "professions", r.professionHandler)
	registerResource(api, "doctors", r.doctorHandler)
	registerResource(api, "clients", r.clientHandler)
	registerResource(api, "appointments", r.appointmentHandler)
	registerResource(api, "categories-disease", r.categoryHandler)
	registerResource(api, "diseases", r.diseaseHandler)
	registerResource(api, "diagnoses", r.diagnosisHandler)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
