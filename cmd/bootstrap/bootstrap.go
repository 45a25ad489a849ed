package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-clinic-backend/config"
	deliveryHttp "go-clinic-backend/internal/delivery/http"
	"go-clinic-backend/internal/delivery/http/handler"
	"go-clinic-backend/internal/delivery/http/middleware"
	"go-clinic-backend/internal/infrastructure/database"
	"go-clinic-backend/internal/repository"
	"go-clinic-backend/internal/usecase"
	"go-clinic-backend/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	DB     *gorm.DB
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply schema migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize all layers
	app.Server = initializeServer(cfg, db)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	professionRepo := repository.NewProfessionRepository()
	doctorRepo := repository.NewDoctorRepository()
	clientRepo := repository.NewClientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	categoryRepo := repository.NewCategoryDiseaseRepository()
	diseaseRepo := repository.NewDiseaseRepository()
	diagnosisRepo := repository.NewDiagnosisRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	professionUsecase := usecase.NewProfessionUsecase(db, log, professionRepo)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, professionRepo)
	clientUsecase := usecase.NewClientUsecase(db, log, clientRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, doctorRepo, clientRepo)
	categoryUsecase := usecase.NewCategoryDiseaseUsecase(db, log, categoryRepo)
	diseaseUsecase := usecase.NewDiseaseUsecase(db, log, diseaseRepo, categoryRepo)
	diagnosisUsecase := usecase.NewDiagnosisUsecase(db, log, diagnosisRepo, diseaseRepo, doctorRepo, clientRepo)

	// Initialize handlers
	professionHandler := handler.NewProfessionHandler(professionUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	clientHandler := handler.NewClientHandler(clientUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	categoryHandler := handler.NewCategoryDiseaseHandler(categoryUsecase, customValidator)
	diseaseHandler := handler.NewDiseaseHandler(diseaseUsecase, customValidator)
	diagnosisHandler := handler.NewDiagnosisHandler(diagnosisUsecase, customValidator)

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		professionHandler,
		doctorHandler,
		clientHandler,
		appointmentHandler,
		categoryHandler,
		diseaseHandler,
		diagnosisHandler,
		loggingMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
