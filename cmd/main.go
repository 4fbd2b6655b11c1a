package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/elegantcut/booking-service/internal/api/handlers/cancel_reservation"
	getAvailableSlotsHandler "github.com/elegantcut/booking-service/internal/api/handlers/get_available_slots"
	getReservationHandler "github.com/elegantcut/booking-service/internal/api/handlers/get_reservation"
	getSessionHandler "github.com/elegantcut/booking-service/internal/api/handlers/get_session"
	listServicesHandler "github.com/elegantcut/booking-service/internal/api/handlers/list_services"
	listStaffHandler "github.com/elegantcut/booking-service/internal/api/handlers/list_staff"
	navigateSessionHandler "github.com/elegantcut/booking-service/internal/api/handlers/navigate_session"
	resetSessionHandler "github.com/elegantcut/booking-service/internal/api/handlers/reset_session"
	startSessionHandler "github.com/elegantcut/booking-service/internal/api/handlers/start_session"
	submitBookingHandler "github.com/elegantcut/booking-service/internal/api/handlers/submit_booking"
	updateSelectionHandler "github.com/elegantcut/booking-service/internal/api/handlers/update_selection"
	"github.com/elegantcut/booking-service/internal/api/middleware"
	"github.com/elegantcut/booking-service/internal/catalog"
	"github.com/elegantcut/booking-service/internal/config"
	reservationRepo "github.com/elegantcut/booking-service/internal/infra/storage/reservation"
	"github.com/elegantcut/booking-service/internal/integrations/mailer"
	housekeepingService "github.com/elegantcut/booking-service/internal/service/housekeeping"
	reservationsService "github.com/elegantcut/booking-service/internal/service/reservations"
	sessionsService "github.com/elegantcut/booking-service/internal/service/sessions"
	getAvailableSlotsUC "github.com/elegantcut/booking-service/internal/usecase/get_available_slots"
	submitBookingUC "github.com/elegantcut/booking-service/internal/usecase/submit_booking"
	"github.com/elegantcut/booking-service/pkg/logger"
	"github.com/elegantcut/booking-service/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Elegant Cutz booking service...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories and integrations
	reservationRepository := reservationRepo.NewRepository(db)
	mailClient := mailer.NewClient(cfg.Mailer.APIKey, cfg.Mailer.FromEmail, cfg.Mailer.FromName, log)
	if cfg.Mailer.APIKey == "" {
		log.Warn("Mailer API key is empty, confirmation emails are disabled")
	}

	catalogProvider := catalog.Provider{}
	timeProvider := &getAvailableSlotsUC.RealTimeProvider{}

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		catalogProvider,
		log,
	)
	submitBookingUseCase := submitBookingUC.NewUseCase(
		reservationRepository,
		mailClient,
		log,
	)

	// Services
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	sessionSvc := sessionsService.NewService(
		getAvailableSlotsUseCase,
		submitBookingUseCase,
		catalogProvider,
		timeProvider,
		log,
		time.Duration(cfg.Sessions.TTLMinutes)*time.Minute,
	)

	// Housekeeping jobs
	housekeepingSvc := housekeepingService.NewService(
		reservationRepository,
		sessionSvc,
		timeProvider,
		log,
		cfg.Housekeeping.Schedule,
	)
	if err := housekeepingSvc.Start(); err != nil {
		log.Fatal("Failed to start housekeeping: %v", err)
	}
	defer housekeepingSvc.Stop()

	// Handlers
	listServices := listServicesHandler.NewHandler(catalogProvider, log)
	listStaff := listStaffHandler.NewHandler(catalogProvider, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	startSession := startSessionHandler.NewHandler(sessionSvc, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	updateSelection := updateSelectionHandler.NewHandler(sessionSvc, log)
	navigateSession := navigateSessionHandler.NewHandler(sessionSvc, log)
	resetSession := resetSessionHandler.NewHandler(sessionSvc, log)
	submitBooking := submitBookingHandler.NewHandler(sessionSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Catalog
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff", listStaff.Handle).Methods(http.MethodGet)

	// Availability
	api.HandleFunc("/staff/{staffId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Booking sessions
	api.HandleFunc("/sessions", startSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/selection", updateSelection.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{sessionId}/navigate", navigateSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/reset", resetSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/submit", submitBooking.Handle).Methods(http.MethodPost)

	// Reservations
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
