package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	changeStatusHandler "github.com/klyszcz/salon-dayview/internal/api/handlers/change_status"
	getAppointmentActionsHandler "github.com/klyszcz/salon-dayview/internal/api/handlers/get_appointment_actions"
	getDayViewHandler "github.com/klyszcz/salon-dayview/internal/api/handlers/get_day_view"
	getEmployeesHandler "github.com/klyszcz/salon-dayview/internal/api/handlers/get_employees"
	refreshDayViewHandler "github.com/klyszcz/salon-dayview/internal/api/handlers/refresh_day_view"
	"github.com/klyszcz/salon-dayview/internal/api/middleware"
	"github.com/klyszcz/salon-dayview/internal/config"
	salonAPIClient "github.com/klyszcz/salon-dayview/internal/integrations/salonapi"
	dayviewService "github.com/klyszcz/salon-dayview/internal/service/dayview"
	statusflowService "github.com/klyszcz/salon-dayview/internal/service/statusflow"
	"github.com/klyszcz/salon-dayview/pkg/logger"
	"github.com/klyszcz/salon-dayview/pkg/metrics"
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

	log.Info("Starting salon-dayview service...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Grid window was validated by config.Load
	gridStart, _ := cfg.DayView.GridStartMinute()
	gridEnd, _ := cfg.DayView.GridEndMinute()

	// Initialize the salon API client
	var clientMetrics salonAPIClient.MetricsRecorder
	if metricsCollector != nil {
		clientMetrics = metricsCollector
	}
	salonClient := salonAPIClient.NewClient(
		cfg.SalonAPI.URL,
		time.Duration(cfg.SalonAPI.Timeout)*time.Second,
		cfg.SalonAPI.PageSize,
		log,
		clientMetrics,
	)
	log.Info("Salon API client initialized (url=%s, timeout=%ds, page_size=%d)",
		cfg.SalonAPI.URL, cfg.SalonAPI.Timeout, cfg.SalonAPI.PageSize)

	// Initialize services
	dayviewSvc := dayviewService.NewService(salonClient, gridStart, gridEnd, log)

	var statusMetrics statusflowService.MetricsRecorder
	if metricsCollector != nil {
		statusMetrics = metricsCollector
	}
	statusflowSvc := statusflowService.NewService(dayviewSvc, salonClient, statusMetrics, log)

	// Initialize handlers
	getDayView := getDayViewHandler.NewHandler(dayviewSvc, log)
	refreshDayView := refreshDayViewHandler.NewHandler(dayviewSvc, log)
	getAppointmentActions := getAppointmentActionsHandler.NewHandler(dayviewSvc, log)
	changeStatus := changeStatusHandler.NewHandler(statusflowSvc, log)
	getEmployees := getEmployeesHandler.NewHandler(salonClient, log)

	// Set up the router
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix; every route requires a resolved viewer identity
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// Day view
	api.HandleFunc("/dayview", getDayView.Handle).Methods(http.MethodGet)
	api.HandleFunc("/dayview/refresh", refreshDayView.Handle).Methods(http.MethodPost)

	// Appointment status actions
	api.HandleFunc("/appointments/{appointmentId}/actions",
		getAppointmentActions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}/status",
		changeStatus.Handle).Methods(http.MethodPost)

	// Employee columns
	api.HandleFunc("/employees", getEmployees.Handle).Methods(http.MethodGet)

	// Create the HTTP server
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
