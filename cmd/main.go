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

	cancelBookingLineHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/cancel_booking_line"
	checkAvailabilityHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/check_availability"
	createBookingLineHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/create_booking_line"
	getBookingLineHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_booking_line"
	getCalendarBoundsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_calendar_bounds"
	getPractitionerBookingLinesHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_practitioner_booking_lines"
	rescheduleBookingLineHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/reschedule_booking_line"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	bookingLineRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking_line"
	clinicRegistryClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/clinicregistry"
	"github.com/m04kA/SMC-ScheduleService/internal/scheduling/calendar"
	bookingLinesService "github.com/m04kA/SMC-ScheduleService/internal/service/booking_lines"
	checkAvailabilityUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/check_availability"
	createBookingLineUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking_line"
	getCalendarBoundsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_calendar_bounds"
	rescheduleBookingLineUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/reschedule_booking_line"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("SCHEDULE_CONFIG"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ScheduleService...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики (nil, если выключены: все потребители это допускают)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Клиент бэкенда клиники
	registryClient := clinicRegistryClient.NewClient(
		cfg.ClinicRegistry.URL,
		time.Duration(cfg.ClinicRegistry.Timeout)*time.Second,
		log,
	)
	log.Info("Clinic registry client initialized (url=%s, timeout=%ds)",
		cfg.ClinicRegistry.URL, cfg.ClinicRegistry.Timeout)

	// Репозитории и сервисы
	lineRepository := bookingLineRepo.NewRepository(wrappedDB)
	lineSvc := bookingLinesService.NewService(lineRepository, txMgr, log)

	// Use cases
	createBookingLineUseCase := createBookingLineUC.NewUseCase(
		lineRepository,
		registryClient,
		txMgr,
		metricsCollector,
		log,
	)
	rescheduleBookingLineUseCase := rescheduleBookingLineUC.NewUseCase(
		lineRepository,
		txMgr,
		metricsCollector,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(lineRepository, metricsCollector, log)
	getCalendarBoundsUseCase := getCalendarBoundsUC.NewUseCase(calendar.Options{
		YearSpan:   cfg.Scheduling.YearSpan,
		MinuteStep: cfg.Scheduling.MinuteStep,
	})

	// Handlers
	getCalendarBounds := getCalendarBoundsHandler.NewHandler(getCalendarBoundsUseCase)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBookingLine := createBookingLineHandler.NewHandler(createBookingLineUseCase, log)
	rescheduleBookingLine := rescheduleBookingLineHandler.NewHandler(rescheduleBookingLineUseCase, log)
	getBookingLine := getBookingLineHandler.NewHandler(lineSvc, log)
	cancelBookingLine := cancelBookingLineHandler.NewHandler(lineSvc, log)
	getPractitionerBookingLines := getPractitionerBookingLinesHandler.NewHandler(lineSvc, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(metricsCollector.Registry, promhttp.HandlerOpts{})).
			Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		trustedProxies, err := middleware.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
		if err != nil {
			log.Fatal("Invalid rate_limit.trusted_proxies: %v", err)
		}
		rateLimiter := middleware.NewRateLimiter(
			cfg.RateLimit.RPS,
			cfg.RateLimit.Burst,
			log,
			middleware.WithTrustedProxies(trustedProxies),
			middleware.WithIdleTTL(time.Duration(cfg.RateLimit.IdleTTL)*time.Second),
		)
		api.Use(rateLimiter.Middleware)
		log.Info("Rate limit enabled (rps=%.1f, burst=%d, trusted_proxies=%d)",
			cfg.RateLimit.RPS, cfg.RateLimit.Burst, len(trustedProxies))
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Допустимые значения пикера даты-времени
	api.HandleFunc("/calendar/bounds", getCalendarBounds.Handle).Methods(http.MethodGet)

	// Проверка занятости специалиста
	api.HandleFunc("/availability/check", checkAvailability.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/booking-lines", createBookingLine.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/booking-lines/{lineId}", getBookingLine.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/booking-lines/{lineId}/schedule", rescheduleBookingLine.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/booking-lines/{lineId}/cancel", cancelBookingLine.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/practitioners/{practitionerId}/booking-lines", getPractitionerBookingLines.Handle).
		Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	close(stopMetricsCh)

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
