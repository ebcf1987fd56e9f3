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

	addWaitingEntryHandler "github.com/m04kA/SMC-VetClinicService/internal/api/handlers/add_waiting_entry"
	cancelAppointmentHandler "github.com/m04kA/SMC-VetClinicService/internal/api/handlers/cancel_appointment"
	cancelWaitingEntryHandler "github.com/m04kA/SMC-VetClinicService/internal/api/handlers/cancel_waiting_entry"
	changeAppointmentStatusHandler "github.com/m04kA/SMC-VetClinicService/internal/api/handlers/change_appointment_status"
	completeConsultationHandler "github.com/m04kA/SMC-VetClinicService/internal/api/handlers/complete_consultation"
	createAppointmentHandler "github.com/m04kA/SMC-VetClinicService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/SMC-VetClinicService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-VetClinicService/internal/api/handlers/get_appointment"
	getEmployeeAvailabilityHandler "github.com/m04kA/SMC-VetClinicService/internal/api/handlers/get_employee_availability"
	getWaitingEntryHandler "github.com/m04kA/SMC-VetClinicService/internal/api/handlers/get_waiting_entry"
	getWaitingQueueHandler "github.com/m04kA/SMC-VetClinicService/internal/api/handlers/get_waiting_queue"
	getWaitingStatisticsHandler "github.com/m04kA/SMC-VetClinicService/internal/api/handlers/get_waiting_statistics"
	listAppointmentsHandler "github.com/m04kA/SMC-VetClinicService/internal/api/handlers/list_appointments"
	moveToConsultationHandler "github.com/m04kA/SMC-VetClinicService/internal/api/handlers/move_to_consultation"
	updateAppointmentHandler "github.com/m04kA/SMC-VetClinicService/internal/api/handlers/update_appointment"
	updateWaitingPriorityHandler "github.com/m04kA/SMC-VetClinicService/internal/api/handlers/update_waiting_priority"
	"github.com/m04kA/SMC-VetClinicService/internal/api/middleware"
	"github.com/m04kA/SMC-VetClinicService/internal/config"
	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	"github.com/m04kA/SMC-VetClinicService/internal/infra/migrations"
	appointmentRepo "github.com/m04kA/SMC-VetClinicService/internal/infra/storage/appointment"
	waitingRoomRepo "github.com/m04kA/SMC-VetClinicService/internal/infra/storage/waitingroom"
	"github.com/m04kA/SMC-VetClinicService/internal/integrations/directory"
	appointmentsService "github.com/m04kA/SMC-VetClinicService/internal/service/appointments"
	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
	waitingRoomService "github.com/m04kA/SMC-VetClinicService/internal/service/waitingroom"
	addWaitingEntryUC "github.com/m04kA/SMC-VetClinicService/internal/usecase/add_waiting_entry"
	createAppointmentUC "github.com/m04kA/SMC-VetClinicService/internal/usecase/create_appointment"
	getEmployeeAvailabilityUC "github.com/m04kA/SMC-VetClinicService/internal/usecase/get_employee_availability"
	updateAppointmentUC "github.com/m04kA/SMC-VetClinicService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-VetClinicService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VetClinicService/pkg/logger"
	"github.com/m04kA/SMC-VetClinicService/pkg/metrics"
	"github.com/m04kA/SMC-VetClinicService/pkg/txmanager"
	"github.com/m04kA/SMC-VetClinicService/pkg/validator"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SMC-VetClinicService...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Scheduling.Timezone, err)
	}
	workingHours, err := cfg.Scheduling.WorkingHours()
	if err != nil {
		log.Fatal("Failed to parse working hours: %v", err)
	}

	// Инициализируем метрики (если включены), nil коллектор ничего не пишет
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

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.RunMigrations {
		if err := migrations.Up(db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	waitingRoomRepository := waitingRoomRepo.NewRepository(wrappedDB)

	// Инициализируем клиент справочника
	var resolver directory.Resolver = directory.NewHTTPClient(
		cfg.Directory.URL,
		time.Duration(cfg.Directory.Timeout)*time.Second,
		log,
	)
	if cfg.Directory.CacheSize > 0 {
		resolver = directory.NewCachedResolver(resolver, cfg.Directory.CacheSize, cfg.Directory.CacheTTL())
	}
	log.Info("Directory client initialized (url=%s timeout=%ds cache=%d ttl=%s)",
		cfg.Directory.URL, cfg.Directory.Timeout, cfg.Directory.CacheSize, cfg.Directory.CacheTTL())

	projector := projection.NewProjector(resolver, log)

	limits := domain.SchedulingLimits{
		MinDurationMinutes: cfg.Scheduling.MinDurationMinutes,
		MaxDurationMinutes: cfg.Scheduling.MaxDurationMinutes,
		MaxReasonLength:    cfg.Scheduling.MaxTextLength,
		UpcomingWindow:     cfg.Scheduling.UpcomingWindow(),
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		projector,
		txMgr,
		metricsCollector,
		location,
		cfg.Scheduling.UpcomingWindow(),
		log,
	)
	waitingRoomSvc := waitingRoomService.NewService(
		waitingRoomRepository,
		projector,
		txMgr,
		metricsCollector,
		location,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		resolver,
		projector,
		txMgr,
		metricsCollector,
		limits,
		log,
	)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		resolver,
		projector,
		txMgr,
		metricsCollector,
		limits,
		log,
	)
	addWaitingEntryUseCase := addWaitingEntryUC.NewUseCase(
		waitingRoomRepository,
		resolver,
		projector,
		txMgr,
		metricsCollector,
		cfg.Scheduling.MaxTextLength,
		log,
	)

	getEmployeeAvailabilityUseCase := getEmployeeAvailabilityUC.NewUseCase(
		appointmentRepository,
		resolver,
		getEmployeeAvailabilityUC.Settings{
			WorkingHours:    workingHours,
			SlotStepMinutes: cfg.Scheduling.SlotStepMinutes,
			Location:        location,
		},
		limits,
		log,
	)

	requestValidator := validator.New()

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, requestValidator, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, requestValidator, log)
	changeAppointmentStatus := changeAppointmentStatusHandler.NewHandler(appointmentSvc, requestValidator, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	getEmployeeAvailability := getEmployeeAvailabilityHandler.NewHandler(getEmployeeAvailabilityUseCase, log)

	addWaitingEntry := addWaitingEntryHandler.NewHandler(addWaitingEntryUseCase, requestValidator, log)
	getWaitingQueue := getWaitingQueueHandler.NewHandler(waitingRoomSvc, log)
	getWaitingStatistics := getWaitingStatisticsHandler.NewHandler(waitingRoomSvc, log)
	getWaitingEntry := getWaitingEntryHandler.NewHandler(waitingRoomSvc, log)
	moveToConsultation := moveToConsultationHandler.NewHandler(waitingRoomSvc, log)
	completeConsultation := completeConsultationHandler.NewHandler(waitingRoomSvc, log)
	cancelWaitingEntry := cancelWaitingEntryHandler.NewHandler(waitingRoomSvc, log)
	updateWaitingPriority := updateWaitingPriorityHandler.NewHandler(waitingRoomSvc, requestValidator, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (чтение без X-User-ID)
	// ============================================================

	// --- Приёмы ---
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)

	// Свободные интервалы сотрудника на день
	api.HandleFunc("/employees/{employeeId}/available-slots", getEmployeeAvailability.Handle).Methods(http.MethodGet)

	// --- Зал ожидания ---
	// Статические пути регистрируются раньше /waiting-room/{id}
	api.HandleFunc("/waiting-room/queue", getWaitingQueue.Handle).Methods(http.MethodGet)
	api.HandleFunc("/waiting-room/statistics", getWaitingStatistics.Handle).Methods(http.MethodGet)
	api.HandleFunc("/waiting-room/{id}", getWaitingEntry.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Приёмы ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", updateAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}/status", changeAppointmentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Зал ожидания ---
	protected.HandleFunc("/waiting-room", addWaitingEntry.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/waiting-room/{id}/consultation", moveToConsultation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/waiting-room/{id}/complete", completeConsultation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/waiting-room/{id}/cancel", cancelWaitingEntry.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/waiting-room/{id}/priority", updateWaitingPriority.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
