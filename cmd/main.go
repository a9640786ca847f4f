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

	cancelBookingHandler "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/api/handlers/get_booking"
	getBookingByCodeHandler "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/api/handlers/get_booking_by_code"
	getBusinessBookingsHandler "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/api/handlers/get_business_bookings"
	getBusinessHoursHandler "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/api/handlers/get_business_hours"
	getClientBookingsHandler "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/api/handlers/get_client_bookings"
	updateBusinessHoursHandler "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/api/handlers/update_business_hours"
	updateEmployeeHoursHandler "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/api/handlers/update_employee_hours"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/api/middleware"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/config"
	bookingRepo "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/infra/storage/booking"
	businessRepo "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/infra/storage/business"
	employeeRepo "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/infra/storage/employee"
	serviceRepo "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/infra/storage/service"
	bookingsService "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/service/bookings"
	hoursService "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/service/hours"
	createBookingUC "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/Mathias-Kael/sistema-de-turnos-sub000/internal/usecase/get_available_slots"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/migrations"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/pkg/dbmetrics"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/pkg/logger"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/pkg/metrics"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/pkg/simpletxmanager"
	"github.com/Mathias-Kael/sistema-de-turnos-sub000/pkg/txmanager"
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

	log.Info("Starting turnos-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Применяем миграции
	if err := migrations.Up(context.Background(), db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	if version, err := migrations.Version(context.Background(), db); err == nil {
		log.Info("Database schema is up to date (version=%d)", version)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		businessRepository *businessRepo.Repository
		employeeRepository *employeeRepo.Repository
		serviceRepository  *serviceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		businessRepository = businessRepo.NewRepository(wrappedDB)
		employeeRepository = employeeRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		businessRepository = businessRepo.NewRepository(db)
		employeeRepository = employeeRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		businessRepository,
		log,
	)
	hoursSvc := hoursService.NewService(
		businessRepository,
		employeeRepository,
		bookingRepository,
		&hoursService.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		businessRepository,
		employeeRepository,
		serviceRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		businessRepository,
		employeeRepository,
		serviceRepository,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingByCode := getBookingByCodeHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getBusinessBookings := getBusinessBookingsHandler.NewHandler(bookingSvc, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(hoursSvc, log)
	updateBusinessHours := updateBusinessHoursHandler.NewHandler(hoursSvc, log)
	updateEmployeeHours := updateEmployeeHoursHandler.NewHandler(hoursSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Получение доступных слотов для бронирования
	api.HandleFunc("/businesses/{businessId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Расписание бизнеса
	api.HandleFunc("/businesses/{businessId}/hours",
		getBusinessHours.Handle).Methods(http.MethodGet)

	// Получение бронирования по публичному коду
	api.HandleFunc("/bookings/code/{code}",
		getBookingByCode.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Подтверждение бронирования (для менеджеров)
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// --- Управление бизнесом (для менеджеров) ---
	// Список бронирований бизнеса
	protected.HandleFunc("/businesses/{businessId}/bookings", getBusinessBookings.Handle).Methods(http.MethodGet)

	// Обновление расписания бизнеса
	protected.HandleFunc("/businesses/{businessId}/hours", updateBusinessHours.Handle).Methods(http.MethodPut)

	// Обновление личного расписания сотрудника
	protected.HandleFunc("/employees/{employeeId}/hours", updateEmployeeHours.Handle).Methods(http.MethodPut)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
