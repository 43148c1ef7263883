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
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createTimeSlotHandler "github.com/apermyakov/SLM-RentalService/internal/api/handlers/create_time_slot"
	deleteTimeSlotHandler "github.com/apermyakov/SLM-RentalService/internal/api/handlers/delete_time_slot"
	discoverRentalsHandler "github.com/apermyakov/SLM-RentalService/internal/api/handlers/discover_rentals"
	getOrganizationHandler "github.com/apermyakov/SLM-RentalService/internal/api/handlers/get_organization"
	getUserRegistrationsHandler "github.com/apermyakov/SLM-RentalService/internal/api/handlers/get_user_registrations"
	listOrganizationsHandler "github.com/apermyakov/SLM-RentalService/internal/api/handlers/list_organizations"
	signatureCompletedHandler "github.com/apermyakov/SLM-RentalService/internal/api/handlers/signature_completed"
	"github.com/apermyakov/SLM-RentalService/internal/api/middleware"
	"github.com/apermyakov/SLM-RentalService/internal/config"
	organizationRepo "github.com/apermyakov/SLM-RentalService/internal/infra/storage/organization"
	registrationRepo "github.com/apermyakov/SLM-RentalService/internal/infra/storage/registration"
	timeslotRepo "github.com/apermyakov/SLM-RentalService/internal/infra/storage/timeslot"
	signServiceClient "github.com/apermyakov/SLM-RentalService/internal/integrations/signservice"
	organizationsService "github.com/apermyakov/SLM-RentalService/internal/service/organizations"
	registrationsService "github.com/apermyakov/SLM-RentalService/internal/service/registrations"
	discoverRentalsUC "github.com/apermyakov/SLM-RentalService/internal/usecase/discover_rentals"
	syncConsentUC "github.com/apermyakov/SLM-RentalService/internal/usecase/sync_consent"
	"github.com/apermyakov/SLM-RentalService/migrations"
	"github.com/apermyakov/SLM-RentalService/pkg/dbmetrics"
	"github.com/apermyakov/SLM-RentalService/pkg/logger"
	"github.com/apermyakov/SLM-RentalService/pkg/metrics"
	"github.com/apermyakov/SLM-RentalService/pkg/simpletxmanager"
	"github.com/apermyakov/SLM-RentalService/pkg/txmanager"
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

	log.Info("Starting SLM-RentalService...")
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

	// Применяем миграции (если включено)
	if cfg.Database.AutoMigrate {
		provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
		if err != nil {
			log.Fatal("Failed to create migration provider: %v", err)
		}
		results, err := provider.Up(context.Background())
		if err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Migrations applied: %d", len(results))
	}

	// Инициализируем клиент сервиса подписей
	signClient := signServiceClient.NewClient(
		cfg.SignService.URL,
		time.Duration(cfg.SignService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (SignService=%s timeout=%ds)",
		cfg.SignService.URL, cfg.SignService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		orgRepository  *organizationRepo.Repository
		slotRepository *timeslotRepo.Repository
		regRepository  *registrationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		orgRepository = organizationRepo.NewRepository(wrappedDB)
		slotRepository = timeslotRepo.NewRepository(wrappedDB)
		regRepository = registrationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		orgRepository = organizationRepo.NewRepository(db)
		slotRepository = timeslotRepo.NewRepository(db)
		regRepository = registrationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	orgSvc := organizationsService.NewService(
		orgRepository,
		slotRepository,
		log,
	)
	regSvc := registrationsService.NewService(
		regRepository,
		log,
	)

	// Инициализируем use cases
	discoverRentalsUseCase := discoverRentalsUC.NewUseCase(
		orgRepository,
		log,
	)
	syncConsentUseCase := syncConsentUC.NewUseCase(
		regRepository,
		signClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	discoverRentals := discoverRentalsHandler.NewHandler(discoverRentalsUseCase, log)
	listOrganizations := listOrganizationsHandler.NewHandler(orgSvc, log)
	getOrganization := getOrganizationHandler.NewHandler(orgSvc, log)
	createTimeSlot := createTimeSlotHandler.NewHandler(orgSvc, log)
	deleteTimeSlot := deleteTimeSlotHandler.NewHandler(orgSvc, log)
	signatureCompleted := signatureCompletedHandler.NewHandler(syncConsentUseCase, log)
	getUserRegistrations := getUserRegistrationsHandler.NewHandler(regSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Request ID для трассировки запросов
	r.Use(middleware.RequestID)

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

	// Поиск доступных слотов аренды полей
	api.HandleFunc("/rentals/discover", discoverRentals.Handle).Methods(http.MethodGet)

	// Список организаций
	api.HandleFunc("/organizations", listOrganizations.Handle).Methods(http.MethodGet)

	// Организация с полями и слотами
	api.HandleFunc("/organizations/{orgId}", getOrganization.Handle).Methods(http.MethodGet)

	// Вебхук сервиса подписей о завершении подписания
	api.HandleFunc("/webhooks/signature-completed", signatureCompleted.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление слотами аренды (для менеджеров организаций) ---
	// Создание слота аренды
	protected.HandleFunc("/organizations/{orgId}/fields/{fieldId}/time-slots",
		createTimeSlot.Handle).Methods(http.MethodPost)

	// Удаление слота аренды
	protected.HandleFunc("/time-slots/{slotId}", deleteTimeSlot.Handle).Methods(http.MethodDelete)

	// --- Регистрации детей ---
	// Регистрации, где пользователь является опекуном
	protected.HandleFunc("/users/{userId}/registrations", getUserRegistrations.Handle).Methods(http.MethodGet)

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
