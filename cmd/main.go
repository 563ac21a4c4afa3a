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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_booking"
	getSpotBookingsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_spot_bookings"
	getSpotConfigHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_spot_config"
	getUserBookingsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_user_bookings"
	saveBookingDraftHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/save_booking_draft"
	scanAccessHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/scan_access"
	submitPaymentSlipHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/submit_payment_slip"
	updateSpotConfigHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/update_spot_config"
	verifyPaymentHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/verify_payment"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	draftRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/draft"
	paymentSlipRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/paymentslip"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
	ocrServiceClient "github.com/m04kA/SMC-ParkingService/internal/integrations/ocrservice"
	vehicleServiceClient "github.com/m04kA/SMC-ParkingService/internal/integrations/vehicleservice"
	bookingsService "github.com/m04kA/SMC-ParkingService/internal/service/bookings"
	lifecycleService "github.com/m04kA/SMC-ParkingService/internal/service/lifecycle"
	spotConfigService "github.com/m04kA/SMC-ParkingService/internal/service/spotconfig"
	createBookingUC "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/SMC-ParkingService/internal/usecase/get_availability"
	saveDraftUC "github.com/m04kA/SMC-ParkingService/internal/usecase/save_draft"
	scanAccessUC "github.com/m04kA/SMC-ParkingService/internal/usecase/scan_access"
	verifyPaymentUC "github.com/m04kA/SMC-ParkingService/internal/usecase/verify_payment"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
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

	log.Info("Starting SMC-ParkingService...")
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

	// Подключаемся к Redis (хранилище черновиков бронирований)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем интеграционных клиентов
	vehicleClient := vehicleServiceClient.NewClient(
		cfg.VehicleService.URL,
		time.Duration(cfg.VehicleService.Timeout)*time.Second,
		log,
	)
	ocrClient := ocrServiceClient.NewClient(
		cfg.OCRService.URL,
		time.Duration(cfg.OCRService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (VehicleService=%s timeout=%ds, OCRService=%s timeout=%ds)",
		cfg.VehicleService.URL, cfg.VehicleService.Timeout, cfg.OCRService.URL, cfg.OCRService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		spotRepository    *spotRepo.Repository
		slipRepository    *paymentSlipRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		spotRepository = spotRepo.NewRepository(wrappedDB)
		slipRepository = paymentSlipRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		spotRepository = spotRepo.NewRepository(db)
		slipRepository = paymentSlipRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	draftRepository := draftRepo.NewRepository(
		redisClient,
		time.Duration(cfg.Booking.DraftTTLMinutes)*time.Minute,
	)

	// Инициализируем сервисы
	lifecycleSvc := lifecycleService.NewService(
		bookingRepository,
		spotRepository,
		txMgr,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		spotRepository,
		log,
	)
	spotConfigSvc := spotConfigService.NewService(
		spotRepository,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		spotRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		spotRepository,
		draftRepository,
		vehicleClient,
		txMgr,
		log,
	)
	saveDraftUseCase := saveDraftUC.NewUseCase(
		draftRepository,
		spotRepository,
		log,
	)
	verifyPaymentUseCase := verifyPaymentUC.NewUseCase(
		bookingRepository,
		slipRepository,
		spotRepository,
		ocrClient,
		lifecycleSvc,
		log,
	)
	scanAccessUseCase := scanAccessUC.NewUseCase(
		bookingRepository,
		spotRepository,
		lifecycleSvc,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getSpotBookings := getSpotBookingsHandler.NewHandler(bookingSvc, log)
	getSpotConfig := getSpotConfigHandler.NewHandler(spotConfigSvc, log)
	updateSpotConfig := updateSpotConfigHandler.NewHandler(spotConfigSvc, log)
	saveBookingDraft := saveBookingDraftHandler.NewHandler(saveDraftUseCase, log)
	submitPaymentSlip := submitPaymentSlipHandler.NewHandler(verifyPaymentUseCase, log)
	verifyPayment := verifyPaymentHandler.NewHandler(verifyPaymentUseCase, log)
	scanAccess := scanAccessHandler.NewHandler(scanAccessUseCase, log)

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

	// Сетка слотов парковки на день
	api.HandleFunc("/spots/{spotId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Конфигурация парковки
	api.HandleFunc("/spots/{spotId}/config",
		getSpotConfig.Handle).Methods(http.MethodGet)

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

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Черновик бронирования
	protected.HandleFunc("/booking-drafts", saveBookingDraft.Handle).Methods(http.MethodPost)

	// --- Оплата ---
	// Загрузка платежного документа
	protected.HandleFunc("/bookings/{bookingId}/payment-slips", submitPaymentSlip.Handle).Methods(http.MethodPost)

	// Ручная проверка платежного документа (для операторов)
	protected.HandleFunc("/payment-slips/{slipId}/verify", verifyPayment.Handle).Methods(http.MethodPatch)

	// --- Управление парковкой (для операторов) ---
	// Список бронирований парковки
	protected.HandleFunc("/spots/{spotId}/bookings", getSpotBookings.Handle).Methods(http.MethodGet)

	// Обновление конфигурации парковки
	protected.HandleFunc("/spots/{spotId}/config", updateSpotConfig.Handle).Methods(http.MethodPut)

	// Сканирование кода доступа на шлагбауме
	protected.HandleFunc("/spots/{spotId}/scan", scanAccess.Handle).Methods(http.MethodPost)

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
