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
	_ "github.com/mattn/go-sqlite3"

	adminLoginHandler "github.com/m04kA/sommerhus-booking/internal/api/handlers/admin_login"
	approveBookingHandler "github.com/m04kA/sommerhus-booking/internal/api/handlers/approve_booking"
	createBookingHandler "github.com/m04kA/sommerhus-booking/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/sommerhus-booking/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/m04kA/sommerhus-booking/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/m04kA/sommerhus-booking/internal/api/handlers/get_calendar"
	listBookingsHandler "github.com/m04kA/sommerhus-booking/internal/api/handlers/list_bookings"
	rejectBookingHandler "github.com/m04kA/sommerhus-booking/internal/api/handlers/reject_booking"
	selectDatesHandler "github.com/m04kA/sommerhus-booking/internal/api/handlers/select_dates"
	uploadTicketHandler "github.com/m04kA/sommerhus-booking/internal/api/handlers/upload_ticket"
	"github.com/m04kA/sommerhus-booking/internal/api/middleware"
	"github.com/m04kA/sommerhus-booking/internal/config"
	"github.com/m04kA/sommerhus-booking/internal/infra/storage/bookingset"
	"github.com/m04kA/sommerhus-booking/internal/integrations/emailjs"
	"github.com/m04kA/sommerhus-booking/internal/integrations/eventbus"
	"github.com/m04kA/sommerhus-booking/internal/integrations/notifier"
	"github.com/m04kA/sommerhus-booking/internal/selection"
	bookingsService "github.com/m04kA/sommerhus-booking/internal/service/bookings"
	"github.com/m04kA/sommerhus-booking/pkg/logger"
	"github.com/m04kA/sommerhus-booking/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("SOMMERHUS_CONFIG"); p != "" {
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

	log.Info("Starting sommerhus-booking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены).
	// Интерфейсные переменные остаются nil, когда метрики выключены.
	var (
		metricsCollector *metrics.Metrics
		serviceMetrics   bookingsService.Metrics
		notifyMetrics    notifier.Metrics
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		serviceMetrics = metricsCollector
		notifyMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	// Проверяем соединение
	if err := db.PingContext(startupCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (driver=%s)", cfg.Database.Driver)

	// Инициализируем хранилище
	bookingRepository, err := bookingset.NewRepository(db, cfg.Database.Driver)
	if err != nil {
		log.Fatal("Failed to create booking set repository: %v", err)
	}
	if err := bookingRepository.EnsureSchema(startupCtx); err != nil {
		log.Fatal("Failed to ensure schema: %v", err)
	}

	// Инициализируем шлюзы уведомлений
	emailClient := emailjs.NewClient(emailjs.Config{
		BaseURL:    cfg.EmailJS.URL,
		PublicKey:  cfg.EmailJS.PublicKey,
		ServiceID:  cfg.EmailJS.ServiceID,
		TemplateID: cfg.EmailJS.TemplateID,
		OwnerName:  cfg.EmailJS.OwnerName,
		Timeout:    time.Duration(cfg.EmailJS.Timeout) * time.Second,
	}, log)
	if !emailClient.Available() {
		log.Warn("EmailJS is not configured, e-mail notifications are disabled")
	}

	gateways := []notifier.Named{{Name: "emailjs", Gateway: emailClient}}

	var publisher *eventbus.Publisher
	if cfg.Kafka.Enabled {
		publisher, err = eventbus.NewPublisher(eventbus.Config{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: time.Duration(cfg.Kafka.Timeout) * time.Second,
		})
		if err != nil {
			log.Fatal("Failed to create kafka publisher: %v", err)
		}
		gateways = append(gateways, notifier.Named{Name: "kafka", Gateway: publisher})
		log.Info("Kafka publisher enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	notifications := notifier.NewMulti(log, notifyMetrics, gateways...)

	// Инициализируем движок бронирований
	bookingSvc := bookingsService.NewService(
		bookingRepository.Session(cfg.Store.SessionKey),
		notifications,
		serviceMetrics,
		time.Duration(cfg.Notifications.Timeout)*time.Second,
		log,
	)
	bookingSvc.Load(startupCtx)

	dateSelector := selection.NewSelector(bookingSvc)

	// Инициализируем handlers
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(bookingSvc, dateSelector, log)
	uploadTicket := uploadTicketHandler.NewHandler(bookingSvc, int64(cfg.Server.MaxUploadMB)<<20, log)
	approveBooking := approveBookingHandler.NewHandler(bookingSvc, log)
	rejectBooking := rejectBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getCalendar := getCalendarHandler.NewHandler(bookingSvc, log)
	selectDates := selectDatesHandler.NewHandler(dateSelector, bookingSvc, log)
	adminLogin := adminLoginHandler.NewHandler(cfg.Admin.Password, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// --- Бронирования ---
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/ticket", uploadTicket.Handle).Methods(http.MethodPost)

	// --- Календарь и выбор дат ---
	api.HandleFunc("/calendar/{year:[0-9]+}/{month:[0-9]+}", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/selection", selectDates.Current).Methods(http.MethodGet)
	api.HandleFunc("/selection", selectDates.Cancel).Methods(http.MethodDelete)
	api.HandleFunc("/selection/clicks", selectDates.Click).Methods(http.MethodPost)

	// --- Вход администратора ---
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Password header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Admin(cfg.Admin.Password))

	admin.HandleFunc("/bookings/{bookingId}/approve", approveBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}/reject", rejectBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if publisher != nil {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close kafka publisher: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
