package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	bookCalendarCellHandler "github.com/m04kA/SMC-BookingConsole/internal/api/handlers/book_calendar_cell"
	cancelSessionHandler "github.com/m04kA/SMC-BookingConsole/internal/api/handlers/cancel_session"
	chooseServiceHandler "github.com/m04kA/SMC-BookingConsole/internal/api/handlers/choose_service"
	chooseSlotHandler "github.com/m04kA/SMC-BookingConsole/internal/api/handlers/choose_slot"
	deleteAppointmentHandler "github.com/m04kA/SMC-BookingConsole/internal/api/handlers/delete_appointment"
	getCalendarViewHandler "github.com/m04kA/SMC-BookingConsole/internal/api/handlers/get_calendar_view"
	getSessionHandler "github.com/m04kA/SMC-BookingConsole/internal/api/handlers/get_session"
	getSlotsHandler "github.com/m04kA/SMC-BookingConsole/internal/api/handlers/get_slots"
	getStoreStatusHandler "github.com/m04kA/SMC-BookingConsole/internal/api/handlers/get_store_status"
	jumpStepHandler "github.com/m04kA/SMC-BookingConsole/internal/api/handlers/jump_step"
	listAppointmentsHandler "github.com/m04kA/SMC-BookingConsole/internal/api/handlers/list_appointments"
	selectDateHandler "github.com/m04kA/SMC-BookingConsole/internal/api/handlers/select_date"
	startSessionHandler "github.com/m04kA/SMC-BookingConsole/internal/api/handlers/start_session"
	submitBookingHandler "github.com/m04kA/SMC-BookingConsole/internal/api/handlers/submit_booking"
	updateAppointmentHandler "github.com/m04kA/SMC-BookingConsole/internal/api/handlers/update_appointment"
	"github.com/m04kA/SMC-BookingConsole/internal/api/middleware"
	"github.com/m04kA/SMC-BookingConsole/internal/config"
	schedCoreClient "github.com/m04kA/SMC-BookingConsole/internal/integrations/schedcore"
	appointmentsService "github.com/m04kA/SMC-BookingConsole/internal/service/appointments"
	profileService "github.com/m04kA/SMC-BookingConsole/internal/service/profile"
	aggregateSlotsUC "github.com/m04kA/SMC-BookingConsole/internal/usecase/aggregate_slots"
	bookingWizardUC "github.com/m04kA/SMC-BookingConsole/internal/usecase/booking_wizard"
	calendarViewUC "github.com/m04kA/SMC-BookingConsole/internal/usecase/calendar_view"
	"github.com/m04kA/SMC-BookingConsole/pkg/logger"
	"github.com/m04kA/SMC-BookingConsole/pkg/metrics"
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

	log.Info("Starting SMC-BookingConsole...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиента SchedCore
	schedCore := schedCoreClient.NewClient(
		cfg.SchedCore.URL,
		time.Duration(cfg.SchedCore.Timeout)*time.Second,
		log,
	)
	if cfg.Metrics.Enabled {
		schedCore.SetTransport(metrics.NewTransport("schedcore", metricsCollector, http.DefaultTransport))
		log.Info("Outbound metrics collection started for SchedCore client")
	}
	log.Info("SchedCore client initialized (url=%s, timeout=%ds)", cfg.SchedCore.URL, cfg.SchedCore.Timeout)

	// Локальный профиль контакта для предзаполнения формы
	profile := profileService.NewService(cfg.Profile.Path, log)
	if err := profile.Load(); err != nil {
		log.Warn("Failed to load contact profile from %s: %v", cfg.Profile.Path, err)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(schedCore, log)

	// Инициализируем use cases
	aggregateSlots := aggregateSlotsUC.NewUseCase(schedCore, log)

	sessionTTL := time.Duration(cfg.Sessions.TTLMinutes) * time.Minute
	bookingWizard := bookingWizardUC.NewUseCase(aggregateSlots, schedCore, profile, sessionTTL, log)

	calendarView := calendarViewUC.NewUseCase(appointmentsSvc, schedCore, bookingWizard, log)

	// Janitor выметает просроченные сессии мастера по расписанию
	janitor := cron.New()
	if _, err := janitor.AddFunc(cfg.Sessions.SweepSchedule, func() {
		if n := bookingWizard.Sweep(time.Now()); n > 0 {
			log.Info("Session janitor: %d expired sessions removed", n)
		}
	}); err != nil {
		log.Fatal("Failed to schedule session janitor: %v", err)
	}
	janitor.Start()
	log.Info("Session janitor scheduled (%s, ttl=%dm)", cfg.Sessions.SweepSchedule, cfg.Sessions.TTLMinutes)

	// Инициализируем handlers
	getSlots := getSlotsHandler.NewHandler(aggregateSlots, log)
	startSession := startSessionHandler.NewHandler(bookingWizard, log)
	getSession := getSessionHandler.NewHandler(bookingWizard, log)
	chooseService := chooseServiceHandler.NewHandler(bookingWizard, log)
	selectDate := selectDateHandler.NewHandler(bookingWizard, log)
	chooseSlot := chooseSlotHandler.NewHandler(bookingWizard, log)
	jumpStep := jumpStepHandler.NewHandler(bookingWizard, log)
	submitBooking := submitBookingHandler.NewHandler(bookingWizard, log)
	cancelSession := cancelSessionHandler.NewHandler(bookingWizard, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getStoreStatus := getStoreStatusHandler.NewHandler(appointmentsSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	getCalendarView := getCalendarViewHandler.NewHandler(calendarView, log)
	bookCalendarCell := bookCalendarCellHandler.NewHandler(calendarView, log)

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
	// PUBLIC ROUTES (клиентский мастер записи, без аутентификации)
	// ============================================================

	// Свободные слоты на дату
	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)

	// Сессии мастера записи
	api.HandleFunc("/sessions", startSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}", cancelSession.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{sessionId}/service", chooseService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/date", selectDate.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/slot", chooseSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/step", jumpStep.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/submit", submitBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (консоль администратора, требуют X-User-ID)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/status", getStoreStatus.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Календарная сетка ---
	protected.HandleFunc("/calendar-view", getCalendarView.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/calendar-view/book", bookCalendarCell.Handle).Methods(http.MethodPost)

	// CORS для браузерной консоли
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "X-User-ID"}),
	)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	janitorCtx := janitor.Stop()
	<-janitorCtx.Done()
	log.Info("Session janitor stopped")

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
