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

	checkAvailabilityHandler "github.com/fotodesk/FD-ScheduleService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/fotodesk/FD-ScheduleService/internal/api/handlers/create_booking"
	createTimeBlockHandler "github.com/fotodesk/FD-ScheduleService/internal/api/handlers/create_time_block"
	deleteBookingHandler "github.com/fotodesk/FD-ScheduleService/internal/api/handlers/delete_booking"
	deleteTimeBlockHandler "github.com/fotodesk/FD-ScheduleService/internal/api/handlers/delete_time_block"
	getWeekViewHandler "github.com/fotodesk/FD-ScheduleService/internal/api/handlers/get_week_view"
	listBookingsHandler "github.com/fotodesk/FD-ScheduleService/internal/api/handlers/list_bookings"
	listStaffHandler "github.com/fotodesk/FD-ScheduleService/internal/api/handlers/list_staff"
	listTimeBlocksHandler "github.com/fotodesk/FD-ScheduleService/internal/api/handlers/list_time_blocks"
	rescheduleBookingHandler "github.com/fotodesk/FD-ScheduleService/internal/api/handlers/reschedule_booking"
	updateBookingHandler "github.com/fotodesk/FD-ScheduleService/internal/api/handlers/update_booking"
	updateBookingStatusHandler "github.com/fotodesk/FD-ScheduleService/internal/api/handlers/update_booking_status"
	updateTimeBlockHandler "github.com/fotodesk/FD-ScheduleService/internal/api/handlers/update_time_block"
	"github.com/fotodesk/FD-ScheduleService/internal/api/middleware"
	"github.com/fotodesk/FD-ScheduleService/internal/config"
	bookingRepo "github.com/fotodesk/FD-ScheduleService/internal/infra/storage/booking"
	staffRepo "github.com/fotodesk/FD-ScheduleService/internal/infra/storage/staff"
	timeblockRepo "github.com/fotodesk/FD-ScheduleService/internal/infra/storage/timeblock"
	bookingsService "github.com/fotodesk/FD-ScheduleService/internal/service/bookings"
	staffService "github.com/fotodesk/FD-ScheduleService/internal/service/staff"
	timeblocksService "github.com/fotodesk/FD-ScheduleService/internal/service/timeblocks"
	checkAvailabilityUC "github.com/fotodesk/FD-ScheduleService/internal/usecase/check_availability"
	createBookingUC "github.com/fotodesk/FD-ScheduleService/internal/usecase/create_booking"
	getWeekViewUC "github.com/fotodesk/FD-ScheduleService/internal/usecase/get_week_view"
	rescheduleBookingUC "github.com/fotodesk/FD-ScheduleService/internal/usecase/reschedule_booking"
	"github.com/fotodesk/FD-ScheduleService/pkg/logger"
	"github.com/fotodesk/FD-ScheduleService/pkg/metrics"
	"github.com/fotodesk/FD-ScheduleService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting FD-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	// Repositories and transaction manager
	bookingRepository := bookingRepo.NewRepository(db)
	staffRepository := staffRepo.NewRepository(db)
	timeBlockRepository := timeblockRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Services
	bookingSvc := bookingsService.NewService(bookingRepository, staffRepository, log)
	staffSvc := staffService.NewService(staffRepository, log)
	timeBlockSvc := timeblocksService.NewService(timeBlockRepository, staffRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		timeBlockRepository,
		staffRepository,
		txMgr,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		timeBlockRepository,
		staffRepository,
		txMgr,
		cfg.Schedule.VisibleStartHour,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		timeBlockRepository,
		staffRepository,
		log,
	)
	getWeekViewUseCase := getWeekViewUC.NewUseCase(
		bookingRepository,
		staffRepository,
		cfg.Schedule.DisplayOffsetMinutes,
		log,
	)

	// Handlers
	listStaff := listStaffHandler.NewHandler(staffSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	listTimeBlocks := listTimeBlocksHandler.NewHandler(timeBlockSvc, log)
	createTimeBlock := createTimeBlockHandler.NewHandler(timeBlockSvc, log)
	updateTimeBlock := updateTimeBlockHandler.NewHandler(timeBlockSvc, log)
	deleteTimeBlock := deleteTimeBlockHandler.NewHandler(timeBlockSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getWeekView := getWeekViewHandler.NewHandler(getWeekViewUseCase, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Read-only routes
	api.HandleFunc("/staff", listStaff.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/time-blocks", listTimeBlocks.Handle).Methods(http.MethodGet)
	api.HandleFunc("/week-view", getWeekView.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/check", checkAvailability.Handle).Methods(http.MethodPost)

	// Mutating routes require the X-User-ID header
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/time-blocks", createTimeBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/time-blocks/{timeBlockId}", updateTimeBlock.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/time-blocks/{timeBlockId}", deleteTimeBlock.Handle).Methods(http.MethodDelete)

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
