package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "sportnex-backend/internal/api/http"
	"sportnex-backend/internal/cache"
	"sportnex-backend/internal/config"
	"sportnex-backend/internal/events"
	"sportnex-backend/internal/jobs"
	"sportnex-backend/internal/logger"
	"sportnex-backend/internal/payments"
	"sportnex-backend/internal/repository/postgres"
	"sportnex-backend/internal/scheduler"
	"sportnex-backend/internal/security"
	"sportnex-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting SportNex Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize court cache (optional)
	var courtCache *cache.CourtCache
	if cfg.Redis.Addr != "" {
		courtCache = cache.NewCourtCache(cfg.Redis)
		defer courtCache.Close()
		logger.Info("Court cache enabled", "addr", cfg.Redis.Addr)
	} else {
		logger.Info("Court cache disabled, no redis address configured")
	}

	// Initialize booking event producer (optional)
	var producer *events.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = events.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		logger.Info("Booking event producer enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.BookingsTopic)
	} else {
		logger.Info("Booking event producer disabled, no kafka brokers configured")
	}

	// Initialize Security
	var verifier security.TokenVerifier
	if cfg.Firebase.ProjectID != "" {
		verifier, err = security.NewFirebaseVerifier(context.Background(), cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize Firebase verifier", "error", err)
			log.Fatalf("Failed to initialize Firebase verifier: %v", err)
		}
		logger.Info("Using Firebase token verification", "project_id", cfg.Firebase.ProjectID)
	} else {
		verifier = security.NewDevTokenManager(cfg.Firebase.DevSecret)
		logger.Warn("Using dev token verification, do not run this in production")
	}

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)
	userSvc := service.NewUserService(store.UserRepository, store.CourtRepository, store.BookingRepository, store.PaymentRepository)
	courtSvc := service.NewCourtService(store.CourtRepository, courtCache)
	couponSvc := service.NewCouponService(store.CouponRepository)

	var bookingOpts []service.BookingServiceOption
	if producer != nil {
		bookingOpts = append(bookingOpts, service.WithProducer(producer, cfg.Kafka.BookingsTopic))
	}
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.CourtRepository,
		store.NotificationRepository,
		emailSvc,
		cfg.Booking.WindowDays,
		bookingOpts...,
	)

	gateway := payments.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.Currency)
	paymentSvc := service.NewPaymentService(
		store.PaymentRepository,
		store.BookingRepository,
		bookingSvc,
		couponSvc,
		gateway,
		emailSvc,
		cfg.Stripe.Currency,
	)
	announcementSvc := service.NewAnnouncementService(store.AnnouncementRepository)
	notificationSvc := service.NewNotificationService(store.NotificationRepository)

	// Set up HTTP router
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Verifier:      verifier,
		Users:         userSvc,
		Courts:        courtSvc,
		Bookings:      bookingSvc,
		Coupons:       couponSvc,
		Payments:      paymentSvc,
		Announcements: announcementSvc,
		Notifications: notificationSvc,
	})

	// Start background jobs
	jobRunner := jobs.NewJobRunner(store, &jobs.Services{Email: emailSvc}, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	logger.Info("Server stopped")
}
