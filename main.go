package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"grand-azure-hotel/cache"
	"grand-azure-hotel/config"
	"grand-azure-hotel/controllers"
	"grand-azure-hotel/logger"
	"grand-azure-hotel/metrics"
	"grand-azure-hotel/routes"
	"grand-azure-hotel/services"
	"grand-azure-hotel/storage"
	"grand-azure-hotel/utils"
)

func openStore(cfg *config.Config) (storage.Store, error) {
	if cfg.DBDriver == "memory" {
		log.Warn().Msg("DB_DRIVER=memory: data is lost on restart")
		return storage.NewMemoryStore(), nil
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		return nil, err
	}
	store := storage.NewGormStore(db)
	if err := store.AutoMigrate(); err != nil {
		return nil, err
	}
	return store, nil
}

func main() {
	cfg := config.Load()

	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Environment})
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("Database connect failed")
	}

	redisClient, err := config.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, continuing without room cache")
		redisClient = nil
	}
	defer config.CloseRedis(redisClient)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics("hotel", reg)

	// Initialize services
	roomService := services.NewRoomService(store, cache.NewRoomCache(redisClient))
	availabilityService := services.NewAvailabilityService(store, m)
	bookingService := services.NewBookingService(
		store, roomService, availabilityService, m,
		utils.NewMailer(cfg.SMTP), cfg.EnforceCapacity,
	)
	inquiryService := services.NewInquiryService(store)
	contentService := services.NewContentService(store)

	if cfg.SeedData {
		seedCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		if err := config.SeedDatabase(seedCtx, store, availabilityService, config.SeedOptions{
			WindowDays: cfg.AvailabilityWindowDays,
			DemoUser:   cfg.Environment == "development",
		}); err != nil {
			cancel()
			log.Fatal().Err(err).Msg("Seeding failed")
		}
		cancel()
	}

	router := routes.SetupRouter(
		routes.Options{
			CorsOrigins: cfg.CorsOrigins,
			Metrics:     m,
			Gatherer:    reg,
			Health:      store,
		},
		routes.Handlers{
			Rooms:        controllers.NewRoomController(roomService, availabilityService),
			Availability: controllers.NewAvailabilityController(availabilityService),
			Bookings:     controllers.NewBookingController(bookingService),
			Inquiries:    controllers.NewInquiryController(inquiryService),
			Content:      controllers.NewContentController(contentService),
		},
	)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped gracefully")
}
