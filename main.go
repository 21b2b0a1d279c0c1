// File: doctorsportal/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/database"
	bookingRepo "doctorsportal/database/repository/booking"
	doctorRepo "doctorsportal/database/repository/doctor"
	serviceRepo "doctorsportal/database/repository/service"
	userRepoPkg "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/booking"
	"doctorsportal/services/catalog"
	"doctorsportal/services/doctor"
	"doctorsportal/services/payment"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	logger := utils.InitLogger(cfg.IsProduction(), cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	logger.Sugar().Infof("Connected to MongoDB database %s", cfg.DatabaseName)

	cacheClient, err := utils.NewCacheClient(ctx, cfg)
	if err != nil {
		// The catalog cache is optional; run without it.
		logger.Warn("main: catalog cache disabled", zap.Error(err))
	}

	// repositories.
	servicesRepo := serviceRepo.NewMongoServiceRepo(store.DB)
	bookingsRepo := bookingRepo.NewMongoBookingRepo(store.DB)
	usersRepo := userRepoPkg.NewMongoUserRepo(store.DB)
	doctorsRepo := doctorRepo.NewMongoDoctorRepo(store.DB)

	if err := bookingsRepo.EnsureIndexes(ctx); err != nil {
		logger.Error("main: booking indexes", zap.Error(err))
	}
	if err := usersRepo.EnsureIndexes(ctx); err != nil {
		logger.Error("main: user indexes", zap.Error(err))
	}

	// services.
	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	catalogService := &catalog.DefaultCatalogService{
		Services: servicesRepo,
		Bookings: bookingsRepo,
		Logger:   logger,
	}
	if cacheClient != nil {
		catalogService.Cache = catalog.NewRedisCache(cacheClient, cfg.CatalogCacheTTL)
	}

	bookingService := &booking.DefaultBookingService{
		Repo:           bookingsRepo,
		Users:          usersRepo,
		OwnerOnlyReads: cfg.BookingReadOwnerOnly,
	}
	userService := &user.DefaultUserService{
		Repo:   usersRepo,
		Tokens: tokens,
	}
	doctorService := &doctor.DefaultDoctorService{Repo: doctorsRepo}
	paymentService := payment.NewStripePaymentService(cfg.StripeKey, logger)

	health := utils.NewHealthMonitor(time.Minute)
	health.Register("mongo", utils.PingerFunc(func(ctx context.Context) error {
		return store.Client.Ping(ctx, nil)
	}))
	if cacheClient != nil {
		health.Register("redis", utils.PingerFunc(func(ctx context.Context) error {
			return cacheClient.Ping(ctx).Err()
		}))
	}
	health.Start(ctx)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Catalog:  handlers.NewCatalogHandler(catalogService),
		Bookings: handlers.NewBookingHandler(bookingService),
		Users:    handlers.NewUserHandler(userService),
		Doctors:  handlers.NewDoctorHandler(doctorService),
		Payments: handlers.NewPaymentHandler(paymentService),

		Tokens:            tokens,
		AdminUsers:        usersRepo,
		Health:            health,
		UserListAdminOnly: cfg.UserListAdminOnly,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimit(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	<-ctx.Done()
	logger.Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if cacheClient != nil {
		if err := cacheClient.Close(); err != nil {
			logger.Warn("main: redis close", zap.Error(err))
		}
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Error("main: mongo disconnect", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
