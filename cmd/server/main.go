package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contact_manager/internal/config"
	"contact_manager/internal/handler"
	"contact_manager/internal/logger"
	"contact_manager/internal/metrics"
	"contact_manager/internal/middleware"
	"contact_manager/internal/model"
	"contact_manager/internal/repository"
	"contact_manager/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// --- Database Connection ---
	ctx := context.Background()
	dbPool, err := config.ConnectDB(ctx, cfg.DSN(), zl)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()

	if err := config.Migrate(ctx, dbPool, zl); err != nil {
		zl.Fatal("failed to migrate database", zap.Error(err))
	}

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	contactRepo := repository.NewContactRepository(dbPool)
	addressRepo := repository.NewAddressRepository(dbPool)

	// --- Initialize Services ---
	userService := service.NewUserService(userRepo, zl)
	contactService := service.NewContactService(contactRepo, zl)
	addressService := service.NewAddressService(addressRepo, contactRepo, zl)

	// --- Initialize Handlers ---
	userHandler := handler.NewUserHandler(userService)
	contactHandler := handler.NewContactHandler(contactService)
	addressHandler := handler.NewAddressHandler(addressService)

	// --- Setup Gin Router ---
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	m := metrics.New("contact_api")

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(zl))
	router.Use(m.Middleware())
	router.Use(middleware.ErrorHandler(zl))
	router.Use(middleware.Authenticate[*model.User](userRepo.FindByToken, zl))

	// --- Register Routes ---
	authMW := middleware.RequireAuth()
	apiGroup := router.Group("/api")
	userHandler.RegisterUserRoutes(apiGroup, authMW)
	contactHandler.RegisterContactRoutes(apiGroup, authMW)
	addressHandler.RegisterAddressRoutes(apiGroup, authMW)

	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	serve(router, cfg.Port("8080"), zl)
}

// serve runs srv until SIGINT/SIGTERM, then drains for up to five seconds
func serve(router http.Handler, port string, zl *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		zl.Info("server starting", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("listen", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Fatal("server forced to shutdown", zap.Error(err))
	}

	zl.Info("server exiting")
}
