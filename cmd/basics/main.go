package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"contact_manager/internal/config"
	"contact_manager/internal/connection"
	"contact_manager/internal/handler"
	"contact_manager/internal/logger"
	"contact_manager/internal/middleware"
	"contact_manager/internal/model"
	"contact_manager/internal/repository"
	"contact_manager/internal/service"
	"contact_manager/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx := context.Background()
	dbPool, err := config.ConnectDB(ctx, cfg.DSN(), zl)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()

	if err := config.Migrate(ctx, dbPool, zl); err != nil {
		zl.Fatal("failed to migrate database", zap.Error(err))
	}

	sampleRepo := repository.NewSampleUserRepository(dbPool)
	sampleService := service.NewSampleService(sampleRepo, zl)
	basicsHandler := handler.NewBasicsHandler(
		sampleService,
		connection.New(cfg.Database),
		utils.NewCookieSigner(cfg.CookieSecret),
		zl,
	)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.LoadHTMLGlob(filepath.Join(cfg.ViewsDir, "*.html"))

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(zl))
	router.Use(middleware.ErrorHandler(zl))
	router.Use(middleware.Authenticate[*model.SampleUser](sampleRepo.FindByToken, zl))

	basicsHandler.RegisterBasicsRoutes(router.Group("/api"))

	port := cfg.Port("3000")
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		zl.Info("basics server starting", zap.String("port", port), zap.String("connection", cfg.Database))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Fatal("server forced to shutdown", zap.Error(err))
	}
}
