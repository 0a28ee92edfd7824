package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/matricula-api/api/swagger"
	"github.com/noah-isme/matricula-api/internal/handler"
	internalmiddleware "github.com/noah-isme/matricula-api/internal/middleware"
	"github.com/noah-isme/matricula-api/internal/repository"
	"github.com/noah-isme/matricula-api/internal/service"
	"github.com/noah-isme/matricula-api/pkg/config"
	"github.com/noah-isme/matricula-api/pkg/database"
	"github.com/noah-isme/matricula-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/matricula-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/matricula-api/pkg/middleware/requestid"
	"github.com/noah-isme/matricula-api/pkg/storage"
)

// @title Matricula API
// @version 1.0.0
// @description Student enrollment lookup and registration form (REGISTRO DE MATRICULA) rendering.
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	assets, err := storage.NewAssetStore(cfg.Reports.AssetsDir)
	if err != nil {
		logr.Fatal("failed to open assets directory", zap.Error(err))
	}

	metrics := service.NewMetricsService()
	repo := repository.NewEnrollmentRepository(db)
	enrollments := service.NewEnrollmentService(repo, metrics, validator.New(), logr, service.EnrollmentServiceConfig{
		AcademicYear: cfg.Reports.AcademicYear,
	})
	registration := service.NewRegistrationService(enrollments, assets, metrics, logr, service.RegistrationConfig{
		MaxBatch: cfg.Reports.MaxBatch,
	})

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(internalmiddleware.Metrics(metrics))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	handler.Register(r, handler.Routes{
		Enrollments:  handler.NewEnrollmentHandler(enrollments, logr),
		Registration: handler.NewRegistrationHandler(registration, logr),
		Metrics:      handler.NewMetricsHandler(metrics, repo, logr),
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "assets", assets.Path())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
