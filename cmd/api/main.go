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

	"skills-api/config"
	v1 "skills-api/internal/delivery/http/v1"
	"skills-api/internal/repository/postgres"
	"skills-api/internal/usecase"
	"skills-api/pkg/database"
	"skills-api/pkg/logger"
	"skills-api/pkg/monitoring"
	redispkg "skills-api/pkg/redis"
	"skills-api/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title           Skills and Themes API
// @version         1.0
// @description     CRUD API for themes and the skills that belong to them.
// @host            localhost:4242
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	logger.Log.Info("Starting skills API", "port", cfg.Port)

	// 3. Setup Database
	ctx := context.Background()
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.PoolOptions{
		MaxConns: int32(cfg.DBMaxConns),
		MinConns: int32(cfg.DBMinConns),
	})
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional)
	redisClient, err := redispkg.NewClient(ctx, redispkg.Config{
		URL:      cfg.RedisURL,
		Password: cfg.RedisPassword,
	})
	switch {
	case errors.Is(err, redispkg.ErrNotConfigured):
		logger.Log.Warn("Redis not configured - rate limiting uses in-memory counters")
	case err != nil:
		logger.Log.Warn("Redis unavailable - rate limiting uses in-memory counters", "error", err)
	default:
		defer redisClient.Close()
	}

	// 5. Setup Repositories
	themeRepo := postgres.NewThemeRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)

	// 6. Setup UseCases
	validate := validation.New()
	themeUC := usecase.NewThemeUsecase(themeRepo, validate)
	skillUC := usecase.NewSkillUsecase(skillRepo, validate)

	checks := []usecase.HealthCheck{{Name: "database", Required: true, Ping: dbPool.Ping}}
	if redisClient != nil {
		checks = append(checks, usecase.HealthCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
	}
	healthUC := usecase.NewHealthUsecase(checks...)

	// 7. Setup Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := monitoring.New(reg)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ThemeUC: themeUC,
		SkillUC: skillUC,
		Health:  healthUC,
		Metrics: metrics,
		Redis:   redisClient,
		Config:  cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()
	logger.Log.Info("Server listening", "addr", "http://localhost:"+cfg.Port)

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
