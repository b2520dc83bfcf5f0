package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-review-intel/internal/analytics"
	"golang-review-intel/internal/api/config"
	delivery "golang-review-intel/internal/api/delivery/http"
	_ "golang-review-intel/internal/api/docs"
	"golang-review-intel/internal/api/repository"
	"golang-review-intel/internal/api/service"
	"golang-review-intel/pkg/logger"
	"golang-review-intel/pkg/postgres"
	"golang-review-intel/pkg/redis"
	"golang-review-intel/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the analytics service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Analytics Service", logger.Field("name", cfg.App.Name))

	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	redisCfg := redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	redisClient, err := redis.NewClient(redisCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db.DB)
	reviewRepo := repository.NewReviewRepository(db.DB)
	scheduleRepo := repository.NewScheduleRepository(db.DB)
	runRepo := repository.NewIngestionRunRepository(db.DB)

	// Initialize the analytics engine from configuration
	engineCfg := analytics.DefaultConfig()
	if cfg.Analytics.DefaultWindowStart != "" {
		windowStart, err := utils.ParseDate(cfg.Analytics.DefaultWindowStart)
		if err != nil {
			appLogger.Fatal("Invalid default window start", logger.ErrorField(err))
		}
		engineCfg.DefaultWindowStart = windowStart
	}
	if cfg.Analytics.DeclineRiskBonus != 0 {
		engineCfg.DeclineRiskBonus = cfg.Analytics.DeclineRiskBonus
	}
	if cfg.Analytics.TopRecommendations != 0 {
		engineCfg.TopKeywordRecommendations = cfg.Analytics.TopRecommendations
	}
	if cfg.Analytics.MinTrendPoints != 0 {
		engineCfg.MinTrendPoints = cfg.Analytics.MinTrendPoints
	}
	engine := analytics.NewEngine(engineCfg, analytics.DefaultLexicon())

	cacheTTL := 5 * time.Minute
	if cfg.Analytics.SummaryCacheTTL != "" {
		cacheTTL, err = time.ParseDuration(cfg.Analytics.SummaryCacheTTL)
		if err != nil {
			appLogger.Fatal("Invalid summary cache TTL", logger.ErrorField(err))
		}
	}

	// Initialize services
	pollingInterval, err := time.ParseDuration(cfg.Scheduler.PollingInterval)
	if err != nil {
		appLogger.Fatal("Invalid polling interval", logger.ErrorField(err))
	}
	schedulerSvc := service.NewSchedulerService(scheduleRepo, runRepo, redisClient.Client, cfg.Redis, appLogger, pollingInterval)
	companySvc := service.NewCompanyService(companyRepo, runRepo, redisClient.Client, cfg.Redis, appLogger)
	analyticsSvc := service.NewAnalyticsService(engine, companyRepo, reviewRepo, appLogger, cacheTTL)

	go schedulerSvc.Start(ctx)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	companyHandler := delivery.NewCompanyHandler(companySvc, appLogger)
	analyticsHandler := delivery.NewAnalyticsHandler(analyticsSvc, appLogger)
	apiV1 := e.Group("/api/v1")
	companiesGroup := apiV1.Group("/companies")
	companyHandler.RegisterRoutes(companiesGroup)
	analyticsHandler.RegisterRoutes(companiesGroup)

	e.GET("/swagger/*", swagger.WrapHandler)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Review Intelligence API
// @version 1.0
// @description Multi-tenant review analytics and ingestion API.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "analytics-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing analytics-service CLI: %s\n", err)
		os.Exit(1)
	}
}
