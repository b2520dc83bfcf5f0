package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang-review-intel/internal/analytics"
	"golang-review-intel/internal/ingestion/config"
	"golang-review-intel/internal/ingestion/delivery/consumer"
	"golang-review-intel/internal/ingestion/repository"
	"golang-review-intel/internal/ingestion/service"
	"golang-review-intel/pkg/common"
	"golang-review-intel/pkg/logger"
	"golang-review-intel/pkg/postgres"
	"golang-review-intel/pkg/redis"
	"golang-review-intel/pkg/telegram"
	"golang-review-intel/pkg/utils"

	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the ingestion service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Ingestion Service", logger.Field("name", cfg.App.Name))

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

	// MKSTREAM creates the stream if it doesn't exist
	if err := redisClient.Client.XGroupCreateMkStream(context.Background(), common.RedisStreamReviewIngestion, common.RedisStreamGroup, "0").Err(); err != nil {
		if err.Error() != "BUSYGROUP Consumer Group name already exists" {
			appLogger.Fatal("Failed to create consumer group", logger.ErrorField(err))
		}
	}

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db.DB)
	reviewRepo := repository.NewReviewRepository(db.DB)
	runRepo := repository.NewIngestionRunRepository(db.DB)
	replyStoreRepo := repository.NewSuggestedReplyRepository(db.DB)
	placesSource := repository.NewPlacesRepository(cfg, appLogger)
	businessSource := repository.NewBusinessProfileRepository(cfg, appLogger)

	// Initialize the reply provider
	var replyRepo repository.ReplyRepository
	switch cfg.AI.Provider {
	case "gemini":
		genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: cfg.Gemini.APIKey,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI client", logger.ErrorField(err))
		}
		replyRepo, err = repository.NewGeminiReplyRepository(cfg, appLogger, genAiClient)
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini reply repository", logger.ErrorField(err))
		}
	default:
		replyRepo = repository.NewRuleBasedReplyRepository()
	}

	// Initialize the Telegram notifier
	notifier := telegram.NewNoopNotifier()
	if cfg.Telegram.BotToken != "" {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	// Initialize the analytics engine
	engineCfg := analytics.DefaultConfig()
	if cfg.Analytics.DefaultWindowStart != "" {
		windowStart, err := utils.ParseDate(cfg.Analytics.DefaultWindowStart)
		if err != nil {
			appLogger.Fatal("Invalid default window start", logger.ErrorField(err))
		}
		engineCfg.DefaultWindowStart = windowStart
	}
	lexicon := analytics.DefaultLexicon()
	engine := analytics.NewEngine(engineCfg, lexicon)

	ingestionSvc := service.NewIngestionService(
		cfg,
		redisClient.Client,
		companyRepo,
		reviewRepo,
		runRepo,
		replyStoreRepo,
		placesSource,
		businessSource,
		replyRepo,
		engine,
		lexicon,
		notifier,
		appLogger,
	)

	redisConsumer := consumer.NewRedisConsumer(cfg, ingestionSvc, appLogger)
	redisConsumer.Start(ctx)

	appLogger.Info("Ingestion service started. Waiting for tasks...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down ingestion service...")
	cancel()
	redisConsumer.Stop()
	appLogger.Info("Ingestion service stopped.")
}

func main() {
	rootCmd := &cobra.Command{Use: "ingestion-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-ingestion.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing ingestion-service CLI: %s\n", err)
		os.Exit(1)
	}
}
