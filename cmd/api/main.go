// @title Med Estudia API
// @version 1.0
// @description Medical study content generation (MCQs, quizzes, explanations) and learner score tracking.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_LEARNER_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "med-estudia/cmd/api/docs"
	"med-estudia/internal/adapter"
	"med-estudia/internal/adapter/gateway"
	"med-estudia/internal/cache"
	"med-estudia/internal/config"
	"med-estudia/internal/database"
	"med-estudia/internal/domain"
	"med-estudia/internal/handler"
	"med-estudia/internal/logger"
	"med-estudia/internal/prompt"
	"med-estudia/internal/repository"
	"med-estudia/internal/service"
	"med-estudia/internal/shape"

	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// Generation pipeline
	if cfg.Gateway.APIKey == "" {
		appLogger.Warn("Gateway API key is not set; generation requests will fail")
	}
	chatGateway := gateway.WithRetry(
		gateway.NewClient(cfg.Gateway, nil),
		gateway.NewRetryPolicy(cfg.Gateway.Retry),
	)
	validator, err := shape.NewValidator()
	if err != nil {
		appLogger.Fatal("Failed to compile response schemas", zap.Error(err))
	}
	generationService := service.NewGenerationService(prompt.NewBuilder(), chatGateway, validator)
	appLogger.Info("Generation service initialized",
		zap.String("base_url", cfg.Gateway.BaseURL),
		zap.String("model", cfg.Gateway.Model),
		zap.Int("max_attempts", cfg.Gateway.Retry.MaxAttempts))

	routes := handler.Routes{
		Generation: handler.NewGenerationHandler(generationService),
	}

	// Learner storage
	store, closeStore := openScoreStore(ctx, cfg)
	defer closeStore()
	if store != nil {
		authService, err := service.NewAuthService(cfg.JWT)
		if err != nil {
			appLogger.Fatal("Failed to create AuthService", zap.Error(err))
		}
		routes.Auth = authService
		routes.Learners = handler.NewLearnerHandler(authService)
		routes.Scores = handler.NewScoreHandler(service.NewScoreService(store))
		routes.Health = handler.NewHealthHandler(store, cfg.Storage.Driver)
	} else {
		routes.Health = handler.NewHealthHandler(nil, cfg.Storage.Driver)
	}

	app := handler.NewApp(cfg.Server)
	app.Get("/swagger/*", swagger.HandlerDefault)
	routes.Register(app)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

// openScoreStore returns a nil store when storage is disabled.
func openScoreStore(ctx context.Context, cfg *config.Config) (domain.ScoreRepository, func()) {
	appLogger := logger.Get()

	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		return adapter.NewRedisScoreStore(redisClient), func() { redisClient.Close() }

	case config.StorageDriverOracle:
		db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := database.RunMigrations(ctx, db); err != nil {
			appLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
		tm := repository.NewTransactionManagerAdapter(db)
		return repository.NewSQLXScoreRepository(db, tm), func() { db.Close() }

	default:
		appLogger.Info("Learner storage disabled; score routes are not mounted")
		return nil, func() {}
	}
}
