// @title Doc Quiz API
// @version 1.0
// @description Generates multiple-choice quizzes from structured documentation.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"doc-quiz/internal/adapter"
	"doc-quiz/internal/adapter/quizgen"
	"doc-quiz/internal/cache"
	"doc-quiz/internal/catalog"
	"doc-quiz/internal/config"
	"doc-quiz/internal/domain"
	"doc-quiz/internal/handler"
	"doc-quiz/internal/logger"
	"doc-quiz/internal/middleware"
	"doc-quiz/internal/repository"
	"doc-quiz/internal/service"

	_ "doc-quiz/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
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

	repos, err := repository.NewRepositories(ctx, cfg.Store)
	if err != nil {
		appLogger.Fatal("Failed to initialize store", zap.Error(err))
	}
	defer repos.Close()
	appLogger.Info("Store initialized", zap.String("driver", cfg.Store.Driver))

	// Redis is optional; without it generation results are not cached.
	var resultBackend domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		resultBackend = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis")
	}
	results := service.NewGenerationResultCache(resultBackend, cfg.Redis.GenerationTTL)

	generator, err := quizgen.NewGenerator(cfg.LLM, nil)
	if err != nil {
		appLogger.Fatal("Failed to create question generator", zap.Error(err))
	}

	generationService := service.NewGenerationService(
		catalog.NewScanner(cfg.Docs.Root),
		catalog.NewResolver(cfg.Docs.Root),
		generator,
		repos.Collections,
		results,
	)
	authService, err := service.NewAuthService(repos.Users, cfg.JWT, cfg.Auth)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept,Authorization",
		ExposeHeaders: handler.GenerationIDHeader,
		MaxAge:        300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, handler.Handlers{
		Generation:  handler.NewGenerationHandler(generationService),
		Collection:  handler.NewCollectionHandler(service.NewCollectionService(repos.Collections)),
		Performance: handler.NewPerformanceHandler(service.NewPerformanceService(repos.Performance, repos.Collections)),
		Auth:        handler.NewAuthHandler(authService),
	}, authService)

	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Logger.Env),
			zap.String("docs_root", cfg.Docs.Root))
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
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
