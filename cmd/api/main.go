package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizclip/internal/adapter"
	"quizclip/internal/adapter/media"
	"quizclip/internal/adapter/quizgen"
	"quizclip/internal/adapter/transcriber"
	"quizclip/internal/cache"
	"quizclip/internal/config"
	"quizclip/internal/database"
	"quizclip/internal/handler"
	"quizclip/internal/logger"
	"quizclip/internal/middleware"
	"quizclip/internal/pipeline"
	"quizclip/internal/repository"
	"quizclip/internal/service"
	"quizclip/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Redis is optional: without it every run downloads and transcribes from
	// scratch, which is correct but slower for repeated URLs.
	var transcriptCache pipeline.TranscriptCache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		transcriptCache = service.NewTranscriptCacheService(
			adapter.NewRedisCacheAdapter(redisClient), cfg.Transcript.TTL)
	} else {
		appLogger.Warn("Redis not configured; transcript caching disabled")
	}

	quizRepo := repository.NewQuizDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	fetcher := media.NewYtDlpFetcher(cfg.Downloader.YtDlpPath, appLogger)
	whisper := transcriber.NewWhisperTranscriber(cfg.Whisper, appLogger)
	generator := quizgen.NewGeminiGenerator(cfg.Gemini, appLogger)

	quizPipeline := pipeline.NewPipeline(
		fetcher, whisper, generator, quizRepo, txManager, transcriptCache, appLogger)

	quizService := service.NewQuizService(quizPipeline, quizRepo)
	quizHandler := handler.NewQuizHandler(quizService, validation.NewValidator())

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestLogger())

	api := app.Group("/api")
	quizzes := api.Group("/quizzes", middleware.Protected(cfg.Auth.JWTSecret))
	quizzes.Post("/", quizHandler.CreateQuiz)
	quizzes.Get("/", quizHandler.ListQuizzes)
	quizzes.Get("/:id", quizHandler.GetQuiz)
	quizzes.Patch("/:id", quizHandler.UpdateQuiz)
	quizzes.Delete("/:id", quizHandler.DeleteQuiz)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		appLogger.Info("Shutting down server")
		if err := app.Shutdown(); err != nil {
			appLogger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	appLogger.Info("Starting server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		appLogger.Fatal("Server stopped unexpectedly", zap.Error(err))
	}
}
