package main

import (
	"errors"
	"log"

	"quizclip/internal/config"
	"quizclip/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	m, err := migrate.New("file://database/migrations", cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to create migrator", zap.Error(err))
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			l.Info("No pending migrations")
			return
		}
		l.Fatal("Failed to run migrations", zap.Error(err))
	}

	l.Info("Migrations completed successfully")
}
