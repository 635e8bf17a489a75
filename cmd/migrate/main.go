package main

import (
	"context"
	"os"

	"github.com/michaeliyer/canCockOne/config"
	"github.com/michaeliyer/canCockOne/internal/database"
	"github.com/michaeliyer/canCockOne/internal/logger"
	"github.com/michaeliyer/canCockOne/internal/migrate"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.Connect(&cfg.DB, log)
	defer database.Close(db, log)

	if err := migrate.Run(context.Background(), db, log, migrate.DefaultMigrateOptions()); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	log.Info("migration completed")
}
