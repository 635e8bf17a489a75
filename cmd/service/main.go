package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/michaeliyer/canCockOne/config"
	"github.com/michaeliyer/canCockOne/internal/database"
	"github.com/michaeliyer/canCockOne/internal/logger"
	"github.com/michaeliyer/canCockOne/internal/migrate"
	"github.com/michaeliyer/canCockOne/internal/repository"
	"github.com/michaeliyer/canCockOne/internal/service"
	transport "github.com/michaeliyer/canCockOne/internal/transport/http"

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

	repos := repository.New(db)
	catalog := service.NewCatalogService(repos)
	orders := service.NewOrderService(repos)
	reports := service.NewReportService(repos)

	router := transport.Router(catalog, orders, reports, cfg.StaticDir, log)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("starting HTTP server", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down HTTP server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("HTTP server stopped gracefully")
}
