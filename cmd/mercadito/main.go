package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mercadito-app/mercadito/internal/app"
	"github.com/mercadito-app/mercadito/internal/catalog"
	"github.com/mercadito-app/mercadito/internal/ledger"
	"github.com/mercadito-app/mercadito/internal/platform/store"
	"github.com/mercadito-app/mercadito/internal/sales"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	var st store.Store
	switch cfg.StoreDriver {
	case app.StoreDriverRedis:
		redisStore, err := store.NewRedisStore(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Error("connect redis store", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := redisStore.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
		st = redisStore
	default:
		fileStore, err := store.NewFileStore(cfg.DataDir)
		if err != nil {
			logger.Error("open file store", slog.Any("error", err))
			os.Exit(1)
		}
		st = fileStore
	}

	catalogService := catalog.NewService(catalog.NewStoreRepository(st))
	ledgerService := ledger.NewService(ledger.NewStoreRepository(st))
	salesService := sales.NewService(sales.NewStoreRepository(st), catalogService, ledgerService)

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		CatalogHandler: catalog.NewHandler(logger, catalogService),
		SalesHandler:   sales.NewHandler(logger, salesService, ledgerService),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr), slog.String("store", cfg.StoreDriver))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
