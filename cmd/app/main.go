package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ForecastLedger_Go/internal/bank"
	"github.com/osse101/ForecastLedger_Go/internal/clock"
	"github.com/osse101/ForecastLedger_Go/internal/config"
	"github.com/osse101/ForecastLedger_Go/internal/database"
	"github.com/osse101/ForecastLedger_Go/internal/database/postgres"
	"github.com/osse101/ForecastLedger_Go/internal/handler"
	"github.com/osse101/ForecastLedger_Go/internal/ledger"
	"github.com/osse101/ForecastLedger_Go/internal/logger"
	"github.com/osse101/ForecastLedger_Go/internal/server"
	"github.com/osse101/ForecastLedger_Go/internal/tournament"
)

const (
	shutdownTimeout = 10 * time.Second
	migrationsDir   = "migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, logger.DefaultServiceName, cfg.Version, cfg.Environment, false))

	store, checker, err := buildStore(cfg)
	if err != nil {
		slog.Error("Failed to build store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}

	genesis := time.UnixMilli(cfg.GenesisUnixMS)
	tickClock := clock.NewWall(genesis, cfg.TickInterval)

	ledgerBank := bank.NewMemory()

	tournamentService, err := tournament.NewService(store, ledgerBank, tickClock)
	if err != nil {
		slog.Error("Failed to create tournament service", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, tournamentService, ledgerBank, checker)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced shutdown", "error", err)
	}

	if err := store.Close(); err != nil {
		slog.Error("Store close failed", "error", err)
	}

	slog.Info("Server stopped")
}

// buildStore constructs the ledger store for the configured backend along
// with an optional readiness checker. Closing the store releases the backend.
func buildStore(cfg *config.Config) (ledger.Store, handler.HealthChecker, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), config.DefaultMaxConnections, config.DefaultMaxConnIdleTime, config.DefaultMaxConnLifetime)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(pool, migrationsDir); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return postgres.NewLedgerStore(pool), poolChecker(pool), nil

	case config.StoreBackendLevelDB:
		kv, err := ledger.OpenLevelKV(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return ledger.NewStore(kv), nil, nil

	default:
		return ledger.NewStore(ledger.NewMemoryKV()), nil, nil
	}
}

func poolChecker(pool *pgxpool.Pool) handler.HealthChecker {
	return handler.HealthCheckFunc(func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
}
