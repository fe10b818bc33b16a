package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/gamestash/ebayimport/internal/config"
	"github.com/gamestash/ebayimport/internal/errlog"
	"github.com/gamestash/ebayimport/internal/importer"
	"github.com/gamestash/ebayimport/internal/logging"
	"github.com/gamestash/ebayimport/internal/store"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	logger := logging.ForRun(uuid.NewString())

	logger.Info("configuration loaded",
		"shipments_report", cfg.Reports.ShipmentsPath,
		"transactions_report", cfg.Reports.TransactionsPath,
		"error_log", cfg.Reports.ErrorLogPath,
		"db_max_conns", cfg.Database.MaxConns,
	)

	// Parse and configure connection pool
	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		logger.Error("failed to parse database URL", "error", err)
		os.Exit(1)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

	// Connect to database
	ctx := context.Background()
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	// Log which database we connected to
	if u, err := url.Parse(cfg.Database.URL); err == nil {
		dbName := strings.TrimPrefix(u.Path, "/")
		logger.Info("connected to database", "name", dbName)
	} else {
		logger.Info("connected to database")
	}

	// Open the per-row error log; failures before this point never reach it
	errs, err := errlog.Open(cfg.Reports.ErrorLogPath)
	if err != nil {
		logger.Error("failed to open error log", "error", err)
		os.Exit(1)
	}
	defer errs.Close()

	imp := importer.New(store.NewStore(pool), errs, logger)

	// Pass one: shipments. Builds the order->shipment map the sale pass
	// joins against, so it must complete first.
	shipments, err := os.Open(cfg.Reports.ShipmentsPath)
	if err != nil {
		logger.Error("failed to open shipments report", "error", err)
		os.Exit(1)
	}
	byOrder, shipRes, err := imp.ImportShipments(ctx, shipments)
	shipments.Close()
	if err != nil {
		logger.Error("shipment import failed", "error", err)
		os.Exit(1)
	}

	// Pass two: sales and line-items
	transactions, err := os.Open(cfg.Reports.TransactionsPath)
	if err != nil {
		logger.Error("failed to open transactions report", "error", err)
		os.Exit(1)
	}
	saleRes, err := imp.ImportSales(ctx, transactions, byOrder)
	transactions.Close()
	if err != nil {
		logger.Error("sale import failed", "error", err)
		os.Exit(1)
	}

	logger.Info("import complete",
		"shipments_inserted", shipRes.Inserted,
		"sales_inserted", saleRes.Inserted,
		"sale_items", saleRes.Items,
		"shipping_costs_updated", saleRes.Updated,
		"rows_failed", shipRes.Failed+saleRes.Failed,
	)
}
