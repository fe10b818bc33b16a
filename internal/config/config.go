// Package config provides centralized configuration management for the importer.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import "time"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Database DatabaseConfig
	Reports  ReportsConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string (required)
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	URL string `env:"DATABASE_URL" envAlt:"DB_URL" required:"true"`

	// MaxConns is the maximum number of connections in the pool (default: 4)
	MaxConns int `env:"DB_MAX_CONNS" default:"4"`

	// MinConns is the minimum number of connections to keep open (default: 1)
	MinConns int `env:"DB_MIN_CONNS" default:"1"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// MaxConnIdleTime is the maximum idle time before a connection is closed (default: 30m)
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

// ReportsConfig holds the locations of the eBay export files and the
// error-log sink. Defaults match the folder the reports are downloaded into.
type ReportsConfig struct {
	// ShipmentsPath is the eBay orders (shipment) report CSV
	ShipmentsPath string `env:"SHIPMENTS_REPORT" default:"EbayReports/Ebay Orders Report.csv"`

	// TransactionsPath is the eBay transaction report CSV
	TransactionsPath string `env:"TRANSACTIONS_REPORT" default:"EbayReports/Ebay Transaction Report.csv"`

	// ErrorLogPath is the append-only per-row error log
	ErrorLogPath string `env:"ERROR_LOG" default:"EbayReports/Ebay Import Error Log.log"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
