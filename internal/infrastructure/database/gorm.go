package database

import (
	"fmt"
	"strings"
	"time"

	appconfig "estimate_agent/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	maxOpenConns    = 20
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
)

// OpenGorm opens the relational store selected by DATABASE_DRIVER.
func OpenGorm(cfg appconfig.DatabaseConfig, verbose bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case appconfig.DriverPostgres:
		dialector = postgres.Open(cfg.ConnectionString)
	case appconfig.DriverSQLite:
		dialector = sqlite.Open(SQLiteDSN(cfg.SQLitePath))
	default:
		return nil, fmt.Errorf("%w: %q", appconfig.ErrUnknownDatabaseDriver, cfg.Driver)
	}

	level := logger.Warn
	if verbose {
		level = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(level)})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Driver == appconfig.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxIdleConns)
		sqlDB.SetConnMaxLifetime(connMaxLifetime)
	}
	return db, nil
}

// SQLiteDSN turns on foreign key enforcement, which SQLite leaves off by default.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// SupportsVectors reports whether the driver can host the pgvector store.
func SupportsVectors(cfg appconfig.DatabaseConfig) bool {
	return cfg.Driver == appconfig.DriverPostgres
}
