package database

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bibl/internal/config"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase connects to the configured store, retrying until the ping
// succeeds or the attempts run out, then applies the schema migration.
// Any failure is returned as a *ConnectivityError.
func NewDatabase(cfg config.Database) (*Database, error) {
	db, err := connectWithRetry(cfg)
	if err != nil {
		return nil, &ConnectivityError{Op: "connect", Err: err}
	}

	if err := Migrate(context.Background(), db); err != nil {
		closeQuietly(db)
		return nil, err
	}

	log.Printf("Database initialized successfully at %s", cfg.Redacted())

	return &Database{DB: db}, nil
}

// Open wraps an existing gorm connection, used by tests and tooling that
// manage the connection themselves.
func Open(db *gorm.DB) *Database {
	return &Database{DB: db}
}

func connectWithRetry(cfg config.Database) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	attempts := cfg.ConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := gorm.Open(dialector, &gorm.Config{
			Logger: logger.Default.LogMode(parseLogLevel(cfg.LogLevel)),
		})
		if err == nil {
			err = pingAndConfigure(db, cfg)
			if err == nil {
				return db, nil
			}
			closeQuietly(db)
		}
		lastErr = err

		log.Printf("db not ready (attempt %d/%d): %v", attempt, attempts, err)
		if attempt < attempts {
			time.Sleep(cfg.ConnectDelay)
		}
	}

	return nil, fmt.Errorf("could not connect after %d attempts: %w", attempts, lastErr)
}

func dialectorFor(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return SQLiteDialector(cfg.SQLiteDSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func pingAndConfigure(db *gorm.DB, cfg config.Database) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Ping(); err != nil {
		return err
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	return nil
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func closeQuietly(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Ping verifies the connection is still usable.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
