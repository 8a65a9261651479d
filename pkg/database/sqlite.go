package database

import (
	"fmt"
	"net/url"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config holds database configuration
type Config struct {
	// Path is the SQLite database file. ":memory:" opens a private
	// in-memory store, used by tests.
	Path string

	// BusyTimeoutMillis bounds how long a statement waits on a locked
	// database before failing.
	BusyTimeoutMillis int
}

// NewSQLiteConnection opens the local embedded store. The driver is
// pure Go, so the binary stays self-contained and offline-capable.
func NewSQLiteConnection(cfg Config) (*gorm.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if cfg.BusyTimeoutMillis <= 0 {
		cfg.BusyTimeoutMillis = 5000
	}

	db, err := gorm.Open(sqlite.Open(dsn(cfg)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Single logical writer: all operations serialize on one
	// connection, making the store the sole synchronization point.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func dsn(cfg Config) string {
	params := url.Values{}
	params.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", cfg.BusyTimeoutMillis))
	params.Add("_pragma", "journal_mode(WAL)")
	params.Add("_pragma", "foreign_keys(1)")
	return cfg.Path + "?" + params.Encode()
}
