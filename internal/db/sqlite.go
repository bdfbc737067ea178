package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenSQLite opens the profile database, creating its directory and applying embedded
// migrations. Slow queries and errors are logged to stderr.
func OpenSQLite(dbPath string) (*gorm.DB, error) {
	return openSQLite(dbPath, gormlogger.Warn)
}

// OpenSQLiteQuiet is OpenSQLite without query logging, for CLI commands whose stdout is
// the product.
func OpenSQLiteQuiet(dbPath string) (*gorm.DB, error) {
	return openSQLite(dbPath, gormlogger.Silent)
}

func openSQLite(dbPath string, level gormlogger.LogLevel) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stderr, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  level,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return database, nil
}
