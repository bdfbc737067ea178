package db

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	embeddedmigrations "github.com/terraincognita07/rangepicker/migrations"
	"gorm.io/gorm"
)

var (
	migrationNamePattern = regexp.MustCompile(`^(\d+)_[a-z0-9_]+\.sql$`)
	addColumnPattern     = regexp.MustCompile(`(?i)^ALTER\s+TABLE\s+"?(\w+)"?\s+ADD\s+COLUMN\s+"?(\w+)"?`)
)

type sqlMigration struct {
	Version string
	Order   int
	Name    string
	SQL     string
}

// schemaMigration records one applied migration file.
type schemaMigration struct {
	Version   string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

func applyEmbeddedMigrations(database *gorm.DB) error {
	return applyMigrations(database, embeddedmigrations.Files)
}

// applyMigrations runs every not yet recorded migration from source in version order,
// each in its own transaction.
func applyMigrations(database *gorm.DB, source fs.FS) error {
	if err := database.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("prepare schema_migrations: %w", err)
	}

	pending, err := loadMigrations(source)
	if err != nil {
		return err
	}

	var applied []schemaMigration
	if err := database.Find(&applied).Error; err != nil {
		return fmt.Errorf("load applied migrations: %w", err)
	}
	done := make(map[string]bool, len(applied))
	for _, migration := range applied {
		done[migration.Version] = true
	}

	for _, migration := range pending {
		if done[migration.Version] {
			continue
		}
		if err := runMigration(database, migration); err != nil {
			return err
		}
	}
	return nil
}

func loadMigrations(source fs.FS) ([]sqlMigration, error) {
	entries, err := fs.ReadDir(source, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	migrations := make([]sqlMigration, 0, len(entries))
	owners := make(map[string]string, len(entries))
	for _, entry := range entries {
		matches := migrationNamePattern.FindStringSubmatch(entry.Name())
		if entry.IsDir() || matches == nil {
			continue
		}

		version := matches[1]
		if owner, exists := owners[version]; exists {
			return nil, fmt.Errorf("migration version %s used by %s and %s", version, owner, entry.Name())
		}
		owners[version] = entry.Name()

		order, err := strconv.Atoi(version)
		if err != nil {
			return nil, fmt.Errorf("parse migration version %s: %w", entry.Name(), err)
		}
		content, err := fs.ReadFile(source, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}

		migrations = append(migrations, sqlMigration{Version: version, Order: order, Name: entry.Name(), SQL: string(content)})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Order < migrations[j].Order
	})
	return migrations, nil
}

func runMigration(database *gorm.DB, migration sqlMigration) error {
	statements := sqlStatements(migration.SQL)
	if len(statements) == 0 {
		return fmt.Errorf("migration %s: %w", migration.Name, errors.New("no statements"))
	}

	return database.Transaction(func(tx *gorm.DB) error {
		for _, statement := range statements {
			if columnAlreadyAdded(tx, statement) {
				continue
			}
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("migration %s: %w", migration.Name, err)
			}
		}

		record := schemaMigration{Version: migration.Version, Name: migration.Name, AppliedAt: time.Now().UTC()}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", migration.Name, err)
		}
		return nil
	})
}

func sqlStatements(script string) []string {
	parts := strings.Split(script, ";")
	statements := make([]string, 0, len(parts))
	for _, part := range parts {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}

// columnAlreadyAdded lets ADD COLUMN migrations run against databases where the column
// was created some other way.
func columnAlreadyAdded(database *gorm.DB, statement string) bool {
	matches := addColumnPattern.FindStringSubmatch(statement)
	if matches == nil {
		return false
	}
	return database.Migrator().HasColumn(matches[1], matches[2])
}
