package cli

import (
	"fmt"

	"github.com/terraincognita07/rangepicker/internal/db"
	"github.com/terraincognita07/rangepicker/internal/services"
)

func openProfileService(dbPath string) (*services.ProfileService, func(), error) {
	database, err := db.OpenSQLiteQuiet(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}

	repositories := db.NewRepositories(database)
	closeDatabase := func() {
		_ = sqlDB.Close()
	}
	return services.NewProfileService(repositories.Profiles), closeDatabase, nil
}
