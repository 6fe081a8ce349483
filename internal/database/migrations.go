package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/yukikurage/task-assignment-api/internal/models"
)

// Migrate creates or updates the users and tasks tables, then their indexes.
func Migrate(db *gorm.DB, log zerolog.Logger) error {
	log.Info().Msg("running database migrations")
	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := AddIndexes(db, log); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	log.Info().Msg("database migrations completed")
	return nil
}

// AddIndexes adds the indexes used by the list filters and the assignee join.
func AddIndexes(db *gorm.DB, log zerolog.Logger) error {
	indexes := []struct {
		name    string
		columns string
	}{
		// Filter columns
		{"idx_tasks_status", "status"},
		{"idx_tasks_priority", "priority"},
		{"idx_tasks_created_at", "created_at"},

		// Assignee join
		{"idx_tasks_user_id", "user_id"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(&models.Task{}, idx.name) {
			log.Debug().Str("index", idx.name).Msg("index already exists, skipping")
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON tasks (%s)", idx.name, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Info().Str("index", idx.name).Str("columns", idx.columns).Msg("created index")
	}

	return nil
}
