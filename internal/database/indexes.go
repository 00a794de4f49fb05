package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds the lookup indexes the ownership and parent filters rely on.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"clients", "idx_clients_user_id", "user_id"},
		{"projects", "idx_projects_user_id", "user_id"},
		{"projects", "idx_projects_client_id", "client_id"},
		{"tasks", "idx_tasks_user_id", "user_id"},
		{"tasks", "idx_tasks_project_id", "project_id"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Scan(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
