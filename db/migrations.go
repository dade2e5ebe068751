package db

import (
	"fmt"

	"gorm.io/gorm"
)

// CreateRelationEnums создает типы ENUM для акторов и запросов, если они не существуют
func CreateRelationEnums(db *gorm.DB) error {
	// SQLite (тесты) не поддерживает DO-блоки и enum-типы
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	createEnumsSQL := `
	DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'actor_type') THEN
			CREATE TYPE actor_type AS ENUM ('user', 'business', 'team', 'page');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'request_type') THEN
			CREATE TYPE request_type AS ENUM ('follow', 'friend');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'request_status') THEN
			CREATE TYPE request_status AS ENUM ('pending', 'accepted', 'rejected');
		END IF;
	END
	$$;
	`
	if err := db.Exec(createEnumsSQL).Error; err != nil {
		return fmt.Errorf("failed to create relation enums: %w", err)
	}
	return nil
}

// CreateRequestIndexes создает составные индексы для выборок по направлению и типу
func CreateRequestIndexes(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_requests_requestee_type_status
			ON relation_requests (requestee_id, request_type, status);`,
		`CREATE INDEX IF NOT EXISTS idx_requests_requester_type_status
			ON relation_requests (requester_id, request_type, status);`,
	}
	for _, sql := range indexes {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create request index: %w", err)
		}
	}
	return nil
}
