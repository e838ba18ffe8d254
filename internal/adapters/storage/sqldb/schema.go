package sqldb

import (
	"context"
	"fmt"
)

func schema(d Dialect) []string {
	idCol := "id INTEGER PRIMARY KEY"
	keyCol := "TEXT NOT NULL"
	// page_content se busca por page_name, pero también expone un id numérico
	serialCol := "id INTEGER NOT NULL"
	if d == DialectPostgres {
		idCol = "id BIGSERIAL PRIMARY KEY"
		keyCol = "TEXT PRIMARY KEY"
		serialCol = "id BIGSERIAL NOT NULL"
	}

	return []string{
		`CREATE TABLE IF NOT EXISTS page_content (
			` + serialCol + `,
			page_name ` + keyCol + `,
			content TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS kittens (
			` + idCol + `,
			name TEXT NOT NULL,
			birth_date TEXT,
			color TEXT,
			gender TEXT NOT NULL,
			price FLOAT,
			description TEXT,
			image_url TEXT,
			available BOOLEAN,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS parents (
			` + idCol + `,
			name TEXT NOT NULL,
			gender TEXT NOT NULL,
			color TEXT,
			description TEXT,
			image_url TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			` + idCol + `,
			name TEXT NOT NULL,
			description TEXT,
			price FLOAT,
			category TEXT,
			image_url TEXT,
			stock_quantity INTEGER,
			available BOOLEAN,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS waiting_list (
			` + idCol + `,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			preferences TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS admin_settings (
			setting_key ` + keyCol + `,
			setting_value TEXT NOT NULL
		)`,
	}
}

// Migrate crea las tablas que falten. Es idempotente.
func Migrate(ctx context.Context, db *DB) error {
	for _, stmt := range schema(db.dialect) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
