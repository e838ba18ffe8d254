package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"cattery-cms/internal/domain/admin"
)

type SettingsRepo struct {
	db *DB
}

func NewSettingsRepo(db *DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := r.db.queryRow(ctx, `SELECT setting_value FROM admin_settings WHERE setting_key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", admin.ErrNotFound
	}
	return v, err
}

func (r *SettingsRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.putByKey(ctx, keyedRow{
		table:  "admin_settings",
		keyCol: "setting_key",
		key:    key,
		cols:   []string{"setting_value"},
		vals:   []any{value},
	}, true)
	return err
}
