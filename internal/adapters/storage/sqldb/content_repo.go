package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"cattery-cms/internal/domain/content"
)

type ContentRepo struct {
	db *DB
}

func NewContentRepo(db *DB) *ContentRepo {
	return &ContentRepo{db: db}
}

func (r *ContentRepo) Get(ctx context.Context, pageName string) (content.Envelope, error) {
	var (
		e         content.Envelope
		updatedAt string
	)
	err := r.db.queryRow(ctx, `
		SELECT id, page_name, content, updated_at
		FROM page_content
		WHERE page_name = ?
	`, pageName).Scan(&e.ID, &e.PageName, &e.Content, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return content.Envelope{}, content.ErrNotFound
	}
	if err != nil {
		return content.Envelope{}, err
	}

	e.UpdatedAt, err = parseTime(updatedAt)
	return e, err
}

func (r *ContentRepo) Upsert(ctx context.Context, e content.Envelope) (content.Envelope, error) {
	_, err := r.db.putByKey(ctx, keyedRow{
		table:  "page_content",
		keyCol: "page_name",
		key:    e.PageName,
		cols:   []string{"content", "updated_at"},
		vals:   []any{e.Content, formatTime(e.UpdatedAt)},
		serial: true,
	}, true)
	if err != nil {
		return content.Envelope{}, err
	}
	return r.Get(ctx, e.PageName)
}

func (r *ContentRepo) InsertIfMissing(ctx context.Context, e content.Envelope) (bool, error) {
	return r.db.putByKey(ctx, keyedRow{
		table:  "page_content",
		keyCol: "page_name",
		key:    e.PageName,
		cols:   []string{"content", "updated_at"},
		vals:   []any{e.Content, formatTime(e.UpdatedAt)},
		serial: true,
	}, false)
}
