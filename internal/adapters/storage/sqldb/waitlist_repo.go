package sqldb

import (
	"context"

	"cattery-cms/internal/domain/waitlist"
)

type WaitlistRepo struct {
	db *DB
}

func NewWaitlistRepo(db *DB) *WaitlistRepo {
	return &WaitlistRepo{db: db}
}

func (r *WaitlistRepo) Create(ctx context.Context, e waitlist.Entry) (waitlist.Entry, error) {
	id, err := r.db.insertWithID(ctx, "waiting_list",
		[]string{"name", "email", "phone", "preferences", "created_at"},
		[]any{e.Name, e.Email, e.Phone, e.Preferences, formatTime(e.CreatedAt)},
	)
	if err != nil {
		return waitlist.Entry{}, err
	}
	e.ID = id
	return e, nil
}

func (r *WaitlistRepo) List(ctx context.Context) ([]waitlist.Entry, error) {
	rows, err := r.db.query(ctx, `
		SELECT id, name, email, phone, COALESCE(preferences, ''), created_at
		FROM waiting_list
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []waitlist.Entry{}
	for rows.Next() {
		var (
			e         waitlist.Entry
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Preferences, &createdAt); err != nil {
			return nil, err
		}
		if e.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *WaitlistRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.exec(ctx, `DELETE FROM waiting_list WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return waitlist.ErrNotFound
	}
	return nil
}
