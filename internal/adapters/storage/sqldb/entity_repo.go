package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"cattery-cms/internal/domain/catalog"
)

type scanner interface {
	Scan(dest ...any) error
}

// Table describe cómo se guarda un tipo del catálogo. id y created_at
// los maneja el repo; Columns/Values/Scan cubren el resto en el mismo orden.
type Table[T catalog.Record[T]] struct {
	Name    string
	Columns []string
	Values  func(T) []any
	// Scan recibe la fila como (id, Columns..., created_at).
	Scan func(s scanner) (T, error)
}

type EntityRepo[T catalog.Record[T]] struct {
	db    *DB
	table Table[T]
}

func NewEntityRepo[T catalog.Record[T]](db *DB, table Table[T]) *EntityRepo[T] {
	return &EntityRepo[T]{db: db, table: table}
}

func (r *EntityRepo[T]) selectCols() string {
	return "id, " + strings.Join(r.table.Columns, ", ") + ", created_at"
}

func (r *EntityRepo[T]) Create(ctx context.Context, rec T) (T, error) {
	cols := append(append([]string{}, r.table.Columns...), "created_at")
	vals := append(r.table.Values(rec), formatTime(rec.GetCreatedAt()))

	id, err := r.db.insertWithID(ctx, r.table.Name, cols, vals)
	if err != nil {
		var zero T
		return zero, err
	}
	return rec.WithMeta(id, rec.GetCreatedAt()), nil
}

func (r *EntityRepo[T]) Update(ctx context.Context, rec T) error {
	sets := make([]string, 0, len(r.table.Columns))
	for _, c := range r.table.Columns {
		sets = append(sets, c+" = ?")
	}
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", r.table.Name, strings.Join(sets, ", "))

	res, err := r.db.exec(ctx, q, append(r.table.Values(rec), rec.GetID())...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *EntityRepo[T]) GetByID(ctx context.Context, id int64) (T, error) {
	q := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", r.selectCols(), r.table.Name)
	rec, err := r.table.Scan(r.db.queryRow(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		var zero T
		return zero, catalog.ErrNotFound
	}
	return rec, err
}

// List trae todo en orden de id y filtra en memoria con Matches;
// los catálogos son chicos y así el filtro vive en un solo lugar.
func (r *EntityRepo[T]) List(ctx context.Context, f catalog.Filter) ([]T, error) {
	q := fmt.Sprintf("SELECT %s FROM %s ORDER BY id ASC", r.selectCols(), r.table.Name)
	rows, err := r.db.query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		rec, err := r.table.Scan(rows)
		if err != nil {
			return nil, err
		}
		if rec.Matches(f) {
			out = append(out, rec)
		}
	}
	return out, rows.Err()
}

func (r *EntityRepo[T]) Delete(ctx context.Context, id int64) error {
	res, err := r.db.exec(ctx, "DELETE FROM "+r.table.Name+" WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *EntityRepo[T]) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.queryRow(ctx, "SELECT COUNT(*) FROM "+r.table.Name).Scan(&n)
	return n, err
}
