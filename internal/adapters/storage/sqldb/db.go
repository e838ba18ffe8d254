package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/stoolap/stoolap/pkg/driver"
)

var ErrUnsupportedDSN = errors.New("unsupported database url")

// Dialect separa lo poco que difiere entre Postgres y stoolap.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectStoolap  Dialect = "stoolap"
)

// DB envuelve el pool con su dialecto. El mutex serializa las escrituras
// que asignan id en stoolap (MAX(id)+1); Postgres usa BIGSERIAL.
type DB struct {
	*sql.DB
	dialect Dialect
	writeMu sync.Mutex
}

func (d *DB) Dialect() Dialect { return d.dialect }

// DialectFor decide el driver a partir del esquema de DATABASE_URL:
// postgres:// y postgresql:// => pgx; memory://, file:// y db:// => stoolap.
func DialectFor(dsn string) (Dialect, error) {
	scheme, _, ok := strings.Cut(strings.TrimSpace(dsn), "://")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}
	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		return DialectPostgres, nil
	case "memory", "file", "db":
		return DialectStoolap, nil
	default:
		return "", fmt.Errorf("%w: scheme %q", ErrUnsupportedDSN, scheme)
	}
}

// Open abre el pool según el dialecto y hace ping.
func Open(dsn string) (*DB, error) {
	dialect, err := DialectFor(dsn)
	if err != nil {
		return nil, err
	}

	driverName := "pgx"
	if dialect == DialectStoolap {
		driverName = "stoolap"
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}

	if dialect == DialectPostgres {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxIdleTime(5 * time.Minute)
		db.SetConnMaxLifetime(30 * time.Minute)
	} else {
		// embebida: una sola conexión para que memory:// sea una única base
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &DB{DB: db, dialect: dialect}, nil
}

// rebind pasa placeholders ? a $n para Postgres. Las queries de este paquete
// no llevan ? dentro de literales.
func (d *DB) rebind(query string) string {
	if d.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$")
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (d *DB) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.ExecContext(ctx, d.rebind(query), args...)
}

func (d *DB) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return d.QueryContext(ctx, d.rebind(query), args...)
}

func (d *DB) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return d.QueryRowContext(ctx, d.rebind(query), args...)
}

// insertWithID inserta una fila en una tabla con id entero y devuelve el id asignado.
func (d *DB) insertWithID(ctx context.Context, table string, cols []string, vals []any) (int64, error) {
	marks := strings.TrimSuffix(strings.Repeat("?,", len(cols)), ",")

	if d.dialect == DialectPostgres {
		q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id", table, strings.Join(cols, ", "), marks)
		var id int64
		if err := d.queryRow(ctx, q, vals...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(id), 0) + 1 FROM "+table).Scan(&id); err != nil {
		return 0, err
	}

	q := fmt.Sprintf("INSERT INTO %s (id, %s) VALUES (?, %s)", table, strings.Join(cols, ", "), marks)
	if _, err := tx.ExecContext(ctx, q, append([]any{id}, vals...)...); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// Los timestamps se guardan como texto RFC3339 en ambos motores.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
