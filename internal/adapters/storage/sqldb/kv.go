package sqldb

import (
	"context"
	"fmt"
	"strings"
)

// keyedRow es una fila identificada por una clave de texto única.
// serial indica que la tabla además tiene una columna id que hay que llenar al insertar.
type keyedRow struct {
	table  string
	keyCol string
	key    string
	cols   []string
	vals   []any
	serial bool
}

// putByKey escribe la fila. overwrite=false no toca filas existentes. Devuelve true si insertó.
func (d *DB) putByKey(ctx context.Context, row keyedRow, overwrite bool) (bool, error) {
	allCols := append([]string{row.keyCol}, row.cols...)
	allVals := append([]any{row.key}, row.vals...)

	if d.dialect == DialectPostgres {
		// en postgres el id sale del BIGSERIAL
		marks := strings.TrimSuffix(strings.Repeat("?,", len(allCols)), ",")
		insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", row.table, strings.Join(allCols, ", "), marks)
		q := insert + fmt.Sprintf(" ON CONFLICT (%s) DO NOTHING", row.keyCol)
		if overwrite {
			sets := make([]string, 0, len(row.cols))
			for _, c := range row.cols {
				sets = append(sets, c+" = EXCLUDED."+c)
			}
			q = insert + fmt.Sprintf(" ON CONFLICT (%s) DO UPDATE SET %s", row.keyCol, strings.Join(sets, ", "))
		}
		res, err := d.exec(ctx, q, allVals...)
		if err != nil {
			return false, err
		}
		n, _ := res.RowsAffected()
		return n > 0 && !overwrite, nil
	}

	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	var count int
	if err := d.queryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ?", row.table, row.keyCol), row.key).Scan(&count); err != nil {
		return false, err
	}

	if count == 0 {
		if row.serial {
			var id int64
			if err := d.queryRow(ctx, "SELECT COALESCE(MAX(id), 0) + 1 FROM "+row.table).Scan(&id); err != nil {
				return false, err
			}
			allCols = append([]string{"id"}, allCols...)
			allVals = append([]any{id}, allVals...)
		}
		marks := strings.TrimSuffix(strings.Repeat("?,", len(allCols)), ",")
		insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", row.table, strings.Join(allCols, ", "), marks)
		if _, err := d.exec(ctx, insert, allVals...); err != nil {
			return false, err
		}
		return true, nil
	}
	if !overwrite {
		return false, nil
	}

	sets := make([]string, 0, len(row.cols))
	for _, c := range row.cols {
		sets = append(sets, c+" = ?")
	}
	q := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", row.table, strings.Join(sets, ", "), row.keyCol)
	if _, err := d.exec(ctx, q, append(append([]any{}, row.vals...), row.key)...); err != nil {
		return false, err
	}
	return false, nil
}
