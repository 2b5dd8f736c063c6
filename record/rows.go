package record

import (
	"database/sql"
	"fmt"
)

// FromRows drains an open result set into records keyed by column name.
// The caller keeps ownership of rows and closes it.
func FromRows(rows *sql.Rows) ([]Record, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var out []Record

	for rows.Next() {
		values := make([]any, len(cols))
		dest := make([]any, len(cols))

		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row %d: %w", len(out), err)
		}

		rec := make(Record, len(cols))
		for i, c := range cols {
			rec[c] = values[i]
		}

		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return out, nil
}
