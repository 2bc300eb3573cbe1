package weather

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Lookup is one recorded weather query.
type Lookup struct {
	City      string
	TempC     int
	Condition string
	At        time.Time
}

// History persists past lookups in a local sqlite database.
type History struct {
	db *sql.DB
}

func OpenHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &History{db: db}, nil
}

func (h *History) Close() error {
	if h == nil || h.db == nil {
		return nil
	}
	return h.db.Close()
}

func (h *History) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS lookups (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  city TEXT NOT NULL,
  temp_c INTEGER NOT NULL,
  condition TEXT NOT NULL,
  looked_up_at TEXT NOT NULL
);
`
	if _, err := h.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (h *History) Save(ctx context.Context, report Report) error {
	_, err := h.db.ExecContext(ctx, `
INSERT INTO lookups (city, temp_c, condition, looked_up_at)
VALUES (?, ?, ?, ?)
`, report.City, report.TempC, report.Condition, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save lookup for %s: %w", report.City, err)
	}
	return nil
}

func (h *History) Recent(ctx context.Context, limit int) ([]Lookup, error) {
	if limit < 1 {
		limit = 10
	}
	rows, err := h.db.QueryContext(ctx, `
SELECT city, temp_c, condition, looked_up_at
FROM lookups
ORDER BY looked_up_at DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query lookups: %w", err)
	}
	defer rows.Close()

	lookups := make([]Lookup, 0, limit)
	for rows.Next() {
		var lookup Lookup
		var at string
		if err := rows.Scan(&lookup.City, &lookup.TempC, &lookup.Condition, &at); err != nil {
			return nil, fmt.Errorf("scan lookup: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, at); err == nil {
			lookup.At = parsed
		}
		lookups = append(lookups, lookup)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lookups: %w", err)
	}
	return lookups, nil
}
