package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type SystemRepository struct {
	db *sql.DB
}

func NewSystemRepository(db *sql.DB) *SystemRepository { return &SystemRepository{db: db} }

var _ System = (*SystemRepository)(nil)

const selectNowSQL = `SELECT CURRENT_TIMESTAMP`

// sqliteTimestampLayout matches SQLite's CURRENT_TIMESTAMP text form.
const sqliteTimestampLayout = "2006-01-02 15:04:05"

// Now reads the current time through the database, proving the store answers queries.
func (r *SystemRepository) Now(ctx context.Context) (time.Time, error) {
	var raw string
	if err := r.db.QueryRowContext(ctx, selectNowSQL).Scan(&raw); err != nil {
		return time.Time{}, fmt.Errorf("select current timestamp: %w", err)
	}
	t, err := time.Parse(sqliteTimestampLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse db timestamp %q: %w", raw, err)
	}
	return t.UTC(), nil
}
