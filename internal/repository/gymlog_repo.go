package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"fitlog/internal/models"
)

type GymLogRepository struct {
	db *sql.DB
}

func NewGymLogRepository(db *sql.DB) *GymLogRepository { return &GymLogRepository{db: db} }

var _ GymLogs = (*GymLogRepository)(nil)

const (
	insertGymLogSQL = `
		INSERT INTO gym_logs (user_id, exercise, weight, reps, entry_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	updateGymLogSQL = `
		UPDATE gym_logs SET exercise=?, weight=?, reps=?, entry_date=?
		WHERE id=? AND user_id=?
	`

	deleteGymLogSQL = `DELETE FROM gym_logs WHERE id=? AND user_id=?`

	selectGymLogsSQL = `
		SELECT id, user_id, exercise, weight, reps, entry_date, created_at
		FROM gym_logs`
)

// Insert stores a new gym-log entry and returns its ID.
func (r *GymLogRepository) Insert(ctx context.Context, e models.GymLogEntry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, insertGymLogSQL,
		e.UserID,
		e.Exercise,
		nullFloat(e.Weight),
		nullInt(e.Reps),
		e.EntryDate,
		e.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert gym log %q: %w", e.Exercise, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for gym log %q: %w", e.Exercise, err)
	}
	return id, nil
}

// Update overwrites the row identified by (id, user_id); missing rows are a no-op.
func (r *GymLogRepository) Update(ctx context.Context, e models.GymLogEntry) error {
	_, err := r.db.ExecContext(ctx, updateGymLogSQL,
		e.Exercise,
		nullFloat(e.Weight),
		nullInt(e.Reps),
		e.EntryDate,
		e.ID,
		e.UserID,
	)
	if err != nil {
		return fmt.Errorf("update gym log %d: %w", e.ID, err)
	}
	return nil
}

// Delete removes the row identified by (id, user_id); missing rows are a no-op.
func (r *GymLogRepository) Delete(ctx context.Context, userID int, id int64) error {
	if _, err := r.db.ExecContext(ctx, deleteGymLogSQL, id, userID); err != nil {
		return fmt.Errorf("delete gym log %d: %w", id, err)
	}
	return nil
}

// List returns the user's gym logs, most recent entry date first.
func (r *GymLogRepository) List(ctx context.Context, userID int, from, to string) ([]models.GymLogEntry, error) {
	conds := []string{"user_id = ?"}
	args := []any{userID}

	if from != "" {
		conds = append(conds, "entry_date >= ?")
		args = append(args, from)
	}
	if to != "" {
		conds = append(conds, "entry_date <= ?")
		args = append(args, to)
	}

	q := selectGymLogsSQL + " WHERE " + strings.Join(conds, " AND ") +
		" ORDER BY entry_date DESC, created_at DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list gym logs for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.GymLogEntry, 0, 32)
	for rows.Next() {
		var (
			e      models.GymLogEntry
			weight sql.NullFloat64
			reps   sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.Exercise, &weight, &reps, &e.EntryDate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan gym log: %w", err)
		}
		e.Weight = floatPtr(weight)
		e.Reps = intPtr(reps)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gym logs: %w", err)
	}
	return out, nil
}
