package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"fitlog/internal/models"
)

type FoodRepository struct {
	db *sql.DB
}

func NewFoodRepository(db *sql.DB) *FoodRepository { return &FoodRepository{db: db} }

var _ Foods = (*FoodRepository)(nil)

const (
	insertFoodSQL = `
		INSERT INTO foods (user_id, name, brand, calories, protein, carbs, fat, sodium, sugar,
			fiber, cholesterol, saturated_fat, unsaturated_fat, meal_type, entry_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	updateFoodSQL = `
		UPDATE foods SET name=?, brand=?, calories=?, protein=?, carbs=?, fat=?, sodium=?, sugar=?,
			fiber=?, cholesterol=?, saturated_fat=?, unsaturated_fat=?, meal_type=?, entry_date=?
		WHERE id=? AND user_id=?
	`

	deleteFoodSQL = `DELETE FROM foods WHERE id=? AND user_id=?`

	selectFoodsSQL = `
		SELECT id, user_id, name, brand, calories, protein, carbs, fat, sodium, sugar,
			fiber, cholesterol, saturated_fat, unsaturated_fat, meal_type, entry_date, created_at
		FROM foods`
)

// nullStr/nullFloat map optional fields to SQL arguments; nil pointers insert NULL.
func nullStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func strPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

// Insert stores a new food entry and returns its ID. CreatedAt is set here if zero.
func (r *FoodRepository) Insert(ctx context.Context, e models.FoodEntry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, insertFoodSQL,
		e.UserID,
		e.Name,
		nullStr(e.Brand),
		nullFloat(e.Calories),
		nullFloat(e.Protein),
		nullFloat(e.Carbs),
		nullFloat(e.Fat),
		nullFloat(e.Sodium),
		nullFloat(e.Sugar),
		nullFloat(e.Fiber),
		nullFloat(e.Cholesterol),
		nullFloat(e.SaturatedFat),
		nullFloat(e.UnsaturatedFat),
		e.MealType,
		e.EntryDate,
		e.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert food entry %q: %w", e.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for food entry %q: %w", e.Name, err)
	}
	return id, nil
}

// Update overwrites the full row identified by (id, user_id). A missing row is
// not an error: the statement simply affects zero rows.
func (r *FoodRepository) Update(ctx context.Context, e models.FoodEntry) error {
	_, err := r.db.ExecContext(ctx, updateFoodSQL,
		e.Name,
		nullStr(e.Brand),
		nullFloat(e.Calories),
		nullFloat(e.Protein),
		nullFloat(e.Carbs),
		nullFloat(e.Fat),
		nullFloat(e.Sodium),
		nullFloat(e.Sugar),
		nullFloat(e.Fiber),
		nullFloat(e.Cholesterol),
		nullFloat(e.SaturatedFat),
		nullFloat(e.UnsaturatedFat),
		e.MealType,
		e.EntryDate,
		e.ID,
		e.UserID,
	)
	if err != nil {
		return fmt.Errorf("update food entry %d: %w", e.ID, err)
	}
	return nil
}

// Delete removes the row identified by (id, user_id); missing rows are a no-op.
func (r *FoodRepository) Delete(ctx context.Context, userID int, id int64) error {
	if _, err := r.db.ExecContext(ctx, deleteFoodSQL, id, userID); err != nil {
		return fmt.Errorf("delete food entry %d: %w", id, err)
	}
	return nil
}

// List returns the user's food entries, most recent entry date first.
// from/to are inclusive YYYY-MM-DD bounds; empty means unbounded.
func (r *FoodRepository) List(ctx context.Context, userID int, from, to, mealType string) ([]models.FoodEntry, error) {
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
	if mealType != "" {
		conds = append(conds, "meal_type = ?")
		args = append(args, mealType)
	}

	q := selectFoodsSQL + " WHERE " + strings.Join(conds, " AND ") +
		" ORDER BY entry_date DESC, created_at DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list food entries for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.FoodEntry, 0, 32)
	for rows.Next() {
		var (
			e     models.FoodEntry
			brand sql.NullString
			nums  [10]sql.NullFloat64
		)
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Name, &brand,
			&nums[0], &nums[1], &nums[2], &nums[3], &nums[4],
			&nums[5], &nums[6], &nums[7], &nums[8], &nums[9],
			&e.MealType, &e.EntryDate, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan food entry: %w", err)
		}
		e.Brand = strPtr(brand)
		e.Calories = floatPtr(nums[0])
		e.Protein = floatPtr(nums[1])
		e.Carbs = floatPtr(nums[2])
		e.Fat = floatPtr(nums[3])
		e.Sodium = floatPtr(nums[4])
		e.Sugar = floatPtr(nums[5])
		e.Fiber = floatPtr(nums[6])
		e.Cholesterol = floatPtr(nums[7])
		e.SaturatedFat = floatPtr(nums[8])
		e.UnsaturatedFat = floatPtr(nums[9])
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food entries: %w", err)
	}
	return out, nil
}
