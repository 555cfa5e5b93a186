package repository

import (
	"context"
	"database/sql"
	"time"

	"fitlog/internal/models"
	"fitlog/internal/repository/db"
)

// Users reads the externally managed credential table. This service never
// creates or mutates user records.
type Users interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Foods is single-statement CRUD over the foods table. Update and Delete on a
// missing id are idempotent no-ops: zero rows affected, no error.
type Foods interface {
	Insert(ctx context.Context, e models.FoodEntry) (int64, error)
	Update(ctx context.Context, e models.FoodEntry) error
	Delete(ctx context.Context, userID int, id int64) error
	List(ctx context.Context, userID int, from, to, mealType string) ([]models.FoodEntry, error)
}

// GymLogs mirrors Foods for exercise sets.
type GymLogs interface {
	Insert(ctx context.Context, e models.GymLogEntry) (int64, error)
	Update(ctx context.Context, e models.GymLogEntry) error
	Delete(ctx context.Context, userID int, id int64) error
	List(ctx context.Context, userID int, from, to string) ([]models.GymLogEntry, error)
}

// System exposes liveness reads that go through the database.
type System interface {
	Now(ctx context.Context) (time.Time, error)
}

type Repository struct {
	Users   Users
	Foods   Foods
	GymLogs GymLogs
	System  System
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Users:   NewUserRepository(sqlDB),
		Foods:   NewFoodRepository(sqlDB),
		GymLogs: NewGymLogRepository(sqlDB),
		System:  NewSystemRepository(sqlDB),
	}
}

// InitDB opens the SQLite store with a bounded pool and bootstrapped schema.
func InitDB(path string, maxOpenConns int) (*sql.DB, error) {
	return db.InitDB(path, maxOpenConns)
}
