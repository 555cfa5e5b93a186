package service

import (
	"context"
	"time"

	"fitlog/internal/lookup"
	"fitlog/internal/models"
	"fitlog/internal/repository"
	"fitlog/internal/session"
)

// Authorization covers the whole session lifecycle: credential check on
// login, cookie-token verification on every protected request, logout.
type Authorization interface {
	Login(ctx context.Context, username, password string) (string, error)
	Authenticate(token string) (models.Session, error)
	Logout(token string)
}

// Entries is validated CRUD over food and gym-log records. Every operation
// is scoped to the calling user.
type Entries interface {
	AddFood(ctx context.Context, userID int, in FoodEntryInput) (int64, error)
	UpdateFood(ctx context.Context, userID int, in FoodEntryInput) error
	DeleteFood(ctx context.Context, userID int, id int64) error
	ListFoods(ctx context.Context, userID int, f EntryFilter) ([]models.FoodEntry, error)

	AddGymLog(ctx context.Context, userID int, in GymLogInput) (int64, error)
	UpdateGymLog(ctx context.Context, userID int, in GymLogInput) error
	DeleteGymLog(ctx context.Context, userID int, id int64) error
	ListGymLogs(ctx context.Context, userID int, f EntryFilter) ([]models.GymLogEntry, error)
}

// Dashboard aggregates a user's entries into the home-page view.
type Dashboard interface {
	Overview(ctx context.Context, userID int) (models.DashboardOverview, error)
}

// Lookup searches the external food database. Faults degrade to an empty
// slice, never an error.
type Lookup interface {
	Search(ctx context.Context, query string) []models.NutritionFacts
}

// System exposes liveness probes backed by the database.
type System interface {
	DBNow(ctx context.Context) (time.Time, error)
}

type Service struct {
	Authorization
	Entries
	Dashboard
	Lookup
	System
}

// AuthConfig carries the secrets and lifetimes the auth service needs.
type AuthConfig struct {
	SigningKey []byte
	SessionTTL time.Duration
}

func NewService(repos *repository.Repository, store *session.Store, lookupClient *lookup.Client, cfg AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, store, cfg),
		Entries:       NewEntryService(repos.Foods, repos.GymLogs),
		Dashboard:     NewDashboardService(repos.Foods, repos.GymLogs),
		Lookup:        lookupClient,
		System:        NewSystemService(repos.System),
	}
}

// SystemService forwards liveness reads to the repository.
type SystemService struct {
	system repository.System
}

func NewSystemService(system repository.System) *SystemService {
	return &SystemService{system: system}
}

func (s *SystemService) DBNow(ctx context.Context) (time.Time, error) {
	return s.system.Now(ctx)
}
