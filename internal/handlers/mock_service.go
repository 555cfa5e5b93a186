package handlers

import (
	"context"
	"net/http"
	"time"

	"fitlog/internal/models"
	"fitlog/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	loginToken string
	loginErr   error
	authSess   models.Session
	authErr    error

	lastLoginUsername string
	lastLoginPassword string
	lastAuthToken     string
	logoutCalls       []string
}

func (m *mockAuth) Login(_ context.Context, username, password string) (string, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}

func (m *mockAuth) Authenticate(token string) (models.Session, error) {
	m.lastAuthToken = token
	return m.authSess, m.authErr
}

func (m *mockAuth) Logout(token string) {
	m.logoutCalls = append(m.logoutCalls, token)
}

type mockEntries struct {
	addFoodID  int64
	addFoodErr error
	updFoodErr error
	delFoodErr error
	foods      []models.FoodEntry
	listErr    error

	addGymID  int64
	addGymErr error
	updGymErr error
	delGymErr error
	gymLogs   []models.GymLogEntry

	lastUserID    int
	lastFoodInput service.FoodEntryInput
	lastGymInput  service.GymLogInput
	lastDeleteID  int64
}

func (m *mockEntries) AddFood(_ context.Context, userID int, in service.FoodEntryInput) (int64, error) {
	m.lastUserID = userID
	m.lastFoodInput = in
	return m.addFoodID, m.addFoodErr
}

func (m *mockEntries) UpdateFood(_ context.Context, userID int, in service.FoodEntryInput) error {
	m.lastUserID = userID
	m.lastFoodInput = in
	return m.updFoodErr
}

func (m *mockEntries) DeleteFood(_ context.Context, userID int, id int64) error {
	m.lastUserID = userID
	m.lastDeleteID = id
	return m.delFoodErr
}

func (m *mockEntries) ListFoods(_ context.Context, userID int, _ service.EntryFilter) ([]models.FoodEntry, error) {
	m.lastUserID = userID
	return m.foods, m.listErr
}

func (m *mockEntries) AddGymLog(_ context.Context, userID int, in service.GymLogInput) (int64, error) {
	m.lastUserID = userID
	m.lastGymInput = in
	return m.addGymID, m.addGymErr
}

func (m *mockEntries) UpdateGymLog(_ context.Context, userID int, in service.GymLogInput) error {
	m.lastUserID = userID
	m.lastGymInput = in
	return m.updGymErr
}

func (m *mockEntries) DeleteGymLog(_ context.Context, userID int, id int64) error {
	m.lastUserID = userID
	m.lastDeleteID = id
	return m.delGymErr
}

func (m *mockEntries) ListGymLogs(_ context.Context, userID int, _ service.EntryFilter) ([]models.GymLogEntry, error) {
	m.lastUserID = userID
	return m.gymLogs, m.listErr
}

type mockDashboard struct {
	overview models.DashboardOverview
	err      error

	lastUserID int
}

func (m *mockDashboard) Overview(_ context.Context, userID int) (models.DashboardOverview, error) {
	m.lastUserID = userID
	return m.overview, m.err
}

type mockLookup struct {
	results   []models.NutritionFacts
	lastQuery string
}

func (m *mockLookup) Search(_ context.Context, query string) []models.NutritionFacts {
	m.lastQuery = query
	return m.results
}

type mockSystem struct {
	now time.Time
	err error
}

func (m *mockSystem) DBNow(context.Context) (time.Time, error) {
	return m.now, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// authedSession is the session every happy-path mock hands back.
var authedSession = models.Session{
	ID:            "test-session",
	UserID:        7,
	Username:      "alice",
	Authenticated: true,
	ExpiresAt:     time.Now().Add(time.Hour),
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: sessionCookieName, Value: token}
}
