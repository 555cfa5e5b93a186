package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fitlog/internal/models"
	"fitlog/internal/service"
)

func TestSessionMiddleware_NoCookieRedirectsToLogin(t *testing.T) {
	router := newTestRouter(&service.Service{Authorization: &mockAuth{}})

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestSessionMiddleware_InvalidSessionRedirectsAndClearsCookie(t *testing.T) {
	auth := &mockAuth{authErr: service.ErrInvalidSession}
	router := newTestRouter(&service.Service{Authorization: auth})

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(sessionCookie("stale-token"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
	if auth.lastAuthToken != "stale-token" {
		t.Fatalf("middleware did not pass the cookie token, got %q", auth.lastAuthToken)
	}

	cleared := false
	for _, ck := range w.Result().Cookies() {
		if ck.Name == sessionCookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected the stale session cookie to be cleared")
	}
}

func TestSessionMiddleware_ValidSessionPassesThrough(t *testing.T) {
	auth := &mockAuth{authSess: authedSession}
	dash := &mockDashboard{overview: models.DashboardOverview{}}
	router := newTestRouter(&service.Service{Authorization: auth, Dashboard: dash})

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req.AddCookie(sessionCookie("good-token"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", w.Code, w.Body.String())
	}
	if dash.lastUserID != authedSession.UserID {
		t.Fatalf("expected handler scoped to user %d, got %d", authedSession.UserID, dash.lastUserID)
	}
}

func TestProtectedRoutes_AllGated(t *testing.T) {
	router := newTestRouter(&service.Service{Authorization: &mockAuth{authErr: service.ErrInvalidSession}})

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/home"},
		{http.MethodGet, "/logout"},
		{http.MethodPost, "/addFood"},
		{http.MethodPost, "/updateFood"},
		{http.MethodPost, "/deleteFood"},
		{http.MethodPost, "/addGymLog"},
		{http.MethodPost, "/updateGymLog"},
		{http.MethodPost, "/deleteGymLog"},
		{http.MethodGet, "/searchFood"},
		{http.MethodPost, "/addFoodFromSearch"},
		{http.MethodGet, "/ws"},
	}

	for _, rt := range routes {
		req := httptest.NewRequest(rt.method, rt.path, nil)
		req.AddCookie(sessionCookie("bad"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
			t.Errorf("%s %s: expected 302 to /login, got %d -> %q",
				rt.method, rt.path, w.Code, w.Header().Get("Location"))
		}
	}
}
