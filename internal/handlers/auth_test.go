package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"fitlog/internal/service"
)

func postForm(router http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginProcess_Success(t *testing.T) {
	auth := &mockAuth{loginToken: "signed-token"}
	router := newTestRouter(&service.Service{Authorization: auth})

	w := postForm(router, "/loginProcess", url.Values{
		"username": {"alice"},
		"password": {"s3cr3t"},
	})

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d (body: %s)", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/home" {
		t.Fatalf("expected redirect to /home, got %q", loc)
	}
	if auth.lastLoginUsername != "alice" || auth.lastLoginPassword != "s3cr3t" {
		t.Fatalf("credentials not forwarded: %q / %q", auth.lastLoginUsername, auth.lastLoginPassword)
	}

	var found bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name == sessionCookieName {
			found = true
			if ck.Value != "signed-token" {
				t.Errorf("expected token in cookie, got %q", ck.Value)
			}
			if !ck.HttpOnly {
				t.Errorf("session cookie must be HttpOnly")
			}
		}
	}
	if !found {
		t.Fatalf("expected session cookie to be set")
	}
}

func TestLoginProcess_InvalidCredentials(t *testing.T) {
	// Unknown user and wrong password both surface the same generic message.
	auth := &mockAuth{loginErr: service.ErrInvalidCredentials}
	router := newTestRouter(&service.Service{Authorization: auth})

	w := postForm(router, "/loginProcess", url.Values{
		"username": {"ghost"},
		"password": {"whatever"},
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), msgInvalidCredentials) {
		t.Fatalf("expected generic credential message, got: %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "user") && strings.Contains(w.Body.String(), "not found") {
		t.Fatalf("response leaks account existence: %s", w.Body.String())
	}
}

func TestLoginProcess_InfrastructureError(t *testing.T) {
	auth := &mockAuth{loginErr: errors.New("db down")}
	router := newTestRouter(&service.Service{Authorization: auth})

	w := postForm(router, "/loginProcess", url.Values{
		"username": {"alice"},
		"password": {"pw"},
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "db down") {
		t.Fatalf("internal error detail leaked to the client: %s", w.Body.String())
	}
}

func TestRoot_RedirectsByAuthState(t *testing.T) {
	t.Run("authenticated goes home", func(t *testing.T) {
		router := newTestRouter(&service.Service{Authorization: &mockAuth{authSess: authedSession}})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(sessionCookie("good"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusFound || w.Header().Get("Location") != "/home" {
			t.Fatalf("expected 302 to /home, got %d -> %q", w.Code, w.Header().Get("Location"))
		}
	})

	t.Run("anonymous goes to login", func(t *testing.T) {
		router := newTestRouter(&service.Service{Authorization: &mockAuth{}})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
			t.Fatalf("expected 302 to /login, got %d -> %q", w.Code, w.Header().Get("Location"))
		}
	})
}

func TestLoginPage_Serves(t *testing.T) {
	router := newTestRouter(&service.Service{Authorization: &mockAuth{}})

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "/loginProcess") {
		t.Fatalf("login page must post to /loginProcess")
	}
}

func TestLogout_InvalidatesSessionAndRedirects(t *testing.T) {
	auth := &mockAuth{authSess: authedSession}
	router := newTestRouter(&service.Service{Authorization: auth})

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(sessionCookie("good-token"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Fatalf("expected 302 to /login, got %d -> %q", w.Code, w.Header().Get("Location"))
	}
	if len(auth.logoutCalls) != 1 || auth.logoutCalls[0] != "good-token" {
		t.Fatalf("expected one Logout call with the cookie token, got %v", auth.logoutCalls)
	}

	cleared := false
	for _, ck := range w.Result().Cookies() {
		if ck.Name == sessionCookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("expected session cookie to be cleared on logout")
	}
}
