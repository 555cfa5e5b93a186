package service

import (
	"context"
	"errors"
	"fmt"

	"fitlog/internal/models"
	"fitlog/internal/repository"
	"fitlog/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows. ErrInvalidCredentials deliberately covers
// both an unknown username and a wrong password so responses cannot reveal
// which one failed.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSession     = errors.New("invalid session")
)

// AuthService checks credentials against the user table and manages the
// server-side session behind the signed cookie token.
type AuthService struct {
	users repository.Users
	store *session.Store
	cfg   AuthConfig
}

func NewAuthService(users repository.Users, store *session.Store, cfg AuthConfig) *AuthService {
	return &AuthService{users: users, store: store, cfg: cfg}
}

// sessionClaims binds the cookie token to a server-side session: the jti
// registered claim carries the session id.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// Login validates credentials, opens a session, and returns the signed
// cookie token. Unknown usernames and bad passwords are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("login lookup: %w", err)
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	sess := s.store.Create(u.ID, u.Username)
	return s.signToken(sess)
}

// Authenticate verifies a cookie token and resolves its live session.
// A bad signature, an expired token, or a session revoked by logout, TTL,
// or restart all yield ErrInvalidSession.
func (s *AuthService) Authenticate(token string) (models.Session, error) {
	id, err := s.parseToken(token)
	if err != nil {
		return models.Session{}, ErrInvalidSession
	}

	sess, ok := s.store.Get(id)
	if !ok {
		return models.Session{}, ErrInvalidSession
	}
	return sess, nil
}

// Logout revokes the session behind the token. Invalid tokens are a no-op:
// the caller ends up logged out either way.
func (s *AuthService) Logout(token string) {
	id, err := s.parseToken(token)
	if err != nil {
		return
	}
	s.store.Delete(id)
}

func (s *AuthService) signToken(sess models.Session) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			Subject:   sess.Username,
			IssuedAt:  jwt.NewNumericDate(sess.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
		UserID: sess.UserID,
	})
	signed, err := token.SignedString(s.cfg.SigningKey)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) parseToken(raw string) (string, error) {
	token, err := jwt.ParseWithClaims(raw, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.cfg.SigningKey, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return "", ErrInvalidSession
	}
	return claims.ID, nil
}
