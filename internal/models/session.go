package models

import "time"

// Session is per-browser login state held in process memory.
// It disappears on logout, expiry, or process restart.
type Session struct {
	ID            string    `json:"-"` // opaque token id, never serialized
	UserID        int       `json:"user_id"`
	Username      string    `json:"username"`
	Authenticated bool      `json:"authenticated"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}
