package models

// User is one row of the externally managed credential table. This app only
// reads users; accounts are provisioned out-of-band.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
}
