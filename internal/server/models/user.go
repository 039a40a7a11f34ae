// Package models holds the server-side data structures persisted by the
// repositories.
package models

import "time"

// User is an account record. PasswordHash is a salted bcrypt hash; the raw
// password is never stored. Accounts are soft-deleted via IsActive only.
type User struct {
	ID            int64
	Name          string
	Email         string
	PasswordHash  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	LastLogin     *time.Time
	EmailVerified bool
	IsActive      bool
}
