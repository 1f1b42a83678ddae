// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an administrator account. A single bootstrap account is created at
// startup; the API never exposes the password hash.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
