package models

import "time"

// Admin holds the portal's single moderation credential.
type Admin struct {
	ID           string    `json:"id" db:"id"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
