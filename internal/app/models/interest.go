package models

import "time"

// Interest is a globally unique catalog tag curated by the admin.
// Students and teams reference interests by name, not by id.
type Interest struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
