package models

import "time"

// Photo is an admin-curated entry in the shared photo feed. Likes are a
// set-membership toggle per student.
type Photo struct {
	ID          string    `json:"id" db:"id"`
	EventName   string    `json:"eventName" db:"event_name"`
	Description string    `json:"description" db:"description"`
	URL         string    `json:"url" db:"url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	LikedBy []string `json:"likedBy"`
}
