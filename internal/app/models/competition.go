package models

import "time"

// Competition is an admin-announced contest.
type Competition struct {
	ID             string    `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Description    string    `json:"description" db:"description"`
	SkillsRequired string    `json:"skillsRequired" db:"skills_required"`
	Rules          string    `json:"rules" db:"rules"`
	EventDate      string    `json:"eventDate" db:"event_date"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
