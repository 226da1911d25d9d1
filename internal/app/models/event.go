package models

import "time"

// Event defines the event model based on the 'events' table. A student
// appears in at most one of the two interest sets at a time.
type Event struct {
	ID               string    `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Description      string    `json:"description" db:"description"`
	Date             string    `json:"date" db:"event_date"`
	Category         string    `json:"category" db:"category"`
	RequiredStudents int       `json:"requiredStudents" db:"required_students"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`

	InterestedStudents    []string `json:"interestedStudents"`
	NotInterestedStudents []string `json:"notInterestedStudents"`
}
