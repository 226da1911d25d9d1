package models

import "time"

// Student defines the student model based on the 'students' table.
// Interests, TeamIDs and IsLeader are derived from association tables;
// IsLeader is true iff the student leads at least one team.
type Student struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Branch     string    `json:"branch" db:"branch"`
	Year       string    `json:"year" db:"year"`
	RollNumber string    `json:"rollNumber" db:"roll_number"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	Interests []string `json:"interests"`
	TeamIDs   []string `json:"teams"`
	IsLeader  bool     `json:"isLeader"`
}
