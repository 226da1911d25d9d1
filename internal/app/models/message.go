package models

import "time"

// Message is a team chat message. The author's name is denormalized so
// chat history survives roster changes.
type Message struct {
	ID          string    `json:"id" db:"id"`
	TeamID      string    `json:"teamId" db:"team_id"`
	StudentID   string    `json:"studentId" db:"student_id"`
	StudentName string    `json:"studentName" db:"student_name"`
	Message     string    `json:"message" db:"body"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
