package models

import "time"

// TeamRequest is a student's proposal to join a team. It starts pending
// and is resolved exactly once by the team leader or the admin; approval
// also adds the student to the team's member set.
type TeamRequest struct {
	ID        string    `json:"id" db:"id"`
	TeamID    string    `json:"teamId" db:"team_id"`
	StudentID string    `json:"studentId" db:"student_id"`
	Status    Status    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	TeamName    string `json:"teamName"`
	StudentName string `json:"studentName"`
}
