package models

import "time"

// LeaveApplication is a student's leave request over a date range,
// resolved by the admin with an optional comment.
type LeaveApplication struct {
	ID           string    `json:"id" db:"id"`
	StudentID    string    `json:"studentId" db:"student_id"`
	StartDate    string    `json:"startDate" db:"start_date"`
	EndDate      string    `json:"endDate" db:"end_date"`
	Reason       string    `json:"reason" db:"reason"`
	DocumentURL  *string   `json:"documentUrl,omitempty" db:"document_url"`
	Status       Status    `json:"status" db:"status"`
	AdminComment *string   `json:"adminComment,omitempty" db:"admin_comment"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	StudentName string `json:"studentName"`
}
