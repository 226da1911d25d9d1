package models

import "time"

// Notification is a per-student inbox entry.
type Notification struct {
	ID        string           `json:"id" db:"id"`
	StudentID string           `json:"studentId" db:"student_id"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Type      NotificationType `json:"type" db:"type"`
	RelatedID string           `json:"relatedId" db:"related_id"`
	IsRead    bool             `json:"isRead" db:"is_read"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
}
