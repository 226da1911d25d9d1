package services

import (
	"context"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
)

// inboxStore is the slice of the notification repository NotificationService needs.
type inboxStore interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, studentID string) error
	UnreadCount(ctx context.Context, studentID string) (int64, error)
}

// NotificationService handles per-student inboxes
type NotificationService struct {
	inbox    inboxStore
	students studentChecker
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(inbox inboxStore, students studentChecker) *NotificationService {
	return &NotificationService{inbox: inbox, students: students}
}

// List retrieves a student's most recent notifications
func (s *NotificationService) List(ctx context.Context, studentID string) ([]models.Notification, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.inbox.ListByStudent(ctx, studentID)
}

// MarkRead marks one notification as read
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return s.inbox.MarkRead(ctx, id)
}

// MarkAllRead clears a student's unread badge
func (s *NotificationService) MarkAllRead(ctx context.Context, studentID string) error {
	return s.inbox.MarkAllRead(ctx, studentID)
}

// UnreadCount returns the unread badge value
func (s *NotificationService) UnreadCount(ctx context.Context, studentID string) (int64, error) {
	return s.inbox.UnreadCount(ctx, studentID)
}
