package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
)

// NotificationRepository handles database operations for student inboxes
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// ListByStudent retrieves a student's most recent notifications
func (r *NotificationRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, title, message, type, related_id, is_read, created_at
		FROM notifications
		WHERE student_id = $1
		ORDER BY created_at DESC
		LIMIT 100
	`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error querying notifications: %w", err)
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(&n.ID, &n.StudentID, &n.Title, &n.Message, &n.Type,
			&n.RelatedID, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// Create inserts a notification for a single student
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO notifications (id, student_id, title, message, type, related_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, n.ID, n.StudentID, n.Title, n.Message, n.Type, n.RelatedID, n.IsRead, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting notification: %w", err)
	}
	return nil
}

// CreateForAllStudents fans a broadcast out to every student inbox in one
// statement.
func (r *NotificationRepository) CreateForAllStudents(ctx context.Context, title, message string, notifType models.NotificationType, relatedID string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO notifications (id, student_id, title, message, type, related_id, is_read, created_at)
		SELECT gen_random_uuid()::text, id, $1, $2, $3, $4, FALSE, NOW()
		FROM students
	`, title, message, notifType, relatedID)
	if err != nil {
		return fmt.Errorf("error broadcasting notification: %w", err)
	}
	return nil
}

// MarkRead marks a single notification as read. Marking an unknown id is a
// no-op, matching the idempotent client behavior.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}
	return nil
}

// MarkAllRead marks every notification of a student as read
func (r *NotificationRepository) MarkAllRead(ctx context.Context, studentID string) error {
	_, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE student_id = $1`, studentID)
	if err != nil {
		return fmt.Errorf("error marking notifications read: %w", err)
	}
	return nil
}

// UnreadCount returns the number of unread notifications for a student
func (r *NotificationRepository) UnreadCount(ctx context.Context, studentID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE student_id = $1 AND NOT is_read`, studentID).Scan(&count)
	return count, err
}
