package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
)

// MessageRepository handles database operations for team chat messages
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// ListByTeam retrieves a team's messages in send order
func (r *MessageRepository) ListByTeam(ctx context.Context, teamID string) ([]models.Message, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.team_id, m.student_id, m.body, m.created_at, COALESCE(s.name, '')
		FROM messages m
		LEFT JOIN students s ON s.id = m.student_id
		WHERE m.team_id = $1
		ORDER BY m.created_at
	`, teamID)
	if err != nil {
		return nil, fmt.Errorf("error querying messages: %w", err)
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var message models.Message
		err := rows.Scan(&message.ID, &message.TeamID, &message.StudentID, &message.Message,
			&message.CreatedAt, &message.StudentName)
		if err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}

// Create inserts a chat message
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO messages (id, team_id, student_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, message.ID, message.TeamID, message.StudentID, message.Message, message.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting message: %w", err)
	}
	return nil
}

// GetByID retrieves one message scoped to its team
func (r *MessageRepository) GetByID(ctx context.Context, teamID, messageID string) (*models.Message, error) {
	var message models.Message
	err := r.db.QueryRow(ctx, `
		SELECT m.id, m.team_id, m.student_id, m.body, m.created_at, COALESCE(s.name, '')
		FROM messages m
		LEFT JOIN students s ON s.id = m.student_id
		WHERE m.id = $1 AND m.team_id = $2
	`, messageID, teamID).Scan(&message.ID, &message.TeamID, &message.StudentID,
		&message.Message, &message.CreatedAt, &message.StudentName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, fmt.Errorf("error querying message: %w", err)
	}
	return &message, nil
}

// Delete removes a message from a team's chat. The team id in the WHERE
// clause stops cross-team deletion with a guessed message id.
func (r *MessageRepository) Delete(ctx context.Context, teamID, messageID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM messages WHERE id = $1 AND team_id = $2`, messageID, teamID)
	if err != nil {
		return fmt.Errorf("error deleting message: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrMessageNotFound
	}
	return nil
}
