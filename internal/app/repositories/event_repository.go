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

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

const eventSelect = `
	SELECT e.id, e.name, e.description, e.event_date, e.category, e.required_students, e.created_at,
		COALESCE(array_agg(ei.student_id) FILTER (WHERE ei.interested), '{}') AS interested,
		COALESCE(array_agg(ei.student_id) FILTER (WHERE NOT ei.interested), '{}') AS not_interested
	FROM events e
	LEFT JOIN event_interest ei ON ei.event_id = e.id
`

func scanEvent(row pgx.Row) (*models.Event, error) {
	var event models.Event
	err := row.Scan(&event.ID, &event.Name, &event.Description, &event.Date, &event.Category,
		&event.RequiredStudents, &event.CreatedAt, &event.InterestedStudents, &event.NotInterestedStudents)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetAll retrieves every event with its interest rolls, newest first
func (r *EventRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	rows, err := r.db.Query(ctx, eventSelect+` GROUP BY e.id ORDER BY e.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, *event)
	}
	return events, rows.Err()
}

// GetByID retrieves a single event
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	event, err := scanEvent(r.db.QueryRow(ctx, eventSelect+` WHERE e.id = $1 GROUP BY e.id`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error querying event: %w", err)
	}
	return event, nil
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO events (id, name, description, event_date, category, required_students, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, event.ID, event.Name, event.Description, event.Date, event.Category,
		event.RequiredStudents, event.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting event: %w", err)
	}
	return nil
}

// Delete removes an event; interest rows go with it via cascade
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// SetInterest records a student's stance on an event. One row per
// (event, student) keeps the interested and not-interested sets disjoint.
func (r *EventRepository) SetInterest(ctx context.Context, eventID, studentID string, interested bool) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO event_interest (event_id, student_id, interested)
		VALUES ($1, $2, $3)
		ON CONFLICT (event_id, student_id) DO UPDATE SET interested = EXCLUDED.interested
	`, eventID, studentID, interested)
	if err != nil {
		return fmt.Errorf("error recording event interest: %w", err)
	}
	return nil
}

// ListInterestedStudents retrieves the students who marked themselves
// interested in an event
func (r *EventRepository) ListInterestedStudents(ctx context.Context, eventID string) ([]models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.name, s.branch, s.year
		FROM event_interest ei
		JOIN students s ON s.id = ei.student_id
		WHERE ei.event_id = $1 AND ei.interested
		ORDER BY s.name
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("error querying interested students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(&student.ID, &student.Name, &student.Branch, &student.Year); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// Exists reports whether an event exists
func (r *EventRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// CountAll returns the total number of events
func (r *EventRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	return count, err
}
