package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/db"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
)

// LeaveRepository handles database operations for leave applications
type LeaveRepository struct {
	db *pgxpool.Pool
}

// NewLeaveRepository creates a new LeaveRepository
func NewLeaveRepository(db *pgxpool.Pool) *LeaveRepository {
	return &LeaveRepository{db: db}
}

const leaveSelect = `
	SELECT l.id, l.student_id, l.reason, l.start_date, l.end_date, l.document_url,
		l.status, l.admin_comment, l.created_at, COALESCE(s.name, '')
	FROM leave_applications l
	LEFT JOIN students s ON s.id = l.student_id
`

func scanLeave(row pgx.Row) (*models.LeaveApplication, error) {
	var leave models.LeaveApplication
	err := row.Scan(&leave.ID, &leave.StudentID, &leave.Reason, &leave.StartDate, &leave.EndDate,
		&leave.DocumentURL, &leave.Status, &leave.AdminComment, &leave.CreatedAt, &leave.StudentName)
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

// Create inserts a pending leave application
func (r *LeaveRepository) Create(ctx context.Context, leave *models.LeaveApplication) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO leave_applications (id, student_id, reason, start_date, end_date, document_url, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, leave.ID, leave.StudentID, leave.Reason, leave.StartDate, leave.EndDate,
		leave.DocumentURL, leave.Status, leave.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting leave application: %w", err)
	}
	return nil
}

// GetByID retrieves a leave application
func (r *LeaveRepository) GetByID(ctx context.Context, id string) (*models.LeaveApplication, error) {
	leave, err := scanLeave(r.db.QueryRow(ctx, leaveSelect+` WHERE l.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("error querying leave application: %w", err)
	}
	return leave, nil
}

// ListByStudent retrieves a student's leave applications, newest first
func (r *LeaveRepository) ListByStudent(ctx context.Context, studentID string) ([]models.LeaveApplication, error) {
	rows, err := r.db.Query(ctx, leaveSelect+` WHERE l.student_id = $1 ORDER BY l.created_at DESC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error querying leave applications: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

// ListAll retrieves every leave application, newest first
func (r *LeaveRepository) ListAll(ctx context.Context) ([]models.LeaveApplication, error) {
	rows, err := r.db.Query(ctx, leaveSelect+` ORDER BY l.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying leave applications: %w", err)
	}
	defer rows.Close()

	return collectLeaves(rows)
}

func collectLeaves(rows pgx.Rows) ([]models.LeaveApplication, error) {
	leaves := []models.LeaveApplication{}
	for rows.Next() {
		leave, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning leave row: %w", err)
		}
		leaves = append(leaves, *leave)
	}
	return leaves, rows.Err()
}

// Resolve moves a pending application to approved or rejected, storing the
// reviewer's comment. The status guard keeps a resolved application final.
func (r *LeaveRepository) Resolve(ctx context.Context, id string, status models.Status, comment *string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		result, err := tx.Exec(ctx, `
			UPDATE leave_applications SET status = $1, admin_comment = $2
			WHERE id = $3 AND status = $4
		`, status, comment, id, models.StatusPending)
		if err != nil {
			return fmt.Errorf("error resolving leave application: %w", err)
		}
		if result.RowsAffected() > 0 {
			return nil
		}

		var current models.Status
		err = tx.QueryRow(ctx, `SELECT status FROM leave_applications WHERE id = $1`, id).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrLeaveNotFound
			}
			return fmt.Errorf("error checking leave status: %w", err)
		}
		return apperrors.ErrLeaveAlreadyResolved
	})
}

// CountByStatus returns the number of leave applications in a status
func (r *LeaveRepository) CountByStatus(ctx context.Context, status models.Status) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM leave_applications WHERE status = $1`, status).Scan(&count)
	return count, err
}
