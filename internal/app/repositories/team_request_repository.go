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
	"github.com/rajni12071985-debug/pragati/internal/pkg/dberrors"
)

// TeamRequestRepository handles database operations for join requests.
// The pending -> approved/rejected transition is guarded in SQL so a
// request resolves exactly once even under concurrent moderation.
type TeamRequestRepository struct {
	db *pgxpool.Pool
}

// NewTeamRequestRepository creates a new TeamRequestRepository
func NewTeamRequestRepository(db *pgxpool.Pool) *TeamRequestRepository {
	return &TeamRequestRepository{db: db}
}

const requestSelect = `
	SELECT tr.id, tr.team_id, tr.student_id, tr.status, tr.created_at,
		COALESCE(t.name, ''), COALESCE(s.name, '')
	FROM team_requests tr
	LEFT JOIN teams t ON t.id = tr.team_id
	LEFT JOIN students s ON s.id = tr.student_id
`

func scanRequest(row pgx.Row) (*models.TeamRequest, error) {
	var request models.TeamRequest
	err := row.Scan(&request.ID, &request.TeamID, &request.StudentID, &request.Status,
		&request.CreatedAt, &request.TeamName, &request.StudentName)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetByID retrieves a join request
func (r *TeamRequestRepository) GetByID(ctx context.Context, id string) (*models.TeamRequest, error) {
	request, err := scanRequest(r.db.QueryRow(ctx, requestSelect+` WHERE tr.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("error querying join request: %w", err)
	}
	return request, nil
}

// FindPending retrieves the outstanding pending request for (team, student),
// if any.
func (r *TeamRequestRepository) FindPending(ctx context.Context, teamID, studentID string) (*models.TeamRequest, error) {
	request, err := scanRequest(r.db.QueryRow(ctx,
		requestSelect+` WHERE tr.team_id = $1 AND tr.student_id = $2 AND tr.status = $3`,
		teamID, studentID, models.StatusPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying pending request: %w", err)
	}
	return request, nil
}

// Create inserts a pending join request. A partial unique index forbids two
// pending requests for the same (team, student) pair.
func (r *TeamRequestRepository) Create(ctx context.Context, request *models.TeamRequest) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO team_requests (id, team_id, student_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, request.ID, request.TeamID, request.StudentID, request.Status, request.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error inserting join request: %w", err)
	}
	return nil
}

// ListPendingByTeam retrieves the pending requests for a team
func (r *TeamRequestRepository) ListPendingByTeam(ctx context.Context, teamID string) ([]models.TeamRequest, error) {
	rows, err := r.db.Query(ctx,
		requestSelect+` WHERE tr.team_id = $1 AND tr.status = $2 ORDER BY tr.created_at`,
		teamID, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("error querying team requests: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

// ListAll retrieves every join request regardless of status
func (r *TeamRequestRepository) ListAll(ctx context.Context) ([]models.TeamRequest, error) {
	rows, err := r.db.Query(ctx, requestSelect+` ORDER BY tr.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying join requests: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

func collectRequests(rows pgx.Rows) ([]models.TeamRequest, error) {
	requests := []models.TeamRequest{}
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning request row: %w", err)
		}
		requests = append(requests, *request)
	}
	return requests, rows.Err()
}

// Approve flips a pending request to approved and adds the student to the
// team roster in the same transaction. The status guard in the UPDATE makes
// re-approval of a resolved request fail rather than re-apply.
func (r *TeamRequestRepository) Approve(ctx context.Context, requestID string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var teamID, studentID string
		err := tx.QueryRow(ctx, `
			UPDATE team_requests SET status = $1
			WHERE id = $2 AND status = $3
			RETURNING team_id, student_id
		`, models.StatusApproved, requestID, models.StatusPending).Scan(&teamID, &studentID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return r.classifyGuardFailure(ctx, tx, requestID)
			}
			return fmt.Errorf("error approving request: %w", err)
		}

		// Roster PK absorbs a concurrent direct add
		if _, err := tx.Exec(ctx,
			`INSERT INTO team_members (team_id, student_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			teamID, studentID); err != nil {
			return fmt.Errorf("error adding member: %w", err)
		}
		return nil
	})
}

// Reject flips a pending request to rejected; membership is untouched
func (r *TeamRequestRepository) Reject(ctx context.Context, requestID string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		result, err := tx.Exec(ctx, `
			UPDATE team_requests SET status = $1
			WHERE id = $2 AND status = $3
		`, models.StatusRejected, requestID, models.StatusPending)
		if err != nil {
			return fmt.Errorf("error rejecting request: %w", err)
		}
		if result.RowsAffected() == 0 {
			return r.classifyGuardFailure(ctx, tx, requestID)
		}
		return nil
	})
}

// classifyGuardFailure tells a missing request apart from one already resolved
func (r *TeamRequestRepository) classifyGuardFailure(ctx context.Context, tx pgx.Tx, requestID string) error {
	var status models.Status
	err := tx.QueryRow(ctx, `SELECT status FROM team_requests WHERE id = $1`, requestID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrRequestNotFound
		}
		return fmt.Errorf("error checking request status: %w", err)
	}
	return apperrors.ErrRequestAlreadyResolved
}

// CountByStatus returns the number of join requests in a status
func (r *TeamRequestRepository) CountByStatus(ctx context.Context, status models.Status) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM team_requests WHERE status = $1`, status).Scan(&count)
	return count, err
}
