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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentColumns = `s.id, s.name, s.branch, s.year, s.roll_number, s.created_at`

// studentAssociations is the derived part of a student row: interest names,
// team ids (led or joined) and the leader flag.
const studentAssociations = `
	COALESCE((SELECT array_agg(si.interest ORDER BY si.interest) FROM student_interests si WHERE si.student_id = s.id), '{}'),
	COALESCE((
		SELECT array_agg(t.team_id) FROM (
			SELECT tm.team_id FROM team_members tm WHERE tm.student_id = s.id
			UNION
			SELECT te.id FROM teams te WHERE te.leader_id = s.id
		) t
	), '{}'),
	EXISTS(SELECT 1 FROM teams te WHERE te.leader_id = s.id)`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.Branch,
		&student.Year,
		&student.RollNumber,
		&student.CreatedAt,
		&student.Interests,
		&student.TeamIDs,
		&student.IsLeader,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByID retrieves a student with interests, team ids and the leader flag
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM students s WHERE s.id = $1`, studentColumns, studentAssociations)

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error querying student: %w", err)
	}
	return student, nil
}

// GetByRollNumber retrieves a student by roll number
func (r *StudentRepository) GetByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM students s WHERE s.roll_number = $1`, studentColumns, studentAssociations)

	student, err := scanStudent(r.db.QueryRow(ctx, query, rollNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error querying student: %w", err)
	}
	return student, nil
}

// Create inserts a new student record
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (id, name, branch, year, roll_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		student.ID, student.Name, student.Branch, student.Year, student.RollNumber, student.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error inserting student: %w", err)
	}
	return nil
}

// List retrieves students, optionally filtered to those sharing at least
// one of the given interests.
func (r *StudentRepository) List(ctx context.Context, interests []string) ([]models.Student, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM students s`, studentColumns, studentAssociations)
	args := []interface{}{}

	if len(interests) > 0 {
		query += ` WHERE EXISTS(SELECT 1 FROM student_interests si WHERE si.student_id = s.id AND si.interest = ANY($1))`
		args = append(args, interests)
	}
	query += ` ORDER BY s.created_at`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, *student)
	}
	return students, rows.Err()
}

// UpdateInterests replaces the student's interest set
func (r *StudentRepository) UpdateInterests(ctx context.Context, studentID string, interests []string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, studentID).Scan(&exists); err != nil {
			return fmt.Errorf("error checking student: %w", err)
		}
		if !exists {
			return apperrors.ErrStudentNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM student_interests WHERE student_id = $1`, studentID); err != nil {
			return fmt.Errorf("error clearing interests: %w", err)
		}

		for _, interest := range interests {
			if _, err := tx.Exec(ctx,
				`INSERT INTO student_interests (student_id, interest) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				studentID, interest); err != nil {
				return fmt.Errorf("error inserting interest: %w", err)
			}
		}
		return nil
	})
}

// Delete removes a student. Memberships, requests, interest rows and
// notifications go with it via foreign keys; led teams keep a NULL leader.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// CountAll returns the total number of students
func (r *StudentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	return count, err
}

// CountByBranch returns the number of students in a branch
func (r *StudentRepository) CountByBranch(ctx context.Context, branch string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students WHERE branch = $1`, branch).Scan(&count)
	return count, err
}

// CountLeaders returns the number of students leading at least one team
func (r *StudentRepository) CountLeaders(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(DISTINCT leader_id) FROM teams WHERE leader_id IS NOT NULL`).Scan(&count)
	return count, err
}

// ListIDs returns every student id, used by notification fan-out
func (r *StudentRepository) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM students`)
	if err != nil {
		return nil, fmt.Errorf("error querying student ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
