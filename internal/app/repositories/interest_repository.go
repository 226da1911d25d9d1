package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
	"github.com/rajni12071985-debug/pragati/internal/pkg/dberrors"
)

// InterestRepository handles database operations for the interest catalog
type InterestRepository struct {
	db *pgxpool.Pool
}

// NewInterestRepository creates a new InterestRepository
func NewInterestRepository(db *pgxpool.Pool) *InterestRepository {
	return &InterestRepository{db: db}
}

// GetAll retrieves the full interest catalog
func (r *InterestRepository) GetAll(ctx context.Context) ([]models.Interest, error) {
	query := squirrel.Select("id", "name", "created_at").
		From("interests").
		OrderBy("name").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying interests: %w", err)
	}
	defer rows.Close()

	interests := []models.Interest{}
	for rows.Next() {
		var interest models.Interest
		if err := rows.Scan(&interest.ID, &interest.Name, &interest.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning interest row: %w", err)
		}
		interests = append(interests, interest)
	}
	return interests, rows.Err()
}

// GetByName retrieves an interest by its unique name
func (r *InterestRepository) GetByName(ctx context.Context, name string) (*models.Interest, error) {
	var interest models.Interest
	err := r.db.QueryRow(ctx,
		`SELECT id, name, created_at FROM interests WHERE name = $1`, name).
		Scan(&interest.ID, &interest.Name, &interest.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInterestNotFound
		}
		return nil, fmt.Errorf("error querying interest: %w", err)
	}
	return &interest, nil
}

// Create inserts a new interest
func (r *InterestRepository) Create(ctx context.Context, interest *models.Interest) error {
	query := squirrel.Insert("interests").
		Columns("id", "name", "created_at").
		Values(interest.ID, interest.Name, interest.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error inserting interest: %w", err)
	}
	return nil
}

// Delete removes an interest from the catalog. Students and teams keep any
// stale copies of the name; the catalog does not cascade.
func (r *InterestRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM interests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting interest: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrInterestNotFound
	}
	return nil
}
