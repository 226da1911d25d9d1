package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
)

// CompetitionRepository handles database operations for competitions
type CompetitionRepository struct {
	db *pgxpool.Pool
}

// NewCompetitionRepository creates a new CompetitionRepository
func NewCompetitionRepository(db *pgxpool.Pool) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

// GetAll retrieves every competition, newest first
func (r *CompetitionRepository) GetAll(ctx context.Context) ([]models.Competition, error) {
	query, args, err := squirrel.Select("id", "name", "description", "skills_required", "rules", "event_date", "created_at").
		From("competitions").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying competitions: %w", err)
	}
	defer rows.Close()

	competitions := []models.Competition{}
	for rows.Next() {
		var c models.Competition
		err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.SkillsRequired, &c.Rules,
			&c.EventDate, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning competition row: %w", err)
		}
		competitions = append(competitions, c)
	}
	return competitions, rows.Err()
}

// Create inserts a new competition
func (r *CompetitionRepository) Create(ctx context.Context, c *models.Competition) error {
	query, args, err := squirrel.Insert("competitions").
		Columns("id", "name", "description", "skills_required", "rules", "event_date", "created_at").
		Values(c.ID, c.Name, c.Description, c.SkillsRequired, c.Rules, c.EventDate, c.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("error inserting competition: %w", err)
	}
	return nil
}

// Delete removes a competition
func (r *CompetitionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM competitions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting competition: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrCompetitionNotFound
	}
	return nil
}
