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

// AdminRepository handles the moderation credential row
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

// Get retrieves the credential. There is at most one row.
func (r *AdminRepository) Get(ctx context.Context) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.QueryRow(ctx,
		`SELECT id, password_hash, created_at FROM admins LIMIT 1`).
		Scan(&admin.ID, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error querying admin credential: %w", err)
	}
	return &admin, nil
}

// Create inserts the credential row if none exists yet
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO admins (id, password_hash, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`, admin.ID, admin.PasswordHash, admin.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting admin credential: %w", err)
	}
	return nil
}
