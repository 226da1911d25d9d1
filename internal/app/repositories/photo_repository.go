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

// PhotoRepository handles database operations for the gallery
type PhotoRepository struct {
	db *pgxpool.Pool
}

// NewPhotoRepository creates a new PhotoRepository
func NewPhotoRepository(db *pgxpool.Pool) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// GetAll retrieves every photo with the ids of students who liked it,
// newest first
func (r *PhotoRepository) GetAll(ctx context.Context) ([]models.Photo, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.event_name, p.description, p.url, p.created_at,
			COALESCE(array_agg(pl.student_id) FILTER (WHERE pl.student_id IS NOT NULL), '{}')
		FROM photos p
		LEFT JOIN photo_likes pl ON pl.photo_id = p.id
		GROUP BY p.id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("error querying photos: %w", err)
	}
	defer rows.Close()

	photos := []models.Photo{}
	for rows.Next() {
		var photo models.Photo
		err := rows.Scan(&photo.ID, &photo.EventName, &photo.Description, &photo.URL,
			&photo.CreatedAt, &photo.LikedBy)
		if err != nil {
			return nil, fmt.Errorf("error scanning photo row: %w", err)
		}
		photos = append(photos, photo)
	}
	return photos, rows.Err()
}

// Create inserts a new photo
func (r *PhotoRepository) Create(ctx context.Context, photo *models.Photo) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO photos (id, event_name, description, url, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, photo.ID, photo.EventName, photo.Description, photo.URL, photo.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting photo: %w", err)
	}
	return nil
}

// Delete removes a photo and its likes, returning the image URL so the
// caller can reclaim locally stored files.
func (r *PhotoRepository) Delete(ctx context.Context, id string) (string, error) {
	var url string
	err := r.db.QueryRow(ctx, `DELETE FROM photos WHERE id = $1 RETURNING url`, id).Scan(&url)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrPhotoNotFound
		}
		return "", fmt.Errorf("error deleting photo: %w", err)
	}
	return url, nil
}

// ToggleLike flips a student's like on a photo and returns the new state
// plus the resulting like count.
func (r *PhotoRepository) ToggleLike(ctx context.Context, photoID, studentID string) (liked bool, likes int64, err error) {
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM photos WHERE id = $1)`, photoID).Scan(&exists); err != nil {
			return fmt.Errorf("error checking photo: %w", err)
		}
		if !exists {
			return apperrors.ErrPhotoNotFound
		}

		result, err := tx.Exec(ctx,
			`DELETE FROM photo_likes WHERE photo_id = $1 AND student_id = $2`, photoID, studentID)
		if err != nil {
			return fmt.Errorf("error removing like: %w", err)
		}
		if result.RowsAffected() == 0 {
			// Nothing to remove, so this toggle is a like
			if _, err := tx.Exec(ctx,
				`INSERT INTO photo_likes (photo_id, student_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				photoID, studentID); err != nil {
				return fmt.Errorf("error adding like: %w", err)
			}
			liked = true
		}

		if err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM photo_likes WHERE photo_id = $1`, photoID).Scan(&likes); err != nil {
			return fmt.Errorf("error counting likes: %w", err)
		}
		return nil
	})
	return liked, likes, err
}
