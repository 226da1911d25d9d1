package seed

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/rajni12071985-debug/pragati/internal/app/models"
	appRepos "github.com/rajni12071985-debug/pragati/internal/app/repositories"
	"github.com/rajni12071985-debug/pragati/internal/pkg/apperrors"
	"github.com/rajni12071985-debug/pragati/internal/pkg/auth"
)

// defaultInterests is the catalog offered to students on a fresh install
var defaultInterests = []string{
	"Dance",
	"Singing",
	"Painting",
	"Poster Making",
	"Web Development",
	"Backend",
	"C",
	"Java",
}

// CreateDefaultData seeds the interest catalog and the admin credential.
// Every step is idempotent, so re-running on startup is safe.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, adminPassword string, lgr zerolog.Logger) error {
	interestRepo := appRepos.NewInterestRepository(dbPool)
	adminRepo := appRepos.NewAdminRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (interests, admin credential)...")
	var finalErr error

	for _, name := range defaultInterests {
		interest := &appModels.Interest{
			ID:        uuid.NewString(),
			Name:      name,
			CreatedAt: time.Now().UTC(),
		}
		err := interestRepo.Create(ctx, interest)
		if err != nil && !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			lgr.Error().Err(err).Str("interest", name).Msg("Error seeding interest")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if _, err := adminRepo.Get(ctx); err != nil {
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			return errors.Join(finalErr, err)
		}

		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return errors.Join(finalErr, err)
		}
		err = adminRepo.Create(ctx, &appModels.Admin{
			ID:           uuid.NewString(),
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			lgr.Error().Err(err).Msg("Error seeding admin credential")
			return errors.Join(finalErr, err)
		}
		lgr.Info().Msg("Admin credential created")
	}

	return finalErr
}
